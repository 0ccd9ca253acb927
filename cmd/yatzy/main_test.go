package main

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/yatzy/internal/config"
	"github.com/lox/yatzy/internal/display"
	"github.com/lox/yatzy/yatzy"
)

func testRuntime(t *testing.T) *runtime {
	t.Helper()
	display.SetPlain(true)
	return &runtime{
		config: config.Default(),
		logger: log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel}),
	}
}

func ptr[T any](v T) *T { return &v }

func TestParseArgs(t *testing.T) {
	var cli CLI
	parser, err := kong.New(&cli, kong.Vars{"version": "test", "config_file": config.DefaultFile})
	require.NoError(t, err)

	ctx, err := parser.Parse([]string{"roll", "--seed=5", "--hold=1,3", "-n", "1"})
	require.NoError(t, err)
	assert.Equal(t, "roll", ctx.Command())
	assert.Equal(t, []int{1, 3}, cli.Roll.Hold)
	require.NotNil(t, cli.Roll.Seed)
	assert.Equal(t, int64(5), *cli.Roll.Seed)
	require.NotNil(t, cli.Roll.Rolls)
	assert.Equal(t, 1, *cli.Roll.Rolls)

	ctx, err = parser.Parse([]string{"score", "22333", "-C", "full-house", "--log-level=debug"})
	require.NoError(t, err)
	assert.Equal(t, "score <hand>", ctx.Command())
	assert.Equal(t, "22333", cli.Score.Hand)
	assert.Equal(t, "debug", cli.LogLevel)
}

func TestGlobalsLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "yatzy.hcl")
	require.NoError(t, os.WriteFile(path, []byte("game {\n  seed = 11\n}\n"), 0o644))

	rt, err := (&Globals{Config: path, LogLevel: "warn", NoColor: true}).load()
	require.NoError(t, err)
	assert.Equal(t, log.WarnLevel, rt.logger.GetLevel())
	assert.Equal(t, int64(11), rt.seed(nil))
	assert.Equal(t, int64(3), rt.seed(ptr(int64(3))))

	_, err = (&Globals{Config: path, LogLevel: "loud"}).load()
	assert.Error(t, err)
}

func TestScoreCmd(t *testing.T) {
	rt := testRuntime(t)

	var out bytes.Buffer
	cmd := &ScoreCmd{Hand: "2,2,3,3,3", Category: "FullHouse", out: &out}
	require.NoError(t, cmd.Run(rt))
	assert.Equal(t, "13\n", out.String())

	out.Reset()
	cmd = &ScoreCmd{Hand: "66666", out: &out}
	require.NoError(t, cmd.Run(rt))
	assert.Contains(t, out.String(), "Yatzy")
	assert.Contains(t, out.String(), "50")

	err := (&ScoreCmd{Hand: "1,2,3", out: &out}).Run(rt)
	assert.ErrorIs(t, err, yatzy.ErrInvalidHand)

	err = (&ScoreCmd{Hand: "12345", Category: "bingo", out: &out}).Run(rt)
	assert.Error(t, err)
}

func TestRollCmd(t *testing.T) {
	rt := testRuntime(t)

	var first, second bytes.Buffer
	require.NoError(t, (&RollCmd{Seed: ptr(int64(8)), Hold: []int{2}, out: &first}).Run(rt))
	require.NoError(t, (&RollCmd{Seed: ptr(int64(8)), Hold: []int{2}, out: &second}).Run(rt))
	assert.Equal(t, first.String(), second.String(), "same seed gives the same rolls")
	assert.Contains(t, first.String(), "Roll 3:")
	assert.NotContains(t, first.String(), "Roll 4:")
	assert.Contains(t, first.String(), "Best:")

	var out bytes.Buffer
	require.NoError(t, (&RollCmd{Seed: ptr(int64(8)), Rolls: ptr(0), out: &out}).Run(rt))
	assert.NotContains(t, out.String(), "Roll 2:")

	err := (&RollCmd{Seed: ptr(int64(8)), Hold: []int{6}, out: &out}).Run(rt)
	assert.ErrorIs(t, err, yatzy.ErrIndexOutOfRange)

	err = (&RollCmd{Seed: ptr(int64(8)), Hold: []int{0}, out: &out}).Run(rt)
	assert.ErrorIs(t, err, yatzy.ErrIndexOutOfRange)

	err = (&RollCmd{Seed: ptr(int64(8)), Rolls: ptr(-1), out: &out}).Run(rt)
	assert.Error(t, err)
}

func TestRollCmdRepeatedHold(t *testing.T) {
	rt := testRuntime(t)

	var once, twice bytes.Buffer
	require.NoError(t, (&RollCmd{Seed: ptr(int64(21)), Hold: []int{1}, Rolls: ptr(5), out: &once}).Run(rt))
	require.NoError(t, (&RollCmd{Seed: ptr(int64(21)), Hold: []int{1, 1}, Rolls: ptr(5), out: &twice}).Run(rt))
	assert.Equal(t, once.String(), twice.String(), "holding a die twice still holds it")

	// The first die keeps its opening value on every roll line
	var first string
	lines := 0
	for _, line := range strings.Split(twice.String(), "\n") {
		if !strings.HasPrefix(line, "Roll ") {
			continue
		}
		lines++
		die := line[strings.Index(line, "[")+1:][:1]
		if first == "" {
			first = die
		}
		assert.Equal(t, first, die, line)
	}
	assert.Equal(t, 6, lines)
}

func TestSimulateCmd(t *testing.T) {
	rt := testRuntime(t)
	output := filepath.Join(t.TempDir(), "report.json")

	var out bytes.Buffer
	cmd := &SimulateCmd{
		Turns:   200,
		Workers: 2,
		Seed:    ptr(int64(1)),
		Output:  output,
		out:     &out,
		clock:   quartz.NewMock(t),
	}
	require.NoError(t, cmd.Run(rt))
	assert.Contains(t, out.String(), "200 turns")
	assert.Contains(t, out.String(), "FullHouse")

	data, err := os.ReadFile(output)
	require.NoError(t, err)

	var report struct {
		Turns      int `json:"turns"`
		Categories []struct {
			Category string `json:"category"`
			Turns    int    `json:"turns"`
		} `json:"categories"`
	}
	require.NoError(t, json.Unmarshal(data, &report))
	assert.Equal(t, 200, report.Turns)
	require.Len(t, report.Categories, len(yatzy.Categories()))
	assert.Equal(t, "Ones", report.Categories[0].Category)
	assert.Equal(t, 200, report.Categories[0].Turns)
}
