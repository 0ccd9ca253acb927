package display

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lox/yatzy/internal/statistics"
	"github.com/lox/yatzy/yatzy"
)

func init() {
	SetPlain(true)
}

func TestDie(t *testing.T) {
	assert.Contains(t, Die(3, false), "⚂ 3")
	assert.Contains(t, Die(6, true), "⚅ 6")
	assert.Contains(t, Die(0, false), "? 0")
}

func TestHand(t *testing.T) {
	out := Hand(yatzy.Hand{1, 2, 3, 4, 5}, yatzy.LockMask{false, true, false, false, true})

	for _, glyph := range []string{"⚀", "⚁", "⚂", "⚃", "⚄"} {
		assert.Contains(t, out, glyph)
	}
	assert.Equal(t, 2, strings.Count(out, "held"))
}

func TestScorecard(t *testing.T) {
	out := Scorecard(yatzy.Hand{2, 2, 3, 3, 3}.Scores())

	for _, c := range yatzy.Categories() {
		assert.Contains(t, out, c.String())
	}
	assert.Contains(t, out, "13")
	assert.Contains(t, out, "Score")
}

func TestReport(t *testing.T) {
	r := statistics.NewReport()
	h := yatzy.Hand{6, 6, 6, 6, 6}
	r.Add(statistics.TurnResult{Hand: h, Scores: h.Scores()})
	r.Seed = 99
	r.RollsPerTurn = 3
	r.Workers = 1

	out := Report(r)
	assert.Contains(t, out, "1 turns")
	assert.Contains(t, out, "seed 99")
	assert.Contains(t, out, "0.00 rerolls used")
	assert.Contains(t, out, "Yatzy")
	assert.Contains(t, out, "50.00")
	assert.Contains(t, out, "100.0%")
}
