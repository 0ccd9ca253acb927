package main

import (
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/lox/yatzy/internal/config"
	"github.com/lox/yatzy/internal/display"
)

// version is set by ldflags during build
var version = "dev"

// Globals are flags shared by every command
type Globals struct {
	Config   string `short:"c" default:"${config_file}" help:"HCL config file" type:"path"`
	LogLevel string `help:"Log level (debug|info|warn|error), overrides the config file"`
	NoColor  bool   `help:"Disable colour output" env:"NO_COLOR"`
}

type CLI struct {
	Globals

	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Score    ScoreCmd         `cmd:"" help:"Score a hand in every category"`
	Roll     RollCmd          `cmd:"" help:"Roll a hand and reroll unheld dice"`
	Simulate SimulateCmd      `cmd:"" help:"Simulate turns and report category statistics"`
	Play     PlayCmd          `cmd:"" help:"Play turns interactively"`
}

// runtime is handed to every command's Run method
type runtime struct {
	config *config.Config
	logger *log.Logger
}

func (g *Globals) load() (*runtime, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, err
	}
	if g.LogLevel != "" {
		cfg.LogLevel = g.LogLevel
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	display.SetPlain(g.NoColor)

	logger := log.NewWithOptions(os.Stderr, log.Options{
		Level:           cfg.Level(),
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
	})
	logger.Debug("Loaded config", "file", g.Config)
	return &runtime{config: cfg, logger: logger}, nil
}

// seed picks the flag value, then the config file, then the clock
func (r *runtime) seed(flag *int64) int64 {
	switch {
	case flag != nil:
		return *flag
	case r.config.Game.Seed != nil:
		return *r.config.Game.Seed
	default:
		return time.Now().UnixNano()
	}
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("yatzy"),
		kong.Description("Score, roll and simulate Yatzy hands"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version":     version,
			"config_file": config.DefaultFile,
		},
	)

	rt, err := cli.Globals.load()
	ctx.FatalIfErrorf(err)

	err = ctx.Run(rt)
	ctx.FatalIfErrorf(err)
}
