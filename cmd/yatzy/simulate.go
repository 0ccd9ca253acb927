package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/coder/quartz"

	"github.com/lox/yatzy/internal/display"
	"github.com/lox/yatzy/internal/fileutil"
	"github.com/lox/yatzy/internal/simulator"
)

type SimulateCmd struct {
	Turns   int    `short:"t" help:"Number of turns to simulate (default from config)"`
	Workers int    `short:"w" help:"Parallel workers (default from config)"`
	Seed    *int64 `help:"Random seed for reproducible results"`
	Output  string `short:"o" help:"Write the report as JSON to this file" type:"path"`

	out   io.Writer
	clock quartz.Clock
}

func (c *SimulateCmd) Run(rt *runtime) error {
	settings := rt.config.Simulate
	turns, workers, output := settings.Turns, settings.Workers, settings.Output
	if c.Turns > 0 {
		turns = c.Turns
	}
	if c.Workers > 0 {
		workers = c.Workers
	}
	if c.Output != "" {
		output = c.Output
	}
	out := c.out
	if out == nil {
		out = os.Stdout
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sim := simulator.New(simulator.Config{
		Turns:        turns,
		Workers:      workers,
		RollsPerTurn: rt.config.Game.RollsPerTurn,
		Seed:         rt.seed(c.Seed),
		Logger:       rt.logger,
		Clock:        c.clock,
	})
	report, err := sim.Run(ctx)
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}

	fmt.Fprintln(out, display.Report(report))

	if output != "" {
		if err := fileutil.WriteJSON(output, report); err != nil {
			return err
		}
		rt.logger.Info("Wrote report", "file", output)
	}
	return nil
}
