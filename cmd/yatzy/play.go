package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/lox/yatzy/internal/randutil"
	"github.com/lox/yatzy/internal/tui"
)

type PlayCmd struct {
	Seed *int64 `help:"Random seed for reproducible rolls"`
}

func (c *PlayCmd) Run(rt *runtime) error {
	seed := rt.seed(c.Seed)
	rt.logger.Debug("Starting game", "seed", seed)

	model, err := tui.New(randutil.New(seed), rt.config.Game.RollsPerTurn, rt.logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return tui.Run(ctx, model)
}
