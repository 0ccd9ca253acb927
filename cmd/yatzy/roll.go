package main

import (
	"fmt"
	"io"
	"os"

	"github.com/lox/yatzy/internal/display"
	"github.com/lox/yatzy/internal/randutil"
	"github.com/lox/yatzy/yatzy"
)

type RollCmd struct {
	Seed  *int64 `help:"Random seed for reproducible rolls"`
	Hold  []int  `short:"H" help:"1-based dice positions to hold before rerolling" sep:","`
	Rolls *int   `short:"n" help:"Number of rerolls after the opening roll (default: rolls_per_turn-1)"`

	out io.Writer
}

func (c *RollCmd) Run(rt *runtime) error {
	out := c.out
	if out == nil {
		out = os.Stdout
	}

	seed := rt.seed(c.Seed)
	rerolls := rt.config.Game.RollsPerTurn - 1
	if c.Rolls != nil {
		rerolls = *c.Rolls
	}
	if rerolls < 0 {
		return fmt.Errorf("rolls must not be negative, got %d", rerolls)
	}

	engine, err := yatzy.New(randutil.New(seed))
	if err != nil {
		return err
	}
	for _, pos := range c.Hold {
		held, err := engine.Locked(pos - 1)
		if err != nil {
			return fmt.Errorf("--hold %d: %w", pos, err)
		}
		if held {
			continue
		}
		if err := engine.ToggleLock(pos - 1); err != nil {
			return fmt.Errorf("--hold %d: %w", pos, err)
		}
	}
	rt.logger.Debug("Rolling", "seed", seed, "hold", c.Hold, "rerolls", rerolls)

	fmt.Fprintf(out, "Roll 1: %s\n", engine.Hand())
	for i := range rerolls {
		fmt.Fprintf(out, "Roll %d: %s\n", i+2, engine.Reroll())
	}

	hand := engine.Hand()
	best, score := hand.Scores().Best()
	fmt.Fprintln(out, display.Hand(hand, engine.LockMask()))
	fmt.Fprintf(out, "Best: %s (%d)\n", best, score)
	return nil
}
