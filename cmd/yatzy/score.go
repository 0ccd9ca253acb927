package main

import (
	"fmt"
	"io"
	"os"

	"github.com/lox/yatzy/internal/display"
	"github.com/lox/yatzy/yatzy"
)

type ScoreCmd struct {
	Hand     string `arg:"" help:"Five dice, e.g. '2,2,3,3,3' or 22333"`
	Category string `short:"C" help:"Only print this category (e.g. full-house)"`

	out io.Writer
}

func (c *ScoreCmd) Run(rt *runtime) error {
	hand, err := yatzy.ParseHand(c.Hand)
	if err != nil {
		return err
	}
	out := c.out
	if out == nil {
		out = os.Stdout
	}

	if c.Category != "" {
		category, err := yatzy.ParseCategory(c.Category)
		if err != nil {
			return err
		}
		rt.logger.Debug("Scoring category", "hand", hand, "category", category)
		fmt.Fprintln(out, hand.Score(category))
		return nil
	}

	rt.logger.Debug("Scoring hand", "hand", hand)
	fmt.Fprintln(out, display.Hand(hand, yatzy.LockMask{}))
	fmt.Fprintln(out, display.Scorecard(hand.Scores()))
	return nil
}
