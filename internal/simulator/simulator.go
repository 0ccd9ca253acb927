// Package simulator plays many single-player Yatzy turns and reports how
// each category scores under a simple hold strategy.
package simulator

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/yatzy/internal/randutil"
	"github.com/lox/yatzy/internal/statistics"
	"github.com/lox/yatzy/yatzy"
)

// Config holds configuration for running simulations
type Config struct {
	Turns        int
	Workers      int
	RollsPerTurn int // including the opening roll
	Seed         int64
	Logger       *log.Logger
	Clock        quartz.Clock
}

// Simulator runs Yatzy turn simulations
type Simulator struct {
	config Config
	logger *log.Logger
	clock  quartz.Clock
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	logger := config.Logger
	if logger == nil {
		logger = log.Default()
	}
	clock := config.Clock
	if clock == nil {
		clock = quartz.NewReal()
	}
	return &Simulator{
		config: config,
		logger: logger.WithPrefix("simulator"),
		clock:  clock,
	}
}

// Run plays the configured number of turns. Results depend only on Seed,
// Turns, Workers and RollsPerTurn.
func (s *Simulator) Run(ctx context.Context) (*statistics.Report, error) {
	if s.config.Turns < 1 {
		return nil, fmt.Errorf("turns must be positive, got %d", s.config.Turns)
	}
	if s.config.RollsPerTurn < 1 {
		return nil, fmt.Errorf("rolls per turn must be positive, got %d", s.config.RollsPerTurn)
	}
	workers := s.config.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > s.config.Turns {
		workers = s.config.Turns
	}

	start := s.clock.Now()
	s.logger.Debug("Starting simulation", "turns", s.config.Turns, "workers", workers, "seed", s.config.Seed)

	turnsPerWorker := s.config.Turns / workers
	remainder := s.config.Turns % workers
	partials := make([]*statistics.Report, workers)

	g, ctx := errgroup.WithContext(ctx)
	for w := range workers {
		turns := turnsPerWorker
		if w < remainder {
			turns++
		}
		g.Go(func() error {
			rng := randutil.Stream(s.config.Seed, uint64(w))
			report, err := s.runWorker(ctx, rng, turns)
			if err != nil {
				return fmt.Errorf("worker %d: %w", w, err)
			}
			partials[w] = report
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := statistics.NewReport()
	for _, partial := range partials {
		report.Merge(partial)
	}
	report.Seed = s.config.Seed
	report.Workers = workers
	report.RollsPerTurn = s.config.RollsPerTurn
	report.Elapsed = s.clock.Since(start)

	if err := report.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}

	s.logger.Info("Simulation complete", "turns", report.Turns, "elapsed", report.Elapsed)
	return report, nil
}

// cancelCheckInterval is how many turns a worker plays between context checks
const cancelCheckInterval = 256

func (s *Simulator) runWorker(ctx context.Context, rng yatzy.Roller, turns int) (*statistics.Report, error) {
	report := statistics.NewReport()
	for i := range turns {
		if i%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		result, err := PlayTurn(rng, s.config.RollsPerTurn)
		if err != nil {
			return nil, err
		}
		report.Add(result)
	}
	return report, nil
}

// PlayTurn rolls a fresh hand and rerolls up to rollsPerTurn-1 times,
// holding the dice chosen by Hold before each reroll.
func PlayTurn(rng yatzy.Roller, rollsPerTurn int) (statistics.TurnResult, error) {
	engine, err := yatzy.New(rng)
	if err != nil {
		return statistics.TurnResult{}, err
	}

	for roll := 1; roll < rollsPerTurn; roll++ {
		hand := engine.Hand()
		if hand.Yatzy() > 0 {
			break
		}
		engine.Unlock()
		for _, i := range Hold(hand) {
			if err := engine.ToggleLock(i); err != nil {
				return statistics.TurnResult{}, err
			}
		}
		engine.Reroll()
	}

	hand := engine.Hand()
	return statistics.TurnResult{
		Hand:   hand,
		Scores: hand.Scores(),
		Rolls:  engine.Rolls(),
	}, nil
}

// Hold returns the positions to keep: every die showing the most common
// face, preferring the higher face when counts tie.
func Hold(hand yatzy.Hand) []int {
	var counts [yatzy.Faces + 1]int
	for _, v := range hand {
		counts[v]++
	}

	face := yatzy.Faces
	for v := yatzy.Faces - 1; v >= 1; v-- {
		if counts[v] > counts[face] {
			face = v
		}
	}

	var held []int
	for i, v := range hand {
		if v == face {
			held = append(held, i)
		}
	}
	return held
}
