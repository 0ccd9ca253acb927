// Package statistics accumulates per-category score samples from simulated
// Yatzy turns.
package statistics

import (
	"fmt"
	"math"
	"time"

	"github.com/lox/yatzy/yatzy"
)

// TurnResult is the outcome of one simulated turn
type TurnResult struct {
	Hand   yatzy.Hand
	Scores yatzy.Scorecard
	Rolls  int // rerolls used after the opening roll
}

// CategoryStats tracks score samples for a single category
type CategoryStats struct {
	Category yatzy.Category `json:"-"`
	Name     string         `json:"category"`
	Turns    int            `json:"turns"`
	Hits     int            `json:"hits"` // turns with a non-zero score
	Best     int            `json:"best"` // turns where this was the top category
	Sum      float64        `json:"sum"`
	SumSq    float64        `json:"sum_sq"`
	Max      int            `json:"max"`
}

// Add records one score
func (s *CategoryStats) Add(score int) {
	v := float64(score)
	s.Turns++
	s.Sum += v
	s.SumSq += v * v
	if score > 0 {
		s.Hits++
	}
	if score > s.Max {
		s.Max = score
	}
}

// Merge folds other into s
func (s *CategoryStats) Merge(other CategoryStats) {
	s.Turns += other.Turns
	s.Hits += other.Hits
	s.Best += other.Best
	s.Sum += other.Sum
	s.SumSq += other.SumSq
	if other.Max > s.Max {
		s.Max = other.Max
	}
}

// Mean returns the average score per turn
func (s *CategoryStats) Mean() float64 {
	if s.Turns == 0 {
		return 0
	}
	return s.Sum / float64(s.Turns)
}

// Variance returns the sample variance of the scores
func (s *CategoryStats) Variance() float64 {
	if s.Turns < 2 {
		return 0
	}
	mean := s.Mean()
	v := (s.SumSq - float64(s.Turns)*mean*mean) / float64(s.Turns-1)
	// Rounding can push a zero variance slightly negative
	return math.Max(v, 0)
}

// StdDev returns the sample standard deviation
func (s *CategoryStats) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s *CategoryStats) StdError() float64 {
	if s.Turns == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Turns))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *CategoryStats) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// HitRate is the fraction of turns scoring above zero
func (s *CategoryStats) HitRate() float64 {
	if s.Turns == 0 {
		return 0
	}
	return float64(s.Hits) / float64(s.Turns)
}

// Report aggregates a whole simulation run
type Report struct {
	Turns        int                                `json:"turns"`
	Seed         int64                              `json:"seed"`
	Workers      int                                `json:"workers"`
	RollsPerTurn int                                `json:"rolls_per_turn"`
	Elapsed      time.Duration                      `json:"elapsed_ns"`
	Rerolls      int                                `json:"rerolls"` // summed over all turns
	Categories   [yatzy.NumCategories]CategoryStats `json:"categories"`
}

// NewReport returns an empty report with category names filled in
func NewReport() *Report {
	r := &Report{}
	for _, c := range yatzy.Categories() {
		r.Categories[c].Category = c
		r.Categories[c].Name = c.String()
	}
	return r
}

// Add incorporates a turn
func (r *Report) Add(result TurnResult) {
	r.Turns++
	r.Rerolls += result.Rolls
	for _, c := range yatzy.Categories() {
		r.Categories[c].Add(result.Scores.Get(c))
	}
	if best, score := result.Scores.Best(); score > 0 {
		r.Categories[best].Best++
	}
}

// Merge folds a partial report from another worker into r
func (r *Report) Merge(other *Report) {
	r.Turns += other.Turns
	r.Rerolls += other.Rerolls
	for i := range r.Categories {
		r.Categories[i].Merge(other.Categories[i])
	}
}

// MeanRerolls is the average number of rerolls used per turn
func (r *Report) MeanRerolls() float64 {
	if r.Turns == 0 {
		return 0
	}
	return float64(r.Rerolls) / float64(r.Turns)
}

// Category returns the stats for c
func (r *Report) Category(c yatzy.Category) *CategoryStats {
	return &r.Categories[c]
}

// Validate checks the report's internal consistency
func (r *Report) Validate() error {
	if r.Turns <= 0 {
		return fmt.Errorf("invalid turns count: %d", r.Turns)
	}

	best := 0
	for _, s := range r.Categories {
		if s.Turns != r.Turns {
			return fmt.Errorf("%s recorded %d turns, report has %d", s.Name, s.Turns, r.Turns)
		}
		if s.Hits > s.Turns {
			return fmt.Errorf("%s hits (%d) exceed turns (%d)", s.Name, s.Hits, s.Turns)
		}
		best += s.Best
	}
	if r.Rerolls < 0 {
		return fmt.Errorf("negative rerolls count: %d", r.Rerolls)
	}
	if best > r.Turns {
		return fmt.Errorf("best counts (%d) exceed turns (%d)", best, r.Turns)
	}

	// Chance never scores zero, so it must hit every turn
	if chance := r.Categories[yatzy.Chance]; chance.Hits != r.Turns {
		return fmt.Errorf("chance hit %d of %d turns", chance.Hits, r.Turns)
	}
	return nil
}
