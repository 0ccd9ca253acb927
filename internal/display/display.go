// Package display renders hands, scorecards and simulation reports for the
// terminal.
package display

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/muesli/termenv"

	"github.com/lox/yatzy/internal/statistics"
	"github.com/lox/yatzy/yatzy"
)

var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Bold(true).
			Padding(0, 1)

	DieStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)

	LockedDieStyle = DieStyle.
			BorderForeground(lipgloss.Color("#FFD700")).
			Foreground(lipgloss.Color("#FFD700"))

	BestStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true)

	ZeroStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))

	cellStyle = lipgloss.NewStyle().Padding(0, 1)
)

// SetPlain disables colour output, for pipes and --no-color.
func SetPlain(plain bool) {
	if plain {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}
	lipgloss.SetColorProfile(termenv.EnvColorProfile())
}

// faces are the Unicode die glyphs, indexed by value
var faces = [...]string{"?", "⚀", "⚁", "⚂", "⚃", "⚄", "⚅"}

// Die renders a single die. Locked dice get a highlighted border.
func Die(value int, locked bool) string {
	glyph := faces[0]
	if value >= 1 && value <= yatzy.Faces {
		glyph = faces[value]
	}
	label := fmt.Sprintf("%s %d", glyph, value)
	if locked {
		return LockedDieStyle.Render(label)
	}
	return DieStyle.Render(label)
}

// Hand renders the dice side by side with their 1-based position and lock
// marker underneath.
func Hand(hand yatzy.Hand, mask yatzy.LockMask) string {
	columns := make([]string, len(hand))
	for i, v := range hand {
		marker := strconv.Itoa(i + 1)
		if mask[i] {
			marker += " held"
		}
		columns[i] = lipgloss.JoinVertical(lipgloss.Center, Die(v, mask[i]), marker)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, columns...)
}

// Scorecard renders every category for a hand, highlighting the best one.
func Scorecard(sc yatzy.Scorecard) string {
	best, _ := sc.Best()
	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, col int) lipgloss.Style { return cellStyle }).
		Headers("Category", "Score")

	for _, c := range yatzy.Categories() {
		name, score := c.String(), strconv.Itoa(sc.Get(c))
		switch {
		case c == best:
			name, score = BestStyle.Render(name), BestStyle.Render(score)
		case sc.Get(c) == 0:
			name, score = ZeroStyle.Render(name), ZeroStyle.Render(score)
		}
		t.Row(name, score)
	}
	return t.Render()
}

// Report renders simulation results as one row per category.
func Report(r *statistics.Report) string {
	var b strings.Builder
	b.WriteString(HeaderStyle.Render(fmt.Sprintf(
		"%d turns, %d rolls per turn, %.2f rerolls used, seed %d, %d workers, %s",
		r.Turns, r.RollsPerTurn, r.MeanRerolls(), r.Seed, r.Workers, r.Elapsed.Round(time.Millisecond),
	)))
	b.WriteString("\n")

	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, col int) lipgloss.Style { return cellStyle }).
		Headers("Category", "Mean", "StdDev", "Hit rate", "Best", "Max")

	for _, c := range yatzy.Categories() {
		s := r.Category(c)
		t.Row(
			c.String(),
			fmt.Sprintf("%.2f", s.Mean()),
			fmt.Sprintf("%.2f", s.StdDev()),
			fmt.Sprintf("%.1f%%", 100*s.HitRate()),
			fmt.Sprintf("%.1f%%", 100*float64(s.Best)/float64(max(r.Turns, 1))),
			strconv.Itoa(s.Max),
		)
	}
	b.WriteString(t.Render())
	return b.String()
}
