// Package tui is an interactive single-player Yatzy turn built on Bubble Tea.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/yatzy/internal/display"
	"github.com/lox/yatzy/yatzy"
)

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD700")).Bold(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true)
)

// Model is the Bubble Tea model for one player rolling turns
type Model struct {
	roller       yatzy.Roller
	engine       *yatzy.Engine
	logger       *log.Logger
	rollsPerTurn int
	rollsLeft    int
	turn         int

	keys keyMap
	help help.Model

	status   string
	err      error
	quitting bool
}

// New starts the first turn. rollsPerTurn counts the opening roll.
func New(roller yatzy.Roller, rollsPerTurn int, logger *log.Logger) (*Model, error) {
	if rollsPerTurn < 1 {
		return nil, fmt.Errorf("rolls per turn must be positive, got %d", rollsPerTurn)
	}
	m := &Model{
		roller:       roller,
		logger:       logger.WithPrefix("tui"),
		rollsPerTurn: rollsPerTurn,
		keys:         defaultKeyMap(),
		help:         help.New(),
	}
	if err := m.newTurn(); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Model) newTurn() error {
	engine, err := yatzy.New(m.roller)
	if err != nil {
		return err
	}
	m.engine = engine
	m.turn++
	m.rollsLeft = m.rollsPerTurn - 1
	m.status = fmt.Sprintf("Turn %d: rolled %s", m.turn, engine.Hand())
	m.err = nil
	m.logger.Debug("New turn", "turn", m.turn, "hand", engine.Hand())
	return nil
}

// Hand returns the dice on the table
func (m *Model) Hand() yatzy.Hand { return m.engine.Hand() }

// LockMask returns which dice are held
func (m *Model) LockMask() yatzy.LockMask { return m.engine.LockMask() }

// RollsLeft is the number of rerolls remaining this turn
func (m *Model) RollsLeft() int { return m.rollsLeft }

// Turn is the 1-based turn number
func (m *Model) Turn() int { return m.turn }

// Quitting reports whether the user asked to leave
func (m *Model) Quitting() bool { return m.quitting }

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Lock):
			index := int(msg.Runes[0] - '1')
			if err := m.engine.ToggleLock(index); err != nil {
				m.err = err
				break
			}
			m.err = nil
			m.status = fmt.Sprintf("Die %d released", index+1)
			if locked, _ := m.engine.Locked(index); locked {
				m.status = fmt.Sprintf("Die %d held", index+1)
			}

		case key.Matches(msg, m.keys.Reroll):
			if m.rollsLeft == 0 {
				m.err = fmt.Errorf("no rerolls left, press n for a new turn")
				break
			}
			m.rollsLeft--
			hand := m.engine.Reroll()
			m.err = nil
			m.status = fmt.Sprintf("Rerolled: %s", hand)
			m.logger.Debug("Reroll", "turn", m.turn, "hand", hand, "left", m.rollsLeft)

		case key.Matches(msg, m.keys.NewTurn):
			if err := m.newTurn(); err != nil {
				m.err = err
			}
		}
	}
	return m, nil
}

// View implements tea.Model
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(display.HeaderStyle.Render(fmt.Sprintf("Yatzy - turn %d - %d rerolls left", m.turn, m.rollsLeft)))
	b.WriteString("\n\n")
	b.WriteString(display.Hand(m.engine.Hand(), m.engine.LockMask()))
	b.WriteString("\n\n")
	b.WriteString(display.Scorecard(m.engine.Scores()))
	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(errorStyle.Render(m.err.Error()))
	} else {
		b.WriteString(statusStyle.Render(m.status))
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// Run shows the model until the user quits or ctx is cancelled
func Run(ctx context.Context, m *Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
