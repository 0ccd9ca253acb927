package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Lock    key.Binding
	Reroll  key.Binding
	NewTurn key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Lock: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5"),
			key.WithHelp("1-5", "hold/release die"),
		),
		Reroll: key.NewBinding(
			key.WithKeys("r", " "),
			key.WithHelp("r", "reroll"),
		),
		NewTurn: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new turn"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Lock, k.Reroll, k.NewTurn, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
