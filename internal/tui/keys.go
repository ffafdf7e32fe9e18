package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Next       key.Binding
	Prev       key.Binding
	Reset      key.Binding
	Difficulty key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Reset, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Reset},
		{k.Difficulty, k.Help, k.Quit},
	}
}

var keys = keyMap{
	Next: key.NewBinding(
		key.WithKeys("n", "right", " "),
		key.WithHelp("n/→", "next letter"),
	),
	Prev: key.NewBinding(
		key.WithKeys("p", "left"),
		key.WithHelp("p/←", "previous letter"),
	),
	Reset: key.NewBinding(
		key.WithKeys("r", "backspace"),
		key.WithHelp("r", "start over"),
	),
	Difficulty: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "difficulty"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "more keys"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
