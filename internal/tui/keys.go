package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds all key bindings for the TUI.
type keyMap struct {
	Start       key.Binding
	Close       key.Binding
	NewAnalysis key.Binding
	Up          key.Binding
	Down        key.Binding
	Help        key.Binding
	Quit        key.Binding
}

// keys is the global key map.
var keys = keyMap{
	Start: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter", "start analysis"),
	),
	Close: key.NewBinding(
		key.WithKeys("c", "esc"),
		key.WithHelp("c", "close report"),
	),
	NewAnalysis: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "new analysis"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "scroll up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "scroll down"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "toggle help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Start, k.Close, k.NewAnalysis},
		{k.Up, k.Down},
		{k.Help, k.Quit},
	}
}
