package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the typing test key bindings.
type KeyMap struct {
	Submit   key.Binding
	Reset    key.Binding
	TryAgain key.Binding
	Quit     key.Binding
}

// Keys is the default key map.
var Keys = KeyMap{
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "submit"),
	),
	Reset: key.NewBinding(
		key.WithKeys("ctrl+r"),
		key.WithHelp("ctrl+r", "new text"),
	),
	TryAgain: key.NewBinding(
		key.WithKeys("enter", "r"),
		key.WithHelp("enter/r", "try again"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c", "esc"),
		key.WithHelp("esc", "quit"),
	),
}

// ShortHelp implements help.KeyMap for the typing screen.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Reset, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func (k KeyMap) dialogHelp() []key.Binding {
	return []key.Binding{k.TryAgain, k.Quit}
}
