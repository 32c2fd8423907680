package app

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	Next      key.Binding
	Prev      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next: key.NewBinding(
			key.WithKeys("tab", "down", "j"),
			key.WithHelp("tab", "next field"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "up", "k"),
			key.WithHelp("shift+tab", "prev field"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
		),
	}
}

// formHelp combines the focused dropdown's bindings with the form's own
type formHelp struct {
	field help.KeyMap
	keys  keyMap
}

func (h formHelp) ShortHelp() []key.Binding {
	var bindings []key.Binding
	if h.field != nil {
		bindings = append(bindings, h.field.ShortHelp()...)
	}
	return append(bindings, h.keys.Next, h.keys.Prev, h.keys.Quit)
}

func (h formHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}
