package dropdown

import tea "github.com/charmbracelet/bubbletea"

// ChangeFunc receives the field name and the chosen value. It is called
// exactly once per selection and its command is returned from Update.
type ChangeFunc func(name, value string) tea.Cmd

// ChangeMsg carries a selection into the Bubble Tea loop
type ChangeMsg struct {
	Name  string
	Value string
}

// EmitChange is a ChangeFunc that reports the selection as a ChangeMsg
func EmitChange(name, value string) tea.Cmd {
	return func() tea.Msg {
		return ChangeMsg{Name: name, Value: value}
	}
}
