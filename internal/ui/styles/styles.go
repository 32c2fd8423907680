package styles

import "github.com/charmbracelet/lipgloss"

// Styles holds the form-level styles
type Styles struct {
	// Form
	Title        lipgloss.Style
	FieldLabel   lipgloss.Style
	FieldFocused lipgloss.Style
	FocusMarker  lipgloss.Style

	// Status line
	StatusInfo  lipgloss.Style
	StatusValue lipgloss.Style
	StatusHint  lipgloss.Style
}

// New creates a new Styles instance
func New() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Foreground(Lavender).
			Bold(true).
			MarginBottom(1),

		FieldLabel: lipgloss.NewStyle().
			Foreground(Subtext0),

		FieldFocused: lipgloss.NewStyle().
			Foreground(Blue).
			Bold(true),

		FocusMarker: lipgloss.NewStyle().
			Foreground(Yellow).
			Bold(true),

		StatusInfo: lipgloss.NewStyle().
			Foreground(Overlay0),

		StatusValue: lipgloss.NewStyle().
			Foreground(Green),

		StatusHint: lipgloss.NewStyle().
			Foreground(Surface2),
	}
}
