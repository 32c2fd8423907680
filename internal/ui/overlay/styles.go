package overlay

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/customselect/internal/ui/styles"
)

// Styles holds all overlay-specific styles
type Styles struct {
	// Box is the option list container
	Box lipgloss.Style
	// Row is the default option row style
	Row lipgloss.Style
	// RowActive is the highlighted option row style
	RowActive lipgloss.Style
	// Empty is shown in place of rows when there are no options
	Empty lipgloss.Style
	// Backdrop fills the screen around the box
	Backdrop lipgloss.Style
}

// NewStyles creates the default white-card-on-dim-backdrop styles
func NewStyles() *Styles {
	return &Styles{
		Box: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(styles.LightGray).
			BorderBackground(styles.White).
			Background(styles.White).
			Padding(0, 1),

		Row: lipgloss.NewStyle().
			Foreground(styles.Black).
			Background(styles.White),

		RowActive: lipgloss.NewStyle().
			Foreground(styles.Black).
			Background(styles.LightGray).
			Bold(true),

		Empty: lipgloss.NewStyle().
			Foreground(styles.Gray).
			Background(styles.White).
			Italic(true),

		Backdrop: lipgloss.NewStyle().
			Background(styles.Backdrop),
	}
}
