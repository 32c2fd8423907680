package dropdown

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/customselect/internal/ui/overlay"
	"github.com/riordanpawley/customselect/internal/ui/styles"
)

// Defaults applied to any zero-valued Props or Appearance field
const (
	DefaultPlaceholder = "Select an option"
	DefaultTextSize    = 16
)

// Appearance configures how the trigger and option list look.
// Zero values are replaced by the defaults in DefaultAppearance.
type Appearance struct {
	// Container wraps the trigger. Nil means no container styling.
	Container *lipgloss.Style
	// TextSize is the minimum width of the trigger label in cells
	TextSize int
	// TriggerTextColor colors the label (default black)
	TriggerTextColor lipgloss.Color
	// TriggerBorderColor colors the trigger border (default gray)
	TriggerBorderColor lipgloss.Color
	// TriggerBackgroundColor fills the trigger (default white)
	TriggerBackgroundColor lipgloss.Color
	// TrailingIcon is rendered after the label when set
	TrailingIcon string
	// MaxVisibleRows caps the option list height before it scrolls
	MaxVisibleRows int
}

// DefaultAppearance returns the neutral black-on-white-with-gray-border look
func DefaultAppearance() Appearance {
	return Appearance{
		TextSize:               DefaultTextSize,
		TriggerTextColor:       styles.Black,
		TriggerBorderColor:     styles.Gray,
		TriggerBackgroundColor: styles.White,
		MaxVisibleRows:         overlay.DefaultMaxRows,
	}
}

// Merge returns a copy of a with every unset field taken from base
func (a Appearance) Merge(base Appearance) Appearance {
	if a.Container == nil {
		a.Container = base.Container
	}
	if a.TextSize <= 0 {
		a.TextSize = base.TextSize
	}
	if a.TriggerTextColor == "" {
		a.TriggerTextColor = base.TriggerTextColor
	}
	if a.TriggerBorderColor == "" {
		a.TriggerBorderColor = base.TriggerBorderColor
	}
	if a.TriggerBackgroundColor == "" {
		a.TriggerBackgroundColor = base.TriggerBackgroundColor
	}
	if a.TrailingIcon == "" {
		a.TrailingIcon = base.TrailingIcon
	}
	if a.MaxVisibleRows <= 0 {
		a.MaxVisibleRows = base.MaxVisibleRows
	}
	return a
}

func (a Appearance) container() lipgloss.Style {
	if a.Container == nil {
		return lipgloss.NewStyle()
	}
	return *a.Container
}

func (a Appearance) triggerStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(a.TriggerBorderColor).
		BorderBackground(a.TriggerBackgroundColor).
		Background(a.TriggerBackgroundColor).
		Padding(0, 1)
}

func (a Appearance) labelStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(a.TriggerTextColor).
		Background(a.TriggerBackgroundColor)
}
