package styles

import "github.com/charmbracelet/lipgloss"

// Neutral palette used for the dropdown surfaces
var (
	White     = lipgloss.Color("#ffffff")
	Black     = lipgloss.Color("#000000")
	Gray      = lipgloss.Color("#808080")
	LightGray = lipgloss.Color("#eeeeee")
	// Backdrop approximates a half-transparent black layer
	Backdrop = lipgloss.Color("#3a3a3a")
)

// Catppuccin Macchiato accents for the surrounding form chrome
var (
	Surface2 = lipgloss.Color("#5b6078")
	Overlay0 = lipgloss.Color("#6e738d")
	Subtext0 = lipgloss.Color("#a5adcb")
	Yellow   = lipgloss.Color("#eed49f")
	Green    = lipgloss.Color("#a6da95")
	Blue     = lipgloss.Color("#8aadf4")
	Lavender = lipgloss.Color("#b7bdf8")
)
