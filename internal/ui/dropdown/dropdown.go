// Package dropdown provides a controlled select component: a trigger showing
// the current selection and a modal option list that reports the chosen
// value through a callback.
//
// The component never changes its own value. The owner receives the
// selection through OnChange and pushes the new value back with SetValue.
package dropdown

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/customselect/internal/domain"
	"github.com/riordanpawley/customselect/internal/ui/overlay"
)

// Props are the construction parameters of a dropdown
type Props struct {
	// Name is echoed back verbatim to OnChange
	Name string
	// Options are the selectable rows, in display order
	Options domain.Options
	// Value is the caller-owned selected value
	Value string
	// OnChange is required and is the only output of the component
	OnChange ChangeFunc
	// Placeholder is shown when Value resolves to no option
	Placeholder string
	Appearance  Appearance
	Logger      *slog.Logger
}

// Model is a single dropdown instance. Its only internal state is whether
// the option overlay is open.
type Model struct {
	name        string
	options     domain.Options
	value       string
	placeholder string
	onChange    ChangeFunc
	appearance  Appearance

	open    bool
	focused bool
	list    *overlay.OptionList
	keys    KeyMap

	// Screen position of the container's top-left cell
	x, y int

	logger *slog.Logger
}

// New creates a closed dropdown
func New(p Props) *Model {
	if p.Placeholder == "" {
		p.Placeholder = DefaultPlaceholder
	}
	if p.Logger == nil {
		p.Logger = slog.Default()
	}
	appearance := p.Appearance.Merge(DefaultAppearance())

	return &Model{
		name:        p.Name,
		options:     p.Options,
		value:       p.Value,
		placeholder: p.Placeholder,
		onChange:    p.OnChange,
		appearance:  appearance,
		list:        overlay.NewOptionList(p.Options, appearance.MaxVisibleRows),
		keys:        DefaultKeyMap(),
		logger:      p.Logger,
	}
}

// Name returns the field identifier
func (m *Model) Name() string {
	return m.name
}

// Value returns the value last supplied by the owner
func (m *Model) Value() string {
	return m.value
}

// SetValue updates the displayed selection. Only the owner calls this.
func (m *Model) SetValue(value string) {
	m.value = value
}

// Options returns the option set
func (m *Model) Options() domain.Options {
	return m.options
}

// SetOptions replaces the option set
func (m *Model) SetOptions(options domain.Options) {
	m.options = options
	m.list.SetOptions(options)
}

// Appearance returns the merged appearance
func (m *Model) Appearance() Appearance {
	return m.appearance
}

// Label returns the text the trigger shows: the first matching option's
// label, or the placeholder
func (m *Model) Label() string {
	return m.options.LabelFor(m.value, m.placeholder)
}

// SetPosition records where the owner draws the component on screen.
// Mouse hit-testing of the trigger depends on it.
func (m *Model) SetPosition(x, y int) {
	m.x, m.y = x, y
}

// SetSize records the screen size the overlay lays itself out in
func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}

// Focus lets the dropdown react to keyboard input while closed
func (m *Model) Focus() {
	m.focused = true
}

// Blur stops keyboard handling while closed
func (m *Model) Blur() {
	m.focused = false
}

// Focused reports whether the dropdown has keyboard focus
func (m *Model) Focused() bool {
	return m.focused
}

// IsOpen reports whether the option overlay is shown
func (m *Model) IsOpen() bool {
	return m.open
}

// Open shows the overlay with the current selection highlighted
func (m *Model) Open() {
	if m.open {
		return
	}
	m.list.SetCursor(max(m.options.IndexOf(m.value), 0))
	m.setOpen(true, "open")
}

// Close hides the overlay. Closing a closed dropdown does nothing.
func (m *Model) Close() {
	if !m.open {
		return
	}
	m.setOpen(false, "close")
}

// Toggle is what a trigger tap does: open when closed, close when open
func (m *Model) Toggle() {
	if m.open {
		m.Close()
		return
	}
	m.Open()
}

func (m *Model) setOpen(open bool, reason string) {
	m.open = open
	m.logger.Debug("dropdown visibility changed", "name", m.name, "open", open, "reason", reason)
}

// Update handles keyboard, mouse and window size messages
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return nil

	case tea.KeyMsg:
		if m.open {
			return m.handleOverlayKey(msg)
		}
		if m.focused && key.Matches(msg, m.keys.Toggle) {
			m.Toggle()
		}
		return nil

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}

	return nil
}

func (m *Model) handleOverlayKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Dismiss):
		m.setOpen(false, "dismiss")
	case key.Matches(msg, m.keys.Up):
		m.list.MoveUp()
	case key.Matches(msg, m.keys.Down):
		m.list.MoveDown()
	case key.Matches(msg, m.keys.Select):
		return m.selectRow(m.list.Cursor())
	}
	return nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if !m.open {
		if isLeftPress(msg) && m.TriggerBounds().Contains(msg.X, msg.Y) {
			m.Toggle()
		}
		return nil
	}

	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		m.list.ScrollBy(-1)
	case msg.Button == tea.MouseButtonWheelDown:
		m.list.ScrollBy(1)
	case isLeftPress(msg):
		if row, ok := m.list.RowAt(msg.X, msg.Y); ok {
			return m.selectRow(row)
		}
		if m.list.Contains(msg.X, msg.Y) {
			return nil
		}
		if m.TriggerBounds().Contains(msg.X, msg.Y) {
			m.Toggle()
			return nil
		}
		m.setOpen(false, "backdrop")
	}
	return nil
}

func isLeftPress(msg tea.MouseMsg) bool {
	return msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft
}

// selectRow reports the option at index i and closes the overlay.
// An index outside the option set is ignored.
func (m *Model) selectRow(i int) tea.Cmd {
	opt, ok := m.list.At(i)
	if !ok {
		return nil
	}

	m.logger.Debug("dropdown option selected", "name", m.name, "value", opt.Value)

	var cmd tea.Cmd
	if m.onChange != nil {
		cmd = m.onChange(m.name, opt.Value)
	}
	m.setOpen(false, "select")
	return cmd
}

// View renders the trigger inside its container
func (m *Model) View() string {
	return m.appearance.container().Render(m.renderTrigger())
}

// OverlayView renders the full-screen option overlay, or "" when closed
func (m *Model) OverlayView() string {
	if !m.open {
		return ""
	}
	return m.list.Render()
}

// TriggerBounds returns the trigger rectangle in screen cells
func (m *Model) TriggerBounds() overlay.Rect {
	c := m.appearance.container()
	trigger := m.renderTrigger()
	return overlay.Rect{
		X:      m.x + c.GetMarginLeft() + c.GetBorderLeftSize() + c.GetPaddingLeft(),
		Y:      m.y + c.GetMarginTop() + c.GetBorderTopSize() + c.GetPaddingTop(),
		Width:  lipgloss.Width(trigger),
		Height: lipgloss.Height(trigger),
	}
}

func (m *Model) renderTrigger() string {
	a := m.appearance
	label := m.Label()
	width := max(a.TextSize, lipgloss.Width(label))
	content := a.labelStyle().Width(width).Render(label)
	if a.TrailingIcon != "" {
		content = lipgloss.JoinHorizontal(lipgloss.Center,
			content,
			a.labelStyle().Render(" "+a.TrailingIcon))
	}
	return a.triggerStyle().Render(content)
}

// ShortHelp implements help.KeyMap for the current state
func (m *Model) ShortHelp() []key.Binding {
	if m.open {
		return []key.Binding{m.keys.Up, m.keys.Down, m.keys.Select, m.keys.Dismiss}
	}
	return []key.Binding{m.keys.Toggle}
}

// FullHelp implements help.KeyMap
func (m *Model) FullHelp() [][]key.Binding {
	return [][]key.Binding{m.ShortHelp()}
}
