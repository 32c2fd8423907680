// Package app contains the demo form model and TEA implementation.
package app

import (
	"log/slog"
	"maps"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/customselect/internal/config"
	"github.com/riordanpawley/customselect/internal/ui/dropdown"
	"github.com/riordanpawley/customselect/internal/ui/styles"
)

// Columns reserved left of each trigger for the focus marker
const fieldIndent = 2

// Model is the form state. It owns the selected values; the dropdowns only
// display them.
type Model struct {
	cfg    *config.Config
	fields []*dropdown.Model
	labels map[string]string
	values map[string]string
	focus  int

	lastChange string

	// Terminal size
	width  int
	height int

	styles   *styles.Styles
	keys     keyMap
	help     help.Model
	logger   *slog.Logger
	quitting bool
}

// New creates the form with one dropdown per configured field
func New(cfg *config.Config, logger *slog.Logger) Model {
	if logger == nil {
		logger = slog.Default()
	}

	m := Model{
		cfg:    cfg,
		labels: make(map[string]string, len(cfg.Fields)),
		values: make(map[string]string, len(cfg.Fields)),
		styles: styles.New(),
		keys:   defaultKeyMap(),
		help:   help.New(),
		logger: logger,
	}

	for _, f := range cfg.Fields {
		m.fields = append(m.fields, dropdown.New(dropdown.Props{
			Name:        f.Name,
			Options:     f.Options,
			Value:       f.Value,
			OnChange:    dropdown.EmitChange,
			Placeholder: f.Placeholder,
			Appearance:  appearanceFromConfig(f.Appearance),
			Logger:      logger.With("component", "dropdown"),
		}))
		m.values[f.Name] = f.Value
		m.labels[f.Name] = f.Label
		if f.Label == "" {
			m.labels[f.Name] = f.Name
		}
		if dups := f.Options.DuplicateValues(); len(dups) > 0 {
			logger.Warn("field has duplicate option values", "field", f.Name, "values", dups)
		}
	}

	if len(m.fields) > 0 {
		m.fields[0].Focus()
	}
	m.layout()

	return m
}

func appearanceFromConfig(a config.AppearanceConfig) dropdown.Appearance {
	return dropdown.Appearance{
		TextSize:               a.TextSize,
		TriggerTextColor:       lipgloss.Color(a.TriggerTextColor),
		TriggerBorderColor:     lipgloss.Color(a.TriggerBorderColor),
		TriggerBackgroundColor: lipgloss.Color(a.TriggerBackgroundColor),
		TrailingIcon:           a.TrailingIcon,
		MaxVisibleRows:         a.MaxVisibleRows,
	}
}

// Values returns a copy of the current selections keyed by field name
func (m Model) Values() map[string]string {
	return maps.Clone(m.values)
}

// Init returns the initial command for the application
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		for _, f := range m.fields {
			f.SetSize(msg.Width, msg.Height)
		}

	case dropdown.ChangeMsg:
		m = m.handleChange(msg)

	case tea.KeyMsg:
		m, cmd = m.handleKey(msg)

	case tea.MouseMsg:
		cmd = m.handleMouse(msg)
	}

	m.layout()
	return m, cmd
}

// handleChange is the single change handler shared by every field
func (m Model) handleChange(msg dropdown.ChangeMsg) Model {
	field := m.field(msg.Name)
	if field == nil {
		m.logger.Warn("change for unknown field", "field", msg.Name, "value", msg.Value)
		return m
	}

	m.values[msg.Name] = msg.Value
	field.SetValue(msg.Value)
	m.lastChange = msg.Name + " = " + field.Label()
	m.logger.Info("field changed", "field", msg.Name, "value", msg.Value)
	return m
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m.quit()
	}

	// An open overlay takes all other input
	if open := m.openField(); open != nil {
		return m, open.Update(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Next):
		m.setFocus(m.focus + 1)
		return m, nil
	case key.Matches(msg, m.keys.Prev):
		m.setFocus(m.focus - 1)
		return m, nil
	}

	if focused := m.focusedField(); focused != nil {
		return m, focused.Update(msg)
	}
	return m, nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if open := m.openField(); open != nil {
		return open.Update(msg)
	}

	for i, f := range m.fields {
		if f.TriggerBounds().Contains(msg.X, msg.Y) {
			if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
				m.setFocus(i)
			}
			return f.Update(msg)
		}
	}
	return nil
}

func (m Model) quit() (Model, tea.Cmd) {
	m.quitting = true
	m.logger.Info("form closed", "values", m.values)
	return m, tea.Quit
}

func (m *Model) setFocus(i int) {
	if len(m.fields) == 0 {
		return
	}
	i = (i%len(m.fields) + len(m.fields)) % len(m.fields)
	m.fields[m.focus].Blur()
	m.focus = i
	m.fields[m.focus].Focus()
}

func (m Model) focusedField() *dropdown.Model {
	if len(m.fields) == 0 {
		return nil
	}
	return m.fields[m.focus]
}

func (m Model) openField() *dropdown.Model {
	for _, f := range m.fields {
		if f.IsOpen() {
			return f
		}
	}
	return nil
}

func (m Model) field(name string) *dropdown.Model {
	for _, f := range m.fields {
		if f.Name() == name {
			return f
		}
	}
	return nil
}

// layout tells each dropdown where its trigger is drawn. It mirrors View.
func (m Model) layout() {
	y := lipgloss.Height(m.renderTitle())
	for _, f := range m.fields {
		// Field label sits on the line above the trigger
		f.SetPosition(fieldIndent, y+1)
		y += 1 + lipgloss.Height(f.View()) + 1
	}
}
