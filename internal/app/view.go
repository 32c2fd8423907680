package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the form, or the open dropdown's overlay over the whole screen
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if open := m.openField(); open != nil {
		return open.OverlayView()
	}

	var b strings.Builder
	b.WriteString(m.renderTitle())

	for i, f := range m.fields {
		marker := strings.Repeat(" ", fieldIndent)
		labelStyle := m.styles.FieldLabel
		if i == m.focus {
			marker = m.styles.FocusMarker.Render("›") + " "
			labelStyle = m.styles.FieldFocused
		}

		b.WriteString("\n")
		b.WriteString(marker + labelStyle.Render(m.labels[f.Name()]))
		b.WriteString("\n")
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, strings.Repeat(" ", fieldIndent), f.View()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatus())
	b.WriteString("\n")
	hints := formHelp{keys: m.keys}
	if focused := m.focusedField(); focused != nil {
		hints.field = focused
	}
	b.WriteString(m.help.View(hints))

	return b.String()
}

func (m Model) renderTitle() string {
	return m.styles.Title.Render(m.cfg.Title)
}

func (m Model) renderStatus() string {
	if m.lastChange == "" {
		return m.styles.StatusHint.Render("No changes yet")
	}
	return m.styles.StatusInfo.Render("Changed ") + m.styles.StatusValue.Render(m.lastChange)
}
