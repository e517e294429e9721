package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/trailhead-labs/issuetrack/internal/form"
)

// View renders the form above the issue list.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Issue Tracker"))
	b.WriteString("\n\n")

	b.WriteString(m.renderField("ID", focusID, form.FieldID))
	b.WriteString(m.renderField("Title", focusTitle, form.FieldTitle))
	b.WriteString(m.renderField("Description", focusDescription, form.FieldDescription))

	b.WriteString("\n")
	b.WriteString(m.renderSubmitLine())
	b.WriteString("\n\n")

	b.WriteString(titleStyle.Render("Issues"))
	b.WriteString("\n")
	b.WriteString(m.renderList())

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(helpStyle.Render(m.status))
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("tab: next field · enter: submit · e: edit · d: delete · esc: cancel · q: quit"))
	b.WriteString("\n")

	return b.String()
}

func (m *Model) renderField(label string, zone int, field form.Field) string {
	style := labelStyle
	if zone == focusID && m.form.IDLocked() {
		style = disabledStyle
		label += " (locked)"
	}

	line := fmt.Sprintf("%s\n%s\n", style.Render(label), m.inputs[zone].View())
	if msg := m.form.FieldError(field); msg != "" && m.form.State() != form.StateEmpty {
		line += errorStyle.Render(msg) + "\n"
	}
	return line
}

func (m *Model) renderSubmitLine() string {
	action := "Create"
	if m.form.Mode() == form.ModeEdit {
		action = "Update"
	}

	switch {
	case m.form.State() == form.StateSubmitting:
		return helpStyle.Render(action + " — submitting...")
	case m.form.CanSubmit():
		return selectedStyle.Render("[ " + action + " ]")
	default:
		return disabledStyle.Render("[ " + action + " ] (disabled)")
	}
}

func (m *Model) renderList() string {
	if !m.loaded {
		return helpStyle.Render("loading...")
	}
	if m.list.Len() == 0 {
		return helpStyle.Render("no issues")
	}

	var b strings.Builder
	for i := 0; i < m.list.Len(); i++ {
		issue := m.list.At(i)
		line := fmt.Sprintf("%d - %s", issue.ID, issue.Title)
		if i == m.selected && m.focus == focusList {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().PaddingLeft(4).Foreground(Colors.Muted).Render(issue.Description))
		b.WriteString("\n")
	}
	return b.String()
}
