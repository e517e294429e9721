package tui

import "github.com/charmbracelet/lipgloss"

// Colors is the UI palette.
var Colors = struct {
	Primary  lipgloss.Color
	Muted    lipgloss.Color
	Error    lipgloss.Color
	Selected lipgloss.Color
}{
	Primary:  lipgloss.Color("#6C5CE7"),
	Muted:    lipgloss.Color("#636E72"),
	Error:    lipgloss.Color("#D63031"),
	Selected: lipgloss.Color("#00B894"),
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary)

	labelStyle = lipgloss.NewStyle().
			Foreground(Colors.Muted)

	errorStyle = lipgloss.NewStyle().
			Foreground(Colors.Error)

	selectedStyle = lipgloss.NewStyle().
			Foreground(Colors.Selected).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(Colors.Muted)

	disabledStyle = lipgloss.NewStyle().
			Foreground(Colors.Muted)
)
