package ui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	ColorAccent = lipgloss.AdaptiveColor{
		Light: "#399ee6",
		Dark:  "#59c2ff",
	}
	ColorMuted = lipgloss.AdaptiveColor{
		Light: "#828c99",
		Dark:  "#6c7680",
	}
	ColorFail = lipgloss.AdaptiveColor{
		Light: "#f07171",
		Dark:  "#f07178",
	}
)

var (
	AccentStyle = lipgloss.NewStyle().Foreground(ColorAccent)
	MutedStyle  = lipgloss.NewStyle().Foreground(ColorMuted)
	FailStyle   = lipgloss.NewStyle().Foreground(ColorFail)
)

// HeaderStyle for section headers - bold with accent color
var HeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent)

// RenderAccent renders text with accent (blue) styling
func RenderAccent(s string) string {
	if !ShouldUseColor() {
		return s
	}
	return AccentStyle.Render(s)
}

// RenderMuted renders text with muted (gray) styling
func RenderMuted(s string) string {
	if !ShouldUseColor() {
		return s
	}
	return MutedStyle.Render(s)
}

// RenderHeader renders a section header
func RenderHeader(s string) string {
	if !ShouldUseColor() {
		return s
	}
	return HeaderStyle.Render(s)
}
