package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/trailhead-labs/issuetrack/internal/tui"
)

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Open the interactive terminal UI",
	Long: `Open a full-screen terminal UI with a create/edit form and the issue list.

The form mirrors the server's validation rules: the submit action stays
disabled until every field is valid and something actually changed.`,
	Run: func(cmd *cobra.Command, args []string) {
		p := tea.NewProgram(tui.NewModel(newClient()), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			FatalError("%v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(uiCmd)
}
