package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/trailhead-labs/issuetrack/internal/ui"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all issues",
	Run: func(cmd *cobra.Command, args []string) {
		issues, err := newClient().List(cmd.Context())
		if err != nil {
			FatalError("%v", err)
		}

		if jsonOutput {
			outputJSON(issues)
			return
		}

		if len(issues) == 0 {
			fmt.Println("No issues found.")
			return
		}

		for _, issue := range issues {
			fmt.Printf("%s  %s\n", ui.RenderAccent(strconv.Itoa(issue.ID)), issue.Title)
			fmt.Printf("      %s\n", ui.RenderMuted(issue.Description))
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
