package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/trailhead-labs/issuetrack/internal/ui"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one issue in detail",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			FatalError("invalid issue ID: %s", args[0])
		}

		issues, err := newClient().List(cmd.Context())
		if err != nil {
			FatalError("%v", err)
		}

		for _, issue := range issues {
			if issue.ID != id {
				continue
			}
			if jsonOutput {
				outputJSON(issue)
				return
			}
			fmt.Println(ui.RenderHeader(fmt.Sprintf("#%d %s", issue.ID, issue.Title)))
			fmt.Println(strings.TrimRight(ui.RenderMarkdown(issue.Description), "\n"))
			return
		}

		FatalError("Issue not found")
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
