package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/trailhead-labs/issuetrack/internal/api"
	"github.com/trailhead-labs/issuetrack/internal/validation"
)

var (
	updateTitle       string
	updateDescription string
)

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update an issue's title and description",
	Long: `Update an existing issue. Fields not given keep their current value;
the ID itself never changes.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			FatalError("invalid issue ID: %s", args[0])
		}
		if !cmd.Flags().Changed("title") && !cmd.Flags().Changed("description") {
			FatalError("nothing to update: pass --title and/or --description")
		}

		client := newClient()

		title, description := updateTitle, updateDescription
		if !cmd.Flags().Changed("title") || !cmd.Flags().Changed("description") {
			// Fill the missing field from the current issue.
			issues, err := client.List(cmd.Context())
			if err != nil {
				FatalError("%v", err)
			}
			found := false
			for _, issue := range issues {
				if issue.ID != id {
					continue
				}
				found = true
				if !cmd.Flags().Changed("title") {
					title = issue.Title
				}
				if !cmd.Flags().Changed("description") {
					description = issue.Description
				}
			}
			if !found {
				FatalError("Issue not found")
			}
		}

		if verr := validation.CheckUpdate(title, description); verr != nil {
			FatalError("%s", verr.Message)
		}

		issue, err := client.Update(cmd.Context(), id, title, description)
		if err != nil {
			if api.IsNotFound(err) {
				FatalError("Issue not found")
			}
			FatalError("%v", err)
		}

		if jsonOutput {
			outputJSON(issue)
			return
		}
		green := color.New(color.FgGreen).SprintFunc()
		fmt.Printf("%s Updated issue %d\n", green("✓"), issue.ID)
	},
}

func init() {
	updateCmd.Flags().StringVar(&updateTitle, "title", "", "New title")
	updateCmd.Flags().StringVar(&updateDescription, "description", "", "New description")
	rootCmd.AddCommand(updateCmd)
}
