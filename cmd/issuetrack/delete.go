package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/trailhead-labs/issuetrack/internal/api"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an issue",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			FatalError("invalid issue ID: %s", args[0])
		}

		if err := newClient().Delete(cmd.Context(), id); err != nil {
			if api.IsNotFound(err) {
				FatalError("Issue not found")
			}
			FatalError("%v", err)
		}

		if jsonOutput {
			outputJSON(map[string]interface{}{"deleted": id})
			return
		}
		green := color.New(color.FgGreen).SprintFunc()
		fmt.Printf("%s Deleted issue %d\n", green("✓"), id)
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
