package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/trailhead-labs/issuetrack/internal/api"
	"github.com/trailhead-labs/issuetrack/internal/form"
	"github.com/trailhead-labs/issuetrack/internal/types"
	"github.com/trailhead-labs/issuetrack/internal/validation"
)

var createInteractive bool

var createCmd = &cobra.Command{
	Use:   "create <id> <title> <description>",
	Short: "Create a new issue",
	Long: `Create a new issue with a 4-digit ID.

With --form, an interactive form collects the fields and validates them
as you type, using the same rules the terminal UI applies.`,
	Args: cobra.MaximumNArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		if createInteractive || len(args) == 0 {
			runCreateForm(cmd)
			return
		}
		if len(args) != 3 {
			FatalError("create needs <id> <title> <description> (or --form)")
		}
		createIssue(cmd, args[0], args[1], args[2])
	},
}

func init() {
	createCmd.Flags().BoolVar(&createInteractive, "form", false, "Collect the fields with an interactive form")
	rootCmd.AddCommand(createCmd)
}

func runCreateForm(cmd *cobra.Command) {
	var (
		idStr       string
		title       string
		description string
	)

	f := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("ID").
				Description("4-digit issue number (required)").
				Placeholder("e.g., 1042").
				Value(&idStr).
				Validate(fieldValidator(form.FieldID)),

			huh.NewInput().
				Title("Title").
				Description("Brief summary of the issue (required)").
				Placeholder("e.g., Fix login redirect").
				Value(&title).
				Validate(fieldValidator(form.FieldTitle)),

			huh.NewText().
				Title("Description").
				Description("Detailed context about the issue (required)").
				Placeholder("Explain why this issue exists...").
				CharLimit(5000).
				Value(&description).
				Validate(fieldValidator(form.FieldDescription)),

			huh.NewConfirm().
				Title("Create this issue?").
				Affirmative("Create").
				Negative("Cancel"),
		),
	).WithTheme(huh.ThemeDracula())

	if err := f.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Fprintln(os.Stderr, "Issue creation cancelled.")
			os.Exit(0)
		}
		FatalError("form error: %v", err)
	}

	createIssue(cmd, idStr, title, description)
}

// fieldValidator adapts the shared client-side field rules to huh.
func fieldValidator(field form.Field) func(string) error {
	return func(s string) error {
		if msg := form.ValidateField(field, s); msg != "" {
			return errors.New(msg)
		}
		return nil
	}
}

func createIssue(cmd *cobra.Command, idStr, title, description string) {
	if verr := validation.CheckCreate(idStr, title, description); verr != nil {
		FatalError("%s", verr.Message)
	}
	id, _ := validation.ParseID(idStr)

	issue, err := newClient().Create(cmd.Context(), types.Issue{
		ID:          id,
		Title:       title,
		Description: description,
	})
	if err != nil {
		if api.IsDuplicateID(err) {
			FatalError("ID already exists")
		}
		FatalError("%v", err)
	}

	if jsonOutput {
		outputJSON(issue)
		return
	}
	green := color.New(color.FgGreen).SprintFunc()
	fmt.Printf("%s Created issue %s\n", green("✓"), strconv.Itoa(issue.ID))
}
