// Package ui provides terminal styling for issuetrack CLI output.
package ui

import (
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// IsTerminal reports whether stdout is attached to a terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// ShouldUseColor reports whether CLI output should be colorized.
// Honors NO_COLOR, CLICOLOR=0, and CLICOLOR_FORCE per the informal
// convention at https://no-color.org and https://bixense.com/clicolors/.
func ShouldUseColor() bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	if os.Getenv("CLICOLOR") == "0" {
		return false
	}
	if os.Getenv("CLICOLOR_FORCE") != "" && os.Getenv("CLICOLOR_FORCE") != "0" {
		return true
	}
	return IsTerminal() && termenv.EnvColorProfile() != termenv.Ascii
}
