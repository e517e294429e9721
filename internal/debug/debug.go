// Package debug provides env-gated diagnostic output.
//
// Failures the UI deliberately swallows (transport errors, not-found on
// delete) are still reported here so they are not lost entirely.
package debug

import (
	"fmt"
	"os"
	"sync"
)

var (
	mu      sync.Mutex
	enabled = os.Getenv("ISSUETRACK_DEBUG") != ""
)

// SetVerbose force-enables diagnostic output (wired to --verbose).
func SetVerbose(verbose bool) {
	mu.Lock()
	defer mu.Unlock()
	if verbose {
		enabled = true
	}
}

// Enabled reports whether diagnostic output is active.
func Enabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return enabled
}

// Logf writes a diagnostic line to stderr when enabled.
func Logf(format string, args ...interface{}) {
	if !Enabled() {
		return
	}
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}
