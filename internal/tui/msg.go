package tui

import "github.com/trailhead-labs/issuetrack/internal/types"

// Msg is the sealed interface for all TUI messages.
type Msg interface {
	sealed()
}

// issuesLoadedMsg is sent when the startup list fetch completes.
type issuesLoadedMsg struct {
	Issues []types.Issue
}

func (issuesLoadedMsg) sealed() {}

// createdMsg is sent when a create request succeeds.
type createdMsg struct {
	Issue types.Issue
}

func (createdMsg) sealed() {}

// updatedMsg is sent when an update request succeeds.
type updatedMsg struct {
	Issue types.Issue
}

func (updatedMsg) sealed() {}

// deletedMsg is sent when a delete request succeeds.
type deletedMsg struct {
	ID int
}

func (deletedMsg) sealed() {}

// requestFailedMsg is sent when any request fails. Op names the operation
// for diagnostics.
type requestFailedMsg struct {
	Op  string
	Err error
}

func (requestFailedMsg) sealed() {}
