// Package reconcile maintains the client's displayed issue collection.
//
// The displayed list only changes in direct response to a locally-initiated
// mutation's confirmed success; there is no polling or subscription.
package reconcile

import "github.com/trailhead-labs/issuetrack/internal/types"

// List is the ordered collection the client displays.
type List struct {
	issues []types.Issue
}

// NewList initializes the displayed collection from a full-list fetch.
func NewList(issues []types.Issue) *List {
	out := make([]types.Issue, len(issues))
	copy(out, issues)
	return &List{issues: out}
}

// Issues returns the displayed collection in order. The returned slice is
// a copy.
func (l *List) Issues() []types.Issue {
	out := make([]types.Issue, len(l.issues))
	copy(out, l.issues)
	return out
}

// Len returns the number of displayed issues.
func (l *List) Len() int { return len(l.issues) }

// At returns the issue at position i.
func (l *List) At(i int) types.Issue { return l.issues[i] }

// ApplyCreate appends a server-confirmed new record to the end.
func (l *List) ApplyCreate(issue types.Issue) {
	l.issues = append(l.issues, issue)
}

// ApplyUpdate replaces the entry whose ID matches, at its existing
// position. Other entries are untouched; an unknown ID is a no-op.
func (l *List) ApplyUpdate(issue types.Issue) {
	for i := range l.issues {
		if l.issues[i].ID == issue.ID {
			l.issues[i] = issue
			return
		}
	}
}

// ApplyDelete removes the entry whose ID matches. Unknown IDs are a no-op,
// so applying the same delete twice is harmless.
func (l *List) ApplyDelete(id int) {
	for i := range l.issues {
		if l.issues[i].ID == id {
			l.issues = append(l.issues[:i], l.issues[i+1:]...)
			return
		}
	}
}
