// Package validation implements the server-side rule set for issue records.
//
// The same rules are evaluated independently by the client form (see
// internal/form); the two must reach identical pass/fail verdicts for
// identical input. Keep changes here mirrored there.
package validation

import (
	"strconv"

	"github.com/trailhead-labs/issuetrack/internal/types"
)

// Wire-visible rule messages. These strings are part of the HTTP contract;
// the client matches some of them literally.
const (
	MsgAllFieldsRequired = "All fields are required"
	MsgIDFormat          = "ID must be a 4-digit number"
)

// Error describes a failed validation rule. Field is empty when the rule
// spans the whole payload (the all-fields presence gate).
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// CheckCreate validates a raw create payload in request order: the presence
// of every field is checked before the ID format, and the store's duplicate
// check only runs after both pass (enforced by the handler). Raw values are
// the strings as seen on the wire, with numeric IDs rendered in decimal.
//
// An ID of "0" counts as missing, matching the original presence semantics.
func CheckCreate(id, title, description string) *Error {
	if idMissing(id) || title == "" || description == "" {
		return &Error{Message: MsgAllFieldsRequired}
	}
	if _, ok := ParseID(id); !ok {
		return &Error{Field: "id", Message: MsgIDFormat}
	}
	return nil
}

// CheckUpdate validates an update payload. The ID is addressed by the
// resource path and is not re-validated here; only title and description
// must be present.
func CheckUpdate(title, description string) *Error {
	if title == "" || description == "" {
		return &Error{Message: MsgAllFieldsRequired}
	}
	return nil
}

// ParseID parses a raw ID and reports whether it is a well-formed 4-digit
// issue ID.
func ParseID(raw string) (int, bool) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return n, types.ValidID(n)
}

func idMissing(id string) bool {
	return id == "" || id == "0"
}
