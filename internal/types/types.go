// Package types defines core data structures for the issuetrack system.
package types

// MinID and MaxID bound the caller-chosen issue identifier space.
// An issue ID is always a 4-digit number.
const (
	MinID = 1000
	MaxID = 9999
)

// Issue represents a tracked record. The ID is chosen by the caller at
// creation time and is immutable afterward. Title and description are
// never empty once the record is stored.
type Issue struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ValidID reports whether id falls in the 4-digit range.
func ValidID(id int) bool {
	return id >= MinID && id <= MaxID
}
