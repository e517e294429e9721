// Package store holds the authoritative in-memory issue collection.
//
// The store is the only sanctioned mutation path into the collection.
// Insertion order is preserved for listing, and every operation is
// all-or-nothing: a failed call leaves the collection untouched.
package store

import (
	"errors"
	"fmt"
	"sync"

	"github.com/trailhead-labs/issuetrack/internal/types"
)

// ErrNotFound is returned when no issue with the requested ID exists.
var ErrNotFound = errors.New("issue not found")

// ErrDuplicateID is returned when inserting an issue whose ID is already taken.
var ErrDuplicateID = errors.New("id already exists")

// Store is an ordered mapping from issue ID to record. All operations
// serialize under an internal lock, so a Store is safe for concurrent use
// by HTTP handlers.
type Store struct {
	mu     sync.RWMutex
	issues []types.Issue
}

// New returns an empty store.
func New() *Store {
	return &Store{}
}

// NewSeeded returns a store preloaded with the given issues, in order.
// Seed data must satisfy the same invariants as created issues.
func NewSeeded(seed []types.Issue) (*Store, error) {
	s := New()
	for _, issue := range seed {
		if _, err := s.Insert(issue); err != nil {
			return nil, fmt.Errorf("seed issue %d: %w", issue.ID, err)
		}
	}
	return s, nil
}

// List returns the full collection in insertion order. The returned slice
// is a copy; callers may hold it across subsequent mutations.
func (s *Store) List() []types.Issue {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]types.Issue, len(s.issues))
	copy(out, s.issues)
	return out
}

// Len returns the number of stored issues.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.issues)
}

// Insert appends a new issue. It fails with ErrDuplicateID when an issue
// with the same ID already exists; the duplicate check and the append are
// one atomic step under the write lock.
func (s *Store) Insert(issue types.Issue) (types.Issue, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.issues {
		if existing.ID == issue.ID {
			return types.Issue{}, ErrDuplicateID
		}
	}
	s.issues = append(s.issues, issue)
	return issue, nil
}

// Replace overwrites the title and description of the issue with the given
// ID, leaving its ID and list position unchanged. Fails with ErrNotFound
// when the ID is unknown.
func (s *Store) Replace(id int, title, description string) (types.Issue, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.issues {
		if s.issues[i].ID == id {
			s.issues[i].Title = title
			s.issues[i].Description = description
			return s.issues[i], nil
		}
	}
	return types.Issue{}, ErrNotFound
}

// Remove deletes the issue with the given ID. Fails with ErrNotFound when
// the ID is unknown.
func (s *Store) Remove(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.issues {
		if s.issues[i].ID == id {
			s.issues = append(s.issues[:i], s.issues[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
