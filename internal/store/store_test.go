package store

import (
	"errors"
	"sync"
	"testing"

	"github.com/trailhead-labs/issuetrack/internal/types"
)

func TestInsertAndList(t *testing.T) {
	s := New()

	if _, err := s.Insert(types.Issue{ID: 1234, Title: "T", Description: "D"}); err != nil {
		t.Fatalf("insert: %v", err)
	}

	got := s.List()
	if len(got) != 1 {
		t.Fatalf("len(list) = %d, want 1", len(got))
	}
	want := types.Issue{ID: 1234, Title: "T", Description: "D"}
	if got[0] != want {
		t.Errorf("list[0] = %+v, want %+v", got[0], want)
	}
}

func TestInsertDuplicateLeavesStoreUntouched(t *testing.T) {
	s := New()
	original := types.Issue{ID: 1234, Title: "first", Description: "one"}
	if _, err := s.Insert(original); err != nil {
		t.Fatalf("insert: %v", err)
	}

	_, err := s.Insert(types.Issue{ID: 1234, Title: "second", Description: "two"})
	if !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("err = %v, want ErrDuplicateID", err)
	}

	got := s.List()
	if len(got) != 1 || got[0] != original {
		t.Errorf("store changed after duplicate insert: %+v", got)
	}
}

func TestListPreservesInsertionOrder(t *testing.T) {
	s := New()
	ids := []int{2001, 1001, 3001, 1500}
	for _, id := range ids {
		if _, err := s.Insert(types.Issue{ID: id, Title: "T", Description: "D"}); err != nil {
			t.Fatalf("insert %d: %v", id, err)
		}
	}
	got := s.List()
	for i, id := range ids {
		if got[i].ID != id {
			t.Errorf("list[%d].ID = %d, want %d", i, got[i].ID, id)
		}
	}
}

func TestReplaceKeepsPosition(t *testing.T) {
	s := New()
	for _, id := range []int{1001, 1002, 1003} {
		s.Insert(types.Issue{ID: id, Title: "T", Description: "D"})
	}

	updated, err := s.Replace(1002, "T2", "D2")
	if err != nil {
		t.Fatalf("replace: %v", err)
	}
	if updated.ID != 1002 || updated.Title != "T2" || updated.Description != "D2" {
		t.Errorf("replace returned %+v", updated)
	}

	got := s.List()
	if got[1].Title != "T2" || got[1].Description != "D2" {
		t.Errorf("list[1] = %+v, want updated record in place", got[1])
	}
	if got[0].ID != 1001 || got[2].ID != 1003 {
		t.Errorf("neighbor records disturbed: %+v", got)
	}
}

func TestReplaceUnknownID(t *testing.T) {
	s := New()
	s.Insert(types.Issue{ID: 1001, Title: "T", Description: "D"})

	_, err := s.Replace(9000, "T2", "D2")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	if s.Len() != 1 {
		t.Errorf("store size changed on failed replace")
	}
}

func TestRemove(t *testing.T) {
	s := New()
	for _, id := range []int{1001, 1002, 1003} {
		s.Insert(types.Issue{ID: id, Title: "T", Description: "D"})
	}

	if err := s.Remove(1002); err != nil {
		t.Fatalf("remove: %v", err)
	}
	got := s.List()
	if len(got) != 2 || got[0].ID != 1001 || got[1].ID != 1003 {
		t.Errorf("list after remove = %+v", got)
	}

	// Removing the same ID twice reports not-found the second time.
	if err := s.Remove(1002); !errors.Is(err, ErrNotFound) {
		t.Errorf("second remove err = %v, want ErrNotFound", err)
	}
}

func TestListReturnsCopy(t *testing.T) {
	s := New()
	s.Insert(types.Issue{ID: 1001, Title: "T", Description: "D"})

	got := s.List()
	got[0].Title = "mutated"

	if s.List()[0].Title != "T" {
		t.Error("List exposed internal storage")
	}
}

func TestNewSeeded(t *testing.T) {
	seed := []types.Issue{
		{ID: 1001, Title: "Issue 1", Description: "Description for issue 1"},
		{ID: 1002, Title: "Issue 2", Description: "Description for issue 2"},
	}
	s, err := NewSeeded(seed)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if s.Len() != 2 {
		t.Fatalf("len = %d, want 2", s.Len())
	}

	if _, err := NewSeeded([]types.Issue{{ID: 1001}, {ID: 1001}}); err == nil {
		t.Error("expected duplicate seed to fail")
	}
}

func TestConcurrentMutations(t *testing.T) {
	s := New()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			s.Insert(types.Issue{ID: 1000 + id, Title: "T", Description: "D"})
			s.List()
		}(i)
	}
	wg.Wait()

	if s.Len() != 50 {
		t.Errorf("len = %d, want 50", s.Len())
	}
}
