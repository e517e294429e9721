package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trailhead-labs/issuetrack/internal/types"
)

func seed() *List {
	return NewList([]types.Issue{
		{ID: 1001, Title: "A", Description: "a"},
		{ID: 1002, Title: "B", Description: "b"},
		{ID: 1003, Title: "C", Description: "c"},
	})
}

func TestApplyCreateAppends(t *testing.T) {
	l := seed()
	l.ApplyCreate(types.Issue{ID: 2000, Title: "N", Description: "n"})

	assert.Equal(t, 4, l.Len())
	assert.Equal(t, 2000, l.At(3).ID)
}

func TestApplyUpdateReplacesInPlace(t *testing.T) {
	l := seed()
	l.ApplyUpdate(types.Issue{ID: 1002, Title: "B2", Description: "b2"})

	assert.Equal(t, 3, l.Len())
	assert.Equal(t, types.Issue{ID: 1002, Title: "B2", Description: "b2"}, l.At(1))
	assert.Equal(t, "A", l.At(0).Title)
	assert.Equal(t, "C", l.At(2).Title)
}

func TestApplyUpdateUnknownIDIsNoop(t *testing.T) {
	l := seed()
	l.ApplyUpdate(types.Issue{ID: 9000, Title: "X", Description: "x"})
	assert.Equal(t, seed().Issues(), l.Issues())
}

func TestApplyDelete(t *testing.T) {
	l := seed()
	l.ApplyDelete(1002)

	assert.Equal(t, 2, l.Len())
	assert.Equal(t, 1001, l.At(0).ID)
	assert.Equal(t, 1003, l.At(1).ID)

	// Idempotent.
	l.ApplyDelete(1002)
	assert.Equal(t, 2, l.Len())
}

func TestIssuesReturnsCopy(t *testing.T) {
	l := seed()
	got := l.Issues()
	got[0].Title = "mutated"
	assert.Equal(t, "A", l.At(0).Title)
}

func TestNewListCopiesInput(t *testing.T) {
	src := []types.Issue{{ID: 1001, Title: "A", Description: "a"}}
	l := NewList(src)
	src[0].Title = "mutated"
	assert.Equal(t, "A", l.At(0).Title)
}
