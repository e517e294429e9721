package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/trailhead-labs/issuetrack/internal/types"
	"github.com/trailhead-labs/issuetrack/internal/validation"
)

// seedEntry is the yaml shape of one seeded issue.
type seedEntry struct {
	ID          int    `yaml:"id"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// DefaultSeed returns the built-in sample issues the server boots with when
// no seed file is configured.
func DefaultSeed() []types.Issue {
	return []types.Issue{
		{ID: 1001, Title: "Issue 1", Description: "Description for issue 1"},
		{ID: 1002, Title: "Issue 2", Description: "Description for issue 2"},
	}
}

// LoadSeed reads a yaml seed file and validates each entry against the same
// rules a create request must pass. Uniqueness is left to the store.
func LoadSeed(path string) ([]types.Issue, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var entries []seedEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse seed file %s: %w", path, err)
	}

	issues := make([]types.Issue, 0, len(entries))
	for i, e := range entries {
		if verr := validation.CheckCreate(strconv.Itoa(e.ID), e.Title, e.Description); verr != nil {
			return nil, fmt.Errorf("seed entry %d (id %d): %s", i, e.ID, verr.Message)
		}
		issues = append(issues, types.Issue{ID: e.ID, Title: e.Title, Description: e.Description})
	}
	return issues, nil
}
