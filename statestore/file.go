package statestore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// NewFile creates a store backed by a single JSON file. The file holds a JSON-encoded array of category names. A
// missing file is treated as an empty set.
func NewFile(path string) (Store, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("error determining state file absolute path %s (%w)", path, err)
	}
	return &fileStore{
		path: absPath,
	}, nil
}

type fileStore struct {
	path string
}

func (s *fileStore) Load(_ context.Context) ([]string, error) {
	contents, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to read state file %s (%w)", s.path, err)
	}
	var categories []string
	if err := json.Unmarshal(contents, &categories); err != nil {
		return nil, fmt.Errorf("failed to decode state file %s (%w)", s.path, err)
	}
	return categories, nil
}

func (s *fileStore) Save(_ context.Context, categories []string) error {
	if categories == nil {
		categories = []string{}
	}
	contents, err := json.Marshal(categories)
	if err != nil {
		return fmt.Errorf("failed to encode state (%w)", err)
	}
	if err := os.WriteFile(s.path, contents, 0600); err != nil {
		return fmt.Errorf("failed to write state file %s (%w)", s.path, err)
	}
	return nil
}
