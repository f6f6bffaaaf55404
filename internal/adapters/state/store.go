package state

import (
	"encoding/json"
	"os"
	"path/filepath"

	"mendmd/internal/domain"
	"mendmd/internal/ports"
)

// Record filenames, kept from the original tool so leftover traces are
// recognizable.
const (
	RenameMapFile = "attachment_rename_map.json"
	PathIndexFile = "file_path_index.json"
)

// Store persists the two recoverable run records as human-inspectable
// JSON in a data directory. Every rename is flushed immediately, so a
// crash mid-run leaves a usable partial map behind.
type Store struct {
	dir     string
	renames []domain.RenameMapping
}

// Ensure Store implements StateStore
var _ ports.StateStore = (*Store)(nil)

// NewStore creates a store writing into dir.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// AppendRename records one rename and rewrites the map record on disk.
func (s *Store) AppendRename(m domain.RenameMapping) error {
	s.renames = append(s.renames, m)
	return s.writeJSON(RenameMapFile, s.renames)
}

// SaveIndex writes the path index snapshot.
func (s *Store) SaveIndex(entries []domain.IndexEntry) error {
	return s.writeJSON(PathIndexFile, entries)
}

// LoadTrace reads a rename map left behind by an aborted run. Missing
// file means no trace. The content is diagnostic only.
func (s *Store) LoadTrace() ([]domain.RenameMapping, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, RenameMapFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var trace []domain.RenameMapping
	if err := json.Unmarshal(data, &trace); err != nil {
		return nil, err
	}
	return trace, nil
}

// Cleanup removes both records. Missing files are fine.
func (s *Store) Cleanup() error {
	var firstErr error
	for _, name := range []string{RenameMapFile, PathIndexFile} {
		if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !os.IsNotExist(err) {
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

func (s *Store) writeJSON(name string, v any) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.dir, name), data, 0644)
}
