package state

import (
	"os"
	"path/filepath"
	"testing"

	"mendmd/internal/domain"
)

func TestAppendRename_FlushesEachMapping(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)

	first := domain.RenameMapping{
		OriginalPath: "assets/photo.png",
		NewPath:      "assets/2024010112000012310.png",
		Category:     domain.CategoryImage,
		Token:        "2024010112000012310",
	}
	if err := store.AppendRename(first); err != nil {
		t.Fatalf("AppendRename failed: %v", err)
	}

	// Already readable without any explicit save step.
	trace, err := store.LoadTrace()
	if err != nil {
		t.Fatalf("LoadTrace failed: %v", err)
	}
	if len(trace) != 1 || trace[0] != first {
		t.Errorf("trace = %v", trace)
	}

	second := domain.RenameMapping{OriginalPath: "b.mp4", NewPath: "2024010112000012311.mp4"}
	if err := store.AppendRename(second); err != nil {
		t.Fatalf("AppendRename failed: %v", err)
	}
	trace, err = store.LoadTrace()
	if err != nil {
		t.Fatalf("LoadTrace failed: %v", err)
	}
	if len(trace) != 2 {
		t.Errorf("trace length = %d, want 2", len(trace))
	}
}

func TestLoadTrace_MissingFileIsEmpty(t *testing.T) {
	store := NewStore(t.TempDir())
	trace, err := store.LoadTrace()
	if err != nil {
		t.Fatalf("LoadTrace failed: %v", err)
	}
	if trace != nil {
		t.Errorf("trace = %v, want nil", trace)
	}
}

func TestCleanup_RemovesBothRecords(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)

	if err := store.AppendRename(domain.RenameMapping{OriginalPath: "a", NewPath: "b"}); err != nil {
		t.Fatalf("AppendRename failed: %v", err)
	}
	if err := store.SaveIndex([]domain.IndexEntry{{Key: "attachment:b", Candidates: []string{"b"}}}); err != nil {
		t.Fatalf("SaveIndex failed: %v", err)
	}

	if err := store.Cleanup(); err != nil {
		t.Fatalf("Cleanup failed: %v", err)
	}
	for _, name := range []string{RenameMapFile, PathIndexFile} {
		if _, err := os.Stat(filepath.Join(dir, name)); !os.IsNotExist(err) {
			t.Errorf("%s still present after cleanup", name)
		}
	}

	// Idempotent: a second cleanup over nothing is fine.
	if err := store.Cleanup(); err != nil {
		t.Errorf("second Cleanup failed: %v", err)
	}
}
