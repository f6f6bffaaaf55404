package config

import (
	"testing"
)

func TestDataDir_EnvOverride(t *testing.T) {
	t.Setenv("MENDMD_DATA_DIR", "/custom/data")
	if got := DataDir(); got != "/custom/data" {
		t.Errorf("DataDir() = %q", got)
	}
}

func TestProjects_RoundTrip(t *testing.T) {
	dir := t.TempDir()

	p, err := LoadProjects(dir)
	if err != nil {
		t.Fatalf("LoadProjects failed: %v", err)
	}
	if len(p.Projects) != 0 {
		t.Fatalf("fresh list not empty: %v", p.Projects)
	}

	p.Remember("/vault/a", []string{"image"})
	p.Remember("/vault/b", []string{"image", "office"})
	if err := SaveProjects(dir, p); err != nil {
		t.Fatalf("SaveProjects failed: %v", err)
	}

	loaded, err := LoadProjects(dir)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if len(loaded.Projects) != 2 {
		t.Fatalf("got %d projects, want 2", len(loaded.Projects))
	}
	if loaded.Projects[0].Root != "/vault/b" {
		t.Errorf("newest first violated: %v", loaded.Projects)
	}
}

func TestRemember_DedupesAndCaps(t *testing.T) {
	p := &Projects{}

	p.Remember("/a", nil)
	p.Remember("/b", nil)
	p.Remember("/a", []string{"video"})
	if len(p.Projects) != 2 {
		t.Fatalf("got %d projects, want 2", len(p.Projects))
	}
	if p.Projects[0].Root != "/a" || p.Projects[0].Categories[0] != "video" {
		t.Errorf("re-remembered project not moved to front: %v", p.Projects)
	}

	for i := 0; i < 20; i++ {
		p.Remember(string(rune('a'+i))+"/vault", nil)
	}
	if len(p.Projects) > 10 {
		t.Errorf("list grew to %d, cap is 10", len(p.Projects))
	}
}
