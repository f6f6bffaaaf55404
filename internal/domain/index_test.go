package domain

import "testing"

func indexFixture() *PathIndex {
	files := []FileRecord{
		NewFileRecord("/v/intro.md", "intro.md"),
		NewFileRecord("/v/notes/intro-renamed.md", "notes/intro-renamed.md"),
		NewFileRecord("/v/assets/pic.png", "assets/pic.png"),
		NewFileRecord("/v/other/pic.png", "other/pic.png"),
		NewFileRecord("/v/assets/chart.svg", "assets/chart.svg"),
	}
	return BuildPathIndex(files)
}

func TestPathIndexNamespaces(t *testing.T) {
	ix := indexFixture()

	if ix.DocumentCount() != 2 {
		t.Errorf("DocumentCount = %d, want 2", ix.DocumentCount())
	}
	if ix.AttachmentCount() != 3 {
		t.Errorf("AttachmentCount = %d, want 3", ix.AttachmentCount())
	}

	if got := ix.AttachmentCandidates("chart.svg"); len(got) != 1 || got[0] != "assets/chart.svg" {
		t.Errorf("AttachmentCandidates(chart.svg) = %v", got)
	}
	if got := ix.AttachmentCandidates("pic.png"); len(got) != 2 {
		t.Errorf("AttachmentCandidates(pic.png) = %v, want two candidates", got)
	}
	// Documents never answer attachment lookups.
	if got := ix.AttachmentCandidates("intro.md"); len(got) != 0 {
		t.Errorf("AttachmentCandidates(intro.md) = %v, want none", got)
	}
	// Stem lookup for extensionless references.
	if got := ix.AttachmentCandidates("chart"); len(got) != 1 {
		t.Errorf("AttachmentCandidates(chart) = %v", got)
	}
	if got := ix.DocumentCandidates("intro"); len(got) != 1 || got[0] != "intro.md" {
		t.Errorf("DocumentCandidates(intro) = %v", got)
	}
}

func TestFuzzyDocumentCandidates(t *testing.T) {
	ix := indexFixture()

	// "intro.md" is contained in "intro-renamed": both directions counted.
	got := ix.FuzzyDocumentCandidates("intro.md")
	if len(got) != 2 {
		t.Fatalf("FuzzyDocumentCandidates(intro.md) = %v, want 2", got)
	}

	got = ix.FuzzyDocumentCandidates("intro-renamed.md")
	if len(got) != 2 {
		t.Errorf("two-sided containment should also match the shorter stem, got %v", got)
	}

	if got := ix.FuzzyDocumentCandidates("missing.md"); len(got) != 0 {
		t.Errorf("FuzzyDocumentCandidates(missing.md) = %v, want none", got)
	}
}

func TestDuplicateGroups(t *testing.T) {
	ix := indexFixture()

	groups := ix.DuplicateGroups()
	if len(groups) != 1 {
		t.Fatalf("got %d duplicate groups, want 1: %v", len(groups), groups)
	}
	if groups[0].Name != "pic.png" {
		t.Errorf("group name = %q", groups[0].Name)
	}
	if len(groups[0].Paths) != 2 || groups[0].Paths[0] != "assets/pic.png" {
		t.Errorf("group paths = %v", groups[0].Paths)
	}
}

func TestIndexEntries(t *testing.T) {
	ix := indexFixture()

	entries := ix.Entries()
	if len(entries) == 0 {
		t.Fatal("no entries")
	}
	keys := make(map[string]int)
	for _, e := range entries {
		keys[e.Key] = len(e.Candidates)
	}
	if keys["attachment:pic.png"] != 2 {
		t.Errorf("attachment:pic.png candidates = %d, want 2", keys["attachment:pic.png"])
	}
	if keys["document:intro.md"] != 1 {
		t.Errorf("document:intro.md candidates = %d, want 1", keys["document:intro.md"])
	}
}
