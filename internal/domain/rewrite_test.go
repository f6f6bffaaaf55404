package domain

import "testing"

func TestRewriteDocument(t *testing.T) {
	content := "![alt text](old/pic.png \"title\")\n" +
		"[intro](intro.md)\n" +
		"<img class=\"wide\" src=\"gone.jpg\">\n"

	refs := ExtractReferences(content)
	if len(refs) != 3 {
		t.Fatalf("got %d refs", len(refs))
	}

	resolutions := []Resolution{
		{Kind: ResolutionResolved, NewPath: "assets/pic.png"},
		{Kind: ResolutionCurrent},
		{Kind: ResolutionAmbiguous, Candidates: []string{"a/gone.jpg", "b/gone.jpg"}},
	}

	got, n := RewriteDocument(content, refs, resolutions)
	if n != 1 {
		t.Fatalf("replacements = %d, want 1", n)
	}

	want := "![alt text](assets/pic.png \"title\")\n" +
		"[intro](intro.md)\n" +
		"<img class=\"wide\" src=\"gone.jpg\">\n"
	if got != want {
		t.Errorf("rewritten content:\n%s\nwant:\n%s", got, want)
	}
}

func TestRewriteDocumentNoChanges(t *testing.T) {
	content := "![a](x.png) [b](y.md)"
	refs := ExtractReferences(content)
	resolutions := []Resolution{
		{Kind: ResolutionUnresolved},
		{Kind: ResolutionCurrent},
	}

	got, n := RewriteDocument(content, refs, resolutions)
	if n != 0 {
		t.Errorf("replacements = %d, want 0", n)
	}
	if got != content {
		t.Error("content changed despite zero replacements")
	}
}

func TestRewriteDocumentIdenticalPathNotCounted(t *testing.T) {
	content := "![a](assets/x.png)"
	refs := ExtractReferences(content)
	resolutions := []Resolution{
		{Kind: ResolutionResolved, NewPath: "assets/x.png"},
	}

	_, n := RewriteDocument(content, refs, resolutions)
	if n != 0 {
		t.Errorf("replacements = %d, want 0 for identical path", n)
	}
}

func TestRewriteDocumentMultiple(t *testing.T) {
	content := "![a](one.png) middle ![b](two.png)"
	refs := ExtractReferences(content)
	resolutions := []Resolution{
		{Kind: ResolutionResolved, NewPath: "img/one.png"},
		{Kind: ResolutionResolved, NewPath: "img/two.png"},
	}

	got, n := RewriteDocument(content, refs, resolutions)
	if n != 2 {
		t.Fatalf("replacements = %d, want 2", n)
	}
	want := "![a](img/one.png) middle ![b](img/two.png)"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
