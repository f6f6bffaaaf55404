package domain

import "testing"

func TestExtractReferences(t *testing.T) {
	content := "# Title\n" +
		"![diagram](assets/diagram.png)\n" +
		"See [the notes](../notes/intro.md \"intro\") for details.\n" +
		"<img width=\"40\" src=\"img/photo.jpg\">\n" +
		"<image href='img/icon.svg'/>\n" +
		"An external [link](https://example.com/a.png) stays.\n"

	refs := ExtractReferences(content)
	if len(refs) != 5 {
		t.Fatalf("got %d references, want 5", len(refs))
	}

	want := []struct {
		kind SyntaxKind
		path string
	}{
		{SyntaxMarkdownImage, "assets/diagram.png"},
		{SyntaxMarkdownLink, "../notes/intro.md"},
		{SyntaxHTMLImgSrc, "img/photo.jpg"},
		{SyntaxHTMLImageHref, "img/icon.svg"},
		{SyntaxMarkdownLink, "https://example.com/a.png"},
	}
	for i, w := range want {
		if refs[i].Kind != w.kind {
			t.Errorf("ref %d kind = %s, want %s", i, refs[i].Kind, w.kind)
		}
		if refs[i].RawPath != w.path {
			t.Errorf("ref %d path = %q, want %q", i, refs[i].RawPath, w.path)
		}
		if content[refs[i].Start:refs[i].End] != w.path {
			t.Errorf("ref %d span %q does not match RawPath %q",
				i, content[refs[i].Start:refs[i].End], w.path)
		}
	}
}

func TestExtractReferencesAngleBrackets(t *testing.T) {
	content := "![x](<assets/with space.png>)"
	refs := ExtractReferences(content)
	if len(refs) != 1 {
		t.Fatalf("got %d references, want 1", len(refs))
	}
	// The pattern stops at whitespace; the angle form keeps the leading
	// segment only, matching the original extraction behavior.
	if refs[0].Kind != SyntaxMarkdownImage {
		t.Errorf("kind = %s", refs[0].Kind)
	}
}

func TestIsExternalPath(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"https://example.com/x.png", true},
		{"HTTP://EXAMPLE.COM", true},
		{"mailto:me@example.com", true},
		{"data:image/png;base64,xxxx", true},
		{"//cdn.example.com/x.png", true},
		{"#section", true},
		{"/abs/path.png", true},
		{`\\server\share`, true},
		{`C:\vault\a.png`, true},
		{"assets/x.png", false},
		{"../x.png", false},
		{"x.png", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := IsExternalPath(tt.path); got != tt.want {
				t.Errorf("IsExternalPath(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}
