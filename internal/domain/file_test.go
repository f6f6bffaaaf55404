package domain

import "testing"

func TestCategoryForExt(t *testing.T) {
	tests := []struct {
		ext  string
		want Category
	}{
		{".md", CategoryDocument},
		{".markdown", CategoryDocument},
		{".PNG", CategoryImage},
		{".jpeg", CategoryImage},
		{".mp4", CategoryVideo},
		{".flac", CategoryAudio},
		{".pdf", CategoryOffice},
		{".xlsx", CategoryOffice},
		{".zip", CategoryOther},
		{"", CategoryOther},
	}

	for _, tt := range tests {
		t.Run(tt.ext, func(t *testing.T) {
			if got := CategoryForExt(tt.ext); got != tt.want {
				t.Errorf("CategoryForExt(%q) = %s, want %s", tt.ext, got, tt.want)
			}
		})
	}
}

func TestNormalizeCategories(t *testing.T) {
	tests := []struct {
		name     string
		selected []string
		want     []Category
		wantErr  bool
	}{
		{
			name:     "empty defaults to image",
			selected: nil,
			want:     []Category{CategoryImage},
		},
		{
			name:     "all expands",
			selected: []string{"all"},
			want:     RenameCategoryOrder,
		},
		{
			name:     "all wins over others",
			selected: []string{"image", "all"},
			want:     RenameCategoryOrder,
		},
		{
			name:     "ordering and dedupe",
			selected: []string{"office", "image", "OFFICE"},
			want:     []Category{CategoryImage, CategoryOffice},
		},
		{
			name:     "other is selectable",
			selected: []string{"other"},
			want:     []Category{CategoryOther},
		},
		{
			name:     "unknown rejected",
			selected: []string{"archive"},
			wantErr:  true,
		},
		{
			name:     "document not renameable",
			selected: []string{"document"},
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeCategories(tt.selected)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("got %v, want %v", got, tt.want)
					break
				}
			}
		})
	}
}

func TestNewFileRecord(t *testing.T) {
	rec := NewFileRecord("/vault/notes/Pic.JPG", "notes/Pic.JPG")
	if rec.Base != "Pic.JPG" {
		t.Errorf("Base = %q", rec.Base)
	}
	if rec.Ext != ".jpg" {
		t.Errorf("Ext = %q", rec.Ext)
	}
	if rec.Category != CategoryImage {
		t.Errorf("Category = %s", rec.Category)
	}
	if rec.IsDocument() {
		t.Error("image record reported as document")
	}
}
