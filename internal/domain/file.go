package domain

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Category classifies a vault file by what it is.
type Category string

const (
	CategoryDocument Category = "document"
	CategoryImage    Category = "image"
	CategoryVideo    Category = "video"
	CategoryAudio    Category = "audio"
	CategoryOffice   Category = "office"
	CategoryOther    Category = "other"
)

// DefaultRenameCategory is used when no category selection is given.
const DefaultRenameCategory = CategoryImage

// RenameCategoryOrder is the display/selection order for renameable categories.
var RenameCategoryOrder = []Category{
	CategoryImage,
	CategoryVideo,
	CategoryAudio,
	CategoryOffice,
	CategoryOther,
}

var documentExts = map[string]bool{
	".md":       true,
	".markdown": true,
	".mdown":    true,
	".mkd":      true,
	".mkdown":   true,
}

var categoryExts = map[Category][]string{
	CategoryImage:  {".png", ".jpg", ".jpeg", ".gif", ".bmp", ".webp", ".svg", ".tif", ".tiff", ".heic"},
	CategoryVideo:  {".mp4", ".mov", ".mkv", ".avi", ".wmv", ".flv", ".webm"},
	CategoryAudio:  {".mp3", ".wav", ".aac", ".flac", ".m4a", ".ogg"},
	CategoryOffice: {".pdf", ".doc", ".docx", ".ppt", ".pptx", ".xls", ".xlsx", ".csv", ".wps"},
}

var extCategory = func() map[string]Category {
	m := make(map[string]Category)
	for cat, exts := range categoryExts {
		for _, ext := range exts {
			m[ext] = cat
		}
	}
	return m
}()

// IsDocumentExt reports whether ext (lowercase, with leading dot) is a
// markdown document extension.
func IsDocumentExt(ext string) bool {
	return documentExts[strings.ToLower(ext)]
}

// CategoryForExt maps a file extension to its category. Unknown and empty
// extensions fall into CategoryOther.
func CategoryForExt(ext string) Category {
	ext = strings.ToLower(ext)
	if documentExts[ext] {
		return CategoryDocument
	}
	if cat, ok := extCategory[ext]; ok {
		return cat
	}
	return CategoryOther
}

// FileRecord is an immutable snapshot of one scanned vault file.
type FileRecord struct {
	AbsPath  string   // absolute path on disk
	RelPath  string   // vault-relative, forward slashes
	Base     string   // basename with extension
	Ext      string   // lowercase extension, with leading dot ("" if none)
	Category Category
}

// NewFileRecord builds a record for an absolute path under root. relPath must
// already be vault-relative with forward slashes.
func NewFileRecord(absPath, relPath string) FileRecord {
	base := filepath.Base(relPath)
	ext := strings.ToLower(filepath.Ext(base))
	return FileRecord{
		AbsPath:  absPath,
		RelPath:  relPath,
		Base:     base,
		Ext:      ext,
		Category: CategoryForExt(ext),
	}
}

// IsDocument reports whether the record is a markdown document.
func (f FileRecord) IsDocument() bool {
	return f.Category == CategoryDocument
}

// NormalizeCategories parses a user-supplied category selection.
// "all" expands to every renameable category, an empty selection defaults to
// images, and unknown names are rejected. The result follows
// RenameCategoryOrder and contains no duplicates.
func NormalizeCategories(selected []string) ([]Category, error) {
	if len(selected) == 0 {
		return []Category{DefaultRenameCategory}, nil
	}

	want := make(map[Category]bool)
	for _, s := range selected {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" {
			continue
		}
		if s == "all" {
			for _, cat := range RenameCategoryOrder {
				want[cat] = true
			}
			continue
		}
		cat := Category(s)
		if !isRenameCategory(cat) {
			return nil, fmt.Errorf("unknown rename category: %s", s)
		}
		want[cat] = true
	}

	var out []Category
	for _, cat := range RenameCategoryOrder {
		if want[cat] {
			out = append(out, cat)
		}
	}
	if len(out) == 0 {
		out = []Category{DefaultRenameCategory}
	}
	return out, nil
}

func isRenameCategory(cat Category) bool {
	for _, c := range RenameCategoryOrder {
		if c == cat {
			return true
		}
	}
	return false
}

// CategoryLabel renders a selection for reports and logs, e.g. "image, office".
func CategoryLabel(cats []Category) string {
	parts := make([]string, len(cats))
	for i, c := range cats {
		parts[i] = string(c)
	}
	return strings.Join(parts, ", ")
}
