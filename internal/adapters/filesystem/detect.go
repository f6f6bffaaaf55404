package filesystem

import (
	"io"
	"os"

	"github.com/h2non/filetype"

	"mendmd/internal/domain"
)

const sniffLen = 8192

// DetectCategory sniffs a file's leading bytes to categorize attachments
// that carry no extension. Anything unrecognized stays CategoryOther.
func DetectCategory(absPath string) domain.Category {
	f, err := os.Open(absPath)
	if err != nil {
		return domain.CategoryOther
	}
	defer f.Close()

	buf := make([]byte, sniffLen)
	n, err := f.Read(buf)
	if err != nil && err != io.EOF {
		return domain.CategoryOther
	}

	switch {
	case filetype.IsImage(buf[:n]):
		return domain.CategoryImage
	case filetype.IsVideo(buf[:n]):
		return domain.CategoryVideo
	case filetype.IsAudio(buf[:n]):
		return domain.CategoryAudio
	}
	return domain.CategoryOther
}
