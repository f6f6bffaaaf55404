package filesystem

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"mendmd/internal/application"
	"mendmd/internal/domain"
	"mendmd/internal/ports"
)

// Repository implements ports.VaultRepository on the local filesystem.
type Repository struct {
	root     string
	selfExec string
}

// Ensure Repository implements VaultRepository
var _ ports.VaultRepository = (*Repository)(nil)

// NewRepository creates a repository rooted at root. ~ is expanded and the
// path made absolute; the running executable is remembered so a vault that
// contains the tool itself never renames or indexes it.
func NewRepository(root string) *Repository {
	if strings.HasPrefix(root, "~") {
		home, _ := os.UserHomeDir()
		root = filepath.Join(home, root[1:])
	}
	if abs, err := filepath.Abs(root); err == nil {
		root = abs
	}
	selfExec, _ := os.Executable()
	if resolved, err := filepath.EvalSymlinks(selfExec); err == nil {
		selfExec = resolved
	}
	return &Repository{root: root, selfExec: selfExec}
}

// Root returns the absolute vault root.
func (r *Repository) Root() string { return r.root }

// Scan walks the vault. Dot-prefixed directories are pruned whole, the
// running executable is skipped, and unreadable entries are collected as
// non-fatal ScanErrors.
func (r *Repository) Scan() ([]domain.FileRecord, []error, error) {
	if _, err := os.Stat(r.root); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", application.ErrInvalidRoot, err)
	}

	var files []domain.FileRecord
	var scanErrs []error

	err := filepath.WalkDir(r.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			scanErrs = append(scanErrs, &application.ScanError{Path: path, Err: err})
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			if path != r.root && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if path == r.selfExec {
			return nil
		}

		rel, err := filepath.Rel(r.root, path)
		if err != nil {
			scanErrs = append(scanErrs, &application.ScanError{Path: path, Err: err})
			return nil
		}

		rec := domain.NewFileRecord(path, filepath.ToSlash(rel))
		if rec.Ext == "" && rec.Category == domain.CategoryOther {
			// No extension to go by; sniff the content instead.
			rec.Category = DetectCategory(path)
		}
		files = append(files, rec)
		return nil
	})
	if err != nil {
		return nil, scanErrs, err
	}
	return files, scanErrs, nil
}

// Rename moves a file within the vault, refusing to overwrite.
func (r *Repository) Rename(oldRel, newRel string) error {
	oldAbs := r.abs(oldRel)
	newAbs := r.abs(newRel)
	if _, err := os.Stat(newAbs); err == nil {
		return fmt.Errorf("target already exists: %s", newRel)
	}
	return os.Rename(oldAbs, newAbs)
}

// Exists reports whether a vault-relative path is on disk.
func (r *Repository) Exists(rel string) bool {
	_, err := os.Stat(r.abs(rel))
	return err == nil
}

// ReadDocument returns a document's content.
func (r *Repository) ReadDocument(rel string) (string, error) {
	data, err := os.ReadFile(r.abs(rel))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// WriteDocument replaces a document's content in a single write,
// preserving its permission bits.
func (r *Repository) WriteDocument(rel string, content string) error {
	abs := r.abs(rel)
	perm := os.FileMode(0644)
	if info, err := os.Stat(abs); err == nil {
		perm = info.Mode().Perm()
	}
	if err := os.WriteFile(abs, []byte(content), perm); err != nil {
		return err
	}
	// os.WriteFile applies the umask on creation; pin the exact bits.
	return os.Chmod(abs, perm)
}

func (r *Repository) abs(rel string) string {
	return filepath.Join(r.root, filepath.FromSlash(rel))
}
