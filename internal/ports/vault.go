package ports

import "mendmd/internal/domain"

// VaultRepository provides filesystem access to a notes vault. All paths
// crossing this interface are vault-relative with forward slashes, except
// where noted.
type VaultRepository interface {
	// Root returns the absolute vault root.
	Root() string

	// Scan walks the vault and returns a record per reachable file.
	// Hidden subtrees and the running executable are excluded. Per-entry
	// failures are returned as the second value and do not stop the walk;
	// the error return is reserved for an unreadable root.
	Scan() ([]domain.FileRecord, []error, error)

	// Rename moves a file within the vault. It fails rather than
	// overwrite an existing target.
	Rename(oldRel, newRel string) error

	// Exists reports whether a vault-relative path is present on disk.
	Exists(rel string) bool

	// ReadDocument and WriteDocument move whole document contents.
	// WriteDocument is one write per document; partial content is never
	// observable.
	ReadDocument(rel string) (string, error)
	WriteDocument(rel string, content string) error
}
