package ports

import "mendmd/internal/domain"

// StateStore persists the recoverable run records: the rename map and the
// path index snapshot. Both are side channels for crash diagnosis; a run
// never reads them back for decision-making.
type StateStore interface {
	// AppendRename records one applied rename and flushes immediately,
	// so an interruption leaves a usable partial map on disk.
	AppendRename(m domain.RenameMapping) error

	// SaveIndex writes the post-rename path index snapshot.
	SaveIndex(entries []domain.IndexEntry) error

	// LoadTrace returns rename mappings left behind by an aborted run,
	// for diagnostic logging only.
	LoadTrace() ([]domain.RenameMapping, error)

	// Cleanup removes both records after a clean completion.
	Cleanup() error
}
