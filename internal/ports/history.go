package ports

import "mendmd/internal/domain"

// RunHistory archives completed run summaries.
type RunHistory interface {
	Record(summary domain.RunSummary) error
	Recent(limit int) ([]domain.RunSummary, error)
	Close() error
}
