package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"mendmd/internal/domain"
	"mendmd/internal/ports"
)

const historyDBFile = "history.db"

// History implements ports.RunHistory using SQLite. One row per completed
// run, newest first on query.
type History struct {
	db *sql.DB
}

// Ensure History implements RunHistory
var _ ports.RunHistory = (*History)(nil)

// OpenHistory opens (and if needed creates) the history database under
// dataDir.
func OpenHistory(dataDir string) (*History, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, historyDBFile)
	db, err := sql.Open("sqlite", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;
		PRAGMA busy_timeout = 5000;

		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			started_at TEXT NOT NULL,
			root TEXT NOT NULL,
			categories TEXT NOT NULL,
			renamed INTEGER NOT NULL,
			links_fixed INTEGER NOT NULL,
			links_skipped INTEGER NOT NULL,
			duplicate_groups INTEGER NOT NULL,
			error_count INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_runs_started ON runs(started_at);
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to setup history database: %w", err)
	}

	return &History{db: db}, nil
}

// Close closes the database connection
func (h *History) Close() error {
	if h.db != nil {
		return h.db.Close()
	}
	return nil
}

// Record stores one completed run summary.
func (h *History) Record(s domain.RunSummary) error {
	_, err := h.db.Exec(`
		INSERT INTO runs (started_at, root, categories, renamed, links_fixed, links_skipped, duplicate_groups, error_count)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, s.StartedAt.Format(time.RFC3339), s.Root, s.Categories,
		s.Renamed, s.LinksFixed, s.LinksSkipped, s.DuplicateGroups, s.ErrorCount)
	return err
}

// Recent returns up to limit summaries, newest first.
func (h *History) Recent(limit int) ([]domain.RunSummary, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := h.db.Query(`
		SELECT id, started_at, root, categories, renamed, links_fixed, links_skipped, duplicate_groups, error_count
		FROM runs ORDER BY id DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.RunSummary
	for rows.Next() {
		var s domain.RunSummary
		var started string
		if err := rows.Scan(&s.ID, &started, &s.Root, &s.Categories,
			&s.Renamed, &s.LinksFixed, &s.LinksSkipped, &s.DuplicateGroups, &s.ErrorCount); err != nil {
			return nil, err
		}
		if t, err := time.Parse(time.RFC3339, started); err == nil {
			s.StartedAt = t
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
