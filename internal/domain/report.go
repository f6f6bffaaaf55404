package domain

import (
	"fmt"
	"time"
)

// InvalidReference is a written path that could not be repaired.
type InvalidReference struct {
	Document    string `json:"document"`
	WrittenPath string `json:"written_path"`
}

// RunReport aggregates the outcome of one pipeline run. It is built
// incrementally by the pipeline stages and handed, finalized, to whatever
// front-end invoked the run.
type RunReport struct {
	Root       string        `json:"root"`
	Categories []Category    `json:"categories"`
	StartedAt  time.Time     `json:"started_at"`
	Duration   time.Duration `json:"duration"`

	ScannedFiles    int `json:"scanned_files"`
	DocumentCount   int `json:"document_count"`
	AttachmentCount int `json:"attachment_count"`

	RenameCandidates int             `json:"rename_candidates"`
	RenamedCount     int             `json:"renamed_count"`
	Renames          []RenameMapping `json:"renames,omitempty"`

	DocumentsChanged int `json:"documents_changed"`
	LinksFixed       int `json:"links_fixed"`
	LinksSkipped     int `json:"links_skipped"`

	Duplicates  []DuplicateGroup   `json:"duplicates,omitempty"`
	InvalidRefs []InvalidReference `json:"invalid_references,omitempty"`
	Errors      []string           `json:"errors,omitempty"`
}

// NewRunReport starts a report for a run over root.
func NewRunReport(root string, categories []Category) *RunReport {
	return &RunReport{
		Root:       root,
		Categories: categories,
		StartedAt:  time.Now(),
	}
}

// AddError records a non-fatal per-file failure.
func (r *RunReport) AddError(err error) {
	if err != nil {
		r.Errors = append(r.Errors, err.Error())
	}
}

// Finish stamps the total duration.
func (r *RunReport) Finish() {
	r.Duration = time.Since(r.StartedAt)
}

// Summary condenses the report into one history row.
func (r *RunReport) Summary() RunSummary {
	return RunSummary{
		StartedAt:       r.StartedAt,
		Root:            r.Root,
		Categories:      CategoryLabel(r.Categories),
		Renamed:         r.RenamedCount,
		LinksFixed:      r.LinksFixed,
		LinksSkipped:    r.LinksSkipped,
		DuplicateGroups: len(r.Duplicates),
		ErrorCount:      len(r.Errors),
	}
}

// RunSummary is the condensed, persistable view of a completed run.
type RunSummary struct {
	ID              int64     `json:"id,omitempty"`
	StartedAt       time.Time `json:"started_at"`
	Root            string    `json:"root"`
	Categories      string    `json:"categories"`
	Renamed         int       `json:"renamed"`
	LinksFixed      int       `json:"links_fixed"`
	LinksSkipped    int       `json:"links_skipped"`
	DuplicateGroups int       `json:"duplicate_groups"`
	ErrorCount      int       `json:"error_count"`
}

func (s RunSummary) String() string {
	return fmt.Sprintf("%s  %s  renamed=%d fixed=%d skipped=%d duplicates=%d errors=%d",
		s.StartedAt.Format("2006-01-02 15:04:05"), s.Root,
		s.Renamed, s.LinksFixed, s.LinksSkipped, s.DuplicateGroups, s.ErrorCount)
}
