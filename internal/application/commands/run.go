package commands

import (
	"context"
	"fmt"

	"mendmd/internal/application"
	"mendmd/internal/domain"
	"mendmd/internal/logger"
	"mendmd/internal/ports"
)

// Pipeline stage names, reported through the Progress callback.
const (
	StageScan    = "scan"
	StageRename  = "rename"
	StageIndex   = "index"
	StageResolve = "resolve"
	StageDone    = "done"
)

// RunCommand executes the whole pipeline: scan, rename, reindex, resolve
// and rewrite, then report. Stages run strictly in order; the index is
// rebuilt once after renaming and frozen before any resolution starts.
type RunCommand struct {
	repo    ports.VaultRepository
	state   ports.StateStore // optional
	history ports.RunHistory // optional

	Categories []domain.Category

	// Progress, when set, receives coarse stage transitions and per-
	// document details for an interactive front-end.
	Progress func(stage, detail string)
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(repo ports.VaultRepository, state ports.StateStore, history ports.RunHistory, categories []domain.Category) *RunCommand {
	if len(categories) == 0 {
		categories = []domain.Category{domain.DefaultRenameCategory}
	}
	return &RunCommand{repo: repo, state: state, history: history, Categories: categories}
}

// Validate checks that the run can start at all
func (c *RunCommand) Validate() error {
	if err := application.ValidateRequired("root", c.repo.Root()); err != nil {
		return err
	}
	return application.ValidateRoot(c.repo.Root())
}

// Execute runs the pipeline. Only an invalid root fails the run; every
// per-file problem is recorded in the report and the run carries on.
// Renames already applied are never rolled back, including on cancellation.
func (c *RunCommand) Execute(ctx context.Context) (*domain.RunReport, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	log := logger.Get()
	report := domain.NewRunReport(c.repo.Root(), c.Categories)
	log.Info().Str("root", report.Root).Str("categories", domain.CategoryLabel(c.Categories)).Msg("starting run")

	if c.state != nil {
		if trace, err := c.state.LoadTrace(); err == nil && len(trace) > 0 {
			// Leftover record from an aborted run. Diagnostic only: the
			// canonical-name check below is what keeps re-runs safe.
			log.Warn().Int("entries", len(trace)).Msg("found rename trace from an interrupted run")
		}
	}

	// Scan the tree as it is now. Duplicates are reported against this
	// pre-rename state.
	c.progress(StageScan, "")
	files, scanErrs, err := c.repo.Scan()
	if err != nil {
		return nil, fmt.Errorf("failed to scan vault: %w", err)
	}
	report.ScannedFiles = len(files)
	for _, e := range scanErrs {
		report.AddError(e)
	}
	report.Duplicates = domain.BuildPathIndex(files).DuplicateGroups()

	c.progress(StageRename, "")
	renameCmd := NewRenameCommand(c.repo, c.state, c.Categories, files)
	renamed, err := renameCmd.Execute(ctx)
	if err != nil {
		return report, err
	}
	report.RenameCandidates = renamed.Candidates
	report.RenamedCount = len(renamed.Renames)
	report.Renames = renamed.Renames
	for _, e := range renamed.Errors {
		report.AddError(e)
	}

	// Rebuild the index from a fresh scan so it mirrors the post-rename
	// filesystem exactly. It stays frozen from here on.
	c.progress(StageIndex, "")
	files, scanErrs, err = c.repo.Scan()
	if err != nil {
		return report, fmt.Errorf("failed to rescan vault: %w", err)
	}
	for _, e := range scanErrs {
		report.AddError(e)
	}
	index := domain.BuildPathIndex(files)
	report.DocumentCount = index.DocumentCount()
	report.AttachmentCount = index.AttachmentCount()

	if c.state != nil {
		if err := c.state.SaveIndex(index.Entries()); err != nil {
			log.Warn().Err(err).Msg("could not write index record")
		}
	}

	c.progress(StageResolve, "")
	fixCmd := NewFixLinksCommand(c.repo, index, files)
	fixCmd.Renames = renamed.Renames
	fixCmd.Progress = func(doc string) { c.progress(StageResolve, doc) }
	fixed, err := fixCmd.Execute(ctx)
	if fixed != nil {
		report.DocumentsChanged = fixed.DocumentsChanged
		report.LinksFixed = fixed.LinksFixed
		report.LinksSkipped = fixed.LinksSkipped
		report.InvalidRefs = fixed.Invalid
		for _, e := range fixed.Errors {
			report.AddError(e)
		}
	}
	if err != nil {
		// Cancellation between documents: keep what was done, skip the
		// clean-exit bookkeeping so the trace stays on disk.
		report.Finish()
		return report, err
	}

	report.Finish()
	c.progress(StageDone, "")

	if c.state != nil {
		if err := c.state.Cleanup(); err != nil {
			log.Warn().Err(err).Msg("could not remove state records")
		}
	}
	if c.history != nil {
		if err := c.history.Record(report.Summary()); err != nil {
			log.Warn().Err(err).Msg("could not record run history")
		}
	}

	log.Info().
		Int("renamed", report.RenamedCount).
		Int("fixed", report.LinksFixed).
		Int("skipped", report.LinksSkipped).
		Dur("duration", report.Duration).
		Msg("run complete")
	return report, nil
}

func (c *RunCommand) progress(stage, detail string) {
	if c.Progress != nil {
		c.Progress(stage, detail)
	}
}
