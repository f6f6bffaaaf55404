package commands

import (
	"context"
	"path"

	"mendmd/internal/application"
	"mendmd/internal/domain"
	"mendmd/internal/logger"
	"mendmd/internal/ports"
)

// RenameResult contains the outcome of the attachment renaming stage.
type RenameResult struct {
	Candidates int
	Renames    []domain.RenameMapping
	Errors     []error
}

// RenameCommand assigns canonical names to the selected attachments.
// Files already carrying a canonical name are skipped, which makes the
// command idempotent: a second run over an untouched tree renames nothing.
type RenameCommand struct {
	repo  ports.VaultRepository
	state ports.StateStore // optional; nil disables the recovery record

	Categories []domain.Category
	Files      []domain.FileRecord

	gen *domain.NameGenerator
}

// NewRenameCommand creates a new RenameCommand over an existing inventory.
func NewRenameCommand(repo ports.VaultRepository, state ports.StateStore, categories []domain.Category, files []domain.FileRecord) *RenameCommand {
	return &RenameCommand{
		repo:       repo,
		state:      state,
		Categories: categories,
		Files:      files,
		gen:        domain.NewNameGenerator(),
	}
}

// Validate checks the category selection
func (c *RenameCommand) Validate() error {
	if len(c.Categories) == 0 {
		return &application.ValidationError{
			Field:   "categories",
			Message: "at least one rename category is required",
		}
	}
	return nil
}

// Execute performs the renames. Individual failures are collected, never
// fatal; a failed file keeps its old name and stays out of the mapping.
func (c *RenameCommand) Execute(ctx context.Context) (*RenameResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	selected := make(map[domain.Category]bool, len(c.Categories))
	for _, cat := range c.Categories {
		selected[cat] = true
	}

	result := &RenameResult{}
	log := logger.Get()

	for _, f := range c.Files {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		if f.IsDocument() || !selected[f.Category] {
			continue
		}
		if domain.IsCanonicalName(f.Base) {
			continue
		}
		result.Candidates++

		dir := path.Dir(f.RelPath)
		newName, token := c.gen.Next(f.Ext, func(name string) bool {
			return c.repo.Exists(path.Join(dir, name))
		})
		newRel := path.Join(dir, newName)

		if err := c.repo.Rename(f.RelPath, newRel); err != nil {
			renameErr := &application.RenameError{Path: f.RelPath, Err: err}
			result.Errors = append(result.Errors, renameErr)
			log.Error().Err(err).Str("path", f.RelPath).Msg("rename failed")
			continue
		}

		mapping := domain.RenameMapping{
			OriginalPath: f.RelPath,
			NewPath:      newRel,
			Category:     f.Category,
			Token:        token,
		}
		result.Renames = append(result.Renames, mapping)
		log.Info().Str("from", f.RelPath).Str("to", newRel).Msg("renamed attachment")

		if c.state != nil {
			if err := c.state.AppendRename(mapping); err != nil {
				log.Warn().Err(err).Msg("could not flush rename record")
			}
		}
	}

	return result, nil
}
