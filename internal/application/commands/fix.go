package commands

import (
	"context"

	"mendmd/internal/application"
	"mendmd/internal/domain"
	"mendmd/internal/logger"
	"mendmd/internal/ports"
)

// FixResult contains the outcome of the link mending stage.
type FixResult struct {
	DocumentsChanged int
	LinksFixed       int
	LinksSkipped     int
	Invalid          []domain.InvalidReference
	Errors           []error
}

// FixLinksCommand resolves and rewrites references in every document.
// The index must reflect the post-rename tree and stays frozen for the
// whole command; documents are independent of each other.
type FixLinksCommand struct {
	repo ports.VaultRepository

	Index *domain.PathIndex
	Files []domain.FileRecord

	// Renames from this run's rename stage; written paths still naming
	// a pre-rename location are repaired straight from the map.
	Renames []domain.RenameMapping

	// Progress, when set, is called with each document before processing.
	Progress func(doc string)
}

// NewFixLinksCommand creates a new FixLinksCommand
func NewFixLinksCommand(repo ports.VaultRepository, index *domain.PathIndex, files []domain.FileRecord) *FixLinksCommand {
	return &FixLinksCommand{repo: repo, Index: index, Files: files}
}

// Validate checks the command inputs
func (c *FixLinksCommand) Validate() error {
	if c.Index == nil {
		return &application.ValidationError{
			Field:   "index",
			Message: "a path index is required",
		}
	}
	return nil
}

// Execute mends links document by document. Cancellation is honored
// between documents; a document is either rewritten in one write or left
// byte-identical.
func (c *FixLinksCommand) Execute(ctx context.Context) (*FixResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	resolver := domain.NewResolver(c.repo.Root(), c.Index, nil)
	if len(c.Renames) > 0 {
		resolver.UseRenameMap(c.Renames)
	}
	result := &FixResult{}
	log := logger.Get()

	for _, f := range c.Files {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		if !f.IsDocument() {
			continue
		}
		if c.Progress != nil {
			c.Progress(f.RelPath)
		}

		content, err := c.repo.ReadDocument(f.RelPath)
		if err != nil {
			result.Errors = append(result.Errors, &application.RewriteError{Document: f.RelPath, Err: err})
			log.Error().Err(err).Str("document", f.RelPath).Msg("read failed")
			continue
		}

		refs := domain.ExtractReferences(content)
		if len(refs) == 0 {
			continue
		}

		resolutions := make([]domain.Resolution, len(refs))
		for i, ref := range refs {
			res := resolver.Resolve(f.RelPath, ref)
			resolutions[i] = res

			switch res.Kind {
			case domain.ResolutionUnresolved, domain.ResolutionAmbiguous:
				result.LinksSkipped++
				result.Invalid = append(result.Invalid, domain.InvalidReference{
					Document:    f.RelPath,
					WrittenPath: ref.RawPath,
				})
				log.Debug().
					Str("document", f.RelPath).
					Str("written", ref.RawPath).
					Str("outcome", res.Kind.String()).
					Int("candidates", len(res.Candidates)).
					Msg("reference left untouched")
			}
		}

		newContent, replaced := domain.RewriteDocument(content, refs, resolutions)
		if replaced == 0 {
			continue
		}

		if err := c.repo.WriteDocument(f.RelPath, newContent); err != nil {
			result.Errors = append(result.Errors, &application.RewriteError{Document: f.RelPath, Err: err})
			log.Error().Err(err).Str("document", f.RelPath).Msg("write failed")
			continue
		}
		result.DocumentsChanged++
		result.LinksFixed += replaced
		log.Info().Str("document", f.RelPath).Int("links", replaced).Msg("mended document")
	}

	return result, nil
}
