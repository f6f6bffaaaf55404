package commands

import (
	"context"
	"fmt"

	"mendmd/internal/application"
	"mendmd/internal/domain"
	"mendmd/internal/ports"
)

// ScanResult contains the inventory produced by a vault scan.
type ScanResult struct {
	Files       []domain.FileRecord
	Documents   int
	Attachments int
	Duplicates  []domain.DuplicateGroup
	Errors      []error
}

// ScanCommand walks a vault and builds its file inventory.
type ScanCommand struct {
	repo ports.VaultRepository
}

// NewScanCommand creates a new ScanCommand
func NewScanCommand(repo ports.VaultRepository) *ScanCommand {
	return &ScanCommand{repo: repo}
}

// Validate checks that the vault root is usable
func (c *ScanCommand) Validate() error {
	if err := application.ValidateRequired("root", c.repo.Root()); err != nil {
		return err
	}
	return application.ValidateRoot(c.repo.Root())
}

// Execute runs the scan
func (c *ScanCommand) Execute(ctx context.Context) (*ScanResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	files, scanErrs, err := c.repo.Scan()
	if err != nil {
		return nil, fmt.Errorf("failed to scan vault: %w", err)
	}

	ix := domain.BuildPathIndex(files)
	return &ScanResult{
		Files:       files,
		Documents:   ix.DocumentCount(),
		Attachments: ix.AttachmentCount(),
		Duplicates:  ix.DuplicateGroups(),
		Errors:      scanErrs,
	}, nil
}
