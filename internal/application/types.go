package application

import "mendmd/internal/domain"

// Re-export domain types for use by adapters
type (
	Category         = domain.Category
	FileRecord       = domain.FileRecord
	RenameMapping    = domain.RenameMapping
	DuplicateGroup   = domain.DuplicateGroup
	InvalidReference = domain.InvalidReference
	RunReport        = domain.RunReport
	RunSummary       = domain.RunSummary
)
