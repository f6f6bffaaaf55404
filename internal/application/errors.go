package application

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	ErrInvalidRoot   = errors.New("invalid root directory")
	ErrNotADocument  = errors.New("not a document")
	ErrStateDisabled = errors.New("state store disabled")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ScanError is a per-entry failure during the tree walk. The walk
// continues; the error lands in the run report.
type ScanError struct {
	Path string
	Err  error
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("scan %s: %v", e.Path, e.Err)
}

func (e *ScanError) Unwrap() error { return e.Err }

// RenameError is a per-file rename failure. The file keeps its old name
// and is deliberately absent from the rename map, so later resolution
// still sees it where it was.
type RenameError struct {
	Path string
	Err  error
}

func (e *RenameError) Error() string {
	return fmt.Sprintf("rename %s: %v", e.Path, e.Err)
}

func (e *RenameError) Unwrap() error { return e.Err }

// RewriteError is a per-document write failure. Other documents are
// unaffected.
type RewriteError struct {
	Document string
	Err      error
}

func (e *RewriteError) Error() string {
	return fmt.Sprintf("rewrite %s: %v", e.Document, e.Err)
}

func (e *RewriteError) Unwrap() error { return e.Err }
