package application

import (
	"fmt"
	"os"
	"strings"

	"mendmd/internal/domain"
)

// ValidateRequired checks if a string field is non-empty (after trimming
// whitespace). Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", fieldName),
		}
	}
	return nil
}

// ValidateRoot checks that the vault root exists and is a directory.
// This is the only condition that fails a run outright.
func ValidateRoot(root string) error {
	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidRoot, root, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", ErrInvalidRoot, root)
	}
	return nil
}

// ValidateCategories normalizes a category selection, rejecting unknown
// names.
func ValidateCategories(selected []string) ([]domain.Category, error) {
	cats, err := domain.NormalizeCategories(selected)
	if err != nil {
		return nil, &ValidationError{Field: "categories", Message: err.Error()}
	}
	return cats, nil
}
