package application

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"mendmd/internal/domain"
)

func TestValidateRequired(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"empty", "", true},
		{"whitespace only", "   ", true},
		{"valid", "/vault", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateRequired("root", tc.value)
			if (err != nil) != tc.wantErr {
				t.Errorf("ValidateRequired(%q) error = %v, wantErr %v", tc.value, err, tc.wantErr)
			}
			if err != nil {
				var verr *ValidationError
				if !errors.As(err, &verr) || verr.Field != "root" {
					t.Errorf("error = %v, want ValidationError for root", err)
				}
			}
		})
	}
}

func TestValidateRoot(t *testing.T) {
	dir := t.TempDir()

	if err := ValidateRoot(dir); err != nil {
		t.Errorf("ValidateRoot(dir) = %v", err)
	}

	if err := ValidateRoot(filepath.Join(dir, "missing")); !errors.Is(err, ErrInvalidRoot) {
		t.Errorf("missing root error = %v, want ErrInvalidRoot", err)
	}

	file := filepath.Join(dir, "file.txt")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if err := ValidateRoot(file); !errors.Is(err, ErrInvalidRoot) {
		t.Errorf("file root error = %v, want ErrInvalidRoot", err)
	}
}

func TestValidateCategories(t *testing.T) {
	cats, err := ValidateCategories([]string{"image", "office"})
	if err != nil {
		t.Fatalf("ValidateCategories failed: %v", err)
	}
	if len(cats) != 2 || cats[0] != domain.CategoryImage {
		t.Errorf("cats = %v", cats)
	}

	if _, err := ValidateCategories([]string{"sculpture"}); err == nil {
		t.Error("expected error for unknown category")
	}
}
