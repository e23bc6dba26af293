package validate

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/Ning0612/fileporter/internal/domain"
	"github.com/Ning0612/fileporter/internal/testutil"
)

func TestValidate_BothExist(t *testing.T) {
	tmpDir := t.TempDir()
	source := testutil.CreateTestFile(t, tmpDir, "source.txt", []byte("x"))

	v := NewDefaultValidator()
	if err := v.Validate(source, tmpDir); err != nil {
		t.Errorf("Expected success for valid paths, got %v", err)
	}
	if err := v.Validate(tmpDir, source); err != nil {
		t.Errorf("Expected success for valid paths, got %v", err)
	}
}

func TestValidate_MissingSource(t *testing.T) {
	tmpDir := t.TempDir()
	missing := filepath.Join(tmpDir, "missing.txt")

	v := NewDefaultValidator()
	err := v.Validate(missing, tmpDir)
	if !errors.Is(err, domain.ErrSourceNotValid) {
		t.Errorf("Expected ErrSourceNotValid, got %v", err)
	}
}

func TestValidate_MissingDestination(t *testing.T) {
	tmpDir := t.TempDir()
	source := testutil.CreateTestFile(t, tmpDir, "source.txt", []byte("x"))
	missing := filepath.Join(tmpDir, "missing_dir")

	v := NewDefaultValidator()
	err := v.Validate(source, missing)
	if !errors.Is(err, domain.ErrDestinationNotValid) {
		t.Errorf("Expected ErrDestinationNotValid, got %v", err)
	}
}

func TestValidate_SourceShortCircuits(t *testing.T) {
	tmpDir := t.TempDir()
	missingSource := filepath.Join(tmpDir, "missing.txt")
	missingDest := filepath.Join(tmpDir, "missing_dir")

	// A missing source wins even when the destination is also missing
	v := NewDefaultValidator()
	err := v.Validate(missingSource, missingDest)
	if !errors.Is(err, domain.ErrSourceNotValid) {
		t.Errorf("Expected ErrSourceNotValid, got %v", err)
	}
	if errors.Is(err, domain.ErrDestinationNotValid) {
		t.Error("Expected destination not to be evaluated after source failure")
	}
}
