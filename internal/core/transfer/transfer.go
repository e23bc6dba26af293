package transfer

import (
	"errors"
	"fmt"

	"github.com/Ning0612/fileporter/internal/core/validate"
	"github.com/Ning0612/fileporter/internal/domain"
	"github.com/Ning0612/fileporter/internal/fsops"
)

// CopyFunc is the injected copy strategy invoked once validation and
// destination reconciliation have succeeded. It must not mutate source
type CopyFunc func(source, destination string) error

// DefaultCopy is the copy strategy used when the caller supplies none
var DefaultCopy CopyFunc = fsops.CopyFile

// Transferer orchestrates validation, destination auto-creation and the
// copy strategy into a single source-to-destination operation
type Transferer interface {
	Transfer(source, destination string, copy CopyFunc) error
}

// DefaultTransferer implements the transfer orchestration
type DefaultTransferer struct {
	Validator validate.Validator
}

// NewDefaultTransferer creates a new transfer orchestrator
func NewDefaultTransferer() *DefaultTransferer {
	return &DefaultTransferer{
		Validator: validate.NewDefaultValidator(),
	}
}

// Transfer validates the pair, reconciles a missing destination by
// creating it, then invokes the copy strategy
// A missing source aborts immediately and the strategy is never invoked
// A missing destination triggers auto-creation at most once; if creation
// fails the result is a destination failure chaining the creation error
// Copy strategy failures propagate unchanged
func (t *DefaultTransferer) Transfer(source, destination string, copy CopyFunc) error {
	if copy == nil {
		copy = DefaultCopy
	}

	err := t.Validator.Validate(source, destination)
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrSourceNotValid):
		return err
	case errors.Is(err, domain.ErrDestinationNotValid):
		if mkErr := fsops.EnsureDirectory(destination); mkErr != nil {
			return fmt.Errorf("%w: creating %s: %w", domain.ErrDestinationNotValid, destination, mkErr)
		}
	default:
		return err
	}

	return copy(source, destination)
}

// Upload copies source to destination
// Upload and Download are identical named intents over Transfer; both
// directions are local copies and the symmetry is deliberate
func (t *DefaultTransferer) Upload(source, destination string, copy CopyFunc) error {
	return t.Transfer(source, destination, copy)
}

// Download copies source to destination
func (t *DefaultTransferer) Download(source, destination string, copy CopyFunc) error {
	return t.Transfer(source, destination, copy)
}

var defaultTransferer = NewDefaultTransferer()

// Transfer runs a transfer using the package-level default orchestrator
func Transfer(source, destination string, copy CopyFunc) error {
	return defaultTransferer.Transfer(source, destination, copy)
}

// Upload runs an upload using the package-level default orchestrator
func Upload(source, destination string, copy CopyFunc) error {
	return defaultTransferer.Upload(source, destination, copy)
}

// Download runs a download using the package-level default orchestrator
func Download(source, destination string, copy CopyFunc) error {
	return defaultTransferer.Download(source, destination, copy)
}
