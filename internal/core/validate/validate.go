package validate

import (
	"fmt"

	"github.com/Ning0612/fileporter/internal/domain"
	"github.com/Ning0612/fileporter/internal/fsops"
)

// Validator checks the existence preconditions of a transfer pair
type Validator interface {
	Validate(source, destination string) error
}

// DefaultValidator implements the precondition check over the local filesystem
type DefaultValidator struct{}

// NewDefaultValidator creates a new path validator
func NewDefaultValidator() *DefaultValidator {
	return &DefaultValidator{}
}

// Validate checks that both source and destination exist
// The source is checked first; a missing source short-circuits and the
// destination is not evaluated. No path is mutated
func (v *DefaultValidator) Validate(source, destination string) error {
	if !fsops.Exists(source) {
		return fmt.Errorf("%w: %s does not exist", domain.ErrSourceNotValid, source)
	}
	if !fsops.Exists(destination) {
		return fmt.Errorf("%w: %s does not exist", domain.ErrDestinationNotValid, destination)
	}
	return nil
}
