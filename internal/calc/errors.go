package calc

import (
	"errors"
	"fmt"

	"github.com/Simplici0/stroycalc/internal/materials"
)

var (
	// ErrInvalidInput marks a missing, non-numeric or non-positive input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidSubType marks an unknown material variant.
	ErrInvalidSubType = materials.ErrInvalidSubType
)

// InputError reports which field was rejected and why.
type InputError struct {
	Field  string
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

func (e *InputError) Unwrap() error { return ErrInvalidInput }

func inputErr(field, reason string) error {
	return &InputError{Field: field, Reason: reason}
}
