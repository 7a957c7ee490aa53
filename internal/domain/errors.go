package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCategory is returned when no parameter set exists for a category.
	// Calculations return a zeroed result alongside it.
	ErrInvalidCategory = errors.New("unsupported category")

	// ErrInvalidNumericInput is returned by input validation for negative
	// amounts or out-of-range period lengths.
	ErrInvalidNumericInput = errors.New("invalid numeric input")
)

// numericError wraps ErrInvalidNumericInput with the offending field.
func numericError(field, reason string) error {
	return fmt.Errorf("%w: %s %s", ErrInvalidNumericInput, field, reason)
}
