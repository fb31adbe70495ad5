package course

import (
	"errors"
	"fmt"
)

// InvalidInputError reports input that violates a domain invariant
// (non-positive pace, zero-length span, non-positive width). Failures are
// scoped to the affected segment; callers record them and continue with
// the rest of the batch.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input %s: %s", e.Field, e.Reason)
}

// Invalidf builds an InvalidInputError with a formatted reason.
func Invalidf(field, format string, v ...interface{}) error {
	return &InvalidInputError{Field: field, Reason: fmt.Sprintf(format, v...)}
}

// IsInvalidInput reports whether err is (or wraps) an InvalidInputError.
func IsInvalidInput(err error) bool {
	var ie *InvalidInputError
	return errors.As(err, &ie)
}
