package comments

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a comment does not exist, or exists under
// a different post than the one it was looked up through. A comment ID on
// its own is not evidence of post membership.
var ErrNotFound = errors.New("comment not found")

// ValidationError represents a validation error with field context
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error (%s): %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) error {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// IsValidationError checks if error is a validation error
func IsValidationError(err error) bool {
	var valErr *ValidationError
	return errors.As(err, &valErr)
}
