package posts

import (
	"errors"
	"fmt"
)

// Sentinel errors for common post operations
var (
	// ErrNotFound is returned when a post does not exist (or was deleted)
	ErrNotFound = errors.New("post not found")

	// ErrImageNotFound is returned when a post has no image with the
	// requested storage id
	ErrImageNotFound = errors.New("image not found")

	// ErrAuthorNotFound is returned when the acting user no longer exists
	ErrAuthorNotFound = errors.New("author not found")

	// ErrForbidden is returned when the requester is not the post author
	ErrForbidden = errors.New("not the post author")
)

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

// IsNotFound checks if error means a missing post, image or author
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrImageNotFound) ||
		errors.Is(err, ErrAuthorNotFound)
}

// IsForbidden checks if error is an ownership rejection
func IsForbidden(err error) bool {
	return errors.Is(err, ErrForbidden)
}
