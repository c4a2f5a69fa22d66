package users

import (
	"errors"
	"fmt"
)

// Sentinel errors for account operations
var (
	// ErrUserNotFound is returned when no account matches the lookup
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidCredentials is returned on a failed login. The handler
	// maps it to 401 without saying whether the email or password was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUsernameTaken and ErrEmailTaken are returned by the repository on
	// unique constraint violations
	ErrUsernameTaken = errors.New("username already taken")
	ErrEmailTaken    = errors.New("email already registered")
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

// IsDuplicate checks if error is a username or email conflict
func IsDuplicate(err error) bool {
	return errors.Is(err, ErrUsernameTaken) || errors.Is(err, ErrEmailTaken)
}
