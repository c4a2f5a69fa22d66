package auth

import (
	"errors"
	"log"
	"net/http"

	"Ripple/internal/api/handlers"
	"Ripple/internal/core/users"
)

// handleServiceError maps account service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case users.IsValidationError(err) || users.IsDuplicate(err):
		handlers.WriteError(w, http.StatusBadRequest, err.Error())

	case errors.Is(err, users.ErrInvalidCredentials):
		handlers.WriteError(w, http.StatusUnauthorized, "Invalid email or password")

	case errors.Is(err, users.ErrUserNotFound):
		handlers.WriteError(w, http.StatusNotFound, "User not found")

	default:
		// Don't leak internal error details to clients
		log.Printf("Unexpected error in auth handler: %v", err)
		handlers.WriteError(w, http.StatusInternalServerError, "An internal error occurred")
	}
}
