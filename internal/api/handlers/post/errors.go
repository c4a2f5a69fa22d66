package post

import (
	"errors"
	"log"
	"net/http"

	"Ripple/internal/api/handlers"
	"Ripple/internal/assets"
	"Ripple/internal/core/posts"
)

// handleServiceError maps service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case posts.IsValidationError(err):
		handlers.WriteError(w, http.StatusBadRequest, err.Error())

	case posts.IsForbidden(err):
		handlers.WriteError(w, http.StatusForbidden, "You are not the author of this post")

	case errors.Is(err, posts.ErrImageNotFound):
		handlers.WriteError(w, http.StatusNotFound, "Image not found")

	case posts.IsNotFound(err):
		handlers.WriteError(w, http.StatusNotFound, "Post not found")

	case assets.IsUploadError(err):
		log.Printf("Asset upload failed: %v", err)
		handlers.WriteError(w, http.StatusBadGateway, "Image upload failed, try again later")

	case assets.IsDeletionError(err):
		log.Printf("Asset deletion failed: %v", err)
		handlers.WriteError(w, http.StatusBadGateway, "Image deletion failed, try again later")

	default:
		// Don't leak internal error details to clients
		log.Printf("Unexpected error in post handler: %v", err)
		handlers.WriteError(w, http.StatusInternalServerError, "An internal error occurred")
	}
}
