package post

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"Ripple/internal/api/handlers"
	"Ripple/internal/api/middleware"
	"Ripple/internal/core/posts"
)

// DeleteImageHandler handles removal of a single image from a post
type DeleteImageHandler struct {
	service posts.Service
}

// NewDeleteImageHandler creates a new delete-image handler
func NewDeleteImageHandler(service posts.Service) *DeleteImageHandler {
	return &DeleteImageHandler{service: service}
}

// HandleDeleteImage handles DELETE /posts/{postID}/images/{storageID}
func (h *DeleteImageHandler) HandleDeleteImage(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, "postID")
	storageID := chi.URLParam(r, "storageID")
	identity := middleware.GetIdentity(r)

	updated, err := h.service.DeletePostImage(r.Context(), postID, identity.UserID, storageID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, updated)
}
