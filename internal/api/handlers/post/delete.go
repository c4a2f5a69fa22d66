package post

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"Ripple/internal/api/handlers"
	"Ripple/internal/api/middleware"
	"Ripple/internal/core/posts"
)

// DeleteHandler handles full post deletion
type DeleteHandler struct {
	service posts.Service
}

// NewDeleteHandler creates a new delete handler
func NewDeleteHandler(service posts.Service) *DeleteHandler {
	return &DeleteHandler{service: service}
}

// HandleDelete handles DELETE /posts/{postID}
func (h *DeleteHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, "postID")
	identity := middleware.GetIdentity(r)

	if err := h.service.DeletePost(r.Context(), postID, identity.UserID); err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, map[string]string{"id": postID})
}
