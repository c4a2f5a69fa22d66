package post

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"Ripple/internal/api/handlers"
	"Ripple/internal/api/middleware"
	"Ripple/internal/core/posts"
)

// LikeHandler handles like toggling
type LikeHandler struct {
	service posts.Service
}

// NewLikeHandler creates a new like handler
func NewLikeHandler(service posts.Service) *LikeHandler {
	return &LikeHandler{service: service}
}

// HandleToggleLike handles POST /posts/{postID}/like
// Likes the post if the caller hasn't liked it yet, unlikes it otherwise.
func (h *LikeHandler) HandleToggleLike(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, "postID")
	identity := middleware.GetIdentity(r)

	result, err := h.service.ToggleLike(r.Context(), postID, identity.Username)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, result)
}
