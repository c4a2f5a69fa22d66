package post

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"Ripple/internal/api/handlers"
	"Ripple/internal/core/posts"
)

// GetHandler handles single post retrieval
type GetHandler struct {
	service posts.Service
}

// NewGetHandler creates a new get handler
func NewGetHandler(service posts.Service) *GetHandler {
	return &GetHandler{service: service}
}

// HandleGet handles GET /posts/{postID}
func (h *GetHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, "postID")

	post, err := h.service.GetPost(r.Context(), postID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, post)
}
