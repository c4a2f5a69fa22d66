package post

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"Ripple/internal/api/handlers"
	"Ripple/internal/api/middleware"
	"Ripple/internal/core/posts"
)

// CommentHandler handles comment creation
type CommentHandler struct {
	service posts.Service
}

// NewCommentHandler creates a new comment handler
func NewCommentHandler(service posts.Service) *CommentHandler {
	return &CommentHandler{service: service}
}

// CommentInput is the JSON body of a comment request
type CommentInput struct {
	Text string `json:"text"`
}

// HandleComment handles POST /posts/{postID}/comment
func (h *CommentHandler) HandleComment(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, "postID")

	r.Body = http.MaxBytesReader(w, r.Body, 100*1024)

	var input CommentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	identity := middleware.GetIdentity(r)

	comment, err := h.service.AddComment(r.Context(), posts.AddCommentRequest{
		PostID:   postID,
		AuthorID: identity.UserID,
		Text:     input.Text,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusCreated, comment)
}
