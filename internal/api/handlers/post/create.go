package post

import (
	"net/http"

	"Ripple/internal/api/handlers"
	"Ripple/internal/api/middleware"
	"Ripple/internal/core/posts"
)

// CreateHandler handles post creation requests
type CreateHandler struct {
	service posts.Service
}

// NewCreateHandler creates a new create handler
func NewCreateHandler(service posts.Service) *CreateHandler {
	return &CreateHandler{service: service}
}

// HandleCreate handles POST /posts
// Accepts a multipart form with a "content" field and "images" files.
func (h *CreateHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	if err := parseMultipart(w, r); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	uploads, err := readUploads(r.MultipartForm)
	if err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "Could not read uploaded images")
		return
	}

	identity := middleware.GetIdentity(r)

	created, err := h.service.CreatePost(r.Context(), posts.CreatePostRequest{
		AuthorID: identity.UserID,
		Content:  r.FormValue("content"),
		Uploads:  uploads,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusCreated, created)
}
