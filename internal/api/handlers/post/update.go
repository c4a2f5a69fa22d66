package post

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"Ripple/internal/api/handlers"
	"Ripple/internal/api/middleware"
	"Ripple/internal/core/posts"
)

// UpdateHandler handles in-place post edits
type UpdateHandler struct {
	service posts.Service
}

// NewUpdateHandler creates a new update handler
func NewUpdateHandler(service posts.Service) *UpdateHandler {
	return &UpdateHandler{service: service}
}

// HandleUpdate handles PUT /posts/{postID}
// Accepts a multipart form: an optional "content" field (empty string
// clears the text), "imagesToDelete" storage ids and new "images" files.
func (h *UpdateHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, "postID")

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

	updated, err := h.service.UpdatePost(r.Context(), posts.UpdatePostRequest{
		PostID:         postID,
		RequesterID:    identity.UserID,
		Content:        formContent(r.MultipartForm),
		ImagesToDelete: readImagesToDelete(r.MultipartForm),
		Uploads:        uploads,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, updated)
}
