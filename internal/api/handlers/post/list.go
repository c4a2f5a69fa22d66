package post

import (
	"net/http"
	"strconv"

	"Ripple/internal/api/handlers"
	"Ripple/internal/core/posts"
)

// ListHandler handles feed retrieval
type ListHandler struct {
	service posts.Service
}

// NewListHandler creates a new list handler
func NewListHandler(service posts.Service) *ListHandler {
	return &ListHandler{service: service}
}

// HandleList handles GET /posts?page=&limit=
// Non-numeric or missing parameters fall back to page 1 / limit 10.
func (h *ListHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	feed, err := h.service.ListFeed(r.Context(), posts.ListFeedRequest{
		Page:  page,
		Limit: limit,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WritePage(w, http.StatusOK, feed.Posts, feed.Pagination)
}
