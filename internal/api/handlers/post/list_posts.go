package post

import (
	"net/http"

	"socialfeed/internal/api/handlers"
	"socialfeed/internal/core/feed"
)

// ListPostsHandler handles listing all posts
type ListPostsHandler struct {
	service feed.Service
}

// NewListPostsHandler creates a new list posts handler
func NewListPostsHandler(service feed.Service) *ListPostsHandler {
	return &ListPostsHandler{service: service}
}

// HandleList returns all posts, newest first
// GET /api/posts
func (h *ListPostsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	all, err := h.service.ListPosts(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, all)
}
