package post

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"socialfeed/internal/api/handlers"
	"socialfeed/internal/core/feed"
)

// GetPostHandler handles retrieving a single post
type GetPostHandler struct {
	service feed.Service
}

// NewGetPostHandler creates a new get post handler
func NewGetPostHandler(service feed.Service) *GetPostHandler {
	return &GetPostHandler{service: service}
}

// HandleGet retrieves a post by ID
// GET /api/posts/{postID}
func (h *GetPostHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, "postID")

	found, err := h.service.GetPost(r.Context(), postID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, found)
}
