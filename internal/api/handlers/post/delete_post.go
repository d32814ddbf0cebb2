package post

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"socialfeed/internal/core/feed"
)

// DeletePostHandler handles post deletion requests
type DeletePostHandler struct {
	service feed.Service
}

// NewDeletePostHandler creates a new delete post handler
func NewDeletePostHandler(service feed.Service) *DeletePostHandler {
	return &DeletePostHandler{service: service}
}

// HandleDelete deletes a post and cascades to its comments and likes
// DELETE /api/posts/{postID}
func (h *DeletePostHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, "postID")

	if err := h.service.DeletePost(r.Context(), postID); err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
