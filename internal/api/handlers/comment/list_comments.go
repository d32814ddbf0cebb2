package comment

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"socialfeed/internal/api/handlers"
	"socialfeed/internal/core/feed"
)

// ListCommentsHandler handles listing a post's comments
type ListCommentsHandler struct {
	service feed.Service
}

// NewListCommentsHandler creates a new list comments handler
func NewListCommentsHandler(service feed.Service) *ListCommentsHandler {
	return &ListCommentsHandler{service: service}
}

// HandleList returns a post's comments in chronological order
// GET /api/posts/{postID}/comments
func (h *ListCommentsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, "postID")

	list, err := h.service.ListComments(r.Context(), postID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, list)
}
