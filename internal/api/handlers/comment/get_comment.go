package comment

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"socialfeed/internal/api/handlers"
	"socialfeed/internal/core/feed"
)

// GetCommentHandler handles retrieving a single comment
type GetCommentHandler struct {
	service feed.Service
}

// NewGetCommentHandler creates a new get comment handler
func NewGetCommentHandler(service feed.Service) *GetCommentHandler {
	return &GetCommentHandler{service: service}
}

// HandleGet retrieves a comment scoped by its parent post
// GET /api/posts/{postID}/comments/{commentID}
func (h *GetCommentHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, "postID")
	commentID := chi.URLParam(r, "commentID")

	found, err := h.service.GetComment(r.Context(), postID, commentID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, found)
}
