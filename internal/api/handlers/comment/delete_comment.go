package comment

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"socialfeed/internal/core/feed"
)

// DeleteCommentHandler handles comment deletion requests
type DeleteCommentHandler struct {
	service feed.Service
}

// NewDeleteCommentHandler creates a new delete comment handler
func NewDeleteCommentHandler(service feed.Service) *DeleteCommentHandler {
	return &DeleteCommentHandler{service: service}
}

// HandleDelete removes a comment scoped by its parent post
// DELETE /api/posts/{postID}/comments/{commentID}
func (h *DeleteCommentHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, "postID")
	commentID := chi.URLParam(r, "commentID")

	if err := h.service.DeleteComment(r.Context(), postID, commentID); err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
