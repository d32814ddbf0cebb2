package comment

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"socialfeed/internal/api/handlers"
	"socialfeed/internal/core/comments"
	"socialfeed/internal/core/feed"
)

// UpdateCommentHandler handles comment update requests
type UpdateCommentHandler struct {
	service feed.Service
}

// NewUpdateCommentHandler creates a new update comment handler
func NewUpdateCommentHandler(service feed.Service) *UpdateCommentHandler {
	return &UpdateCommentHandler{service: service}
}

// HandleUpdate patches an existing comment's content
// PATCH /api/posts/{postID}/comments/{commentID}
//
// Request body: { "content": "..." }
func (h *UpdateCommentHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, "postID")
	commentID := chi.URLParam(r, "commentID")

	r.Body = http.MaxBytesReader(w, r.Body, 64*1024)

	var req comments.UpdateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, handlers.KindValidation, "Invalid request body")
		return
	}

	if req.Content != nil && *req.Content == "" {
		handlers.WriteError(w, http.StatusBadRequest, handlers.KindValidation, "content must not be empty")
		return
	}

	updated, err := h.service.UpdateComment(r.Context(), postID, commentID, req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, updated)
}
