package like

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"socialfeed/internal/api/handlers"
	"socialfeed/internal/core/feed"
)

// UnlikePostHandler handles like removal requests
type UnlikePostHandler struct {
	service feed.Service
}

// NewUnlikePostHandler creates a new unlike post handler
func NewUnlikePostHandler(service feed.Service) *UnlikePostHandler {
	return &UnlikePostHandler{service: service}
}

// HandleUnlike removes the caller's like from a post
// DELETE /api/posts/{postID}/likes?username=...
func (h *UnlikePostHandler) HandleUnlike(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, "postID")

	username := r.URL.Query().Get("username")
	if username == "" {
		handlers.WriteError(w, http.StatusBadRequest, handlers.KindValidation, "username query parameter is required")
		return
	}

	if err := h.service.UnlikePost(r.Context(), postID, username); err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
