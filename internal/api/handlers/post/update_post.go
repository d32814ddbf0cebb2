package post

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"socialfeed/internal/api/handlers"
	"socialfeed/internal/core/feed"
	"socialfeed/internal/core/posts"
)

// UpdatePostHandler handles post update requests
type UpdatePostHandler struct {
	service feed.Service
}

// NewUpdatePostHandler creates a new update post handler
func NewUpdatePostHandler(service feed.Service) *UpdatePostHandler {
	return &UpdatePostHandler{service: service}
}

// HandleUpdate patches an existing post; only supplied fields are applied
// PATCH /api/posts/{postID}
//
// Request body: { "content": "..." }
func (h *UpdatePostHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, "postID")

	r.Body = http.MaxBytesReader(w, r.Body, 64*1024)

	var req posts.UpdatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, handlers.KindValidation, "Invalid request body")
		return
	}

	if req.Content != nil && *req.Content == "" {
		handlers.WriteError(w, http.StatusBadRequest, handlers.KindValidation, "content must not be empty")
		return
	}

	updated, err := h.service.UpdatePost(r.Context(), postID, req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, updated)
}
