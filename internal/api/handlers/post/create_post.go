package post

import (
	"encoding/json"
	"net/http"

	"socialfeed/internal/api/handlers"
	"socialfeed/internal/core/feed"
	"socialfeed/internal/core/posts"
)

// CreatePostHandler handles post creation requests
type CreatePostHandler struct {
	service feed.Service
}

// NewCreatePostHandler creates a new create post handler
func NewCreatePostHandler(service feed.Service) *CreatePostHandler {
	return &CreatePostHandler{service: service}
}

// HandleCreate creates a new post
// POST /api/posts
//
// Request body: { "username": "...", "content": "..." }
func (h *CreatePostHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	// Posts are free text; 64KB is plenty
	r.Body = http.MaxBytesReader(w, r.Body, 64*1024)

	var req posts.CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, handlers.KindValidation, "Invalid request body")
		return
	}

	if req.Username == "" {
		handlers.WriteError(w, http.StatusBadRequest, handlers.KindValidation, "username is required")
		return
	}
	if req.Content == "" {
		handlers.WriteError(w, http.StatusBadRequest, handlers.KindValidation, "content is required")
		return
	}

	created, err := h.service.CreatePost(r.Context(), req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusCreated, created)
}
