package comment

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"socialfeed/internal/api/handlers"
	"socialfeed/internal/core/comments"
	"socialfeed/internal/core/feed"
)

// CreateCommentHandler handles comment creation requests
type CreateCommentHandler struct {
	service feed.Service
}

// NewCreateCommentHandler creates a new create comment handler
func NewCreateCommentHandler(service feed.Service) *CreateCommentHandler {
	return &CreateCommentHandler{service: service}
}

// HandleCreate attaches a new comment to a post
// POST /api/posts/{postID}/comments
//
// Request body: { "username": "...", "content": "..." }
func (h *CreateCommentHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, "postID")

	r.Body = http.MaxBytesReader(w, r.Body, 64*1024)

	var req comments.CreateCommentRequest
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

	created, err := h.service.CreateComment(r.Context(), postID, req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusCreated, created)
}
