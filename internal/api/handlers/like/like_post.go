package like

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"socialfeed/internal/api/handlers"
	"socialfeed/internal/core/feed"
)

// LikePostHandler handles like creation requests
type LikePostHandler struct {
	service feed.Service
}

// NewLikePostHandler creates a new like post handler
func NewLikePostHandler(service feed.Service) *LikePostHandler {
	return &LikePostHandler{service: service}
}

// LikePostInput is the request body for liking a post
type LikePostInput struct {
	Username string `json:"username"`
}

// HandleLike records a like for the (post, user) pair
// POST /api/posts/{postID}/likes
//
// Request body: { "username": "..." }
func (h *LikePostHandler) HandleLike(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, "postID")

	r.Body = http.MaxBytesReader(w, r.Body, 4*1024)

	var input LikePostInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, handlers.KindValidation, "Invalid request body")
		return
	}

	if input.Username == "" {
		handlers.WriteError(w, http.StatusBadRequest, handlers.KindValidation, "username is required")
		return
	}

	created, err := h.service.LikePost(r.Context(), postID, input.Username)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusCreated, created)
}
