package like

import (
	"errors"
	"log"
	"net/http"

	"socialfeed/internal/api/handlers"
	"socialfeed/internal/core/likes"
	"socialfeed/internal/core/posts"
)

// handleServiceError converts feed service errors to HTTP responses.
// A duplicate like is a client validation error, not a conflict: the post
// exists, the request is just invalid for the current state.
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, posts.ErrNotFound):
		handlers.WriteError(w, http.StatusNotFound, handlers.KindNotFound, "Post not found")
	case errors.Is(err, likes.ErrNotFound):
		handlers.WriteError(w, http.StatusNotFound, handlers.KindNotFound, "Like not found")
	case errors.Is(err, likes.ErrAlreadyLiked):
		handlers.WriteError(w, http.StatusBadRequest, handlers.KindValidation, "Post already liked by this user")
	case posts.IsValidationError(err):
		handlers.WriteError(w, http.StatusBadRequest, handlers.KindValidation, err.Error())
	default:
		log.Printf("Like handler error: %v", err)
		handlers.WriteError(w, http.StatusInternalServerError, handlers.KindInternal, "An internal error occurred")
	}
}
