package comment

import (
	"errors"
	"log"
	"net/http"

	"socialfeed/internal/api/handlers"
	"socialfeed/internal/core/comments"
	"socialfeed/internal/core/posts"
)

// handleServiceError converts feed service errors to HTTP responses.
// A missing parent post and a missing comment are distinct not-found
// messages, matching which existence check failed.
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, posts.ErrNotFound):
		handlers.WriteError(w, http.StatusNotFound, handlers.KindNotFound, "Post not found")
	case errors.Is(err, comments.ErrNotFound):
		handlers.WriteError(w, http.StatusNotFound, handlers.KindNotFound, "Comment not found")
	case comments.IsValidationError(err):
		handlers.WriteError(w, http.StatusBadRequest, handlers.KindValidation, err.Error())
	default:
		log.Printf("Comment handler error: %v", err)
		handlers.WriteError(w, http.StatusInternalServerError, handlers.KindInternal, "An internal error occurred")
	}
}
