package post

import (
	"errors"
	"log"
	"net/http"

	"socialfeed/internal/api/handlers"
	"socialfeed/internal/core/posts"
)

// handleServiceError converts feed service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, posts.ErrNotFound):
		handlers.WriteError(w, http.StatusNotFound, handlers.KindNotFound, "Post not found")
	case posts.IsValidationError(err):
		handlers.WriteError(w, http.StatusBadRequest, handlers.KindValidation, err.Error())
	default:
		log.Printf("Post handler error: %v", err)
		handlers.WriteError(w, http.StatusInternalServerError, handlers.KindInternal, "An internal error occurred")
	}
}
