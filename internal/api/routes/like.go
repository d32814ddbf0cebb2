package routes

import (
	"github.com/go-chi/chi/v5"

	"socialfeed/internal/api/handlers/like"
	"socialfeed/internal/core/feed"
)

// RegisterLikeRoutes registers like endpoints on the router.
// Likes have no identifier of their own; the unlike endpoint addresses
// them by post ID plus the username query parameter.
func RegisterLikeRoutes(r chi.Router, service feed.Service) {
	likeHandler := like.NewLikePostHandler(service)
	unlikeHandler := like.NewUnlikePostHandler(service)

	r.Post("/api/posts/{postID}/likes", likeHandler.HandleLike)
	r.Delete("/api/posts/{postID}/likes", unlikeHandler.HandleUnlike)
}
