package routes

import (
	"github.com/go-chi/chi/v5"

	"socialfeed/internal/api/handlers/comment"
	"socialfeed/internal/core/feed"
)

// RegisterCommentRoutes registers comment CRUD endpoints on the router.
// Comments are always addressed through their parent post.
func RegisterCommentRoutes(r chi.Router, service feed.Service) {
	listHandler := comment.NewListCommentsHandler(service)
	createHandler := comment.NewCreateCommentHandler(service)
	getHandler := comment.NewGetCommentHandler(service)
	updateHandler := comment.NewUpdateCommentHandler(service)
	deleteHandler := comment.NewDeleteCommentHandler(service)

	r.Get("/api/posts/{postID}/comments", listHandler.HandleList)
	r.Post("/api/posts/{postID}/comments", createHandler.HandleCreate)
	r.Get("/api/posts/{postID}/comments/{commentID}", getHandler.HandleGet)
	r.Patch("/api/posts/{postID}/comments/{commentID}", updateHandler.HandleUpdate)
	r.Delete("/api/posts/{postID}/comments/{commentID}", deleteHandler.HandleDelete)
}
