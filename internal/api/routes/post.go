package routes

import (
	"github.com/go-chi/chi/v5"

	"socialfeed/internal/api/handlers/post"
	"socialfeed/internal/core/feed"
)

// RegisterPostRoutes registers post CRUD endpoints on the router
func RegisterPostRoutes(r chi.Router, service feed.Service) {
	listHandler := post.NewListPostsHandler(service)
	createHandler := post.NewCreatePostHandler(service)
	getHandler := post.NewGetPostHandler(service)
	updateHandler := post.NewUpdatePostHandler(service)
	deleteHandler := post.NewDeletePostHandler(service)

	r.Get("/api/posts", listHandler.HandleList)
	r.Post("/api/posts", createHandler.HandleCreate)
	r.Get("/api/posts/{postID}", getHandler.HandleGet)
	r.Patch("/api/posts/{postID}", updateHandler.HandleUpdate)
	r.Delete("/api/posts/{postID}", deleteHandler.HandleDelete)
}
