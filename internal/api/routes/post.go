package routes

import (
	"github.com/go-chi/chi/v5"

	"Ripple/internal/api/handlers/post"
	"Ripple/internal/api/middleware"
	"Ripple/internal/core/posts"
)

// RegisterPostRoutes registers the post lifecycle and engagement endpoints.
// Feed and single-post reads are public; every mutation requires auth.
func RegisterPostRoutes(r chi.Router, service posts.Service, authMiddleware *middleware.Auth) {
	createHandler := post.NewCreateHandler(service)
	getHandler := post.NewGetHandler(service)
	listHandler := post.NewListHandler(service)
	updateHandler := post.NewUpdateHandler(service)
	deleteHandler := post.NewDeleteHandler(service)
	deleteImageHandler := post.NewDeleteImageHandler(service)
	likeHandler := post.NewLikeHandler(service)
	commentHandler := post.NewCommentHandler(service)

	r.Get("/posts", listHandler.HandleList)
	r.Get("/posts/{postID}", getHandler.HandleGet)

	r.With(authMiddleware.RequireAuth).Post("/posts", createHandler.HandleCreate)
	r.With(authMiddleware.RequireAuth).Put("/posts/{postID}", updateHandler.HandleUpdate)
	r.With(authMiddleware.RequireAuth).Delete("/posts/{postID}", deleteHandler.HandleDelete)
	r.With(authMiddleware.RequireAuth).Delete("/posts/{postID}/images/{storageID}", deleteImageHandler.HandleDeleteImage)
	r.With(authMiddleware.RequireAuth).Post("/posts/{postID}/like", likeHandler.HandleToggleLike)
	r.With(authMiddleware.RequireAuth).Post("/posts/{postID}/comment", commentHandler.HandleComment)
}
