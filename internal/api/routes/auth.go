package routes

import (
	"github.com/go-chi/chi/v5"

	"Ripple/internal/api/handlers/auth"
	"Ripple/internal/api/middleware"
	"Ripple/internal/core/users"
)

// RegisterAuthRoutes registers the account endpoints
func RegisterAuthRoutes(r chi.Router, service users.Service, authMiddleware *middleware.Auth) {
	signupHandler := auth.NewSignupHandler(service)
	loginHandler := auth.NewLoginHandler(service)
	meHandler := auth.NewMeHandler(service)

	r.Post("/auth/signup", signupHandler.HandleSignup)
	r.Post("/auth/login", loginHandler.HandleLogin)
	r.With(authMiddleware.RequireAuth).Get("/auth/me", meHandler.HandleMe)
}
