package middleware

import (
	"context"
	"log"
	"net/http"
	"strings"

	"Ripple/internal/api/handlers"
	"Ripple/internal/auth"
)

type contextKey string

const identityKey contextKey = "identity"

// Identity is the verified caller injected into the request context.
// Everything downstream trusts these two fields and nothing else about
// the request's authentication.
type Identity struct {
	UserID   string
	Username string
}

// Auth validates bearer tokens on protected routes
type Auth struct {
	tokens *auth.Manager
}

// NewAuth creates the auth middleware
func NewAuth(tokens *auth.Manager) *Auth {
	return &Auth{tokens: tokens}
}

// RequireAuth ensures the request carries a valid bearer token.
// On success the verified identity is injected into the context;
// otherwise the request ends with 401.
func (a *Auth) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			handlers.WriteError(w, http.StatusUnauthorized, "Missing Authorization header")
			return
		}
		if !strings.HasPrefix(header, "Bearer ") {
			handlers.WriteError(w, http.StatusUnauthorized, "Invalid Authorization header format. Expected: Bearer <token>")
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		claims, err := a.tokens.Validate(token)
		if err != nil {
			log.Printf("[AUTH] rejected token: method=%s path=%s error=%v", r.Method, r.URL.Path, err)
			handlers.WriteError(w, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		identity := Identity{UserID: claims.UserID, Username: claims.Username}
		ctx := context.WithValue(r.Context(), identityKey, identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetIdentity returns the verified identity from the request context.
// The zero Identity means the request never passed RequireAuth.
func GetIdentity(r *http.Request) Identity {
	identity, _ := r.Context().Value(identityKey).(Identity)
	return identity
}
