package auth

import (
	"net/http"

	"Ripple/internal/api/handlers"
	"Ripple/internal/api/middleware"
	"Ripple/internal/core/users"
)

// MeHandler returns the account behind the presented token
type MeHandler struct {
	service users.Service
}

// NewMeHandler creates a new me handler
func NewMeHandler(service users.Service) *MeHandler {
	return &MeHandler{service: service}
}

// HandleMe handles GET /auth/me
func (h *MeHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	identity := middleware.GetIdentity(r)

	user, err := h.service.GetByID(r.Context(), identity.UserID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, user)
}
