package auth

import (
	"encoding/json"
	"net/http"

	"Ripple/internal/api/handlers"
	"Ripple/internal/core/users"
)

// SignupHandler handles account creation
type SignupHandler struct {
	service users.Service
}

// NewSignupHandler creates a new signup handler
func NewSignupHandler(service users.Service) *SignupHandler {
	return &SignupHandler{service: service}
}

// HandleSignup handles POST /auth/signup
func (h *SignupHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 64*1024)

	var req users.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	session, err := h.service.Signup(r.Context(), req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusCreated, session)
}
