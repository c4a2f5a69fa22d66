package auth

import (
	"encoding/json"
	"net/http"

	"Ripple/internal/api/handlers"
	"Ripple/internal/core/users"
)

// LoginHandler handles credential verification
type LoginHandler struct {
	service users.Service
}

// NewLoginHandler creates a new login handler
func NewLoginHandler(service users.Service) *LoginHandler {
	return &LoginHandler{service: service}
}

// HandleLogin handles POST /auth/login
func (h *LoginHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 64*1024)

	var req users.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	session, err := h.service.Login(r.Context(), req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, session)
}
