package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"Ripple/internal/core/posts"
)

// Response is the envelope every endpoint answers with
type Response struct {
	Success    bool              `json:"success"`
	Data       any               `json:"data,omitempty"`
	Error      string            `json:"error,omitempty"`
	Pagination *posts.Pagination `json:"pagination,omitempty"`
}

// WriteJSON writes a success envelope
func WriteJSON(w http.ResponseWriter, statusCode int, data any) {
	write(w, statusCode, Response{Success: true, Data: data})
}

// WritePage writes a success envelope carrying pagination metadata
func WritePage(w http.ResponseWriter, statusCode int, data any, pagination posts.Pagination) {
	write(w, statusCode, Response{Success: true, Data: data, Pagination: &pagination})
}

// WriteError writes a failure envelope with a caller-safe message
func WriteError(w http.ResponseWriter, statusCode int, message string) {
	write(w, statusCode, Response{Success: false, Error: message})
}

func write(w http.ResponseWriter, statusCode int, resp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}
