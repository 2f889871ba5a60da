package common

import (
	"encoding/json"
	"net/http"
)

// Envelope is the canonical response shape: a "success" or "error" status,
// a human-readable message, and optional payload fields.
type Envelope struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Product any    `json:"product,omitempty"`
}

// JSON writes the provided value to the response writer as JSON.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// JSONSuccess renders a success envelope.
func JSONSuccess(w http.ResponseWriter, status int, env Envelope) {
	env.Status = "success"
	JSON(w, status, env)
}

// JSONError renders an error envelope with the canonical shape.
func JSONError(w http.ResponseWriter, status int, message string) {
	JSON(w, status, Envelope{Status: "error", Message: message})
}
