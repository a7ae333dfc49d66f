package utils

import (
	"encoding/json"
	"log"
	"net/http"
)

// ErrorResponse is the envelope for failures that carry only a message.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// WriteJSON writes v as a JSON body with the given status code.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[WriteJSON] encode error: %v", err)
	}
}

// WriteError writes a {success:false, error} envelope.
func WriteError(w http.ResponseWriter, status int, err error) {
	WriteJSON(w, status, ErrorResponse{Success: false, Error: err.Error()})
}
