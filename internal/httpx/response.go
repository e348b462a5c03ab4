// Package httpx carries the JSON response helpers shared by the HTTP
// handlers.
package httpx

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the uniform error envelope for JSON endpoints.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

// JSON writes payload with the given status. Marshaling happens before the
// header is committed so an encode failure can still change the status line.
func JSON(w http.ResponseWriter, status int, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, `{"error":"encode_error"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

// JSONError writes the error envelope with the given status.
func JSONError(w http.ResponseWriter, status int, msg string, details any) {
	JSON(w, status, ErrorResponse{Error: msg, Details: details})
}
