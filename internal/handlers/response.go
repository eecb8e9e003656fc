package handlers

import (
	"encoding/json"
	"net/http"
)

// ErrorBody is the standardised JSON error payload.
type ErrorBody struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

// WriteError writes a standardised JSON error response. requestID is omitted
// from the body when empty.
func WriteError(w http.ResponseWriter, status int, msg, requestID string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorBody{
		Error:     msg,
		RequestID: requestID,
	})
}
