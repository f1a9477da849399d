// Package httputil provides shared request decoding and response writing
// helpers for the HTTP handlers.
package httputil

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// DecodeJSON decodes the request body into dst. Unknown fields are rejected
// so that typos in payloads surface instead of being silently dropped.
func DecodeJSON(body io.ReadCloser, dst any) error {
	defer body.Close()
	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

// WriteText writes a plain-text response body with the given status.
func WriteText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

// WriteJSON writes a JSON response body with the given status.
func WriteJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// WriteValidationError writes the structured 422 body used for rejected
// input: malformed JSON, missing, empty or oversized names.
func WriteValidationError(w http.ResponseWriter, err error) {
	WriteJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
}
