// Package middleware provides HTTP middleware components for the donorsync API.
package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/benx421/donorsync/internal/api"
)

// WriteError writes the standard JSON error body
func WriteError(w http.ResponseWriter, status int, code api.ErrorCode, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck // Best effort response writing
	json.NewEncoder(w).Encode(api.Error{Error: code, Message: message})
}
