// internal/api/handler/respond.go
package handler

import (
	"encoding/json"
	"net/http"

	"balance-ledger/internal/logger"
)

// WriteResponse marshals payload and sends it with the given status code.
func WriteResponse(w http.ResponseWriter, payload interface{}, statusCode int) {
	body, err := json.Marshal(payload)
	if err != nil {
		l := logger.Global()
		l.Error().Err(err).Msg("failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_, _ = w.Write(body)
}

// WriteError sends a JSON error body with the given status code.
func WriteError(w http.ResponseWriter, statusCode int, message string) {
	WriteResponse(w, map[string]string{"error": message}, statusCode)
}
