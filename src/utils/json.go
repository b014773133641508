package utils

import (
	"encoding/json"
	"net/http"

	"github.com/0pain01/Financial-Foresight/src/logger"
)

// SendJSONError writes a JSON error body with the given status code.
func SendJSONError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(map[string]string{"error": message}); err != nil {
		logger.L.Error("Failed to encode JSON error response", "error", err)
	}
}

// SendJSONResponse writes payload as JSON with the given status code.
func SendJSONResponse(w http.ResponseWriter, payload any, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.L.Error("Failed to encode JSON response", "error", err)
	}
}
