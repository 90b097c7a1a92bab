package calendar

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"OneSlot/internal/core/accounts"
)

// writeError writes a standardized JSON error response
func writeError(w http.ResponseWriter, statusCode int, errorType, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(map[string]interface{}{
		"error":   errorType,
		"message": message,
	}); err != nil {
		log.Printf("Failed to encode error response: %v", err)
	}
}

// handleServiceError maps account service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, accounts.ErrAccountNotFound):
		writeError(w, http.StatusNotFound, "NotFound", "Calendar account not found")
	default:
		log.Printf("Calendar account service error: %v", err)
		writeError(w, http.StatusInternalServerError, "InternalError", "An internal error occurred")
	}
}
