package user

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"OneSlot/internal/api/middleware"
	"OneSlot/internal/core/users"
)

// MeHandler returns the authenticated user's profile
type MeHandler struct {
	service users.UserService
}

// NewMeHandler creates a new me handler
func NewMeHandler(service users.UserService) *MeHandler {
	return &MeHandler{service: service}
}

// HandleMe returns the current user
// GET /api/auth/me
func (h *MeHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	current, err := h.service.GetUser(r.Context(), userID)
	if err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			// Session references a deleted user; force a fresh sign-in
			writeError(w, http.StatusUnauthorized, "AuthRequired", "Account no longer exists")
			return
		}
		log.Printf("Failed to load user %s: %v", userID, err)
		writeError(w, http.StatusInternalServerError, "InternalError", "An internal error occurred")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(map[string]interface{}{"user": current}); err != nil {
		log.Printf("Failed to encode user response: %v", err)
	}
}

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
