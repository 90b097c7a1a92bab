package calendar

import (
	"encoding/json"
	"log"
	"net/http"

	"OneSlot/internal/api/middleware"
	"OneSlot/internal/core/accounts"
)

// ListHandler lists the authenticated user's connected calendar accounts
type ListHandler struct {
	service accounts.AccountService
}

// NewListHandler creates a new list handler
func NewListHandler(service accounts.AccountService) *ListHandler {
	return &ListHandler{service: service}
}

// HandleList returns the user's connected accounts, newest first
// GET /api/calendar/accounts
func (h *ListHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	results, err := h.service.ListForUser(r.Context(), userID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	// Tokens carry json:"-" on the model; only identity fields leave the server
	response := map[string]interface{}{
		"accounts": results,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Printf("Failed to encode account list response: %v", err)
	}
}
