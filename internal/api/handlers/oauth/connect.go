package oauth

import (
	"encoding/json"
	"log"
	"net/http"

	oauthCore "OneSlot/internal/core/oauth"
)

// ConnectHandler starts the calendar-connect flow for an authenticated user
type ConnectHandler struct {
	flows oauthCore.FlowService
}

// NewConnectHandler creates a new connect handler
func NewConnectHandler(flows oauthCore.FlowService) *ConnectHandler {
	return &ConnectHandler{flows: flows}
}

// HandleConnect returns the Google authorization URL for the popup to open
// POST /api/calendar/connect
func (h *ConnectHandler) HandleConnect(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetCurrentUserOrError(w, r)
	if !ok {
		return
	}

	authURL, err := h.flows.StartConnect(r.Context(), userID)
	if err != nil {
		log.Printf("Failed to start connect flow for user %s: %v", userID, err)
		http.Error(w, "Failed to initiate authorization", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(map[string]string{"authUrl": authURL}); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}
