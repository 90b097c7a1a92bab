package dashboard

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"OneSlot/internal/api/middleware"
	"OneSlot/internal/core/accounts"
	"OneSlot/internal/core/meetings"
)

// StatsHandler serves the dashboard summary numbers
type StatsHandler struct {
	accountSvc accounts.AccountService
	meetingSvc *meetings.Service
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(accountSvc accounts.AccountService, meetingSvc *meetings.Service) *StatsHandler {
	return &StatsHandler{
		accountSvc: accountSvc,
		meetingSvc: meetingSvc,
	}
}

type statCard struct {
	Label  string `json:"label"`
	Value  string `json:"value"`
	Change string `json:"change,omitempty"`
}

// HandleStats returns the dashboard cards
// GET /api/dashboard/stats
//
// Calendar and meeting-type counts are live; booking figures are placeholders
// until a booking pipeline exists.
func (h *StatsHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	connected, err := h.accountSvc.ListForUser(r.Context(), userID)
	if err != nil {
		log.Printf("Failed to list calendar accounts for stats: %v", err)
		http.Error(w, "Failed to load stats", http.StatusInternalServerError)
		return
	}

	meetingTypes := h.meetingSvc.List(userID)

	stats := []statCard{
		{Label: "Total Bookings", Value: "127", Change: "+12%"},
		{Label: "This Week", Value: "23", Change: "+8%"},
		{Label: "Meeting Types", Value: strconv.Itoa(len(meetingTypes))},
		{Label: "Booking Rate", Value: "89%", Change: "+5%"},
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(map[string]interface{}{
		"stats":              stats,
		"connectedCalendars": len(connected),
	}); err != nil {
		log.Printf("Failed to encode stats response: %v", err)
	}
}
