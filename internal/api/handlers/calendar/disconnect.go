package calendar

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"OneSlot/internal/api/middleware"
	"OneSlot/internal/core/accounts"
)

// DisconnectHandler removes a connected calendar account
type DisconnectHandler struct {
	service accounts.AccountService
}

// NewDisconnectHandler creates a new disconnect handler
func NewDisconnectHandler(service accounts.AccountService) *DisconnectHandler {
	return &DisconnectHandler{service: service}
}

// HandleDisconnect deletes the account and its stored tokens
// DELETE /api/calendar/accounts/{accountID}
func (h *DisconnectHandler) HandleDisconnect(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	accountID := chi.URLParam(r, "accountID")
	if accountID == "" {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "Missing account ID")
		return
	}

	// Ownership is enforced in the service; another user's account ID reads
	// as not found rather than forbidden
	if err := h.service.Disconnect(r.Context(), userID, accountID); err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
