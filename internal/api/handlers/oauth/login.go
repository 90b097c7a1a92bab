package oauth

import (
	"log"
	"net/http"
	"strings"

	oauthCore "OneSlot/internal/core/oauth"
)

// LoginHandler handles OAuth login flow initiation
type LoginHandler struct {
	flows oauthCore.FlowService
}

// NewLoginHandler creates a new login handler
func NewLoginHandler(flows oauthCore.FlowService) *LoginHandler {
	return &LoginHandler{flows: flows}
}

// HandleLogin initiates the Google sign-in flow
// GET /oauth/google/login?return_url=/dashboard
func (h *LoginHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	returnURL := sanitizeReturnURL(r.URL.Query().Get("return_url"))

	authURL, err := h.flows.StartLogin(r.Context(), returnURL)
	if err != nil {
		log.Printf("Failed to start login flow: %v", err)
		http.Error(w, "Failed to initiate authorization", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, authURL, http.StatusFound)
}

// sanitizeReturnURL only admits same-origin relative paths, so the post-login
// redirect can never leave the application
func sanitizeReturnURL(raw string) string {
	if raw == "" {
		return ""
	}
	if !strings.HasPrefix(raw, "/") || strings.HasPrefix(raw, "//") || strings.Contains(raw, "\\") {
		return ""
	}
	return raw
}
