package oauth

import (
	"encoding/json"
	"log"
	"net/http"
)

// LogoutHandler handles user logout
type LogoutHandler struct{}

// NewLogoutHandler creates a new logout handler
func NewLogoutHandler() *LogoutHandler {
	return &LogoutHandler{}
}

// HandleLogout clears the session cookie
// POST /oauth/logout
func (h *LogoutHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	cookieStore := GetCookieStore()
	httpSession, err := cookieStore.Get(r, sessionName)
	if err == nil && !httpSession.IsNew {
		httpSession.Options.MaxAge = -1 // Delete cookie
		if err := httpSession.Save(r, w); err != nil {
			log.Printf("Failed to clear HTTP session: %v", err)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "logged_out"})
}

// GetCurrentUser returns the currently authenticated user's ID
// Helper function for other handlers
func GetCurrentUser(r *http.Request) (string, error) {
	cookieStore := GetCookieStore()
	httpSession, err := cookieStore.Get(r, sessionName)
	if err != nil || httpSession.IsNew {
		return "", err
	}

	userID, ok := httpSession.Values[sessionUserID].(string)
	if !ok || userID == "" {
		return "", nil
	}

	return userID, nil
}

// GetCurrentUserOrError returns the current user's ID or sends an error response
// Helper function for protected handlers
func GetCurrentUserOrError(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID, err := GetCurrentUser(r)
	if err != nil || userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return "", false
	}

	return userID, true
}
