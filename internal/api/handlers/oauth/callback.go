package oauth

import (
	"log"
	"net/http"

	oauthCore "OneSlot/internal/core/oauth"
)

const (
	sessionName   = "oneslot_session"
	sessionUserID = "user_id"
)

// CallbackHandler handles the provider redirect for both flows
type CallbackHandler struct {
	flows oauthCore.FlowService
}

// NewCallbackHandler creates a new callback handler
func NewCallbackHandler(flows oauthCore.FlowService) *CallbackHandler {
	return &CallbackHandler{flows: flows}
}

// HandleCallback processes the OAuth callback
// GET /oauth/google/callback?code=...&state=... (or ?error=...)
func (h *CallbackHandler) HandleCallback(w http.ResponseWriter, r *http.Request) {
	params := oauthCore.CallbackParams{
		Code:  r.URL.Query().Get("code"),
		State: r.URL.Query().Get("state"),
		Error: r.URL.Query().Get("error"),
	}

	result := h.flows.HandleCallback(r.Context(), params)

	if result.Mode == oauthCore.ModeLogin {
		h.finishLogin(w, r, result)
		return
	}

	// Connect mode, and every path where the flow request was never resolved
	// (cancelled, undecodable state). Those render in whatever window Google
	// redirected; the page closes itself when it has an opener and falls back
	// to the login screen when it is a full-page navigation.
	h.finishConnect(w, r, result)
}

func (h *CallbackHandler) finishLogin(w http.ResponseWriter, r *http.Request, result *oauthCore.CallbackResult) {
	if result.Outcome != oauthCore.OutcomeSuccess {
		http.Redirect(w, r, "/login?error="+string(result.Outcome), http.StatusFound)
		return
	}

	if err := establishSession(w, r, result.UserID); err != nil {
		log.Printf("Failed to establish session for user %s: %v", result.UserID, err)
		http.Redirect(w, r, "/login?error="+string(oauthCore.OutcomePersistFailed), http.StatusFound)
		return
	}

	returnURL := result.ReturnURL
	if returnURL == "" {
		returnURL = "/dashboard"
	}
	http.Redirect(w, r, returnURL, http.StatusFound)
}

func (h *CallbackHandler) finishConnect(w http.ResponseWriter, r *http.Request, result *oauthCore.CallbackResult) {
	fallbackURL := "/login?error=" + string(result.Outcome)

	switch result.Outcome {
	case oauthCore.OutcomeSuccess:
		renderConnectSuccess(w, connectSuccessData{
			Provider: result.Provider,
			Email:    result.Email,
		})
	case oauthCore.OutcomeCancelled:
		renderConnectError(w, connectErrorData{
			Title:       "Connection Cancelled",
			Message:     "No calendar was connected. Your existing calendars are unchanged.",
			FallbackURL: fallbackURL,
		})
	case oauthCore.OutcomeMalformed:
		renderConnectError(w, connectErrorData{
			Title:       "Something Went Wrong",
			Message:     "This authorization link is invalid or has expired. Please start again from the dashboard.",
			FallbackURL: fallbackURL,
		})
	default:
		// exchange_failed, profile_failed, persist_failed
		renderConnectError(w, connectErrorData{
			Title:       "Connection Failed",
			Message:     "We couldn't finish connecting your calendar. Please try again in a moment.",
			FallbackURL: fallbackURL,
		})
	}
}

// establishSession writes the authenticated user's ID into the session cookie
func establishSession(w http.ResponseWriter, r *http.Request, userID string) error {
	cookieStore := GetCookieStore()
	httpSession, err := cookieStore.Get(r, sessionName)
	if err != nil {
		// Stale or tampered cookie; start a fresh session
		httpSession, err = cookieStore.New(r, sessionName)
		if err != nil {
			return err
		}
	}

	httpSession.Values[sessionUserID] = userID
	httpSession.Options.MaxAge = SessionMaxAge
	httpSession.Options.HttpOnly = true
	httpSession.Options.Secure = !isDevelopment()
	httpSession.Options.SameSite = http.SameSiteLaxMode

	return httpSession.Save(r, w)
}
