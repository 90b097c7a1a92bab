package middleware

import (
	"context"
	"log"
	"net/http"

	"github.com/gorilla/sessions"
)

// Context keys for storing user information
type contextKey string

const (
	UserIDKey contextKey = "user_id"
)

const (
	sessionName   = "oneslot_session"
	sessionUserID = "user_id"
)

// SessionAuthMiddleware enforces cookie-session authentication for protected
// routes. The session is established by the OAuth callback on sign-in.
type SessionAuthMiddleware struct {
	store *sessions.CookieStore
}

// NewSessionAuthMiddleware creates a new session auth middleware
func NewSessionAuthMiddleware(store *sessions.CookieStore) *SessionAuthMiddleware {
	return &SessionAuthMiddleware{store: store}
}

// RequireAuth middleware ensures the request carries a valid session cookie
// If not authenticated, returns 401
// If authenticated, injects the user ID into context
func (m *SessionAuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := m.userIDFromSession(r)
		if userID == "" {
			writeAuthError(w, "Authentication required")
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// OptionalAuth loads the user ID if a session exists, but doesn't require it
// Useful for endpoints that work for both authenticated and anonymous users
func (m *SessionAuthMiddleware) OptionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := m.userIDFromSession(r)
		if userID == "" {
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *SessionAuthMiddleware) userIDFromSession(r *http.Request) string {
	httpSession, err := m.store.Get(r, sessionName)
	if err != nil || httpSession.IsNew {
		return ""
	}

	userID, _ := httpSession.Values[sessionUserID].(string)
	return userID
}

// GetUserID extracts the authenticated user's ID from the request context
// Returns empty string if not authenticated
func GetUserID(r *http.Request) string {
	userID, _ := r.Context().Value(UserIDKey).(string)
	return userID
}

// GetAuthenticatedUserID extracts the authenticated user's ID from the context
// This is used by service layers for defense-in-depth validation
// Returns empty string if not authenticated
func GetAuthenticatedUserID(ctx context.Context) string {
	userID, _ := ctx.Value(UserIDKey).(string)
	return userID
}

// SetTestUserID sets the user ID in the context for testing purposes
// This function should ONLY be used in tests to mock authenticated users
func SetTestUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, UserIDKey, userID)
}

// writeAuthError writes a JSON error response for authentication failures
func writeAuthError(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	response := `{"error":"AuthenticationRequired","message":"` + message + `"}`
	if _, err := w.Write([]byte(response)); err != nil {
		log.Printf("Failed to write auth error response: %v", err)
	}
}
