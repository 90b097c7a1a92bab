package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/sessions"
)

func newTestStore() *sessions.CookieStore {
	return sessions.NewCookieStore([]byte("0123456789abcdef0123456789abcdef"))
}

// authedRequest builds a request carrying a valid session cookie for userID
func authedRequest(t *testing.T, store *sessions.CookieStore, userID string) *http.Request {
	t.Helper()

	w := httptest.NewRecorder()
	seed := httptest.NewRequest(http.MethodGet, "/", nil)
	session, err := store.New(seed, sessionName)
	if err != nil {
		t.Fatalf("creating session: %v", err)
	}
	session.Values[sessionUserID] = userID
	if err := session.Save(seed, w); err != nil {
		t.Fatalf("saving session: %v", err)
	}

	r := httptest.NewRequest(http.MethodGet, "/api/calendar/accounts", nil)
	for _, c := range w.Result().Cookies() {
		r.AddCookie(c)
	}
	return r
}

func TestRequireAuth_RejectsAnonymous(t *testing.T) {
	m := NewSessionAuthMiddleware(newTestStore())

	called := false
	handler := m.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/calendar/accounts", nil))

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if called {
		t.Error("protected handler ran without a session")
	}
}

func TestRequireAuth_InjectsUserID(t *testing.T) {
	store := newTestStore()
	m := NewSessionAuthMiddleware(store)

	var gotUserID string
	handler := m.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID = GetUserID(r)
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, authedRequest(t, store, "user-42"))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if gotUserID != "user-42" {
		t.Errorf("GetUserID = %q, want user-42", gotUserID)
	}
}

func TestRequireAuth_RejectsForgedCookie(t *testing.T) {
	// Cookie signed with a different secret must not authenticate
	other := sessions.NewCookieStore([]byte("ffffffffffffffffffffffffffffffff"))
	m := NewSessionAuthMiddleware(newTestStore())

	handler := m.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, authedRequest(t, other, "user-42"))

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for forged cookie, got %d", w.Code)
	}
}

func TestOptionalAuth_PassesAnonymous(t *testing.T) {
	m := NewSessionAuthMiddleware(newTestStore())

	var gotUserID string
	handler := m.OptionalAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID = GetUserID(r)
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if gotUserID != "" {
		t.Errorf("expected empty user ID, got %q", gotUserID)
	}
}

func TestRateLimiter_EnforcesLimit(t *testing.T) {
	rl := NewRateLimiter(2, time.Minute)
	handler := rl.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/oauth/google/login", nil)
		r.RemoteAddr = "10.0.0.1:1234"
		handler.ServeHTTP(w, r)
		if w.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i+1, w.Code)
		}
	}

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/oauth/google/login", nil)
	r.RemoteAddr = "10.0.0.1:1234"
	handler.ServeHTTP(w, r)

	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", w.Code)
	}
	if w.Header().Get("Retry-After") == "" {
		t.Error("429 response missing Retry-After header")
	}

	// A different client is unaffected
	w = httptest.NewRecorder()
	r = httptest.NewRequest(http.MethodGet, "/oauth/google/login", nil)
	r.RemoteAddr = "10.0.0.2:1234"
	handler.ServeHTTP(w, r)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for second client, got %d", w.Code)
	}
}

func TestRateLimiter_SkipsPreflight(t *testing.T) {
	rl := NewRateLimiter(1, time.Minute)
	handler := rl.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodOptions, "/api/calendar/connect", nil)
		r.RemoteAddr = "10.0.0.1:1234"
		handler.ServeHTTP(w, r)
		if w.Code != http.StatusOK {
			t.Fatalf("preflight %d: expected 200, got %d", i+1, w.Code)
		}
	}
}

func TestClientIP_ForwardedFor(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = "10.0.0.9:1234"
	r.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")

	if ip := clientIP(r); ip != "203.0.113.7" {
		t.Errorf("clientIP = %q, want first forwarded entry", ip)
	}
}
