package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	oauthCore "OneSlot/internal/core/oauth"
)

type stubFlowService struct {
	authURL string
	result  *oauthCore.CallbackResult
}

func (s *stubFlowService) StartLogin(ctx context.Context, returnURL string) (string, error) {
	return s.authURL, nil
}

func (s *stubFlowService) StartConnect(ctx context.Context, userID string) (string, error) {
	return s.authURL, nil
}

func (s *stubFlowService) HandleCallback(ctx context.Context, params oauthCore.CallbackParams) *oauthCore.CallbackResult {
	return s.result
}

func newOAuthTestRouter(origins []string) chi.Router {
	r := chi.NewRouter()
	RegisterOAuthRoutes(r, &stubFlowService{
		authURL: "https://accounts.google.com/o/oauth2/auth",
		result:  &oauthCore.CallbackResult{Outcome: oauthCore.OutcomeCancelled},
	}, origins)
	return r
}

func TestCallbackPreflight(t *testing.T) {
	router := newOAuthTestRouter([]string{"http://localhost:5173"})

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodOptions, "/oauth/google/callback", nil)
	r.Header.Set("Origin", "http://localhost:5173")
	r.Header.Set("Access-Control-Request-Method", "GET")
	router.ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("preflight status = %d, want 200", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Errorf("Access-Control-Allow-Origin = %q, want the requesting origin", got)
	}
}

func TestCallbackCarriesCORSHeaders(t *testing.T) {
	router := newOAuthTestRouter([]string{"http://localhost:5173"})

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/oauth/google/callback?error=access_denied", nil)
	r.Header.Set("Origin", "http://localhost:5173")
	router.ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("callback status = %d, want 200", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Errorf("Access-Control-Allow-Origin = %q, want the requesting origin", got)
	}
}
