package dashboard

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"OneSlot/internal/api/middleware"
	"OneSlot/internal/core/accounts"
	"OneSlot/internal/core/meetings"
)

type fakeAccountService struct {
	accounts []*accounts.CalendarAccount
}

func (f *fakeAccountService) Connect(ctx context.Context, account *accounts.CalendarAccount) error {
	return nil
}

func (f *fakeAccountService) ListForUser(ctx context.Context, userID string) ([]*accounts.CalendarAccount, error) {
	return f.accounts, nil
}

func (f *fakeAccountService) Disconnect(ctx context.Context, userID, accountID string) error {
	return nil
}

func TestHandleStats(t *testing.T) {
	accountSvc := &fakeAccountService{accounts: []*accounts.CalendarAccount{
		{ID: "acc-1", UserID: "user-42", Provider: "google", Email: "a@example.com"},
		{ID: "acc-2", UserID: "user-42", Provider: "google", Email: "b@example.com"},
	}}
	handler := NewStatsHandler(accountSvc, meetings.NewService())

	r := httptest.NewRequest(http.MethodGet, "/api/dashboard/stats", nil)
	r = r.WithContext(middleware.SetTestUserID(r.Context(), "user-42"))
	w := httptest.NewRecorder()
	handler.HandleStats(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp struct {
		Stats []struct {
			Label string `json:"label"`
			Value string `json:"value"`
		} `json:"stats"`
		ConnectedCalendars int `json:"connectedCalendars"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}

	if resp.ConnectedCalendars != 2 {
		t.Errorf("connectedCalendars = %d, want 2", resp.ConnectedCalendars)
	}
	if len(resp.Stats) != 4 {
		t.Fatalf("expected 4 stat cards, got %d", len(resp.Stats))
	}

	// Meeting types card reflects the seeded defaults
	var found bool
	for _, s := range resp.Stats {
		if s.Label == "Meeting Types" {
			found = true
			if s.Value != "3" {
				t.Errorf("Meeting Types value = %q, want 3", s.Value)
			}
		}
	}
	if !found {
		t.Error("Meeting Types card missing")
	}
}

func TestHandleStats_RequiresAuth(t *testing.T) {
	handler := NewStatsHandler(&fakeAccountService{}, meetings.NewService())

	w := httptest.NewRecorder()
	handler.HandleStats(w, httptest.NewRequest(http.MethodGet, "/api/dashboard/stats", nil))

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}
