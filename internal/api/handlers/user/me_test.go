package user

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"OneSlot/internal/api/middleware"
	"OneSlot/internal/core/users"
)

type fakeUserService struct {
	users map[string]*users.User
}

func (f *fakeUserService) EnsureUser(ctx context.Context, email, name, avatarURL string) (*users.User, error) {
	panic("not used")
}

func (f *fakeUserService) GetUser(ctx context.Context, id string) (*users.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, users.ErrUserNotFound
	}
	return u, nil
}

func TestHandleMe(t *testing.T) {
	svc := &fakeUserService{users: map[string]*users.User{
		"user-42": {ID: "user-42", Email: "user@example.com", Name: "Test User"},
	}}
	handler := NewMeHandler(svc)

	r := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	r = r.WithContext(middleware.SetTestUserID(r.Context(), "user-42"))
	w := httptest.NewRecorder()
	handler.HandleMe(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp struct {
		User struct {
			ID    string `json:"id"`
			Email string `json:"email"`
		} `json:"user"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.User.Email != "user@example.com" {
		t.Errorf("email = %q", resp.User.Email)
	}
}

func TestHandleMe_RequiresAuth(t *testing.T) {
	handler := NewMeHandler(&fakeUserService{})

	w := httptest.NewRecorder()
	handler.HandleMe(w, httptest.NewRequest(http.MethodGet, "/api/auth/me", nil))

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestHandleMe_DeletedUser(t *testing.T) {
	handler := NewMeHandler(&fakeUserService{users: map[string]*users.User{}})

	r := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	r = r.WithContext(middleware.SetTestUserID(r.Context(), "gone"))
	w := httptest.NewRecorder()
	handler.HandleMe(w, r)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for deleted user, got %d", w.Code)
	}
}
