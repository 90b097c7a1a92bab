package users

import (
	"context"
	"errors"
	"testing"
)

type fakeUserRepo struct {
	byEmail map[string]*User
	byID    map[string]*User
	nextID  int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byEmail: make(map[string]*User),
		byID:    make(map[string]*User),
	}
}

func (r *fakeUserRepo) UpsertByEmail(ctx context.Context, user *User) (*User, error) {
	if existing, ok := r.byEmail[user.Email]; ok {
		existing.Name = user.Name
		existing.AvatarURL = user.AvatarURL
		return existing, nil
	}
	r.nextID++
	user.ID = string(rune('a' + r.nextID))
	r.byEmail[user.Email] = user
	r.byID[user.ID] = user
	return user, nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*User, error) {
	if u, ok := r.byID[id]; ok {
		return u, nil
	}
	return nil, ErrUserNotFound
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*User, error) {
	if u, ok := r.byEmail[email]; ok {
		return u, nil
	}
	return nil, ErrUserNotFound
}

func TestEnsureUser_NormalizesEmail(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)

	user, err := svc.EnsureUser(context.Background(), "  User@Example.COM ", "Test User", "")
	if err != nil {
		t.Fatalf("EnsureUser() error = %v", err)
	}
	if user.Email != "user@example.com" {
		t.Errorf("Email = %q, want user@example.com", user.Email)
	}
}

func TestEnsureUser_Idempotent(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)

	first, err := svc.EnsureUser(context.Background(), "user@example.com", "First", "")
	if err != nil {
		t.Fatal(err)
	}

	second, err := svc.EnsureUser(context.Background(), "user@example.com", "Renamed", "https://lh3.example/p.png")
	if err != nil {
		t.Fatal(err)
	}

	if first.ID != second.ID {
		t.Errorf("repeat sign-in created a new user: %q vs %q", first.ID, second.ID)
	}
	if second.Name != "Renamed" {
		t.Errorf("Name = %q, want Renamed", second.Name)
	}
	if len(repo.byEmail) != 1 {
		t.Errorf("stored users = %d, want 1", len(repo.byEmail))
	}
}

func TestEnsureUser_InvalidEmail(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())

	for _, email := range []string{"", "   ", "no-at-sign"} {
		var invalidErr *InvalidEmailError
		if _, err := svc.EnsureUser(context.Background(), email, "", ""); !errors.As(err, &invalidErr) {
			t.Errorf("EnsureUser(%q) error = %v, want *InvalidEmailError", email, err)
		}
	}
}

func TestGetUser_RequiresID(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())

	if _, err := svc.GetUser(context.Background(), " "); err == nil {
		t.Error("GetUser() with blank ID expected error")
	}
}
