package users

import (
	"context"
	"fmt"
	"strings"
)

type userService struct {
	userRepo UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// EnsureUser creates or refreshes the application user for a verified
// identity-provider profile. Safe to call on every sign-in.
func (s *userService) EnsureUser(ctx context.Context, email, name, avatarURL string) (*User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, &InvalidEmailError{Email: email}
	}

	user := &User{
		Email:     email,
		Name:      strings.TrimSpace(name),
		AvatarURL: strings.TrimSpace(avatarURL),
	}

	return s.userRepo.UpsertByEmail(ctx, user)
}

// GetUser retrieves a user by ID
func (s *userService) GetUser(ctx context.Context, id string) (*User, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("user ID is required")
	}

	return s.userRepo.GetByID(ctx, id)
}
