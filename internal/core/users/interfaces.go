package users

import "context"

// UserRepository defines the interface for user data persistence
type UserRepository interface {
	// UpsertByEmail creates the user on first sign-in or refreshes name and
	// avatar on later sign-ins. Email is the conflict target.
	UpsertByEmail(ctx context.Context, user *User) (*User, error)

	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
}

// UserService defines the interface for user business logic
type UserService interface {
	// EnsureUser resolves a verified identity-provider profile to an
	// application user, creating one if needed. Idempotent per email.
	EnsureUser(ctx context.Context, email, name, avatarURL string) (*User, error)

	GetUser(ctx context.Context, id string) (*User, error)
}
