package users

import (
	"time"
)

// User is an application account created on first Google sign-in.
// Authentication itself lives with the identity provider; this row is the
// session principal and the owner of calendar account records.
type User struct {
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
	ID        string    `json:"id" db:"id"`
	Email     string    `json:"email" db:"email"`
	Name      string    `json:"name,omitempty" db:"name"`
	AvatarURL string    `json:"avatarUrl,omitempty" db:"avatar_url"`
}
