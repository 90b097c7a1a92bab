package accounts

import (
	"time"
)

// ProviderGoogle is the only calendar provider with a live integration;
// Outlook stays a stub on the connections page.
const ProviderGoogle = "google"

// CalendarAccount is a connected external calendar: the durable mapping from
// (user, provider, email) to the provider tokens obtained on connect.
// At most one record exists per triple; reconnecting overwrites the tokens.
type CalendarAccount struct {
	CreatedAt    time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time  `json:"updatedAt" db:"updated_at"`
	ExpiresAt    *time.Time `json:"-" db:"expires_at"`
	ID           string     `json:"id" db:"id"`
	UserID       string     `json:"-" db:"user_id"`
	Provider     string     `json:"provider" db:"provider"`
	Email        string     `json:"email" db:"email"`
	AccessToken  string     `json:"-" db:"access_token"`
	RefreshToken string     `json:"-" db:"refresh_token"`
}
