package google

import (
	"errors"
	"fmt"
)

// Sentinel errors for the OAuth client adapter
var (
	// ErrClientNotInitialized is returned when the adapter is used before
	// InitClient has been called successfully
	ErrClientNotInitialized = errors.New("google oauth client not initialized")

	// ErrMalformedState is returned when a state token cannot be decoded
	ErrMalformedState = errors.New("malformed state parameter")
)

// TokenExchangeError is returned when the token endpoint responds non-2xx
// (redirect URI mismatch, expired or reused code, bad client secret).
// Authorization codes are single-use, so this is terminal; no retry.
type TokenExchangeError struct {
	StatusCode int
	Detail     string
}

func (e *TokenExchangeError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("token exchange failed (%d): %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("token exchange failed (%d)", e.StatusCode)
}

// ProfileFetchError is returned when the user-info endpoint responds non-2xx
// despite a fresh access token
type ProfileFetchError struct {
	StatusCode int
}

func (e *ProfileFetchError) Error() string {
	return fmt.Sprintf("profile fetch failed (%d)", e.StatusCode)
}
