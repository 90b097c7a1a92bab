package google

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
)

// The OAuth state parameter carries minimal application context through the
// identity provider's redirect: the initiating user's ID (empty for sign-in,
// where no user exists yet) and a random nonce so every attempt produces a
// distinct state value.

// StateContext is the application context bound into the state parameter
type StateContext struct {
	UserID string `json:"userId,omitempty"`
	Nonce  string `json:"nonce"`
}

// NewStateContext creates a state context with a fresh random nonce
func NewStateContext(userID string) (StateContext, error) {
	nonceBytes := make([]byte, 16)
	if _, err := rand.Read(nonceBytes); err != nil {
		return StateContext{}, fmt.Errorf("failed to generate state nonce: %w", err)
	}

	return StateContext{
		UserID: userID,
		Nonce:  base64.RawURLEncoding.EncodeToString(nonceBytes),
	}, nil
}

// EncodeState serializes the context to a transport-safe opaque string that
// round-trips unmodified through the identity provider
func EncodeState(ctx StateContext) string {
	// JSON object encoded as base64url, matching what the provider treats as
	// an opaque token
	payload, _ := json.Marshal(ctx)
	return base64.RawURLEncoding.EncodeToString(payload)
}

// DecodeState is the inverse of EncodeState. Returns ErrMalformedState when
// the token cannot be parsed; callers must reject the callback before any
// token exchange or account mutation.
func DecodeState(token string) (StateContext, error) {
	if token == "" {
		return StateContext{}, ErrMalformedState
	}

	payload, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		// Tolerate padded encodings from older clients
		payload, err = base64.URLEncoding.DecodeString(token)
		if err != nil {
			return StateContext{}, fmt.Errorf("%w: invalid base64", ErrMalformedState)
		}
	}

	var ctx StateContext
	if err := json.Unmarshal(payload, &ctx); err != nil {
		return StateContext{}, fmt.Errorf("%w: invalid JSON payload", ErrMalformedState)
	}

	return ctx, nil
}
