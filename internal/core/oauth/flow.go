package oauth

import (
	"context"
	"time"
)

// Mode distinguishes the two authorization flows sharing the callback
// endpoint: full-page sign-in and popup-based calendar connect
type Mode string

const (
	ModeLogin   Mode = "login"
	ModeConnect Mode = "connect"
)

// RequestTTL bounds how long an authorization round trip may take before the
// stored flow request is considered stale
const RequestTTL = 10 * time.Minute

// FlowRequest is the transient server-side state for one authorization
// attempt: the PKCE verifier stays here for the redirect round trip and is
// deleted when the callback consumes it. It is never sent to the browser.
type FlowRequest struct {
	CreatedAt    time.Time `db:"created_at"`
	State        string    `db:"state"`
	PKCEVerifier string    `db:"pkce_verifier"`
	Mode         Mode      `db:"mode"`
	UserID       string    `db:"user_id"`
	ReturnURL    string    `db:"return_url"`
}

// FlowStore defines the interface for transient flow request storage
type FlowStore interface {
	SaveRequest(req *FlowRequest) error

	// GetAndDeleteRequest atomically retrieves and deletes a flow request so
	// a state value can only ever be redeemed once
	GetAndDeleteRequest(state string) (*FlowRequest, error)
}

// Outcome is the terminal state of one callback instance
type Outcome string

const (
	OutcomeSuccess        Outcome = "success"
	OutcomeCancelled      Outcome = "cancelled"
	OutcomeMalformed      Outcome = "malformed"
	OutcomeExchangeFailed Outcome = "exchange_failed"
	OutcomeProfileFailed  Outcome = "profile_failed"
	OutcomePersistFailed  Outcome = "persist_failed"
)

// CallbackParams are the query parameters delivered by the provider redirect.
// Exactly one of Code or Error is meaningful; State is required with Code.
type CallbackParams struct {
	Code  string
	State string
	Error string
}

// FlowService is the business-logic surface consumed by the HTTP layer
type FlowService interface {
	// StartLogin begins a sign-in attempt and returns the authorization URL
	StartLogin(ctx context.Context, returnURL string) (string, error)

	// StartConnect begins a calendar-connect attempt for an authenticated user
	StartConnect(ctx context.Context, userID string) (string, error)

	// HandleCallback runs the callback state machine; the result is always
	// non-nil and terminal
	HandleCallback(ctx context.Context, params CallbackParams) *CallbackResult
}

// CallbackResult is what the HTTP layer renders: an outcome plus enough
// context to set a session (login mode) or report the connected provider
// (connect mode). Failure results carry no provider detail.
type CallbackResult struct {
	Outcome   Outcome
	Mode      Mode
	Provider  string
	Email     string
	UserID    string
	ReturnURL string
}
