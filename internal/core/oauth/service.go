package oauth

import (
	"context"
	"log/slog"
	"time"

	"OneSlot/internal/auth/google"
	"OneSlot/internal/core/accounts"
	"OneSlot/internal/core/users"
)

// ProviderClient is the slice of the Google client adapter the flow service
// drives. Satisfied by *google.Client; tests substitute fakes.
type ProviderClient interface {
	AuthCodeURL(state, challenge string, scopes []string) string
	Exchange(ctx context.Context, code, verifier string) (*google.TokenResponse, error)
	FetchProfile(ctx context.Context, accessToken string) (*google.Profile, error)
}

// IDTokenVerifier checks provider-issued ID tokens before their claims are
// trusted for sign-in. Optional; nil skips verification.
type IDTokenVerifier interface {
	Verify(ctx context.Context, raw string) (*google.IDClaims, error)
}

// Service owns both authorization flows end to end: it mints PKCE pairs and
// state for the outbound redirect, and runs the callback state machine
// (decode state, exchange code, fetch profile, persist) when the provider
// redirects back.
type Service struct {
	flows      FlowStore
	accounts   accounts.AccountService
	users      users.UserService
	client     ProviderClient
	idVerifier IDTokenVerifier
}

// NewService creates the OAuth flow service
func NewService(flows FlowStore, accountSvc accounts.AccountService, userSvc users.UserService, client ProviderClient, idVerifier IDTokenVerifier) *Service {
	return &Service{
		flows:      flows,
		accounts:   accountSvc,
		users:      userSvc,
		client:     client,
		idVerifier: idVerifier,
	}
}

// StartLogin begins a sign-in attempt: fresh PKCE pair, fresh state, flow
// request saved server-side. Returns the provider authorization URL to
// redirect the browser to.
func (s *Service) StartLogin(ctx context.Context, returnURL string) (string, error) {
	return s.start(ctx, ModeLogin, "", returnURL, google.LoginScopes)
}

// StartConnect begins a calendar-connect attempt for an authenticated user.
// The user's ID is bound into the state parameter so the callback can resolve
// the account owner without a session cookie (the popup may not carry one).
func (s *Service) StartConnect(ctx context.Context, userID string) (string, error) {
	return s.start(ctx, ModeConnect, userID, "", google.ConnectScopes)
}

func (s *Service) start(ctx context.Context, mode Mode, userID, returnURL string, scopes []string) (string, error) {
	pair, err := google.GeneratePKCEPair()
	if err != nil {
		return "", err
	}

	stateCtx, err := google.NewStateContext(userID)
	if err != nil {
		return "", err
	}
	state := google.EncodeState(stateCtx)

	if err := s.flows.SaveRequest(&FlowRequest{
		State:        state,
		PKCEVerifier: pair.Verifier,
		Mode:         mode,
		UserID:       userID,
		ReturnURL:    returnURL,
		CreatedAt:    time.Now().UTC(),
	}); err != nil {
		return "", err
	}

	return s.client.AuthCodeURL(state, pair.Challenge, scopes), nil
}

// HandleCallback runs the callback state machine over a single request.
// Every path is terminal: no stage is retried, and the PKCE verifier is
// consumed (deleted) whatever the outcome. The result never carries provider
// error detail.
func (s *Service) HandleCallback(ctx context.Context, params CallbackParams) *CallbackResult {
	// Consent denied or popup dismissed. Normal termination, not a failure.
	if params.Error != "" {
		slog.Info("oauth callback cancelled", "reason", params.Error)
		return &CallbackResult{Outcome: OutcomeCancelled}
	}

	if params.Code == "" || params.State == "" {
		slog.Warn("oauth callback missing code or state")
		return &CallbackResult{Outcome: OutcomeMalformed}
	}

	stateCtx, err := google.DecodeState(params.State)
	if err != nil {
		slog.Warn("oauth callback state undecodable", "error", err)
		return &CallbackResult{Outcome: OutcomeMalformed}
	}

	// One-shot redemption: a replayed state finds no row
	req, err := s.flows.GetAndDeleteRequest(params.State)
	if err != nil {
		slog.Warn("oauth callback state unknown or already used", "error", err)
		return &CallbackResult{Outcome: OutcomeMalformed}
	}
	if time.Since(req.CreatedAt) > RequestTTL {
		slog.Warn("oauth callback flow request expired", "age", time.Since(req.CreatedAt))
		return &CallbackResult{Outcome: OutcomeMalformed, Mode: req.Mode}
	}

	result := &CallbackResult{Mode: req.Mode, ReturnURL: req.ReturnURL}

	tokens, err := s.client.Exchange(ctx, params.Code, req.PKCEVerifier)
	if err != nil {
		slog.Error("oauth token exchange failed", "error", err)
		result.Outcome = OutcomeExchangeFailed
		return result
	}

	profile, err := s.client.FetchProfile(ctx, tokens.AccessToken)
	if err != nil {
		slog.Error("oauth profile fetch failed", "error", err)
		result.Outcome = OutcomeProfileFailed
		return result
	}

	// When Google hands back an ID token, its signature and claims must hold
	// up before the email is trusted
	if s.idVerifier != nil && tokens.IDToken != "" {
		claims, err := s.idVerifier.Verify(ctx, tokens.IDToken)
		if err != nil || claims.Email != profile.Email {
			slog.Error("oauth id token rejected", "error", err)
			result.Outcome = OutcomeProfileFailed
			return result
		}
	}

	switch req.Mode {
	case ModeConnect:
		return s.finishConnect(ctx, result, stateCtx.UserID, tokens, profile)
	default:
		return s.finishLogin(ctx, result, profile)
	}
}

func (s *Service) finishConnect(ctx context.Context, result *CallbackResult, userID string, tokens *google.TokenResponse, profile *google.Profile) *CallbackResult {
	if userID == "" {
		slog.Warn("oauth connect callback without user context")
		result.Outcome = OutcomeMalformed
		return result
	}

	account := &accounts.CalendarAccount{
		UserID:       userID,
		Provider:     accounts.ProviderGoogle,
		Email:        profile.Email,
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	}
	if !tokens.ExpiresAt.IsZero() {
		expires := tokens.ExpiresAt
		account.ExpiresAt = &expires
	}

	if err := s.accounts.Connect(ctx, account); err != nil {
		// The code is already consumed; the obtained tokens are discarded
		// and the user restarts from the browser
		slog.Error("oauth account upsert failed", "error", err)
		result.Outcome = OutcomePersistFailed
		return result
	}

	result.Outcome = OutcomeSuccess
	result.Provider = accounts.ProviderGoogle
	result.Email = account.Email
	result.UserID = userID
	return result
}

func (s *Service) finishLogin(ctx context.Context, result *CallbackResult, profile *google.Profile) *CallbackResult {
	user, err := s.users.EnsureUser(ctx, profile.Email, profile.Name, profile.Picture)
	if err != nil {
		slog.Error("oauth user upsert failed", "error", err)
		result.Outcome = OutcomePersistFailed
		return result
	}

	result.Outcome = OutcomeSuccess
	result.Provider = accounts.ProviderGoogle
	result.Email = user.Email
	result.UserID = user.ID
	return result
}
