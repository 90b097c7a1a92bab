package google

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/oauth2"
	googleendpoint "golang.org/x/oauth2/google"
	calendar "google.golang.org/api/calendar/v3"
	oauth2api "google.golang.org/api/oauth2/v2"
)

// defaultUserInfoURL is Google's user-info endpoint, authenticated with a
// bearer access token
const defaultUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// LoginScopes is the minimum scope set for sign-in: identity, email, profile
var LoginScopes = []string{
	oauth2api.OpenIDScope,
	oauth2api.UserinfoEmailScope,
	oauth2api.UserinfoProfileScope,
}

// ConnectScopes extends the sign-in scopes with read-only calendar access,
// used when connecting a calendar account
var ConnectScopes = []string{
	oauth2api.OpenIDScope,
	oauth2api.UserinfoEmailScope,
	oauth2api.UserinfoProfileScope,
	calendar.CalendarReadonlyScope,
}

// Config holds Google OAuth client configuration
type Config struct {
	ClientID     string
	ClientSecret string
	RedirectURI  string // Must exactly match the URI registered with Google

	// Endpoint overrides for tests; production uses Google's endpoints
	AuthURL     string
	TokenURL    string
	UserInfoURL string

	// HTTPClient overrides the default client (10s timeout)
	HTTPClient *http.Client
}

// TokenResponse is the result of a successful authorization-code exchange
type TokenResponse struct {
	AccessToken  string
	RefreshToken string
	TokenType    string
	IDToken      string
	ExpiresAt    time.Time
}

// Profile is the subset of Google's user-info response we consume
type Profile struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}

// Client drives the authorization-code flow against Google: it builds the
// authorization URL and performs the server-side code-for-token exchange and
// profile fetch. The client secret never leaves this process.
type Client struct {
	conf        oauth2.Config
	userInfoURL string
	httpClient  *http.Client
}

// NewClient creates a Google OAuth client for a fixed client identifier and
// redirect URI
func NewClient(cfg Config) (*Client, error) {
	if cfg.ClientID == "" {
		return nil, fmt.Errorf("google oauth: client ID is required")
	}
	if cfg.ClientSecret == "" {
		return nil, fmt.Errorf("google oauth: client secret is required")
	}
	if cfg.RedirectURI == "" {
		return nil, fmt.Errorf("google oauth: redirect URI is required")
	}

	endpoint := googleendpoint.Endpoint
	if cfg.AuthURL != "" {
		endpoint.AuthURL = cfg.AuthURL
	}
	if cfg.TokenURL != "" {
		endpoint.TokenURL = cfg.TokenURL
	}

	userInfoURL := cfg.UserInfoURL
	if userInfoURL == "" {
		userInfoURL = defaultUserInfoURL
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}

	return &Client{
		conf: oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURI,
			Endpoint:     endpoint,
		},
		userInfoURL: userInfoURL,
		httpClient:  httpClient,
	}, nil
}

// AuthCodeURL builds the authorization URL for one sign-in attempt.
// access_type=offline and prompt=consent make Google issue a refresh token on
// every connect, not just the first one.
func (c *Client) AuthCodeURL(state, challenge string, scopes []string) string {
	conf := c.conf
	conf.Scopes = scopes

	opts := []oauth2.AuthCodeOption{
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("prompt", "consent"),
	}
	if challenge != "" {
		opts = append(opts,
			oauth2.SetAuthURLParam("code_challenge", challenge),
			oauth2.SetAuthURLParam("code_challenge_method", "S256"),
		)
	}

	return conf.AuthCodeURL(state, opts...)
}

// Exchange performs the single POST to Google's token endpoint with
// grant_type=authorization_code. The verifier, when present, proves we
// initiated the authorization request. Non-2xx responses are terminal:
// authorization codes are single-use and short-lived, so there is no retry.
func (c *Client) Exchange(ctx context.Context, code, verifier string) (*TokenResponse, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)

	var opts []oauth2.AuthCodeOption
	if verifier != "" {
		opts = append(opts, oauth2.SetAuthURLParam("code_verifier", verifier))
	}

	tok, err := c.conf.Exchange(ctx, code, opts...)
	if err != nil {
		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) {
			status := 0
			if retrieveErr.Response != nil {
				status = retrieveErr.Response.StatusCode
			}
			return nil, &TokenExchangeError{
				StatusCode: status,
				Detail:     retrieveErr.ErrorCode,
			}
		}
		return nil, fmt.Errorf("token exchange request failed: %w", err)
	}

	idToken, _ := tok.Extra("id_token").(string)

	return &TokenResponse{
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
		TokenType:    tok.TokenType,
		IDToken:      idToken,
		ExpiresAt:    tok.Expiry,
	}, nil
}

// FetchProfile retrieves the user's profile from the user-info endpoint.
// Single GET, bearer auth, no retry.
func (c *Client) FetchProfile(ctx context.Context, accessToken string) (*Profile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.userInfoURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build user-info request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("user-info request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &ProfileFetchError{StatusCode: resp.StatusCode}
	}

	var profile Profile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("failed to decode user-info response: %w", err)
	}
	if strings.TrimSpace(profile.Email) == "" {
		return nil, fmt.Errorf("user-info response missing email")
	}

	return &profile, nil
}

var (
	// Global singleton client handle. The provider client is a single mutable
	// resource: repeat initialization must return the existing handle instead
	// of configuring a duplicate.
	clientInstance *Client
	clientOnce     sync.Once
	clientErr      error
)

// InitClient initializes the shared client handle. Safe to call more than
// once: only the first call configures the client, later calls are no-ops
// that return the same handle.
func InitClient(cfg Config) (*Client, error) {
	clientOnce.Do(func() {
		clientInstance, clientErr = NewClient(cfg)
	})
	return clientInstance, clientErr
}

// GetClient returns the shared client handle, or ErrClientNotInitialized if
// InitClient has not run successfully. Callers surface this as a retryable
// warning, not a crash.
func GetClient() (*Client, error) {
	if clientInstance == nil {
		return nil, ErrClientNotInitialized
	}
	return clientInstance, nil
}

// ResetClientForTesting clears the singleton so tests can re-initialize.
// This should ONLY be used in tests.
func ResetClientForTesting() {
	clientInstance = nil
	clientOnce = sync.Once{}
	clientErr = nil
}
