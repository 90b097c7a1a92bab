package google

import (
	"context"
	"fmt"
	"time"

	"github.com/lestrrat-go/jwx/v2/jwk"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

const (
	// googleJWKSURL publishes the keys Google signs ID tokens with
	googleJWKSURL = "https://www.googleapis.com/oauth2/v3/certs"

	// Google issues ID tokens under both issuer forms
	googleIssuer       = "https://accounts.google.com"
	googleIssuerLegacy = "accounts.google.com"
)

// IDClaims are the claims we consume from a verified Google ID token
type IDClaims struct {
	Subject string
	Email   string
	Name    string
	Picture string
}

// IDTokenVerifier checks the signature and claims of Google-issued ID tokens
// before the email claim is trusted for sign-in. Keys are fetched from
// Google's JWKS endpoint and cached between requests.
type IDTokenVerifier struct {
	cache    *jwk.Cache
	jwksURL  string
	audience string
}

// NewIDTokenVerifier creates a verifier bound to our OAuth client ID.
// jwksURL may be overridden for tests; empty selects Google's endpoint.
func NewIDTokenVerifier(ctx context.Context, clientID, jwksURL string) (*IDTokenVerifier, error) {
	if clientID == "" {
		return nil, fmt.Errorf("id token verifier: client ID is required")
	}
	if jwksURL == "" {
		jwksURL = googleJWKSURL
	}

	cache := jwk.NewCache(ctx)
	if err := cache.Register(jwksURL, jwk.WithMinRefreshInterval(15*time.Minute)); err != nil {
		return nil, fmt.Errorf("failed to register JWKS endpoint: %w", err)
	}

	return &IDTokenVerifier{
		cache:    cache,
		jwksURL:  jwksURL,
		audience: clientID,
	}, nil
}

// Verify parses and validates a raw ID token: signature against Google's
// JWKS, issuer, audience, and expiry. Returns the identity claims on success.
func (v *IDTokenVerifier) Verify(ctx context.Context, raw string) (*IDClaims, error) {
	keySet, err := v.cache.Get(ctx, v.jwksURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch Google JWKS: %w", err)
	}

	tok, err := jwt.Parse([]byte(raw),
		jwt.WithKeySet(keySet),
		jwt.WithAudience(v.audience),
		jwt.WithValidate(true),
	)
	if err != nil {
		return nil, fmt.Errorf("id token verification failed: %w", err)
	}

	if iss := tok.Issuer(); iss != googleIssuer && iss != googleIssuerLegacy {
		return nil, fmt.Errorf("id token has unexpected issuer %q", iss)
	}

	claims := &IDClaims{Subject: tok.Subject()}
	if email, ok := tok.Get("email"); ok {
		claims.Email, _ = email.(string)
	}
	if name, ok := tok.Get("name"); ok {
		claims.Name, _ = name.(string)
	}
	if picture, ok := tok.Get("picture"); ok {
		claims.Picture, _ = picture.(string)
	}

	if claims.Email == "" {
		return nil, fmt.Errorf("id token missing email claim")
	}

	return claims, nil
}
