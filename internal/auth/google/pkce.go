package google

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
)

// PKCE (Proof Key for Code Exchange) - RFC 7636
// Prevents an intercepted authorization code from being exchanged by anyone
// who does not hold the original verifier.

// PKCEPair contains the code verifier and its derived challenge
type PKCEPair struct {
	Verifier  string // Random string (43-128 characters)
	Challenge string // Base64URL(SHA256(verifier))
	Method    string // Always "S256"
}

// GenerateVerifier draws 32 cryptographically secure random bytes and encodes
// them as base64url without padding (43 characters).
// Fails only when the secure random source is unavailable, which is fatal for
// the sign-in attempt.
func GenerateVerifier() (string, error) {
	verifierBytes := make([]byte, 32)
	if _, err := rand.Read(verifierBytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(verifierBytes), nil
}

// DeriveChallenge computes the S256 code challenge for a verifier:
// base64url(SHA-256(verifier)) without padding. Deterministic and pure.
func DeriveChallenge(verifier string) string {
	hash := sha256.Sum256([]byte(verifier))
	return base64.RawURLEncoding.EncodeToString(hash[:])
}

// GeneratePKCEPair generates a fresh verifier/challenge pair for one
// authorization attempt. The pair is held for the popup/redirect round trip
// and discarded after the exchange, success or failure.
func GeneratePKCEPair() (*PKCEPair, error) {
	verifier, err := GenerateVerifier()
	if err != nil {
		return nil, err
	}

	return &PKCEPair{
		Verifier:  verifier,
		Challenge: DeriveChallenge(verifier),
		Method:    "S256",
	}, nil
}
