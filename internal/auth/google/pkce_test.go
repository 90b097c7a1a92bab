package google

import (
	"regexp"
	"testing"
)

// base64url without padding
var verifierPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

func TestGenerateVerifier(t *testing.T) {
	verifier, err := GenerateVerifier()
	if err != nil {
		t.Fatalf("GenerateVerifier() error = %v", err)
	}

	// 32 raw bytes encode to exactly 43 base64url characters
	if len(verifier) != 43 {
		t.Errorf("verifier length = %d, want 43", len(verifier))
	}

	if !verifierPattern.MatchString(verifier) {
		t.Errorf("verifier %q contains characters outside the base64url alphabet", verifier)
	}
}

func TestGenerateVerifier_Unique(t *testing.T) {
	// 32 bytes of entropy makes collisions statistically impossible; any
	// repeat in a sample means the random source is broken
	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		verifier, err := GenerateVerifier()
		if err != nil {
			t.Fatalf("GenerateVerifier() error = %v", err)
		}
		if _, dup := seen[verifier]; dup {
			t.Fatalf("duplicate verifier generated: %s", verifier)
		}
		seen[verifier] = struct{}{}
	}
}

func TestDeriveChallenge(t *testing.T) {
	// Known vector from RFC 7636 appendix B
	verifier := "dBjftJeZ4CVP-mB92K27uhbUJU1p1r_wW1gFWFOEjXk"
	want := "E9Melhoa2OwvFrEMTJguCHaoeK1t8URWbuGJSstw-cM"

	if got := DeriveChallenge(verifier); got != want {
		t.Errorf("DeriveChallenge() = %q, want %q", got, want)
	}

	// Deterministic: repeat calls agree
	if DeriveChallenge(verifier) != DeriveChallenge(verifier) {
		t.Error("DeriveChallenge() is not deterministic")
	}
}

func TestGeneratePKCEPair(t *testing.T) {
	pair, err := GeneratePKCEPair()
	if err != nil {
		t.Fatalf("GeneratePKCEPair() error = %v", err)
	}

	if pair.Method != "S256" {
		t.Errorf("Method = %q, want S256", pair.Method)
	}

	if pair.Challenge != DeriveChallenge(pair.Verifier) {
		t.Error("challenge is not derived from verifier")
	}

	if pair.Challenge == pair.Verifier {
		t.Error("challenge must not equal verifier")
	}
}
