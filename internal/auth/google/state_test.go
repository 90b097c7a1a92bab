package google

import (
	"encoding/base64"
	"errors"
	"testing"
)

func TestStateRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		userID string
	}{
		{name: "with user id", userID: "abc123"},
		{name: "without user id", userID: ""},
		{name: "uuid user id", userID: "2b1c7a90-41f3-4a8e-9a6e-0e6f8a2d9c11"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, err := NewStateContext(tt.userID)
			if err != nil {
				t.Fatalf("NewStateContext() error = %v", err)
			}

			decoded, err := DecodeState(EncodeState(ctx))
			if err != nil {
				t.Fatalf("DecodeState() error = %v", err)
			}

			if decoded != ctx {
				t.Errorf("round trip = %+v, want %+v", decoded, ctx)
			}
		})
	}
}

func TestNewStateContext_UniqueNonce(t *testing.T) {
	a, err := NewStateContext("user")
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewStateContext("user")
	if err != nil {
		t.Fatal(err)
	}

	if a.Nonce == b.Nonce {
		t.Error("two state contexts share a nonce")
	}
}

func TestDecodeState_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "not base64", token: "%%%not-base64%%%"},
		{name: "base64 but not JSON", token: base64.RawURLEncoding.EncodeToString([]byte("not json"))},
		{name: "truncated JSON", token: base64.RawURLEncoding.EncodeToString([]byte(`{"userId":`))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeState(tt.token)
			if !errors.Is(err, ErrMalformedState) {
				t.Errorf("DecodeState(%q) error = %v, want ErrMalformedState", tt.token, err)
			}
		})
	}
}

func TestDecodeState_ToleratesPadding(t *testing.T) {
	payload := []byte(`{"userId":"abc123","nonce":"n"}`)
	token := base64.URLEncoding.EncodeToString(payload)

	decoded, err := DecodeState(token)
	if err != nil {
		t.Fatalf("DecodeState() error = %v", err)
	}
	if decoded.UserID != "abc123" {
		t.Errorf("UserID = %q, want abc123", decoded.UserID)
	}
}
