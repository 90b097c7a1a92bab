package oauth

import (
	"encoding/base64"
	"fmt"
	"os"
	"strings"
)

// GetEnvBase64OrPlain retrieves an environment variable that may be base64 encoded.
// If the value starts with "base64:", it will be decoded.
// Otherwise, it returns the plain value.
//
// This allows storing sensitive values like client secrets and cookie keys in
// base64 format to avoid shell escaping issues and newline handling problems.
//
// Example usage in .env:
//
//	SESSION_COOKIE_SECRET=plain-secret-value
//	SESSION_COOKIE_SECRET=base64:cGxhaW4tc2VjcmV0... (base64 encoded)
func GetEnvBase64OrPlain(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", nil
	}

	// Check if value is base64 encoded
	if strings.HasPrefix(value, "base64:") {
		encoded := strings.TrimPrefix(value, "base64:")
		decoded, err := base64.StdEncoding.DecodeString(encoded)
		if err != nil {
			return "", fmt.Errorf("invalid base64 encoding for %s: %w", key, err)
		}
		return string(decoded), nil
	}

	// Return plain value
	return value, nil
}

// isDevelopment checks if we're running in development mode
func isDevelopment() bool {
	// Explicitly check for localhost/127.0.0.1 on any port
	publicURL := os.Getenv("APP_PUBLIC_URL")
	return publicURL == "" ||
		strings.HasPrefix(publicURL, "http://localhost:") ||
		strings.HasPrefix(publicURL, "http://localhost/") ||
		strings.HasPrefix(publicURL, "http://127.0.0.1:") ||
		strings.HasPrefix(publicURL, "http://127.0.0.1/")
}
