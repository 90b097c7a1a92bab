package oauth

const (
	// Session cookie configuration
	SessionMaxAge = 7 * 24 * 60 * 60 // 7 days in seconds

	// Minimum security requirements
	MinCookieSecretLength = 32 // bytes
)
