package routes

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"OneSlot/internal/api/handlers/oauth"
	"OneSlot/internal/api/middleware"
	oauthCore "OneSlot/internal/core/oauth"
)

// RegisterOAuthRoutes registers OAuth endpoints on the router with dedicated rate limiting
// OAuth endpoints have stricter rate limits to prevent:
// - Authorization flow spam filling the flow request table
// - Callback replay probing
func RegisterOAuthRoutes(r chi.Router, flows oauthCore.FlowService, allowedOrigins []string) {
	loginHandler := oauth.NewLoginHandler(flows)
	callbackHandler := oauth.NewCallbackHandler(flows)
	logoutHandler := oauth.NewLogoutHandler()

	// Flow initiation: 10 req/min per IP
	loginLimiter := middleware.NewRateLimiter(10, 1*time.Minute)

	// Logout endpoint: 10 req/min per IP
	logoutLimiter := middleware.NewRateLimiter(10, 1*time.Minute)

	// CORS is attached with Use so it runs before method routing; an OPTIONS
	// preflight for the callback is answered by the middleware instead of
	// falling through to a 405
	r.Route("/oauth", func(r chi.Router) {
		r.Use(corsMiddleware(allowedOrigins))

		r.With(loginLimiter.Middleware).Get("/google/login", loginHandler.HandleLogin)
		r.With(loginLimiter.Middleware).Get("/google/callback", callbackHandler.HandleCallback)
		r.With(logoutLimiter.Middleware).Post("/logout", logoutHandler.HandleLogout)
	})
}

// corsMiddleware creates a CORS middleware with specific allowed origins
func corsMiddleware(allowedOrigins []string) func(next http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{
			"Accept",
			"Authorization",
			"Content-Type",
			"X-CSRF-Token",
		},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300, // 5 minutes
	})
}
