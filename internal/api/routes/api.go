package routes

import (
	"time"

	"github.com/go-chi/chi/v5"

	"OneSlot/internal/api/handlers/calendar"
	"OneSlot/internal/api/handlers/dashboard"
	meetingHandlers "OneSlot/internal/api/handlers/meetings"
	"OneSlot/internal/api/handlers/oauth"
	"OneSlot/internal/api/handlers/user"
	"OneSlot/internal/api/middleware"
	"OneSlot/internal/core/accounts"
	"OneSlot/internal/core/meetings"
	oauthCore "OneSlot/internal/core/oauth"
	"OneSlot/internal/core/users"
)

// APIDeps carries the services the JSON API routes are built from
type APIDeps struct {
	Auth        *middleware.SessionAuthMiddleware
	Flows       oauthCore.FlowService
	Accounts    accounts.AccountService
	Users       users.UserService
	Meetings    *meetings.Service
	CORSOrigins []string
}

// RegisterAPIRoutes registers the authenticated JSON API under /api
func RegisterAPIRoutes(r chi.Router, deps APIDeps) {
	meHandler := user.NewMeHandler(deps.Users)
	connectHandler := oauth.NewConnectHandler(deps.Flows)
	listHandler := calendar.NewListHandler(deps.Accounts)
	disconnectHandler := calendar.NewDisconnectHandler(deps.Accounts)
	meetingHandler := meetingHandlers.NewHandler(deps.Meetings)
	statsHandler := dashboard.NewStatsHandler(deps.Accounts, deps.Meetings)

	// Connect initiation shares the OAuth budget, not the general API budget
	connectLimiter := middleware.NewRateLimiter(10, 1*time.Minute)

	r.Route("/api", func(api chi.Router) {
		api.Use(corsMiddleware(deps.CORSOrigins))
		api.Use(deps.Auth.RequireAuth)

		api.Get("/auth/me", meHandler.HandleMe)

		api.With(connectLimiter.Middleware).Post("/calendar/connect", connectHandler.HandleConnect)
		api.Get("/calendar/accounts", listHandler.HandleList)
		api.Delete("/calendar/accounts/{accountID}", disconnectHandler.HandleDisconnect)

		api.Get("/meeting-types", meetingHandler.HandleList)
		api.Post("/meeting-types", meetingHandler.HandleCreate)
		api.Put("/meeting-types/{typeID}", meetingHandler.HandleUpdate)
		api.Delete("/meeting-types/{typeID}", meetingHandler.HandleDelete)

		api.Get("/dashboard/stats", statsHandler.HandleStats)
	})
}
