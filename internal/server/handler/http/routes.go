// Package http provides HTTP routing and middleware configuration
// for the activity log service.
package http

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/kamilprz/activitylog/internal/middleware"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

// NewRouter constructs and returns an HTTP handler that serves the activity
// log API. It applies JSON content-type enforcement and request logging
// globally, and bearer-token authentication on the protected group.
//
// Routes:
//
//	POST   /api/users/register        → authHandler.Register (public)
//	POST   /api/users/login           → authHandler.Login (public)
//	GET    /api/users                 → userHandler.List
//	GET    /api/users/{id}            → userHandler.Get
//	PATCH  /api/users/{id}            → userHandler.Update
//	DELETE /api/users/{id}            → userHandler.Delete
//	GET    /api/getDate/{id}/{date}   → userHandler.ActivitiesByDate
func NewRouter(
	authHandler *AuthHandler,
	userHandler *UserHandler,
	verifier middleware.TokenVerifier,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Only allow requests with Content-Type: application/json
	r.Use(chiMiddleware.AllowContentType("application/json"))

	// Log each request and its metadata
	r.Use(middleware.WithRequestLogging(logger))

	// Mount API routes
	r.Route("/api", func(r chi.Router) {
		// Public endpoints
		r.Post("/users/register", authHandler.Register)
		r.Post("/users/login", authHandler.Login)

		// Protected group: requires a valid bearer token
		r.Group(func(r chi.Router) {
			r.Use(middleware.WithAuth(verifier))

			r.Get("/users", userHandler.List)
			r.Get("/users/{id}", userHandler.Get)
			r.Patch("/users/{id}", userHandler.Update)
			r.Delete("/users/{id}", userHandler.Delete)
			r.Get("/getDate/{id}/{date}", userHandler.ActivitiesByDate)
		})
	})

	return r
}
