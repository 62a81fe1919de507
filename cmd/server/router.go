package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/claydesk/flowtest-api/internal/api"
	apiMiddleware "github.com/claydesk/flowtest-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all
// routes and middleware. Returns the configured router.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware) // Add trace IDs for improved error handling

	// The original deployment fronts browser clients directly, so CORS is
	// wide open. Tighten the origins list before exposing this anywhere
	// that matters.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
	}))

	// Create API handlers using the application's services
	taskHandler := api.NewTaskHandler(app.taskStore)
	userHandler := api.NewUserHandler(app.userStore)
	authHandler := api.NewAuthHandler(app.userStore, app.tokenService)
	metaHandler := api.NewMetaHandler(app.config, app.taskStore, app.userStore)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.tokenService)

	// Informational endpoints (public)
	r.Get("/", metaHandler.Root)
	r.Get("/health", metaHandler.Health)

	// Register routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/status", metaHandler.Status)
		r.Get("/analytics", metaHandler.Analytics)
		r.Get("/environment", metaHandler.Environment)

		// User registration and listing are intentionally ungated, as is
		// login; these are the entry points that bootstrap a principal.
		r.Post("/users", userHandler.Create)
		r.Get("/users", userHandler.List)
		r.Post("/auth/login", authHandler.Login)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Get("/auth/me", authHandler.Me)

			r.Post("/tasks", taskHandler.Create)
			r.Get("/tasks", taskHandler.List)
			r.Get("/tasks/{id}", taskHandler.Get)
			r.Put("/tasks/{id}", taskHandler.Update)
			r.Delete("/tasks/{id}", taskHandler.Delete)
			r.Patch("/tasks/{id}/complete", taskHandler.Complete)
		})
	})

	metaHandler.SetEndpointCount(countRoutes(r))

	return r
}

// countRoutes walks the route tree and returns the number of registered
// method/path pairs, reported by the status endpoint.
func countRoutes(r chi.Routes) int {
	count := 0
	_ = chi.Walk(r, func(method, route string, handler http.Handler, middlewares ...func(http.Handler) http.Handler) error {
		count++
		return nil
	})
	return count
}
