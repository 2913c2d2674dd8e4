package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/pkarell/tasknest-api/internal/api"
	apiMiddleware "github.com/pkarell/tasknest-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	authHandler := api.NewAuthHandler(app.authService)
	taskHandler := api.NewTaskHandler(app.taskService)
	categoryHandler := api.NewCategoryHandler(app.categoryService)
	tagHandler := api.NewTagHandler(app.tagService)

	authMiddleware := apiMiddleware.NewAuthMiddleware(app.tokenService, app.userStore, app.logger)

	r.Route("/api", func(r chi.Router) {
		// Identity extraction runs everywhere; it passes unauthenticated
		// requests through and lets RequireAuth reject them per route group.
		r.Use(authMiddleware.Authenticate)

		// Authentication endpoints (public)
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.RequireAuth)

			r.Route("/tasks", func(r chi.Router) {
				r.Get("/", taskHandler.List)
				r.Post("/", taskHandler.Create)
				r.Get("/search", taskHandler.Search)
				r.Get("/incomplete", taskHandler.ListIncomplete)
				r.Get("/{id}", taskHandler.Get)
				r.Put("/{id}", taskHandler.Update)
				r.Delete("/{id}", taskHandler.Delete)
				r.Put("/{id}/toggle", taskHandler.Toggle)
			})

			r.Route("/categories", func(r chi.Router) {
				r.Get("/", categoryHandler.List)
				r.Post("/", categoryHandler.Create)
				r.Get("/{id}", categoryHandler.Get)
				r.Put("/{id}", categoryHandler.Update)
				r.Delete("/{id}", categoryHandler.Delete)
			})

			r.Route("/tags", func(r chi.Router) {
				r.Get("/", tagHandler.List)
				r.Post("/", tagHandler.Create)
				r.Get("/{id}", tagHandler.Get)
				r.Put("/{id}", tagHandler.Update)
				r.Delete("/{id}", tagHandler.Delete)
			})
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}
