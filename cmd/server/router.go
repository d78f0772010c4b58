package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/eisenhq/eisen-api/internal/api"
	apiMiddleware "github.com/eisenhq/eisen-api/internal/api/middleware"
	"github.com/eisenhq/eisen-api/internal/api/shared"
)

// setupRouter creates and configures the application router with all
// routes and middleware, using the application's services to build the
// handlers. Returns the configured router.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	// The dashboard is served from a separate origin during development.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   app.config.Server.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
	}))

	taskHandler := api.NewTaskHandler(app.taskService, app.logger)

	// Register routes. The static /stats and /quadrant routes are
	// matched before the {id} parameter route.
	r.Route("/tasks", func(r chi.Router) {
		r.Get("/", taskHandler.ListTasks)
		r.Post("/", taskHandler.CreateTask)
		r.Get("/stats", taskHandler.GetStats)
		r.Get("/quadrant/{quadrant}", taskHandler.ListTasksByQuadrant)
		r.Get("/{id}", taskHandler.GetTask)
		r.Put("/{id}", taskHandler.UpdateTask)
		r.Patch("/{id}/complete", taskHandler.CompleteTask)
		r.Delete("/{id}", taskHandler.DeleteTask)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithJSON(w, r, http.StatusOK, api.HealthResponse{
			Status:  "ok",
			Message: "eisen dashboard API is running",
		})
	})

	return r
}
