package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"session-todo/internal/api"
	apiMiddleware "session-todo/internal/api/middleware"
)

// setupRouter creates and configures the application router with all
// routes and middleware. It accepts the application dependencies to create
// handlers and register routes.
// Returns the configured router.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Permissive CORS so a browser frontend on another origin can reach
	// the API.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))

	// Add trace IDs for improved error handling
	r.Use(apiMiddleware.TraceMiddleware)

	// Create API handlers using the application's dependencies
	taskHandler := api.NewTaskHandler(app.taskStore, app.logger)

	// Register routes
	r.Get("/", taskHandler.Info)
	r.Route("/tasks", func(r chi.Router) {
		r.Get("/", taskHandler.ListTasks)
		r.Post("/", taskHandler.CreateTask)
		r.Delete("/{id}", taskHandler.DeleteTask)
	})

	// Health check endpoint
	r.Get("/health", taskHandler.Health)

	// Serve the bundled frontend
	r.Handle("/static/*", http.StripPrefix("/static/",
		http.FileServer(http.Dir(app.config.Server.StaticDir))))

	return r
}
