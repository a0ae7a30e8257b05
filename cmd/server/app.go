package main

import (
	"context"
	"fmt"
	"log/slog"

	"session-todo/internal/config"
	"session-todo/internal/platform/memory"
	"session-todo/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	// Configuration
	config *config.Config

	// Core services
	logger *slog.Logger

	// Stores (using interfaces for proper abstraction)
	taskStore store.TaskStore
}

// newApplication creates a new application instance with all dependencies
// initialized. The task store is constructed here and injected into the
// handlers, so there is no package-level mutable state.
func newApplication(cfg *config.Config, logger *slog.Logger) *application {
	app := &application{
		config:    cfg,
		logger:    logger,
		taskStore: memory.NewTaskStore(),
	}

	logger.Info("in-memory task store initialized",
		"note", "tasks are cleared on restart")

	return app
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	// Set up router using the application dependencies
	router := app.setupRouter()

	// Start the HTTP server
	err := app.startHTTPServer(ctx, router)
	if err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles shutdown of application resources. The task store holds
// no external resources, so there is nothing to release beyond logging.
func (app *application) cleanup() {
	app.logger.Info("Application shutdown completed")
}
