// Package main implements the entry point for the session to-do API
// server, a small in-memory task list service. All task state lives in
// process memory and is cleared on restart.
package main

import (
	"context"
	"fmt"
	"log"
)

// main is the entry point for the session-todo server. It initializes
// configuration, sets up logging, constructs the application with its
// in-memory task store, and starts the HTTP server.
func main() {
	ctx := context.Background()

	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// initializeApp loads configuration and sets up application components.
// Returns the assembled application and any initialization error.
func initializeApp() (*application, error) {
	cfg, err := loadAppConfig()
	if err != nil {
		return nil, err
	}

	logger, err := setupAppLogger(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	return newApplication(cfg, logger), nil
}
