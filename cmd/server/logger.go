package main

import (
	"fmt"
	"log/slog"

	"session-todo/internal/config"
	"session-todo/internal/platform/logger"
)

// setupAppLogger configures and initializes the application logger based
// on config settings.
// Returns the configured logger or an error if setup fails.
func setupAppLogger(cfg *config.Config) (*slog.Logger, error) {
	l, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	return l, nil
}
