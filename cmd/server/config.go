package main

import (
	"fmt"
	"log/slog"

	"session-todo/internal/config"
)

// loadAppConfig loads the application configuration from environment
// variables or the optional config file.
// Returns the loaded config and any loading error.
func loadAppConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	// Log basic configuration details after successful loading
	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"static_dir", cfg.Server.StaticDir)

	return cfg, nil
}
