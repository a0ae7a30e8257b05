package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"session-todo/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, "static", cfg.Server.StaticDir)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("TODO_SERVER_PORT", "9090")
	t.Setenv("TODO_SERVER_LOG_LEVEL", "debug")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{
			name:  "invalid_log_level",
			key:   "TODO_SERVER_LOG_LEVEL",
			value: "verbose",
		},
		{
			name:  "port_out_of_range",
			key:   "TODO_SERVER_PORT",
			value: "70000",
		},
		{
			name:  "zero_port",
			key:   "TODO_SERVER_PORT",
			value: "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := config.Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid configuration")
		})
	}
}
