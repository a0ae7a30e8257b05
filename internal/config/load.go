package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Default configuration values applied when neither the environment nor a
// config file provides a setting.
const (
	defaultPort      = 8000
	defaultLogLevel  = "info"
	defaultStaticDir = "static"
)

// Load reads configuration from environment variables and an optional
// config.yaml in the working directory. Environment variables use the
// TODO_ prefix (e.g. TODO_SERVER_PORT) and take precedence over values
// from the config file.
// Returns a populated Config struct or an error if loading/validation
// fails.
func Load() (*Config, error) {
	v := viper.New()

	// Defaults also register the keys so AutomaticEnv can find them.
	v.SetDefault("server.port", defaultPort)
	v.SetDefault("server.log_level", defaultLogLevel)
	v.SetDefault("server.static_dir", defaultStaticDir)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("TODO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine; everything has a default.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}
