// ABOUTME: Environment configuration for the back-office client
// ABOUTME: Loaded once at startup via go-envconfig, with an optional .env file

package config

import (
	"context"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

// Config holds client settings resolved from the environment.
type Config struct {
	// APIBase is the backend base URL every endpoint path is relative to.
	APIBase   string `env:"STL_ADMIN_API_BASE, default=http://localhost:8000/api/v1"`
	LogLevel  string `env:"STL_ADMIN_LOG_LEVEL, default=info"`
	LogPretty bool   `env:"STL_ADMIN_LOG_PRETTY, default=true"`
}

// Load reads configuration from the environment. A .env file in the
// working directory is merged in first when present.
func Load(ctx context.Context) (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
