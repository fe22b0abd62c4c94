package config

import (
	"github.com/caarlos0/env/v11"

	"coretas/internal/config/configs"
)

// Config aggregates all configuration sections for the service. Fields are
// populated from environment variables using the caarlos0/env library; the
// nested structs carry an envPrefix so their fields parse under it. Use
// Load to construct a Config.
type Config struct {
	// Env names the deployment environment (e.g. prod, dev).
	Env string `env:"ENV" envDefault:"prod"`

	// HTTP holds the API server settings (HTTP_ prefix).
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger (LOG_ prefix).
	Log configs.Logger `envPrefix:"LOG_"`

	// Backend selects the campaign store (BACKEND_ prefix).
	Backend configs.Backend `envPrefix:"BACKEND_"`

	// Psql configures the PostgreSQL connection (PSQL_ prefix).
	Psql configs.Postgres `envPrefix:"PSQL_"`

	// Platforms carries ad-network credentials and the mock-mode switch.
	Platforms configs.Platforms `envPrefix:"PLATFORM_"`
}

// Load reads configuration from environment variables into a Config. All
// fields fall back to their declared defaults when unset.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
