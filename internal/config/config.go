package config

import (
	"os"
	"strconv"

	"voyage/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Data     DataConfig
	Server   ServerConfig
	Database DatabaseConfig
}

// DataConfig holds the dataset resource settings
type DataConfig struct {
	// Locator is a local file path (.csv or .xlsx) or an HTTP(S) URL to a CSV.
	// It is passed explicitly to the loader by the composition root; nothing
	// else in the codebase reads it.
	Locator string
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	APIPort string
	GinMode string
}

// DatabaseConfig holds the optional snapshot archive settings
type DatabaseConfig struct {
	// URL enables the Postgres snapshot archive when non-empty. The dashboard
	// runs fully without it.
	URL string
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	locator := os.Getenv("TITANIC_DATA")
	if locator == "" {
		return nil, errors.ConfigInvalid("TITANIC_DATA is required (path or URL to the passenger dataset)")
	}

	cfg := &Config{
		Data: DataConfig{
			Locator: locator,
		},
		Server: ServerConfig{
			Port:    getEnvOrDefault("PORT", "8080"),
			APIPort: getEnvOrDefault("API_PORT", "8081"),
			GinMode: getEnvOrDefault("GIN_MODE", "release"),
		},
		Database: DatabaseConfig{
			URL: os.Getenv("DATABASE_URL"),
		},
	}

	if _, err := strconv.Atoi(cfg.Server.Port); err != nil {
		return nil, errors.ConfigInvalid("PORT must be numeric: " + cfg.Server.Port)
	}
	if _, err := strconv.Atoi(cfg.Server.APIPort); err != nil {
		return nil, errors.ConfigInvalid("API_PORT must be numeric: " + cfg.Server.APIPort)
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
