// Package config loads server settings from the environment, with an
// optional .env file for local development.
package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

func init() {
	// Load .env file if it exists (silent fail if not).
	_ = godotenv.Load()
}

// Config holds all application configuration loaded from environment variables.
type Config struct {
	Addr      string `envconfig:"MAGACIN_ADDR" default:":8080"`
	DBPath    string `envconfig:"MAGACIN_DB" default:"magacin.sqlite3"`
	SeedPath  string `envconfig:"MAGACIN_SEED" default:""`
	LogPath   string `envconfig:"MAGACIN_LOG" default:""`
	JWTSecret string `envconfig:"MAGACIN_JWT_SECRET" default:""`
	AdminName string `envconfig:"MAGACIN_ADMIN_NAME" default:"Admin"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return &cfg, nil
}
