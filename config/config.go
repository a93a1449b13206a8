package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration loaded from environment variables
type Config struct {
	Port        string
	DatabaseURL string
	ChartLimit  int
	Currency    string
}

// Load reads configuration from a .env file, if present, and the
// environment. DATABASE_URL is optional: without it only the CSV loaders
// are available.
func Load() (*Config, error) {
	// A missing .env file is fine; the environment still applies.
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		Currency:    getEnv("CURRENCY", "€"),
		ChartLimit:  25,
	}

	if v := os.Getenv("CHART_LIMIT"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit < 1 {
			return nil, fmt.Errorf("CHART_LIMIT must be a positive integer, got %q", v)
		}
		cfg.ChartLimit = limit
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
