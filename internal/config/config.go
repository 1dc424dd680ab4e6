package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds everything the web process reads from the environment.
// Business state lives behind the backend API; the only secrets here are
// the cookie signing key and the backend location.
type Config struct {
	Addr         string
	APIBaseURL   string
	APITimeout   time.Duration
	CookieSecret []byte
	CookieSecure bool

	// SeedDemoCart enables the opt-in demo line items on first empty
	// cart read. Off by default.
	SeedDemoCart bool
}

// Load reads the process environment. API_BASE_URL is required; everything
// else has a dev-friendly default.
func Load() (Config, error) {
	cfg := Config{
		Addr:         getenv("APP_ADDR", ":8080"),
		APIBaseURL:   os.Getenv("API_BASE_URL"),
		APITimeout:   30 * time.Second,
		CookieSecret: []byte(getenv("COOKIE_SECRET", "dev-insecure-secret")),
		CookieSecure: boolenv("COOKIE_SECURE"),
		SeedDemoCart: boolenv("CART_SEED_DEMO"),
	}

	if cfg.APIBaseURL == "" {
		return Config{}, fmt.Errorf("API_BASE_URL environment variable is required")
	}

	if v := os.Getenv("API_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid API_TIMEOUT %q: %w", v, err)
		}
		cfg.APITimeout = d
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func boolenv(key string) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	return err == nil && v
}
