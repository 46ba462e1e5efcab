package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds everything read from the environment at startup.
// It is built once in main and passed down explicitly, so the
// rest of the code never touches os.Getenv.
type Config struct {
	Port           string
	DatabaseURL    string
	AuthSecret     string
	SupadataAPIKey string
	GeminiAPIKey   string
	DailyLimit     int
	HTTPTimeout    time.Duration
}

// Load reads and validates configuration from the process environment.
// Missing required variables come back as a single error instead of a panic.
func Load() (*Config, error) {
	cfg := &Config{
		Port:           os.Getenv("PORT"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		AuthSecret:     os.Getenv("AUTH_SECRET"),
		SupadataAPIKey: os.Getenv("SUPADATA_API_KEY"),
		GeminiAPIKey:   os.Getenv("GEMINI_API_KEY"),
		DailyLimit:     3,
		HTTPTimeout:    30 * time.Second,
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	var missing []string
	if cfg.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}
	if cfg.AuthSecret == "" {
		missing = append(missing, "AUTH_SECRET")
	}
	if cfg.SupadataAPIKey == "" {
		missing = append(missing, "SUPADATA_API_KEY")
	}
	if cfg.GeminiAPIKey == "" {
		missing = append(missing, "GEMINI_API_KEY")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required env: %s", strings.Join(missing, ", "))
	}

	if raw := os.Getenv("DAILY_LIMIT"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("invalid DAILY_LIMIT %q", raw)
		}
		cfg.DailyLimit = n
	}

	if raw := os.Getenv("HTTP_TIMEOUT_SECONDS"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("invalid HTTP_TIMEOUT_SECONDS %q", raw)
		}
		cfg.HTTPTimeout = time.Duration(n) * time.Second
	}

	return cfg, nil
}
