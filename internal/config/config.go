package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"
)

// Config holds the gateway's runtime configuration, sourced from the
// environment (optionally seeded from a .env file by the caller).
type Config struct {
	// Port the gateway listens on.
	Port string
	// UpstreamBaseURL is the origin of the remote store API,
	// e.g. http://localhost:5000.
	UpstreamBaseURL string
	// UpstreamTimeout bounds each call to the store API.
	UpstreamTimeout time.Duration
	// SessionDBPath is the sqlite file holding the persisted session record.
	SessionDBPath string
	// AllowedOrigin restricts CORS when set; empty allows all origins.
	AllowedOrigin string
}

// Load builds a Config from environment variables, applying defaults and
// validating the upstream URL.
func Load() (*Config, error) {
	cfg := &Config{
		Port:            getEnv("PORT", "8080"),
		UpstreamBaseURL: getEnv("UPSTREAM_BASE_URL", "http://localhost:5000"),
		UpstreamTimeout: getDurationEnv("UPSTREAM_TIMEOUT_SECONDS", 15),
		SessionDBPath:   getEnv("SESSION_DB_PATH", "./admin-session.db"),
		AllowedOrigin:   getEnv("ALLOWED_ORIGIN", ""),
	}

	u, err := url.Parse(cfg.UpstreamBaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid UPSTREAM_BASE_URL %q", cfg.UpstreamBaseURL)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDurationEnv(key string, fallbackSeconds int) time.Duration {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return time.Duration(n) * time.Second
		}
	}
	return time.Duration(fallbackSeconds) * time.Second
}
