package app

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	DatabaseFile         string        // Optional: path to SQLite database file (default: ./portfolio.db)
	StaticDir            string        // Optional: directory with the built frontend; empty disables static serving
	AppURL               string        // Optional: frontend origin allowed for credentialed CORS
	ExtraOrigins         []string      // Optional: additional allowed CORS origins
	SessionTTL           time.Duration // Optional: session lifetime (default: 7 days, 0 means default)
	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 3000)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Expired session sweep interval (default: 1h)
}

func LoadConfig() Config {
	cfg := Config{
		DatabaseFile:         getEnvOrDefault("DATABASE_FILE", "portfolio.db"),
		StaticDir:            os.Getenv("STATIC_DIR"), // Optional: only set in production deploys
		AppURL:               getEnvOrDefault("APP_URL", "http://localhost:5173"),
		SessionTTL:           getEnvDurationOrDefault("SESSION_TTL", 0),
		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 3000),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
	}

	if extra := os.Getenv("EXTRA_ORIGINS"); extra != "" {
		for _, origin := range strings.Split(extra, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				cfg.ExtraOrigins = append(cfg.ExtraOrigins, origin)
			}
		}
	}

	return cfg
}

// CORSOrigins returns every origin allowed to make credentialed requests.
func (c Config) CORSOrigins() []string {
	origins := []string{c.AppURL, "http://localhost:3000"}
	return append(origins, c.ExtraOrigins...)
}

// SecureCookies reports whether session cookies should carry the Secure flag.
func (c Config) SecureCookies() bool {
	return c.Env == "prod"
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Try parsing as integer minutes (for backwards compatibility)
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
