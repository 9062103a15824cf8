package web

import (
	"os"
	"strconv"
	"time"
)

// Config holds environment-driven settings of the form server.
type Config struct {
	Addr        string
	SessionTTL  time.Duration
	MaxSessions int // 0 means unlimited
	Verbose     bool
}

// LoadConfig reads the INV_* environment variables, falling back to defaults.
func LoadConfig() Config {
	return Config{
		Addr:        getenv("INV_ADDR", ":8080"),
		SessionTTL:  getDuration("INV_SESSION_TTL", 30*time.Minute),
		MaxSessions: getInt("INV_MAX_SESSIONS", 10000),
		Verbose:     getBool("INV_VERBOSE", false),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
