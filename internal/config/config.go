package config

import (
	"os"
	"strconv"
	"time"
)

type AppConfig struct {
	// Server
	HTTPAddr string

	// Cache
	RedisAddr string
	RedisPass string
	CacheTTL  time.Duration

	// AI collaborator. When AIBaseURL is empty the service runs with the
	// built-in simulated collaborator.
	AIBaseURL string
}

// Load loads environment variables into AppConfig.
func Load() AppConfig {
	return AppConfig{
		HTTPAddr:  getEnv("HTTP_ADDR", ":8000"),
		RedisAddr: getEnv("REDIS_ADDR", ""),
		RedisPass: getEnv("REDIS_PASS", ""),
		CacheTTL:  getEnvDuration("CACHE_TTL_SECONDS", 30*time.Second),
		AIBaseURL: getEnv("AI_BASE_URL", ""),
	}
}

// --- Helper functions ---

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			return time.Duration(secs) * time.Second
		}
	}
	return fallback
}
