package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port               string
	YouTubeAPIKey      string
	LogLevel           string
	Environment        string
	CORSOrigins        string
	SearchMaxResults   int64
	MaxRecommendations int
	QueryTimeout       time.Duration
	UpstreamTimeout    time.Duration
}

func Load() *Config {
	// Local development convenience; a missing .env is not an error.
	_ = godotenv.Load()

	return &Config{
		Port:               getEnv("PORT", "8080"),
		YouTubeAPIKey:      getEnv("DEVELOPER_KEY", ""),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		Environment:        getEnv("ENVIRONMENT", "development"),
		CORSOrigins:        getEnv("CORS_ORIGINS", "*"),
		SearchMaxResults:   getEnvInt64("SEARCH_MAX_RESULTS", 50),
		MaxRecommendations: int(getEnvInt64("MAX_RECOMMENDATIONS", 20)),
		QueryTimeout:       getEnvDuration("QUERY_TIMEOUT", time.Minute),
		UpstreamTimeout:    getEnvDuration("UPSTREAM_TIMEOUT", 30*time.Second),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return fallback
}
