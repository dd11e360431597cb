// Package config loads application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	AppEnv      string
	APIBaseURL  string
	HTTPTimeout time.Duration
	RedisURL    string
	StoragePath string
	PageSize    int
	LogLevel    string
	LogFormat   string
}

func Load() (*Config, error) {
	cfg := &Config{
		AppEnv:      getEnv("APP_ENV", "development"),
		APIBaseURL:  getEnv("API_BASE_URL", "https://forkify-api.herokuapp.com/api"),
		RedisURL:    getEnv("REDIS_URL", ""),
		StoragePath: getEnv("STORAGE_PATH", defaultStoragePath()),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "text"),
	}

	if cfg.APIBaseURL == "" {
		return nil, fmt.Errorf("API_BASE_URL is required")
	}

	timeout, err := time.ParseDuration(getEnv("HTTP_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("HTTP_TIMEOUT is invalid: %w", err)
	}
	if timeout <= 0 {
		return nil, fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	cfg.HTTPTimeout = timeout

	pageSize, err := strconv.Atoi(getEnv("PAGE_SIZE", "10"))
	if err != nil {
		return nil, fmt.Errorf("PAGE_SIZE is invalid: %w", err)
	}
	if pageSize < 1 {
		return nil, fmt.Errorf("PAGE_SIZE must be at least 1")
	}
	cfg.PageSize = pageSize

	if cfg.RedisURL == "" && cfg.StoragePath == "" {
		return nil, fmt.Errorf("either REDIS_URL or STORAGE_PATH is required")
	}

	return cfg, nil
}

func defaultStoragePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "forkify.json"
	}
	return home + "/.forkify/storage.json"
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
