// Package config provides configuration management for content-desk.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the service configuration.
type Config struct {
	API   APIConfig
	Cache CacheConfig
	HTTP  HTTPConfig
	// PageSize is the fixed page size for derived article views.
	PageSize int
	LogLevel string
}

// APIConfig configures the remote content API client.
type APIConfig struct {
	// BaseURL is the root of the content API, e.g. http://content-api:8080.
	BaseURL string
	// Token, when set, is forwarded as a bearer credential. The API is
	// the authority on authorization; content-desk never inspects it.
	Token   string
	Timeout time.Duration
}

// CacheConfig configures the collection cache.
type CacheConfig struct {
	RedisURL string
	TTL      time.Duration
}

// HTTPConfig configures the HTTP surface.
type HTTPConfig struct {
	Addr              string
	ReadHeaderTimeout time.Duration
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	apiTimeout, err := durationEnv("CONTENT_API_TIMEOUT", 30*time.Second)
	if err != nil {
		return nil, err
	}
	cacheTTL, err := durationEnv("CACHE_TTL", 10*time.Minute)
	if err != nil {
		return nil, err
	}
	pageSize, err := intEnv("PAGE_SIZE", 20)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		API: APIConfig{
			BaseURL: strings.TrimRight(getEnvRequired("CONTENT_API_URL"), "/"),
			Token:   getEnvOrDefault("CONTENT_API_TOKEN", ""),
			Timeout: apiTimeout,
		},
		Cache: CacheConfig{
			RedisURL: getEnvOrDefault("REDIS_URL", "redis://localhost:6379"),
			TTL:      cacheTTL,
		},
		HTTP: HTTPConfig{
			Addr:              getEnvOrDefault("HTTP_ADDR", ":9400"),
			ReadHeaderTimeout: 5 * time.Second,
		},
		PageSize: pageSize,
		LogLevel: getEnvOrDefault("LOG_LEVEL", "info"),
	}

	return cfg, nil
}

func durationEnv(key string, defaultValue time.Duration) (time.Duration, error) {
	raw := getEnvOrDefault(key, "")
	if raw == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func intEnv(key string, defaultValue int) (int, error) {
	raw := getEnvOrDefault(key, "")
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("invalid %s: %q", key, raw)
	}
	return v, nil
}

func getEnvRequired(key string) string {
	// Check for _FILE indirection first.
	if fileValue := os.Getenv(key + "_FILE"); fileValue != "" {
		content, err := os.ReadFile(fileValue)
		if err == nil {
			return strings.TrimSpace(string(content))
		}
	}

	value := os.Getenv(key)
	if value == "" {
		panic(fmt.Sprintf("required environment variable %s is not set", key))
	}
	return value
}

func getEnvOrDefault(key, defaultValue string) string {
	if fileValue := os.Getenv(key + "_FILE"); fileValue != "" {
		content, err := os.ReadFile(fileValue)
		if err == nil {
			return strings.TrimSpace(string(content))
		}
	}

	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
