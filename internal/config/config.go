// Package config loads application configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the full application configuration.
type Config struct {
	Env         string
	HTTPAddr    string
	DatabaseURL string

	// Redis / background jobs
	RedisURL         string
	RedisTLSInsecure bool
	AsynqQueue       string
	AsynqConcurrency int

	// CORS
	CORSAllowAll bool
	CORSOrigins  []string

	// Optional YAML overlay with extra scoring presets.
	PresetsPath string

	// HTTP rate limiting
	RateLimitRPS   float64
	RateLimitBurst int
}

// Load reads configuration from the environment, with .env support for
// local development.
func Load() (*Config, error) {
	_ = godotenv.Load()

	corsOrigins := splitCSV(getEnv("CORS_ORIGINS", "http://localhost:4200"))
	corsAllowAll := strings.EqualFold(getEnv("CORS_ALLOW_ALL", "false"), "true")
	if containsWildcard(corsOrigins) {
		corsAllowAll = true
	}

	cfg := &Config{
		Env:              getEnv("APP_ENV", "development"),
		HTTPAddr:         getEnv("HTTP_ADDR", ":8080"),
		DatabaseURL:      getEnv("DATABASE_URL", ""),
		RedisURL:         getEnv("REDIS_URL", ""),
		RedisTLSInsecure: strings.EqualFold(getEnv("REDIS_TLS_INSECURE", "false"), "true"),
		AsynqQueue:       getEnv("ASYNQ_QUEUE", "scoring"),
		AsynqConcurrency: getEnvInt("ASYNQ_CONCURRENCY", 10),
		CORSAllowAll:     corsAllowAll,
		CORSOrigins:      corsOrigins,
		PresetsPath:      getEnv("SCORING_PRESETS_PATH", ""),
		RateLimitRPS:     getEnvFloat("RATE_LIMIT_RPS", 25),
		RateLimitBurst:   getEnvInt("RATE_LIMIT_BURST", 50),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.RateLimitRPS <= 0 || cfg.RateLimitBurst <= 0 {
		return nil, fmt.Errorf("RATE_LIMIT_RPS and RATE_LIMIT_BURST must be positive")
	}

	return cfg, nil
}

// GetDatabaseURL satisfies platform/db.DatabaseConfig.
func (c *Config) GetDatabaseURL() string { return c.DatabaseURL }

// GetRedisURL satisfies the scheduler configuration interface.
func (c *Config) GetRedisURL() string { return c.RedisURL }

// GetRedisTLSInsecure reports whether TLS verification is disabled for Redis.
func (c *Config) GetRedisTLSInsecure() bool { return c.RedisTLSInsecure }

// GetAsynqQueueName returns the queue used for scoring jobs.
func (c *Config) GetAsynqQueueName() string { return c.AsynqQueue }

// GetAsynqConcurrency returns the worker concurrency.
func (c *Config) GetAsynqConcurrency() int { return c.AsynqConcurrency }

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	val, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	parsed, err := strconv.Atoi(strings.TrimSpace(val))
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvFloat(key string, fallback float64) float64 {
	val, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	parsed, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
	if err != nil {
		return fallback
	}
	return parsed
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	results := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			results = append(results, trimmed)
		}
	}
	return results
}

func containsWildcard(origins []string) bool {
	for _, origin := range origins {
		if origin == "*" {
			return true
		}
	}
	return false
}
