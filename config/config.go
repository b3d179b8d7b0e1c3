package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/joho/godotenv"
)

const (
	CacheBackendMemory = "memory"
	CacheBackendRedis  = "redis"
)

// Config holds application configuration
type Config struct {
	LogLevel        string
	LogPretty       bool
	CacheBackend    string // memory or redis
	RedisAddr       string
	CacheTTL        time.Duration
	ScenarioWorkers int
	RequestTimeout  time.Duration
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogPretty:       getEnvAsBool("LOG_PRETTY", false),
		CacheBackend:    getEnv("CACHE_BACKEND", CacheBackendMemory),
		RedisAddr:       getEnv("REDIS_ADDR", "localhost:6379"),
		CacheTTL:        getEnvAsDuration("CACHE_TTL", 15*time.Minute),
		ScenarioWorkers: getEnvAsInt("SCENARIO_WORKERS", 4),
		RequestTimeout:  getEnvAsDuration("REQUEST_TIMEOUT", 30*time.Second),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the loaded values
func (c *Config) Validate() error {
	var result *multierror.Error

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		result = multierror.Append(result, fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error, got %q", c.LogLevel))
	}

	switch c.CacheBackend {
	case CacheBackendMemory:
	case CacheBackendRedis:
		if c.RedisAddr == "" {
			result = multierror.Append(result, errors.New("REDIS_ADDR is required when CACHE_BACKEND=redis"))
		}
	default:
		result = multierror.Append(result, fmt.Errorf("CACHE_BACKEND must be memory or redis, got %q", c.CacheBackend))
	}

	if c.CacheTTL <= 0 {
		result = multierror.Append(result, errors.New("CACHE_TTL must be positive"))
	}
	if c.ScenarioWorkers < 1 {
		result = multierror.Append(result, errors.New("SCENARIO_WORKERS must be at least 1"))
	}
	if c.RequestTimeout <= 0 {
		result = multierror.Append(result, errors.New("REQUEST_TIMEOUT must be positive"))
	}

	return result.ErrorOrNil()
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
