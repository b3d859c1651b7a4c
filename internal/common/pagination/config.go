// Package pagination provides offset-based pagination helpers for list
// endpoints using skip/limit query parameters.
package pagination

import (
	"os"
	"strconv"
)

// Config holds pagination configuration settings.
// These values can be loaded from environment variables or config files.
type Config struct {
	DefaultLimit int // Default items per request (typically 100)
	MaxLimit     int // Maximum allowed items per request (typically 1000)
}

// DefaultConfig returns the default pagination configuration.
// Default values: limit=100, max=1000
func DefaultConfig() Config {
	return Config{
		DefaultLimit: 100,
		MaxLimit:     1000,
	}
}

// LoadFromEnv loads pagination config from environment variables.
// Supported environment variables:
//   - PAGINATION_DEFAULT_LIMIT: Default items per request
//   - PAGINATION_MAX_LIMIT: Maximum items per request
//
// Falls back to DefaultConfig() if environment variables are not set.
func LoadFromEnv() Config {
	return Config{
		DefaultLimit: getEnvAsInt("PAGINATION_DEFAULT_LIMIT", 100),
		MaxLimit:     getEnvAsInt("PAGINATION_MAX_LIMIT", 1000),
	}
}

// getEnvAsInt retrieves an environment variable and parses it as an integer.
// Returns the default value if the variable is not set or cannot be parsed.
func getEnvAsInt(key string, defaultValue int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultValue
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		return defaultValue
	}
	return val
}
