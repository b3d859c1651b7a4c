package fetcher

import (
	"fmt"
	"time"

	"news-classify/pkg/config"
)

// DatasetConfig holds the configuration for dataset fetching from the
// Hugging Face datasets-server rows API.
type DatasetConfig struct {
	// BaseURL is the datasets-server endpoint.
	// Default: https://datasets-server.huggingface.co
	BaseURL string

	// Dataset is the dataset repository to pull.
	Dataset string

	// Config is the dataset configuration name.
	Config string

	// Split selects the dataset split to download.
	Split string

	// PageSize is the number of rows requested per page. The rows API caps
	// a single request at 100 rows.
	PageSize int

	// Timeout is the maximum duration for a single HTTP request.
	Timeout time.Duration

	// RequestsPerSecond is the sustained politeness rate toward the API.
	RequestsPerSecond float64

	// Burst is the token bucket burst capacity.
	Burst int

	// MaxBodySize is the maximum HTTP response body size in bytes.
	// Responses exceeding this limit are rejected.
	MaxBodySize int64

	// MaxRows bounds the total number of rows fetched, 0 means no bound.
	MaxRows int
}

// DefaultDatasetConfig returns the production configuration: the
// argilla/synthetic-text-classification-news train split, 100 rows per page.
func DefaultDatasetConfig() DatasetConfig {
	return DatasetConfig{
		BaseURL:           "https://datasets-server.huggingface.co",
		Dataset:           "argilla/synthetic-text-classification-news",
		Config:            "default",
		Split:             "train",
		PageSize:          100,
		Timeout:           15 * time.Second,
		RequestsPerSecond: 2.0,
		Burst:             4,
		MaxBodySize:       4 * 1024 * 1024, // 4MB
		MaxRows:           0,
	}
}

// Validate checks if the configuration values are valid.
func (c *DatasetConfig) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("base URL must not be empty")
	}
	if c.Dataset == "" {
		return fmt.Errorf("dataset must not be empty")
	}
	if c.PageSize < 1 || c.PageSize > 100 {
		return fmt.Errorf("page size must be between 1 and 100, got %d", c.PageSize)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %v", c.Timeout)
	}
	if c.RequestsPerSecond <= 0 {
		return fmt.Errorf("requests per second must be positive, got %f", c.RequestsPerSecond)
	}
	if c.Burst < 1 {
		return fmt.Errorf("burst must be at least 1, got %d", c.Burst)
	}
	if c.MaxBodySize < 1024 {
		return fmt.Errorf("max body size must be at least 1KB, got %d", c.MaxBodySize)
	}
	if c.MaxRows < 0 {
		return fmt.Errorf("max rows must be non-negative, got %d", c.MaxRows)
	}
	return nil
}

// LoadDatasetConfigFromEnv loads configuration from environment variables,
// falling back to defaults for unset values.
//
// Environment variables:
//   - DATASET_BASE_URL
//   - DATASET_NAME
//   - DATASET_SPLIT
//   - DATASET_PAGE_SIZE
//   - DATASET_FETCH_TIMEOUT (duration string, e.g. "15s")
//   - DATASET_MAX_ROWS
func LoadDatasetConfigFromEnv() (DatasetConfig, error) {
	cfg := DefaultDatasetConfig()

	cfg.BaseURL = config.GetEnvString("DATASET_BASE_URL", cfg.BaseURL)
	cfg.Dataset = config.GetEnvString("DATASET_NAME", cfg.Dataset)
	cfg.Split = config.GetEnvString("DATASET_SPLIT", cfg.Split)
	cfg.PageSize = config.GetEnvInt("DATASET_PAGE_SIZE", cfg.PageSize)
	cfg.Timeout = config.GetEnvDuration("DATASET_FETCH_TIMEOUT", cfg.Timeout)
	cfg.MaxRows = config.GetEnvInt("DATASET_MAX_ROWS", cfg.MaxRows)

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}
