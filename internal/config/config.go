package config

import (
	"os"
	"strconv"

	"qareview/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Paths    PathConfig
	Sampling SamplingConfig
}

// PathConfig holds input and output file paths
type PathConfig struct {
	DatasetFile string
	SampleFile  string
	ReportFile  string
	ChartFile   string
}

// SamplingConfig holds sampling parameters
type SamplingConfig struct {
	SampleSize    int
	CategoryCount int
	Seed          int64
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Paths:    loadPathConfig(),
		Sampling: loadSamplingConfig(),
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func loadPathConfig() PathConfig {
	return PathConfig{
		DatasetFile: getEnvOrDefault("DATASET_FILE", "train.csv"),
		SampleFile:  getEnvOrDefault("SAMPLE_FILE", "qa_sample.json"),
		ReportFile:  getEnvOrDefault("REPORT_FILE", "error_rate_report.json"),
		ChartFile:   getEnvOrDefault("CHART_FILE", "error_rate_comparison.png"),
	}
}

func loadSamplingConfig() SamplingConfig {
	return SamplingConfig{
		SampleSize:    getEnvIntOrDefault("SAMPLE_SIZE", 50),
		CategoryCount: getEnvIntOrDefault("CATEGORY_COUNT", 25),
		Seed:          getEnvInt64OrDefault("SAMPLE_SEED", 42),
	}
}

func validateConfig(config *Config) error {
	if config.Paths.DatasetFile == "" {
		return errors.ConfigInvalid("dataset file path is required")
	}
	if config.Sampling.SampleSize <= 0 {
		return errors.ConfigInvalid("SAMPLE_SIZE must be positive")
	}
	if config.Sampling.CategoryCount <= 0 {
		return errors.ConfigInvalid("CATEGORY_COUNT must be positive")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}
