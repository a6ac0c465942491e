/**
 * Configuration for the lipi server
 *
 * Loads configuration from environment variables (optionally seeded from a
 * .env file by main).
 */

package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds server configuration.
type Config struct {
	// HTTP server
	Addr           string
	MaxUploadBytes int64

	// Phrasebook storage: Postgres when DatabaseURL is set, JSON file
	// otherwise.
	DatabaseURL    string
	PhrasebookFile string

	// Transliteration backend; empty URL disables the capability.
	TranslitAPIURL  string
	TranslitTimeout time.Duration

	// OCR
	OCREnabled     bool
	OCRDefaultLang string

	// Logging
	LogLevel  string
	LogFormat string
}

// LoadConfig loads configuration from environment variables.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Addr:            getEnvOrDefault("LIPI_ADDR", ":8080"),
		MaxUploadBytes:  getEnvAsInt64OrDefault("MAX_UPLOAD_BYTES", 16<<20), // 16MB
		DatabaseURL:     getEnvOrDefault("DATABASE_URL", ""),
		PhrasebookFile:  getEnvOrDefault("PHRASEBOOK_FILE", "phrasebooks.json"),
		TranslitAPIURL:  getEnvAllowEmpty("TRANSLIT_API_URL", "https://aksharamukha-plugin.appspot.com/api/public"),
		TranslitTimeout: time.Duration(getEnvAsIntOrDefault("TRANSLIT_TIMEOUT_MS", 30000)) * time.Millisecond,
		OCREnabled:      getEnvAsBoolOrDefault("OCR_ENABLED", true),
		OCRDefaultLang:  getEnvOrDefault("OCR_DEFAULT_LANG", "eng"),
		LogLevel:        getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:       getEnvOrDefault("LOG_FORMAT", "console"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks if configuration is valid.
func (c *Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("LIPI_ADDR is required")
	}

	if c.MaxUploadBytes < 1024 || c.MaxUploadBytes > 256<<20 {
		return fmt.Errorf("MAX_UPLOAD_BYTES must be between 1KB and 256MB, got %d", c.MaxUploadBytes)
	}

	if c.TranslitTimeout < time.Second || c.TranslitTimeout > 5*time.Minute {
		return fmt.Errorf("TRANSLIT_TIMEOUT_MS must be between 1s and 5m, got %v", c.TranslitTimeout)
	}

	if c.OCREnabled && c.OCRDefaultLang == "" {
		return fmt.Errorf("OCR_DEFAULT_LANG is required when OCR is enabled")
	}

	if c.DatabaseURL == "" && c.PhrasebookFile == "" {
		return fmt.Errorf("either DATABASE_URL or PHRASEBOOK_FILE is required")
	}

	return nil
}

// getEnvOrDefault gets environment variable or returns default.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAllowEmpty gets environment variable or returns default; an
// explicitly empty value stays empty (used to disable a capability).
func getEnvAllowEmpty(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault gets environment variable as int or returns default.
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}

// getEnvAsInt64OrDefault gets environment variable as int64 or returns default.
func getEnvAsInt64OrDefault(key string, defaultValue int64) int64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseInt(valueStr, 10, 64)
	if err != nil {
		return defaultValue
	}

	return value
}

// getEnvAsBoolOrDefault gets environment variable as bool or returns default.
func getEnvAsBoolOrDefault(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}
