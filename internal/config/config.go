package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	App      AppConfig
	Database DatabaseConfig
}

// AppConfig holds process-level settings
type AppConfig struct {
	Env string
}

// DatabaseConfig holds SurrealDB connection settings.
// URL is the full endpoint (e.g. ws://localhost:8000) and has no default:
// a missing endpoint must fail startup, not the first query.
type DatabaseConfig struct {
	URL            string
	Namespace      string
	Database       string
	User           string
	Password       string
	ConnectTimeout time.Duration
}

// Load reads configuration from environment variables with sensible defaults.
// Outside production a .env file in the working directory is merged in first;
// variables already set in the environment always win.
func Load() (*Config, error) {
	if getEnv("ENV", "development") != "production" {
		_ = godotenv.Load()
	}

	return &Config{
		App: AppConfig{
			Env: getEnv("ENV", "development"),
		},
		Database: DatabaseConfig{
			URL:            getEnv("DB_URL", ""),
			Namespace:      getEnv("DB_NAMESPACE", "gala"),
			Database:       getEnv("DB_DATABASE", "main"),
			User:           getEnv("DB_USER", "root"),
			Password:       getEnv("DB_PASSWORD", "root"),
			ConnectTimeout: getDurationEnv("DB_CONNECT_TIMEOUT", 10*time.Second),
		},
	}, nil
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

// Validate checks that all required configuration values are present and valid.
// It returns an error describing all validation failures, or nil if valid.
func (c *Config) Validate() error {
	var errs []error

	if c.App.Env != "development" && c.App.Env != "production" && c.App.Env != "test" {
		errs = append(errs, fmt.Errorf("ENV must be 'development', 'production', or 'test', got '%s'", c.App.Env))
	}

	if c.Database.URL == "" {
		errs = append(errs, errors.New("DB_URL is required"))
	}
	if c.Database.Namespace == "" {
		errs = append(errs, errors.New("DB_NAMESPACE is required"))
	}
	if c.Database.Database == "" {
		errs = append(errs, errors.New("DB_DATABASE is required"))
	}
	if c.Database.ConnectTimeout <= 0 {
		errs = append(errs, errors.New("DB_CONNECT_TIMEOUT must be positive"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// Helper functions for reading environment variables

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
