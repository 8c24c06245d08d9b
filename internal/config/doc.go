// Package config manages application configuration for the Gala data layer.
//
// The config package loads and validates configuration from environment
// variables. All configuration is centralized here to provide a single
// source of truth.
//
// # Configuration Loading
//
// Configuration is loaded from environment variables:
//
//	cfg, _ := config.Load()
//	if err := cfg.Validate(); err != nil {
//	    // abort startup
//	}
//
// Outside production Load merges a .env file from the working directory
// before reading, so local development does not need exported variables.
// Validation is separate from loading so callers can report every problem
// at once and exit; a missing database endpoint must never surface as a
// late connection failure.
//
// # Environment Variables
//
//	ENV                 - development, production, or test (default: development)
//	DB_URL              - SurrealDB endpoint, e.g. ws://localhost:8000 (required)
//	DB_NAMESPACE        - Database namespace (default: gala)
//	DB_DATABASE         - Database name (default: main)
//	DB_USER             - Database username (default: root)
//	DB_PASSWORD         - Database password (default: root)
//	DB_CONNECT_TIMEOUT  - Dial timeout for the first connection (default: 10s)
package config
