// Package config provides centralized configuration for the pipeline.
// Settings come from environment variables (and an optional .env file loaded
// in main) with sensible defaults, and are validated on startup to fail fast
// on misconfiguration. The database variable names (PGDIALECT, PGUSER, ...)
// match the credential keys the surrounding tooling already uses.
package config

import (
	"fmt"
	"strings"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Data     DataConfig
	Database DatabaseConfig
	Server   ServerConfig
	Logging  LoggingConfig
}

// DataConfig holds input dataset settings.
type DataConfig struct {
	// Dir is the directory of yearly CSV files (default: data)
	Dir string `env:"HAPPINESS_DATA_DIR" default:"data"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	// Dialect selects the SQL dialect; only postgres is supported (default: postgres)
	Dialect string `env:"PGDIALECT" default:"postgres"`

	// User is the database user (required)
	User string `env:"PGUSER" required:"true"`

	// Password is the database password
	Password string `env:"PGPASSWD" envAlt:"PGPASSWORD"`

	// Host is the database host (default: localhost)
	Host string `env:"PGHOST" default:"localhost"`

	// Port is the database port (default: 5432)
	Port int `env:"PGPORT" default:"5432"`

	// Name is the target database; created on connect if absent (required)
	Name string `env:"PGDB" required:"true"`

	// MaxConns is the maximum number of pooled connections (default: 4)
	MaxConns int `env:"DB_MAX_CONNS" default:"4"`

	// MinConns is the minimum number of pooled connections (default: 1)
	MinConns int `env:"DB_MIN_CONNS" default:"1"`

	// MaxConnLifetime is the maximum lifetime of a connection (default: 1h)
	MaxConnLifetime time.Duration `env:"DB_MAX_CONN_LIFETIME" default:"1h"`

	// MaxConnIdleTime is the maximum idle time before a connection is closed (default: 30m)
	MaxConnIdleTime time.Duration `env:"DB_MAX_CONN_IDLE_TIME" default:"30m"`
}

// ServerConfig holds settings for the optional status API.
type ServerConfig struct {
	// Host is the interface to bind to (default: 0.0.0.0)
	Host string `env:"SERVER_HOST" default:"0.0.0.0"`

	// Port is the port to listen on (default: 8080)
	Port int `env:"SERVER_PORT" default:"8080"`

	// ReadTimeout is the maximum duration for reading a request (default: 15s)
	ReadTimeout time.Duration `env:"SERVER_READ_TIMEOUT" default:"15s"`

	// WriteTimeout is the maximum duration for writing a response (default: 30s)
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" default:"30s"`

	// IdleTimeout is the maximum wait for the next request on a kept-alive
	// connection (default: 60s)
	IdleTimeout time.Duration `env:"SERVER_IDLE_TIMEOUT" default:"60s"`

	// ShutdownTimeout is the maximum wait for graceful shutdown (default: 30s)
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" default:"30s"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}

// Addr returns the server listen address in host:port format.
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Validate checks that the configuration is valid.
// Returns an error describing all validation failures.
func (c *Config) Validate() error {
	var errs []string

	if c.Data.Dir == "" {
		errs = append(errs, "HAPPINESS_DATA_DIR must not be empty")
	}

	switch strings.ToLower(c.Database.Dialect) {
	case "postgres", "postgresql":
	default:
		errs = append(errs, fmt.Sprintf("PGDIALECT (%q) must be postgres or postgresql", c.Database.Dialect))
	}
	if c.Database.User == "" {
		errs = append(errs, "PGUSER is required")
	}
	if c.Database.Name == "" {
		errs = append(errs, "PGDB is required")
	}
	if c.Database.Port <= 0 || c.Database.Port > 65535 {
		errs = append(errs, fmt.Sprintf("PGPORT (%d) must be 1-65535", c.Database.Port))
	}
	if c.Database.MaxConns <= 0 {
		errs = append(errs, "DB_MAX_CONNS must be positive")
	}
	if c.Database.MinConns < 0 {
		errs = append(errs, "DB_MIN_CONNS must be non-negative")
	}
	if c.Database.MaxConns < c.Database.MinConns {
		errs = append(errs, fmt.Sprintf("DB_MAX_CONNS (%d) must be >= DB_MIN_CONNS (%d)",
			c.Database.MaxConns, c.Database.MinConns))
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Sprintf("SERVER_PORT (%d) must be 1-65535", c.Server.Port))
	}
	if c.Server.ShutdownTimeout <= 0 {
		errs = append(errs, "SERVER_SHUTDOWN_TIMEOUT must be positive")
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Logging.Level)] {
		errs = append(errs, fmt.Sprintf("LOG_LEVEL (%q) must be one of: debug, info, warn, error", c.Logging.Level))
	}
	validFormats := map[string]bool{"text": true, "json": true}
	if !validFormats[strings.ToLower(c.Logging.Format)] {
		errs = append(errs, fmt.Sprintf("LOG_FORMAT (%q) must be one of: text, json", c.Logging.Format))
	}

	if len(errs) > 0 {
		return fmt.Errorf("validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}

// String returns a safe string representation of the config for logging.
// The database password is masked.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{Data: {Dir: %q}, Database: {Dialect: %q, User: %q, Password: [MASKED], Host: %q, Port: %d, Name: %q}, Server: {Addr: %q}, Logging: {Level: %q, Format: %q}}",
		c.Data.Dir,
		c.Database.Dialect, c.Database.User, c.Database.Host, c.Database.Port, c.Database.Name,
		c.Server.Addr(),
		c.Logging.Level, c.Logging.Format,
	)
}
