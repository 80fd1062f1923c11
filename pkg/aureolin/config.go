package aureolin

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Config holds configuration for an Aureolin application.
type Config struct {
	// Port is the port to listen on (default: 8080, or the PORT env var)
	Port int `toml:"port"`

	// Host is the host to bind to (default: "")
	Host string `toml:"host"`

	// Body enumerates which request content types are parsed
	Body BodyConfig `toml:"body"`

	// Logger configures request/lifecycle logging
	Logger LoggerConfig `toml:"logger"`

	// ShutdownTimeout is the timeout for graceful shutdown (default: 30s)
	ShutdownTimeout time.Duration `toml:"shutdown_timeout"`
}

// BodyConfig enumerates the content types the body parser accepts. Disabled
// types are rejected with 415 before binding.
type BodyConfig struct {
	JSON bool `toml:"json"`
	Form bool `toml:"form"`
	Text bool `toml:"text"`
}

// LoggerConfig configures the request logger.
type LoggerConfig struct {
	// Enabled turns request logging on (default: true)
	Enabled bool `toml:"enabled"`

	// Color enables colored status output on the startup banner
	Color bool `toml:"color"`

	// TimeFormat is the timestamp layout for log records
	TimeFormat string `toml:"time_format"`

	// RedactHeaders lists header names whose values are omitted from logs
	RedactHeaders []string `toml:"redact_headers"`
}

// DefaultConfig returns a configuration with sensible defaults. PORT from the
// environment overrides the default port.
func DefaultConfig() *Config {
	port := 8080
	if portStr := os.Getenv("PORT"); portStr != "" {
		if p, err := strconv.Atoi(portStr); err == nil {
			port = p
		}
	}

	return &Config{
		Port: port,
		Host: "",
		Body: BodyConfig{JSON: true, Form: true, Text: true},
		Logger: LoggerConfig{
			Enabled:       true,
			Color:         true,
			TimeFormat:    time.RFC3339,
			RedactHeaders: []string{"Authorization", "Cookie"},
		},
		ShutdownTimeout: 30 * time.Second,
	}
}

// LoadConfig reads a TOML configuration file on top of the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Addr returns the listen address for the configured host and port.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
