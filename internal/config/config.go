// Package config provides environment-driven configuration for cinegraph.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// Secret wraps a sensitive string to prevent accidental logging or marshalling.
type Secret string

// String implements fmt.Stringer, returning a redacted placeholder.
func (s Secret) String() string { return "[REDACTED]" }

// GoString implements fmt.GoStringer, returning a redacted placeholder.
func (s Secret) GoString() string { return "[REDACTED]" }

// MarshalText implements encoding.TextMarshaler, returning a redacted placeholder.
func (s Secret) MarshalText() ([]byte, error) { return []byte("[REDACTED]"), nil }

// Value returns the underlying secret string.
func (s Secret) Value() string { return string(s) }

// Config holds all application configuration values.
type Config struct {
	Neo4jURI       string
	Neo4jUser      string
	Neo4jPassword  Secret
	Neo4jDatabase  string
	Port           string
	ListenHost     string
	CORSOrigins    []string
	LogLevel       string
	RequestTimeout time.Duration
	MaxConcurrency int64
	MaxBodyBytes   int64
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (*Config, error) {
	cfg := &Config{
		Neo4jURI:      envOrDefault("NEO4J_URI", "bolt://localhost:7687"),
		Neo4jUser:     envOrDefault("NEO4J_USER", "neo4j"),
		Neo4jPassword: Secret(envOrDefault("NEO4J_PASSWORD", "")),
		Neo4jDatabase: envOrDefault("NEO4J_DATABASE", ""),
		Port:          envOrDefault("PORT", "8080"),
		ListenHost:    envOrDefault("LISTEN_HOST", "0.0.0.0"),
		LogLevel:      envOrDefault("LOG_LEVEL", "info"),
	}

	timeoutSecs, err := strconv.Atoi(envOrDefault("REQUEST_TIMEOUT_SECS", "20"))
	if err != nil || timeoutSecs < 1 || timeoutSecs > 300 {
		return nil, fmt.Errorf("REQUEST_TIMEOUT_SECS must be an integer between 1 and 300")
	}
	cfg.RequestTimeout = time.Duration(timeoutSecs) * time.Second

	maxConcurrency, err := strconv.ParseInt(envOrDefault("MAX_CONCURRENCY", "512"), 10, 64)
	if err != nil || maxConcurrency < 1 {
		return nil, fmt.Errorf("MAX_CONCURRENCY must be a positive integer")
	}
	cfg.MaxConcurrency = maxConcurrency

	maxBodyBytes, err := strconv.ParseInt(envOrDefault("MAX_BODY_BYTES", "1048576"), 10, 64)
	if err != nil || maxBodyBytes < 1 {
		return nil, fmt.Errorf("MAX_BODY_BYTES must be a positive integer")
	}
	cfg.MaxBodyBytes = maxBodyBytes

	origins := envOrDefault("CORS_ORIGINS", "*")
	cfg.CORSOrigins = strings.Split(origins, ",")

	for i, o := range cfg.CORSOrigins {
		cfg.CORSOrigins[i] = strings.TrimSpace(o)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

// Addr returns the listen address in host:port format.
func (c *Config) Addr() string {
	return c.ListenHost + ":" + c.Port
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}

func (c *Config) validate() error {
	if err := c.validateNeo4j(); err != nil {
		return err
	}

	if err := c.validateNetwork(); err != nil {
		return err
	}

	return c.validateCORS()
}

func (c *Config) validateNeo4j() error {
	if c.Neo4jURI == "" {
		return fmt.Errorf("NEO4J_URI is required")
	}

	u, err := url.Parse(c.Neo4jURI)
	if err != nil {
		return fmt.Errorf("NEO4J_URI is not a valid URI: %w", err)
	}

	switch u.Scheme {
	case "bolt", "bolt+s", "bolt+ssc", "neo4j", "neo4j+s", "neo4j+ssc":
	default:
		return fmt.Errorf("NEO4J_URI scheme must be bolt:// or neo4j:// (optionally +s/+ssc), got %q", u.Scheme)
	}

	if u.Hostname() == "" {
		return fmt.Errorf("NEO4J_URI must include a host")
	}

	if c.Neo4jUser == "" {
		return fmt.Errorf("NEO4J_USER is required")
	}

	return nil
}

func (c *Config) validateNetwork() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil {
		return fmt.Errorf("PORT must be a valid integer: %w", err)
	}

	if port < 1 || port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535")
	}

	// Allow loopback addresses for local deployments and 0.0.0.0/:: for
	// containerized deployments where the network boundary is enforced
	// externally (e.g. Docker, Kubernetes).
	validHosts := map[string]bool{
		"127.0.0.1": true,
		"::1":       true,
		"localhost": true,
		"0.0.0.0":   true,
		"::":        true,
	}
	if !validHosts[c.ListenHost] {
		return fmt.Errorf("LISTEN_HOST must be a loopback address or 0.0.0.0/:: for containers (got %q)", c.ListenHost)
	}

	return nil
}

func (c *Config) validateCORS() error {
	for _, origin := range c.CORSOrigins {
		// The dataset is a public demo graph; a bare wildcard is allowed.
		if origin == "*" {
			continue
		}

		if strings.ContainsAny(origin, "*?[]") {
			return fmt.Errorf("CORS_ORIGINS must not contain glob characters (*?[]), got %q", origin)
		}

		u, err := url.Parse(origin)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("CORS_ORIGINS contains invalid origin %q (must have scheme and host)", origin)
		}
	}

	return nil
}
