// Package config resolves the server configuration from an optional YAML file,
// environment variables and command-line overrides applied by the caller.
// The only value without a default is the SearXNG backend URL.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

var (
	// ErrMissingBackendURL is returned when no SearXNG URL was supplied.
	ErrMissingBackendURL = errors.New("searxng url is required (use --url or SEARXNG_URL)")
	// ErrUnknownTransport is returned for a transport other than stdio or http.
	ErrUnknownTransport = errors.New("unknown transport")
)

const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

// Config holds runtime configuration for the SearXNG MCP server.
type Config struct {
	URL        string        `yaml:"url"`         // SEARXNG_URL — required, no default
	Transport  string        `yaml:"transport"`   // SEARXNG_MCP_TRANSPORT — default: "stdio"
	Listen     string        `yaml:"listen"`      // SEARXNG_MCP_LISTEN — default: "127.0.0.1:8080"
	Timeout    time.Duration `yaml:"timeout"`     // SEARXNG_MCP_TIMEOUT — default: 0 (no timeout)
	LogLevel   string        `yaml:"log_level"`   // SEARXNG_MCP_LOG_LEVEL — default: "info"
	LogFormat  string        `yaml:"log_format"`  // SEARXNG_MCP_LOG_FORMAT — default: "console"
	AuthSecret string        `yaml:"auth_secret"` // SEARXNG_MCP_AUTH_SECRET — empty disables /mcp auth
}

const (
	envKeyURL        = "SEARXNG_URL"
	envKeyTransport  = "SEARXNG_MCP_TRANSPORT"
	envKeyListen     = "SEARXNG_MCP_LISTEN"
	envKeyLogLevel   = "SEARXNG_MCP_LOG_LEVEL"
	envKeyLogFormat  = "SEARXNG_MCP_LOG_FORMAT"
	envKeyTimeout    = "SEARXNG_MCP_TIMEOUT"
	envKeyAuthSecret = "SEARXNG_MCP_AUTH_SECRET"
)

// Default returns the configuration used when nothing else is supplied.
func Default() Config {
	return Config{
		Transport: TransportStdio,
		Listen:    "127.0.0.1:8080",
		LogLevel:  "info",
		LogFormat: "console",
	}
}

// Load builds a Config from defaults, the YAML file at path (if path is not
// empty) and environment variables, in that order of precedence.
// Load does not validate; call Validate once command-line overrides are applied.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.URL = envOr(envKeyURL, cfg.URL)
	cfg.Transport = envOr(envKeyTransport, cfg.Transport)
	cfg.Listen = envOr(envKeyListen, cfg.Listen)
	cfg.LogLevel = envOr(envKeyLogLevel, cfg.LogLevel)
	cfg.LogFormat = envOr(envKeyLogFormat, cfg.LogFormat)
	cfg.AuthSecret = envOr(envKeyAuthSecret, cfg.AuthSecret)

	if v := os.Getenv(envKeyTimeout); v != "" {
		timeout, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", envKeyTimeout, err)
		}
		cfg.Timeout = timeout
	}
	return cfg, nil
}

// Validate resolves the backend URL in place and checks the transport.
func (c *Config) Validate() error {
	url, err := ResolveBackendURL(c.URL)
	if err != nil {
		return err
	}
	c.URL = url

	switch c.Transport {
	case TransportStdio, TransportHTTP:
	default:
		return fmt.Errorf("%w %q (want %s or %s)", ErrUnknownTransport, c.Transport, TransportStdio, TransportHTTP)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative, got %s", c.Timeout)
	}
	return nil
}

// ResolveBackendURL returns raw with trailing "/" characters removed, so
// request paths can be appended without doubling the separator.
// The URL is otherwise not validated; a malformed value fails on first use.
func ResolveBackendURL(raw string) (string, error) {
	if raw == "" {
		return "", ErrMissingBackendURL
	}
	return strings.TrimRight(raw, "/"), nil
}

// envOr returns the value of the environment variable key, or fallback if not set.
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
