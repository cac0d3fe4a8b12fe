package ratelimit

import (
	"os"
	"strconv"
	"time"
)

// EndpointConfig is the rate limit for one route. A Limit of zero or less
// means unlimited.
type EndpointConfig struct {
	Path   string
	Method string
	Limit  int           // Requests per Window
	Window time.Duration
	Burst  int           // Burst capacity; defaults to Limit
}

// Config holds limiter configuration.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	Endpoints       []EndpointConfig
}

// DefaultConfig returns the built-in limits. Extraction-backed analysis is
// the expensive tier: every request fans out into several LLM calls.
func DefaultConfig() *Config {
	return &Config{
		Enabled:         true,
		DefaultLimit:    300,
		DefaultWindow:   time.Minute,
		CleanupInterval: 5 * time.Minute,
		Endpoints: []EndpointConfig{
			{Path: "/analyze-gap-from-text", Method: "POST", Limit: 20, Window: time.Hour, Burst: 5},
			{Path: "/analyze-gap", Method: "POST", Limit: 60, Window: time.Minute, Burst: 10},
			{Path: "/text-input", Method: "POST", Limit: 60, Window: time.Minute, Burst: 10},
			{Path: "/health", Method: "GET", Limit: 0},
		},
	}
}

// LoadConfig builds a Config from environment variables, falling back to the
// built-in defaults for anything unset.
func LoadConfig() *Config {
	config := DefaultConfig()

	config.Enabled = envBool("RATE_LIMIT_ENABLED", config.Enabled)
	if !config.Enabled {
		return &Config{Enabled: false}
	}

	config.DefaultLimit = envInt("RATE_LIMIT_DEFAULT_LIMIT", config.DefaultLimit)
	config.DefaultWindow = envDuration("RATE_LIMIT_DEFAULT_WINDOW", config.DefaultWindow)
	config.CleanupInterval = envDuration("RATE_LIMIT_CLEANUP_INTERVAL", config.CleanupInterval)

	return config
}

// endpointFor returns the limit for an exact path and method match, or a
// default-limit entry when no route-specific config exists.
func (c *Config) endpointFor(path, method string) *EndpointConfig {
	for i := range c.Endpoints {
		endpoint := &c.Endpoints[i]
		if endpoint.Path == path && endpoint.Method == method {
			return endpoint
		}
	}
	return &EndpointConfig{
		Limit:  c.DefaultLimit,
		Window: c.DefaultWindow,
	}
}

func envBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return fallback
}
