// Package config provides configuration loading and validation for the CLI
// and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Config represents configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Resume string `json:"resume,omitempty"` // Path to resume text file
	Job    string `json:"job,omitempty"`    // Path to job description text file

	// Behavior
	APIKey  string `json:"api_key,omitempty"` // Gemini API key
	Verbose bool   `json:"verbose,omitempty"` // Print detailed debug information

	// Scoring weight overrides (0 means unset; defaults apply)
	TechnicalWeight  float64 `json:"technical_weight,omitempty"`
	SoftSkillsWeight float64 `json:"soft_skills_weight,omitempty"`

	// Server
	Port       int    `json:"port,omitempty"`        // HTTP listen port
	SessionTTL string `json:"session_ttl,omitempty"` // Duration string, e.g. "1h"
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.TechnicalWeight < 0 {
		return fmt.Errorf("config error: 'technical_weight' must be non-negative")
	}
	if c.SoftSkillsWeight < 0 {
		return fmt.Errorf("config error: 'soft_skills_weight' must be non-negative")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}

	if c.SessionTTL != "" {
		if _, err := time.ParseDuration(c.SessionTTL); err != nil {
			return fmt.Errorf("config error: invalid 'session_ttl': %w", err)
		}
	}

	// Validate file paths exist (if specified)
	if c.Resume != "" {
		if _, err := os.Stat(c.Resume); os.IsNotExist(err) {
			return fmt.Errorf("config error: resume file not found: %s", c.Resume)
		}
	}
	if c.Job != "" {
		if _, err := os.Stat(c.Job); os.IsNotExist(err) {
			return fmt.Errorf("config error: job file not found: %s", c.Job)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Resume == "" {
		result.Resume = defaults.Resume
	}
	if result.Job == "" {
		result.Job = defaults.Job
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.SessionTTL == "" {
		result.SessionTTL = defaults.SessionTTL
	}

	// Numeric fields: use default if zero
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.TechnicalWeight == 0 {
		result.TechnicalWeight = defaults.TechnicalWeight
	}
	if result.SoftSkillsWeight == 0 {
		result.SoftSkillsWeight = defaults.SoftSkillsWeight
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// SessionTTLDuration parses the session TTL, returning zero when unset.
func (c *Config) SessionTTLDuration() time.Duration {
	if c.SessionTTL == "" {
		return 0
	}
	d, err := time.ParseDuration(c.SessionTTL)
	if err != nil {
		return 0
	}
	return d
}
