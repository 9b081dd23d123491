// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Catalog string `json:"catalog,omitempty"` // Path to a static course catalog JSON file

	// User Info
	CurrentRole string   `json:"current_role,omitempty"` // Current role title
	TargetRole  string   `json:"target_role,omitempty"`  // Target role title
	Skills      []string `json:"skills,omitempty"`       // Current skills

	// Limits
	MaxCourses  int `json:"max_courses,omitempty"`  // Maximum courses to recommend
	MaxPostings int `json:"max_postings,omitempty"` // Maximum job postings to analyze

	// Behavior
	APIKey       string `json:"api_key,omitempty"`        // Gemini API key
	SearchAPIKey string `json:"search_api_key,omitempty"` // Google Custom Search API key
	SearchCX     string `json:"search_cx,omitempty"`      // Google Custom Search engine ID
	UseBrowser   bool   `json:"use_browser,omitempty"`    // Use headless browser for SPA job boards
	Verbose      bool   `json:"verbose,omitempty"`        // Print detailed debug information
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
	if c.MaxCourses < 0 {
		return fmt.Errorf("config error: 'max_courses' must be non-negative")
	}
	if c.MaxPostings < 0 {
		return fmt.Errorf("config error: 'max_postings' must be non-negative")
	}

	// Validate file paths exist (if specified)
	if c.Catalog != "" {
		if _, err := os.Stat(c.Catalog); os.IsNotExist(err) {
			return fmt.Errorf("config error: catalog file not found: %s", c.Catalog)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty string fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Catalog == "" {
		result.Catalog = defaults.Catalog
	}
	if result.CurrentRole == "" {
		result.CurrentRole = defaults.CurrentRole
	}
	if result.TargetRole == "" {
		result.TargetRole = defaults.TargetRole
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.SearchAPIKey == "" {
		result.SearchAPIKey = defaults.SearchAPIKey
	}
	if result.SearchCX == "" {
		result.SearchCX = defaults.SearchCX
	}

	// Slice fields: use default if unset
	if len(result.Skills) == 0 {
		result.Skills = defaults.Skills
	}

	// Int fields: use default if zero
	if result.MaxCourses == 0 {
		result.MaxCourses = defaults.MaxCourses
	}
	if result.MaxPostings == 0 {
		result.MaxPostings = defaults.MaxPostings
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
