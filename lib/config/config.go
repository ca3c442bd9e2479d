// Copyright 2026 The Catalog Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"time"

	"gopkg.in/yaml.v3"
)

// Environment variables consulted by Load.
const (
	EnvConfig      = "CATALOG_CONFIG"
	EnvServer      = "CATALOG_SERVER"
	EnvSessionFile = "CATALOG_SESSION_FILE"
)

// ColorModes lists the accepted values of output.color.
var ColorModes = []string{"auto", "always", "never"}

// Config is the master configuration for the catalog client.
type Config struct {
	// Server configures the remote catalog service.
	Server ServerConfig `yaml:"server"`

	// Listing configures how the hierarchy is fetched.
	Listing ListingConfig `yaml:"listing"`

	// Output configures terminal rendering.
	Output OutputConfig `yaml:"output"`

	// Session configures the persisted session file.
	Session SessionConfig `yaml:"session"`

	// Source is the file the configuration was read from, or empty
	// when only defaults were used.
	Source string `yaml:"-"`
}

// ServerConfig configures the remote catalog service.
type ServerConfig struct {
	// URL is the service root.
	// Default: http://localhost:8080
	URL string `yaml:"url"`

	// Timeout bounds each HTTP request.
	// Default: 60s
	Timeout time.Duration `yaml:"timeout"`
}

// ListingConfig configures how the hierarchy is fetched.
type ListingConfig struct {
	// PageSize is the number of collections requested per page.
	// Default: 100
	PageSize int `yaml:"page_size"`

	// FileDepth is how many directory levels a file lookup fetches
	// eagerly.
	// Default: 1
	FileDepth int `yaml:"file_depth"`
}

// OutputConfig configures terminal rendering.
type OutputConfig struct {
	// Color is one of auto, always, never.
	// Default: auto
	Color string `yaml:"color"`

	// TreeIndent is the per-level prefix of tree output.
	// Default: two spaces
	TreeIndent string `yaml:"tree_indent"`
}

// SessionConfig configures the persisted session file.
type SessionConfig struct {
	// Path is the CBOR session file.
	// Default: ${XDG_CONFIG_HOME}/catalog/session.cbor
	Path string `yaml:"path"`
}

// Dir returns the directory holding the default config and session
// files: $XDG_CONFIG_HOME/catalog, or ~/.config/catalog.
func Dir() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		homeDir, _ := os.UserHomeDir()
		base = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(base, "catalog")
}

// DefaultPath returns the config file used when neither a path nor
// CATALOG_CONFIG is given.
func DefaultPath() string {
	return filepath.Join(Dir(), "config.yaml")
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			URL:     "http://localhost:8080",
			Timeout: 60 * time.Second,
		},
		Listing: ListingConfig{
			PageSize:  100,
			FileDepth: 1,
		},
		Output: OutputConfig{
			Color:      "auto",
			TreeIndent: "  ",
		},
		Session: SessionConfig{
			Path: filepath.Join(Dir(), "session.cbor"),
		},
	}
}

// Load reads the configuration file at path, or the one named by
// CATALOG_CONFIG when path is empty, or the default location. It then
// applies environment overrides, expands path variables, and
// validates the result.
func Load(path string) (*Config, error) {
	required := true
	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	if path == "" {
		path = DefaultPath()
		required = false
	}

	cfg := Default()
	if err := cfg.loadFile(path); err != nil {
		if required || !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("loading config: %w", err)
		}
	} else {
		cfg.Source = path
	}

	cfg.applyEnvironment()
	cfg.expandVariables()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", displayPath(cfg.Source), err)
	}
	return cfg, nil
}

func displayPath(source string) string {
	if source == "" {
		return "(defaults)"
	}
	return source
}

// loadFile loads a single configuration file, merging into the current config.
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}

// applyEnvironment applies CATALOG_SERVER and CATALOG_SESSION_FILE.
func (c *Config) applyEnvironment() {
	if server := os.Getenv(EnvServer); server != "" {
		c.Server.URL = server
	}
	if sessionFile := os.Getenv(EnvSessionFile); sessionFile != "" {
		c.Session.Path = sessionFile
	}
}

// expandVariables expands ${VAR} and ${VAR:-default} patterns in paths.
func (c *Config) expandVariables() {
	homeDir, _ := os.UserHomeDir()
	vars := map[string]string{
		"HOME":        homeDir,
		"CATALOG_DIR": Dir(),
	}
	c.Session.Path = expandVars(c.Session.Path, vars)
}

// expandVars expands ${VAR} and ${VAR:-default} patterns.
var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

func expandVars(s string, vars map[string]string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		if len(parts) < 2 {
			return match
		}

		name := parts[1]
		defaultValue := ""
		if len(parts) >= 3 {
			defaultValue = parts[2]
		}

		// Check provided vars first, then environment.
		if value, ok := vars[name]; ok && value != "" {
			return value
		}
		if value := os.Getenv(name); value != "" {
			return value
		}
		return defaultValue
	})
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []error

	if c.Server.URL == "" {
		errs = append(errs, fmt.Errorf("server.url is required"))
	} else if parsed, err := url.Parse(c.Server.URL); err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		errs = append(errs, fmt.Errorf("server.url must be an http or https URL, got %q", c.Server.URL))
	}

	if c.Server.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("server.timeout must be positive, got %s", c.Server.Timeout))
	}

	if c.Listing.PageSize <= 0 {
		errs = append(errs, fmt.Errorf("listing.page_size must be positive, got %d", c.Listing.PageSize))
	}

	if c.Listing.FileDepth < 0 {
		errs = append(errs, fmt.Errorf("listing.file_depth must not be negative, got %d", c.Listing.FileDepth))
	}

	if !slices.Contains(ColorModes, c.Output.Color) {
		errs = append(errs, fmt.Errorf("output.color must be one of: %v", ColorModes))
	}

	if c.Session.Path == "" {
		errs = append(errs, fmt.Errorf("session.path is required"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}
