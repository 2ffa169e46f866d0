// Package config handles loading and validation of user configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Provider names accepted in the configuration file.
const (
	ProviderTravis        = "travis"
	ProviderGitHubActions = "github-actions"
)

var (
	errInvalidProvider = errors.New("invalid provider")
	errInvalidEndpoint = errors.New("invalid endpoint URL")

	// ErrInvalidProvider is returned when provider is neither travis nor github-actions.
	ErrInvalidProvider = errInvalidProvider
	// ErrInvalidEndpoint is returned when an endpoint override is not an absolute http(s) URL.
	ErrInvalidEndpoint = errInvalidEndpoint
)

// Config represents the complete configuration for ci-stats.
type Config struct {
	Provider string       `yaml:"provider"`
	Travis   TravisConfig `yaml:"travis"`
	GitHub   GitHubConfig `yaml:"github"`
}

// TravisConfig contains Travis CI specific configuration.
type TravisConfig struct {
	// Pro pre-answers the private repository question. Nil means ask.
	Pro      *bool  `yaml:"pro"`
	Endpoint string `yaml:"endpoint"`
}

// GitHubConfig contains GitHub Actions specific configuration.
type GitHubConfig struct {
	BaseURL string `yaml:"base_url"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{Provider: ProviderTravis}
}

// Path returns the location of the configuration file.
func Path() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "ci-stats", "config.yml"), nil
}

// Load reads the configuration file from the user's home directory.
// A missing file yields the defaults.
func Load() (*Config, error) {
	configPath, err := Path()
	if err != nil {
		return nil, err
	}
	return LoadFile(configPath)
}

// LoadFile reads and validates the configuration at configPath.
func LoadFile(configPath string) (*Config, error) {
	// #nosec G304 - Reading config from user's home directory is intentional
	data, err := os.ReadFile(configPath)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	config.normalize()
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

func (c *Config) normalize() {
	c.Provider = strings.ToLower(strings.TrimSpace(c.Provider))
	if c.Provider == "" {
		c.Provider = ProviderTravis
	}
	c.Travis.Endpoint = strings.TrimSpace(c.Travis.Endpoint)
	c.GitHub.BaseURL = strings.TrimSpace(c.GitHub.BaseURL)
}

// Validate checks the provider name and endpoint overrides.
func (c *Config) Validate() error {
	switch c.Provider {
	case ProviderTravis, ProviderGitHubActions:
	default:
		return fmt.Errorf("%w: %q", errInvalidProvider, c.Provider)
	}

	if err := validateEndpoint("travis.endpoint", c.Travis.Endpoint); err != nil {
		return err
	}
	return validateEndpoint("github.base_url", c.GitHub.BaseURL)
}

func validateEndpoint(field, endpoint string) error {
	if endpoint == "" {
		return nil
	}
	u, err := url.Parse(endpoint)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("%w: %s: %q", errInvalidEndpoint, field, endpoint)
	}
	return nil
}
