package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mwalczyk/stencil"
	"gopkg.in/yaml.v3"
)

// Config contains the program's settings.
type Config struct {
	// DBPath is the SQLite database location.
	DBPath string `yaml:"db"`

	// Tolerance is the default tolerance for new templates.
	Tolerance int `yaml:"tolerance"`

	// Marker is the default display marker for holes.
	Marker string `yaml:"marker"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		DBPath:    defaultDBPath(),
		Tolerance: 0,
		Marker:    stencil.DefaultHoleMarker,
	}
}

// LoadConfig loads configuration from the default locations.
// Order: defaults -> ~/.stencil/config.yaml -> environment variables.
func LoadConfig() (*Config, error) {
	config := DefaultConfig()

	home, err := os.UserHomeDir()
	if err == nil {
		path := filepath.Join(home, ".stencil", "config.yaml")
		if _, statErr := os.Stat(path); statErr == nil {
			fileConfig, loadErr := LoadConfigFromFile(path)
			if loadErr != nil {
				return nil, fmt.Errorf("loading config file: %w", loadErr)
			}
			config = fileConfig
		}
	}

	if path := os.Getenv("STENCIL_DB"); path != "" {
		config.DBPath = path
	}

	return config, nil
}

// LoadConfigFromFile loads configuration from a specific YAML file.
// Fields absent from the file keep their defaults.
func LoadConfigFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.Tolerance < 0 {
		return fmt.Errorf("tolerance must be non-negative, got %d", c.Tolerance)
	}
	if c.Marker == "" {
		return fmt.Errorf("marker must not be empty")
	}
	return nil
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "stencil.db"
	}
	dir := filepath.Join(home, ".stencil")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "stencil.db")
}
