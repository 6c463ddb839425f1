// Package config provides YAML-based configuration loading for Taproom.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the top-level Taproom configuration, loaded from tap.yaml.
type Config struct {
	Units    string        `yaml:"units"`
	Storage  StorageConfig `yaml:"storage"`
	SeedFile string        `yaml:"seed_file"`
}

// StorageConfig selects the storage driver backing the tracker.
type StorageConfig struct {
	Driver string `yaml:"driver"` // memory or sqlite
}

// Load reads a YAML config file from path and returns a validated Config.
// A missing file is not an error: the tracker runs on pure defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := &Config{}
			cfg.applyDefaults()
			return cfg, nil
		}
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse unmarshals YAML bytes into a validated Config.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyDefaults fills in default values.
func (c *Config) applyDefaults() {
	if c.Units == "" {
		c.Units = "gallons"
	}
	if c.Storage.Driver == "" {
		c.Storage.Driver = "memory"
	}
}

// validate checks that all fields are consistent.
func (c *Config) validate() error {
	var errs []string
	switch c.Storage.Driver {
	case "memory", "sqlite":
	default:
		errs = append(errs, fmt.Sprintf("storage.driver %q is not one of memory, sqlite", c.Storage.Driver))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}
