package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SeedKeg describes one keg in a seed file. Volume, when set, is the fill
// level after loading; a keg without it starts full.
type SeedKeg struct {
	BeerType string   `yaml:"beer_type"`
	Size     float64  `yaml:"size"`
	Location string   `yaml:"location"`
	Volume   *float64 `yaml:"volume"`
}

// Seed is a read-only startup inventory. It is loaded through the normal
// add/update operations and never written back.
type Seed struct {
	Kegs []SeedKeg `yaml:"kegs"`
}

// LoadSeed reads a YAML seed file from path.
func LoadSeed(path string) (*Seed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read seed %s: %w", path, err)
	}
	var seed Seed
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("config: parse seed %s: %w", path, err)
	}
	return &seed, nil
}
