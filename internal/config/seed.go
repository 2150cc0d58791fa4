package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Seed is the initial content loaded at startup from SEED_FILE
type Seed struct {
	Locations []string   `yaml:"locations"`
	Items     []SeedItem `yaml:"items"`
}

// SeedItem describes one initial item. Location refers to a location by name.
type SeedItem struct {
	Name           string `yaml:"name"`
	FoodType       string `yaml:"food_type"`
	Brand          string `yaml:"brand"`
	ExpirationDate string `yaml:"expiration_date"`
	Quantity       int    `yaml:"quantity"`
	Unit           string `yaml:"unit"`
	Location       string `yaml:"location"`
}

// LoadSeed reads a YAML seed file
func LoadSeed(path string) (*Seed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var seed Seed
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}
	return &seed, nil
}
