// Package config reads the optional patterns.yaml run configuration.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the optional patterns.yaml configuration: which demos a
// bare "patterns run" replays, and how.
type Config struct {
	// Demos lists catalog names to run. Empty means the whole catalog.
	Demos []string `yaml:"demos,omitempty"`
	// Parallel renders demos concurrently (output order is unchanged).
	Parallel bool `yaml:"parallel,omitempty"`
	// NoHeaders suppresses the separator line between demos.
	NoHeaders bool `yaml:"no_headers,omitempty"`
}

// LoadOptional reads path if present. A missing file is not an error: it
// yields the zero Config, meaning "run everything, sequentially".
func LoadOptional(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}

		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return &cfg, nil
}
