package utils

import (
	"encoding/json"
	"github.com/pkg/errors"
	"os"
)

// Config holds the configuration for an evolution step run
type Config struct {
	InputPath     string `json:"input_path"`
	UseMemoryPool bool   `json:"use_memory_pool"`
	ShowStats     bool   `json:"show_stats"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		InputPath:     "grid.txt",
		UseMemoryPool: true,
		ShowStats:     false,
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}
