package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/zonelife/model"
)

// ErrInvalidConfiguration is the cause of every validation failure
var ErrInvalidConfiguration = model.ErrInvalidConfiguration

// Config holds the configuration for the simulation
type Config struct {
	GridSize        model.Size    `json:"grid_size"`
	ZoneSize        model.Size    `json:"zone_size"` // accepted but not used for zoning
	ReverseInterval int           `json:"reverse_interval"`
	UpdateInterval  time.Duration `json:"update_interval"`
	Pattern         string        `json:"pattern"`
	PatternFile     string        `json:"pattern_file"`
	Viewport        model.Size    `json:"viewport"`
	MaxGenerations  int           `json:"max_generations"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		GridSize:        model.Size{W: 40, H: 40},
		ZoneSize:        model.Size{W: 20, H: 20},
		ReverseInterval: 5,
		UpdateInterval:  50 * time.Millisecond,
		Pattern:         "r-pentomino",
		MaxGenerations:  0, // run until stopped
	}
}

// LoadConfig loads configuration from JSON file, layered over the defaults
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	if err = config.Validate(); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] rejected file: %+v", filename)
	}

	return config, nil
}

// Validate rejects settings the simulation cannot run with
func (c Config) Validate() error {
	if c.ReverseInterval <= 0 {
		return errors.Wrapf(ErrInvalidConfiguration, "reverse_interval must be positive, got %d", c.ReverseInterval)
	}
	if c.UpdateInterval <= 0 {
		return errors.Wrapf(ErrInvalidConfiguration, "update_interval must be positive, got %s", c.UpdateInterval)
	}
	if c.Viewport.W < 0 || c.Viewport.H < 0 {
		return errors.Wrapf(ErrInvalidConfiguration, "viewport must not be negative, got %dx%d", c.Viewport.W, c.Viewport.H)
	}
	if c.MaxGenerations < 0 {
		return errors.Wrapf(ErrInvalidConfiguration, "max_generations must not be negative, got %d", c.MaxGenerations)
	}
	return nil
}

// LoadPattern resolves the starting pattern: a pattern file wins over a built-in name
func (c Config) LoadPattern() (model.Pattern, error) {
	if c.PatternFile != "" {
		return model.LoadPattern(c.PatternFile)
	}
	p, err := model.PatternByName(c.Pattern)
	if err != nil {
		return model.Pattern{}, errors.Wrap(err, "[Config.LoadPattern]")
	}
	return p, nil
}
