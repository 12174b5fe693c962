package utils

import (
	"encoding/json"
	"github.com/pkg/errors"
	"os"
	"time"
)

// Initial patterns understood by Config.Pattern
const (
	PatternMixed   = "mixed"
	PatternRandom  = "random"
	PatternGlider  = "glider"
	PatternBlinker = "blinker"
)

// Config holds the configuration for the game
type Config struct {
	Rows                int           `json:"rows"`
	Cols                int           `json:"cols"`
	FrameRate           time.Duration `json:"frame_rate"`
	MaxGenerations      int           `json:"max_generations"`
	RandomDensity       float64       `json:"random_density"`
	Seed                int64         `json:"seed"`
	Pattern             string        `json:"pattern"`
	PatternFile         string        `json:"pattern_file"`
	UseParallel         bool          `json:"use_parallel"`
	UseMemoryPool       bool          `json:"use_memory_pool"`
	UseBoundedGrid      bool          `json:"use_bounded_grid"`
	AutoRestart         bool          `json:"auto_restart"`
	StagnationThreshold int           `json:"stagnation_threshold"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Rows:                30,
		Cols:                60,
		FrameRate:           150 * time.Millisecond,
		MaxGenerations:      1000,
		RandomDensity:       0.15,
		Seed:                1,
		Pattern:             PatternMixed,
		UseParallel:         true,
		UseMemoryPool:       true,
		UseBoundedGrid:      false,
		AutoRestart:         true,
		StagnationThreshold: 5,
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

	if err = config.Validate(); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] invalid configuration in file: %+v", filename)
	}

	return config, nil
}

// Validate checks the configuration for values the game cannot run with
func (c Config) Validate() error {
	switch {
	case c.Rows < 0 || c.Cols < 0:
		return errors.Errorf("[Validate] grid dimensions must not be negative: %dx%d", c.Rows, c.Cols)
	case c.RandomDensity < 0 || c.RandomDensity > 1:
		return errors.Errorf("[Validate] random density must be within [0, 1]: %v", c.RandomDensity)
	case c.FrameRate < 0:
		return errors.Errorf("[Validate] frame rate must not be negative: %v", c.FrameRate)
	case c.MaxGenerations < 0:
		return errors.Errorf("[Validate] max generations must not be negative: %d", c.MaxGenerations)
	}

	switch c.Pattern {
	case PatternMixed, PatternRandom, PatternGlider, PatternBlinker:
		return nil
	default:
		return errors.Errorf("[Validate] unknown pattern: %q", c.Pattern)
	}
}
