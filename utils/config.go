package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

const (
	RendererScreen   = "screen"
	RendererTerminal = "terminal"
)

// Config holds the configuration for the game
type Config struct {
	Size                int           `json:"size"`
	FrameRate           time.Duration `json:"frame_rate"`
	RandomDensity       float64       `json:"random_density"`
	SeedPatterns        bool          `json:"seed_patterns"`
	Seed                int64         `json:"seed"`
	MaxGenerations      int           `json:"max_generations"`
	AutoRestart         bool          `json:"auto_restart"`
	StagnationThreshold int           `json:"stagnation_threshold"`
	UseMemoryPool       bool          `json:"use_memory_pool"`
	Renderer            string        `json:"renderer"`
	CellWidth           int           `json:"cell_width"`
	CellHeight          int           `json:"cell_height"`
	GridLines           bool          `json:"grid_lines"`
	LogFile             string        `json:"log_file"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Size:                50,
		FrameRate:           150 * time.Millisecond,
		RandomDensity:       0.2,
		SeedPatterns:        false,
		Seed:                0, // 0 seeds from the clock
		MaxGenerations:      0, // 0 runs until interrupted
		AutoRestart:         true,
		StagnationThreshold: 5,
		UseMemoryPool:       true,
		Renderer:            RendererScreen,
		CellWidth:           2,
		CellHeight:          1,
		GridLines:           false,
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

// Validate reports the first setting that cannot drive a game
func (c Config) Validate() error {
	switch {
	case c.Size <= 0:
		return errors.Errorf("size must be positive, got %d", c.Size)
	case c.RandomDensity < 0 || c.RandomDensity > 1:
		return errors.Errorf("random_density must be within [0, 1], got %v", c.RandomDensity)
	case c.FrameRate < 0:
		return errors.Errorf("frame_rate must not be negative, got %v", c.FrameRate)
	case c.MaxGenerations < 0:
		return errors.Errorf("max_generations must not be negative, got %d", c.MaxGenerations)
	case c.StagnationThreshold <= 0:
		return errors.Errorf("stagnation_threshold must be positive, got %d", c.StagnationThreshold)
	case c.CellWidth <= 0 || c.CellHeight <= 0:
		return errors.Errorf("cell_width and cell_height must be positive, got %dx%d", c.CellWidth, c.CellHeight)
	case c.GridLines && (c.CellWidth < 2 || c.CellHeight < 2):
		return errors.Errorf("grid_lines needs cells of at least 2x2, got %dx%d", c.CellWidth, c.CellHeight)
	case c.Renderer != RendererScreen && c.Renderer != RendererTerminal:
		return errors.Errorf("unknown renderer %q", c.Renderer)
	}
	return nil
}
