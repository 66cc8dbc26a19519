package config

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

const (
	DefaultInputPath     = "../string_analysis.csv"
	DefaultPointFraction = 0.2
	DefaultStep          = 1.0
	DefaultHeight        = 12
	DefaultTheme         = "cyberpunk"
)

// ThemeNames lists the themes the viewer can draw with, in cycle order.
var ThemeNames = []string{"cyberpunk", "retro", "minimal", "ocean", "sunset"}

// Config holds everything the viewer and extractor need besides the data.
type Config struct {
	// InputPath is the snapshot file to load.
	InputPath string `yaml:"input" toml:"input"`
	// PointFraction picks the extraction point as int(points * PointFraction).
	PointFraction float64 `yaml:"point_fraction" toml:"point_fraction"`
	// PairedMode reads lines as alternating displacement/companion snapshots.
	PairedMode bool `yaml:"paired" toml:"paired"`
	// Step is how far one key press moves the time control.
	Step float64 `yaml:"step" toml:"step"`
	// Width of each plot in columns; 0 follows the terminal.
	Width int `yaml:"width" toml:"width"`
	// Height of each plot in rows.
	Height int    `yaml:"height" toml:"height"`
	Theme  string `yaml:"theme" toml:"theme"`
}

func DefaultConfig() *Config {
	return &Config{
		InputPath:     DefaultInputPath,
		PointFraction: DefaultPointFraction,
		PairedMode:    true,
		Step:          DefaultStep,
		Height:        DefaultHeight,
		Theme:         DefaultTheme,
	}
}

// Load reads a config file over the defaults. Files ending in .toml are
// decoded as TOML, anything else as YAML.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects values the viewer or extractor cannot work with.
func (c *Config) Validate() error {
	if c.InputPath == "" {
		return fmt.Errorf("config: input path is empty")
	}
	if math.IsNaN(c.PointFraction) || c.PointFraction < 0 || c.PointFraction >= 1 {
		return fmt.Errorf("config: point_fraction %v outside [0, 1)", c.PointFraction)
	}
	if !(c.Step > 0) || math.IsInf(c.Step, 0) {
		return fmt.Errorf("config: step %v must be positive", c.Step)
	}
	if c.Width < 0 {
		return fmt.Errorf("config: width %d is negative", c.Width)
	}
	if c.Height < 2 {
		return fmt.Errorf("config: height %d is below 2", c.Height)
	}
	if !slices.Contains(ThemeNames, c.Theme) {
		return fmt.Errorf("config: unknown theme %q (available: %v)", c.Theme, ThemeNames)
	}
	return nil
}
