// Package config loads the calculator's settings from a YAML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Theme holds the keypad colors as lipgloss color strings, either ANSI
// numbers like "62" or hex like "#5f5fd7".
type Theme struct {
	Accent   string `yaml:"accent"`
	Button   string `yaml:"button"`
	Operator string `yaml:"operator"`
	Display  string `yaml:"display"`
	Error    string `yaml:"error"`
}

// Config is the calculator configuration.
type Config struct {
	// Prec is the precision in bits for ^ and √, or 0 for float64 math.
	Prec     uint   `yaml:"prec"`
	LogLevel string `yaml:"log_level"` // debug, info, warn, error, none
	LogFile  string `yaml:"log_file"`
	// Mouse enables clicking keypad buttons.
	Mouse bool  `yaml:"mouse"`
	Theme Theme `yaml:"theme"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "none",
		Mouse:    true,
		Theme: Theme{
			Accent:   "205",
			Button:   "240",
			Operator: "62",
			Display:  "252",
			Error:    "196",
		},
	}
}

// DefaultPath returns the configuration file path under the user's config
// directory, or the empty string if there is none.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "deskcalc", "config.yaml")
}

// Load reads the configuration at path. Settings missing from the file keep
// their defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// MaxPrec is the largest precision accepted for calculations.
const MaxPrec = 4096

// Validate checks settings that would otherwise fail later.
func (c *Config) Validate() error {
	if c.Prec > MaxPrec {
		return fmt.Errorf("prec %d exceeds %d bits", c.Prec, MaxPrec)
	}
	return nil
}

// Save writes the configuration to path, creating its directory.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
