package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// userConfigFile is the name of the user configuration file (sibling to .maze/).
	userConfigFile = ".mazeconfig.yaml"

	// Default configuration values
	DefaultRender       = "dump"
	DefaultPathGlyph    = "*"
	DefaultOpenGlyph    = "."
	DefaultBlockedGlyph = "#"
	DefaultColor        = "auto"
	DefaultLogLevel     = ""
)

// Config represents user configuration from .mazeconfig.yaml.
// This file is user-managed and never written by maze.
type Config struct {
	// Render selects how `maze solve` prints a found path: dump or overlay.
	Render string `yaml:"render"`

	// PathGlyph, OpenGlyph and BlockedGlyph are used by the overlay renderer.
	PathGlyph    string `yaml:"path_glyph"`
	OpenGlyph    string `yaml:"open_glyph"`
	BlockedGlyph string `yaml:"blocked_glyph"`

	// Color is auto, always or never.
	Color string `yaml:"color"`

	// LogLevel is a logrus level name; empty defers to LOG_LEVEL.
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Render:       DefaultRender,
		PathGlyph:    DefaultPathGlyph,
		OpenGlyph:    DefaultOpenGlyph,
		BlockedGlyph: DefaultBlockedGlyph,
		Color:        DefaultColor,
		LogLevel:     DefaultLogLevel,
	}
}

// LoadConfig loads .mazeconfig.yaml from dir if it exists, otherwise
// returns defaults. Partial config files are merged with defaults.
// It does not require a .maze/ library, so one-off solves can use it too.
func LoadConfig(dir string) (*Config, error) {
	configPath := filepath.Join(dir, userConfigFile)

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", userConfigFile, err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", userConfigFile, err)
	}

	return cfg, nil
}

// LoadConfig loads the user config next to this library's .maze/ directory.
func (s *Storage) LoadConfig() (*Config, error) {
	return LoadConfig(s.root)
}

// ConfigPath returns the path to the user config file.
func (s *Storage) ConfigPath() string {
	return filepath.Join(s.root, userConfigFile)
}

// Validate reports the first unusable setting, naming the config file.
func (c *Config) Validate() error {
	switch c.Render {
	case "dump", "overlay":
	default:
		return fmt.Errorf("%s: render must be dump or overlay, got %q", userConfigFile, c.Render)
	}
	switch c.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("%s: color must be auto, always or never, got %q", userConfigFile, c.Color)
	}
	for key, glyph := range map[string]string{
		"path_glyph":    c.PathGlyph,
		"open_glyph":    c.OpenGlyph,
		"blocked_glyph": c.BlockedGlyph,
	} {
		if glyph == "" {
			return fmt.Errorf("%s: %s must not be empty", userConfigFile, key)
		}
	}
	return nil
}
