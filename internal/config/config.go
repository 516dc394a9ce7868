// Package config handles configuration file loading and parsing.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Default configuration values.
const (
	DefaultWidth    = 40
	DefaultMarginX  = 1
	DefaultMarginY  = 1
	DefaultGap      = 1
	DefaultAutohide = "5s"
	DefaultVolume   = 1.0
)

// Config represents the toastui configuration.
type Config struct {
	Display  DisplayConfig  `toml:"display"`
	Behavior BehaviorConfig `toml:"behavior"`
	Theme    ThemeConfig    `toml:"theme"`
	Sound    SoundConfig    `toml:"sound"`
}

// DisplayConfig holds card sizing and placement options.
type DisplayConfig struct {
	Width   int `toml:"width"`    // Card width in cells
	MarginX int `toml:"margin_x"` // Inset from the right edge
	MarginY int `toml:"margin_y"` // Inset from the top edge
	Gap     int `toml:"gap"`      // Vertical gap between cards
}

// BehaviorConfig holds lifecycle options.
type BehaviorConfig struct {
	Autohide string `toml:"autohide"` // Auto-dismiss delay, e.g. "5s"
}

// ThemeConfig selects the color theme.
type ThemeConfig struct {
	Name string `toml:"name"` // Theme name ("default" = built-in)
	Path string `toml:"path"` // Explicit theme file (overrides name)
}

// SoundConfig holds optional per-severity notification sounds.
type SoundConfig struct {
	Enabled bool              `toml:"enabled"`
	Volume  float64           `toml:"volume"`  // 0.0 to 1.0
	Files   map[string]string `toml:"files"`   // role -> sound file path
	Default string            `toml:"default"` // fallback sound for all roles
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Display: DisplayConfig{
			Width:   DefaultWidth,
			MarginX: DefaultMarginX,
			MarginY: DefaultMarginY,
			Gap:     DefaultGap,
		},
		Behavior: BehaviorConfig{
			Autohide: DefaultAutohide,
		},
		Theme: ThemeConfig{
			Name: "default",
		},
		Sound: SoundConfig{
			Enabled: false,
			Volume:  DefaultVolume,
			Files:   make(map[string]string),
		},
	}
}

// ConfigPath returns the path to the config file.
// Uses XDG_CONFIG_HOME if set, otherwise ~/.config.
func ConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "toastui", "config.toml")
}

// ThemesDir returns the directory holding user theme files.
func ThemesDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "toastui", "themes")
}

// LoadConfig loads configuration from the specified path.
// If path is empty, uses the default config path.
// Returns default config if file doesn't exist.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = ConfigPath()
	}

	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// AutohideDelay parses the configured autohide delay.
// Invalid or empty values fall back to the default.
func (c *Config) AutohideDelay() time.Duration {
	d, err := time.ParseDuration(c.Behavior.Autohide)
	if err != nil || d <= 0 {
		d, _ = time.ParseDuration(DefaultAutohide)
	}
	return d
}

// SoundFor returns the sound file for a semantic role, or empty if none is
// configured.
func (c *Config) SoundFor(role string) string {
	if !c.Sound.Enabled {
		return ""
	}
	if path, ok := c.Sound.Files[role]; ok && path != "" {
		return path
	}
	return c.Sound.Default
}

// Validation errors.
var (
	ErrInvalidWidth  = errors.New("display.width must be positive")
	ErrInvalidVolume = errors.New("sound.volume must be between 0 and 1")
)

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.Display.Width <= 0 {
		return ErrInvalidWidth
	}
	if c.Sound.Volume < 0 || c.Sound.Volume > 1 {
		return ErrInvalidVolume
	}
	return nil
}
