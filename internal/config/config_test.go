package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, DefaultWidth, cfg.Display.Width)
	assert.Equal(t, DefaultMarginX, cfg.Display.MarginX)
	assert.Equal(t, DefaultMarginY, cfg.Display.MarginY)
	assert.Equal(t, DefaultGap, cfg.Display.Gap)
	assert.Equal(t, DefaultAutohide, cfg.Behavior.Autohide)
	assert.Equal(t, "default", cfg.Theme.Name)
	assert.False(t, cfg.Sound.Enabled)
	require.NoError(t, cfg.Validate())
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultWidth, cfg.Display.Width)
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	data := []byte(`
[display]
width = 50
gap = 2

[behavior]
autohide = "3s"

[theme]
name = "midnight"

[sound]
enabled = true
volume = 0.5

[sound.files]
error = "/sounds/error.wav"
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 50, cfg.Display.Width)
	assert.Equal(t, 2, cfg.Display.Gap)
	// Unset fields keep defaults.
	assert.Equal(t, DefaultMarginX, cfg.Display.MarginX)
	assert.Equal(t, "midnight", cfg.Theme.Name)
	assert.Equal(t, 3*time.Second, cfg.AutohideDelay())
	assert.Equal(t, "/sounds/error.wav", cfg.SoundFor("error"))
}

func TestLoadConfig_InvalidTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[display\nwidth="), 0o644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[display]\nwidth = -4\n"), 0o644))

	_, err := LoadConfig(path)
	assert.ErrorIs(t, err, ErrInvalidWidth)
}

func TestAutohideDelay_InvalidFallsBack(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Behavior.Autohide = "not-a-duration"
	assert.Equal(t, 5*time.Second, cfg.AutohideDelay())

	cfg.Behavior.Autohide = "-2s"
	assert.Equal(t, 5*time.Second, cfg.AutohideDelay())
}

func TestSoundFor(t *testing.T) {
	cfg := DefaultConfig()

	// Disabled: never a sound.
	cfg.Sound.Files["error"] = "/x.wav"
	assert.Empty(t, cfg.SoundFor("error"))

	cfg.Sound.Enabled = true
	assert.Equal(t, "/x.wav", cfg.SoundFor("error"))

	// Unmapped role falls back to the default sound.
	cfg.Sound.Default = "/default.wav"
	assert.Equal(t, "/default.wav", cfg.SoundFor("info"))
}
