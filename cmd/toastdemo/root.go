// Package main provides the CLI entrypoint for the toastui demo.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/toastui/internal/config"
	"github.com/jmylchreest/toastui/internal/theme"
	"github.com/jmylchreest/toastui/internal/tui"
)

// Build-time variables (set via ldflags)
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

// Global configuration and state
var (
	cfg        *config.Config
	globalOpts struct {
		verbose    bool
		configPath string
		themeName  string
	}
	logger *slog.Logger
)

// rootCmd represents the base command.
var rootCmd = &cobra.Command{
	Use:   "toastdemo",
	Short: "Interactive demo for the toastui notification widget",
	Long: `toastdemo is an interactive terminal playground for the toastui widget.

It shows stacked, auto-dismissing toast notifications anchored to the
top-right of the terminal: push toasts of each severity, update a toast in
place through its stable id, keep sticky toasts around until dismissed, and
watch click callbacks fire.`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildTime),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogger()

		var err error
		cfg, err = config.LoadConfig(globalOpts.configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if globalOpts.themeName != "" {
			cfg.Theme.Name = globalOpts.themeName
		}

		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		th, themePath, err := resolveTheme(cfg)
		if err != nil {
			return err
		}
		return tui.Run(cfg, th, logger, themePath)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&globalOpts.verbose, "verbose", "v", false,
		"enable debug logging")
	rootCmd.PersistentFlags().StringVar(&globalOpts.configPath, "config", "",
		"path to config file (default: XDG config dir)")
	rootCmd.PersistentFlags().StringVarP(&globalOpts.themeName, "theme", "t", "",
		"theme name or path to a theme file")
}

// resolveTheme loads the configured theme. Returns the theme and, for
// file-backed themes, the path to watch for hot reload.
func resolveTheme(cfg *config.Config) (*theme.Theme, string, error) {
	path := cfg.Theme.Path
	if path == "" {
		name := cfg.Theme.Name
		if name == "" || name == theme.DefaultThemeName {
			return theme.Default(), "", nil
		}
		// Treat the name as a file path first, then as a user theme.
		if _, err := os.Stat(name); err == nil {
			path = name
		} else {
			path = filepath.Join(config.ThemesDir(), name+".yaml")
		}
	}

	th, err := theme.Load(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load theme: %w", err)
	}
	return th, path, nil
}

// setupLogger configures the global slog logger.
func setupLogger() {
	level := slog.LevelWarn
	if globalOpts.verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	// Log to stderr so stdout stays clean for the TUI
	handler := slog.NewTextHandler(os.Stderr, opts)
	logger = slog.New(handler)
	slog.SetDefault(logger)
}
