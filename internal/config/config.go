// Package config provides viper-backed configuration for navstack: the
// navigation controller's tunables, logging, and the demo TUI.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config represents the complete navstack configuration
type Config struct {
	Nav     NavConfig     `mapstructure:"nav"`
	TUI     TUIConfig     `mapstructure:"tui"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// NavConfig controls the navigation controller
type NavConfig struct {
	// ReplaceRootDelayMs is the settle window before a requested root
	// replacement is staged, letting in-flight animations finish (default: 50)
	ReplaceRootDelayMs int `mapstructure:"replace_root_delay_ms"`
	// MaxDepth limits the stack depth; inserts past the limit are rejected.
	// Zero disables the limit.
	MaxDepth int `mapstructure:"max_depth"`
	// DefaultAnimation is the animation used for pushes that don't declare
	// one. Options: "none", "fade", "slide", "scale"
	DefaultAnimation string `mapstructure:"default_animation"`
	// DefaultGesture is the back-gesture capability assumed for views that
	// don't declare one. Options: "disabled", "edge_swipe", "full_surface"
	DefaultGesture string `mapstructure:"default_gesture"`
	// RejectDuplicateTop rejects pushes whose identity matches the current
	// top entry (guards against double-taps)
	RejectDuplicateTop bool `mapstructure:"reject_duplicate_top"`
}

// TUIConfig controls the demo TUI
type TUIConfig struct {
	// ShowStatusBar toggles the derived-state status bar at the bottom
	ShowStatusBar bool `mapstructure:"show_status_bar"`
	// MaxVisibleEntries limits how many stack entries are rendered; deeper
	// stacks elide from the root end. Zero shows everything.
	MaxVisibleEntries int `mapstructure:"max_visible_entries"`
}

// LoggingConfig controls structured logging
type LoggingConfig struct {
	// Level is the log level: "debug", "info", "warn", "error"
	Level string `mapstructure:"level"`
	// Dir is the directory the JSON log file is written to; empty logs to
	// stderr
	Dir string `mapstructure:"dir"`
}

// SetDefaults registers default values with viper. Call before reading the
// config file so defaults survive a missing file.
func SetDefaults() {
	viper.SetDefault("nav.replace_root_delay_ms", 50)
	viper.SetDefault("nav.max_depth", 0)
	viper.SetDefault("nav.default_animation", "slide")
	viper.SetDefault("nav.default_gesture", "edge_swipe")
	viper.SetDefault("nav.reject_duplicate_top", false)

	viper.SetDefault("tui.show_status_bar", true)
	viper.SetDefault("tui.max_visible_entries", 0)

	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.dir", "")
}

// Load unmarshals the effective viper state into a Config.
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ReplaceRootDelay returns the settle window as a duration.
func (c *NavConfig) ReplaceRootDelay() time.Duration {
	return time.Duration(c.ReplaceRootDelayMs) * time.Millisecond
}

// ConfigDir returns the directory navstack reads its config file from,
// honoring XDG_CONFIG_HOME.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "navstack")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", "navstack")
}
