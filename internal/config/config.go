// Package config loads curveterm settings. Configuration is a small YAML
// file; every field has a sensible default so a missing or partial file is
// fine. Environment variables override a handful of UI settings.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"curveterm/internal/chart"
)

// Config holds all curveterm configuration.
type Config struct {
	// Chart geometry defaults used when flags don't override them.
	Chart ChartConfig `yaml:"chart"`

	// UI appearance.
	UI UIConfig `yaml:"ui"`
}

// ChartConfig configures default chart geometry.
type ChartConfig struct {
	Points int `yaml:"points"`
	Height int `yaml:"height"`
}

// UIConfig configures terminal appearance and profile discovery.
type UIConfig struct {
	Theme        string `yaml:"theme"` // light, dark, auto
	NoColor      bool   `yaml:"no_color"`
	ProfilesPath string `yaml:"profiles_path"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Chart: ChartConfig{
			Points: chart.DefaultPoints,
			Height: chart.DefaultHeight,
		},
		UI: UIConfig{
			Theme:        "auto",
			ProfilesPath: defaultProfilesPath(),
		},
	}
}

// Load reads the configuration at path, merging it over the defaults. A
// missing file returns the defaults without error. Environment overrides
// (CURVETERM_THEME, NO_COLOR) are applied last.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// Defaults only.
	case err != nil:
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if cfg.Chart.Points < 2 {
		return Config{}, fmt.Errorf("config %s: chart.points must be at least 2", path)
	}
	if cfg.Chart.Height < 2 {
		return Config{}, fmt.Errorf("config %s: chart.height must be at least 2", path)
	}

	if theme := os.Getenv("CURVETERM_THEME"); theme != "" {
		cfg.UI.Theme = theme
	}
	if os.Getenv("NO_COLOR") != "" {
		cfg.UI.NoColor = true
	}
	return cfg, nil
}

// DefaultPath returns the conventional config file location.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".curveterm", "config.yaml")
	}
	return filepath.Join(home, ".curveterm", "config.yaml")
}

func defaultProfilesPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".curveterm", "profiles.yaml")
	}
	return filepath.Join(home, ".curveterm", "profiles.yaml")
}
