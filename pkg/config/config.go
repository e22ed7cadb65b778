// Package config handles loading and saving tdv configuration.
//
// Configuration follows the XDG Base Directory specification:
//   - Config: ~/.config/tdv/config.yaml
//   - State:  ~/.local/state/tdv/ (custom tab layouts)
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DataConfig controls where records come from.
type DataConfig struct {
	RecordsPath  string `yaml:"records_path,omitempty"`  // JSON records file
	SnapshotPath string `yaml:"snapshot_path,omitempty"` // SQLite snapshot
	Seed         int64  `yaml:"seed,omitempty"`          // Generator seed (0 = default)
	Watch        bool   `yaml:"watch,omitempty"`         // Reload records_path on change
}

// UIConfig holds UI preference settings.
type UIConfig struct {
	DefaultTab      string `yaml:"default_tab,omitempty"`      // overview, funnel, showrooms, demographics, channels
	DefaultDateDays int    `yaml:"default_date_days,omitempty"` // Initial date window; 0 = unconstrained
}

// Config is the top-level configuration for tdv.
type Config struct {
	Data DataConfig `yaml:"data,omitempty"`
	UI   UIConfig   `yaml:"ui,omitempty"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Data: DataConfig{Watch: true},
		UI:   UIConfig{DefaultTab: "overview"},
	}
}

// ConfigDir returns the XDG config directory for tdv.
func ConfigDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "tdv")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "tdv")
}

// StateDir returns the XDG state directory for tdv.
func StateDir() string {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, "tdv")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".local", "state", "tdv")
}

// ConfigPath returns the full path to config.yaml.
func ConfigPath() string {
	dir := ConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.yaml")
}

// Load reads the config file from the XDG config directory.
// Returns DefaultConfig if the file doesn't exist.
func Load() (Config, error) {
	path := ConfigPath()
	if path == "" {
		return DefaultConfig(), nil
	}
	return LoadFrom(path)
}

// LoadFrom reads config from a specific path.
// Returns DefaultConfig if the file doesn't exist.
func LoadFrom(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Save writes the config to the XDG config directory.
func Save(cfg Config) error {
	path := ConfigPath()
	if path == "" {
		return fmt.Errorf("cannot determine config directory")
	}
	return SaveTo(cfg, path)
}

// SaveTo writes the config to a specific path.
func SaveTo(cfg Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
