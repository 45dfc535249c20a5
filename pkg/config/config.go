// Package config loads user configuration and locates the per-directory
// state dir that holds the outline snapshot.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// StateDirName is the per-directory state directory, discovered by
// walking up from the working directory.
const StateDirName = ".ingrid"

// Config is the user-level configuration, read from
// ~/.config/ingrid/config.yaml. All fields are optional.
type Config struct {
	// StateDir overrides state dir discovery entirely.
	StateDir string `yaml:"state_dir,omitempty"`
	// Theme selects the color theme: "dark" (default) or "light".
	Theme string `yaml:"theme,omitempty"`
	// ExportTitle is the heading used for Markdown exports.
	ExportTitle string `yaml:"export_title,omitempty"`
}

// Default returns the configuration used when no config file exists.
func Default() Config {
	return Config{Theme: "dark", ExportTitle: "Outline"}
}

// Path returns the user config file path.
func Path() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(base, "ingrid", "config.yaml"), nil
}

// Load reads the user config, falling back to defaults when the file is
// missing. A malformed file is an error; silently ignoring it would hide
// typos from the user.
func Load() (Config, error) {
	cfg := Default()
	path, err := Path()
	if err != nil {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Theme == "" {
		cfg.Theme = "dark"
	}
	if cfg.ExportTitle == "" {
		cfg.ExportTitle = "Outline"
	}
	cfg.StateDir = expandHome(cfg.StateDir)
	return cfg, nil
}

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}
