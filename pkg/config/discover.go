package config

import (
	"os"
	"path/filepath"
)

// DiscoverStateDir resolves the state directory for the current working
// directory: an explicit override wins, then the nearest .ingrid/ found
// walking up from cwd, then a fresh .ingrid/ in cwd.
func DiscoverStateDir(override string) string {
	if override != "" {
		return expandHome(override)
	}
	dir, err := os.Getwd()
	if err != nil {
		return StateDirName
	}
	if root, ok := findStateRoot(dir); ok {
		return filepath.Join(root, StateDirName)
	}
	return filepath.Join(dir, StateDirName)
}

// findStateRoot walks up from dir looking for a .ingrid/ directory. The
// walk stops at the home directory so unrelated outlines above it are
// never picked up.
func findStateRoot(dir string) (string, bool) {
	home, _ := os.UserHomeDir()

	for {
		stateDir := filepath.Join(dir, StateDirName)
		if info, err := os.Stat(stateDir); err == nil && info.IsDir() {
			return dir, true
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break // Reached filesystem root
		}
		if home != "" && dir == home {
			break
		}
		dir = parent
	}
	return "", false
}
