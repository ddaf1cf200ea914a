// Package paths resolves the directories justcode stores its files in,
// following the XDG base directory conventions.
package paths

import (
	"os"
	"path/filepath"
)

const appDir = "justcode"

// ConfigDir returns the user configuration directory,
// $XDG_CONFIG_HOME/justcode or ~/.config/justcode.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appDir)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "."+appDir)
	}
	return filepath.Join(home, ".config", appDir)
}

// ConfigFile returns the default config file path.
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// DataDir returns the user data directory,
// $XDG_DATA_HOME/justcode or ~/.local/share/justcode.
func DataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, appDir)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "."+appDir)
	}
	return filepath.Join(home, ".local", "share", appDir)
}

// SessionDB returns the session database path, creating the data directory
// when missing.
func SessionDB() (string, error) {
	dir := DataDir()
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return "", err
	}
	return filepath.Join(dir, "sessions.db"), nil
}
