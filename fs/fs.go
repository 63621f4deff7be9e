// Package fs resolves the well-known filesystem locations used by diffdoc.
package fs

import (
	"os"
	"path/filepath"
)

// DefaultConfigPath returns the default location of the config file.
// Uses XDG_CONFIG_HOME if set, otherwise falls back to ~/.config/diffdoc.
func DefaultConfigPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "diffdoc", "config.json")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "diffdoc", "config.json")
}

// DefaultOutputPath returns the report path used when none is given,
// relative to the repository directory.
func DefaultOutputPath(dir string) string {
	return filepath.Join(dir, "changes.md")
}
