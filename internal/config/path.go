// Package config loads homeserve settings and resolves the paths they name.
package config

import (
	"os"
	"path/filepath"
	"strings"
)

// AppName is the directory name used under the user's config directory.
const AppName = "homeserve"

// Dir is where the config file and the UI log live: ~/.config/homeserve.
// It falls back to a relative directory when the home directory is unknown.
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".config", AppName)
	}
	return filepath.Join(home, ".config", AppName)
}

// ExpandPath resolves a leading ~ to the home directory and then expands
// $VAR references.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}

	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = home + strings.TrimPrefix(path, "~")
		}
	}

	return filepath.Clean(os.ExpandEnv(path))
}
