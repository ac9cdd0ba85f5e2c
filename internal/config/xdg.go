// Package config provides XDG path helpers.
package config

import (
	"os"
	"path/filepath"
)

const appName = "muniquiz"

// XDGConfigHome returns the XDG config home or a default fallback.
func XDGConfigHome() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".config")
}

// DefaultConfigPath returns the default TOML config path.
func DefaultConfigPath() string {
	return filepath.Join(XDGConfigHome(), appName, "config.toml")
}

// DefaultFactsDir returns the directory searched for named fact sets.
func DefaultFactsDir() string {
	return filepath.Join(XDGConfigHome(), appName, "facts")
}

// ResolveFactsPath expands a bare fact set name (no directory, no extension)
// to a .tsv file under DefaultFactsDir. Other values are returned unchanged.
func ResolveFactsPath(value string) string {
	if value == "" || filepath.Base(value) != value || filepath.Ext(value) != "" {
		return value
	}
	return filepath.Join(DefaultFactsDir(), value+".tsv")
}
