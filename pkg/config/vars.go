package config

import (
	"path/filepath"
)

var (
	// AppName is used in generating file system paths.
	AppName = "pokedb"

	// DefaultBaseURL is the public catalog endpoint of a single entry.
	DefaultBaseURL = "https://pokeapi.co/api/v2/pokemon/"

	// DefaultTotal is the number of catalog entries ingested by default.
	DefaultTotal = 251
)

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/pokedb by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// LogDir returns the directory path for log files.
// Returns ~/.local/share/pokedb/logs by default.
func LogDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName, "logs")
}

// ConfigFilePath returns the full path to the config.yaml file.
// Returns ~/.config/pokedb/config.yaml by default.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "config.yaml")
}
