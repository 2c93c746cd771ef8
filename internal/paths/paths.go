// Package paths resolves the configuration directory and layout file
// locations used by the stockpile CLI.
package paths

import (
	"os"
	"path/filepath"
)

// Environment variable names for directory overrides.
const (
	EnvConfigDir = "STOCKPILE_CONFIG_DIR"
	EnvLayoutDir = "STOCKPILE_LAYOUT_DIR"
)

const appDir = "stockpile"

// userConfigDir is os.UserConfigDir; tests replace it.
var userConfigDir = os.UserConfigDir

// DefaultConfigDir returns the stockpile directory under the user's
// configuration root: $XDG_CONFIG_HOME or ~/.config on Linux,
// ~/Library/Application Support on macOS and %AppData% on Windows.
func DefaultConfigDir() (string, error) {
	root, err := userConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, appDir), nil
}

// ResolveConfigDir returns the absolute configuration directory. The flag
// value wins, then STOCKPILE_CONFIG_DIR, then DefaultConfigDir.
func ResolveConfigDir(flag string) (string, error) {
	for _, dir := range []string{flag, os.Getenv(EnvConfigDir)} {
		if dir != "" {
			return filepath.Abs(dir)
		}
	}
	return DefaultConfigDir()
}

// ResolveLayoutPath returns the absolute path of a layout argument.
//
// Absolute paths and paths that exist relative to the working directory are
// used as given. Otherwise the name is looked up in the layout directory:
// configValue (layout_dir in config.yaml) > STOCKPILE_LAYOUT_DIR env. With no
// layout directory the argument is made absolute against the working
// directory.
func ResolveLayoutPath(arg, configValue string) (string, error) {
	if filepath.IsAbs(arg) {
		return arg, nil
	}
	if _, err := os.Stat(arg); err == nil {
		return filepath.Abs(arg)
	}
	dir := configValue
	if dir == "" {
		dir = os.Getenv(EnvLayoutDir)
	}
	if dir != "" {
		return filepath.Abs(filepath.Join(dir, arg))
	}
	return filepath.Abs(arg)
}
