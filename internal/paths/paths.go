// Package paths resolves where work keeps its data and configuration.
package paths

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DataFileEnvVar overrides the data file location.
const DataFileEnvVar = "WORK_DATA_FILE"

// ErrHomeDirUnavailable is returned when the user's home directory cannot be determined.
var ErrHomeDirUnavailable = errors.New("failed to read home directory")

// HomeDir returns the current user's home directory.
func HomeDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrHomeDirUnavailable, err)
	}
	return home, nil
}

// DefaultDataFile returns the default data file, ~/.config/work-tracker.json.
func DefaultDataFile() (string, error) {
	home, err := HomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, ".config", "work-tracker.json"), nil
}

// ConfigFile returns the config file path.
// Uses $XDG_CONFIG_HOME/work/config.toml if set, otherwise ~/.config/work/config.toml.
func ConfigFile() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "work", "config.toml"), nil
	}

	home, err := HomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "work", "config.toml"), nil
}

// ExpandHome replaces a leading "~" with the home directory and makes the path absolute.
func ExpandHome(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", nil
	}

	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := HomeDir()
		if err != nil {
			return "", err
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", path, err)
	}
	return abs, nil
}
