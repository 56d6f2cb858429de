// Package xdg provides centralized path management following XDG Base Directory conventions.
// All user-level paths chatnotify touches on disk are defined here.
package xdg

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
)

const appName = "chatnotify"

const (
	// ConfigFileName is the name of the notification config file.
	ConfigFileName = "chatnotify.json"

	// SettingsFileName is the name of the CLI settings file.
	SettingsFileName = "settings.toml"

	// LogFileName is the name of the log file.
	LogFileName = "chatnotify.log"
)

func homeFallback(parts ...string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "~"
	}

	return filepath.Join(append([]string{home}, parts...)...)
}

// ConfigHome returns $XDG_CONFIG_HOME or ~/.config.
func ConfigHome() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}

	return homeFallback(".config")
}

// StateHome returns $XDG_STATE_HOME or ~/.local/state.
func StateHome() string {
	if v := os.Getenv("XDG_STATE_HOME"); v != "" {
		return v
	}

	return homeFallback(".local", "state")
}

// ConfigDir returns ConfigHome()/chatnotify.
func ConfigDir() string {
	return filepath.Join(ConfigHome(), appName)
}

// StateDir returns StateHome()/chatnotify.
func StateDir() string {
	return filepath.Join(StateHome(), appName)
}

// ConfigFile returns ConfigDir()/chatnotify.json.
func ConfigFile() string {
	return filepath.Join(ConfigDir(), ConfigFileName)
}

// SettingsFile returns ConfigDir()/settings.toml.
func SettingsFile() string {
	return filepath.Join(ConfigDir(), SettingsFileName)
}

// LogFile returns StateDir()/chatnotify.log.
func LogFile() string {
	return filepath.Join(StateDir(), LogFileName)
}

// ExpandPath resolves ~ prefix to the user's home directory.
// Returns the path unchanged if it doesn't start with ~.
// Returns error for invalid tilde usage like "~foo".
func ExpandPath(path string) (string, error) {
	if len(path) == 0 || path[0] != '~' {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to get home directory")
	}

	switch {
	case path == "~":
		return home, nil
	case strings.HasPrefix(path, "~/"):
		return filepath.Join(home, path[2:]), nil
	default:
		return "", errors.Newf("paths starting with ~ must be either ~ or ~/subdir, got %q", path)
	}
}

// EnsureDir creates a directory with 0700 permissions if it doesn't exist.
func EnsureDir(path string) error {
	const dirMode = 0o700

	if err := os.MkdirAll(path, dirMode); err != nil {
		return errors.Wrapf(err, "failed to create directory %s", path)
	}

	return nil
}
