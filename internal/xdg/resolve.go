package xdg

import (
	"os"
	"path/filepath"
)

// GameConfigFile returns config/chatnotify.json under gameDir, where the host
// game keeps the file.
func GameConfigFile(gameDir string) string {
	return filepath.Join(gameDir, "config", ConfigFileName)
}

// ResolveFile checks the XDG path, then the fallback path.
// Returns the XDG path if the file exists there or nowhere.
// Returns the fallback only if the file exists there but not at the XDG location.
func ResolveFile(xdgPath, fallbackPath string) string {
	if fileExists(xdgPath) {
		return xdgPath
	}

	if fallbackPath != "" && fileExists(fallbackPath) {
		return fallbackPath
	}

	return xdgPath
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}

	return !info.IsDir()
}
