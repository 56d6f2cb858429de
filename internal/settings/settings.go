// Package settings loads the chatnotify CLI settings. The notification config itself
// lives in a separate JSON file; settings only say where it is and how the CLI behaves.
package settings

import (
	"strings"
	"time"

	"github.com/smykla-skalski/chatnotify/internal/xdg"
	"github.com/smykla-skalski/chatnotify/pkg/config"
	"github.com/smykla-skalski/chatnotify/pkg/logger"
)

const (
	// EnvPrefix is the prefix of environment variables overriding settings.
	EnvPrefix = "CHATNOTIFY_"

	defaultMaxSizeMB    = 5
	defaultMaxBackups   = 3
	defaultDrainTimeout = 5 * time.Second
)

// Settings holds the CLI settings.
type Settings struct {
	// ConfigFile is the notification config path. Empty means the XDG default.
	ConfigFile string `koanf:"config_file"`

	// GameDir is the host game directory. Its config/chatnotify.json is used when no
	// config exists at the XDG location.
	GameDir string `koanf:"game_dir"`

	// TickRate is the number of scheduler ticks per second in listen mode.
	TickRate int `koanf:"tick_rate"`

	// Color enables colored output.
	Color bool `koanf:"color"`

	Log    LogSettings    `koanf:"log"`
	Listen ListenSettings `koanf:"listen"`
}

// LogSettings configures the log file.
type LogSettings struct {
	Level      logger.Level `koanf:"level"`
	File       string       `koanf:"file"`
	MaxSizeMB  int          `koanf:"max_size_mb"`
	MaxBackups int          `koanf:"max_backups"`
}

// ListenSettings configures the listen command.
type ListenSettings struct {
	// DrainTimeout bounds how long listen keeps ticking after input ends while
	// responses are still pending.
	DrainTimeout time.Duration `koanf:"drain_timeout"`
}

// Default returns the default settings.
func Default() *Settings {
	return &Settings{
		TickRate: config.TicksPerSecond,
		Color:    true,
		Log: LogSettings{
			Level:      logger.LevelInfo,
			File:       xdg.LogFile(),
			MaxSizeMB:  defaultMaxSizeMB,
			MaxBackups: defaultMaxBackups,
		},
		Listen: ListenSettings{
			DrainTimeout: defaultDrainTimeout,
		},
	}
}

// ConfigPath returns the notification config path these settings point at.
func (s *Settings) ConfigPath() string {
	if s.ConfigFile != "" {
		if expanded, err := xdg.ExpandPath(s.ConfigFile); err == nil {
			return expanded
		}

		return s.ConfigFile
	}

	fallback := ""
	if s.GameDir != "" {
		if dir, err := xdg.ExpandPath(s.GameDir); err == nil {
			fallback = xdg.GameConfigFile(dir)
		}
	}

	return xdg.ResolveFile(xdg.ConfigFile(), fallback)
}

// TickInterval returns the wall time between two ticks.
func (s *Settings) TickInterval() time.Duration {
	rate := s.TickRate
	if rate <= 0 {
		rate = config.TicksPerSecond
	}

	return time.Second / time.Duration(rate)
}

// LoggerOptions returns the rotation options of the log file.
func (s *Settings) LoggerOptions() logger.FileOptions {
	path := s.Log.File
	if expanded, err := xdg.ExpandPath(path); err == nil {
		path = expanded
	}

	return logger.FileOptions{
		Path:       path,
		MaxSizeMB:  s.Log.MaxSizeMB,
		MaxBackups: s.Log.MaxBackups,
	}
}

// toTree converts settings to the nested map layout of the settings file.
// Levels and durations are kept in their text form.
func (s *Settings) toTree() map[string]any {
	return map[string]any{
		"config_file": s.ConfigFile,
		"game_dir":    s.GameDir,
		"tick_rate":   s.TickRate,
		"color":       s.Color,
		"log": map[string]any{
			"level":       strings.ToLower(s.Log.Level.String()),
			"file":        s.Log.File,
			"max_size_mb": s.Log.MaxSizeMB,
			"max_backups": s.Log.MaxBackups,
		},
		"listen": map[string]any{
			"drain_timeout": s.Listen.DrainTimeout.String(),
		},
	}
}
