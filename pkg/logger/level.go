package logger

import "log/slog"

//go:generate enumer -type=Level -trimprefix=Level -transform=upper -json -text
//go:generate go run github.com/smykla-skalski/chatnotify/tools/enumerfix level_enumer.go

// Level represents the log level.
type Level int

const (
	// LevelDebug represents debug-level logging (most verbose).
	LevelDebug Level = iota

	// LevelInfo represents info-level logging (standard verbosity).
	LevelInfo

	// LevelWarn represents warnings such as dropped config records or invalid patterns.
	LevelWarn

	// LevelError represents error-level logging (least verbose).
	LevelError
)

// ToSlogLevel converts Level to slog.Level.
func (l Level) ToSlogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelInfo:
		return slog.LevelInfo
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// LevelFromFlags determines the log level from debug and trace flags. Without
// either flag the configured level is kept.
func LevelFromFlags(debug, trace bool, configured Level) Level {
	switch {
	case trace:
		return LevelDebug
	case debug && configured > LevelInfo:
		return LevelInfo
	default:
		return configured
	}
}
