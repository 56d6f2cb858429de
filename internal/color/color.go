// Package color provides color detection and theming for CLI output.
package color

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/smykla-skalski/chatnotify/pkg/config"
)

// Profile detects the current color profile based on environment variables and flags.
// Returns true if color output should be enabled.
//
// Color is disabled when any of:
//   - NO_COLOR env is set (any value, per https://no-color.org)
//   - CLICOLOR=0
//   - TERM=dumb
//   - noColorFlag is true (--no-color CLI flag)
func Profile(noColorFlag bool) bool {
	if noColorFlag {
		return false
	}

	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}

	if os.Getenv("CLICOLOR") == "0" {
		return false
	}

	if os.Getenv("TERM") == "dumb" {
		return false
	}

	return true
}

// IsTerminal returns true if the given file is a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd())) //nolint:gosec // fd fits in int
}

// Theme holds lipgloss styles for CLI output.
type Theme struct {
	Header   lipgloss.Style
	Label    lipgloss.Style
	Enabled  lipgloss.Style
	Disabled lipgloss.Style
	Sound    lipgloss.Style
	Response lipgloss.Style
	Error    lipgloss.Style
	Muted    lipgloss.Style

	color bool
}

// NewTheme creates a Theme. When color is false, all styles are empty (no ANSI codes).
func NewTheme(color bool) Theme {
	if !color {
		return Theme{}
	}

	return Theme{
		Header:   lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
		Label:    lipgloss.NewStyle().Bold(true),
		Enabled:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")), // bright green
		Disabled: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),  // gray
		Sound:    lipgloss.NewStyle().Foreground(lipgloss.Color("13")), // bright magenta
		Response: lipgloss.NewStyle().Foreground(lipgloss.Color("12")), // bright blue
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		color:    true,
	}
}

// Colored returns true if the theme emits styles.
func (t Theme) Colored() bool {
	return t.color
}

// StyleFor maps a notification text style to a lipgloss style. Obfuscated text
// has no terminal equivalent and blinks instead. A theme without color returns
// an empty style.
func (t Theme) StyleFor(s config.ResolvedStyle) lipgloss.Style {
	style := lipgloss.NewStyle()

	if !t.color {
		return style
	}

	if s.Color.Valid {
		style = style.Foreground(lipgloss.Color(s.Color.Hex()))
	}

	return style.
		Bold(s.Bold).
		Italic(s.Italic).
		Underline(s.Underlined).
		Strikethrough(s.Strikethrough).
		Blink(s.Obfuscated)
}
