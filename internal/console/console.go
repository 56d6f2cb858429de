// Package console implements the dispatcher collaborators for a terminal: matched
// lines are highlighted with lipgloss, sounds are printed as cues and responses
// are echoed instead of being sent to a chat server.
package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"github.com/smykla-skalski/chatnotify/internal/color"
	"github.com/smykla-skalski/chatnotify/internal/engine"
	"github.com/smykla-skalski/chatnotify/pkg/config"
)

const ellipsis = "…"

// Console writes chat output to a terminal. It is not safe for concurrent use.
type Console struct {
	out   io.Writer
	theme color.Theme
}

// New creates a Console writing to out.
func New(out io.Writer, theme color.Theme) *Console {
	return &Console{out: out, theme: theme}
}

// Highlight prints a matched message with the notification style.
func (c *Console) Highlight(msg engine.Message, style config.ResolvedStyle) {
	fmt.Fprintln(c.out, c.theme.StyleFor(style).Render(msg.Text))
}

// Echo prints a message that matched nothing.
func (c *Console) Echo(msg engine.Message) {
	fmt.Fprintln(c.out, c.theme.Muted.Render(msg.Text))
}

// Play prints a sound cue.
func (c *Console) Play(sound config.Sound, source config.SoundSource) {
	cue := fmt.Sprintf(
		"[sound] %s (%s, volume %.2f, pitch %.2f)",
		sound.ResourceLocation(),
		source,
		sound.Volume,
		sound.Pitch,
	)

	fmt.Fprintln(c.out, c.theme.Sound.Render(cue))
}

// SendMessage prints an outgoing chat message.
func (c *Console) SendMessage(text string) {
	fmt.Fprintln(c.out, c.theme.Response.Render("> "+text))
}

// SendCommand prints an outgoing command with its slash.
func (c *Console) SendCommand(command string) {
	fmt.Fprintln(c.out, c.theme.Response.Render("> /"+command))
}

// CleanLine strips terminal escape sequences and the line terminator from a
// line read from a chat log.
func CleanLine(line string) string {
	return strings.TrimRight(ansi.Strip(line), "\r\n")
}

// Truncate shortens s to at most width terminal cells, ending with an ellipsis
// when something was cut. A width of zero or less leaves s untouched.
func Truncate(s string, width int) string {
	if width <= 0 {
		return s
	}

	return runewidth.Truncate(s, width, ellipsis)
}

// PadRight pads s with spaces to width terminal cells, ignoring escape sequences.
func PadRight(s string, width int) string {
	visible := runewidth.StringWidth(ansi.Strip(s))
	if visible >= width {
		return s
	}

	return s + strings.Repeat(" ", width-visible)
}
