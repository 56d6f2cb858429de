package logger

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"
)

const (
	initialBufferCapacity = 256

	// TimeFormat is the timestamp layout of every log line, in local time.
	TimeFormat = "2006-01-02T15:04:05-07:00"
)

// output is shared by a handler and every handler derived from it through
// WithAttrs or WithGroup, so lines from child loggers never interleave.
type output struct {
	mu sync.Mutex
	w  io.Writer
}

// LineHandler writes one line per record:
//
//	2006-01-02T15:04:05-07:00 LEVEL msg key=value key="quoted value"
type LineHandler struct {
	out    *output
	level  slog.Leveler
	prefix string
	attrs  []byte
}

// NewLineHandler creates a handler that writes records at or above level to w.
func NewLineHandler(w io.Writer, level Level) *LineHandler {
	return &LineHandler{
		out:   &output{w: w},
		level: level.ToSlogLevel(),
	}
}

// Enabled reports whether the handler handles records at the given level.
func (h *LineHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle formats and writes the record.
func (h *LineHandler) Handle(_ context.Context, r slog.Record) error {
	buf := make([]byte, 0, initialBufferCapacity)

	ts := r.Time
	if ts.IsZero() {
		ts = time.Now()
	}

	buf = ts.Local().AppendFormat(buf, TimeFormat)
	buf = append(buf, ' ')
	buf = append(buf, r.Level.String()...)
	buf = append(buf, ' ')
	buf = append(buf, r.Message...)
	buf = append(buf, h.attrs...)

	r.Attrs(func(a slog.Attr) bool {
		buf = appendAttr(buf, h.prefix, a)

		return true
	})

	buf = append(buf, '\n')

	h.out.mu.Lock()
	defer h.out.mu.Unlock()

	_, err := h.out.w.Write(buf)

	return err
}

// WithAttrs returns a handler that adds attrs to every record. The attributes
// are formatted once, here.
func (h *LineHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	buf := make([]byte, len(h.attrs), len(h.attrs)+initialBufferCapacity)
	copy(buf, h.attrs)

	for _, a := range attrs {
		buf = appendAttr(buf, h.prefix, a)
	}

	return &LineHandler{
		out:    h.out,
		level:  h.level,
		prefix: h.prefix,
		attrs:  buf,
	}
}

// WithGroup returns a handler that qualifies later keys with name.
func (h *LineHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	return &LineHandler{
		out:    h.out,
		level:  h.level,
		prefix: h.prefix + name + ".",
		attrs:  h.attrs,
	}
}

// Close closes the underlying writer if it implements io.Closer.
func (h *LineHandler) Close() error {
	h.out.mu.Lock()
	defer h.out.mu.Unlock()

	if closer, ok := h.out.w.(io.Closer); ok {
		return closer.Close()
	}

	return nil
}

func appendAttr(buf []byte, prefix string, a slog.Attr) []byte {
	a.Value = a.Value.Resolve()

	if a.Equal(slog.Attr{}) {
		return buf
	}

	if a.Value.Kind() == slog.KindGroup {
		group := prefix
		if a.Key != "" {
			group += a.Key + "."
		}

		for _, ga := range a.Value.Group() {
			buf = appendAttr(buf, group, ga)
		}

		return buf
	}

	buf = append(buf, ' ')
	buf = append(buf, prefix...)
	buf = append(buf, a.Key...)
	buf = append(buf, '=')

	val := a.Value.String()
	if strings.ContainsAny(val, " \t\r\n\"") {
		return append(buf, quoteValue(val)...)
	}

	return append(buf, val...)
}

var quoteReplacer = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

func quoteValue(s string) string {
	return `"` + quoteReplacer.Replace(s) + `"`
}
