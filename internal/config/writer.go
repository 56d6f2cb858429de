package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/cockroachdb/errors"

	"github.com/smykla-skalski/chatnotify/pkg/config"
)

const (
	// FileMode is the file mode of the config file (user read/write only).
	FileMode = 0o600

	// DirMode is the mode of a created config directory.
	DirMode = 0o700

	tmpSuffix = ".tmp"
)

// ErrInvalidConfig is returned when asked to write a nil config.
var ErrInvalidConfig = errors.New("invalid configuration")

// FileWriter persists a config.
type FileWriter interface {
	Write(path string, cfg *config.Config) error
}

// Writer writes configs in the current generation, atomically.
type Writer struct{}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Marshal encodes cfg as indented current-generation JSON with every non-ASCII
// character escaped.
func Marshal(cfg *config.Config) ([]byte, error) {
	if cfg == nil {
		return nil, ErrInvalidConfig
	}

	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)

	if err := enc.Encode(cfg); err != nil {
		return nil, errors.Wrap(err, "failed to encode config")
	}

	return EscapeNonASCII(buf.Bytes()), nil
}

// Write marshals cfg to <path>.tmp, syncs it and renames it over path, so a
// failed write never damages the previous file.
func (*Writer) Write(path string, cfg *config.Config) error {
	data, err := Marshal(cfg)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, DirMode); err != nil {
		return errors.Wrapf(err, "failed to create directory %s", dir)
	}

	tmp := path + tmpSuffix

	if err := writeSynced(tmp, data); err != nil {
		_ = os.Remove(tmp)

		return err
	}

	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)

		return errors.Wrapf(err, "failed to replace config file %s", path)
	}

	return nil
}

func writeSynced(path string, data []byte) error {
	//nolint:gosec // path comes from settings
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, FileMode)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", path)
	}

	if _, err := f.Write(data); err != nil {
		_ = f.Close()

		return errors.Wrapf(err, "failed to write %s", path)
	}

	if err := f.Sync(); err != nil {
		_ = f.Close()

		return errors.Wrapf(err, "failed to sync %s", path)
	}

	return errors.Wrapf(f.Close(), "failed to close %s", path)
}

// EscapeNonASCII replaces every non-ASCII character in JSON text with a \uXXXX
// escape. Characters outside the Basic Multilingual Plane become a surrogate pair.
// Invalid UTF-8 bytes become U+FFFD.
func EscapeNonASCII(data []byte) []byte {
	out := make([]byte, 0, len(data))

	for len(data) > 0 {
		if data[0] < utf8.RuneSelf {
			out = append(out, data[0])
			data = data[1:]

			continue
		}

		r, size := utf8.DecodeRune(data)
		data = data[size:]

		if r >= 0x10000 {
			hi, lo := utf16.EncodeRune(r)
			out = fmt.Appendf(out, `\u%04x\u%04x`, hi, lo)

			continue
		}

		out = fmt.Appendf(out, `\u%04x`, r)
	}

	return out
}
