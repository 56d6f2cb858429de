package settings

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml/v2"
)

const (
	// FileMode is the file mode of the settings file (user read/write only).
	FileMode = 0o600

	// DirMode is the mode of a created settings directory.
	DirMode = 0o700
)

// ErrFileExists is returned by Write when the file exists and force is not set.
var ErrFileExists = errors.New("settings file already exists")

// Write encodes s as TOML to path. An existing file is only replaced when force is set.
func Write(path string, s *Settings, force bool) error {
	if s == nil {
		return errors.Wrap(ErrInvalidSettings, "settings are nil")
	}

	if _, err := os.Stat(path); err == nil && !force {
		return errors.Wrapf(ErrFileExists, "%s", path)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, DirMode); err != nil {
		return errors.Wrapf(err, "failed to create directory %s", dir)
	}

	var buf bytes.Buffer

	encoder := toml.NewEncoder(&buf)
	encoder.SetIndentTables(true)

	if err := encoder.Encode(s.toTree()); err != nil {
		return errors.Wrap(err, "failed to encode settings to TOML")
	}

	if err := os.WriteFile(path, buf.Bytes(), FileMode); err != nil {
		return errors.Wrapf(err, "failed to write settings file %s", path)
	}

	return nil
}
