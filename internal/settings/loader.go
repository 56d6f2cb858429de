package settings

import (
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	tomlparser "github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/smykla-skalski/chatnotify/internal/xdg"
)

var (
	// ErrInvalidPermissions is returned when the settings file is world-writable.
	ErrInvalidPermissions = errors.New("settings file has insecure permissions")

	// ErrInvalidSettings is returned when a loaded value is out of range.
	ErrInvalidSettings = errors.New("invalid settings")
)

// sections are the nested tables of the settings file. Env keys starting with a
// section name followed by "_" map into that table.
var sections = []string{"log", "listen"}

// Loader loads settings from multiple sources.
// Precedence order (highest to lowest):
// 1. CLI Flags
// 2. Environment Variables (CHATNOTIFY_*)
// 3. Settings file (settings.toml)
// 4. Defaults
type Loader struct {
	k    *koanf.Koanf
	path string
}

// NewLoader creates a Loader for the settings file at path. An empty path means
// the XDG default.
func NewLoader(path string) *Loader {
	if path == "" {
		path = xdg.SettingsFile()
	}

	return &Loader{k: koanf.New("."), path: path}
}

// Path returns the settings file path.
func (l *Loader) Path() string {
	return l.path
}

// Load loads settings. Flags are keyed by settings path ("log.level") and only
// flags the user actually set should be passed. A missing settings file is not
// an error.
func (l *Loader) Load(flags map[string]any) (*Settings, error) {
	l.k = koanf.New(".")

	if err := l.k.Load(confmap.Provider(Default().toTree(), "."), nil); err != nil {
		return nil, errors.Wrap(err, "failed to load defaults")
	}

	if err := l.loadTOMLFile(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, errors.Wrap(err, "failed to load settings file")
	}

	envOpt := env.Opt{
		Prefix:        EnvPrefix,
		TransformFunc: envTransform,
	}

	if err := l.k.Load(env.Provider(".", envOpt), nil); err != nil {
		return nil, errors.Wrap(err, "failed to load env vars")
	}

	if len(flags) > 0 {
		if err := l.k.Load(confmap.Provider(flags, "."), nil); err != nil {
			return nil, errors.Wrap(err, "failed to load flags")
		}
	}

	var s Settings

	conf := koanf.UnmarshalConf{
		Tag:           "koanf",
		DecoderConfig: decoderConfig(&s),
	}

	if err := l.k.UnmarshalWithConf("", &s, conf); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal settings")
	}

	if err := s.validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

func (s *Settings) validate() error {
	if s.TickRate <= 0 {
		return errors.Wrapf(ErrInvalidSettings, "tick_rate must be positive, got %d", s.TickRate)
	}

	if s.Log.MaxSizeMB < 0 || s.Log.MaxBackups < 0 {
		return errors.Wrap(ErrInvalidSettings, "log rotation limits must not be negative")
	}

	if s.Listen.DrainTimeout < 0 {
		return errors.Wrap(ErrInvalidSettings, "listen.drain_timeout must not be negative")
	}

	return nil
}

func (l *Loader) loadTOMLFile() error {
	info, err := os.Stat(l.path)
	if err != nil {
		return err
	}

	if info.Mode().Perm()&0o002 != 0 {
		return errors.Wrapf(
			ErrInvalidPermissions,
			"%s is world-writable (mode: %s)",
			l.path,
			info.Mode().Perm(),
		)
	}

	return l.k.Load(file.Provider(l.path), tomlparser.Parser())
}

// envTransform maps environment variable names to settings paths.
// CHATNOTIFY_LOG_MAX_SIZE_MB -> log.max_size_mb, CHATNOTIFY_TICK_RATE -> tick_rate.
func envTransform(key, value string) (string, any) {
	key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))

	for _, section := range sections {
		if rest, ok := strings.CutPrefix(key, section+"_"); ok {
			return section + "." + rest, value
		}
	}

	return key, value
}
