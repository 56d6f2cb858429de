package config

import (
	"os"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/cockroachdb/errors"

	"github.com/smykla-skalski/chatnotify/pkg/config"
	"github.com/smykla-skalski/chatnotify/pkg/logger"
)

// Generation identifies a persisted config layout.
type Generation string

const (
	// GenerationNone means no file was read or no parser accepted it.
	GenerationNone Generation = "none"

	// GenerationCurrent is the versioned layout. It is the only one ever written.
	GenerationCurrent Generation = "current"

	// GenerationIntermediary is the layout of releases 1.2.0-pre.3 to 1.2.0.
	GenerationIntermediary Generation = "intermediary"

	// GenerationLegacy is the layout of releases up to 1.2.0-pre.2.
	GenerationLegacy Generation = "legacy"
)

// Parser parses one config generation.
type Parser func(data []byte, log logger.Logger) (*config.Config, error)

type generationParser struct {
	generation Generation
	parse      Parser
}

// parsers are tried newest first.
var parsers = []generationParser{
	{GenerationCurrent, ParseCurrent},
	{GenerationIntermediary, ParseIntermediary},
	{GenerationLegacy, ParseLegacy},
}

var (
	firstIntermediary = semver.MustParse("1.2.0-pre.3")
	lastIntermediary  = semver.MustParse("1.2.0")
)

// ParserFor returns the parser of a generation.
func ParserFor(g Generation) (Parser, bool) {
	for _, p := range parsers {
		if p.generation == g {
			return p.parse, true
		}
	}

	return nil, false
}

// GenerationForVersion returns the generation written by the given release.
func GenerationForVersion(version string) (Generation, error) {
	v, err := semver.NewVersion(strings.TrimPrefix(strings.TrimSpace(version), "v"))
	if err != nil {
		return GenerationNone, errors.Wrapf(err, "invalid release version %q", version)
	}

	switch {
	case v.LessThan(firstIntermediary):
		return GenerationLegacy, nil
	case !v.GreaterThan(lastIntermediary):
		return GenerationIntermediary, nil
	default:
		return GenerationCurrent, nil
	}
}

// Decode tries every generation parser, newest first, and returns the first
// success. When all fail it returns a default config and an error joining every
// parser failure, marked with ErrAllGenerationsFailed.
func Decode(data []byte, log logger.Logger) (*config.Config, Generation, error) {
	if log == nil {
		log = logger.NewNoOpLogger()
	}

	errs := make([]error, 0, len(parsers))

	for _, p := range parsers {
		cfg, err := p.parse(data, log.With("generation", string(p.generation)))
		if err == nil {
			return cfg, p.generation, nil
		}

		log.Debug("config generation rejected", "generation", string(p.generation), "error", err)

		errs = append(errs, errors.Wrapf(err, "%s", p.generation))
	}

	return config.New(), GenerationNone, errors.Mark(errors.Join(errs...), ErrAllGenerationsFailed)
}

// Load reads and decodes the config at path, then validates it. A missing file
// yields defaults silently; unreadable or undecodable files are logged and also
// yield defaults. Load never fails.
func Load(path string, log logger.Logger) (*config.Config, Generation) {
	if log == nil {
		log = logger.NewNoOpLogger()
	}

	data, err := os.ReadFile(path) //nolint:gosec // path comes from settings
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Error("failed to read config, using defaults", "path", path, "error", err)
		}

		return config.New(), GenerationNone
	}

	cfg, gen, err := Decode(data, log)
	if err != nil {
		log.Error("failed to decode config, using defaults", "path", path, "error", err)
	} else if gen != GenerationCurrent {
		log.Info("loaded older config generation", "path", path, "generation", string(gen))
	}

	cfg.Validate()

	return cfg, gen
}
