package config

import (
	"github.com/cockroachdb/errors"

	"github.com/smykla-skalski/chatnotify/pkg/config"
	"github.com/smykla-skalski/chatnotify/pkg/logger"
)

// Store owns the in-memory config and its file. The config is loaded lazily on
// first access. A Store is not safe for concurrent use.
type Store struct {
	path       string
	writer     FileWriter
	log        logger.Logger
	cfg        *config.Config
	generation Generation
}

// NewStore creates a store for the config file at path. A nil writer writes
// atomically with Writer; a nil logger discards output.
func NewStore(path string, writer FileWriter, log logger.Logger) *Store {
	if writer == nil {
		writer = NewWriter()
	}

	if log == nil {
		log = logger.NewNoOpLogger()
	}

	return &Store{
		path:   path,
		writer: writer,
		log:    log.With("config", path),
	}
}

// Init loads and validates the config unless it is already loaded.
func (s *Store) Init() *config.Config {
	if s.cfg == nil {
		s.cfg, s.generation = Load(s.path, s.log)
	}

	return s.cfg
}

// Get returns the config, loading it on first use.
func (s *Store) Get() *config.Config {
	return s.Init()
}

// Save validates the config and writes it. A failed write is logged and
// returned; the in-memory config stays authoritative and is written again on
// the next save.
func (s *Store) Save() error {
	cfg := s.Init()
	cfg.Validate()

	if err := s.writer.Write(s.path, cfg); err != nil {
		s.log.Error("failed to save config", "error", err)

		return errors.Wrap(err, "failed to save config")
	}

	s.generation = GenerationCurrent

	return nil
}

// GetAndSave loads the config if needed and saves it, which rewrites an older
// generation in the current layout.
func (s *Store) GetAndSave() (*config.Config, error) {
	cfg := s.Init()

	return cfg, s.Save()
}

// Reset replaces the config with defaults and saves it.
func (s *Store) Reset() (*config.Config, error) {
	s.cfg = config.New()

	return s.cfg, s.Save()
}

// Path returns the config file path.
func (s *Store) Path() string {
	return s.path
}

// Generation returns the generation the config was loaded from, or
// GenerationCurrent once it has been saved.
func (s *Store) Generation() Generation {
	s.Init()

	return s.generation
}
