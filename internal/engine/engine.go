package engine

import (
	"github.com/smykla-skalski/chatnotify/pkg/config"
	"github.com/smykla-skalski/chatnotify/pkg/logger"
)

// Engine runs the per-message evaluation loop over a config.
type Engine struct {
	matcher *Matcher
	logger  logger.Logger

	disableInvalidRegex bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger for the engine.
func WithLogger(log logger.Logger) Option {
	return func(e *Engine) {
		e.logger = log
	}
}

// WithDisableInvalidRegex switches off, in memory, every trigger whose regex
// fails to compile. The change is persisted only if the config is saved.
func WithDisableInvalidRegex() Option {
	return func(e *Engine) {
		e.disableInvalidRegex = true
	}
}

// New creates a new Engine.
func New(opts ...Option) *Engine {
	engine := &Engine{}

	for _, opt := range opts {
		opt(engine)
	}

	if engine.logger == nil {
		engine.logger = logger.NewNoOpLogger()
	}

	engine.matcher = NewMatcher(
		WithMatcherLogger(engine.logger),
		WithDisableInvalid(engine.disableInvalidRegex),
	)

	return engine
}

// Matcher returns the matcher used by the engine.
func (e *Engine) Matcher() *Matcher {
	return e.matcher
}

// Process finds the first notification of cfg that fires for msg. Own
// messages are skipped unless the config checks them. Returns nil when
// nothing fires.
func (e *Engine) Process(cfg *config.Config, msg Message) *Result {
	if cfg == nil {
		return nil
	}

	if msg.Own && !cfg.CheckOwnMessages {
		return nil
	}

	text, prefix := StripPrefix(msg.Text, cfg.Prefixes)
	if prefix != "" {
		e.logger.Debug("stripped message prefix", "prefix", prefix)
	}

	msg.Text = text
	scope := ScopeOf(cfg)

	for i, n := range cfg.Notifications {
		res := e.matcher.Evaluate(n, msg, scope)
		if res == nil {
			continue
		}

		res.NotificationIndex = i

		e.logger.Debug("notification matched",
			"notification", i,
			"trigger", res.TriggerIndex,
			"pattern", res.Trigger.Pattern,
		)

		return res
	}

	return nil
}
