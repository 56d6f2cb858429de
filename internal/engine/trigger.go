package engine

import (
	"slices"
	"strings"

	"github.com/smykla-skalski/chatnotify/pkg/config"
	"github.com/smykla-skalski/chatnotify/pkg/logger"
)

// Matcher matches triggers and evaluates notifications. Regex patterns are
// compiled once through a shared PatternCache.
type Matcher struct {
	cache          *PatternCache
	log            logger.Logger
	disableInvalid bool
}

// MatcherOption configures a Matcher.
type MatcherOption func(*Matcher)

// WithMatcherLogger sets the logger invalid patterns are reported to.
func WithMatcherLogger(log logger.Logger) MatcherOption {
	return func(m *Matcher) {
		m.log = log
	}
}

// WithDisableInvalid makes the matcher switch off triggers whose regex does
// not compile. Only the in-memory config changes.
func WithDisableInvalid(disable bool) MatcherOption {
	return func(m *Matcher) {
		m.disableInvalid = disable
	}
}

// NewMatcher creates a Matcher.
func NewMatcher(opts ...MatcherOption) *Matcher {
	m := &Matcher{}

	for _, opt := range opts {
		opt(m)
	}

	if m.log == nil {
		m.log = logger.NewNoOpLogger()
	}

	m.cache = NewPatternCache(func(pattern string, err error) {
		m.log.Warn("invalid regex, trigger ignored", "pattern", pattern, "error", err)
	})

	return m
}

// Cache returns the pattern cache of the matcher.
func (m *Matcher) Cache() *PatternCache {
	return m.cache
}

// MatchTrigger reports whether t matches msg.
func (m *Matcher) MatchTrigger(t *config.Trigger, msg Message, allowRegex bool) (Match, bool) {
	if t == nil || !t.Enabled || t.IsBlank() {
		return Match{}, false
	}

	if t.IsKey {
		return Match{}, t.Pattern == config.AnyMessageKey || slices.Contains(msg.Keys, t.Pattern)
	}

	groups, ok, valid := m.matchText(t.Pattern, t.IsRegex, t.CaseSensitive, msg.Text, allowRegex)
	if !valid && m.disableInvalid {
		t.Enabled = false
	}

	return Match{Groups: groups}, ok
}

// MatchExclusion reports whether t matches msg.
func (m *Matcher) MatchExclusion(t *config.ExclusionTrigger, msg Message, allowRegex bool) bool {
	if t == nil || !t.Enabled || t.IsBlank() {
		return false
	}

	_, ok, valid := m.matchText(t.Pattern, t.IsRegex, t.CaseSensitive, msg.Text, allowRegex)
	if !valid && m.disableInvalid {
		t.Enabled = false
	}

	return ok
}

// matchText matches a literal or regex pattern. valid is false only when a
// regex failed to compile.
func (m *Matcher) matchText(
	pattern string,
	isRegex, caseSensitive bool,
	text string,
	allowRegex bool,
) (groups []string, ok, valid bool) {
	if !isRegex {
		if caseSensitive {
			return nil, strings.Contains(text, pattern), true
		}

		return nil, strings.Contains(strings.ToLower(text), strings.ToLower(pattern)), true
	}

	if !allowRegex {
		return nil, false, true
	}

	re, err := m.cache.Get(pattern, caseSensitive)
	if err != nil {
		return nil, false, false
	}

	groups = re.FindStringSubmatch(text)

	return groups, groups != nil, true
}
