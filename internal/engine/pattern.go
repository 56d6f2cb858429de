package engine

import (
	"regexp"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
)

const caseInsensitiveFlag = "(?i)"

// CompileErrorHandler is called the first time a pattern fails to compile.
type CompileErrorHandler func(pattern string, err error)

type patternKey struct {
	pattern       string
	caseSensitive bool
}

// PatternCache provides thread-safe caching of compiled regular expressions.
// Compile failures are cached too, so a broken pattern is reported once.
type PatternCache struct {
	mu       sync.RWMutex
	patterns map[patternKey]*regexp.Regexp
	errors   map[patternKey]error
	onError  CompileErrorHandler
}

// NewPatternCache creates a new PatternCache. onError may be nil.
func NewPatternCache(onError CompileErrorHandler) *PatternCache {
	return &PatternCache{
		patterns: make(map[patternKey]*regexp.Regexp),
		errors:   make(map[patternKey]error),
		onError:  onError,
	}
}

// CompileRegex compiles pattern, adding the case-insensitive flag unless
// caseSensitive is set.
func CompileRegex(pattern string, caseSensitive bool) (*regexp.Regexp, error) {
	if !caseSensitive && !strings.HasPrefix(pattern, caseInsensitiveFlag) {
		pattern = caseInsensitiveFlag + pattern
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid regex %q", pattern)
	}

	return re, nil
}

// Get returns a compiled pattern, compiling and caching it if necessary.
// Returns the cached error if the pattern previously failed to compile.
func (c *PatternCache) Get(pattern string, caseSensitive bool) (*regexp.Regexp, error) {
	key := patternKey{pattern: pattern, caseSensitive: caseSensitive}

	// Fast path: check if already cached.
	c.mu.RLock()

	if re, ok := c.patterns[key]; ok {
		c.mu.RUnlock()
		return re, nil
	}

	if err, ok := c.errors[key]; ok {
		c.mu.RUnlock()
		return nil, err
	}

	c.mu.RUnlock()

	// Slow path: compile and cache.
	c.mu.Lock()
	defer c.mu.Unlock()

	// Double-check after acquiring write lock.
	if re, ok := c.patterns[key]; ok {
		return re, nil
	}

	if err, ok := c.errors[key]; ok {
		return nil, err
	}

	re, err := CompileRegex(pattern, caseSensitive)
	if err != nil {
		c.errors[key] = err

		if c.onError != nil {
			c.onError(pattern, err)
		}

		return nil, err
	}

	c.patterns[key] = re

	return re, nil
}

// Clear removes all cached patterns and errors.
func (c *PatternCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.patterns = make(map[patternKey]*regexp.Regexp)
	c.errors = make(map[patternKey]error)
}

// Size returns the number of cached patterns.
func (c *PatternCache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.patterns)
}

// Failures returns the number of cached compile errors.
func (c *PatternCache) Failures() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.errors)
}
