package config

import "strings"

// AnyMessageKey is the key trigger pattern that matches every incoming message.
const AnyMessageKey = "."

// Trigger is a single pattern used to detect a notification-worthy message.
type Trigger struct {
	// Version is the record schema version.
	Version int `json:"version" jsonschema:"default=1"`

	// Enabled controls whether this trigger takes part in matching.
	Enabled bool `json:"enabled"`

	// Pattern is the literal text, regular expression or message key to match.
	Pattern string `json:"pattern"`

	// IsKey marks the pattern as a message translation key. IsRegex is ignored for keys.
	IsKey bool `json:"isKey"`

	// IsRegex marks the pattern as a regular expression.
	IsRegex bool `json:"isRegex"`

	// CaseSensitive disables case folding for literal and regex patterns.
	CaseSensitive bool `json:"caseSensitive"`
}

// NewTrigger creates an enabled, case-insensitive literal trigger.
func NewTrigger(pattern string) *Trigger {
	return &Trigger{
		Version: CurrentRecordVersion,
		Enabled: true,
		Pattern: pattern,
	}
}

// NewKeyTrigger creates an enabled trigger matching a message key.
func NewKeyTrigger(key string) *Trigger {
	t := NewTrigger(key)
	t.IsKey = true

	return t
}

// IsBlank returns true if the pattern has no visible characters.
func (t *Trigger) IsBlank() bool {
	return strings.TrimSpace(t.Pattern) == ""
}

// UsesRegex returns true if the pattern is interpreted as a regular expression.
func (t *Trigger) UsesRegex() bool {
	return t.IsRegex && !t.IsKey
}

// Clone returns a deep copy of the trigger.
func (t *Trigger) Clone() *Trigger {
	c := *t

	return &c
}

// ExclusionTrigger suppresses an otherwise matching notification.
type ExclusionTrigger struct {
	// Version is the record schema version.
	Version int `json:"version" jsonschema:"default=1"`

	// Enabled controls whether this exclusion takes part in matching.
	Enabled bool `json:"enabled"`

	// Pattern is the literal text or regular expression to match.
	Pattern string `json:"pattern"`

	// IsRegex marks the pattern as a regular expression.
	IsRegex bool `json:"isRegex"`

	// CaseSensitive disables case folding.
	CaseSensitive bool `json:"caseSensitive"`
}

// NewExclusionTrigger creates an enabled, case-insensitive literal exclusion trigger.
func NewExclusionTrigger(pattern string) *ExclusionTrigger {
	return &ExclusionTrigger{
		Version: CurrentRecordVersion,
		Enabled: true,
		Pattern: pattern,
	}
}

// IsBlank returns true if the pattern has no visible characters.
func (t *ExclusionTrigger) IsBlank() bool {
	return strings.TrimSpace(t.Pattern) == ""
}

// Clone returns a deep copy of the exclusion trigger.
func (t *ExclusionTrigger) Clone() *ExclusionTrigger {
	c := *t

	return &c
}
