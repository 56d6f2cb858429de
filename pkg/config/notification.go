package config

import (
	"strconv"
	"strings"
)

const (
	// ProfileNameTrigger is the index of the reserved profile name trigger.
	ProfileNameTrigger = 0

	// DisplayNameTrigger is the index of the reserved display name trigger.
	DisplayNameTrigger = 1

	// reservedTriggers is the number of triggers the user notification always keeps.
	reservedTriggers = 2

	// labelTriggers is the number of triggers shown in a notification label.
	labelTriggers = 3

	unconfiguredLabel = "> Click to Configure <"

	keyLabelPrefix  = "[Key] "
	anyMessageLabel = "Any Message"
)

// Notification is an ordered rule: triggers that fire it, exclusion triggers that
// suppress it, and what happens when it fires.
type Notification struct {
	// Version is the record schema version.
	Version int `json:"version" jsonschema:"default=1"`

	// Enabled controls whether the notification is evaluated.
	Enabled bool `json:"enabled"`

	// Triggers are tried in order; the first match wins.
	Triggers []*Trigger `json:"triggers"`

	// ExclusionTriggers suppress the notification when any of them matches.
	ExclusionTriggers []*ExclusionTrigger `json:"exclusionTriggers"`

	// ResponseMessages are scheduled when the notification fires.
	ResponseMessages []*ResponseMessage `json:"responseMessages"`

	// TextStyle is the highlight applied to the matched message.
	TextStyle TextStyle `json:"textStyle"`

	// Sound is played when the notification fires.
	Sound Sound `json:"sound"`

	// user marks the reserved notification at index 0. Not persisted; set by the owning Config.
	user bool
}

// NewNotification creates an enabled notification with no triggers.
func NewNotification(sound Sound, style TextStyle) *Notification {
	return &Notification{
		Version:           CurrentRecordVersion,
		Enabled:           true,
		Triggers:          []*Trigger{},
		ExclusionTriggers: []*ExclusionTrigger{},
		ResponseMessages:  []*ResponseMessage{},
		TextStyle:         style,
		Sound:             sound,
	}
}

// NewUserNotification creates the reserved notification for the user's own names.
// Trigger 0 holds the profile name and trigger 1 the display name.
func NewUserNotification() *Notification {
	n := NewNotification(DefaultSound(), NewTextStyle(DefaultColor))
	n.Triggers = []*Trigger{NewTrigger(""), NewTrigger("")}
	n.user = true

	return n
}

// IsUser returns true for the reserved user notification.
func (n *Notification) IsUser() bool {
	return n.user
}

// HasReservedTriggers returns true if the notification carries both name triggers.
func (n *Notification) HasReservedTriggers() bool {
	return len(n.Triggers) >= reservedTriggers && n.Triggers[0] != nil && n.Triggers[1] != nil
}

// SetEnabled enables or disables the notification. Enabling a notification that
// has nothing to match on is refused.
func (n *Notification) SetEnabled(enabled bool) bool {
	if enabled && len(n.Triggers) == 0 {
		return false
	}

	n.Enabled = enabled

	return true
}

// AddTrigger appends a trigger.
func (n *Notification) AddTrigger(t *Trigger) {
	n.Triggers = append(n.Triggers, t)
}

// RemoveTrigger removes the trigger at index. The two name triggers of the user
// notification and out of range indexes are left alone.
func (n *Notification) RemoveTrigger(index int) bool {
	if index < 0 || index >= len(n.Triggers) {
		return false
	}

	if n.user && index < reservedTriggers {
		return false
	}

	n.Triggers = removeAt(n.Triggers, index)

	return true
}

// AddExclusionTrigger appends an exclusion trigger.
func (n *Notification) AddExclusionTrigger(t *ExclusionTrigger) {
	n.ExclusionTriggers = append(n.ExclusionTriggers, t)
}

// RemoveExclusionTrigger removes the exclusion trigger at index.
func (n *Notification) RemoveExclusionTrigger(index int) bool {
	if index < 0 || index >= len(n.ExclusionTriggers) {
		return false
	}

	n.ExclusionTriggers = removeAt(n.ExclusionTriggers, index)

	return true
}

// AddResponseMessage appends a response message.
func (n *Notification) AddResponseMessage(r *ResponseMessage) {
	n.ResponseMessages = append(n.ResponseMessages, r)
}

// RemoveResponseMessage removes the response message at index.
func (n *Notification) RemoveResponseMessage(index int) bool {
	if index < 0 || index >= len(n.ResponseMessages) {
		return false
	}

	n.ResponseMessages = removeAt(n.ResponseMessages, index)

	return true
}

// Purge removes blank triggers, exclusion triggers and response messages, and clamps
// negative response delays. The user notification keeps its two name triggers.
func (n *Notification) Purge() {
	triggers := make([]*Trigger, 0, len(n.Triggers))

	for i, t := range n.Triggers {
		if n.user && i < reservedTriggers {
			if t == nil {
				t = NewTrigger("")
			}

			triggers = append(triggers, t)

			continue
		}

		if t != nil && !t.IsBlank() {
			triggers = append(triggers, t)
		}
	}

	for n.user && len(triggers) < reservedTriggers {
		triggers = append(triggers, NewTrigger(""))
	}

	n.Triggers = triggers

	exclusions := make([]*ExclusionTrigger, 0, len(n.ExclusionTriggers))

	for _, t := range n.ExclusionTriggers {
		if t != nil && !t.IsBlank() {
			exclusions = append(exclusions, t)
		}
	}

	n.ExclusionTriggers = exclusions

	responses := make([]*ResponseMessage, 0, len(n.ResponseMessages))

	for _, r := range n.ResponseMessages {
		if r == nil || r.IsBlank() {
			continue
		}

		if r.DelayTicks < 0 {
			r.DelayTicks = 0
		}

		responses = append(responses, r)
	}

	n.ResponseMessages = responses
}

// AutoDisable switches the notification off when it has no triggers left.
func (n *Notification) AutoDisable() {
	if len(n.Triggers) == 0 {
		n.Enabled = false
	}
}

// IsEmpty returns true if there are no triggers, exclusion triggers or responses.
func (n *Notification) IsEmpty() bool {
	return len(n.Triggers) == 0 && len(n.ExclusionTriggers) == 0 && len(n.ResponseMessages) == 0
}

// ResetAdvanced clears exclusion triggers and response messages and turns regex off
// on every trigger.
func (n *Notification) ResetAdvanced() {
	n.ExclusionTriggers = []*ExclusionTrigger{}
	n.ResponseMessages = []*ResponseMessage{}

	for _, t := range n.Triggers {
		t.IsRegex = false
	}
}

// Label summarises the notification for list views: up to three trigger patterns and
// the number of triggers not shown.
func (n *Notification) Label() string {
	if len(n.Triggers) == 0 || n.Triggers[0].IsBlank() {
		return unconfiguredLabel
	}

	var b strings.Builder

	shown := 0

	for i, t := range n.Triggers {
		if t.IsBlank() {
			continue
		}

		if shown == labelTriggers {
			b.WriteString(" [+")
			b.WriteString(strconv.Itoa(len(n.Triggers) - i))
			b.WriteString("]")

			break
		}

		if shown > 0 {
			b.WriteString(", ")
		}

		b.WriteString(triggerLabel(t))

		shown++
	}

	return b.String()
}

// triggerLabel renders one trigger for a notification label. Key triggers are
// marked, and the any-message key is spelled out.
func triggerLabel(t *Trigger) string {
	if !t.IsKey {
		return t.Pattern
	}

	if t.Pattern == AnyMessageKey {
		return keyLabelPrefix + anyMessageLabel
	}

	return keyLabelPrefix + t.Pattern
}

// Clone returns a deep copy of the notification.
func (n *Notification) Clone() *Notification {
	c := &Notification{
		Version:           n.Version,
		Enabled:           n.Enabled,
		Triggers:          make([]*Trigger, 0, len(n.Triggers)),
		ExclusionTriggers: make([]*ExclusionTrigger, 0, len(n.ExclusionTriggers)),
		ResponseMessages:  make([]*ResponseMessage, 0, len(n.ResponseMessages)),
		TextStyle:         n.TextStyle.Clone(),
		Sound:             n.Sound,
		user:              n.user,
	}

	for _, t := range n.Triggers {
		c.Triggers = append(c.Triggers, t.Clone())
	}

	for _, t := range n.ExclusionTriggers {
		c.ExclusionTriggers = append(c.ExclusionTriggers, t.Clone())
	}

	for _, r := range n.ResponseMessages {
		c.ResponseMessages = append(c.ResponseMessages, r.Clone())
	}

	return c
}

func removeAt[T any](s []T, index int) []T {
	return append(s[:index:index], s[index+1:]...)
}
