// Package config provides the chat notification configuration model: notifications,
// their triggers, styles, sounds and response messages, and the global options.
//
// The notification list always holds the user notification at index 0. It matches the
// user's own names, is never removed and never takes part in priority changes.
package config

import (
	"slices"
	"strings"
)

const (
	// CurrentConfigVersion is the latest config schema version.
	CurrentConfigVersion = 1

	// CurrentRecordVersion is the latest schema version of nested records.
	CurrentRecordVersion = 1

	// UserNotificationIndex is the position of the reserved user notification.
	UserNotificationIndex = 0
)

// DefaultPrefixes are the message prefixes of new configurations.
var DefaultPrefixes = []string{"/shout", "!"}

// Config is the root chat notification configuration.
type Config struct {
	// Version is the config schema version.
	Version int `json:"version" jsonschema:"default=1"`

	// MixinEarly makes the host intercept chat before other mods process it.
	MixinEarly bool `json:"mixinEarly"`

	// DebugShowKey makes the host show message translation keys.
	DebugShowKey bool `json:"debugShowKey"`

	// CheckOwnMessages enables matching of messages sent by the user.
	CheckOwnMessages bool `json:"checkOwnMessages"`

	// SoundSource is the audio channel notification sounds are played on.
	SoundSource SoundSource `json:"soundSource"`

	// AllowRegex gates every regex trigger. When false, regex triggers never match.
	AllowRegex bool `json:"allowRegex"`

	// DefaultColor is the packed RGB color of new notifications and inherited styles.
	DefaultColor int `json:"defaultColor" jsonschema:"minimum=0,maximum=16777215"`

	// DefaultSound is copied into new notifications.
	DefaultSound Sound `json:"defaultSound"`

	// Prefixes are stripped from the start of messages before matching, longest first.
	Prefixes []string `json:"prefixes"`

	// Notifications in priority order. Index 0 is the user notification.
	Notifications []*Notification `json:"notifications"`
}

// New creates a configuration with default values.
func New() *Config {
	return &Config{
		Version:          CurrentConfigVersion,
		CheckOwnMessages: true,
		SoundSource:      DefaultSoundSource,
		DefaultColor:     DefaultColor,
		DefaultSound:     DefaultSound(),
		Prefixes:         slices.Clone(DefaultPrefixes),
		Notifications:    []*Notification{NewUserNotification()},
	}
}

// UserNotification returns the reserved notification at index 0.
func (c *Config) UserNotification() *Notification {
	c.RepairUserNotification()

	return c.Notifications[UserNotificationIndex]
}

// SetProfileName updates the profile name trigger of the user notification.
func (c *Config) SetProfileName(name string) {
	c.UserNotification().Triggers[ProfileNameTrigger].Pattern = name
}

// SetDisplayName updates the display name trigger of the user notification.
func (c *Config) SetDisplayName(name string) {
	c.UserNotification().Triggers[DisplayNameTrigger].Pattern = name
}

// Notification returns the notification at index, or nil when out of range.
func (c *Config) Notification(index int) *Notification {
	if index < 0 || index >= len(c.Notifications) {
		return nil
	}

	return c.Notifications[index]
}

// AddNotification appends a blank notification seeded with the default color and sound.
func (c *Config) AddNotification() *Notification {
	n := NewNotification(c.DefaultSound, NewTextStyle(c.DefaultColor))
	c.Notifications = append(c.Notifications, n)

	return n
}

// RemoveNotification removes the notification at index. Index 0 and out of range
// indexes are ignored. Returns whether a notification was removed.
func (c *Config) RemoveNotification(index int) bool {
	if index <= UserNotificationIndex || index >= len(c.Notifications) {
		return false
	}

	c.Notifications = removeAt(c.Notifications, index)

	return true
}

// IncreasePriority swaps the notification at index with the one before it.
func (c *Config) IncreasePriority(index int) {
	if index <= 1 || index >= len(c.Notifications) {
		return
	}

	c.Notifications[index], c.Notifications[index-1] = c.Notifications[index-1], c.Notifications[index]
}

// DecreasePriority swaps the notification at index with the one after it.
func (c *Config) DecreasePriority(index int) {
	if index <= UserNotificationIndex || index >= len(c.Notifications)-1 {
		return
	}

	c.Notifications[index], c.Notifications[index+1] = c.Notifications[index+1], c.Notifications[index]
}

// ToMaxPriority moves the notification at index to position 1, directly after the
// user notification, keeping the relative order of the others.
func (c *Config) ToMaxPriority(index int) {
	if index <= 1 || index >= len(c.Notifications) {
		return
	}

	n := c.Notifications[index]
	c.Notifications = slices.Delete(c.Notifications, index, index+1)
	c.Notifications = slices.Insert(c.Notifications, 1, n)
}

// ToMinPriority moves the notification at index to the end of the list, keeping the
// relative order of the others.
func (c *Config) ToMinPriority(index int) {
	if index <= UserNotificationIndex || index >= len(c.Notifications)-1 {
		return
	}

	n := c.Notifications[index]
	c.Notifications = slices.Delete(c.Notifications, index, index+1)
	c.Notifications = append(c.Notifications, n)
}

// AddPrefix adds a prefix. Prefixes are stored trimmed and lower-cased.
func (c *Config) AddPrefix(prefix string) bool {
	prefix = normalizePrefix(prefix)
	if prefix == "" || slices.Contains(c.Prefixes, prefix) {
		return false
	}

	c.Prefixes = append(c.Prefixes, prefix)

	return true
}

// RemovePrefix removes the prefix at index.
func (c *Config) RemovePrefix(index int) bool {
	if index < 0 || index >= len(c.Prefixes) {
		return false
	}

	c.Prefixes = removeAt(c.Prefixes, index)

	return true
}

// Validate cleans up the configuration. It normalises and sorts prefixes by
// descending length, purges blank entries from every notification, drops
// notifications left with nothing in them and disables those left without triggers.
// The user notification is purged but never removed.
func (c *Config) Validate() {
	c.Version = CurrentConfigVersion

	prefixes := make([]string, 0, len(c.Prefixes))

	for _, p := range c.Prefixes {
		if p = normalizePrefix(p); p != "" {
			prefixes = append(prefixes, p)
		}
	}

	slices.SortStableFunc(prefixes, func(a, b string) int {
		return len(b) - len(a)
	})

	c.Prefixes = prefixes

	c.RepairUserNotification()

	user := c.Notifications[UserNotificationIndex]
	user.Purge()
	user.AutoDisable()

	kept := make([]*Notification, 1, len(c.Notifications))
	kept[0] = user

	for _, n := range c.Notifications[1:] {
		if n == nil {
			continue
		}

		n.user = false
		n.Purge()

		if n.IsEmpty() {
			continue
		}

		n.AutoDisable()

		kept = append(kept, n)
	}

	c.Notifications = kept
}

// RepairUserNotification replaces a missing or malformed user notification with a
// fresh one. Returns true if a replacement happened.
func (c *Config) RepairUserNotification() bool {
	if len(c.Notifications) == 0 {
		c.Notifications = []*Notification{NewUserNotification()}

		return true
	}

	if n := c.Notifications[UserNotificationIndex]; n == nil || !n.HasReservedTriggers() {
		c.Notifications[UserNotificationIndex] = NewUserNotification()

		return true
	}

	c.Notifications[UserNotificationIndex].user = true

	return false
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c
	clone.Prefixes = slices.Clone(c.Prefixes)
	clone.Notifications = make([]*Notification, 0, len(c.Notifications))

	for _, n := range c.Notifications {
		clone.Notifications = append(clone.Notifications, n.Clone())
	}

	return &clone
}

func normalizePrefix(prefix string) string {
	return strings.ToLower(strings.TrimSpace(prefix))
}
