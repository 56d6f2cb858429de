// Package engine matches chat messages against the notification list. It strips
// message prefixes, then evaluates notifications in priority order; the first
// notification whose triggers match and whose exclusion triggers do not wins.
package engine

import (
	"github.com/smykla-skalski/chatnotify/pkg/config"
)

// Message is an incoming chat line.
type Message struct {
	// Text is the plain chat text.
	Text string

	// Own is true when the user sent the message.
	Own bool

	// Keys are the translation keys the host identified the message by, if any.
	Keys []string
}

// Match describes a successful trigger match.
type Match struct {
	// Groups holds regex captures, index 0 being the whole match. Empty for
	// literal and key triggers.
	Groups []string
}

// Scope holds the config values a notification is evaluated with.
type Scope struct {
	AllowRegex   bool
	DefaultColor int
}

// ScopeOf returns the evaluation scope of cfg.
func ScopeOf(cfg *config.Config) Scope {
	return Scope{
		AllowRegex:   cfg.AllowRegex,
		DefaultColor: cfg.DefaultColor,
	}
}

// Result is the outcome of a matched message.
type Result struct {
	// Notification is the winning notification.
	Notification *config.Notification

	// NotificationIndex is the position of the notification in the config.
	NotificationIndex int

	// Trigger is the first trigger that matched.
	Trigger *config.Trigger

	// TriggerIndex is the position of Trigger in the notification.
	TriggerIndex int

	// Text is the message text the triggers were matched against, prefix removed.
	Text string

	// Style is the notification text style with inherited values resolved.
	Style config.ResolvedStyle

	// Sound is played for the match.
	Sound config.Sound

	// Responses are the enabled response messages of the notification.
	Responses []*config.ResponseMessage

	// Groups holds the regex captures of the winning trigger.
	Groups []string
}
