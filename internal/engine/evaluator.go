package engine

import (
	"github.com/smykla-skalski/chatnotify/pkg/config"
)

// Evaluate matches msg against a single notification and returns nil when it
// does not fire. A disabled notification never fires, any matching exclusion
// trigger suppresses it, and otherwise the first matching trigger wins.
func (m *Matcher) Evaluate(n *config.Notification, msg Message, scope Scope) *Result {
	if n == nil || !n.Enabled {
		return nil
	}

	for _, ex := range n.ExclusionTriggers {
		if m.MatchExclusion(ex, msg, scope.AllowRegex) {
			return nil
		}
	}

	for i, t := range n.Triggers {
		match, ok := m.MatchTrigger(t, msg, scope.AllowRegex)
		if !ok {
			continue
		}

		return &Result{
			Notification: n,
			Trigger:      t,
			TriggerIndex: i,
			Text:         msg.Text,
			Style:        n.TextStyle.Resolve(scope.DefaultColor),
			Sound:        n.Sound,
			Responses:    enabledResponses(n.ResponseMessages),
			Groups:       match.Groups,
		}
	}

	return nil
}

func enabledResponses(responses []*config.ResponseMessage) []*config.ResponseMessage {
	out := make([]*config.ResponseMessage, 0, len(responses))

	for _, r := range responses {
		if r != nil && r.Enabled {
			out = append(out, r)
		}
	}

	return out
}
