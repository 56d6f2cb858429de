package config

import (
	"encoding/json"

	"github.com/smykla-skalski/chatnotify/pkg/config"
	"github.com/smykla-skalski/chatnotify/pkg/logger"
)

type recordParser[T any] func(json.RawMessage, logger.Logger) (*T, error)

// parseRecords parses every element with parse. Elements that fail are dropped
// with a warning; the rest are kept in order.
func parseRecords[T any](items []json.RawMessage, log logger.Logger, kind string, parse recordParser[T]) []*T {
	out := make([]*T, 0, len(items))

	for i, raw := range items {
		rec, err := parse(raw, log)
		if err != nil {
			log.Warn("dropping malformed record", "kind", kind, "index", i, "error", err)

			continue
		}

		out = append(out, rec)
	}

	return out
}

// parseNotifications is parseRecords for notification lists. A malformed first
// record is replaced by a fresh user notification instead of being dropped, so
// the next notification never takes over the reserved slot.
func parseNotifications(
	items []json.RawMessage,
	log logger.Logger,
	parse recordParser[config.Notification],
) []*config.Notification {
	out := make([]*config.Notification, 0, len(items))

	for i, raw := range items {
		n, err := parse(raw, log)
		if err != nil {
			log.Warn("dropping malformed record", "kind", "notification", "index", i, "error", err)

			if i == config.UserNotificationIndex {
				out = append(out, config.NewUserNotification())
			}

			continue
		}

		out = append(out, n)
	}

	return out
}

// repairUserNotification replaces a missing user notification, or one with fewer
// than two triggers, with a fresh one.
func repairUserNotification(cfg *config.Config, log logger.Logger) {
	if cfg.RepairUserNotification() {
		log.Warn("replaced malformed user notification")
	}
}
