package config

import (
	"encoding/json"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/smykla-skalski/chatnotify/pkg/config"
	"github.com/smykla-skalski/chatnotify/pkg/logger"
)

// intermediaryNotification carries the per-notification switches that the
// intermediary layout stored beside the records they applied to.
type intermediaryNotification struct {
	regexEnabled     bool
	exclusionEnabled bool
	responseEnabled  bool
}

// ParseIntermediary parses the layout written by releases 1.2.0-pre.3 to 1.2.0.
// Regex, exclusion and response switches were per notification and the default
// sound was a plain resource id string.
func ParseIntermediary(data []byte, log logger.Logger) (*config.Config, error) {
	root, err := asObject(data)
	if err != nil {
		return nil, err
	}

	cfg := config.New()

	var soundSource string

	if err := root.requireAll(fields{
		{"mixinEarly", &cfg.MixinEarly},
		{"checkOwnMessages", &cfg.CheckOwnMessages},
		{"soundSource", &soundSource},
		{"defaultColor", &cfg.DefaultColor},
		{"defaultSound", &cfg.DefaultSound.ID},
		{"prefixes", &cfg.Prefixes},
	}); err != nil {
		return nil, err
	}

	if cfg.SoundSource, err = parseSoundSource(soundSource); err != nil {
		return nil, err
	}

	items, err := root.array("notifications")
	if err != nil {
		return nil, err
	}

	allowRegex := false

	cfg.Notifications = parseNotifications(items, log,
		func(raw json.RawMessage, log logger.Logger) (*config.Notification, error) {
			n, sw, err := parseIntermediaryNotification(raw, log)
			if err == nil && sw.regexEnabled {
				allowRegex = true
			}

			return n, err
		})

	cfg.AllowRegex = allowRegex
	cfg.DebugShowKey = false

	repairUserNotification(cfg, log)

	return cfg, nil
}

func parseIntermediaryNotification(
	raw json.RawMessage,
	log logger.Logger,
) (*config.Notification, intermediaryNotification, error) {
	var sw intermediaryNotification

	o, err := asObject(raw)
	if err != nil {
		return nil, sw, err
	}

	n := config.NewNotification(config.DefaultSound(), config.TextStyle{Version: config.CurrentRecordVersion})

	if err := o.requireAll(fields{
		{"enabled", &n.Enabled},
		{"regexEnabled", &sw.regexEnabled},
		{"exclusionEnabled", &sw.exclusionEnabled},
		{"responseEnabled", &sw.responseEnabled},
	}); err != nil {
		return nil, sw, err
	}

	triggers, err := o.array("triggers")
	if err != nil {
		return nil, sw, err
	}

	exclusions, err := o.array("exclusionTriggers")
	if err != nil {
		return nil, sw, err
	}

	var responses []string
	if err := o.require("responseMessages", &responses); err != nil {
		return nil, sw, err
	}

	styleObj, err := o.object("textStyle")
	if err != nil {
		return nil, sw, err
	}

	if n.TextStyle, err = parseIntermediaryTextStyle(styleObj); err != nil {
		return nil, sw, errors.Wrap(err, "textStyle")
	}

	soundObj, err := o.object("sound")
	if err != nil {
		return nil, sw, err
	}

	if n.Sound, err = parseIntermediarySound(soundObj); err != nil {
		return nil, sw, errors.Wrap(err, "sound")
	}

	n.Triggers = parseRecords(triggers, log, "trigger",
		func(raw json.RawMessage, _ logger.Logger) (*config.Trigger, error) {
			return parseIntermediaryTrigger(raw, sw.regexEnabled)
		})

	n.ExclusionTriggers = parseRecords(exclusions, log, "exclusion trigger",
		func(raw json.RawMessage, _ logger.Logger) (*config.ExclusionTrigger, error) {
			return parseIntermediaryExclusion(raw, sw)
		})

	for _, s := range responses {
		r := config.NewResponseMessage(s)
		r.Enabled = sw.responseEnabled
		n.ResponseMessages = append(n.ResponseMessages, r)
	}

	return n, sw, nil
}

func parseIntermediaryTrigger(raw json.RawMessage, regex bool) (*config.Trigger, error) {
	o, err := asObject(raw)
	if err != nil {
		return nil, err
	}

	t := config.NewTrigger("")

	if err := o.requireAll(fields{
		{"enabled", &t.Enabled},
		{"isKey", &t.IsKey},
		{"string", &t.Pattern},
	}); err != nil {
		return nil, err
	}

	t.IsRegex = regex && !t.IsKey

	return t, nil
}

func parseIntermediaryExclusion(raw json.RawMessage, sw intermediaryNotification) (*config.ExclusionTrigger, error) {
	o, err := asObject(raw)
	if err != nil {
		return nil, err
	}

	t := config.NewExclusionTrigger("")

	if err := o.requireAll(fields{
		{"enabled", &t.Enabled},
		{"string", &t.Pattern},
	}); err != nil {
		return nil, err
	}

	t.Enabled = t.Enabled && sw.exclusionEnabled
	t.IsRegex = sw.regexEnabled

	return t, nil
}

func parseIntermediaryTextStyle(o object) (config.TextStyle, error) {
	var (
		color int
		flags [5]bool
	)

	if err := o.requireAll(fields{
		{"color", &color},
		{"bold", &flags[0]},
		{"italic", &flags[1]},
		{"underlined", &flags[2]},
		{"strikethrough", &flags[3]},
		{"obfuscated", &flags[4]},
	}); err != nil {
		return config.TextStyle{}, err
	}

	return styleFromFlags(color, flags), nil
}

func parseIntermediarySound(o object) (config.Sound, error) {
	sound := config.DefaultSound()

	if err := o.requireAll(fields{
		{"enabled", &sound.Enabled},
		{"id", &sound.ID},
		{"volume", &sound.Volume},
		{"pitch", &sound.Pitch},
	}); err != nil {
		return config.Sound{}, err
	}

	return sound, nil
}

// styleFromFlags builds a style from a packed color and the bold, italic,
// underlined, strikethrough and obfuscated flags, in that order.
func styleFromFlags(color int, flags [5]bool) config.TextStyle {
	style := config.NewTextStyle(color)
	style.Bold = config.Bool(flags[0])
	style.Italic = config.Bool(flags[1])
	style.Underlined = config.Bool(flags[2])
	style.Strikethrough = config.Bool(flags[3])
	style.Obfuscated = config.Bool(flags[4])

	return style
}

func parseSoundSource(s string) (config.SoundSource, error) {
	src, err := config.SoundSourceString(strings.TrimSpace(s))
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidField, "sound source %q", s)
	}

	return src, nil
}
