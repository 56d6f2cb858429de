package config

import (
	"bytes"
	"encoding/json"

	"github.com/cockroachdb/errors"

	"github.com/smykla-skalski/chatnotify/pkg/config"
	"github.com/smykla-skalski/chatnotify/pkg/logger"
)

// ParseLegacy parses the flat layout written by releases up to 1.2.0-pre.2.
// Triggers, exclusions and responses were plain strings, the style was a color
// plus five format flags and the sound was split over several fields.
func ParseLegacy(data []byte, log logger.Logger) (*config.Config, error) {
	root, err := asObject(data)
	if err != nil {
		return nil, err
	}

	cfg := config.New()

	var (
		ignoreOwn   bool
		soundSource string
	)

	if err := root.requireAll(fields{
		{"ignoreOwnMessages", &ignoreOwn},
		{"notifSoundSource", &soundSource},
	}); err != nil {
		return nil, err
	}

	if err := root.optional("prefixes", &cfg.Prefixes); err != nil {
		return nil, err
	}

	cfg.CheckOwnMessages = !ignoreOwn

	if cfg.SoundSource, err = parseSoundSource(soundSource); err != nil {
		return nil, err
	}

	items, err := root.array("notifications")
	if err != nil {
		return nil, err
	}

	allowRegex := false

	cfg.Notifications = parseNotifications(items, log,
		func(raw json.RawMessage, _ logger.Logger) (*config.Notification, error) {
			n, regex, err := parseLegacyNotification(raw)
			if err == nil && regex {
				allowRegex = true
			}

			return n, err
		})

	cfg.AllowRegex = allowRegex

	repairUserNotification(cfg, log)

	return cfg, nil
}

func parseLegacyNotification(raw json.RawMessage) (*config.Notification, bool, error) {
	o, err := asObject(raw)
	if err != nil {
		return nil, false, err
	}

	var (
		enabled, triggerIsKey, playSound bool
		regex, exclusionOn, responseOn   bool
		triggers, exclusions, responses  []string
		color                            int
		formatControls                   []bool
		volume, pitch                    float64
	)

	if err := o.requireAll(fields{
		{"enabled", &enabled},
		{"triggers", &triggers},
		{"color", &color},
		{"formatControls", &formatControls},
		{"playSound", &playSound},
		{"soundVolume", &volume},
		{"soundPitch", &pitch},
	}); err != nil {
		return nil, false, err
	}

	if err := o.optionalAll(fields{
		{"triggerIsKey", &triggerIsKey},
		{"regexEnabled", &regex},
		{"exclusionEnabled", &exclusionOn},
		{"exclusionTriggers", &exclusions},
		{"responseEnabled", &responseOn},
		{"responseMessages", &responses},
	}); err != nil {
		return nil, false, err
	}

	if len(formatControls) != len([5]bool{}) {
		return nil, false, errors.Wrapf(ErrInvalidField,
			"\"formatControls\": want 5 flags, got %d", len(formatControls))
	}

	soundID, err := parseLegacySoundID(o)
	if err != nil {
		return nil, false, err
	}

	sound := config.DefaultSound()
	sound.Enabled = playSound
	sound.ID = soundID
	sound.Volume = volume
	sound.Pitch = pitch

	n := config.NewNotification(sound, styleFromFlags(color, [5]bool(formatControls)))
	n.Enabled = enabled

	for i, s := range triggers {
		t := config.NewTrigger(s)
		t.IsKey = i == 0 && triggerIsKey
		t.IsRegex = regex && !t.IsKey
		n.Triggers = append(n.Triggers, t)
	}

	for _, s := range exclusions {
		t := config.NewExclusionTrigger(s)
		t.Enabled = exclusionOn
		t.IsRegex = regex
		n.ExclusionTriggers = append(n.ExclusionTriggers, t)
	}

	for _, s := range responses {
		r := config.NewResponseMessage(s)
		r.Enabled = responseOn
		n.ResponseMessages = append(n.ResponseMessages, r)
	}

	return n, regex, nil
}

// parseLegacySoundID reads "sound" as either "namespace:path" or
// {"namespace": ..., "path": ...}.
func parseLegacySoundID(o object) (string, error) {
	if !o.has("sound") {
		return "", errors.Wrapf(ErrMissingField, "%q", "sound")
	}

	if raw := bytes.TrimSpace(o["sound"]); len(raw) > 0 && raw[0] == '"' {
		var id string
		if err := o.decode("sound", &id); err != nil {
			return "", err
		}

		return id, nil
	}

	loc, err := o.object("sound")
	if err != nil {
		return "", err
	}

	var namespace, path string

	if err := loc.requireAll(fields{
		{"namespace", &namespace},
		{"path", &path},
	}); err != nil {
		return "", errors.Wrap(err, "sound")
	}

	if namespace == "" {
		return path, nil
	}

	return namespace + ":" + path, nil
}
