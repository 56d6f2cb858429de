package config

import (
	"encoding/json"

	"github.com/cockroachdb/errors"

	"github.com/smykla-skalski/chatnotify/pkg/config"
	"github.com/smykla-skalski/chatnotify/pkg/logger"
)

// ParseCurrent parses the current (versioned) config layout. A malformed
// notification, trigger or response is dropped with a warning; a malformed
// top-level field fails the whole parse.
func ParseCurrent(data []byte, log logger.Logger) (*config.Config, error) {
	root, err := asObject(data)
	if err != nil {
		return nil, err
	}

	cfg := &config.Config{Version: config.CurrentConfigVersion}

	if err := root.requireAll(fields{
		{"mixinEarly", &cfg.MixinEarly},
		{"debugShowKey", &cfg.DebugShowKey},
		{"checkOwnMessages", &cfg.CheckOwnMessages},
		{"soundSource", &cfg.SoundSource},
		{"allowRegex", &cfg.AllowRegex},
		{"defaultColor", &cfg.DefaultColor},
		{"prefixes", &cfg.Prefixes},
	}); err != nil {
		return nil, err
	}

	soundObj, err := root.object("defaultSound")
	if err != nil {
		return nil, err
	}

	if cfg.DefaultSound, err = decodeCurrentSound(soundObj); err != nil {
		return nil, errors.Wrap(err, "defaultSound")
	}

	if volume := clampVolume(cfg.DefaultSound.Volume); volume != cfg.DefaultSound.Volume {
		log.Warn("clamped default sound volume", "volume", cfg.DefaultSound.Volume, "clamped", volume)

		cfg.DefaultSound.Volume = volume
	}

	items, err := root.array("notifications")
	if err != nil {
		return nil, err
	}

	cfg.Notifications = parseNotifications(items, log, parseCurrentNotification)
	repairUserNotification(cfg, log)

	return cfg, nil
}

func parseCurrentNotification(raw json.RawMessage, log logger.Logger) (*config.Notification, error) {
	o, err := asObject(raw)
	if err != nil {
		return nil, err
	}

	n := &config.Notification{Version: config.CurrentRecordVersion}

	if err := o.require("enabled", &n.Enabled); err != nil {
		return nil, err
	}

	triggers, err := o.array("triggers")
	if err != nil {
		return nil, err
	}

	exclusions, err := o.array("exclusionTriggers")
	if err != nil {
		return nil, err
	}

	responses, err := o.array("responseMessages")
	if err != nil {
		return nil, err
	}

	styleObj, err := o.object("textStyle")
	if err != nil {
		return nil, err
	}

	if n.TextStyle, err = parseCurrentTextStyle(styleObj); err != nil {
		return nil, errors.Wrap(err, "textStyle")
	}

	soundObj, err := o.object("sound")
	if err != nil {
		return nil, err
	}

	if n.Sound, err = parseCurrentSound(soundObj); err != nil {
		return nil, errors.Wrap(err, "sound")
	}

	n.Triggers = parseRecords(triggers, log, "trigger", parseCurrentTrigger)
	n.ExclusionTriggers = parseRecords(exclusions, log, "exclusion trigger", parseCurrentExclusion)
	n.ResponseMessages = parseRecords(responses, log, "response message", parseCurrentResponse)

	return n, nil
}

func parseCurrentTrigger(raw json.RawMessage, _ logger.Logger) (*config.Trigger, error) {
	o, err := asObject(raw)
	if err != nil {
		return nil, err
	}

	t := config.NewTrigger("")

	if err := o.requireAll(fields{
		{"enabled", &t.Enabled},
		{"pattern", &t.Pattern},
		{"isKey", &t.IsKey},
		{"isRegex", &t.IsRegex},
	}); err != nil {
		return nil, err
	}

	if err := o.optional("caseSensitive", &t.CaseSensitive); err != nil {
		return nil, err
	}

	return t, nil
}

func parseCurrentExclusion(raw json.RawMessage, _ logger.Logger) (*config.ExclusionTrigger, error) {
	o, err := asObject(raw)
	if err != nil {
		return nil, err
	}

	t := config.NewExclusionTrigger("")

	if err := o.requireAll(fields{
		{"enabled", &t.Enabled},
		{"pattern", &t.Pattern},
		{"isRegex", &t.IsRegex},
	}); err != nil {
		return nil, err
	}

	if err := o.optional("caseSensitive", &t.CaseSensitive); err != nil {
		return nil, err
	}

	return t, nil
}

func parseCurrentResponse(raw json.RawMessage, _ logger.Logger) (*config.ResponseMessage, error) {
	o, err := asObject(raw)
	if err != nil {
		return nil, err
	}

	r := config.NewResponseMessage("")

	if err := o.requireAll(fields{
		{"enabled", &r.Enabled},
		{"string", &r.Template},
		{"regexGroups", &r.RegexGroups},
		{"delayTicks", &r.DelayTicks},
	}); err != nil {
		return nil, err
	}

	if r.DelayTicks < 0 {
		return nil, errors.Wrapf(ErrInvalidField, "\"delayTicks\": negative value %d", r.DelayTicks)
	}

	return r, nil
}

func parseCurrentTextStyle(o object) (config.TextStyle, error) {
	style := config.TextStyle{Version: config.CurrentRecordVersion}

	if err := o.optionalAll(fields{
		{"color", &style.Color},
		{"bold", &style.Bold},
		{"italic", &style.Italic},
		{"underlined", &style.Underlined},
		{"strikethrough", &style.Strikethrough},
		{"obfuscated", &style.Obfuscated},
	}); err != nil {
		return config.TextStyle{}, err
	}

	return style, nil
}

// parseCurrentSound decodes a notification sound. A volume out of range
// rejects the record.
func parseCurrentSound(o object) (config.Sound, error) {
	sound, err := decodeCurrentSound(o)
	if err != nil {
		return config.Sound{}, err
	}

	if clampVolume(sound.Volume) != sound.Volume {
		return config.Sound{}, errors.Wrapf(ErrInvalidField, "\"volume\": %v out of range", sound.Volume)
	}

	return sound, nil
}

func decodeCurrentSound(o object) (config.Sound, error) {
	sound := config.DefaultSound()

	if err := o.requireAll(fields{
		{"id", &sound.ID},
		{"volume", &sound.Volume},
		{"pitch", &sound.Pitch},
	}); err != nil {
		return config.Sound{}, err
	}

	if err := o.optional("enabled", &sound.Enabled); err != nil {
		return config.Sound{}, err
	}

	return sound, nil
}

func clampVolume(volume float64) float64 {
	return min(max(volume, config.MinVolume), config.MaxVolume)
}
