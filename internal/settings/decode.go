package settings

import (
	"reflect"

	"github.com/go-viper/mapstructure/v2"

	"github.com/smykla-skalski/chatnotify/pkg/logger"
)

// decoderConfig returns a mapstructure decoder config with the settings type hooks.
func decoderConfig(result any) *mapstructure.DecoderConfig {
	return &mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			stringToLevelHookFunc(),
			mapstructure.StringToTimeDurationHookFunc(),
		),
		WeaklyTypedInput: true,
		Result:           result,
	}
}

// stringToLevelHookFunc returns a decode hook for converting strings to logger.Level.
//
//nolint:ireturn // required by mapstructure.DecodeHookFunc interface
func stringToLevelHookFunc() mapstructure.DecodeHookFunc {
	return func(
		_ reflect.Type,
		t reflect.Type,
		data any,
	) (any, error) {
		if t != reflect.TypeFor[logger.Level]() {
			return data, nil
		}

		switch v := data.(type) {
		case string:
			return logger.LevelString(v)

		case int:
			return logger.Level(v), nil

		case int64:
			return logger.Level(v), nil

		default:
			return data, nil
		}
	}
}
