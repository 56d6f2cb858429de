package config

import (
	"strings"

	"github.com/invopop/jsonschema"
)

//go:generate enumer -type=SoundSource -trimprefix=SoundSource -transform=upper -json -text
//go:generate go run github.com/smykla-skalski/chatnotify/tools/enumerfix soundsource_enumer.go

// SoundSource is the audio channel a notification sound is played on.
type SoundSource int

const (
	SoundSourceMaster SoundSource = iota
	SoundSourceMusic
	SoundSourceRecords
	SoundSourceWeather
	SoundSourceBlocks
	SoundSourceHostile
	SoundSourceNeutral
	SoundSourcePlayers
	SoundSourceAmbient
	SoundSourceVoice
)

// JSONSchema returns the JSON Schema for the SoundSource type.
func (SoundSource) JSONSchema() *jsonschema.Schema {
	names := SoundSourceStrings()
	enum := make([]any, 0, len(names))

	for _, name := range names {
		enum = append(enum, name)
	}

	return &jsonschema.Schema{
		Type:        "string",
		Description: "Audio channel notification sounds are played on",
		Enum:        enum,
	}
}

// DefaultSoundSource is the channel used by new configurations.
const DefaultSoundSource = SoundSourcePlayers

const (
	// DefaultSoundID is the resource id of the default notification sound.
	DefaultSoundID = "block.note_block.bell"

	// DefaultNamespace is prepended to sound ids without a namespace.
	DefaultNamespace = "minecraft"

	// MinVolume and MaxVolume bound the sound volume.
	MinVolume = 0.0
	MaxVolume = 1.0

	// MinPitch and MaxPitch are the typical pitch range. Not enforced.
	MinPitch = 0.5
	MaxPitch = 2.0
)

// Sound is the audio cue played when a notification fires.
type Sound struct {
	// Version is the record schema version.
	Version int `json:"version" jsonschema:"default=1"`

	// Enabled controls whether the sound is played.
	Enabled bool `json:"enabled"`

	// ID is the sound resource identifier, with or without namespace.
	ID string `json:"id"`

	// Volume ranges from 0.0 to 1.0.
	Volume float64 `json:"volume" jsonschema:"minimum=0,maximum=1"`

	// Pitch typically ranges from 0.5 to 2.0.
	Pitch float64 `json:"pitch"`
}

// DefaultSound returns the sound used by new configurations.
func DefaultSound() Sound {
	return Sound{
		Version: CurrentRecordVersion,
		Enabled: true,
		ID:      DefaultSoundID,
		Volume:  1.0,
		Pitch:   1.0,
	}
}

// ResourceLocation returns the id with the default namespace added when it has none.
func (s Sound) ResourceLocation() string {
	id := strings.TrimSpace(s.ID)
	if id == "" || strings.Contains(id, ":") {
		return id
	}

	return DefaultNamespace + ":" + id
}

// IsAudible returns true if the sound is enabled, has an id and a positive volume.
func (s Sound) IsAudible() bool {
	return s.Enabled && strings.TrimSpace(s.ID) != "" && s.Volume > 0
}
