package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/invopop/jsonschema"
)

// DefaultColor is the packed RGB highlight color used when nothing else is set (#FFC400).
const DefaultColor = 16761856

// MaxColor is the largest packed RGB value.
const MaxColor = 0xFFFFFF

const noColorLiteral = "none"

// Color is a packed RGB highlight color, or "none" when highlighting is switched off.
type Color struct {
	// RGB is the packed 0xRRGGBB value. Ignored when Valid is false.
	RGB int

	// Valid is false for "none".
	Valid bool
}

// RGBColor returns a valid color with the given packed value.
func RGBColor(rgb int) *Color {
	return &Color{RGB: rgb & MaxColor, Valid: true}
}

// NoColor returns the "none" color.
func NoColor() *Color {
	return &Color{}
}

// Hex returns the color as #RRGGBB, or "none".
func (c Color) Hex() string {
	if !c.Valid {
		return noColorLiteral
	}

	return fmt.Sprintf("#%06X", c.RGB&MaxColor)
}

// JSONSchema returns the JSON Schema for the Color type.
func (Color) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Description: "Packed RGB color, or \"none\" to switch highlighting off",
		OneOf: []*jsonschema.Schema{
			{Type: "integer", Minimum: json.Number("0"), Maximum: json.Number(strconv.Itoa(MaxColor))},
			{Type: "string", Enum: []any{noColorLiteral}},
		},
		Examples: []any{DefaultColor, noColorLiteral},
	}
}

// MarshalJSON encodes the color as an integer or the string "none".
func (c Color) MarshalJSON() ([]byte, error) {
	if !c.Valid {
		return json.Marshal(noColorLiteral)
	}

	return []byte(strconv.Itoa(c.RGB & MaxColor)), nil
}

// UnmarshalJSON accepts an integer or the string "none".
func (c *Color) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return errors.Wrap(err, "failed to decode color")
		}

		if s != noColorLiteral {
			return errors.Newf("invalid color %q", s)
		}

		*c = Color{}

		return nil
	}

	var rgb int
	if err := json.Unmarshal(data, &rgb); err != nil {
		return errors.Wrap(err, "failed to decode color")
	}

	*c = Color{RGB: rgb & MaxColor, Valid: true}

	return nil
}

// TextStyle describes how a matched message is highlighted. A nil field inherits
// from the default.
type TextStyle struct {
	// Version is the record schema version.
	Version int `json:"version" jsonschema:"default=1"`

	Color         *Color `json:"color,omitempty"`
	Bold          *bool  `json:"bold,omitempty"`
	Italic        *bool  `json:"italic,omitempty"`
	Underlined    *bool  `json:"underlined,omitempty"`
	Strikethrough *bool  `json:"strikethrough,omitempty"`
	Obfuscated    *bool  `json:"obfuscated,omitempty"`
}

// NewTextStyle creates a style with the given color and every format flag inherited.
func NewTextStyle(color int) TextStyle {
	return TextStyle{
		Version: CurrentRecordVersion,
		Color:   RGBColor(color),
	}
}

// ResolvedStyle is a TextStyle with every inherited value filled in.
type ResolvedStyle struct {
	Color         Color
	Bold          bool
	Italic        bool
	Underlined    bool
	Strikethrough bool
	Obfuscated    bool
}

// Resolve fills inherited values. A nil color inherits defaultColor, nil flags are off.
func (s TextStyle) Resolve(defaultColor int) ResolvedStyle {
	resolved := ResolvedStyle{
		Color:         Color{RGB: defaultColor & MaxColor, Valid: true},
		Bold:          deref(s.Bold),
		Italic:        deref(s.Italic),
		Underlined:    deref(s.Underlined),
		Strikethrough: deref(s.Strikethrough),
		Obfuscated:    deref(s.Obfuscated),
	}

	if s.Color != nil {
		resolved.Color = *s.Color
	}

	return resolved
}

// Clone returns a deep copy of the style.
func (s TextStyle) Clone() TextStyle {
	c := TextStyle{Version: s.Version}

	if s.Color != nil {
		color := *s.Color
		c.Color = &color
	}

	c.Bold = clonePtr(s.Bold)
	c.Italic = clonePtr(s.Italic)
	c.Underlined = clonePtr(s.Underlined)
	c.Strikethrough = clonePtr(s.Strikethrough)
	c.Obfuscated = clonePtr(s.Obfuscated)

	return c
}

// Bool returns a pointer to b.
func Bool(b bool) *bool {
	return &b
}

func deref(b *bool) bool {
	return b != nil && *b
}

func clonePtr(b *bool) *bool {
	if b == nil {
		return nil
	}

	return Bool(*b)
}
