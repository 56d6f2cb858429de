package config

import "strings"

// TicksPerSecond is the number of scheduling ticks in one second of wall time.
const TicksPerSecond = 20

// ResponseMessage is an automatic chat reply sent after a notification fires.
type ResponseMessage struct {
	// Version is the record schema version.
	Version int `json:"version" jsonschema:"default=1"`

	// Enabled controls whether the response is scheduled.
	Enabled bool `json:"enabled"`

	// Template is the message text. Responses starting with "/" are sent as commands.
	Template string `json:"string"`

	// RegexGroups enables substitution of $1, $2, ... with groups captured by the
	// winning regex trigger.
	RegexGroups bool `json:"regexGroups"`

	// DelayTicks is the number of ticks to wait before sending.
	DelayTicks int `json:"delayTicks" jsonschema:"minimum=0"`
}

// NewResponseMessage creates an enabled response with no delay.
func NewResponseMessage(template string) *ResponseMessage {
	return &ResponseMessage{
		Version:  CurrentRecordVersion,
		Enabled:  true,
		Template: template,
	}
}

// IsBlank returns true if the template has no visible characters.
func (r *ResponseMessage) IsBlank() bool {
	return strings.TrimSpace(r.Template) == ""
}

// IsCommand returns true if the response is a slash command.
func (r *ResponseMessage) IsCommand() bool {
	return strings.HasPrefix(r.Template, "/")
}

// Clone returns a deep copy of the response message.
func (r *ResponseMessage) Clone() *ResponseMessage {
	c := *r

	return &c
}
