package dispatcher

//go:generate mockgen -source=collaborators.go -destination=collaborators_mock.go -package=dispatcher

import (
	"github.com/smykla-skalski/chatnotify/internal/engine"
	"github.com/smykla-skalski/chatnotify/pkg/config"
)

// ConfigSource provides the current notification config.
type ConfigSource interface {
	// Get returns the config, loading it on first use.
	Get() *config.Config
}

// Renderer shows a matched message to the user.
type Renderer interface {
	// Highlight displays msg with the resolved notification style.
	Highlight(msg engine.Message, style config.ResolvedStyle)
}

// SoundPlayer plays notification sounds.
type SoundPlayer interface {
	// Play plays sound on the given channel.
	Play(sound config.Sound, source config.SoundSource)
}

// ChatSender sends response messages back to the chat.
type ChatSender interface {
	// SendMessage sends a plain chat message.
	SendMessage(text string)

	// SendCommand sends a command, given without its leading slash.
	SendCommand(command string)
}
