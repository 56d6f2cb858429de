// Package dispatcher connects incoming chat lines to the matching engine and
// hands the outcome to the renderer, the sound player and the chat sender.
package dispatcher

import (
	"github.com/smykla-skalski/chatnotify/internal/engine"
	"github.com/smykla-skalski/chatnotify/internal/scheduler"
	"github.com/smykla-skalski/chatnotify/pkg/logger"
)

// Dispatcher drives one chat session. It is not safe for concurrent use; the
// host calls Handle and Tick from a single goroutine.
type Dispatcher struct {
	source    ConfigSource
	renderer  Renderer
	player    SoundPlayer
	sender    ChatSender
	engine    *engine.Engine
	scheduler *scheduler.Scheduler
	logger    logger.Logger
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithLogger sets the logger for the dispatcher.
func WithLogger(log logger.Logger) Option {
	return func(d *Dispatcher) {
		d.logger = log
	}
}

// WithEngine sets the matching engine.
func WithEngine(e *engine.Engine) Option {
	return func(d *Dispatcher) {
		if e != nil {
			d.engine = e
		}
	}
}

// WithScheduler sets the response scheduler.
func WithScheduler(s *scheduler.Scheduler) Option {
	return func(d *Dispatcher) {
		if s != nil {
			d.scheduler = s
		}
	}
}

// New creates a Dispatcher.
func New(
	source ConfigSource,
	renderer Renderer,
	player SoundPlayer,
	sender ChatSender,
	opts ...Option,
) *Dispatcher {
	d := &Dispatcher{
		source:   source,
		renderer: renderer,
		player:   player,
		sender:   sender,
	}

	for _, opt := range opts {
		opt(d)
	}

	if d.logger == nil {
		d.logger = logger.NewNoOpLogger()
	}

	if d.engine == nil {
		d.engine = engine.New(engine.WithLogger(d.logger))
	}

	if d.scheduler == nil {
		d.scheduler = scheduler.New(scheduler.WithLogger(d.logger))
	}

	return d
}

// Handle processes one chat line. On a match the message is highlighted, the
// sound is played when audible and the responses are scheduled. Returns the
// match result, or nil.
func (d *Dispatcher) Handle(msg engine.Message) *engine.Result {
	cfg := d.source.Get()

	res := d.engine.Process(cfg, msg)
	if res == nil {
		return nil
	}

	d.logger.Info("notification fired",
		"notification", res.NotificationIndex,
		"trigger", res.Trigger.Pattern,
	)

	d.renderer.Highlight(msg, res.Style)

	if res.Sound.IsAudible() {
		d.player.Play(res.Sound, cfg.SoundSource)
	}

	d.scheduler.Schedule(res)

	return res
}

// Tick advances the scheduler by one tick and sends every due response.
// Returns the number of responses sent.
func (d *Dispatcher) Tick() int {
	due := d.scheduler.Tick()

	for _, out := range due {
		if out.Command {
			d.sender.SendCommand(out.Text)
		} else {
			d.sender.SendMessage(out.Text)
		}

		d.logger.Debug("response sent", "response", out.String())
	}

	return len(due)
}

// Pending returns the number of responses waiting to be sent.
func (d *Dispatcher) Pending() int {
	return d.scheduler.Pending()
}

// Reset drops every pending response.
func (d *Dispatcher) Reset() {
	d.scheduler.Clear()
}
