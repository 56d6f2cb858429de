// Package scheduler holds response messages waiting for their delay to pass.
// Pending state lives here, never on the persisted config records.
package scheduler

import (
	"cmp"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/smykla-skalski/chatnotify/internal/engine"
	"github.com/smykla-skalski/chatnotify/pkg/config"
	"github.com/smykla-skalski/chatnotify/pkg/logger"
)

const commandPrefix = "/"

// Outgoing is a response ready to be sent.
type Outgoing struct {
	// Text is the message, or the command without its leading slash.
	Text string

	// Command is true when Text must be sent as a command.
	Command bool
}

// String returns the response as typed into chat.
func (o Outgoing) String() string {
	if o.Command {
		return commandPrefix + o.Text
	}

	return o.Text
}

type key struct {
	notification *config.Notification
	response     *config.ResponseMessage
}

type entry struct {
	out       Outgoing
	remaining int
	seq       uint64
}

// Scheduler counts down scheduled responses one tick at a time. It is not safe
// for concurrent use.
type Scheduler struct {
	pending map[key]*entry
	seq     uint64
	logger  logger.Logger
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithLogger sets the logger for the scheduler.
func WithLogger(log logger.Logger) Option {
	return func(s *Scheduler) {
		s.logger = log
	}
}

// New creates an empty Scheduler.
func New(opts ...Option) *Scheduler {
	s := &Scheduler{pending: make(map[key]*entry)}

	for _, opt := range opts {
		opt(s)
	}

	if s.logger == nil {
		s.logger = logger.NewNoOpLogger()
	}

	return s
}

// Schedule registers the responses of a match. A response with a delay of N
// ticks is released by the N-th following Tick; a delay of 0 by the next one.
// Scheduling a response that is already pending restarts its countdown.
// Returns the number of responses scheduled.
func (s *Scheduler) Schedule(res *engine.Result) int {
	if res == nil {
		return 0
	}

	count := 0

	for _, r := range res.Responses {
		if r == nil || !r.Enabled || r.IsBlank() {
			continue
		}

		text := r.Template
		if r.RegexGroups {
			text = Substitute(text, res.Groups)
		}

		s.seq++

		s.pending[key{notification: res.Notification, response: r}] = &entry{
			out:       toOutgoing(text),
			remaining: max(r.DelayTicks, 1),
			seq:       s.seq,
		}

		count++
	}

	if count > 0 {
		s.logger.Debug("scheduled responses", "count", count, "pending", len(s.pending))
	}

	return count
}

// Tick advances every pending response by one tick and returns those that are
// due, in the order they were scheduled.
func (s *Scheduler) Tick() []Outgoing {
	var due []*entry

	for k, e := range s.pending {
		e.remaining--

		if e.remaining <= 0 {
			due = append(due, e)
			delete(s.pending, k)
		}
	}

	if len(due) == 0 {
		return nil
	}

	slices.SortFunc(due, func(a, b *entry) int {
		return cmp.Compare(a.seq, b.seq)
	})

	out := make([]Outgoing, 0, len(due))
	for _, e := range due {
		out = append(out, e.out)
	}

	return out
}

// Pending returns the number of responses waiting to be sent.
func (s *Scheduler) Pending() int {
	return len(s.pending)
}

// Clear drops every pending response.
func (s *Scheduler) Clear() {
	clear(s.pending)
}

var groupRef = regexp.MustCompile(`\$(\d+)`)

// Substitute replaces $0, $1, ... in template with the matching regex groups
// in a single pass, so group text is never expanded again. References to
// groups that do not exist are left as they are.
func Substitute(template string, groups []string) string {
	if len(groups) == 0 {
		return template
	}

	return groupRef.ReplaceAllStringFunc(template, func(ref string) string {
		i, err := strconv.Atoi(ref[1:])
		if err != nil || i >= len(groups) {
			return ref
		}

		return groups[i]
	})
}

func toOutgoing(text string) Outgoing {
	if cmd, ok := strings.CutPrefix(text, commandPrefix); ok {
		return Outgoing{Text: cmd, Command: true}
	}

	return Outgoing{Text: text}
}
