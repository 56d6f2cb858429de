package main

import (
	"bufio"
	"context"
	"io"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/smykla-skalski/chatnotify/internal/console"
	"github.com/smykla-skalski/chatnotify/internal/dispatcher"
	"github.com/smykla-skalski/chatnotify/internal/engine"
	"github.com/smykla-skalski/chatnotify/pkg/logger"
)

const keyMarker = "@key:"

var (
	listenOwnPrefix    string
	listenQuiet        bool
	listenDisableBad   bool
	listenDrainTimeout time.Duration
)

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Highlight chat lines read from stdin",
	Long: `Read chat lines from stdin and run them through the notification list.

Matching lines are printed with the notification style, followed by the sound
cue. Response messages are printed when their delay has passed. Lines starting
with --own-prefix are treated as sent by you. A line may carry message keys as
a leading "@key:<key> " marker, repeated for several keys.

When stdin ends, listen keeps ticking until pending responses have been sent or
listen.drain_timeout has passed.

Examples:
  tail -f logs/latest.log | chatnotify listen
  chatnotify listen --own-prefix "<Notch> " < chat.txt
  chatnotify listen --quiet                  # Only print matching lines`,
	Args: cobra.NoArgs,
	RunE: runListen,
}

func init() {
	rootCmd.AddCommand(listenCmd)

	listenCmd.Flags().StringVar(
		&listenOwnPrefix,
		"own-prefix",
		"",
		"Lines starting with this text are your own messages",
	)
	listenCmd.Flags().BoolVarP(&listenQuiet, "quiet", "q", false, "Do not print lines that match nothing")
	listenCmd.Flags().BoolVar(
		&listenDisableBad,
		"disable-invalid-regex",
		false,
		"Disable triggers whose regex does not compile",
	)
	listenCmd.Flags().DurationVar(
		&listenDrainTimeout,
		"drain-timeout",
		0,
		"How long to wait for pending responses after input ends (default: listen.drain_timeout)",
	)
}

func runListen(cmd *cobra.Command, _ []string) error {
	log := current.log.With("command", "listen")
	con := console.New(cmd.OutOrStdout(), current.theme)

	engineOpts := []engine.Option{engine.WithLogger(log)}
	if listenDisableBad {
		engineOpts = append(engineOpts, engine.WithDisableInvalidRegex())
	}

	eng := engine.New(engineOpts...)

	d := dispatcher.New(
		current.store,
		con,
		con,
		con,
		dispatcher.WithLogger(log),
		dispatcher.WithEngine(eng),
	)

	drain := current.settings.Listen.DrainTimeout
	if cmd.Flags().Changed("drain-timeout") {
		drain = listenDrainTimeout
	}

	l := &listener{
		dispatcher: d,
		console:    con,
		log:        log,
		ownPrefix:  listenOwnPrefix,
		quiet:      listenQuiet,
		interval:   current.settings.TickInterval(),
		drain:      drain,
	}

	lines := make(chan string)

	g, ctx := errgroup.WithContext(cmd.Context())

	in := cmd.InOrStdin()
	if closer, ok := in.(io.Closer); ok {
		stop := context.AfterFunc(ctx, func() { _ = closer.Close() })
		defer stop()
	}

	g.Go(func() error {
		defer close(lines)

		return readLines(ctx, in, lines)
	})

	g.Go(func() error {
		return l.run(ctx, lines)
	})

	if err := g.Wait(); err != nil {
		return err
	}

	if listenDisableBad && eng.Matcher().Cache().Failures() > 0 {
		return saveConfig(cmd)
	}

	return nil
}

// readLines sends every line of r to lines until r ends or ctx is done.
func readLines(ctx context.Context, r io.Reader, lines chan<- string) error {
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		select {
		case lines <- scanner.Text():
		case <-ctx.Done():
			return nil
		}
	}

	if err := scanner.Err(); err != nil && ctx.Err() == nil {
		return errors.Wrap(err, "failed to read chat lines")
	}

	return nil
}

// listener is the event loop of the listen command. It alone touches the dispatcher.
type listener struct {
	dispatcher *dispatcher.Dispatcher
	console    *console.Console
	log        logger.Logger
	ownPrefix  string
	quiet      bool
	interval   time.Duration
	drain      time.Duration
}

func (l *listener) run(ctx context.Context, lines <-chan string) error {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				return l.drainPending(ctx, ticker)
			}

			l.handle(line)
		case <-ticker.C:
			l.dispatcher.Tick()
		}
	}
}

func (l *listener) handle(line string) {
	msg := parseLine(console.CleanLine(line), l.ownPrefix)
	if msg.Text == "" {
		return
	}

	if l.dispatcher.Handle(msg) == nil && !l.quiet {
		l.console.Echo(msg)
	}
}

// drainPending keeps ticking until nothing is pending or the drain timeout passes.
func (l *listener) drainPending(ctx context.Context, ticker *time.Ticker) error {
	if l.dispatcher.Pending() == 0 {
		return nil
	}

	timeout := time.NewTimer(l.drain)
	defer timeout.Stop()

	for l.dispatcher.Pending() > 0 {
		select {
		case <-ctx.Done():
			return nil
		case <-timeout.C:
			l.log.Warn("input ended, dropping pending responses", "pending", l.dispatcher.Pending())

			l.dispatcher.Reset()

			return nil
		case <-ticker.C:
			l.dispatcher.Tick()
		}
	}

	return nil
}

// parseLine builds a message from a chat line. Leading key markers become
// message keys and the own prefix marks the line as sent by the user.
func parseLine(line, ownPrefix string) engine.Message {
	var msg engine.Message

	for {
		rest, ok := strings.CutPrefix(line, keyMarker)
		if !ok {
			break
		}

		key, text, _ := strings.Cut(rest, " ")
		if key != "" {
			msg.Keys = append(msg.Keys, key)
		}

		line = text
	}

	if ownPrefix != "" && strings.HasPrefix(line, ownPrefix) {
		msg.Own = true
	}

	msg.Text = line

	return msg
}
