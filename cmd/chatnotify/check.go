package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/smykla-skalski/chatnotify/internal/engine"
	"github.com/smykla-skalski/chatnotify/internal/scheduler"
	"github.com/smykla-skalski/chatnotify/pkg/config"
)

// ErrNoMatch is returned by check when no notification fires.
var ErrNoMatch = errors.New("no notification matched")

var (
	checkOwn    bool
	checkKeys   []string
	checkOutput string
)

var checkCmd = &cobra.Command{
	Use:   "check MESSAGE...",
	Short: "Show which notification a message would fire",
	Long: `Evaluate one chat message against the notification list and print the
outcome. Exits with status 1 when no notification fires.

Examples:
  chatnotify check "Notch joined the game"
  chatnotify check --own "hello there"
  chatnotify check --key chat.type.advancement.task "Steve made an advancement"
  chatnotify check --output yaml "found 12 diamonds"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().BoolVar(&checkOwn, "own", false, "Treat the message as sent by you")
	checkCmd.Flags().StringSliceVar(&checkKeys, "key", nil, "Message translation key (repeatable)")
	checkCmd.Flags().StringVarP(&checkOutput, "output", "o", outputText, "Output format: text, json or yaml")
}

// checkReport is the printable outcome of a check.
type checkReport struct {
	Message      string   `json:"message"                yaml:"message"`
	Matched      bool     `json:"matched"                yaml:"matched"`
	Notification *int     `json:"notification,omitempty" yaml:"notification,omitempty"`
	Label        string   `json:"label,omitempty"        yaml:"label,omitempty"`
	Trigger      string   `json:"trigger,omitempty"      yaml:"trigger,omitempty"`
	Groups       []string `json:"groups,omitempty"       yaml:"groups,omitempty"`
	Color        string   `json:"color,omitempty"        yaml:"color,omitempty"`
	Format       []string `json:"format,omitempty"       yaml:"format,omitempty"`
	Sound        string   `json:"sound,omitempty"        yaml:"sound,omitempty"`
	Responses    []string `json:"responses,omitempty"    yaml:"responses,omitempty"`
}

func runCheck(cmd *cobra.Command, args []string) error {
	if err := validateOutput(checkOutput); err != nil {
		return err
	}

	msg := engine.Message{
		Text: strings.Join(args, " "),
		Own:  checkOwn,
		Keys: checkKeys,
	}

	eng := engine.New(engine.WithLogger(current.log.With("command", "check")))
	report := newCheckReport(msg, eng.Process(current.store.Get(), msg))

	out := cmd.OutOrStdout()

	if checkOutput == outputText {
		printCheckReport(out, report)
	} else if err := writeStructured(out, checkOutput, report); err != nil {
		return err
	}

	if !report.Matched {
		return ErrNoMatch
	}

	return nil
}

func newCheckReport(msg engine.Message, res *engine.Result) checkReport {
	report := checkReport{Message: msg.Text}
	if res == nil {
		return report
	}

	report.Matched = true
	report.Notification = &res.NotificationIndex
	report.Label = res.Notification.Label()
	report.Trigger = res.Trigger.Pattern
	report.Groups = res.Groups
	report.Color = res.Style.Color.Hex()
	report.Format = formatNames(res.Style)

	if res.Sound.IsAudible() {
		report.Sound = res.Sound.ResourceLocation()
	}

	for _, r := range res.Responses {
		if r.IsBlank() {
			continue
		}

		text := r.Template
		if r.RegexGroups {
			text = scheduler.Substitute(text, res.Groups)
		}

		report.Responses = append(report.Responses, fmt.Sprintf("%s (%s)", text, formatDelay(r.DelayTicks)))
	}

	return report
}

func formatNames(s config.ResolvedStyle) []string {
	var names []string

	for _, f := range []struct {
		on   bool
		name string
	}{
		{s.Bold, "bold"},
		{s.Italic, "italic"},
		{s.Underlined, "underlined"},
		{s.Strikethrough, "strikethrough"},
		{s.Obfuscated, "obfuscated"},
	} {
		if f.on {
			names = append(names, f.name)
		}
	}

	return names
}

func printCheckReport(w io.Writer, r checkReport) {
	theme := current.theme

	if !r.Matched {
		fmt.Fprintln(w, theme.Muted.Render("no match: "+r.Message))

		return
	}

	fmt.Fprintf(w, "%s %s\n", theme.Label.Render("notification:"), fmt.Sprintf("#%d %s", *r.Notification, r.Label))
	fmt.Fprintf(w, "%s %s\n", theme.Label.Render("trigger:"), r.Trigger)

	if len(r.Groups) > 0 {
		fmt.Fprintf(w, "%s %s\n", theme.Label.Render("groups:"), strings.Join(r.Groups, " | "))
	}

	style := r.Color
	if len(r.Format) > 0 {
		style += " " + strings.Join(r.Format, " ")
	}

	fmt.Fprintf(w, "%s %s\n", theme.Label.Render("style:"), style)

	if r.Sound != "" {
		fmt.Fprintf(w, "%s %s\n", theme.Label.Render("sound:"), theme.Sound.Render(r.Sound))
	}

	for _, resp := range r.Responses {
		fmt.Fprintf(w, "%s %s\n", theme.Label.Render("response:"), theme.Response.Render(resp))
	}
}
