package main

import (
	"bytes"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/cockroachdb/errors"
	"github.com/hako/durafmt"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/smykla-skalski/chatnotify/internal/console"
	"github.com/smykla-skalski/chatnotify/internal/engine"
	"github.com/smykla-skalski/chatnotify/pkg/config"
)

const (
	defaultLabelWidth = 40
	minLabelWidth     = 16

	// otherColumnsWidth is what the columns besides the label take up in a table row.
	otherColumnsWidth = 60

	delayDisplayUnits = 2
)

var (
	// ErrInvalidIndex is returned for a notification index out of range.
	ErrInvalidIndex = errors.New("invalid notification index")

	// ErrReservedNotification is returned when removing or moving the user notification.
	ErrReservedNotification = errors.New("the user notification cannot be removed or moved")

	// ErrNoTriggers is returned when enabling a notification without triggers.
	ErrNoTriggers = errors.New("notification has no triggers")

	// ErrInvalidColor is returned for a color that is neither #RRGGBB nor "none".
	ErrInvalidColor = errors.New("invalid color")
)

var (
	notifMatch string

	notifAddRegex         bool
	notifAddKey           bool
	notifAddCaseSensitive bool
	notifAddExclude       []string
	notifAddResponses     []string
	notifAddDelay         int
	notifAddColor         string
	notifAddSound         string
	notifAddNoSound       bool
	notifAddBold          bool
)

var notifCmd = &cobra.Command{
	Use:   "notif",
	Short: "Manage notifications",
	Long: `Manage the notification list.

Notifications are evaluated in order and the first one that matches wins.
Notification #0 matches your own names; it is managed with "chatnotify name"
and can be neither removed nor moved.

Subcommands:
  list            List notifications
  add             Add a notification
  remove          Remove a notification
  up, down        Move a notification by one position
  top, bottom     Move a notification to the first or last position
  enable          Enable a notification
  disable         Disable a notification
  reset-advanced  Drop exclusions and responses and turn regex off`,
}

var notifListCmd = &cobra.Command{
	Use:   "list",
	Short: "List notifications",
	Long: `List notifications in priority order.

Examples:
  chatnotify notif list
  chatnotify notif list --match '*diamond*'    # Only notifications with a matching trigger`,
	Args: cobra.NoArgs,
	RunE: runNotifList,
}

var notifAddCmd = &cobra.Command{
	Use:   "add TRIGGER...",
	Short: "Add a notification",
	Long: `Add a notification with one trigger per argument. The new notification is
added last, with the lowest priority.

Examples:
  chatnotify notif add diamonds emeralds
  chatnotify notif add --regex '(\w+) joined the game' --response 'welcome $1' --delay 20
  chatnotify notif add --key chat.type.advancement.task --color '#55FF55' --bold
  chatnotify notif add --exclude '[bot]' --no-sound help`,
	Args: cobra.MinimumNArgs(1),
	RunE: runNotifAdd,
}

var notifRemoveCmd = &cobra.Command{
	Use:   "remove INDEX",
	Short: "Remove a notification",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := current.store.Get()

		index, err := notificationIndex(cfg, args[0], false)
		if err != nil {
			return err
		}

		label := cfg.Notifications[index].Label()
		cfg.RemoveNotification(index)

		if err := saveConfig(cmd); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "removed notification #%d (%s)\n", index, label)

		return nil
	},
}

var notifResetAdvancedCmd = &cobra.Command{
	Use:   "reset-advanced INDEX",
	Short: "Drop exclusions and responses and turn regex off",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := current.store.Get()

		index, err := notificationIndex(cfg, args[0], true)
		if err != nil {
			return err
		}

		cfg.Notifications[index].ResetAdvanced()

		if err := saveConfig(cmd); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "reset advanced options of notification #%d\n", index)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(notifCmd)

	notifCmd.AddCommand(
		notifListCmd,
		notifAddCmd,
		notifRemoveCmd,
		notifResetAdvancedCmd,
		moveCommand("up", "Move a notification up by one", (*config.Config).IncreasePriority),
		moveCommand("down", "Move a notification down by one", (*config.Config).DecreasePriority),
		moveCommand("top", "Move a notification to the first position", (*config.Config).ToMaxPriority),
		moveCommand("bottom", "Move a notification to the last position", (*config.Config).ToMinPriority),
		enableCommand("enable", true),
		enableCommand("disable", false),
	)

	notifListCmd.Flags().StringVarP(&notifMatch, "match", "m", "", "Only list notifications with a trigger matching this glob")

	flags := notifAddCmd.Flags()
	flags.BoolVar(&notifAddRegex, "regex", false, "Triggers are regular expressions")
	flags.BoolVar(&notifAddKey, "key", false, "Triggers are message translation keys")
	flags.BoolVar(&notifAddCaseSensitive, "case-sensitive", false, "Match case")
	flags.StringSliceVar(&notifAddExclude, "exclude", nil, "Exclusion trigger (repeatable)")
	flags.StringSliceVar(&notifAddResponses, "response", nil, "Response message (repeatable)")
	flags.IntVar(&notifAddDelay, "delay", 0, "Response delay in ticks (20 ticks = 1 second)")
	flags.StringVar(&notifAddColor, "color", "", `Highlight color as #RRGGBB or "none" (default: defaultColor)`)
	flags.StringVar(&notifAddSound, "sound", "", "Sound id (default: defaultSound)")
	flags.BoolVar(&notifAddNoSound, "no-sound", false, "Do not play a sound")
	flags.BoolVar(&notifAddBold, "bold", false, "Highlight in bold")
}

func runNotifList(cmd *cobra.Command, _ []string) error {
	cfg := current.store.Get()

	if notifMatch != "" && !doublestar.ValidatePattern(notifMatch) {
		return errors.Newf("invalid --match pattern %q", notifMatch)
	}

	width := labelWidth(termWidth())
	rows := make([][]string, 0, len(cfg.Notifications))

	for i, n := range cfg.Notifications {
		if notifMatch != "" && !hasMatchingTrigger(n, notifMatch) {
			continue
		}

		rows = append(rows, notificationRow(cfg, i, n, width))
	}

	out := cmd.OutOrStdout()

	if len(rows) == 0 {
		fmt.Fprintln(out, current.theme.Muted.Render("no notifications"))

		return nil
	}

	fmt.Fprintln(out, renderTable([]string{"#", "On", "Triggers", "Color", "Sound", "Responses"}, rows))

	return nil
}

func hasMatchingTrigger(n *config.Notification, pattern string) bool {
	pattern = strings.ToLower(pattern)

	return slices.ContainsFunc(n.Triggers, func(t *config.Trigger) bool {
		ok, err := doublestar.Match(pattern, strings.ToLower(t.Pattern))

		return err == nil && ok
	})
}

func notificationRow(cfg *config.Config, index int, n *config.Notification, width int) []string {
	theme := current.theme

	enabled := theme.Enabled.Render("yes")
	if !n.Enabled {
		enabled = theme.Disabled.Render("no")
	}

	sound := "-"
	if n.Sound.IsAudible() {
		sound = n.Sound.ResourceLocation()
	}

	return []string{
		strconv.Itoa(index),
		enabled,
		console.Truncate(n.Label(), width),
		n.TextStyle.Resolve(cfg.DefaultColor).Color.Hex(),
		sound,
		describeResponses(n.ResponseMessages),
	}
}

func describeResponses(responses []*config.ResponseMessage) string {
	if len(responses) == 0 {
		return "-"
	}

	longest := 0
	for _, r := range responses {
		longest = max(longest, r.DelayTicks)
	}

	return fmt.Sprintf("%d, up to %s", len(responses), formatDelay(longest))
}

// formatDelay renders a response delay in ticks as wall time.
func formatDelay(ticks int) string {
	if ticks <= 0 {
		return "next tick"
	}

	d := time.Duration(ticks) * time.Second / config.TicksPerSecond

	return durafmt.Parse(d).LimitFirstN(delayDisplayUnits).String()
}

func renderTable(headers []string, rows [][]string) string {
	var buf bytes.Buffer

	t := tablewriter.NewTable(&buf,
		tablewriter.WithRenderer(renderer.NewBlueprint(tw.Rendition{
			Symbols: tw.NewSymbols(tw.StyleRounded),
		})),
		tablewriter.WithPadding(tw.Padding{Left: " ", Right: " "}),
		tablewriter.WithConfig(tablewriter.NewConfigBuilder().
			WithTrimSpace(tw.Off).
			Row().Formatting().WithAutoWrap(tw.WrapNone).Build().
			Build().Build()),
	)

	t.Header(headers)

	for _, row := range rows {
		_ = t.Append(row)
	}

	_ = t.Render()

	return strings.TrimRight(buf.String(), "\n")
}

// labelWidth returns the trigger column width for a terminal of width w.
func labelWidth(w int) int {
	if w <= 0 {
		return defaultLabelWidth
	}

	return max(minLabelWidth, w-otherColumnsWidth)
}

// termWidth returns the terminal width or 0 if stdout is not a terminal.
func termWidth() int {
	if w, _, err := term.GetSize(
		int(os.Stdout.Fd()), //nolint:gosec // fd fits int
	); err == nil && w > 0 {
		return w
	}

	return 0
}

func runNotifAdd(cmd *cobra.Command, args []string) error {
	if notifAddRegex && !notifAddKey {
		for _, pattern := range args {
			if _, err := engine.CompileRegex(pattern, notifAddCaseSensitive); err != nil {
				return err
			}
		}
	}

	if notifAddDelay < 0 {
		return errors.Newf("--delay must not be negative, got %d", notifAddDelay)
	}

	var color *config.Color

	if notifAddColor != "" {
		c, err := parseColor(notifAddColor)
		if err != nil {
			return err
		}

		color = c
	}

	cfg := current.store.Get()
	n := cfg.AddNotification()

	for _, pattern := range args {
		t := config.NewTrigger(pattern)
		t.IsKey = notifAddKey
		t.IsRegex = notifAddRegex
		t.CaseSensitive = notifAddCaseSensitive
		n.AddTrigger(t)
	}

	for _, pattern := range notifAddExclude {
		e := config.NewExclusionTrigger(pattern)
		e.CaseSensitive = notifAddCaseSensitive
		n.AddExclusionTrigger(e)
	}

	for _, text := range notifAddResponses {
		r := config.NewResponseMessage(text)
		r.DelayTicks = notifAddDelay
		r.RegexGroups = notifAddRegex
		n.AddResponseMessage(r)
	}

	if color != nil {
		n.TextStyle.Color = color
	}

	if notifAddBold {
		n.TextStyle.Bold = config.Bool(true)
	}

	if notifAddSound != "" {
		n.Sound.ID = notifAddSound
	}

	if notifAddNoSound {
		n.Sound.Enabled = false
	}

	if err := saveConfig(cmd); err != nil {
		return err
	}

	index := slices.Index(cfg.Notifications, n)
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "added notification #%d (%s)\n", index, n.Label())

	if notifAddRegex && !cfg.AllowRegex {
		fmt.Fprintln(out, current.theme.Muted.Render("note: regex triggers are ignored until allowRegex is enabled"))
	}

	return nil
}

// parseColor accepts #RRGGBB, RRGGBB or "none".
func parseColor(s string) (*config.Color, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "none") {
		return config.NoColor(), nil
	}

	hex := strings.TrimPrefix(s, "#")

	rgb, err := strconv.ParseUint(hex, 16, 32)
	if err != nil || len(hex) != 6 {
		return nil, errors.Wrapf(ErrInvalidColor, "%q", s)
	}

	return config.RGBColor(int(rgb)), nil
}

// notificationIndex parses a notification index argument. The user
// notification is only accepted when allowUser is set.
func notificationIndex(cfg *config.Config, arg string, allowUser bool) (int, error) {
	index, err := strconv.Atoi(arg)
	if err != nil || cfg.Notification(index) == nil {
		return 0, errors.Wrapf(ErrInvalidIndex, "%q (have %d notifications)", arg, len(cfg.Notifications))
	}

	if index == config.UserNotificationIndex && !allowUser {
		return 0, ErrReservedNotification
	}

	return index, nil
}

func moveCommand(use, short string, move func(*config.Config, int)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " INDEX",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := current.store.Get()

			index, err := notificationIndex(cfg, args[0], false)
			if err != nil {
				return err
			}

			n := cfg.Notifications[index]
			move(cfg, index)

			if err := saveConfig(cmd); err != nil {
				return err
			}

			to := slices.Index(cfg.Notifications, n)
			if to == index {
				fmt.Fprintf(cmd.OutOrStdout(), "notification #%d did not move\n", index)

				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "moved notification #%d to #%d\n", index, to)

			return nil
		},
	}
}

func enableCommand(use string, enabled bool) *cobra.Command {
	return &cobra.Command{
		Use:   use + " INDEX",
		Short: strings.ToUpper(use[:1]) + use[1:] + " a notification",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := current.store.Get()

			index, err := notificationIndex(cfg, args[0], true)
			if err != nil {
				return err
			}

			if !cfg.Notifications[index].SetEnabled(enabled) {
				return errors.Wrapf(ErrNoTriggers, "notification #%d", index)
			}

			if err := saveConfig(cmd); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%sd notification #%d\n", use, index)

			return nil
		},
	}
}
