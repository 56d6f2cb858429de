// Package main provides the chatnotify CLI: a terminal host for the chat
// notification engine and a manager for its config file.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/smykla-skalski/chatnotify/internal/color"
	internalconfig "github.com/smykla-skalski/chatnotify/internal/config"
	"github.com/smykla-skalski/chatnotify/internal/settings"
	"github.com/smykla-skalski/chatnotify/pkg/logger"
)

const (
	exitCodeOK    = 0
	exitCodeError = 1
)

var (
	configPath   string
	settingsPath string
	debugMode    bool
	traceMode    bool
	noColorFlag  bool
)

// session holds what every command needs, set up before the command runs.
type session struct {
	settings *settings.Settings
	log      logger.Logger
	closeLog func() error
	store    *internalconfig.Store
	theme    color.Theme
}

var current *session

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	defer closeSession()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)

		return exitCodeError
	}

	return exitCodeOK
}

var rootCmd = &cobra.Command{
	Use:   "chatnotify",
	Short: "Chat notification engine",
	Long: `chatnotify highlights chat messages that match your notifications, plays
their sound cue and sends automatic responses.

The notification config is a JSON file shared with the game client; the CLI
settings live in a separate TOML file.`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		checkVersionFlag()

		return openSession(cmd)
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Help()
	},
	SilenceErrors:     true,
	SilenceUsage:      true,
	CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
}

func init() {
	flags := rootCmd.PersistentFlags()

	flags.StringVarP(
		&configPath,
		"config",
		"c",
		"",
		"Path to the notification config (default: ~/.config/chatnotify/chatnotify.json)",
	)
	flags.StringVar(
		&settingsPath,
		"settings",
		"",
		"Path to the settings file (default: ~/.config/chatnotify/settings.toml)",
	)
	flags.BoolVar(&debugMode, "debug", false, "Enable debug logging")
	flags.BoolVar(&traceMode, "trace", false, "Enable trace logging")
	flags.BoolVar(&noColorFlag, "no-color", false, "Disable colored output")
}

// openSession loads settings, opens the log file and creates the config store.
func openSession(cmd *cobra.Command) error {
	s, err := settings.NewLoader(settingsPath).Load(flagOverrides(cmd))
	if err != nil {
		return errors.Wrap(err, "failed to load settings")
	}

	level := logger.LevelFromFlags(debugMode, traceMode, s.Log.Level)

	var (
		log      logger.Logger = logger.NewNoOpLogger()
		closeLog               = func() error { return nil }
	)

	if s.Log.File != "" {
		fileLog, err := logger.NewFileLogger(s.LoggerOptions(), level)
		if err != nil {
			return errors.Wrap(err, "failed to create logger")
		}

		log = fileLog
		closeLog = fileLog.Close
	}

	log.Debug("command started", "command", cmd.CommandPath())

	current = &session{
		settings: s,
		log:      log,
		closeLog: closeLog,
		store:    internalconfig.NewStore(s.ConfigPath(), nil, log),
		theme:    color.NewTheme(s.Color && color.Profile(noColorFlag) && color.IsTerminal(os.Stdout)),
	}

	return nil
}

// flagOverrides returns the settings set on the command line, keyed by settings path.
func flagOverrides(cmd *cobra.Command) map[string]any {
	overrides := map[string]any{}

	if cmd.Flags().Changed("config") {
		overrides["config_file"] = configPath
	}

	if cmd.Flags().Changed("no-color") && noColorFlag {
		overrides["color"] = false
	}

	return overrides
}

func closeSession() {
	if current == nil {
		return
	}

	if err := current.closeLog(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to close log: %v\n", err)
	}

	current = nil
}

// saveConfig validates and writes the config, reporting where it went.
func saveConfig(cmd *cobra.Command) error {
	if err := current.store.Save(); err != nil {
		return err
	}

	current.log.Info("config saved", "command", cmd.Name())

	return nil
}
