package main

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/smykla-skalski/chatnotify/internal/settings"
)

var settingsForce bool

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage CLI settings",
	Long: `Manage the CLI settings file (settings.toml).

Settings are read from the file, then overridden by CHATNOTIFY_* environment
variables (CHATNOTIFY_TICK_RATE, CHATNOTIFY_LOG_LEVEL, ...), then by flags.`,
	// The settings file may be what is broken, so it is not loaded here.
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		return nil
	},
}

var settingsInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a settings file with the defaults",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		path := settingsFilePath()

		if err := settings.Write(path, settings.Default(), settingsForce); err != nil {
			if errors.Is(err, settings.ErrFileExists) {
				return errors.Wrap(err, "use --force to overwrite")
			}

			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)

		return nil
	},
}

var settingsPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the settings file path",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintln(cmd.OutOrStdout(), settingsFilePath())
	},
}

func init() {
	rootCmd.AddCommand(settingsCmd)
	settingsCmd.AddCommand(settingsInitCmd, settingsPathCmd)

	settingsInitCmd.Flags().BoolVarP(&settingsForce, "force", "f", false, "Overwrite an existing file")
}

func settingsFilePath() string {
	return settings.NewLoader(settingsPath).Path()
}
