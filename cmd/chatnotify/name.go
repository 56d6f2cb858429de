package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smykla-skalski/chatnotify/pkg/config"
)

var (
	nameProfile string
	nameDisplay string
)

var nameCmd = &cobra.Command{
	Use:   "name",
	Short: "Show or set the names that trigger notification #0",
	Long: `Show or set your profile name and display name. Messages mentioning
either name fire the user notification (#0).

Examples:
  chatnotify name
  chatnotify name --profile Notch --display "[Admin] Notch"`,
	Args: cobra.NoArgs,
	RunE: runName,
}

func init() {
	rootCmd.AddCommand(nameCmd)

	nameCmd.Flags().StringVar(&nameProfile, "profile", "", "Profile (account) name")
	nameCmd.Flags().StringVar(&nameDisplay, "display", "", "Display name")
}

func runName(cmd *cobra.Command, _ []string) error {
	cfg := current.store.Get()
	changed := false

	if cmd.Flags().Changed("profile") {
		cfg.SetProfileName(nameProfile)

		changed = true
	}

	if cmd.Flags().Changed("display") {
		cfg.SetDisplayName(nameDisplay)

		changed = true
	}

	if changed {
		if err := saveConfig(cmd); err != nil {
			return err
		}
	}

	user := cfg.UserNotification()
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "%s %s\n", current.theme.Label.Render("profile:"), user.Triggers[config.ProfileNameTrigger].Pattern)
	fmt.Fprintf(out, "%s %s\n", current.theme.Label.Render("display:"), user.Triggers[config.DisplayNameTrigger].Pattern)

	return nil
}
