package main

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
)

var resetForce bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Replace the config with defaults",
	Long: `Replace the whole notification config with the defaults. Every
notification except the user notification is lost.

Examples:
  chatnotify reset --force`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if !resetForce {
			return errors.New("refusing to reset without --force")
		}

		if _, err := current.store.Reset(); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "reset %s to defaults\n", current.store.Path())

		return nil
	},
}

func init() {
	rootCmd.AddCommand(resetCmd)

	resetCmd.Flags().BoolVarP(&resetForce, "force", "f", false, "Confirm the reset")
}
