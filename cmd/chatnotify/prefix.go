package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
)

var (
	// ErrDuplicatePrefix is returned when adding a prefix that is already configured.
	ErrDuplicatePrefix = errors.New("prefix already configured")

	// ErrInvalidPrefixIndex is returned for a prefix index out of range.
	ErrInvalidPrefixIndex = errors.New("invalid prefix index")
)

var prefixCmd = &cobra.Command{
	Use:   "prefix",
	Short: "Manage message prefixes",
	Long: `Manage the prefixes stripped from the start of a message before matching,
such as "/shout" or "!". Prefixes are matched case-insensitively, longest first.`,
}

var prefixListCmd = &cobra.Command{
	Use:   "list",
	Short: "List prefixes",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		cfg := current.store.Get()
		out := cmd.OutOrStdout()

		if len(cfg.Prefixes) == 0 {
			fmt.Fprintln(out, current.theme.Muted.Render("no prefixes"))

			return
		}

		for i, p := range cfg.Prefixes {
			fmt.Fprintf(out, "%d  %s\n", i, p)
		}
	},
}

var prefixAddCmd = &cobra.Command{
	Use:   "add PREFIX",
	Short: "Add a prefix",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if strings.TrimSpace(args[0]) == "" {
			return errors.New("prefix must not be blank")
		}

		if !current.store.Get().AddPrefix(args[0]) {
			return errors.Wrapf(ErrDuplicatePrefix, "%q", args[0])
		}

		if err := saveConfig(cmd); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "added prefix %q\n", args[0])

		return nil
	},
}

var prefixRemoveCmd = &cobra.Command{
	Use:   "remove INDEX",
	Short: "Remove a prefix",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := current.store.Get()

		index, err := strconv.Atoi(args[0])
		if err != nil || index < 0 || index >= len(cfg.Prefixes) {
			return errors.Wrapf(ErrInvalidPrefixIndex, "%q (have %d prefixes)", args[0], len(cfg.Prefixes))
		}

		prefix := cfg.Prefixes[index]
		cfg.RemovePrefix(index)

		if err := saveConfig(cmd); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "removed prefix %q\n", prefix)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(prefixCmd)
	prefixCmd.AddCommand(prefixListCmd, prefixAddCmd, prefixRemoveCmd)
}
