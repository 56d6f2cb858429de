package main

import (
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/spf13/cobra"

	internalconfig "github.com/smykla-skalski/chatnotify/internal/config"
	"github.com/smykla-skalski/chatnotify/pkg/config"
)

const (
	diffContextLines = 3
	backupSuffix     = ".bak"
)

// ErrUndecodableConfig is returned when no config generation accepts the file.
var ErrUndecodableConfig = errors.New("config file could not be decoded")

var (
	validateDryRun     bool
	migrateDryRun      bool
	migrateNoBackup    bool
	migrateFromVersion string
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Clean up the config file",
	Long: `Load the config, clean it up and write it back. Blank triggers, exclusions
and responses are dropped, empty notifications are removed, notifications
without triggers are disabled and prefixes are sorted longest first.

The changes are printed as a unified diff.

Examples:
  chatnotify validate
  chatnotify validate --dry-run    # Only print the diff`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Rewrite an older config file in the current format",
	Long: `Rewrite a config file written by an older release in the current format.
The original file is kept next to it with a .bak suffix.

The format is detected automatically. --from-version names the release that
wrote the file and forces the matching parser.

Examples:
  chatnotify migrate
  chatnotify migrate --dry-run
  chatnotify migrate --from-version 1.1.2`,
	Args: cobra.NoArgs,
	RunE: runMigrate,
}

func init() {
	rootCmd.AddCommand(validateCmd, migrateCmd)

	validateCmd.Flags().BoolVar(&validateDryRun, "dry-run", false, "Print the changes without writing")

	migrateCmd.Flags().BoolVar(&migrateDryRun, "dry-run", false, "Print the changes without writing")
	migrateCmd.Flags().BoolVar(&migrateNoBackup, "no-backup", false, "Do not keep a copy of the original file")
	migrateCmd.Flags().StringVar(&migrateFromVersion, "from-version", "", "Release that wrote the file, e.g. 1.1.2")
}

func runValidate(cmd *cobra.Command, _ []string) error {
	path := current.store.Path()

	before, err := readConfigFile(path)
	if err != nil {
		return err
	}

	cfg := current.store.Get()
	if before != nil && current.store.Generation() == internalconfig.GenerationNone {
		return errors.Wrapf(ErrUndecodableConfig, "%s (see the log for details)", path)
	}

	after, err := internalconfig.Marshal(cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	if !printDiff(out, path, before, after) {
		fmt.Fprintln(out, "config is valid, nothing to change")

		return nil
	}

	if validateDryRun {
		return nil
	}

	if err := saveConfig(cmd); err != nil {
		return err
	}

	fmt.Fprintf(out, "wrote %s\n", path)

	return nil
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	path := current.store.Path()

	data, err := readConfigFile(path)
	if err != nil {
		return err
	}

	if data == nil {
		return errors.Wrapf(os.ErrNotExist, "no config at %s", path)
	}

	cfg, gen, err := decodeForMigration(data)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	if gen == internalconfig.GenerationCurrent && migrateFromVersion == "" {
		fmt.Fprintln(out, "config already uses the current format")

		return nil
	}

	cfg.Validate()

	after, err := internalconfig.Marshal(cfg)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "migrating %s config\n", gen)
	printDiff(out, path, data, after)

	if migrateDryRun {
		return nil
	}

	if !migrateNoBackup {
		if err := os.WriteFile(path+backupSuffix, data, internalconfig.FileMode); err != nil {
			return errors.Wrap(err, "failed to back up config")
		}
	}

	if err := internalconfig.NewWriter().Write(path, cfg); err != nil {
		return err
	}

	current.log.Info("config migrated", "path", path, "from", string(gen))

	fmt.Fprintf(out, "wrote %s\n", path)

	return nil
}

// decodeForMigration decodes data with the parser of --from-version, or with
// the first generation that accepts it.
func decodeForMigration(data []byte) (*config.Config, internalconfig.Generation, error) {
	log := current.log.With("command", "migrate")

	if migrateFromVersion == "" {
		cfg, gen, err := internalconfig.Decode(data, log)
		if err != nil {
			return nil, gen, errors.Wrapf(ErrUndecodableConfig, "%v", err)
		}

		return cfg, gen, nil
	}

	gen, err := internalconfig.GenerationForVersion(migrateFromVersion)
	if err != nil {
		return nil, internalconfig.GenerationNone, err
	}

	parse, _ := internalconfig.ParserFor(gen)

	cfg, err := parse(data, log)
	if err != nil {
		return nil, gen, errors.Wrapf(err, "config is not in the %s format of release %s", gen, migrateFromVersion)
	}

	return cfg, gen, nil
}

// readConfigFile returns the raw config file, or nil when it does not exist.
func readConfigFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from settings
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}

		return nil, errors.Wrapf(err, "failed to read %s", path)
	}

	return data, nil
}

// printDiff writes a unified diff of before and after. Returns false when they are equal.
func printDiff(w io.Writer, path string, before, after []byte) bool {
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(before)),
		B:        difflib.SplitLines(string(after)),
		FromFile: path,
		ToFile:   path + " (cleaned)",
		Context:  diffContextLines,
	})
	if err != nil || diff == "" {
		return false
	}

	fmt.Fprint(w, diff)

	return true
}
