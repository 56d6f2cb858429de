package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var infoOutput string

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show config file information",
	Long: `Show where the config file is, its format and what it contains.

Examples:
  chatnotify info
  chatnotify info --output json`,
	Args: cobra.NoArgs,
	RunE: runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)

	infoCmd.Flags().StringVarP(&infoOutput, "output", "o", outputText, "Output format: text, json or yaml")
}

// infoReport describes the config file and its contents.
type infoReport struct {
	Path          string     `json:"path"               yaml:"path"`
	Settings      string     `json:"settings"           yaml:"settings"`
	Exists        bool       `json:"exists"             yaml:"exists"`
	Size          int64      `json:"size,omitempty"     yaml:"size,omitempty"`
	Modified      *time.Time `json:"modified,omitempty" yaml:"modified,omitempty"`
	Generation    string     `json:"generation"         yaml:"generation"`
	Notifications int        `json:"notifications"      yaml:"notifications"`
	Enabled       int        `json:"enabled"            yaml:"enabled"`
	Responses     int        `json:"responses"          yaml:"responses"`
	Prefixes      []string   `json:"prefixes"           yaml:"prefixes"`
	SoundSource   string     `json:"soundSource"        yaml:"soundSource"`
	AllowRegex    bool       `json:"allowRegex"         yaml:"allowRegex"`
}

func runInfo(cmd *cobra.Command, _ []string) error {
	if err := validateOutput(infoOutput); err != nil {
		return err
	}

	report := newInfoReport()
	out := cmd.OutOrStdout()

	if infoOutput != outputText {
		return writeStructured(out, infoOutput, report)
	}

	printInfoReport(out, report)

	return nil
}

func newInfoReport() infoReport {
	store := current.store
	cfg := store.Get()

	report := infoReport{
		Path:        store.Path(),
		Settings:    settingsFilePath(),
		Generation:  string(store.Generation()),
		Prefixes:    cfg.Prefixes,
		SoundSource: cfg.SoundSource.String(),
		AllowRegex:  cfg.AllowRegex,
	}

	if stat, err := os.Stat(store.Path()); err == nil {
		modified := stat.ModTime()

		report.Exists = true
		report.Size = stat.Size()
		report.Modified = &modified
	}

	for _, n := range cfg.Notifications {
		report.Notifications++
		report.Responses += len(n.ResponseMessages)

		if n.Enabled {
			report.Enabled++
		}
	}

	return report
}

func printInfoReport(w io.Writer, r infoReport) {
	label := current.theme.Label

	fmt.Fprintf(w, "%s %s\n", label.Render("config:       "), r.Path)
	fmt.Fprintf(w, "%s %s\n", label.Render("settings:     "), r.Settings)

	if r.Exists {
		fmt.Fprintf(w, "%s %s\n", label.Render("size:         "), humanize.Bytes(uint64(r.Size))) //nolint:gosec // size is non-negative
		fmt.Fprintf(w, "%s %s\n", label.Render("modified:     "), humanize.Time(*r.Modified))
	} else {
		fmt.Fprintf(w, "%s %s\n", label.Render("size:         "), current.theme.Muted.Render("not written yet"))
	}

	fmt.Fprintf(w, "%s %s\n", label.Render("format:       "), r.Generation)
	fmt.Fprintf(w, "%s %d (%d enabled)\n", label.Render("notifications:"), r.Notifications, r.Enabled)
	fmt.Fprintf(w, "%s %d\n", label.Render("responses:    "), r.Responses)
	fmt.Fprintf(w, "%s %q\n", label.Render("prefixes:     "), r.Prefixes)
	fmt.Fprintf(w, "%s %s\n", label.Render("sound source: "), r.SoundSource)
	fmt.Fprintf(w, "%s %t\n", label.Render("allow regex:  "), r.AllowRegex)
}
