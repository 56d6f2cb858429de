package main

import (
	"github.com/spf13/cobra"

	"github.com/smykla-skalski/chatnotify/internal/schema"
)

var schemaCompact bool

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema of the config file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		data, err := schema.GenerateJSON(!schemaCompact)
		if err != nil {
			return err
		}

		_, err = cmd.OutOrStdout().Write(data)

		return err
	},
}

func init() {
	rootCmd.AddCommand(schemaCmd)

	schemaCmd.Flags().BoolVar(&schemaCompact, "compact", false, "Print without indentation")
}
