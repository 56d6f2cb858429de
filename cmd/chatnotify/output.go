package main

import (
	"encoding/json"
	"io"
	"slices"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"

	yamlIndent = 2
)

var outputFormats = []string{outputText, outputJSON, outputYAML}

// ErrInvalidOutput is returned for an unknown --output value.
var ErrInvalidOutput = errors.New("invalid output format")

func validateOutput(format string) error {
	if !slices.Contains(outputFormats, format) {
		return errors.Wrapf(ErrInvalidOutput, "%q (expected one of %v)", format, outputFormats)
	}

	return nil
}

// writeStructured encodes v as JSON or YAML.
func writeStructured(w io.Writer, format string, v any) error {
	switch format {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return errors.Wrap(enc.Encode(v), "failed to encode JSON")
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(yamlIndent)

		if err := enc.Encode(v); err != nil {
			return errors.Wrap(err, "failed to encode YAML")
		}

		return errors.Wrap(enc.Close(), "failed to encode YAML")
	default:
		return errors.Wrapf(ErrInvalidOutput, "%q", format)
	}
}
