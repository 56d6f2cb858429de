// Package schema generates JSON Schema for the chatnotify config file.
package schema

import (
	"encoding/json"
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/invopop/jsonschema"

	"github.com/smykla-skalski/chatnotify/pkg/config"
)

const (
	schemaURI = "https://json-schema.org/draft/2020-12/schema"
	title     = "chatnotify configuration"
)

// Generate produces a JSON Schema of the current config generation.
func Generate() *jsonschema.Schema {
	r := &jsonschema.Reflector{
		ExpandedStruct: true,
	}

	s := r.Reflect(&config.Config{})
	s.Version = schemaURI
	s.Title = title

	return s
}

// GenerateJSON produces a JSON Schema as bytes.
// When indent is true, the output is pretty-printed.
func GenerateJSON(indent bool) ([]byte, error) {
	s := Generate()

	var (
		data []byte
		err  error
	)

	if indent {
		data, err = json.MarshalIndent(s, "", "  ")
	} else {
		data, err = json.Marshal(s)
	}

	if err != nil {
		return nil, errors.Wrap(err, "marshaling schema to JSON")
	}

	return append(data, '\n'), nil
}

// Filename returns the versioned schema file name.
func Filename() string {
	return fmt.Sprintf("chatnotify-v%d.schema.json", config.CurrentConfigVersion)
}
