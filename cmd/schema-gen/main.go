// Command schema-gen writes the versioned JSON Schema of the config file to schema/.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/smykla-skalski/chatnotify/internal/schema"
)

func main() {
	data, err := schema.GenerateJSON(true)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	outDir := "schema"
	if len(os.Args) > 1 {
		outDir = os.Args[1]
	}

	const (
		dirPerms  = 0o755
		filePerms = 0o644
	)

	if err := os.MkdirAll(outDir, dirPerms); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	outPath := filepath.Clean(filepath.Join(outDir, schema.Filename()))

	//nolint:gosec // dev tool, outDir from CLI arg
	if err := os.WriteFile(outPath, data, filePerms); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(outPath)
}
