// Command schemagen generates the JSON Schema documents for the component
// file format consumed by the loaders.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
)

func main() {
	outDir := flag.String("out", "./schemas", "output directory for generated schemas")
	flag.Parse()

	absOutDir, err := filepath.Abs(*outDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error converting path to absolute: %v\n", err)
		os.Exit(1)
	}

	if err := GenerateComponentSchemas(absOutDir); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating schemas: %v\n", err)
		os.Exit(1)
	}
}
