package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/invopop/jsonschema"
	"github.com/pipewright/pipewright/engine/component"
	"github.com/pipewright/pipewright/engine/task"
	"github.com/pipewright/pipewright/pkg/logger"
	"golang.org/x/sync/errgroup"
)

// GenerateComponentSchemas reflects the component file-format structs into
// JSON Schema documents and writes one file per definition to outDir.
func GenerateComponentSchemas(outDir string) error {
	log := logger.FromContext(context.Background())
	log.Info("generating JSON schemas", "out", outDir)

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	reflector := &jsonschema.Reflector{
		RequiredFromJSONSchemaTags: true,
		AllowAdditionalProperties:  false,
		BaseSchemaID:               "http://json-schema.org/draft-07/schema#",
	}

	definitions := []struct {
		name string
		data any
	}{
		{"component", &component.Spec{}},
		{"component_reference", &component.Reference{}},
		{"task_output_argument", &task.TaskOutputArgument{}},
		{"graph_input_argument", &task.GraphInputArgument{}},
	}

	var g errgroup.Group
	for _, def := range definitions {
		g.Go(func() error {
			schema := reflector.Reflect(def.data)
			schema.Version = "http://json-schema.org/draft-07/schema#"

			schemaJSON, err := json.MarshalIndent(schema, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal schema for %s: %w", def.name, err)
			}
			filePath := filepath.Join(outDir, fmt.Sprintf("%s.json", def.name))
			if err := os.WriteFile(filePath, schemaJSON, 0o600); err != nil {
				return fmt.Errorf("failed to write schema to %s: %w", filePath, err)
			}
			log.Info("generated schema", "file", filePath)
			return nil
		})
	}
	return g.Wait()
}
