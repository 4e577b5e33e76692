// Command schema writes JSON schema of the skyharvest configuration file.
// Usage: go run ./cmd/schema [output.json]
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/umputun/skyharvest/pkg/config"
)

func main() {
	outputPath := "schema.json"
	if len(os.Args) > 1 {
		outputPath = os.Args[1]
	}

	if err := writeSchema(outputPath); err != nil {
		log.Fatalf("failed to generate schema: %v", err)
	}
	fmt.Printf("Schema generated successfully at %s\n", outputPath)
}

func writeSchema(path string) error {
	schema, err := config.GenerateSchema()
	if err != nil {
		return fmt.Errorf("reflect config: %w", err)
	}
	schema.ID = "https://github.com/umputun/skyharvest/pkg/config/config"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}

	if err := os.WriteFile(path, append(data, '\n'), 0o600); err != nil { //nolint:gosec // schema file is not sensitive
		return fmt.Errorf("write schema file: %w", err)
	}
	return nil
}
