// Package snapshot persists an introspected schema so generation can
// run again without a live database connection.
package snapshot

import (
	"fmt"
	"os"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/syssam/modelgen/ir"
)

// Save writes the schema to path in msgpack encoding.
func Save(path string, schema *ir.DatabaseSchema) error {
	data, err := msgpack.Marshal(schema)
	if err != nil {
		return fmt.Errorf("modelgen: encode schema snapshot: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("modelgen: write schema snapshot: %w", err)
	}
	return nil
}

// Load reads a schema previously written by Save.
func Load(path string) (*ir.DatabaseSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("modelgen: read schema snapshot: %w", err)
	}
	var schema ir.DatabaseSchema
	if err := msgpack.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("modelgen: decode schema snapshot: %w", err)
	}
	return &schema, nil
}
