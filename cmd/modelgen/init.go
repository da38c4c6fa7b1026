package main

import (
	_ "embed"
	"fmt"
	"log/slog"
	"os"
)

//go:embed starter.yaml
var starterConfig []byte

// writeStarterConfig writes the starter configuration file, refusing to
// clobber an existing one.
func writeStarterConfig(path string, logger *slog.Logger) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("modelgen: config file %s already exists, refusing to overwrite", path)
	}
	if err := os.WriteFile(path, starterConfig, 0o644); err != nil {
		return fmt.Errorf("modelgen: write starter config: %w", err)
	}
	logger.Info("wrote starter configuration", "path", path)
	return nil
}
