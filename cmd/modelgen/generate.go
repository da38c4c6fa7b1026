package main

import (
	"log/slog"

	"github.com/syssam/modelgen/compiler/gen"
	"github.com/syssam/modelgen/config"
	"github.com/syssam/modelgen/ir"
)

// generateAll runs every configured target language against the schema,
// one language after another. Languages are independent; a failure in
// one aborts the run so partial output is obvious.
func generateAll(cfg *config.Config, dbCfg config.DatabaseConfig, schema *ir.DatabaseSchema, logger *slog.Logger) error {
	for _, lang := range cfg.Generation.TargetLanguages {
		g, err := gen.NewGenerator(cfg, dbCfg, lang)
		if err != nil {
			return err
		}
		logger.Info("generating models", "language", lang, "output", cfg.Generation.OutputDir)
		if err := g.WithLogger(logger).Generate(schema, cfg.Generation.OutputDir); err != nil {
			return err
		}
	}
	return nil
}
