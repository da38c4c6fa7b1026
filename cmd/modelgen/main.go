// Command modelgen generates data model source files from a live
// database schema.
//
// Usage:
//
//	modelgen model -config modelgen.yaml
//	modelgen model -init
//	modelgen model -lang go,rust -table users,orders -output ./models
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/syssam/modelgen/config"
	"github.com/syssam/modelgen/dialect"
	"github.com/syssam/modelgen/ir"
	"github.com/syssam/modelgen/snapshot"
)

func main() {
	if len(os.Args) < 2 || os.Args[1] != "model" {
		fmt.Fprintln(os.Stderr, "usage: modelgen model [flags]")
		os.Exit(2)
	}
	if err := runModel(os.Args[2:]); err != nil {
		slog.Error("generation failed", "error", err)
		os.Exit(1)
	}
}

type modelFlags struct {
	configPath   string
	initConfig   bool
	dbName       string
	dbType       string
	dsn          string
	langs        string
	output       string
	tables       string
	saveSnapshot string
	fromSnapshot string
	watch        bool
	verbose      bool
}

func runModel(args []string) error {
	fs := flag.NewFlagSet("model", flag.ExitOnError)
	var f modelFlags
	fs.StringVar(&f.configPath, "config", "modelgen.yaml", "path to the configuration file")
	fs.BoolVar(&f.initConfig, "init", false, "write a starter configuration file and exit")
	fs.StringVar(&f.dbName, "db-name", "", "override the active database schema name")
	fs.StringVar(&f.dbType, "db-type", "", "override the active database type (mysql, postgres, sqlite, atlas)")
	fs.StringVar(&f.dsn, "dsn", "", "override the active database connection string")
	fs.StringVar(&f.langs, "lang", "", "comma separated target languages, overriding the config")
	fs.StringVar(&f.output, "output", "", "override the output directory")
	fs.StringVar(&f.tables, "table", "", "comma separated table names to generate, replacing configured patterns")
	fs.StringVar(&f.saveSnapshot, "save-snapshot", "", "write the introspected schema to this file")
	fs.StringVar(&f.fromSnapshot, "from-snapshot", "", "generate from a saved schema instead of a live database")
	fs.BoolVar(&f.watch, "watch", false, "regenerate whenever the config or templates change")
	fs.BoolVar(&f.verbose, "verbose", false, "enable debug logging")
	if err := fs.Parse(args); err != nil {
		return err
	}

	level := slog.LevelInfo
	if f.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if f.initConfig {
		return writeStarterConfig(f.configPath, logger)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if f.watch {
		return watchAndGenerate(ctx, f, logger)
	}
	return generateOnce(ctx, f, logger)
}

func loadConfig(f modelFlags) (*config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, err
	}
	var opts []config.Option
	if f.dbType != "" {
		opts = append(opts, config.WithDatabaseType(f.dbType))
	}
	if f.dsn != "" {
		opts = append(opts, config.WithDSN(f.dsn))
	}
	if f.dbName != "" {
		opts = append(opts, config.WithDBName(f.dbName))
	}
	if f.langs != "" {
		opts = append(opts, config.WithTargetLanguages(splitList(f.langs)...))
	}
	if f.output != "" {
		opts = append(opts, config.WithOutputDir(f.output))
	}
	if f.tables != "" {
		opts = append(opts, config.WithTables(splitList(f.tables)...))
	}
	if err := cfg.Apply(opts...); err != nil {
		return nil, err
	}
	return cfg, nil
}

func generateOnce(ctx context.Context, f modelFlags, logger *slog.Logger) error {
	cfg, err := loadConfig(f)
	if err != nil {
		return err
	}
	dbCfg, err := cfg.ActiveDatabaseConfig()
	if err != nil {
		return err
	}

	var schema *ir.DatabaseSchema
	if f.fromSnapshot != "" {
		if schema, err = snapshot.Load(f.fromSnapshot); err != nil {
			return err
		}
		logger.Info("loaded schema snapshot", "path", f.fromSnapshot, "tables", len(schema.Tables))
	} else {
		conn, err := dialect.Open(ctx, dbCfg.DBType, dbCfg.DSN)
		if err != nil {
			return err
		}
		defer conn.Close()
		if schema, err = conn.Schema(ctx, dbCfg.DBName); err != nil {
			return err
		}
		logger.Info("introspected schema", "database", dbCfg.DBName, "tables", len(schema.Tables))
	}

	if f.saveSnapshot != "" {
		if err := snapshot.Save(f.saveSnapshot, schema); err != nil {
			return err
		}
		logger.Info("saved schema snapshot", "path", f.saveSnapshot)
	}

	return generateAll(cfg, dbCfg, schema, logger)
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
