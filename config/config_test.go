package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "modelgen.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
active_database: main
databases:
  main:
    db_type: postgres
    dsn: "postgres://localhost/app"
    db_name: app
generation:
  output_dir: ./out
  target_languages: [go, rust]
  table_name_patterns:
    exclude: ["temp_*"]
naming_conventions:
  table_to_struct_case: PascalCase
  column_to_field_case: snake_case
languages:
  go:
    package_name: models
    nullable_strategy: pointer
    tags:
      - 'json:"{{.ColumnName}}"'
  rust: {}
type_mappings:
  postgres:
    citext:
      generic: string
      go: "string"
      rust: "String"
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "main", cfg.ActiveDatabase)
	db, err := cfg.ActiveDatabaseConfig()
	require.NoError(t, err)
	assert.Equal(t, "postgres", db.DBType)
	assert.Equal(t, "app", db.DBName)

	assert.Equal(t, []string{"go", "rust"}, cfg.Generation.TargetLanguages)
	assert.Equal(t, "pointer", cfg.Languages["go"].NullableStrategy)
	assert.Len(t, cfg.Languages["go"].Tags, 1)

	t.Run("inline language types parse", func(t *testing.T) {
		tm := cfg.TypeMappings["postgres"]["citext"]
		assert.Equal(t, "string", tm.Generic)
		assert.Equal(t, "String", tm.LanguageTypes["rust"])
	})

	t.Run("defaults applied", func(t *testing.T) {
		assert.Equal(t, DefaultOutputStructure, cfg.Generation.OutputStructure)
		assert.Equal(t, DefaultNullableStrategy, cfg.Languages["rust"].NullableStrategy)
		// Exclude-only patterns get the implicit include-everything.
		assert.Equal(t, []string{"*"}, cfg.Generation.TableNamePatterns.Include)
	})
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadInvalidYAML(t *testing.T) {
	t.Parallel()

	_, err := Load(writeConfig(t, "languages: [not: a: map"))
	assert.Error(t, err)
}

func TestActiveDatabaseConfigMissing(t *testing.T) {
	t.Parallel()

	cfg := &Config{ActiveDatabase: "prod"}
	_, err := cfg.ActiveDatabaseConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"prod"`)
}

func TestApplyOptions(t *testing.T) {
	t.Parallel()

	cfg := &Config{
		ActiveDatabase: "main",
		Databases:      map[string]DatabaseConfig{"main": {DBType: "mysql"}},
	}
	require.NoError(t, cfg.Apply(
		WithDatabaseType("postgres"),
		WithDSN("postgres://localhost/x"),
		WithDBName("x"),
		WithTargetLanguages("go"),
		WithOutputDir("./models"),
		WithTables("users", "orders"),
	))
	assert.Equal(t, "postgres", cfg.Databases["main"].DBType)
	assert.Equal(t, "x", cfg.Databases["main"].DBName)
	assert.Equal(t, []string{"go"}, cfg.Generation.TargetLanguages)
	assert.Equal(t, "./models", cfg.Generation.OutputDir)
	assert.Equal(t, []string{"users", "orders"}, cfg.Generation.TableNamePatterns.Include)

	t.Run("missing active database", func(t *testing.T) {
		broken := &Config{ActiveDatabase: "nope"}
		assert.Error(t, broken.Apply(WithDSN("x")))
	})
	t.Run("empty values rejected", func(t *testing.T) {
		assert.Error(t, cfg.Apply(WithActiveDatabase("")))
		assert.Error(t, cfg.Apply(WithOutputDir("")))
		assert.Error(t, cfg.Apply(WithTargetLanguages()))
	})
}
