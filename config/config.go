// Package config defines the configuration document that drives code
// generation and the table filtering rules derived from it.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultNullableStrategy is used when a language does not configure one.
const DefaultNullableStrategy = "generic"

// DefaultOutputStructure groups generated files in per-language
// subdirectories of the output directory.
const DefaultOutputStructure = "by_language"

// Config is the root configuration document.
type Config struct {
	ActiveDatabase    string                           `yaml:"active_database"`
	Databases         map[string]DatabaseConfig        `yaml:"databases"`
	Generation        GenerationConfig                 `yaml:"generation"`
	Languages         map[string]LanguageConfig        `yaml:"languages"`
	TypeMappings      map[string]map[string]TypeMapping `yaml:"type_mappings,omitempty"`
	NamingConventions NamingConventions                `yaml:"naming_conventions"`
}

// DatabaseConfig identifies one database the tool can introspect.
type DatabaseConfig struct {
	DBType string `yaml:"db_type"`
	DSN    string `yaml:"dsn"`
	DBName string `yaml:"db_name"`
}

// GenerationConfig controls which tables and languages are generated and
// where the output goes.
type GenerationConfig struct {
	OutputDir         string         `yaml:"output_dir"`
	TargetLanguages   []string       `yaml:"target_languages"`
	TemplateDir       string         `yaml:"template_dir,omitempty"`
	TableNamePatterns *TablePatterns `yaml:"table_name_patterns,omitempty"`
	OutputStructure   string         `yaml:"output_structure,omitempty"`
}

// TablePatterns is the include/exclude glob filter applied to table names.
type TablePatterns struct {
	Include []string `yaml:"include,omitempty"`
	Exclude []string `yaml:"exclude,omitempty"`
}

// LanguageConfig holds the per-language generation settings. All fields
// are optional; unset template and extension fields are derived from the
// language name.
type LanguageConfig struct {
	TemplateFile     string   `yaml:"template_file,omitempty"`
	TemplatePath     string   `yaml:"template_path,omitempty"`
	OutputExtension  string   `yaml:"output_extension,omitempty"`
	StructNameCase   string   `yaml:"struct_name_case,omitempty"`
	FieldNameCase    string   `yaml:"field_name_case,omitempty"`
	NullableStrategy string   `yaml:"nullable_strategy,omitempty"`
	Tags             []string `yaml:"tags,omitempty"`
	DefaultImports   []string `yaml:"default_imports,omitempty"`
	FieldPrefix      string   `yaml:"field_prefix,omitempty"`
	PackageName      string   `yaml:"package_name,omitempty"`
	FormatOutput     bool     `yaml:"format_output,omitempty"`
}

// TypeMapping overrides the generated type for one raw database column
// type. Every YAML key other than "generic" names a target language.
type TypeMapping struct {
	Generic       string            `yaml:"generic"`
	LanguageTypes map[string]string `yaml:",inline"`
}

// NamingConventions holds the default case strategies applied when a
// language does not override them.
type NamingConventions struct {
	TableToStructCase string `yaml:"table_to_struct_case"`
	ColumnToFieldCase string `yaml:"column_to_field_case"`
}

// Load reads and parses the configuration file at path and applies the
// documented defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("modelgen: read config file %s: %w", path, err)
	}
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("modelgen: parse config file %s: %w", path, err)
	}
	c.applyDefaults()
	return &c, nil
}

func (c *Config) applyDefaults() {
	if c.Generation.OutputStructure == "" {
		c.Generation.OutputStructure = DefaultOutputStructure
	}
	if p := c.Generation.TableNamePatterns; p != nil && len(p.Include) == 0 {
		p.Include = []string{"*"}
	}
	for name, lc := range c.Languages {
		if lc.NullableStrategy == "" {
			lc.NullableStrategy = DefaultNullableStrategy
			c.Languages[name] = lc
		}
	}
}

// ActiveDatabaseConfig returns the configuration of the active database.
func (c *Config) ActiveDatabaseConfig() (DatabaseConfig, error) {
	db, ok := c.Databases[c.ActiveDatabase]
	if !ok {
		return DatabaseConfig{}, fmt.Errorf("modelgen: active database %q not found in config.databases", c.ActiveDatabase)
	}
	return db, nil
}
