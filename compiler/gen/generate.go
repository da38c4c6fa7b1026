package gen

import (
	"bytes"
	"log/slog"
	"path/filepath"
	"slices"
	"text/template"

	"github.com/syssam/modelgen/config"
	"github.com/syssam/modelgen/ir"
)

// TemplateData is the context a table's template is rendered against.
type TemplateData struct {
	StructName      string
	TableName       string
	PackageName     string
	Columns         []ColumnData
	Imports         []string
	CurrentLanguage string
	Config          LanguageSettings
}

// LanguageSettings exposes the active language settings to templates,
// so a template can branch on the configured strategy (the TypeScript
// optional-property marker, for example).
type LanguageSettings struct {
	NullableStrategy string
	FieldPrefix      string
	StructNameCase   string
	FieldNameCase    string
}

// ColumnData is one rendered column of the template context.
type ColumnData struct {
	FieldName          string
	LangType           string
	LangTags           string
	IsNullable         bool
	OriginalColumnName string
	ColumnComment      string
	DefaultValue       string
	IsPrimaryKey       bool
}

// Generator renders one target language's model files. The language's
// template is resolved and compiled once at construction and reused for
// every table.
type Generator struct {
	config     *config.Config
	dbConfig   config.DatabaseConfig
	lang       string
	langConfig config.LanguageConfig
	tmpl       *template.Template
	resolver   *Resolver
	ext        string
	logger     *slog.Logger
}

// NewGenerator builds a Generator for one target language. It fails with
// a ConfigError when the language has no configuration entry and with a
// TemplateError when its template cannot be resolved or compiled.
func NewGenerator(cfg *config.Config, dbCfg config.DatabaseConfig, lang string) (*Generator, error) {
	lc, ok := cfg.Languages[lang]
	if !ok {
		return nil, NewConfigError("languages", lang, "no language config for requested target language")
	}
	if lc.NullableStrategy == "" {
		lc.NullableStrategy = config.DefaultNullableStrategy
	}
	ext := lc.OutputExtension
	if ext == "" {
		var err error
		if ext, err = DefaultExtension(lang); err != nil {
			return nil, err
		}
	}
	tmpl, err := resolveTemplate(cfg, lang, lc)
	if err != nil {
		return nil, err
	}
	logger := slog.Default()
	return &Generator{
		config:     cfg,
		dbConfig:   dbCfg,
		lang:       lang,
		langConfig: lc,
		tmpl:       tmpl,
		resolver:   NewResolver(cfg.TypeMappings, logger),
		ext:        trimExtension(ext),
		logger:     logger,
	}, nil
}

// WithLogger replaces the generator's logger.
func (g *Generator) WithLogger(logger *slog.Logger) *Generator {
	if logger != nil {
		g.logger = logger
		g.resolver.logger = logger
	}
	return g
}

// Generate renders every included table of the schema, in schema order,
// into outputDir. With the default "by_language" output structure files
// land in a per-language subdirectory; "flat" writes them directly into
// outputDir. The first render or write failure aborts the language run.
func (g *Generator) Generate(schema *ir.DatabaseSchema, outputDir string) error {
	dir := outputDir
	if g.config.Generation.OutputStructure != "flat" {
		dir = filepath.Join(outputDir, g.lang)
	}
	if err := ensureDir(dir); err != nil {
		return NewRenderError("", dir, "create output directory", err)
	}
	for _, table := range schema.Tables {
		if !g.config.ShouldIncludeTable(table.Name) {
			g.logger.Info("skipping table due to filter patterns", "table", table.Name)
			continue
		}
		data := g.buildContext(table)
		var buf bytes.Buffer
		if err := g.tmpl.Execute(&buf, data); err != nil {
			return NewRenderError(table.Name, "", "execute template", err)
		}
		name := Convert(table.Name, SnakeCase) + "." + g.ext
		path, err := g.writeFile(dir, name, table.Name, buf.Bytes())
		if err != nil {
			return err
		}
		g.logger.Info("generated file", "path", path, "language", g.lang)
	}
	return nil
}

// buildContext assembles the render context for one table: struct and
// field names via the naming engine, types via the resolver with the
// nullability transform, tags via the tag renderer, and dynamically
// registered imports merged after the configured defaults.
func (g *Generator) buildContext(table ir.Table) TemplateData {
	structCase := g.langConfig.StructNameCase
	if structCase == "" {
		structCase = g.config.NamingConventions.TableToStructCase
	}
	fieldCase := g.langConfig.FieldNameCase
	if fieldCase == "" {
		fieldCase = g.config.NamingConventions.ColumnToFieldCase
	}
	pkg := g.langConfig.PackageName
	if pkg == "" {
		pkg = "models"
	}

	data := TemplateData{
		StructName:      Convert(table.Name, structCase),
		TableName:       table.Name,
		PackageName:     pkg,
		Imports:         slices.Clone(g.langConfig.DefaultImports),
		CurrentLanguage: g.lang,
		Config: LanguageSettings{
			NullableStrategy: g.langConfig.NullableStrategy,
			FieldPrefix:      g.langConfig.FieldPrefix,
			StructNameCase:   g.langConfig.StructNameCase,
			FieldNameCase:    g.langConfig.FieldNameCase,
		},
	}

	var dynamicImports []string
	for _, col := range table.Columns {
		langType := g.resolver.Resolve(g.dbConfig.DBType, col.DatabaseType, col.GenericType, g.lang)
		if col.Nullable {
			var extra []string
			langType, extra = ApplyNullable(langType, g.langConfig.NullableStrategy, g.lang)
			dynamicImports = append(dynamicImports, extra...)
		}
		fieldName := Convert(col.Name, fieldCase)
		if g.langConfig.FieldPrefix != "" {
			fieldName = g.langConfig.FieldPrefix + fieldName
		}
		data.Columns = append(data.Columns, ColumnData{
			FieldName:          fieldName,
			LangType:           langType,
			LangTags:           g.renderTags(col, table.Name, fieldName, langType),
			IsNullable:         col.Nullable,
			OriginalColumnName: col.Name,
			ColumnComment:      col.Comment,
			DefaultValue:       col.DefaultValue,
			IsPrimaryKey:       col.PrimaryKey,
		})
	}

	// First-seen order, duplicates dropped.
	for _, imp := range dynamicImports {
		if !slices.Contains(data.Imports, imp) {
			data.Imports = append(data.Imports, imp)
		}
	}
	return data
}

func trimExtension(ext string) string {
	if len(ext) > 0 && ext[0] == '.' {
		return ext[1:]
	}
	return ext
}
