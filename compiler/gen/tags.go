package gen

import (
	"bytes"
	"strings"
	"text/template"

	"github.com/syssam/modelgen/ir"
)

// tagContext is the data each tag template is rendered against.
type tagContext struct {
	FieldName          string // resolved field name, prefix included
	ActualFieldName    string
	ColumnName         string // raw column name
	OriginalColumnName string
	StructName         string // raw table name
	LangType           string // resolved type, nullability applied
	IsNullable         bool
	DefaultValue       string
}

// renderTags renders the configured tag templates for one column and
// joins the results per the language's formatting convention. Tag
// templates are best-effort decoration: a template that fails to parse
// or execute is dropped without aborting the column.
func (g *Generator) renderTags(col ir.Column, tableName, fieldName, langType string) string {
	if len(g.langConfig.Tags) == 0 {
		return ""
	}
	data := tagContext{
		FieldName:          fieldName,
		ActualFieldName:    fieldName,
		ColumnName:         col.Name,
		OriginalColumnName: col.Name,
		StructName:         tableName,
		LangType:           langType,
		IsNullable:         col.Nullable,
		DefaultValue:       col.DefaultValue,
	}
	var tags []string
	for _, raw := range g.langConfig.Tags {
		// One throwaway template instance per tag string, so a broken
		// tag can never poison the shared main template.
		tmpl, err := template.New("tag").Funcs(helperFuncs()).Parse(raw)
		if err != nil {
			g.logger.Debug("skipping unparsable tag template", "template", raw, "error", err)
			continue
		}
		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, data); err != nil {
			g.logger.Debug("skipping failing tag template", "template", raw, "error", err)
			continue
		}
		if rendered := strings.TrimSpace(buf.String()); rendered != "" {
			tags = append(tags, rendered)
		}
	}
	return joinTags(tags, g.lang)
}

// joinTags applies the language family's tag formatting rule: Go folds
// all tags into one backtick-wrapped group, annotation-style languages
// stack them one per line, and languages without field-level metadata
// suppress them entirely.
func joinTags(tags []string, lang string) string {
	if len(tags) == 0 {
		return ""
	}
	switch lang {
	case "go":
		return "`" + strings.Join(tags, " ") + "`"
	case "rust", "csharp", "java", "python", "php":
		return strings.Join(tags, "\n    ")
	default:
		return ""
	}
}
