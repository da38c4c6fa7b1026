package gen

import (
	"log/slog"
	"strings"

	"github.com/syssam/modelgen/config"
	"github.com/syssam/modelgen/ir"
)

// builtinTypes is the fixed fallback table keyed by target language and
// generic type category. Languages outside this table rely entirely on
// configured type mappings and the catch-all default.
var builtinTypes = map[string]map[string]string{
	"go": {
		ir.String:   "string",
		ir.Integer:  "int64",
		ir.Float:    "float64",
		ir.Boolean:  "bool",
		ir.Datetime: "time.Time",
		ir.Bytes:    "[]byte",
	},
	"rust": {
		ir.String:   "String",
		ir.Integer:  "i64",
		ir.Float:    "f64",
		ir.Boolean:  "bool",
		ir.Datetime: "chrono::NaiveDateTime",
		ir.Bytes:    "Vec<u8>",
	},
	"typescript": {
		ir.String:   "string",
		ir.Integer:  "number",
		ir.Float:    "number",
		ir.Boolean:  "boolean",
		ir.Datetime: "Date",
		ir.Bytes:    "Uint8Array",
	},
	"csharp": {
		ir.String:   "string",
		ir.Integer:  "long",
		ir.Float:    "double",
		ir.Boolean:  "bool",
		ir.Datetime: "DateTime",
		ir.Bytes:    "byte[]",
	},
	"java": {
		ir.String:   "String",
		ir.Integer:  "int",
		ir.Float:    "double",
		ir.Boolean:  "boolean",
		ir.Datetime: "java.time.LocalDateTime",
		ir.Bytes:    "byte[]",
	},
}

// catchAllTypes is the per-language last resort when neither the
// configured mappings nor the built-in table produce a type.
var catchAllTypes = map[string]string{
	"rust":       "String",
	"typescript": "string",
	"python":     "str",
	"java":       "String",
	"csharp":     "string",
	"go":         "string",
	"php":        "string",
	"ruby":       "String",
}

// Resolver resolves target-language type strings for columns. Configured
// type mappings always take precedence over the built-in table.
type Resolver struct {
	mappings map[string]map[string]config.TypeMapping
	logger   *slog.Logger
}

// NewResolver creates a Resolver over the configured type mappings.
func NewResolver(mappings map[string]map[string]config.TypeMapping, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{mappings: mappings, logger: logger}
}

// Resolve returns the target-language type for one column. Lookup order:
// configured mapping for (dbType, dbColumnType, lang), then the built-in
// table for (lang, genericType), then the per-language catch-all. The
// catch-all path is a soft condition and is logged as a warning.
func (r *Resolver) Resolve(dbType, dbColumnType, genericType, lang string) string {
	if byColumn, ok := r.mappings[dbType]; ok {
		if tm, ok := byColumn[dbColumnType]; ok {
			if t, ok := tm.LanguageTypes[lang]; ok {
				return t
			}
			// A generic override redirects the built-in lookup without
			// pinning a language-specific type.
			if tm.Generic != "" {
				genericType = tm.Generic
			}
		}
	}
	if t, ok := builtinTypes[lang][genericType]; ok {
		return t
	}
	fallback, ok := catchAllTypes[lang]
	if !ok {
		fallback = "any"
	}
	r.logger.Warn("no type mapping found, using fallback",
		"db_type", dbType,
		"column_type", dbColumnType,
		"language", lang,
		"fallback", fallback)
	return fallback
}

// ApplyNullable rewrites a resolved type according to the nullable
// strategy of the target language and returns any additional imports the
// rewritten type requires. Callers must only invoke it for nullable
// columns; non-nullable columns keep their resolved type untouched.
// Unrecognized strategies pass the type through unchanged.
func ApplyNullable(rawType, strategy, lang string) (string, []string) {
	switch strategy {
	case "pointer":
		return "*" + rawType, nil
	case "option":
		return "Option<" + rawType + ">", nil
	case "nullable_type":
		return nullableType(rawType, lang)
	case "union":
		return rawType + " | null", nil
	case "optional_type":
		return optionalType(rawType, lang)
	case "optional_property", "native":
		// Nullability is expressed structurally (template marker) or is
		// implicit in the language.
		return rawType, nil
	default:
		return rawType, nil
	}
}

// nullableType substitutes boxed/nullable equivalents for known
// primitives per target language.
func nullableType(rawType, lang string) (string, []string) {
	switch lang {
	case "go":
		if strings.HasPrefix(rawType, "time.") {
			return "sql.NullTime", []string{"time", "database/sql"}
		}
		imports := []string{"database/sql"}
		switch rawType {
		case "string":
			return "sql.NullString", imports
		case "int64":
			return "sql.NullInt64", imports
		case "float64":
			return "sql.NullFloat64", imports
		case "bool":
			return "sql.NullBool", imports
		default:
			return "*" + rawType, nil
		}
	case "csharp", "kotlin", "swift", "dart":
		return rawType + "?", nil
	case "java":
		switch rawType {
		case "int":
			return "Integer", nil
		case "long":
			return "Long", nil
		case "boolean":
			return "Boolean", nil
		case "float":
			return "Float", nil
		case "double":
			return "Double", nil
		default:
			// String and other object types are already nullable.
			return rawType, nil
		}
	case "php":
		return "?" + rawType, nil
	default:
		return rawType + " | null", nil
	}
}

// optionalType wraps the type in the language's named optional/maybe
// construct.
func optionalType(rawType, lang string) (string, []string) {
	switch lang {
	case "python":
		return "Optional[" + rawType + "]", []string{"typing.Optional"}
	case "zig":
		return "?" + rawType, nil
	case "nim":
		return "Option[" + rawType + "]", nil
	case "haskell":
		return "Maybe " + rawType, nil
	case "ocaml":
		return rawType + " option", nil
	default:
		return rawType, nil
	}
}
