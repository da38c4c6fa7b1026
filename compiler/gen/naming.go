package gen

import (
	"strings"
	"text/template"
	"unicode"

	"github.com/go-openapi/inflect"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Case identifiers accepted by Convert. Any other identifier leaves the
// input unchanged, so a misconfigured case never aborts a run.
const (
	PascalCase         = "PascalCase"
	CamelCase          = "camelCase"
	SnakeCase          = "snake_case"
	KebabCase          = "kebab-case"
	ScreamingSnakeCase = "SCREAMING_SNAKE_CASE"
)

// Convert re-cases input according to the named convention. Word
// boundaries are detected at underscores, dashes, spaces and camel-case
// transitions, so conversion is idempotent and round-trips between
// conventions.
func Convert(input, caseName string) string {
	switch caseName {
	case PascalCase:
		return joinPascal(splitWords(input), false)
	case CamelCase:
		return joinPascal(splitWords(input), true)
	case SnakeCase:
		return strings.Join(splitWords(input), "_")
	case KebabCase:
		return strings.Join(splitWords(input), "-")
	case ScreamingSnakeCase:
		return strings.ToUpper(strings.Join(splitWords(input), "_"))
	default:
		return input
	}
}

// splitWords segments an identifier into lowercase words. An upper rune
// starts a new word after a lower rune or digit, and an acronym run ends
// one word before its last rune ("HTTPServer" -> http, server).
func splitWords(s string) []string {
	var words []string
	var w []rune
	flush := func() {
		if len(w) > 0 {
			words = append(words, strings.ToLower(string(w)))
			w = w[:0]
		}
	}
	runes := []rune(s)
	for i, r := range runes {
		switch {
		case r == '_' || r == '-' || r == ' ':
			flush()
		case unicode.IsUpper(r):
			if i > 0 {
				prev := runes[i-1]
				nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
				if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
					flush()
				}
			}
			w = append(w, r)
		default:
			w = append(w, r)
		}
	}
	flush()
	return words
}

func joinPascal(words []string, lowerFirst bool) string {
	var b strings.Builder
	for i, word := range words {
		if i == 0 && lowerFirst {
			b.WriteString(word)
			continue
		}
		b.WriteString(capitalize(word))
	}
	return b.String()
}

// capitalize upper-cases only the first rune, leaving the rest intact.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// uncapitalize lower-cases only the first rune.
func uncapitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}

var titleCaser = cases.Title(language.English)

// helperFuncs is the FuncMap shared by the main templates and the
// per-tag sub-templates.
func helperFuncs() template.FuncMap {
	return template.FuncMap{
		"to_snake_case":           func(s string) string { return Convert(s, SnakeCase) },
		"to_pascal_case":          func(s string) string { return Convert(s, PascalCase) },
		"to_camel_case":           func(s string) string { return Convert(s, CamelCase) },
		"to_kebab_case":           func(s string) string { return Convert(s, KebabCase) },
		"to_screaming_snake_case": func(s string) string { return Convert(s, ScreamingSnakeCase) },
		"pluralize":               inflect.Pluralize,
		"singularize":             inflect.Singularize,
		"capitalize":              capitalize,
		"uncapitalize":            uncapitalize,
		"title":                   titleCaser.String,
		"split":                   strings.Split,
		"contains": func(list []string, s string) bool {
			for _, item := range list {
				if item == s {
					return true
				}
			}
			return false
		},
	}
}
