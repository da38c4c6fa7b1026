package gen

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/syssam/modelgen/config"
)

// Built-in templates compiled into the binary, so generation works with
// zero template configuration.
//
//go:embed templates/*.tmpl
var builtinFS embed.FS

// defaultExtensions maps a known language name to its output file
// extension. Languages with an explicit output_extension bypass it.
var defaultExtensions = map[string]string{
	"rust":       "rs",
	"typescript": "ts",
	"go":         "go",
	"python":     "py",
	"java":       "java",
	"csharp":     "cs",
	"php":        "php",
	"ruby":       "rb",
	"swift":      "swift",
	"kotlin":     "kt",
	"dart":       "dart",
	"zig":        "zig",
	"nim":        "nim",
	"haskell":    "hs",
	"elixir":     "ex",
	"crystal":    "cr",
	"ocaml":      "ml",
}

// defaultTemplateFiles maps an output extension to the built-in template
// that renders it.
var defaultTemplateFiles = map[string]string{
	"rs":    "rust_struct.tmpl",
	"ts":    "typescript_interface.tmpl",
	"go":    "go_struct.tmpl",
	"py":    "python_class.tmpl",
	"java":  "java_class.tmpl",
	"cs":    "csharp_class.tmpl",
	"php":   "php_class.tmpl",
	"rb":    "ruby_class.tmpl",
	"swift": "swift_struct.tmpl",
	"kt":    "kotlin_class.tmpl",
	"dart":  "dart_class.tmpl",
	"zig":   "zig_struct.tmpl",
	"nim":   "nim_type.tmpl",
	"hs":    "haskell_data.tmpl",
	"ex":    "elixir_struct.tmpl",
	"exs":   "elixir_struct.tmpl",
	"cr":    "crystal_class.tmpl",
	"ml":    "ocaml_type.tmpl",
	"mli":   "ocaml_type.tmpl",
}

// DefaultExtension returns the output extension derived from a language
// name. Unknown languages without an explicit output_extension cannot
// generate anything and are a configuration error.
func DefaultExtension(lang string) (string, error) {
	ext, ok := defaultExtensions[lang]
	if !ok {
		return "", NewConfigError("output_extension", lang, "unknown language and no output_extension configured")
	}
	return ext, nil
}

// defaultTemplateFile returns the built-in template name derived from an
// output extension.
func defaultTemplateFile(ext string) (string, error) {
	name, ok := defaultTemplateFiles[strings.TrimPrefix(ext, ".")]
	if !ok {
		return "", NewConfigError("output_extension", ext, "no built-in template for extension")
	}
	return name, nil
}

// builtinTemplate returns the embedded template text for name.
func builtinTemplate(lang, name string) (string, error) {
	data, err := builtinFS.ReadFile("templates/" + name)
	if err != nil {
		return "", NewTemplateError(lang, name, "unknown built-in template", nil)
	}
	return string(data), nil
}

// resolveTemplate picks and compiles the template backing one language:
// an explicit custom path first, then the configured template file (from
// the template directory, falling back to a built-in of the same name),
// and otherwise the built-in derived from the output extension.
func resolveTemplate(cfg *config.Config, lang string, lc config.LanguageConfig) (*template.Template, error) {
	parse := func(name, text string) (*template.Template, error) {
		tmpl, err := template.New(name).Funcs(helperFuncs()).Parse(text)
		if err != nil {
			return nil, NewTemplateError(lang, name, "parse template", err)
		}
		return tmpl, nil
	}

	if lc.TemplatePath != "" {
		data, err := os.ReadFile(lc.TemplatePath)
		if err != nil {
			return nil, NewTemplateError(lang, lc.TemplatePath, "load custom template", err)
		}
		return parse(filepath.Base(lc.TemplatePath), string(data))
	}

	if lc.TemplateFile != "" {
		path := filepath.Join(cfg.Generation.TemplateDir, lc.TemplateFile)
		if _, err := os.Stat(path); err == nil {
			data, err := os.ReadFile(path)
			if err != nil {
				return nil, NewTemplateError(lang, path, "load template", err)
			}
			return parse(lc.TemplateFile, string(data))
		}
		text, err := builtinTemplate(lang, lc.TemplateFile)
		if err != nil {
			return nil, err
		}
		return parse(lc.TemplateFile, text)
	}

	ext := lc.OutputExtension
	if ext == "" {
		var err error
		if ext, err = DefaultExtension(lang); err != nil {
			return nil, err
		}
	}
	name, err := defaultTemplateFile(ext)
	if err != nil {
		return nil, err
	}
	text, err := builtinTemplate(lang, name)
	if err != nil {
		return nil, err
	}
	return parse(name, text)
}
