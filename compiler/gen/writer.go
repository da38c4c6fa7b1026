package gen

import (
	"os"
	"path/filepath"

	"golang.org/x/tools/imports"
)

func ensureDir(dir string) error {
	return os.MkdirAll(dir, 0o755)
}

// writeFile writes one rendered model file, formatting Go output with
// goimports when the language config asks for it. Formatting failures
// are fatal: they mean the template produced invalid Go.
func (g *Generator) writeFile(dir, name, table string, src []byte) (string, error) {
	path := filepath.Join(dir, name)
	if g.lang == "go" && g.langConfig.FormatOutput {
		formatted, err := imports.Process(path, src, nil)
		if err != nil {
			return "", NewRenderError(table, path, "format generated source", err)
		}
		src = formatted
	}
	if err := os.WriteFile(path, src, 0o644); err != nil {
		return "", NewRenderError(table, path, "write generated file", err)
	}
	return path, nil
}
