package gen

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dave/jennifer/jen"
	"golang.org/x/tools/imports"
)

// Render renders the file and runs it through the imports formatter.
// Jennifer output is already gofmt-shaped; the extra pass drops imports a
// conditional emitter declared but never used.
func Render(name string, f *jen.File) ([]byte, error) {
	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return nil, fmt.Errorf("derivepy: render %s: %w", name, err)
	}
	src, err := imports.Process(name, buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("derivepy: format %s: %w", name, err)
	}
	return src, nil
}

func writeFile(dir, name string, f *jen.File) error {
	src, err := Render(name, f)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(dir, name), src, 0o644); err != nil {
		return fmt.Errorf("derivepy: write %s: %w", name, err)
	}
	return nil
}
