// Package derivepy generates object-protocol methods for annotated Go
// struct declarations. The entry points here wire the three stages
// together: loading directive-annotated declarations, resolving them
// into a typed catalogue, and emitting one derive file per type.
package derivepy

import (
	"context"

	"github.com/derivepy/derivepy/compiler/gen"
	"github.com/derivepy/derivepy/compiler/gen/py"
	"github.com/derivepy/derivepy/compiler/load"
)

// Generate loads every annotated declaration under dir and writes the
// generated derive files to outDir.
func Generate(dir, outDir string, opts ...gen.Option) error {
	return GenerateContext(context.Background(), dir, outDir, opts...)
}

// GenerateContext is Generate with cancellation.
func GenerateContext(ctx context.Context, dir, outDir string, opts ...gen.Option) error {
	schemas, err := load.LoadDir(dir)
	if err != nil {
		return err
	}
	cfg, err := gen.NewConfig(opts...)
	if err != nil {
		return err
	}
	graph, err := gen.NewGraph(cfg, schemas...)
	if err != nil {
		return err
	}
	return gen.NewGenerator(graph, outDir).
		WithDialect(py.New()).
		Generate(ctx)
}
