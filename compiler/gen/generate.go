package gen

import (
	"context"
	"os"
	"runtime"

	"github.com/dave/jennifer/jen"
	"golang.org/x/sync/errgroup"

	"github.com/derivepy/derivepy/compiler/load"
)

// Graph holds the catalogue of every type processed in one generation
// pass. Types are independent: no ordering dependency exists between them
// and an error in one leaves the others unaffected.
type Graph struct {
	*Config
	// Nodes holds the type catalogues in load order.
	Nodes []*Type
}

// NewGraph creates a graph from loaded schemas, building and validating
// the catalogue of each.
func NewGraph(c *Config, schemas ...*load.Schema) (*Graph, error) {
	g := &Graph{Config: c, Nodes: make([]*Type, 0, len(schemas))}
	var errs []error
	for _, s := range schemas {
		t, err := NewType(c, s)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		g.Nodes = append(g.Nodes, t)
	}
	if err := NewAggregateError(errs...); err != nil {
		return nil, err
	}
	return g, nil
}

// Dialect produces the generated derive file of one type. Implementations
// hold the slot emitters; the driver neither knows nor cares which
// operations a dialect emits.
type Dialect interface {
	// GenDerive generates the per-type derive file.
	GenDerive(t *Type) (*jen.File, error)
}

// Generator drives the generation pass: it fans the graph's types out to
// the dialect, renders and formats the results, and writes one file per
// type into the output directory.
type Generator struct {
	graph   *Graph
	dialect Dialect
	outDir  string
	workers int
}

// NewGenerator creates a new generator for the graph. Call WithDialect
// before Generate.
func NewGenerator(g *Graph, outDir string) *Generator {
	return &Generator{
		graph:   g,
		outDir:  outDir,
		workers: runtime.GOMAXPROCS(0),
	}
}

// WithDialect sets the dialect that emits the protocol slots.
func (g *Generator) WithDialect(d Dialect) *Generator {
	if d != nil {
		g.dialect = d
	}
	return g
}

// WithWorkers sets the number of parallel workers.
func (g *Generator) WithWorkers(n int) *Generator {
	if n > 0 {
		g.workers = n
	}
	return g
}

// Generate runs the pass. Types are processed in parallel; each type's
// pass is synchronous and shares no state with the others. The first
// failing type aborts the run, files already written stay written.
func (g *Generator) Generate(ctx context.Context) error {
	if g.dialect == nil {
		return NewConfigError("Dialect", nil, "no dialect set: call WithDialect() before Generate()")
	}
	if err := os.MkdirAll(g.outDir, 0o755); err != nil {
		return err
	}
	grp, ctx := errgroup.WithContext(ctx)
	grp.SetLimit(g.workers)
	for _, t := range g.graph.Nodes {
		t := t
		grp.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			file, err := g.dialect.GenDerive(t)
			if err != nil {
				return err
			}
			return writeFile(g.outDir, t.FileName(), file)
		})
	}
	return grp.Wait()
}
