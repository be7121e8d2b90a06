package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/derivepy/derivepy/compiler/gen"
	"github.com/derivepy/derivepy/compiler/gen/py"
	"github.com/derivepy/derivepy/compiler/load"
	"github.com/derivepy/derivepy/internal/config"
)

// genFlags holds the generation inputs shared by generate and watch.
type genFlags struct {
	schema  string
	out     string
	pkg     string
	header  string
	workers int
}

func (f *genFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.schema, "schema", "", "directory holding the annotated declarations")
	cmd.Flags().StringVar(&f.out, "out", "", "output directory (default: the schema directory)")
	cmd.Flags().StringVar(&f.pkg, "pkg", "", "package name override for generated files")
	cmd.Flags().StringVar(&f.header, "header", "", "extra header comment for generated files")
	cmd.Flags().IntVar(&f.workers, "workers", 0, "number of types generated in parallel (default: GOMAXPROCS)")
}

// resolve merges the flags over the file configuration. Flags win.
func (f *genFlags) resolve(configPath string) (*config.Config, error) {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return nil, err
	}
	if f.schema != "" {
		cfg.Schema = f.schema
	}
	if f.out != "" {
		cfg.Out = f.out
	}
	if f.pkg != "" {
		cfg.Package = f.pkg
	}
	if f.header != "" {
		cfg.Header = f.header
	}
	if f.workers != 0 {
		cfg.Workers = f.workers
	}
	if cfg.Out == "" {
		cfg.Out = cfg.Schema
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("derivepy: invalid configuration: %w", err)
	}
	return cfg, nil
}

// options translates the effective configuration into generator options.
func (f *genFlags) options(cfg *config.Config) []gen.Option {
	var opts []gen.Option
	if cfg.Package != "" {
		opts = append(opts, gen.WithPackage(cfg.Package))
	}
	if cfg.Header != "" {
		opts = append(opts, gen.WithHeader(cfg.Header))
	}
	return opts
}

func registerGenerateCmd(parent *cobra.Command, configPath *string) {
	flags := &genFlags{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate derive files for every annotated type",
		Example: `  # Generate in place
  derivepy generate --schema ./model

  # Generate into a separate package
  derivepy generate --schema ./model --out ./model/derived --pkg derived`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.resolve(*configPath)
			if err != nil {
				return err
			}
			slog.Info("generating", "schema", cfg.Schema, "out", cfg.Out)
			if err := runPipeline(cmd.Context(), load.LoadDir, cfg, flags.options(cfg)); err != nil {
				return err
			}
			slog.Info("generation complete", "out", cfg.Out)
			return nil
		},
	}
	flags.register(cmd)
	parent.AddCommand(cmd)
}

// runPipeline runs one load-resolve-emit pass. The loader is injected so
// watch mode can substitute its caching loader.
func runPipeline(ctx context.Context, loadDir func(string) ([]*load.Schema, error), cfg *config.Config, opts []gen.Option) error {
	schemas, err := loadDir(cfg.Schema)
	if err != nil {
		return err
	}
	c, err := gen.NewConfig(opts...)
	if err != nil {
		return err
	}
	graph, err := gen.NewGraph(c, schemas...)
	if err != nil {
		return err
	}
	g := gen.NewGenerator(graph, cfg.Out).WithDialect(py.New())
	if cfg.Workers > 0 {
		g = g.WithWorkers(cfg.Workers)
	}
	return g.Generate(ctx)
}
