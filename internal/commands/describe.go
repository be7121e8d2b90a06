package commands

import (
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"github.com/derivepy/derivepy/compiler/load"
)

func registerDescribeCmd(parent *cobra.Command, configPath *string) {
	var schemaDir string
	cmd := &cobra.Command{
		Use:   "describe",
		Short: "Dump the loaded schema of every annotated type",
		Long: `Describe parses the schema directory and prints the loaded
declaration of every annotated type: aliases, requested operations and
the per-field directive resolution. Useful for checking what the
generator would see without writing any files.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			if schemaDir != "" {
				cfg.Schema = schemaDir
			}
			if cfg.Schema == "" {
				return fmt.Errorf("derivepy: no schema directory: set --schema or the config file")
			}
			schemas, err := load.LoadDir(cfg.Schema)
			if err != nil {
				return err
			}
			return runDescribe(schemas)
		},
	}
	cmd.Flags().StringVar(&schemaDir, "schema", "", "directory holding the annotated declarations")
	parent.AddCommand(cmd)
}

func runDescribe(schemas []*load.Schema) error {
	dumper := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, DisableCapacities: true, SortKeys: true}
	for i, s := range schemas {
		if i > 0 {
			fmt.Println()
		}
		fmt.Printf("%s (%s)\n", s.Name, s.Pos)
		dumper.Fdump(os.Stdout, s)
	}
	if len(schemas) == 0 {
		fmt.Fprintln(os.Stderr, "no annotated types found")
	}
	return nil
}
