// Package commands contains all CLI command definitions.
package commands

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/derivepy/derivepy/internal/config"
)

// NewRootCmd creates and returns the root command for the CLI.
func NewRootCmd() *cobra.Command {
	var (
		configPath string
		verbose    bool
	)
	rootCmd := &cobra.Command{
		Use:           "derivepy",
		Short:         "Generate object-protocol methods for annotated struct declarations",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		},
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to derivepy.yaml (default: working directory)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	registerGenerateCmd(rootCmd, &configPath)
	registerDescribeCmd(rootCmd, &configPath)
	registerWatchCmd(rootCmd, &configPath)

	return rootCmd
}

// loadConfig resolves the effective configuration: the file named by
// --config, the default file if present, or an empty config when neither
// exists. Flag values are merged on top by the callers.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		if _, err := os.Stat(config.DefaultFile); err != nil {
			return &config.Config{}, nil
		}
		path = config.DefaultFile
	}
	return config.Load(path)
}
