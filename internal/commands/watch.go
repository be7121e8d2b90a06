package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/derivepy/derivepy/compiler/gen"
	"github.com/derivepy/derivepy/compiler/load"
	"github.com/derivepy/derivepy/internal/config"
)

// debounceWindow coalesces rapid editor write bursts into one pass.
const debounceWindow = 250 * time.Millisecond

func registerWatchCmd(parent *cobra.Command, configPath *string) {
	flags := &genFlags{}
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Regenerate whenever the schema directory changes",
		Long: `Watch runs an initial generation pass, then watches the schema
directory and regenerates on every change. Parse results of unchanged
files are reused between passes. A failing pass is logged and the watch
continues.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.resolve(*configPath)
			if err != nil {
				return err
			}
			return runWatch(cmd.Context(), cfg, flags.options(cfg))
		},
	}
	flags.register(cmd)
	parent.AddCommand(cmd)
}

func runWatch(ctx context.Context, cfg *config.Config, opts []gen.Option) error {
	cache := load.NewCache()
	regenerate := func() {
		start := time.Now()
		if err := runPipeline(ctx, cache.LoadDir, cfg, opts); err != nil {
			slog.Error("generation failed", "err", err)
			return
		}
		slog.Info("regenerated", "out", cfg.Out, "elapsed", time.Since(start))
	}
	regenerate()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()
	if err := watcher.Add(cfg.Schema); err != nil {
		return err
	}
	slog.Info("watching", "dir", cfg.Schema)

	var timer *time.Timer
	pending := make(chan struct{}, 1)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !relevantEvent(event) {
				continue
			}
			slog.Debug("change detected", "file", event.Name, "op", event.Op)
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0 {
				cache.Invalidate(event.Name)
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounceWindow, func() {
				select {
				case pending <- struct{}{}:
				default:
				}
			})
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("watch error", "err", err)
		case <-pending:
			regenerate()
		}
	}
}

// relevantEvent filters out non-Go files, test files and the generator's
// own output, which would otherwise loop the watch forever when out and
// schema share a directory.
func relevantEvent(event fsnotify.Event) bool {
	name := event.Name
	if !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") {
		return false
	}
	return !strings.HasSuffix(name, "_derive.go")
}
