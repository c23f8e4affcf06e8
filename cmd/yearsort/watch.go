package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"yearsort/internal/config"
	"yearsort/internal/organize"
	"yearsort/internal/watch"

	"github.com/spf13/cobra"
)

func newWatchCmd() *cobra.Command {
	var (
		sourceDir string
		targetDir string
		dryRun    bool
		debounce  int
		ignore    []string
	)

	cmd := &cobra.Command{
		Use:   "watch [directory]",
		Short: "Keep a directory organized continuously",
		Long: `Watch monitors the source directory and reruns the organizer whenever
new entries appear, after a short quiet period. Unlike a one-shot run,
watch moves files for real unless --dry-run is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				fmt.Fprintf(os.Stderr, "Warning: could not load config: %v. Using defaults.\n", err)
				cfg = config.New()
			}

			if sourceDir == "" && len(args) > 0 {
				sourceDir = args[0]
			}
			if sourceDir != "" {
				cfg.SourceDir = sourceDir
			}
			if cfg.SourceDir == "" {
				if cfg.SourceDir, err = os.Getwd(); err != nil {
					return fmt.Errorf("error getting current directory: %w", err)
				}
			}
			if targetDir != "" {
				cfg.TargetDir = targetDir
			}

			// A watch run is pointless as a permanent simulation, so the
			// dry-run default flips here and must be asked for explicitly.
			cfg.DryRun = dryRun

			if cmd.Flags().Changed("debounce") {
				cfg.Watch.DebounceSeconds = debounce
			}
			if len(ignore) > 0 {
				cfg.Watch.Ignore = append(cfg.Watch.Ignore, ignore...)
			}

			// Interactive conflict prompts cannot block a background loop.
			if cfg.DuplicateMode == config.DuplicateInteractive {
				cfg.DuplicateMode = config.DuplicateRename
			}
			cfg.Interactive = false

			watcher, err := watch.New(cfg, organize.New(cfg))
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			fmt.Printf("Watching %s (Ctrl-C to stop)\n", cfg.SourceDir)
			if err := watcher.Run(ctx); err != nil && err != context.Canceled {
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&sourceDir, "source-dir", "", "directory to watch (defaults to the current directory)")
	cmd.Flags().StringVar(&targetDir, "target-dir", "", "base directory for year folders (defaults to the source)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "report planned moves without performing them")
	cmd.Flags().IntVar(&debounce, "debounce", 2, "seconds of quiet before an organizing run triggers")
	cmd.Flags().StringArrayVar(&ignore, "ignore", nil, "glob pattern for events to ignore (repeatable)")

	return cmd
}
