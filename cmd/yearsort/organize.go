package main

import (
	"fmt"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"

	"yearsort/internal/cli"
	"yearsort/internal/config"
	"yearsort/internal/log"
	"yearsort/internal/organize"

	"github.com/spf13/cobra"
)

func newOrganizeCmd() *cobra.Command {
	var (
		year             string
		types            string
		sourceDir        string
		targetDir        string
		dryRun           bool
		filesOnly        bool
		excludes         []string
		includes         []string
		chooseExcludes   bool
		chooseIncludes   bool
		interactive      bool
		skipDuplicates   bool
		renameDuplicates bool
		verbose          bool
	)

	cmd := &cobra.Command{
		Use:   "organize [directory]",
		Short: "Organize a directory's entries into year folders",
		Long: `Organize moves each top-level file and folder of the source directory
into a year folder named after its creation time, falling back to the
modification time. Runs are simulations by default; pass --dry-run=false
to move anything.`,
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
			if cmd.Flags().Changed("dry-run") {
				cfg.DryRun = dryRun
			}
			if cmd.Flags().Changed("files-only") {
				cfg.FilesOnly = filesOnly
			}
			if year != "" {
				cfg.TargetYear = year
			}
			if types != "" {
				cfg.FileTypes = splitList(types)
			}
			if len(includes) > 0 {
				cfg.IncludedFolders = includes
			}
			if len(excludes) > 0 {
				cfg.ExcludedFolders = excludes
			}
			if cmd.Flags().Changed("verbose") {
				cfg.Verbose = verbose
			}

			switch {
			case interactive:
				cfg.Interactive = true
				cfg.DuplicateMode = config.DuplicateInteractive
			case skipDuplicates:
				cfg.DuplicateMode = config.DuplicateSkip
			case renameDuplicates:
				cfg.DuplicateMode = config.DuplicateRename
			}

			log.SetDebug(cfg.Verbose)

			if chooseIncludes {
				chosen, err := chooseFolders(cfg.SourceDir, "Folders to include")
				if err != nil {
					return err
				}
				cfg.IncludedFolders = chosen
			}
			if chooseExcludes {
				chosen, err := chooseFolders(cfg.SourceDir, "Folders to exclude")
				if err != nil {
					return err
				}
				cfg.ExcludedFolders = append(cfg.ExcludedFolders, chosen...)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			engine := organize.New(cfg)
			if cfg.Interactive || cfg.DuplicateMode == config.DuplicateInteractive {
				engine.SetPrompter(cli.NewTerminalPrompt())
			}

			stats, err := engine.Organize(ctx)
			if err != nil {
				return err
			}
			fmt.Println(cli.RenderSummary(stats))
			return nil
		},
	}

	cmd.Flags().StringVar(&year, "year", "", "only organize entries from this 4-digit year")
	cmd.Flags().StringVar(&types, "type", "", "only organize files with these extensions (comma-separated, no dot)")
	cmd.Flags().StringVar(&sourceDir, "source-dir", "", "directory to organize (defaults to the current directory)")
	cmd.Flags().StringVar(&targetDir, "target-dir", "", "base directory for year folders (defaults to the source)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", true, "report planned moves without performing them")
	cmd.Flags().BoolVar(&filesOnly, "files-only", false, "organize loose files only, leave folders in place")
	cmd.Flags().StringArrayVar(&excludes, "exclude", nil, "folder name to leave in place (repeatable)")
	cmd.Flags().StringArrayVar(&includes, "include", nil, "folder name to organize, all others stay (repeatable)")
	cmd.Flags().BoolVar(&chooseExcludes, "choose-excludes", false, "pick excluded folders interactively")
	cmd.Flags().BoolVar(&chooseIncludes, "choose-includes", false, "pick included folders interactively")
	cmd.Flags().BoolVar(&interactive, "interactive", false, "confirm each move and each conflict")
	cmd.Flags().BoolVar(&skipDuplicates, "skip-duplicates", false, "leave entries whose destination already exists")
	cmd.Flags().BoolVar(&renameDuplicates, "rename-duplicates", false, "move duplicates under a timestamped name")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log filtered and skipped entries")

	cmd.MarkFlagsMutuallyExclusive("interactive", "skip-duplicates", "rename-duplicates")
	cmd.MarkFlagsMutuallyExclusive("choose-includes", "include")
	cmd.MarkFlagsMutuallyExclusive("choose-excludes", "exclude")

	return cmd
}

// chooseFolders runs the interactive picker over the source directory's
// top-level folders.
func chooseFolders(sourceDir, title string) ([]string, error) {
	entries, err := os.ReadDir(sourceDir)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", sourceDir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	if len(names) == 0 {
		fmt.Println("No folders to choose from.")
		return nil, nil
	}
	return cli.ChooseFolders(title, names)
}

func splitList(raw string) []string {
	var items []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			items = append(items, part)
		}
	}
	return items
}
