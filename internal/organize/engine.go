package organize

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"yearsort/internal/config"
	"yearsort/internal/errors"
	"yearsort/internal/log"
	"yearsort/pkg/types"
)

// ProgressFunc receives per-entry progress as (current, total).
type ProgressFunc func(current, total int)

// Engine orchestrates one organize run: it enumerates the source
// directory's immediate children, applies the selection filter and date
// resolution, builds move plans, delegates collisions to the conflict
// resolver, and performs (or, in dry-run, simulates) each move. The engine
// assumes exclusive access to the source and target trees for the duration
// of one Organize call; serializing runs is the caller's responsibility.
type Engine struct {
	cfg      *config.Config
	filter   *SelectionFilter
	resolver *ConflictResolver
	prompter Prompter
	progress ProgressFunc
}

// New creates an engine for one configuration.
func New(cfg *config.Config) *Engine {
	return &Engine{
		cfg:      cfg,
		filter:   NewSelectionFilter(cfg),
		resolver: NewConflictResolver(cfg.DuplicateMode, nil),
	}
}

// SetPrompter installs the interactive decision source. Without one,
// per-entry confirmation is skipped and interactive conflict resolution
// degrades to skip.
func (e *Engine) SetPrompter(p Prompter) {
	e.prompter = p
	e.resolver = NewConflictResolver(e.cfg.DuplicateMode, p)
}

// SetProgress installs a progress callback.
func (e *Engine) SetProgress(fn ProgressFunc) {
	e.progress = fn
}

// Organize runs the engine once and returns the accumulated statistics.
// Only a configuration error aborts the run before it starts; every
// per-entry failure is logged, counted and stepped over. Cancellation via
// ctx is checked between entries, so a cancelled run stops cleanly with
// whatever stats it has; no individual move is ever left half-applied.
func (e *Engine) Organize(ctx context.Context) (*types.RunStats, error) {
	stats := &types.RunStats{}

	if err := e.cfg.Validate(); err != nil {
		return stats, err
	}

	source := e.cfg.SourceDir
	targetBase := e.cfg.EffectiveTarget()

	log.Info("Starting file organization")
	log.Info("Source: %s", source)
	log.Info("Target: %s", targetBase)
	if e.cfg.DryRun {
		log.Warn("DRY RUN MODE - no changes will be made")
	}

	// os.ReadDir returns entries sorted by name, which makes run output
	// deterministic regardless of the filesystem's native order.
	dirEntries, err := os.ReadDir(source)
	if err != nil {
		return stats, errors.NewFileError("error reading source directory", source, errors.InvalidPath, err)
	}

	entries := e.selectEntries(source, dirEntries)
	total := len(entries)
	log.Info("Processing %d items...", total)

	cancelled := false
	for idx, entry := range entries {
		select {
		case <-ctx.Done():
			log.Warn("Operation cancelled")
			cancelled = true
		default:
		}
		if cancelled {
			break
		}

		if e.progress != nil {
			e.progress(idx+1, total)
		}
		if e.cfg.Verbose || !e.cfg.DryRun {
			log.Info("[%d/%d] Processing %s: %s", idx+1, total, entry.Kind, entry.Name)
		}

		if quit := e.processEntry(entry, targetBase, stats); quit {
			log.Warn("Quit requested, stopping run")
			break
		}
	}

	e.logSummary(stats)
	return stats, nil
}

// selectEntries applies the cheap name-based selection up front so the
// total for progress reporting is known before any date resolution.
func (e *Engine) selectEntries(source string, dirEntries []os.DirEntry) []types.Entry {
	var entries []types.Entry
	for _, de := range dirEntries {
		name := de.Name()
		if name == config.SettingsFileName {
			continue
		}

		kind := types.File
		if de.IsDir() {
			kind = types.Directory
		}

		if !e.filter.Processable(name, kind) {
			if e.cfg.Verbose {
				log.Info("Skipping: %s", name)
			}
			continue
		}

		entry := types.Entry{
			Name: name,
			Path: filepath.Join(source, name),
			Kind: kind,
		}
		if kind == types.File {
			if info, err := de.Info(); err == nil {
				entry.Size = info.Size()
			}
		}
		entries = append(entries, entry)
	}
	return entries
}

// processEntry takes one entry through the state machine: date it, filter
// it, plan it, then execute or simulate the plan. The returned flag is true
// only for an interactive quit.
func (e *Engine) processEntry(entry types.Entry, targetBase string, stats *types.RunStats) bool {
	entry.Year = ResolveYear(entry.Path)
	if entry.Year == types.YearUnknown {
		log.Warn("Skipping %s (no date)", entry.Name)
		stats.Skipped++
		return false
	}

	if e.cfg.TargetYear != "" && entry.Year != e.cfg.TargetYear {
		if e.cfg.Verbose {
			log.Info("Skipping %s (year %s, wanted %s)", entry.Name, entry.Year, e.cfg.TargetYear)
		}
		stats.Skipped++
		return false
	}

	if entry.Kind == types.File && len(e.cfg.FileTypes) > 0 {
		ext := strings.TrimPrefix(filepath.Ext(entry.Name), ".")
		if !containsString(e.cfg.FileTypes, ext) {
			if e.cfg.Verbose {
				log.Info("Skipping %s (extension %q not selected)", entry.Name, ext)
			}
			stats.Skipped++
			return false
		}
	}

	plan := types.MovePlan{
		SourcePath: entry.Path,
		DestDir:    filepath.Join(targetBase, entry.Year),
		DestName:   entry.Name,
		Kind:       entry.Kind,
	}

	if e.cfg.Interactive && e.prompter != nil {
		ok, err := e.prompter.ConfirmMove(plan)
		if err != nil {
			log.Error("Confirmation prompt failed for %s: %v", entry.Name, err)
			stats.Errors++
			return false
		}
		if !ok {
			log.Info("Skipping %s", entry.Name)
			stats.Skipped++
			return false
		}
	}

	if e.cfg.DryRun {
		log.Info("[DRY-RUN] Would move %s: %s -> %s", entry.Kind, entry.Name, plan.Dest())
		return false
	}

	return e.apply(plan, stats)
}

// apply executes one move plan against the filesystem, delegating to the
// conflict resolver when the destination already exists.
func (e *Engine) apply(plan types.MovePlan, stats *types.RunStats) bool {
	if err := os.MkdirAll(plan.DestDir, 0755); err != nil {
		log.Error("Failed to create %s: %v", plan.DestDir, err)
		stats.Errors++
		return false
	}

	dest := plan.Dest()
	if _, err := os.Lstat(dest); os.IsNotExist(err) {
		e.move(plan, dest, stats)
		return false
	}

	res, err := e.resolver.Resolve(plan.SourcePath, dest, plan.Kind)
	if err != nil {
		log.Error("Conflict resolution failed for %s: %v", plan.DestName, err)
		stats.Errors++
		return false
	}

	switch res.Outcome {
	case OutcomeSkip:
		log.Info("Skipping duplicate %s: %s", plan.Kind, plan.DestName)
		stats.Skipped++

	case OutcomeMove:
		// Forced move replacing the destination file.
		if err := os.Remove(dest); err != nil && !os.IsNotExist(err) {
			log.Error("Failed to replace %s: %v", dest, err)
			stats.Errors++
			return false
		}
		log.Warn("Overwriting existing file: %s", dest)
		e.move(plan, dest, stats)

	case OutcomeRename:
		newDest := filepath.Join(plan.DestDir, res.NewName)
		if err := os.Rename(plan.SourcePath, newDest); err != nil {
			log.Error("Failed to move %s: %v", plan.SourcePath, err)
			stats.Errors++
			return false
		}
		log.Success("Moved %s as: %s -> %s", plan.Kind, plan.DestName, res.NewName)
		stats.Renamed++

	case OutcomeMerge:
		if err := mergeDirectory(plan.SourcePath, dest); err != nil {
			log.Error("Failed to merge %s: %v", plan.SourcePath, err)
			stats.Errors++
			return false
		}
		log.Success("Merged directory: %s -> %s", plan.DestName, dest)
		stats.Merged++

	case OutcomeQuit:
		return true
	}
	return false
}

func (e *Engine) move(plan types.MovePlan, dest string, stats *types.RunStats) {
	if err := os.Rename(plan.SourcePath, dest); err != nil {
		log.Error("Failed to move %s: %v", plan.SourcePath, err)
		stats.Errors++
		return
	}
	log.Success("Moved %s: %s -> %s", plan.Kind, plan.DestName, dest)
	if plan.Kind == types.Directory {
		stats.DirsMoved++
	} else {
		stats.FilesMoved++
	}
}

// mergeDirectory relocates the immediate children of src into the existing
// directory dest, then removes src. Children whose names already exist in
// dest are left in place, and a source directory that remains non-empty is
// a warning, not an error; the partially-merged state is accepted.
func mergeDirectory(src, dest string) error {
	children, err := os.ReadDir(src)
	if err != nil {
		return errors.NewFileError("error reading directory to merge", src, errors.MoveFailed, err)
	}

	for _, child := range children {
		from := filepath.Join(src, child.Name())
		to := filepath.Join(dest, child.Name())
		if _, err := os.Lstat(to); err == nil {
			log.Warn("Merge: %s already exists in %s, leaving source copy in place", child.Name(), dest)
			continue
		}
		if err := os.Rename(from, to); err != nil {
			return errors.NewFileError("error merging entry", from, errors.MoveFailed, err)
		}
	}

	if err := os.Remove(src); err != nil {
		log.Warn("Merged %s but could not remove it (not empty?): %v", src, err)
	}
	return nil
}

func (e *Engine) logSummary(stats *types.RunStats) {
	sep := strings.Repeat("=", 60)
	log.Info("%s", sep)
	log.Info("Summary:")
	if moved := stats.Moved(); moved > 0 {
		log.Success("Entries moved: %d (%d files, %d directories)", moved, stats.FilesMoved, stats.DirsMoved)
	}
	if stats.Renamed > 0 {
		log.Warn("Renamed: %d", stats.Renamed)
	}
	if stats.Merged > 0 {
		log.Warn("Merged: %d", stats.Merged)
	}
	if stats.Skipped > 0 {
		log.Warn("Skipped: %d", stats.Skipped)
	}
	if stats.Errors > 0 {
		log.Error("Errors: %d", stats.Errors)
	}
	log.Info("%s", sep)
	if e.cfg.DryRun {
		log.Warn("This was a dry run. Disable dry-run to apply changes.")
	}
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
