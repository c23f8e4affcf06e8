package organize

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"yearsort/internal/config"
	"yearsort/internal/log"
	"yearsort/pkg/types"
)

// Outcome is the decision for a planned destination that already exists.
type Outcome int

const (
	// OutcomeMove performs a forced move replacing the destination.
	OutcomeMove Outcome = iota
	// OutcomeSkip leaves the source entry in place.
	OutcomeSkip
	// OutcomeRename moves the source under a new, timestamped name.
	OutcomeRename
	// OutcomeMerge relocates a source directory's immediate children into
	// the existing destination directory.
	OutcomeMerge
	// OutcomeQuit stops the whole run; the engine prints the running
	// summary and returns the stats accumulated so far.
	OutcomeQuit
)

// Resolution carries the outcome of one conflict, plus the new destination
// name when the outcome is OutcomeRename.
type Resolution struct {
	Outcome Outcome
	NewName string
}

// Choice is a terminal answer from an interactive prompt. Display-only
// actions such as showing a diff loop inside the prompter and never surface
// here.
type Choice int

const (
	ChoiceRename Choice = iota
	ChoiceOverwrite
	ChoiceMerge
	ChoiceSkip
	ChoiceQuit
)

// Prompter supplies the interactive decisions a run may need. The CLI
// implements it over stdin; a GUI host can implement it with dialogs, or
// leave it unset to run headlessly (interactive decisions then degrade to
// skip).
type Prompter interface {
	// ConfirmMove asks whether one planned move should proceed.
	ConfirmMove(plan types.MovePlan) (bool, error)
	// FileConflict resolves a duplicate file. Valid answers are rename,
	// overwrite, skip and quit.
	FileConflict(src, dest string) (Choice, error)
	// DirConflict resolves a duplicate directory. Valid answers are
	// rename, merge, skip and quit. Overwrite is never offered for
	// directories; replacing one wholesale would silently drop the
	// destination's existing contents.
	DirConflict(src, dest string) (Choice, error)
}

// ConflictResolver decides the outcome for planned destinations that
// already exist, according to the configured duplicate mode or an
// interactive prompt. It performs no filesystem mutation itself.
type ConflictResolver struct {
	mode     config.DuplicateMode
	prompter Prompter
	now      func() time.Time
}

// NewConflictResolver creates a resolver for the given duplicate mode.
// prompter may be nil; interactive resolution then degrades to skip.
func NewConflictResolver(mode config.DuplicateMode, prompter Prompter) *ConflictResolver {
	return &ConflictResolver{mode: mode, prompter: prompter, now: time.Now}
}

// Resolve decides what to do about the existing destination dest for the
// source entry src.
func (r *ConflictResolver) Resolve(src, dest string, kind types.EntryKind) (Resolution, error) {
	r.logDuplicate(src, dest, kind)

	mode := r.mode
	if mode == config.DuplicateMerge && kind == types.File {
		// Merge only makes sense for directories; files take the
		// safe, lossless path.
		mode = config.DuplicateRename
	}

	switch mode {
	case config.DuplicateSkip:
		return Resolution{Outcome: OutcomeSkip}, nil

	case config.DuplicateRename:
		name, err := r.renamedName(src, dest, kind)
		if err != nil {
			return Resolution{}, err
		}
		return Resolution{Outcome: OutcomeRename, NewName: name}, nil

	case config.DuplicateOverwrite:
		if kind == types.Directory {
			log.Warn("Refusing to overwrite directory %s, skipping", dest)
			return Resolution{Outcome: OutcomeSkip}, nil
		}
		return Resolution{Outcome: OutcomeMove}, nil

	case config.DuplicateMerge:
		return Resolution{Outcome: OutcomeMerge}, nil

	case config.DuplicateInteractive:
		return r.resolveInteractive(src, dest, kind)

	default:
		return Resolution{}, fmt.Errorf("unknown duplicate mode: %s", r.mode)
	}
}

func (r *ConflictResolver) resolveInteractive(src, dest string, kind types.EntryKind) (Resolution, error) {
	if r.prompter == nil {
		log.Warn("Skipping duplicate %s (no prompt available)", kind)
		return Resolution{Outcome: OutcomeSkip}, nil
	}

	var choice Choice
	var err error
	if kind == types.Directory {
		choice, err = r.prompter.DirConflict(src, dest)
	} else {
		choice, err = r.prompter.FileConflict(src, dest)
	}
	if err != nil {
		return Resolution{}, fmt.Errorf("conflict prompt failed: %w", err)
	}

	switch choice {
	case ChoiceRename:
		name, err := r.renamedName(src, dest, kind)
		if err != nil {
			return Resolution{}, err
		}
		return Resolution{Outcome: OutcomeRename, NewName: name}, nil
	case ChoiceOverwrite:
		if kind == types.Directory {
			return Resolution{Outcome: OutcomeSkip}, nil
		}
		return Resolution{Outcome: OutcomeMove}, nil
	case ChoiceMerge:
		if kind != types.Directory {
			return Resolution{Outcome: OutcomeSkip}, nil
		}
		return Resolution{Outcome: OutcomeMerge}, nil
	case ChoiceQuit:
		return Resolution{Outcome: OutcomeQuit}, nil
	default:
		return Resolution{Outcome: OutcomeSkip}, nil
	}
}

// renamedName builds a free destination name of the form
// <base>_<timestamp><ext>. Files stamp with their own modification time;
// directories stamp with the current wall clock, since a directory carries
// no single meaningful mtime across its contents. A second collision at the
// stamped name appends a counter until the name is free.
func (r *ConflictResolver) renamedName(src, dest string, kind types.EntryKind) (string, error) {
	ts := r.now()
	if kind == types.File {
		if info, err := os.Stat(src); err == nil {
			ts = info.ModTime()
		}
	}
	stamp := ts.Format("20060102_150405")

	destDir := filepath.Dir(dest)
	base := filepath.Base(dest)
	ext := filepath.Ext(base)
	if kind == types.Directory {
		ext = ""
	}
	stem := strings.TrimSuffix(base, ext)

	name := fmt.Sprintf("%s_%s%s", stem, stamp, ext)
	for counter := 1; ; counter++ {
		if _, err := os.Lstat(filepath.Join(destDir, name)); os.IsNotExist(err) {
			return name, nil
		}
		if counter > 1000 {
			return "", fmt.Errorf("failed to find a free name for %s after 1000 attempts", dest)
		}
		name = fmt.Sprintf("%s_%s_%d%s", stem, stamp, counter, ext)
	}
}

func (r *ConflictResolver) logDuplicate(src, dest string, kind types.EntryKind) {
	sizeInfo := ""
	if kind == types.File {
		srcInfo, srcErr := os.Stat(src)
		destInfo, destErr := os.Stat(dest)
		if srcErr == nil && destErr == nil {
			sizeInfo = fmt.Sprintf(" (source: %d bytes, existing: %d bytes)", srcInfo.Size(), destInfo.Size())
		}
	}
	log.Warn("Duplicate %s: %s%s", kind, filepath.Base(dest), sizeInfo)
}
