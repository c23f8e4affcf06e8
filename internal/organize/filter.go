package organize

import (
	"yearsort/internal/config"
	"yearsort/pkg/types"
)

// SelectionFilter decides, per top-level entry, whether it is processed at
// all. It is consulted before any date resolution so rejected entries cost
// nothing. Name matching is plain equality against the entry's own name.
type SelectionFilter struct {
	filesOnly bool
	included  map[string]struct{}
	excluded  map[string]struct{}
}

// NewSelectionFilter builds a filter from the run configuration. The
// configured deny-list is extended with the built-in set of already-organized
// year folders so a re-run never files year folders inside each other.
func NewSelectionFilter(cfg *config.Config) *SelectionFilter {
	f := &SelectionFilter{
		filesOnly: cfg.FilesOnly,
		included:  toSet(cfg.IncludedFolders),
		excluded:  toSet(cfg.ExcludedFolders),
	}
	for _, name := range config.DefaultExcludedFolders {
		f.excluded[name] = struct{}{}
	}
	return f
}

// Processable reports whether the named entry takes part in the run.
// Checked in order:
//  1. files-only mode rejects every directory
//  2. a non-empty include list is a strict allow-list and wins over every
//     exclusion, including the built-in year-folder set
//  3. otherwise the deny-list applies
//
// The include list must be checked before any exclusion: an entry named in
// it is processed even when the same name sits in the deny-list.
func (f *SelectionFilter) Processable(name string, kind types.EntryKind) bool {
	if f.filesOnly && kind == types.Directory {
		return false
	}

	if len(f.included) > 0 {
		_, ok := f.included[name]
		return ok
	}

	_, denied := f.excluded[name]
	return !denied
}

func toSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	return set
}
