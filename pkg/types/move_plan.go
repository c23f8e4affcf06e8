package types

import "path/filepath"

// MovePlan describes a single planned relocation, built before any
// filesystem mutation so a dry run can be rendered without touching disk.
// DestDir is always <target base>/<year>.
type MovePlan struct {
	SourcePath string    `json:"source_path"`
	DestDir    string    `json:"dest_dir"`
	DestName   string    `json:"dest_name"`
	Kind       EntryKind `json:"kind"`
}

// Dest returns the full planned destination path.
func (p MovePlan) Dest() string {
	return filepath.Join(p.DestDir, p.DestName)
}
