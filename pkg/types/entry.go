package types

// EntryKind distinguishes the two kinds of top-level entries the engine
// operates on.
type EntryKind int

const (
	File EntryKind = iota
	Directory
)

// String returns a human-readable name for the entry kind
func (k EntryKind) String() string {
	if k == Directory {
		return "directory"
	}
	return "file"
}

// YearUnknown is the sentinel year assigned to entries whose timestamps
// cannot be resolved. Entries with this year are never moved.
const YearUnknown = "unknown"

// Entry represents an immediate child of the source directory, the unit of
// selection and movement. Entries are read once per run and carry no
// identity across runs.
type Entry struct {
	Name string    `json:"name"`
	Path string    `json:"path"`
	Kind EntryKind `json:"kind"`
	Year string    `json:"year"` // 4-digit year or YearUnknown
	Size int64     `json:"size"` // files only
}

// IsDir reports whether the entry is a directory
func (e Entry) IsDir() bool {
	return e.Kind == Directory
}
