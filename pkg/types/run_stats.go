package types

import (
	"fmt"
	"strings"
)

// RunStats accumulates the outcome counts for one engine run. It starts at
// zero, is incremented exclusively by the engine, and is never persisted.
// Each call to Organize produces its own independent RunStats.
type RunStats struct {
	FilesMoved int `json:"files_moved"`
	DirsMoved  int `json:"dirs_moved"`
	Renamed    int `json:"renamed"`
	Skipped    int `json:"skipped"`
	Merged     int `json:"merged"`
	Errors     int `json:"errors"`
}

// Moved returns the total number of relocated entries, files and
// directories combined.
func (s RunStats) Moved() int {
	return s.FilesMoved + s.DirsMoved
}

// String returns a single-line summary suitable for logs.
func (s RunStats) String() string {
	var parts []string
	parts = append(parts, fmt.Sprintf("moved=%d", s.Moved()))
	if s.Renamed > 0 {
		parts = append(parts, fmt.Sprintf("renamed=%d", s.Renamed))
	}
	if s.Merged > 0 {
		parts = append(parts, fmt.Sprintf("merged=%d", s.Merged))
	}
	parts = append(parts, fmt.Sprintf("skipped=%d", s.Skipped))
	parts = append(parts, fmt.Sprintf("errors=%d", s.Errors))
	return strings.Join(parts, " ")
}
