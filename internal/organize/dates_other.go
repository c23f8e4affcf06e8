//go:build !darwin && !windows

package organize

import (
	"os"
	"time"
)

// creationTime reports no creation timestamp on platforms whose stat result
// does not carry one (notably Linux), so resolution falls back to
// modification time.
func creationTime(os.FileInfo) (time.Time, bool) {
	return time.Time{}, false
}
