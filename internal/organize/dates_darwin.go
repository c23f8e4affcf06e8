//go:build darwin

package organize

import (
	"os"
	"syscall"
	"time"
)

// creationTime reads the file birth time that macOS records in its stat
// structure.
func creationTime(info os.FileInfo) (time.Time, bool) {
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return time.Time{}, false
	}
	return time.Unix(stat.Birthtimespec.Sec, stat.Birthtimespec.Nsec), true
}
