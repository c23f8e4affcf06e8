//go:build windows

package organize

import (
	"os"
	"syscall"
	"time"
)

// creationTime reads the creation timestamp from the Win32 file attributes.
func creationTime(info os.FileInfo) (time.Time, bool) {
	attrs, ok := info.Sys().(*syscall.Win32FileAttributeData)
	if !ok {
		return time.Time{}, false
	}
	return time.Unix(0, attrs.CreationTime.Nanoseconds()), true
}
