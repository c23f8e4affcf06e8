package organize

import (
	"fmt"
	"os"
	"time"

	"yearsort/pkg/types"
)

// Timestamps outside this window are treated as filesystem noise (epoch
// zeroes, far-future clock damage) rather than organizable dates.
const (
	minValidYear = 1900
	maxValidYear = 2100
)

// ResolveYear determines the organizing year for a filesystem entry,
// preferring creation time where the platform records one and falling back
// to modification time. The result is a 4-digit year in local time, or
// types.YearUnknown when no usable timestamp exists. Metadata read failures
// never propagate; they degrade to the unknown sentinel. The function has no
// side effects and is safe to call concurrently.
func ResolveYear(path string) string {
	info, err := os.Stat(path)
	if err != nil {
		return types.YearUnknown
	}

	if created, ok := creationTime(info); ok && created.Unix() > 0 {
		if year := formatYear(created.Local()); year != types.YearUnknown {
			return year
		}
	}

	mod := info.ModTime()
	if mod.IsZero() || mod.Unix() <= 0 {
		return types.YearUnknown
	}
	return formatYear(mod.Local())
}

func formatYear(ts time.Time) string {
	year := ts.Year()
	if year < minValidYear || year > maxValidYear {
		return types.YearUnknown
	}
	return fmt.Sprintf("%04d", year)
}
