package organize

import (
	"context"

	"yearsort/pkg/types"
)

// Organizer defines the engine's upward-facing contract. It exists so the
// GUI and watch shells can be tested against a fake engine.
type Organizer interface {
	// Organize runs once and returns the accumulated statistics.
	Organize(ctx context.Context) (*types.RunStats, error)

	// SetPrompter installs the interactive decision source.
	SetPrompter(p Prompter)

	// SetProgress installs a progress callback.
	SetProgress(fn ProgressFunc)
}

// Ensure Engine implements the Organizer interface
var _ Organizer = (*Engine)(nil)
