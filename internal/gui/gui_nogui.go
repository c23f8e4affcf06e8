//go:build nogui
// +build nogui

package gui

import (
	"fmt"

	"yearsort/internal/config"
)

// StartGUI is a stub for builds with the GUI disabled.
func StartGUI(cfg *config.Config) error {
	return fmt.Errorf("GUI not available in this build")
}

// IsGUIAvailable reports whether this build carries the desktop shell.
func IsGUIAvailable() bool {
	return false
}
