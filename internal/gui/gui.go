//go:build !nogui
// +build !nogui

// Package gui is the desktop shell. It drives the same engine as the CLI
// but collects the run configuration from widgets, and it never persists
// the dry-run flag so every session starts in preview mode.
package gui

import (
	"strings"

	"yearsort/internal/config"
)

// StartGUI launches the desktop application and blocks until it exits.
func StartGUI(cfg *config.Config) error {
	NewApp(cfg).Run()
	return nil
}

// IsGUIAvailable reports whether this build carries the desktop shell.
func IsGUIAvailable() bool {
	return true
}

func joinTypes(types []string) string {
	return strings.Join(types, ",")
}

func splitTypes(raw string) []string {
	var types []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			types = append(types, part)
		}
	}
	return types
}
