package main

import (
	"fmt"
	"os"

	"yearsort/internal/config"
	"yearsort/internal/gui"

	"github.com/spf13/cobra"
)

func newGUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gui",
		Short: "Launch the desktop interface",
		Long:  `Launch the desktop version of yearsort. Every session starts in dry-run mode.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !gui.IsGUIAvailable() {
				return fmt.Errorf("this build was compiled without the GUI")
			}

			cfg, err := config.Load()
			if err != nil {
				fmt.Fprintf(os.Stderr, "Warning: could not load config: %v. Using defaults.\n", err)
				cfg = config.New()
			}
			return gui.StartGUI(cfg)
		},
	}
}
