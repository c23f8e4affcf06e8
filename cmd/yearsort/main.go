package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:     "yearsort",
		Short:   "Organize files into year folders",
		Long:    `Yearsort files the entries of a directory into 4-digit year folders based on when each entry was created.`,
		Version: version,
		// No Run here, the default behavior is to show help.
	}

	rootCmd.AddCommand(newOrganizeCmd())
	rootCmd.AddCommand(newWatchCmd())
	rootCmd.AddCommand(newGUICmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
