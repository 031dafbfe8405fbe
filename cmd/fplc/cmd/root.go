package cmd

import (
	"github.com/spf13/cobra"
)

// Version is set by build flags, matching the teacher's root.go pattern.
var Version = "0.1.0-dev"

var rootCmd = &cobra.Command{
	Use:     "fplc",
	Short:   "fplc runs exam-style pseudocode programs",
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
