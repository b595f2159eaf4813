package cmd

import "github.com/spf13/cobra"

// Version is the interpreter's version string, surfaced by `version` and
// cobra's own --version flag.
var Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:     "turtlelogo",
	Short:   "A Logo-family turtle-graphics interpreter",
	Version: Version,
	Long: `turtlelogo is a tree-walking interpreter for a Logo-family turtle
graphics language: move a turtle around a plane with forward/back/left/
right, draw with a pen, define procedures with to/end, and inspect the
recorded line segments afterward.`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
