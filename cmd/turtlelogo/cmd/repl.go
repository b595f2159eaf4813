package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/gologo/turtlelogo/internal/repl"
)

var replPrompt string

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive turtle-Logo session",
	Long:  `Start a read-eval-print loop: one running turtle and environment shared across every line you enter.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		repl.New(replPrompt).Start(os.Stdout)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
	replCmd.Flags().StringVar(&replPrompt, "prompt", "logo> ", "prompt string shown before each line")
}
