// Command turtlelogo is the CLI entry point for the turtle-Logo
// interpreter: a lexer -> parser -> evaluator pipeline exposed as a small
// cobra application with `run` and `repl` subcommands.
//
// Grounded on the teacher's single main.go entry point, generalized to
// cobra's subcommand/flags style the way cwbudde/go-dws's
// cmd/dwscript/main.go delegates straight into cmd.Execute().
package main

import (
	"fmt"
	"os"

	"github.com/gologo/turtlelogo/cmd/turtlelogo/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
