package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gologo/turtlelogo/internal/ast"
	"github.com/gologo/turtlelogo/internal/interp"
	"github.com/gologo/turtlelogo/internal/langerr"
	"github.com/gologo/turtlelogo/internal/lexer"
	"github.com/gologo/turtlelogo/internal/parser"
)

var (
	evalExpr   string
	dumpAST    bool
	dumpTokens bool
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a turtle-Logo program",
	Long: `Execute a turtle-Logo program from a file or an inline expression.

Examples:
  turtlelogo run square.logo
  turtlelogo run -e 'repeat 4 [ forward 100 right 90 ]'
  turtlelogo run --dump-ast square.logo
  turtlelogo run --dump-tokens square.logo`,
	Args: cobra.MaximumNArgs(1),
	RunE: runProgram,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline code instead of reading from a file")
	runCmd.Flags().BoolVar(&dumpAST, "dump-ast", false, "print the parsed statement tree instead of running it")
	runCmd.Flags().BoolVar(&dumpTokens, "dump-tokens", false, "print the token stream instead of running it")
}

func runProgram(_ *cobra.Command, args []string) error {
	source, filename, err := readSource(args)
	if err != nil {
		return err
	}

	if dumpTokens {
		toks, err := lexer.Tokenize(source)
		if err != nil {
			return reportError(err, source, filename)
		}
		for _, t := range toks {
			fmt.Println(t.String())
		}
		return nil
	}

	program, err := parser.Parse(source)
	if err != nil {
		return reportError(err, source, filename)
	}

	if dumpAST {
		fmt.Print(ast.Dump(program))
		return nil
	}

	e := interp.New()
	e.SetWriter(os.Stdout)
	if err := e.Run(program); err != nil {
		return reportError(err, source, filename)
	}
	return nil
}

func readSource(args []string) (source, filename string, err error) {
	if evalExpr != "" {
		return evalExpr, "<eval>", nil
	}
	if len(args) == 1 {
		content, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", fmt.Errorf("failed to read file %s: %w", args[0], err)
		}
		return string(content), args[0], nil
	}
	return "", "", fmt.Errorf("provide a file path or use -e for inline code")
}

// reportError prints a source-line-and-caret diagnostic for langerr
// errors, falling back to the bare error text for anything else.
func reportError(err error, source, filename string) error {
	if le, ok := err.(*langerr.Error); ok {
		fmt.Fprintf(os.Stderr, "%s: %s", filename, le.Format(source))
		return fmt.Errorf("run failed")
	}
	return err
}
