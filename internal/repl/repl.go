// Package repl implements the interactive Read-Eval-Print Loop for
// turtle-Logo. One Evaluator lives for the session's whole lifetime, so
// procedure definitions and variables from earlier lines are visible to
// later ones, the way a Logo session is normally used.
//
// Grounded on the teacher's repl/repl.go: readline for line editing and
// history, fatih/color for banner/error coloring, a Repl struct carrying
// the banner text and prompt string, and a panic-recovering per-line
// execute step so one bad line never kills the session.
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/gologo/turtlelogo/internal/interp"
	"github.com/gologo/turtlelogo/internal/langerr"
	"github.com/gologo/turtlelogo/internal/parser"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

const banner = `
  _____         _   _   _        _
 |_   _|  _ _ _| |_| |_| |___   | |   ___  __ _ ___
   | || || | '_|  _| / -_)_-<   | |__/ _ \/ _| _ \_
   |_| \_,_|_|  \__|_\___/__/   |____\___/\__\___/

`

// Repl is a read-eval-print session: a banner, a prompt, and the running
// Evaluator that survives across lines.
type Repl struct {
	Prompt string
	eval   *interp.Evaluator
}

// New creates a Repl with the given prompt, ready to Start.
func New(prompt string) *Repl {
	return &Repl{Prompt: prompt, eval: interp.New()}
}

// printBanner writes the startup banner and basic usage instructions.
func (r *Repl) printBanner(w io.Writer) {
	blueColor.Fprintln(w, strings.Repeat("-", 60))
	greenColor.Fprint(w, banner)
	blueColor.Fprintln(w, strings.Repeat("-", 60))
	cyanColor.Fprintln(w, "turtle-Logo interactive session")
	cyanColor.Fprintln(w, "Type Logo statements and press enter")
	cyanColor.Fprintln(w, "Type '.exit' to quit")
	blueColor.Fprintln(w, strings.Repeat("-", 60))
}

// Start runs the loop until the user exits or EOF is reached (Ctrl+D).
// writer receives both the banner/errors and the evaluator's print/type/
// show output, matching the teacher's single-writer REPL convention.
func (r *Repl) Start(writer io.Writer) {
	r.eval.SetWriter(writer)
	r.printBanner(writer)

	rl, err := readline.NewEx(&readline.Config{
		Prompt: r.Prompt,
		Stdout: writer,
	})
	if err != nil {
		redColor.Fprintf(writer, "could not start line editor: %v\n", err)
		return
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Bye.\n"))
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Bye.\n"))
			return
		}

		rl.SaveHistory(line)
		r.evalLine(writer, line)
	}
}

// evalLine parses and evaluates a single line, recovering from any panic
// so a malformed program never takes the session down with it.
func (r *Repl) evalLine(writer io.Writer, line string) {
	defer func() {
		if rec := recover(); rec != nil {
			redColor.Fprintf(writer, "[runtime panic] %v\n", rec)
		}
	}()

	stmts, err := parser.Parse(line)
	if err != nil {
		printErr(writer, err, line)
		return
	}
	if err := r.eval.Run(stmts); err != nil {
		printErr(writer, err, line)
	}
}

func printErr(writer io.Writer, err error, source string) {
	if le, ok := err.(*langerr.Error); ok {
		redColor.Fprint(writer, le.Format(source))
		return
	}
	redColor.Fprintf(writer, "%v\n", err)
}
