// Package interp is the tree-walking evaluator: it turns a parsed program
// (internal/ast) into turtle movement, environment bindings, and output
// text, per spec.md §4.3/§4.4.
//
// Grounded on the teacher's eval package (evaluator.go for the struct
// shape and Writer-based output, eval_statements.go/eval_controls.go for
// the statement-dispatch and signal-propagation idiom), adapted from the
// teacher's error-as-value GoMixObject convention to ordinary Go (value,
// error) returns, matching the rest of this module (internal/lexer,
// internal/langerr already commit to that convention).
package interp

import (
	"fmt"
	"io"
	"os"

	"github.com/gologo/turtlelogo/internal/ast"
	"github.com/gologo/turtlelogo/internal/environment"
	"github.com/gologo/turtlelogo/internal/langerr"
	"github.com/gologo/turtlelogo/internal/object"
	"github.com/gologo/turtlelogo/internal/token"
	"github.com/gologo/turtlelogo/internal/turtle"
)

// procedure is a user-defined procedure registered by a `to ... end`
// definition: its formal parameter names and body, closed over nothing
// but the global frame (spec.md §4.4: procedure frames always chain to
// the global environment, never to the caller's frame).
type procedure struct {
	name   string
	params []string
	body   []ast.Statement
}

// builtinFunc is a host-implemented reporter invoked from expression
// position. It receives the evaluator (for turtle state and output), the
// calling frame (only `thing` needs it, to dereference a variable named
// by its argument), and already-evaluated arguments.
type builtinFunc func(e *Evaluator, env *environment.Environment, args []object.Value) (object.Value, error)

// Evaluator is the execution engine for a single program run: one global
// environment, one turtle, one output sink, and the procedure/builtin
// tables consulted when a call is evaluated.
type Evaluator struct {
	Global   *environment.Environment
	Turtle   *turtle.State
	Writer   io.Writer
	Output   []string // every `print`/`type`/`show` line, in emission order (spec.md §6)
	procs    map[string]*procedure
	builtins map[string]builtinFunc
}

// New creates an evaluator with a fresh global frame, a turtle at the
// origin, and the builtin table populated. Output defaults to os.Stdout;
// use SetWriter to redirect it (tests redirect to a bytes.Buffer).
func New() *Evaluator {
	e := &Evaluator{
		Global: environment.New(nil),
		Turtle: turtle.New(),
		Writer: os.Stdout,
	}
	e.builtins = make(map[string]builtinFunc)
	e.procs = make(map[string]*procedure)
	registerMathBuiltins(e.builtins)
	registerListBuiltins(e.builtins)
	registerTurtleBuiltins(e.builtins)
	return e
}

// SetWriter redirects where `print`/`type`/`show` write their lines.
func (e *Evaluator) SetWriter(w io.Writer) { e.Writer = w }

// emit writes s followed by a newline to the writer and records it in
// Output.
func (e *Evaluator) emit(s string) {
	e.Output = append(e.Output, s)
	fmt.Fprintln(e.Writer, s)
}

// Run evaluates an entire program (spec.md §4.4). A `stop` or `output`
// reaching the top level is a runtime error, since there is no enclosing
// procedure call for it to return from (spec.md §9(b)).
func (e *Evaluator) Run(program []ast.Statement) error {
	sig, err := e.evalBlock(e.Global, program)
	if err != nil {
		return err
	}
	if sig.isNonLocalReturn() {
		kw := "stop"
		if sig.kind == signalOutput {
			kw = "output"
		}
		return langerr.New(langerr.Arithmetic, token.Position{}, "%s used outside of any procedure", kw)
	}
	return nil
}

// evalBlock evaluates a sequence of statements in the given frame,
// stopping immediately and propagating either an error or a non-local
// return signal the moment one occurs (spec.md §4.3, §4.4). Grounded on
// the teacher's evalStatements loop-and-check-after-each-statement shape.
func (e *Evaluator) evalBlock(env *environment.Environment, stmts []ast.Statement) (signal, error) {
	for _, stmt := range stmts {
		sig, err := e.evalStatement(env, stmt)
		if err != nil {
			return noSignal, err
		}
		if !sig.isNone() {
			return sig, nil
		}
	}
	return noSignal, nil
}
