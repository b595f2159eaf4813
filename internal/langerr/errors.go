// Package langerr defines the typed error hierarchy for the turtle-Logo
// interpreter (spec §7) and renders errors with a source-line-and-caret
// view, in the style of compiler diagnostics.
package langerr

import (
	"fmt"
	"strings"

	"github.com/gologo/turtlelogo/internal/token"
)

// Kind classifies an error per the taxonomy in spec §7.
type Kind string

const (
	Lexical    Kind = "LexicalError"
	Parse      Kind = "ParseError"
	Type       Kind = "TypeError"
	Arity      Kind = "ArityError"
	Name       Kind = "NameError"
	Arithmetic Kind = "ArithmeticError"
)

// Error is a single, positioned interpreter error. It implements the
// standard error interface so it can flow through normal Go error returns.
type Error struct {
	Kind    Kind
	Message string
	Pos     token.Position
}

// New constructs an Error of the given kind at the given position.
func New(kind Kind, pos token.Position, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Pos: pos, Message: fmt.Sprintf(format, args...)}
}

// Error implements the error interface with a short, single-line form.
func (e *Error) Error() string {
	return fmt.Sprintf("%s at %s: %s", e.Kind, e.Pos, e.Message)
}

// Format renders the error with a source-line-and-caret view, the way a
// compiler diagnostic would. source is the full program text; it may be
// empty, in which case only the header line is produced.
func (e *Error) Format(source string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s at line %d, column %d: %s\n", e.Kind, e.Pos.Line, e.Pos.Column, e.Message)

	lines := strings.Split(source, "\n")
	if e.Pos.Line >= 1 && e.Pos.Line <= len(lines) {
		line := lines[e.Pos.Line-1]
		lineNumPrefix := fmt.Sprintf("%4d | ", e.Pos.Line)
		sb.WriteString(lineNumPrefix)
		sb.WriteString(line)
		sb.WriteString("\n")
		col := e.Pos.Column
		if col < 1 {
			col = 1
		}
		sb.WriteString(strings.Repeat(" ", len(lineNumPrefix)+col-1))
		sb.WriteString("^\n")
	}
	return sb.String()
}
