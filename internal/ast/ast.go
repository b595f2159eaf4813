// Package ast defines the abstract syntax tree produced by the parser and
// walked by the evaluator (spec.md §3). Every node is a small tagged
// struct; there is no shared base implementation beyond carrying a
// source Position for error reporting.
package ast

import "github.com/gologo/turtlelogo/internal/token"

// Node is satisfied by every AST node.
type Node interface {
	Pos() token.Position
}

// Statement is satisfied by every statement-level AST node.
type Statement interface {
	Node
	stmtNode()
}

// Expression is satisfied by every expression-level AST node.
type Expression interface {
	Node
	exprNode()
}

// Base embeds a source position into every concrete node so callers
// don't repeat the same field and accessor on every type. Exported (not
// lowercase) so the parser, in a different package, can name it in a
// struct literal.
type Base struct {
	At token.Position
}

func (b Base) Pos() token.Position { return b.At }

// ---------------------------------------------------------------------
// Expressions
// ---------------------------------------------------------------------

// NumberLit is a numeric literal.
type NumberLit struct {
	Base
	Value float64
}

// TextLit is a literal text atom (a quoted word or delimited string).
type TextLit struct {
	Base
	Value string
}

// ListLit is a `[...]` list literal in expression position: numbers as
// numbers, parameter references evaluated at construction time, bare
// words as Text atoms (not variables), nested lists recursively.
type ListLit struct {
	Base
	Items []Expression
}

// Var is a parameter/variable reference, `:name`.
type Var struct {
	Base
	Name string
}

// Neg is unary prefix negation, `- expr`.
type Neg struct {
	Base
	X Expression
}

// Not is unary prefix logical negation, `not expr`.
type Not struct {
	Base
	X Expression
}

// Binary is a binary operator application: arithmetic (+ - * / %),
// comparison (= < > <= >= <>), or logical (and/or).
type Binary struct {
	Base
	Op    string
	Left  Expression
	Right Expression
}

// Reporter is a zero-argument turtle-state query: xcor, ycor, heading,
// pendown?.
type Reporter struct {
	Base
	Name string
}

// BuiltinCall is an application of a fixed-arity or variadic built-in
// function in expression position (sqrt, sum, item, list, sentence, ...).
type BuiltinCall struct {
	Base
	Name string
	Args []Expression
}

// FunCall is a user-defined procedure invoked in expression position and
// expected to produce a value via `output`.
type FunCall struct {
	Base
	Name string
	Args []Expression
}

func (*NumberLit) exprNode()   {}
func (*TextLit) exprNode()     {}
func (*ListLit) exprNode()     {}
func (*Var) exprNode()         {}
func (*Neg) exprNode()         {}
func (*Not) exprNode()         {}
func (*Binary) exprNode()      {}
func (*Reporter) exprNode()    {}
func (*BuiltinCall) exprNode() {}
func (*FunCall) exprNode()     {}

// ---------------------------------------------------------------------
// Statements
// ---------------------------------------------------------------------

// MoveKind distinguishes the four movement statements, which all share
// the same "one distance expression" shape.
type MoveKind int

const (
	Forward MoveKind = iota
	Back
	Right
	Left
)

// Move is forward/back/right/left, each taking one numeric argument.
type Move struct {
	Base
	Kind MoveKind
	Arg  Expression
}

// Simple is any zero-argument turtle command: penup, pendown, home,
// clearscreen, hideturtle, showturtle.
type Simple struct {
	Base
	Name string
}

// PenColor sets the pen color (pencolor/pc).
type PenColor struct {
	Base
	Arg Expression
}

// PenSize sets the pen size (pensize/ps).
type PenSize struct {
	Base
	Arg Expression
}

// SetXY moves to an absolute position.
type SetXY struct {
	Base
	X, Y Expression
}

// SetX moves to an absolute X, keeping Y.
type SetX struct {
	Base
	Arg Expression
}

// SetY moves to an absolute Y, keeping X.
type SetY struct {
	Base
	Arg Expression
}

// SetHeading sets the heading directly (setheading/seth).
type SetHeading struct {
	Base
	Arg Expression
}

// Circle draws a 36-chord approximation of a circle of the given radius.
type Circle struct {
	Base
	R Expression
}

// Arc draws a chorded approximation of an arc of A degrees and radius R.
type Arc struct {
	Base
	A, R Expression
}

// Repeat evaluates Body Count times.
type Repeat struct {
	Base
	Count Expression
	Body  []Statement
}

// While re-evaluates Cond before each iteration of Body. Cond is the
// single expression carried by a `[...]` condition block.
type While struct {
	Base
	Cond Expression
	Body []Statement
}

// For binds Var to each value from Start to End (inclusive) stepping by
// Step (nil means the default step of 1).
type For struct {
	Base
	Var   string
	Start Expression
	End   Expression
	Step  Expression // nil if unspecified
	Body  []Statement
}

// If evaluates Then when Cond is true; no new frame is introduced.
type If struct {
	Base
	Cond Expression
	Then []Statement
}

// IfElse evaluates Then when Cond is true, Else otherwise.
type IfElse struct {
	Base
	Cond Expression
	Then []Statement
	Else []Statement
}

// Define declares a user procedure: `to NAME :p1 :p2 ... STATEMENTS end`.
type Define struct {
	Base
	Name   string
	Params []string
	Body   []Statement
}

// Stop terminates the current procedure invocation with no value.
type Stop struct {
	Base
}

// Output terminates the current procedure invocation with Value.
type Output struct {
	Base
	Value Expression
}

// Make assigns Value to the variable named Name, per spec.md §3's
// walk-up-or-create-in-current-frame rule.
type Make struct {
	Base
	Name  string
	Value Expression
}

// Local declares Name as an unset binding in the current frame.
type Local struct {
	Base
	Name string
}

// Print prints Value's display form followed by a newline.
type Print struct {
	Base
	Value Expression
}

// Type prints Value's display form with no trailing newline.
type Type struct {
	Base
	Value Expression
}

// Show prints Value's machine-readable form followed by a newline.
type Show struct {
	Base
	Value Expression
}

// Call is a user-procedure invocation in statement position, collected
// greedily per spec.md §4.2.
type Call struct {
	Base
	Name string
	Args []Expression
}

func (*Move) stmtNode()       {}
func (*Simple) stmtNode()     {}
func (*PenColor) stmtNode()   {}
func (*PenSize) stmtNode()    {}
func (*SetXY) stmtNode()      {}
func (*SetX) stmtNode()       {}
func (*SetY) stmtNode()       {}
func (*SetHeading) stmtNode() {}
func (*Circle) stmtNode()     {}
func (*Arc) stmtNode()        {}
func (*Repeat) stmtNode()     {}
func (*While) stmtNode()      {}
func (*For) stmtNode()        {}
func (*If) stmtNode()         {}
func (*IfElse) stmtNode()     {}
func (*Define) stmtNode()     {}
func (*Stop) stmtNode()       {}
func (*Output) stmtNode()     {}
func (*Make) stmtNode()       {}
func (*Local) stmtNode()      {}
func (*Print) stmtNode()      {}
func (*Type) stmtNode()       {}
func (*Show) stmtNode()       {}
func (*Call) stmtNode()       {}
