package interp

import "github.com/gologo/turtlelogo/internal/object"

// signalKind distinguishes the control-flow effects a statement can have
// beyond simply completing (spec.md §4.4). Ordinary statements produce
// signalNone; `stop` and `output` produce the other two kinds and must
// propagate up through enclosing blocks unchanged until they reach the
// boundary of the procedure call that is executing them.
//
// Grounded on the teacher's std.ReturnValue (eval_controls.go,
// eval_statements.go): a distinguished wrapper that evalStatements checks
// for after every statement and passes through unexamined. turtle-Logo
// needs two variants instead of one, so a wrapper struct with a kind tag
// reads better than two parallel Go types.
type signalKind int

const (
	signalNone signalKind = iota
	signalStop
	signalOutput
)

// signal is the value threaded back out of statement evaluation in place
// of a plain error. A signalNone carries no payload; signalStop carries
// none either; signalOutput carries the value passed to `output`.
type signal struct {
	kind  signalKind
	value object.Value
}

var noSignal = signal{kind: signalNone}

func stopSignal() signal                      { return signal{kind: signalStop} }
func outputSignal(v object.Value) signal      { return signal{kind: signalOutput, value: v} }
func (s signal) isNone() bool                  { return s.kind == signalNone }
func (s signal) isNonLocalReturn() bool        { return s.kind == signalStop || s.kind == signalOutput }
