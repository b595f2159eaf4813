package interp

import (
	"github.com/gologo/turtlelogo/internal/ast"
	"github.com/gologo/turtlelogo/internal/environment"
	"github.com/gologo/turtlelogo/internal/langerr"
	"github.com/gologo/turtlelogo/internal/object"
	"github.com/gologo/turtlelogo/internal/token"
)

// callProcedure invokes a user-defined procedure by name, used from both
// statement position (Call, whose result is discarded) and expression
// position (FunCall, whose result must not be Void). Arity is always
// checked strictly: turtle-Logo never pads missing arguments with a
// default, regardless of how many the procedure body actually reads
// (spec.md §9(a) overrides the reference interpreter's laxity here).
//
// Grounded on the teacher's evalCallExpression (eval_controls.go): look
// up the callee, validate arity, bind a fresh frame, run the body, and
// unwrap whatever control signal comes back. The crucial divergence from
// the teacher is the new frame's parent: spec.md §4.4 requires procedure
// frames to chain to the *global* frame always, never the caller's frame,
// so closures over a caller's locals are impossible by design.
func (e *Evaluator) callProcedure(name string, argExprs []ast.Expression, callerEnv *environment.Environment, pos token.Position) (object.Value, error) {
	proc, ok := e.procs[name]
	if !ok {
		return nil, langerr.New(langerr.Name, pos, "%s is not defined", name)
	}
	if len(argExprs) != len(proc.params) {
		return nil, langerr.New(langerr.Arity, pos, "%s expects %d argument(s), got %d", name, len(proc.params), len(argExprs))
	}

	args := make([]object.Value, len(argExprs))
	for i, a := range argExprs {
		v, err := e.evalExpr(callerEnv, a)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	frame := environment.New(e.Global)
	for i, p := range proc.params {
		frame.Define(p, args[i])
	}

	sig, err := e.evalBlock(frame, proc.body)
	if err != nil {
		return nil, err
	}
	switch sig.kind {
	case signalOutput:
		return sig.value, nil
	default:
		return &object.Void{}, nil
	}
}
