package interp

import (
	"math"

	"github.com/gologo/turtlelogo/internal/ast"
	"github.com/gologo/turtlelogo/internal/environment"
	"github.com/gologo/turtlelogo/internal/langerr"
	"github.com/gologo/turtlelogo/internal/object"
	"github.com/gologo/turtlelogo/internal/token"
)

// evalExpr evaluates an expression node to a Value in the given frame.
// Grounded on the teacher's evalExpressions type-switch shape
// (eval_expressions.go), translated to (value, error) returns.
func (e *Evaluator) evalExpr(env *environment.Environment, expr ast.Expression) (object.Value, error) {
	switch n := expr.(type) {
	case *ast.NumberLit:
		return &object.Number{Val: n.Value}, nil

	case *ast.TextLit:
		return &object.Text{Val: n.Value}, nil

	case *ast.ListLit:
		items := make([]object.Value, len(n.Items))
		for i, it := range n.Items {
			v, err := e.evalExpr(env, it)
			if err != nil {
				return nil, err
			}
			items[i] = v
		}
		return &object.List{Items: items}, nil

	case *ast.Var:
		v, ok := env.Lookup(n.Name)
		if !ok {
			return nil, langerr.New(langerr.Name, n.Pos(), "%s has no value", n.Name)
		}
		return v, nil

	case *ast.Neg:
		x, err := e.evalNumber(env, n.X)
		if err != nil {
			return nil, err
		}
		return &object.Number{Val: -x}, nil

	case *ast.Not:
		x, err := e.evalExpr(env, n.X)
		if err != nil {
			return nil, err
		}
		return object.Bool(!object.Truthy(x)), nil

	case *ast.Binary:
		return e.evalBinary(env, n)

	case *ast.Reporter:
		return e.evalReporter(n)

	case *ast.BuiltinCall:
		fn, ok := e.builtins[n.Name]
		if !ok {
			return nil, langerr.New(langerr.Name, n.Pos(), "%s is not a builtin", n.Name)
		}
		args, err := e.evalArgs(env, n.Args)
		if err != nil {
			return nil, err
		}
		v, err := fn(e, env, args)
		return v, positioned(err, n.Pos())

	case *ast.FunCall:
		v, err := e.callProcedure(n.Name, n.Args, env, n.Pos())
		if err != nil {
			return nil, err
		}
		if object.IsVoid(v) {
			return nil, langerr.New(langerr.Type, n.Pos(), "%s produced no output", n.Name)
		}
		return v, nil
	}
	return nil, langerr.New(langerr.Type, expr.Pos(), "unrecognized expression")
}

// positioned fills in a zero-value position on a builtin's reported
// error with the call site's real position; builtins themselves have no
// token.Position to report since they only see evaluated arguments.
func positioned(err error, pos token.Position) error {
	le, ok := err.(*langerr.Error)
	if ok && le.Pos == (token.Position{}) {
		le.Pos = pos
	}
	return err
}

// evalArgs evaluates a list of argument expressions left to right,
// stopping at the first error.
func (e *Evaluator) evalArgs(env *environment.Environment, args []ast.Expression) ([]object.Value, error) {
	out := make([]object.Value, len(args))
	for i, a := range args {
		v, err := e.evalExpr(env, a)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// evalNumber evaluates expr and requires it be a Number, per spec.md
// §4.3's arithmetic coercion rules (arithmetic and turtle-movement
// arguments never implicitly coerce text to numbers).
func (e *Evaluator) evalNumber(env *environment.Environment, expr ast.Expression) (float64, error) {
	v, err := e.evalExpr(env, expr)
	if err != nil {
		return 0, err
	}
	n, ok := v.(*object.Number)
	if !ok {
		return 0, langerr.New(langerr.Type, expr.Pos(), "expected a number, got %s", object.TypeName(v))
	}
	return n.Val, nil
}

// evalBinary implements spec.md §4.3's operator table: arithmetic
// (+ - * / %) requires both operands to be Number; comparisons (< > <= >=)
// require both Number; = and <> are general deep equality/inequality over
// any Value kind; and/or operate on truthiness and short-circuit.
func (e *Evaluator) evalBinary(env *environment.Environment, n *ast.Binary) (object.Value, error) {
	switch n.Op {
	case "and":
		l, err := e.evalExpr(env, n.Left)
		if err != nil {
			return nil, err
		}
		if !object.Truthy(l) {
			return object.False, nil
		}
		r, err := e.evalExpr(env, n.Right)
		if err != nil {
			return nil, err
		}
		return object.Bool(object.Truthy(r)), nil

	case "or":
		l, err := e.evalExpr(env, n.Left)
		if err != nil {
			return nil, err
		}
		if object.Truthy(l) {
			return object.True, nil
		}
		r, err := e.evalExpr(env, n.Right)
		if err != nil {
			return nil, err
		}
		return object.Bool(object.Truthy(r)), nil

	case "=", "<>":
		l, err := e.evalExpr(env, n.Left)
		if err != nil {
			return nil, err
		}
		r, err := e.evalExpr(env, n.Right)
		if err != nil {
			return nil, err
		}
		eq := object.Equal(l, r)
		if n.Op == "<>" {
			eq = !eq
		}
		return object.Bool(eq), nil
	}

	l, err := e.evalNumber(env, n.Left)
	if err != nil {
		return nil, err
	}
	r, err := e.evalNumber(env, n.Right)
	if err != nil {
		return nil, err
	}
	switch n.Op {
	case "+":
		return &object.Number{Val: l + r}, nil
	case "-":
		return &object.Number{Val: l - r}, nil
	case "*":
		return &object.Number{Val: l * r}, nil
	case "/":
		if r == 0 {
			return nil, langerr.New(langerr.Arithmetic, n.Pos(), "division by zero")
		}
		return &object.Number{Val: l / r}, nil
	case "%":
		if r == 0 {
			return nil, langerr.New(langerr.Arithmetic, n.Pos(), "division by zero")
		}
		return &object.Number{Val: math.Mod(l, r)}, nil
	case "<":
		return object.Bool(l < r), nil
	case ">":
		return object.Bool(l > r), nil
	case "<=":
		return object.Bool(l <= r), nil
	case ">=":
		return object.Bool(l >= r), nil
	}
	return nil, langerr.New(langerr.Type, n.Pos(), "unrecognized operator %q", n.Op)
}
