package interp

import (
	"fmt"

	"github.com/gologo/turtlelogo/internal/ast"
	"github.com/gologo/turtlelogo/internal/environment"
	"github.com/gologo/turtlelogo/internal/langerr"
	"github.com/gologo/turtlelogo/internal/object"
)

// evalStatement dispatches on the concrete statement type, mirroring the
// teacher's per-node eval* methods (eval_statements.go, eval_controls.go)
// but collapsed into one switch since turtle-Logo's statement set is
// closed and small. Returns a non-none signal only for Stop/Output and
// for any block that itself produced one (Repeat/While/For/If/IfElse
// propagate their body's signal upward unchanged).
func (e *Evaluator) evalStatement(env *environment.Environment, stmt ast.Statement) (signal, error) {
	switch n := stmt.(type) {
	case *ast.Move:
		d, err := e.evalNumber(env, n.Arg)
		if err != nil {
			return noSignal, err
		}
		switch n.Kind {
		case ast.Forward:
			e.Turtle.Forward(d)
		case ast.Back:
			e.Turtle.Back(d)
		case ast.Right:
			e.Turtle.Right(d)
		case ast.Left:
			e.Turtle.Left(d)
		}
		return noSignal, nil

	case *ast.Simple:
		return noSignal, e.evalSimple(n)

	case *ast.PenColor:
		v, err := e.evalExpr(env, n.Arg)
		if err != nil {
			return noSignal, err
		}
		e.Turtle.SetPenColor(v.String())
		return noSignal, nil

	case *ast.PenSize:
		v, err := e.evalNumber(env, n.Arg)
		if err != nil {
			return noSignal, err
		}
		e.Turtle.SetPenSize(v)
		return noSignal, nil

	case *ast.SetXY:
		x, err := e.evalNumber(env, n.X)
		if err != nil {
			return noSignal, err
		}
		y, err := e.evalNumber(env, n.Y)
		if err != nil {
			return noSignal, err
		}
		e.Turtle.SetXY(x, y)
		return noSignal, nil

	case *ast.SetX:
		x, err := e.evalNumber(env, n.Arg)
		if err != nil {
			return noSignal, err
		}
		e.Turtle.SetX(x)
		return noSignal, nil

	case *ast.SetY:
		y, err := e.evalNumber(env, n.Arg)
		if err != nil {
			return noSignal, err
		}
		e.Turtle.SetY(y)
		return noSignal, nil

	case *ast.SetHeading:
		h, err := e.evalNumber(env, n.Arg)
		if err != nil {
			return noSignal, err
		}
		e.Turtle.SetHeading(h)
		return noSignal, nil

	case *ast.Circle:
		r, err := e.evalNumber(env, n.R)
		if err != nil {
			return noSignal, err
		}
		e.Turtle.Circle(r)
		return noSignal, nil

	case *ast.Arc:
		a, err := e.evalNumber(env, n.A)
		if err != nil {
			return noSignal, err
		}
		r, err := e.evalNumber(env, n.R)
		if err != nil {
			return noSignal, err
		}
		e.Turtle.Arc(a, r)
		return noSignal, nil

	case *ast.Repeat:
		count, err := e.evalNumber(env, n.Count)
		if err != nil {
			return noSignal, err
		}
		for i := 0; i < int(count); i++ {
			sig, err := e.evalBlock(env, n.Body)
			if err != nil || !sig.isNone() {
				return sig, err
			}
		}
		return noSignal, nil

	case *ast.While:
		for {
			cond, err := e.evalExpr(env, n.Cond)
			if err != nil {
				return noSignal, err
			}
			if !object.Truthy(cond) {
				break
			}
			sig, err := e.evalBlock(env, n.Body)
			if err != nil || !sig.isNone() {
				return sig, err
			}
		}
		return noSignal, nil

	case *ast.For:
		return e.evalFor(env, n)

	case *ast.If:
		cond, err := e.evalExpr(env, n.Cond)
		if err != nil {
			return noSignal, err
		}
		if object.Truthy(cond) {
			return e.evalBlock(env, n.Then)
		}
		return noSignal, nil

	case *ast.IfElse:
		cond, err := e.evalExpr(env, n.Cond)
		if err != nil {
			return noSignal, err
		}
		if object.Truthy(cond) {
			return e.evalBlock(env, n.Then)
		}
		return e.evalBlock(env, n.Else)

	case *ast.Define:
		e.procs[n.Name] = &procedure{name: n.Name, params: n.Params, body: n.Body}
		return noSignal, nil

	case *ast.Stop:
		return stopSignal(), nil

	case *ast.Output:
		v, err := e.evalExpr(env, n.Value)
		if err != nil {
			return noSignal, err
		}
		return outputSignal(v), nil

	case *ast.Make:
		v, err := e.evalExpr(env, n.Value)
		if err != nil {
			return noSignal, err
		}
		env.Make(n.Name, v)
		return noSignal, nil

	case *ast.Local:
		env.Local(n.Name)
		return noSignal, nil

	case *ast.Print:
		v, err := e.evalExpr(env, n.Value)
		if err != nil {
			return noSignal, err
		}
		e.emit(v.String())
		return noSignal, nil

	case *ast.Type:
		v, err := e.evalExpr(env, n.Value)
		if err != nil {
			return noSignal, err
		}
		e.Output = append(e.Output, v.String())
		fmt.Fprint(e.Writer, v.String())
		return noSignal, nil

	case *ast.Show:
		v, err := e.evalExpr(env, n.Value)
		if err != nil {
			return noSignal, err
		}
		e.emit(v.Inspect())
		return noSignal, nil

	case *ast.Call:
		v, err := e.callProcedure(n.Name, n.Args, env, n.Pos())
		if err != nil {
			return noSignal, err
		}
		_ = v // statement-position calls discard any output value
		return noSignal, nil
	}
	return noSignal, langerr.New(langerr.Type, stmt.Pos(), "unrecognized statement")
}

// evalSimple dispatches the zero-argument turtle commands.
func (e *Evaluator) evalSimple(n *ast.Simple) error {
	switch n.Name {
	case "penup":
		e.Turtle.PenUp()
	case "pendown":
		e.Turtle.PenDown()
	case "home":
		e.Turtle.Home()
	case "clearscreen":
		e.Turtle.ClearScreen()
	case "hideturtle":
		e.Turtle.Hide()
	case "showturtle":
		e.Turtle.Show()
	default:
		return langerr.New(langerr.Name, n.Pos(), "%s is not a command", n.Name)
	}
	return nil
}

// evalFor implements the `for "v start end (step)? [...]` loop: a fresh
// binding of Var is pushed into a child frame for each iteration's body,
// per the same "for loop gets its own frame" rule procedures use (spec.md
// §4.4). Step defaults to 1 when unspecified; if End − Start and Step
// disagree in sign, the loop runs zero iterations (spec.md §4.4) rather
// than auto-reversing direction.
func (e *Evaluator) evalFor(env *environment.Environment, n *ast.For) (signal, error) {
	start, err := e.evalNumber(env, n.Start)
	if err != nil {
		return noSignal, err
	}
	end, err := e.evalNumber(env, n.End)
	if err != nil {
		return noSignal, err
	}
	step := 1.0
	if n.Step != nil {
		step, err = e.evalNumber(env, n.Step)
		if err != nil {
			return noSignal, err
		}
	}
	if step == 0 {
		return noSignal, langerr.New(langerr.Arithmetic, n.Pos(), "for loop step may not be zero")
	}

	for i := start; (step > 0 && i <= end) || (step < 0 && i >= end); i += step {
		child := environment.New(env)
		child.Define(n.Var, &object.Number{Val: i})
		sig, err := e.evalBlock(child, n.Body)
		if err != nil || !sig.isNone() {
			return sig, err
		}
	}
	return noSignal, nil
}
