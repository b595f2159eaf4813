package interp

import (
	"math"

	"github.com/gologo/turtlelogo/internal/ast"
	"github.com/gologo/turtlelogo/internal/environment"
	"github.com/gologo/turtlelogo/internal/langerr"
	"github.com/gologo/turtlelogo/internal/object"
)

// registerTurtleBuiltins installs builtins that report on the turtle's own
// state rather than transforming already-evaluated scalar arguments (spec.md
// §4.3): `towards x y`, the heading from the turtle's current position to
// (x, y). Kept apart from registerMathBuiltins's position-blind `binary`
// helper since it needs e.Turtle.Position(), the same pattern evalReporter
// below uses for xcor/ycor/heading/pendown?.
func registerTurtleBuiltins(reg map[string]builtinFunc) {
	reg["towards"] = func(e *Evaluator, env *environment.Environment, args []object.Value) (object.Value, error) {
		n, err := requireArity(args, 2)
		if err != nil {
			return nil, err
		}
		x, err := requireNumber(n[0])
		if err != nil {
			return nil, err
		}
		y, err := requireNumber(n[1])
		if err != nil {
			return nil, err
		}
		tx, ty := e.Turtle.Position()
		h := math.Atan2(x-tx, y-ty) * 180 / math.Pi
		if h < 0 {
			h += 360
		}
		return &object.Number{Val: h}, nil
	}
}

// evalReporter answers the zero-argument turtle-state queries (spec.md
// §4.3): xcor, ycor, heading, pendown?. These are parsed as their own
// ast.Reporter node rather than routed through the builtins table, since
// they take no arguments and read turtle state directly rather than
// transforming already-evaluated values — the same split the teacher
// draws between its builtin-function table and state-query methods on
// Evaluator (eval_access.go).
func (e *Evaluator) evalReporter(n *ast.Reporter) (object.Value, error) {
	switch n.Name {
	case "xcor":
		x, _ := e.Turtle.Position()
		return &object.Number{Val: x}, nil
	case "ycor":
		_, y := e.Turtle.Position()
		return &object.Number{Val: y}, nil
	case "heading":
		return &object.Number{Val: e.Turtle.HeadingDeg()}, nil
	case "pendown?":
		return object.Bool(e.Turtle.IsPenDown()), nil
	}
	return nil, langerr.New(langerr.Name, n.Pos(), "%s is not a reporter", n.Name)
}
