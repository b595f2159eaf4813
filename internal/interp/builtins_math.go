package interp

import (
	"math"
	"math/rand"

	"github.com/gologo/turtlelogo/internal/environment"
	"github.com/gologo/turtlelogo/internal/langerr"
	"github.com/gologo/turtlelogo/internal/object"
	"github.com/gologo/turtlelogo/internal/token"
)

// registerMathBuiltins installs the fixed-arity numeric reporters (spec.md
// §4.3): sqrt abs int round sin/cos/tan (degrees in), atan (one- or
// two-argument, atan2 in the two-argument form), power, sum, difference,
// product, quotient, remainder, random.
//
// Grounded on the teacher's std/math-style builtin registration (a map of
// name to a Go function checking its own arity and argument kinds), split
// into its own file the way the teacher splits std package concerns.
func registerMathBuiltins(reg map[string]builtinFunc) {
	unary := func(f func(float64) float64) builtinFunc {
		return func(e *Evaluator, env *environment.Environment, args []object.Value) (object.Value, error) {
			n, err := requireArity(args, 1)
			if err != nil {
				return nil, err
			}
			x, err := requireNumber(n[0])
			if err != nil {
				return nil, err
			}
			return &object.Number{Val: f(x)}, nil
		}
	}
	binary := func(f func(a, b float64) (float64, error)) builtinFunc {
		return func(e *Evaluator, env *environment.Environment, args []object.Value) (object.Value, error) {
			n, err := requireArity(args, 2)
			if err != nil {
				return nil, err
			}
			a, err := requireNumber(n[0])
			if err != nil {
				return nil, err
			}
			b, err := requireNumber(n[1])
			if err != nil {
				return nil, err
			}
			v, err := f(a, b)
			if err != nil {
				return nil, err
			}
			return &object.Number{Val: v}, nil
		}
	}

	reg["sqrt"] = unary(math.Sqrt)
	reg["abs"] = unary(math.Abs)
	reg["int"] = unary(math.Trunc)
	reg["round"] = unary(math.Round)
	reg["sin"] = unary(func(x float64) float64 { return math.Sin(x * math.Pi / 180) })
	reg["cos"] = unary(func(x float64) float64 { return math.Cos(x * math.Pi / 180) })
	reg["tan"] = unary(func(x float64) float64 { return math.Tan(x * math.Pi / 180) })

	reg["sum"] = binary(func(a, b float64) (float64, error) { return a + b, nil })
	reg["difference"] = binary(func(a, b float64) (float64, error) { return a - b, nil })
	reg["product"] = binary(func(a, b float64) (float64, error) { return a * b, nil })
	reg["power"] = binary(func(a, b float64) (float64, error) { return math.Pow(a, b), nil })
	reg["quotient"] = binary(func(a, b float64) (float64, error) {
		if b == 0 {
			return 0, langerr.New(langerr.Arithmetic, token.Position{}, "division by zero")
		}
		return a / b, nil
	})
	reg["remainder"] = binary(func(a, b float64) (float64, error) {
		if b == 0 {
			return 0, langerr.New(langerr.Arithmetic, token.Position{}, "division by zero")
		}
		return math.Mod(a, b), nil
	})

	reg["random"] = func(e *Evaluator, env *environment.Environment, args []object.Value) (object.Value, error) {
		n, err := requireArity(args, 1)
		if err != nil {
			return nil, err
		}
		x, err := requireNumber(n[0])
		if err != nil {
			return nil, err
		}
		bound := int64(x)
		if bound <= 0 {
			return nil, langerr.New(langerr.Arithmetic, token.Position{}, "random requires a positive bound")
		}
		return &object.Number{Val: float64(rand.Int63n(bound))}, nil
	}

	reg["atan"] = func(e *Evaluator, env *environment.Environment, args []object.Value) (object.Value, error) {
		switch len(args) {
		case 1:
			x, err := requireNumber(args[0])
			if err != nil {
				return nil, err
			}
			return &object.Number{Val: math.Atan(x) * 180 / math.Pi}, nil
		case 2:
			y, err := requireNumber(args[0])
			if err != nil {
				return nil, err
			}
			x, err := requireNumber(args[1])
			if err != nil {
				return nil, err
			}
			return &object.Number{Val: math.Atan2(y, x) * 180 / math.Pi}, nil
		default:
			return nil, langerr.New(langerr.Arity, token.Position{}, "atan expects 1 or 2 arguments, got %d", len(args))
		}
	}

	reg["thing"] = func(e *Evaluator, env *environment.Environment, args []object.Value) (object.Value, error) {
		n, err := requireArity(args, 1)
		if err != nil {
			return nil, err
		}
		name := n[0].String()
		v, ok := env.Lookup(name)
		if !ok {
			return nil, langerr.New(langerr.Name, token.Position{}, "%s has no value", name)
		}
		return v, nil
	}
}

// requireArity checks args has exactly n elements.
func requireArity(args []object.Value, n int) ([]object.Value, error) {
	if len(args) != n {
		return nil, langerr.New(langerr.Arity, token.Position{}, "expected %d argument(s), got %d", n, len(args))
	}
	return args, nil
}

// requireNumber unwraps v as a Number or reports a TypeError.
func requireNumber(v object.Value) (float64, error) {
	n, ok := v.(*object.Number)
	if !ok {
		return 0, langerr.New(langerr.Type, token.Position{}, "expected a number, got %s", object.TypeName(v))
	}
	return n.Val, nil
}
