package ast

import (
	"fmt"
	"strings"
)

// Dump renders a program (a list of top-level statements) as an indented
// tree, for the --dump-ast CLI flag. Grounded on the teacher's
// print_visitor.go Visitor-pattern dumper, but simplified to a direct
// recursive function: turtle-Logo's AST is a small closed set of tags, so
// a full NodeVisitor interface (one method per node type, implemented by
// every visitor) would be pure boilerplate here.
func Dump(program []Statement) string {
	var sb strings.Builder
	for _, s := range program {
		dumpStmt(&sb, s, 0)
	}
	return sb.String()
}

func indent(sb *strings.Builder, depth int) {
	sb.WriteString(strings.Repeat("  ", depth))
}

func dumpStmt(sb *strings.Builder, s Statement, depth int) {
	indent(sb, depth)
	switch n := s.(type) {
	case *Move:
		fmt.Fprintf(sb, "Move(%d)\n", n.Kind)
		dumpExpr(sb, n.Arg, depth+1)
	case *Simple:
		fmt.Fprintf(sb, "%s\n", n.Name)
	case *PenColor:
		sb.WriteString("PenColor\n")
		dumpExpr(sb, n.Arg, depth+1)
	case *PenSize:
		sb.WriteString("PenSize\n")
		dumpExpr(sb, n.Arg, depth+1)
	case *SetXY:
		sb.WriteString("SetXY\n")
		dumpExpr(sb, n.X, depth+1)
		dumpExpr(sb, n.Y, depth+1)
	case *SetX:
		sb.WriteString("SetX\n")
		dumpExpr(sb, n.Arg, depth+1)
	case *SetY:
		sb.WriteString("SetY\n")
		dumpExpr(sb, n.Arg, depth+1)
	case *SetHeading:
		sb.WriteString("SetHeading\n")
		dumpExpr(sb, n.Arg, depth+1)
	case *Circle:
		sb.WriteString("Circle\n")
		dumpExpr(sb, n.R, depth+1)
	case *Arc:
		sb.WriteString("Arc\n")
		dumpExpr(sb, n.A, depth+1)
		dumpExpr(sb, n.R, depth+1)
	case *Repeat:
		sb.WriteString("Repeat\n")
		dumpExpr(sb, n.Count, depth+1)
		for _, st := range n.Body {
			dumpStmt(sb, st, depth+1)
		}
	case *While:
		sb.WriteString("While\n")
		dumpExpr(sb, n.Cond, depth+1)
		for _, st := range n.Body {
			dumpStmt(sb, st, depth+1)
		}
	case *For:
		fmt.Fprintf(sb, "For %s\n", n.Var)
		for _, st := range n.Body {
			dumpStmt(sb, st, depth+1)
		}
	case *If:
		sb.WriteString("If\n")
		dumpExpr(sb, n.Cond, depth+1)
		for _, st := range n.Then {
			dumpStmt(sb, st, depth+1)
		}
	case *IfElse:
		sb.WriteString("IfElse\n")
		dumpExpr(sb, n.Cond, depth+1)
		for _, st := range n.Then {
			dumpStmt(sb, st, depth+1)
		}
		indent(sb, depth)
		sb.WriteString("Else\n")
		for _, st := range n.Else {
			dumpStmt(sb, st, depth+1)
		}
	case *Define:
		fmt.Fprintf(sb, "Define %s %v\n", n.Name, n.Params)
		for _, st := range n.Body {
			dumpStmt(sb, st, depth+1)
		}
	case *Stop:
		sb.WriteString("Stop\n")
	case *Output:
		sb.WriteString("Output\n")
		dumpExpr(sb, n.Value, depth+1)
	case *Make:
		fmt.Fprintf(sb, "Make %s\n", n.Name)
		dumpExpr(sb, n.Value, depth+1)
	case *Local:
		fmt.Fprintf(sb, "Local %s\n", n.Name)
	case *Print:
		sb.WriteString("Print\n")
		dumpExpr(sb, n.Value, depth+1)
	case *Type:
		sb.WriteString("Type\n")
		dumpExpr(sb, n.Value, depth+1)
	case *Show:
		sb.WriteString("Show\n")
		dumpExpr(sb, n.Value, depth+1)
	case *Call:
		fmt.Fprintf(sb, "Call %s\n", n.Name)
		for _, a := range n.Args {
			dumpExpr(sb, a, depth+1)
		}
	default:
		fmt.Fprintf(sb, "<unknown statement %T>\n", n)
	}
}

func dumpExpr(sb *strings.Builder, e Expression, depth int) {
	indent(sb, depth)
	switch n := e.(type) {
	case *NumberLit:
		fmt.Fprintf(sb, "Number(%v)\n", n.Value)
	case *TextLit:
		fmt.Fprintf(sb, "Text(%q)\n", n.Value)
	case *ListLit:
		sb.WriteString("List\n")
		for _, item := range n.Items {
			dumpExpr(sb, item, depth+1)
		}
	case *Var:
		fmt.Fprintf(sb, "Var(:%s)\n", n.Name)
	case *Neg:
		sb.WriteString("Neg\n")
		dumpExpr(sb, n.X, depth+1)
	case *Not:
		sb.WriteString("Not\n")
		dumpExpr(sb, n.X, depth+1)
	case *Binary:
		fmt.Fprintf(sb, "Binary(%s)\n", n.Op)
		dumpExpr(sb, n.Left, depth+1)
		dumpExpr(sb, n.Right, depth+1)
	case *Reporter:
		fmt.Fprintf(sb, "Reporter(%s)\n", n.Name)
	case *BuiltinCall:
		fmt.Fprintf(sb, "BuiltinCall(%s)\n", n.Name)
		for _, a := range n.Args {
			dumpExpr(sb, a, depth+1)
		}
	case *FunCall:
		fmt.Fprintf(sb, "FunCall(%s)\n", n.Name)
		for _, a := range n.Args {
			dumpExpr(sb, a, depth+1)
		}
	default:
		fmt.Fprintf(sb, "<unknown expression %T>\n", n)
	}
}
