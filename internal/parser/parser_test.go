package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gologo/turtlelogo/internal/ast"
)

func parseOK(t *testing.T, src string) []ast.Statement {
	t.Helper()
	stmts, err := Parse(src)
	require.NoError(t, err)
	return stmts
}

func TestParseSimpleMove(t *testing.T) {
	stmts := parseOK(t, "forward 100")
	require.Len(t, stmts, 1)
	move, ok := stmts[0].(*ast.Move)
	require.True(t, ok)
	assert.Equal(t, ast.Forward, move.Kind)
	lit, ok := move.Arg.(*ast.NumberLit)
	require.True(t, ok)
	assert.Equal(t, 100.0, lit.Value)
}

func TestParseAliasesResolveToCanonical(t *testing.T) {
	stmts := parseOK(t, "fd 10\nbk 20\nrt 30\nlt 40")
	require.Len(t, stmts, 4)
	assert.Equal(t, ast.Forward, stmts[0].(*ast.Move).Kind)
	assert.Equal(t, ast.Back, stmts[1].(*ast.Move).Kind)
	assert.Equal(t, ast.Right, stmts[2].(*ast.Move).Kind)
	assert.Equal(t, ast.Left, stmts[3].(*ast.Move).Kind)
}

func TestParseSimpleCommands(t *testing.T) {
	stmts := parseOK(t, "pu\npd\nhome\ncs\nht\nst")
	require.Len(t, stmts, 6)
	want := []string{"penup", "pendown", "home", "clearscreen", "hideturtle", "showturtle"}
	for i, w := range want {
		s, ok := stmts[i].(*ast.Simple)
		require.True(t, ok, "stmt %d", i)
		assert.Equal(t, w, s.Name)
	}
}

func TestParseRepeatBlock(t *testing.T) {
	stmts := parseOK(t, "repeat 4 [ forward 50 right 90 ]")
	require.Len(t, stmts, 1)
	rep, ok := stmts[0].(*ast.Repeat)
	require.True(t, ok)
	assert.Equal(t, 4.0, rep.Count.(*ast.NumberLit).Value)
	require.Len(t, rep.Body, 2)
}

func TestParseIfElse(t *testing.T) {
	stmts := parseOK(t, `ifelse 1 = 1 [ print "yes ] [ print "no ]`)
	require.Len(t, stmts, 1)
	ie, ok := stmts[0].(*ast.IfElse)
	require.True(t, ok)
	require.Len(t, ie.Then, 1)
	require.Len(t, ie.Else, 1)
	bin, ok := ie.Cond.(*ast.Binary)
	require.True(t, ok)
	assert.Equal(t, "=", bin.Op)
}

func TestParseWhile(t *testing.T) {
	stmts := parseOK(t, `while [ :i < 5 ] [ make "i sum :i 1 ]`)
	require.Len(t, stmts, 1)
	w, ok := stmts[0].(*ast.While)
	require.True(t, ok)
	require.Len(t, w.Body, 1)
}

func TestParseForWithAndWithoutStep(t *testing.T) {
	stmts := parseOK(t, `for "i 1 10 [ print :i ]`)
	require.Len(t, stmts, 1)
	f := stmts[0].(*ast.For)
	assert.Equal(t, "i", f.Var)
	assert.Nil(t, f.Step)

	stmts = parseOK(t, `for "i 1 10 2 [ print :i ]`)
	f = stmts[0].(*ast.For)
	require.NotNil(t, f.Step)
	assert.Equal(t, 2.0, f.Step.(*ast.NumberLit).Value)
}

func TestParseDefineProcedure(t *testing.T) {
	stmts := parseOK(t, "to square :side\nrepeat 4 [ forward :side right 90 ]\nend")
	require.Len(t, stmts, 1)
	def, ok := stmts[0].(*ast.Define)
	require.True(t, ok)
	assert.Equal(t, "square", def.Name)
	assert.Equal(t, []string{"side"}, def.Params)
	require.Len(t, def.Body, 1)
}

func TestParseDefineMissingEndIsError(t *testing.T) {
	_, err := Parse("to square :side\nrepeat 4 [ forward :side right 90 ]")
	assert.Error(t, err)
}

func TestParseMakeLocalStop(t *testing.T) {
	stmts := parseOK(t, `make "x 5
local "y
stop`)
	require.Len(t, stmts, 3)
	mk := stmts[0].(*ast.Make)
	assert.Equal(t, "x", mk.Name)
	assert.Equal(t, 5.0, mk.Value.(*ast.NumberLit).Value)
	loc := stmts[1].(*ast.Local)
	assert.Equal(t, "y", loc.Name)
	_, ok := stmts[2].(*ast.Stop)
	assert.True(t, ok)
}

func TestParseOutput(t *testing.T) {
	stmts := parseOK(t, "to double :n\noutput product :n 2\nend")
	def := stmts[0].(*ast.Define)
	out, ok := def.Body[0].(*ast.Output)
	require.True(t, ok)
	_, isBuiltin := out.Value.(*ast.BuiltinCall)
	assert.True(t, isBuiltin)
}

func TestParseUserProcedureCall(t *testing.T) {
	stmts := parseOK(t, "to square :side\nend\nsquare 50")
	require.Len(t, stmts, 2)
	call, ok := stmts[1].(*ast.Call)
	require.True(t, ok)
	assert.Equal(t, "square", call.Name)
	require.Len(t, call.Args, 1)
}

func TestParseExpressionPrecedence(t *testing.T) {
	stmts := parseOK(t, `print 1 + 2 * 3`)
	pr := stmts[0].(*ast.Print)
	bin := pr.Value.(*ast.Binary)
	assert.Equal(t, "+", bin.Op)
	_, leftIsNum := bin.Left.(*ast.NumberLit)
	assert.True(t, leftIsNum)
	rightBin, ok := bin.Right.(*ast.Binary)
	require.True(t, ok)
	assert.Equal(t, "*", rightBin.Op)
}

func TestParseLogicalAndComparison(t *testing.T) {
	stmts := parseOK(t, `if 1 < 2 and 3 > 2 [ print "ok ]`)
	ifst := stmts[0].(*ast.If)
	bin := ifst.Cond.(*ast.Binary)
	assert.Equal(t, "and", bin.Op)
}

func TestParseUnaryNegAndNot(t *testing.T) {
	stmts := parseOK(t, `print - 5
print not 1 = 1`)
	_, isNeg := stmts[0].(*ast.Print).Value.(*ast.Neg)
	assert.True(t, isNeg)
	_, isNot := stmts[1].(*ast.Print).Value.(*ast.Not)
	assert.True(t, isNot)
}

func TestParseListLiteral(t *testing.T) {
	stmts := parseOK(t, `print [ red green blue ]`)
	list := stmts[0].(*ast.Print).Value.(*ast.ListLit)
	require.Len(t, list.Items, 3)
	for _, item := range list.Items {
		_, ok := item.(*ast.TextLit)
		assert.True(t, ok)
	}
}

func TestParseNestedListLiteral(t *testing.T) {
	stmts := parseOK(t, `print [ 1 [ 2 3 ] 4 ]`)
	list := stmts[0].(*ast.Print).Value.(*ast.ListLit)
	require.Len(t, list.Items, 3)
	nested, ok := list.Items[1].(*ast.ListLit)
	require.True(t, ok)
	assert.Len(t, nested.Items, 2)
}

func TestParseReporterAndBuiltinCall(t *testing.T) {
	stmts := parseOK(t, `print xcor
print sum 1 2`)
	_, isReporter := stmts[0].(*ast.Print).Value.(*ast.Reporter)
	assert.True(t, isReporter)
	bc, ok := stmts[1].(*ast.Print).Value.(*ast.BuiltinCall)
	require.True(t, ok)
	assert.Equal(t, "sum", bc.Name)
	assert.Len(t, bc.Args, 2)
}

func TestParseVariadicListBuiltin(t *testing.T) {
	stmts := parseOK(t, `print list 1 2 3`)
	bc := stmts[0].(*ast.Print).Value.(*ast.BuiltinCall)
	assert.Equal(t, "list", bc.Name)
	assert.Len(t, bc.Args, 3)
}

func TestParseParenthesizedExpression(t *testing.T) {
	stmts := parseOK(t, `print (1 + 2) * 3`)
	bin := stmts[0].(*ast.Print).Value.(*ast.Binary)
	assert.Equal(t, "*", bin.Op)
	_, leftIsBinary := bin.Left.(*ast.Binary)
	assert.True(t, leftIsBinary)
}

func TestParseUnclosedListIsError(t *testing.T) {
	_, err := Parse(`print [ 1 2 3`)
	assert.Error(t, err)
}

func TestParseNestedProcedureDefinitionIsError(t *testing.T) {
	_, err := Parse("to a\nto b\nend\nend")
	assert.Error(t, err)
}
