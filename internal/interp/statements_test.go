package interp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForLoopImplicitStepRunsZeroTimesWhenEndLessThanStart(t *testing.T) {
	_, buf, err := run(t, `for "i 3 1 [ print :i ]`)
	require.NoError(t, err)
	assert.Equal(t, "", buf.String())
}

func TestForLoopDescendingWithExplicitNegativeStep(t *testing.T) {
	_, buf, err := run(t, `for "i 3 1 -1 [ print :i ]`)
	require.NoError(t, err)
	assert.Equal(t, "3\n2\n1\n", buf.String())
}

func TestForLoopExplicitStep(t *testing.T) {
	_, buf, err := run(t, `for "i 0 10 5 [ print :i ]`)
	require.NoError(t, err)
	assert.Equal(t, "0\n5\n10\n", buf.String())
}

func TestForLoopZeroStepIsError(t *testing.T) {
	_, _, err := run(t, `for "i 0 10 0 [ print :i ]`)
	assert.Error(t, err)
}

func TestForLoopVariableNotVisibleAfterLoop(t *testing.T) {
	_, _, err := run(t, `for "i 1 3 [ print :i ]
print :i`)
	assert.Error(t, err, "for's loop variable lives in a fresh frame per iteration")
}

func TestMakeCreatesThenRebindsSameVariable(t *testing.T) {
	_, buf, err := run(t, `make "x 1
print :x
make "x 2
print :x`)
	require.NoError(t, err)
	assert.Equal(t, "1\n2\n", buf.String())
}

func TestLocalShadowsOuterInsideProcedure(t *testing.T) {
	_, buf, err := run(t, `make "x 1
to shadow
local "x
make "x 99
output :x
end
print shadow
print :x`)
	require.NoError(t, err)
	assert.Equal(t, "99\n1\n", buf.String())
}

func TestTypeDoesNotAppendNewline(t *testing.T) {
	_, buf, err := run(t, `type "a
type "b
print "c`)
	require.NoError(t, err)
	assert.Equal(t, "abc\n", buf.String())
}

func TestCircleReturnsToStartWithThirtySixSegments(t *testing.T) {
	e, _, err := run(t, "circle 50")
	require.NoError(t, err)
	x, y := e.Turtle.Position()
	assert.InDelta(t, 0, x, 1e-6)
	assert.InDelta(t, 0, y, 1e-6)
	assert.Len(t, e.Turtle.Segments(), 36)
}

func TestIfElseBranchesCorrectly(t *testing.T) {
	_, buf, err := run(t, `ifelse 1 > 2 [ print "yes ] [ print "no ]`)
	require.NoError(t, err)
	assert.Equal(t, "no\n", buf.String())
}

func TestSetXYAndSetHeading(t *testing.T) {
	e, _, err := run(t, "setxy 10 20\nsetheading 90")
	require.NoError(t, err)
	x, y := e.Turtle.Position()
	assert.Equal(t, 10.0, x)
	assert.Equal(t, 20.0, y)
	assert.Equal(t, 90.0, e.Turtle.HeadingDeg())
}

func TestReporterQueriesTurtleState(t *testing.T) {
	_, buf, err := run(t, `forward 50
print xcor
print ycor
print heading
print pendown?`)
	require.NoError(t, err)
	assert.Equal(t, "0\n50\n0\ntrue\n", buf.String())
}

func TestUndefinedVariableIsError(t *testing.T) {
	_, _, err := run(t, "print :nope")
	assert.Error(t, err)
}

func TestUndefinedProcedureIsError(t *testing.T) {
	_, _, err := run(t, "nope 1 2")
	assert.Error(t, err)
}

func TestDivisionByZeroIsError(t *testing.T) {
	_, _, err := run(t, "print quotient 1 0")
	assert.Error(t, err)
}

func TestModuloKeepsFractionalPartAndDividendSign(t *testing.T) {
	_, buf, err := run(t, `print 5.5 % 2
print -5.5 % 2
print remainder 5.5 2`)
	require.NoError(t, err)
	assert.Equal(t, "1.5\n-1.5\n1.5\n", buf.String())
}

func TestTowardsIsRelativeToTurtlePosition(t *testing.T) {
	_, buf, err := run(t, `setxy 10 10
print towards 10 20`)
	require.NoError(t, err)
	assert.Equal(t, "0\n", buf.String())
}
