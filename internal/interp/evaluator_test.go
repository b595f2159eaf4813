package interp

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gologo/turtlelogo/internal/parser"
)

// run parses and evaluates src against a fresh Evaluator, returning it and
// any error, with output captured to a buffer rather than os.Stdout.
func run(t *testing.T, src string) (*Evaluator, *bytes.Buffer, error) {
	t.Helper()
	stmts, err := parser.Parse(src)
	require.NoError(t, err)
	e := New()
	var buf bytes.Buffer
	e.SetWriter(&buf)
	err = e.Run(stmts)
	return e, &buf, err
}

func TestRunMoveUpdatesTurtlePosition(t *testing.T) {
	e, _, err := run(t, "forward 100")
	require.NoError(t, err)
	x, y := e.Turtle.Position()
	assert.InDelta(t, 0, x, 1e-9)
	assert.InDelta(t, 100, y, 1e-9)
}

func TestRunRepeatSquareProducesFourSegments(t *testing.T) {
	e, _, err := run(t, "repeat 4 [ forward 50 right 90 ]")
	require.NoError(t, err)
	assert.Len(t, e.Turtle.Segments(), 4)
	x, y := e.Turtle.Position()
	assert.InDelta(t, 0, x, 1e-6)
	assert.InDelta(t, 0, y, 1e-6)
}

func TestRunPrintEmitsLine(t *testing.T) {
	_, buf, err := run(t, `print sum 2 3`)
	require.NoError(t, err)
	assert.Equal(t, "5\n", buf.String())
}

func TestRunProcedureCallAndOutput(t *testing.T) {
	_, buf, err := run(t, `to double :n
output product :n 2
end
print double 21`)
	require.NoError(t, err)
	assert.Equal(t, "42\n", buf.String())
}

func TestRunRecursiveFactorial(t *testing.T) {
	_, buf, err := run(t, `to fact :n
if :n = 0 [ output 1 ]
output product :n fact (difference :n 1)
end
print fact 5`)
	require.NoError(t, err)
	assert.Equal(t, "120\n", buf.String())
}

func TestRunWhileLoopCounter(t *testing.T) {
	_, buf, err := run(t, `make "i 0
while [ :i < 3 ] [
  print :i
  make "i sum :i 1
]`)
	require.NoError(t, err)
	assert.Equal(t, "0\n1\n2\n", buf.String())
}

func TestRunStopAtTopLevelIsError(t *testing.T) {
	_, _, err := run(t, "stop")
	assert.Error(t, err)
}

func TestRunOutputAtTopLevelIsError(t *testing.T) {
	_, _, err := run(t, "output 1")
	assert.Error(t, err)
}

func TestRunProcedureFrameDoesNotSeeCallerLocals(t *testing.T) {
	_, _, err := run(t, `to inner
output :y
end
to outer :y
output inner
end
print outer 5`)
	assert.Error(t, err, "procedure frames always chain to global, never to the caller's frame")
}

func TestRunArityMismatchIsError(t *testing.T) {
	_, _, err := run(t, `to needsone :a
output :a
end
print needsone 1 2`)
	assert.Error(t, err)
}

func TestRunPenUpSuppressesSegments(t *testing.T) {
	e, _, err := run(t, "penup\nforward 100\npendown\nforward 100")
	require.NoError(t, err)
	assert.Len(t, e.Turtle.Segments(), 1)
}

func TestRunListBuiltinsOnColorList(t *testing.T) {
	_, buf, err := run(t, `print first [ red green blue ]
print last [ red green blue ]
print count [ red green blue ]
print item 2 [ red green blue ]`)
	require.NoError(t, err)
	assert.Equal(t, "red\nblue\n3\ngreen\n", buf.String())
}

func TestRunShowQuotesText(t *testing.T) {
	_, buf, err := run(t, `show "hello`)
	require.NoError(t, err)
	assert.Equal(t, "\"hello\n", buf.String())
}
