package repl

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gologo/turtlelogo/internal/interp"
)

// evalLine is exercised directly (rather than through Start, which needs a
// real terminal for readline) the way a unit test would drive any other
// per-line handler.
func TestEvalLinePrintsResult(t *testing.T) {
	r := &Repl{eval: interp.New()}
	var buf bytes.Buffer
	r.eval.SetWriter(&buf)
	r.evalLine(&buf, `print sum 2 3`)
	assert.Contains(t, buf.String(), "5")
}

func TestEvalLineKeepsStateAcrossLines(t *testing.T) {
	r := &Repl{eval: interp.New()}
	var buf bytes.Buffer
	r.eval.SetWriter(&buf)
	r.evalLine(&buf, `make "x 10`)
	r.evalLine(&buf, `print :x`)
	assert.Contains(t, buf.String(), "10")
}

func TestEvalLineReportsErrorAndContinues(t *testing.T) {
	r := &Repl{eval: interp.New()}
	var buf bytes.Buffer
	r.eval.SetWriter(&buf)
	r.evalLine(&buf, `print :undefined`)
	assert.Contains(t, buf.String(), "NameError")

	buf.Reset()
	r.evalLine(&buf, `print 1 + 1`)
	assert.Contains(t, buf.String(), "2")
}

func TestNewSetsPromptAndEvaluator(t *testing.T) {
	r := New("logo> ")
	require.NotNil(t, r.eval)
	assert.Equal(t, "logo> ", r.Prompt)
}
