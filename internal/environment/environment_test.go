package environment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gologo/turtlelogo/internal/object"
)

func TestLookupWalksChain(t *testing.T) {
	global := New(nil)
	global.Define("x", &object.Number{Val: 1})
	child := New(global)
	v, ok := child.Lookup("x")
	assert.True(t, ok)
	assert.Equal(t, &object.Number{Val: 1}, v)
}

func TestMakeAssignsOuterBindingWhenItExists(t *testing.T) {
	global := New(nil)
	global.Define("x", &object.Number{Val: 1})
	child := New(global)
	child.Make("x", &object.Number{Val: 2})

	_, visibleFromChild := child.Lookup("x")
	assert.True(t, visibleFromChild)
	v, _ := global.Lookup("x")
	assert.Equal(t, &object.Number{Val: 2}, v, "make should have rebound the outer frame's x")
	assert.NotContains(t, child.vars, "x")
}

func TestMakeCreatesInCurrentFrameWhenUndefinedAnywhere(t *testing.T) {
	global := New(nil)
	child := New(global)
	child.Make("y", &object.Number{Val: 5})

	assert.Contains(t, child.vars, "y")
	_, inGlobal := global.vars["y"]
	assert.False(t, inGlobal)
}

func TestLocalShadowsOuterBinding(t *testing.T) {
	global := New(nil)
	global.Define("x", &object.Number{Val: 1})
	child := New(global)
	child.Local("x")

	v, ok := child.Lookup("x")
	assert.True(t, ok)
	assert.True(t, object.IsVoid(v))
}
