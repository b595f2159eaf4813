package object

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumberDisplayForm(t *testing.T) {
	assert.Equal(t, "3", (&Number{Val: 3}).String())
	assert.Equal(t, "3.5", (&Number{Val: 3.5}).String())
}

func TestTruthiness(t *testing.T) {
	assert.False(t, Truthy(&Text{Val: "false"}))
	assert.False(t, Truthy(&Text{Val: ""}))
	assert.False(t, Truthy(&Number{Val: 0}))
	assert.False(t, Truthy(&List{}))
	assert.True(t, Truthy(&Text{Val: "true"}))
	assert.True(t, Truthy(&Number{Val: 1}))
	assert.True(t, Truthy(&List{Items: []Value{&Number{Val: 1}}}))
}

func TestEqualityIsDeep(t *testing.T) {
	a := &List{Items: []Value{&Number{Val: 1}, &Text{Val: "x"}}}
	b := &List{Items: []Value{&Number{Val: 1}, &Text{Val: "x"}}}
	assert.True(t, Equal(a, b))
	c := &List{Items: []Value{&Number{Val: 2}}}
	assert.False(t, Equal(a, c))
}

func TestShowQuotesText(t *testing.T) {
	assert.Equal(t, "\"red", (&Text{Val: "red"}).Inspect())
}

func TestShowNestedList(t *testing.T) {
	inner := &List{Items: []Value{&Text{Val: "b"}, &Text{Val: "c"}}}
	outer := &List{Items: []Value{&Text{Val: "a"}, inner}}
	assert.Equal(t, "[a [b c]]", outer.Inspect())
}

func TestShowBareTextIsQuoted(t *testing.T) {
	assert.Equal(t, "\"hello", (&Text{Val: "hello"}).Inspect())
}

func TestIsVoidAndTypeNameRecognizeVoid(t *testing.T) {
	assert.True(t, IsVoid(&Void{}))
	assert.Equal(t, "no value", TypeName(&Void{}))
}
