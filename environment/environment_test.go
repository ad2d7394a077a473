package environment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hyperswine/sol/value"
)

func TestGet_WalksOutwardThroughParents(t *testing.T) {
	outer := New(nil)
	outer.Bind("x", value.Int(1))
	inner := New(outer)

	v, ok := inner.Get("x")
	assert.True(t, ok)
	assert.Equal(t, int64(1), v.(*value.Number).I)
}

func TestGet_InnerShadowsOuter(t *testing.T) {
	outer := New(nil)
	outer.Bind("x", value.Int(1))
	inner := New(outer)
	inner.Bind("x", value.Int(2))

	v, _ := inner.Get("x")
	assert.Equal(t, int64(2), v.(*value.Number).I)

	outerV, _ := outer.Get("x")
	assert.Equal(t, int64(1), outerV.(*value.Number).I, "binding in child must not affect parent")
}

func TestGet_UnknownNameFails(t *testing.T) {
	env := New(nil)
	_, ok := env.Get("nope")
	assert.False(t, ok)
}

func TestBind_WritesOnlyInnermostFrame(t *testing.T) {
	outer := New(nil)
	inner := New(outer)
	inner.Bind("y", value.Int(5))

	_, ok := outer.Get("y")
	assert.False(t, ok, "Bind must never reach into the parent frame")
}

func TestNames_ListsOnlyThisFrame(t *testing.T) {
	outer := New(nil)
	outer.Bind("x", value.Int(1))
	inner := New(outer)
	inner.Bind("y", value.Int(2))

	assert.ElementsMatch(t, []string{"y"}, inner.Names())
	assert.ElementsMatch(t, []string{"x"}, outer.Names())
}
