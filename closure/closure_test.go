package closure

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hyperswine/sol/environment"
)

func TestClosure_RenderListsParams(t *testing.T) {
	c := New([]string{"a", "b"}, nil, environment.New(nil))
	assert.Equal(t, "closure(a, b)", c.Render())
	assert.Equal(t, 2, c.Arity())
}

func TestClosure_CapturesEnvironmentByReference(t *testing.T) {
	env := environment.New(nil)
	c := New(nil, nil, env)
	env.Bind("later", nil)

	_, ok := c.Env.Get("later")
	assert.True(t, ok, "closure must see bindings added after capture")
}
