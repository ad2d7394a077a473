package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruthy_FalsyCases(t *testing.T) {
	assert.False(t, Truthy(False))
	assert.False(t, Truthy(NullValue))
	assert.False(t, Truthy(Int(0)))
	assert.False(t, Truthy(&String{Value: ""}))
	assert.False(t, Truthy(&Array{}))
	assert.False(t, Truthy(NewDict()))
	assert.False(t, Truthy(Err(&String{Value: "boom"})))
}

func TestTruthy_TruthyCases(t *testing.T) {
	assert.True(t, Truthy(True))
	assert.True(t, Truthy(Int(1)))
	assert.True(t, Truthy(&String{Value: "x"}))
	assert.True(t, Truthy(&Array{Elements: []Value{Int(1)}}))
	assert.True(t, Truthy(Ok(Int(1))))
}

func TestNumber_RenderPreservesIntegerVsFloat(t *testing.T) {
	assert.Equal(t, "3", Int(3).Render())
	assert.Equal(t, "3.5", Float(3.5).Render())
	assert.Equal(t, "3.0", Float(3.0).Render())
}

func TestArray_RenderCanonicalForm(t *testing.T) {
	arr := &Array{Elements: []Value{Int(2), Int(3), Int(4)}}
	assert.Equal(t, "[2, 3, 4]", arr.Render())
}

func TestDict_SetIsImmutableCopy(t *testing.T) {
	d := NewDict()
	d2 := d.Set("x", Int(1))
	assert.Equal(t, 0, len(d.Keys), "original dict must not be mutated")
	assert.Equal(t, 1, len(d2.Keys))

	d3 := d2.Set("x", Int(2))
	assert.Equal(t, []string{"x"}, d3.Keys, "overwriting an existing key must not duplicate it")
	assert.Equal(t, int64(2), d3.Pairs["x"].(*Number).I)
}

func TestResult_RenderShowsSuccessAndValue(t *testing.T) {
	assert.Equal(t, "ok(1)", Ok(Int(1)).Render())
	assert.Equal(t, `err("boom")`, Err(&String{Value: "boom"}).Render())
}
