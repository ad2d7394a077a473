package builtin

import (
	"math"

	"github.com/hyperswine/sol/value"
)

// registerMath installs the math builtins grounded in the teacher's
// std/math.go, each a thin wrapper over Go's math package.
func registerMath(r *Registry) {
	r.register(&value.Builtin{Name: "abs", MinArity: 1, MaxArity: 1, Invoke: unaryMath(math.Abs)})
	r.register(&value.Builtin{Name: "floor", MinArity: 1, MaxArity: 1, Invoke: unaryMath(math.Floor)})
	r.register(&value.Builtin{Name: "ceil", MinArity: 1, MaxArity: 1, Invoke: unaryMath(math.Ceil)})
	r.register(&value.Builtin{Name: "round", MinArity: 1, MaxArity: 1, Invoke: unaryMath(math.Round)})
	r.register(&value.Builtin{Name: "sqrt", MinArity: 1, MaxArity: 1, Invoke: unaryMath(math.Sqrt)})
	r.register(&value.Builtin{Name: "pow", MinArity: 2, MaxArity: 2, Invoke: builtinPow})
	r.register(&value.Builtin{Name: "min", MinArity: 2, MaxArity: 2, Invoke: binaryMath(math.Min)})
	r.register(&value.Builtin{Name: "max", MinArity: 2, MaxArity: 2, Invoke: binaryMath(math.Max)})
}

func unaryMath(fn func(float64) float64) func(value.Runtime, []value.Value) (value.Value, error) {
	return func(rt value.Runtime, args []value.Value) (value.Value, error) {
		n, err := asNumber("math", args[0])
		if err != nil {
			return nil, err
		}
		return value.Float(fn(n.AsFloat())), nil
	}
}

func binaryMath(fn func(a, b float64) float64) func(value.Runtime, []value.Value) (value.Value, error) {
	return func(rt value.Runtime, args []value.Value) (value.Value, error) {
		a, err := asNumber("math", args[0])
		if err != nil {
			return nil, err
		}
		b, err := asNumber("math", args[1])
		if err != nil {
			return nil, err
		}
		return combine(a, b, fn), nil
	}
}

func builtinPow(rt value.Runtime, args []value.Value) (value.Value, error) {
	a, err := asNumber("pow", args[0])
	if err != nil {
		return nil, err
	}
	b, err := asNumber("pow", args[1])
	if err != nil {
		return nil, err
	}
	return value.Float(math.Pow(a.AsFloat(), b.AsFloat())), nil
}
