package builtin

import (
	"github.com/hyperswine/sol/solerr"
	"github.com/hyperswine/sol/value"
)

// registerArith installs the arithmetic/comparison builtins (spec §6,
// §9). Every one but "+" has a fixed arity of 2; "+" is variadic,
// accepting two or more arguments so that `fold + 0` (spec §8 scenario
// 3) can reduce an Array one element at a time.
func registerArith(r *Registry) {
	r.register(&value.Builtin{Name: "+", MinArity: 2, MaxArity: -1, Invoke: builtinAdd})
	r.register(&value.Builtin{Name: "-", MinArity: 2, MaxArity: 2, Invoke: binaryNumeric("-", func(a, b float64) float64 { return a - b })})
	r.register(&value.Builtin{Name: "*", MinArity: 2, MaxArity: 2, Invoke: binaryNumeric("*", func(a, b float64) float64 { return a * b })})
	r.register(&value.Builtin{Name: "/", MinArity: 2, MaxArity: 2, Invoke: builtinDivide})
	r.register(&value.Builtin{Name: "%", MinArity: 2, MaxArity: 2, Invoke: builtinModulo})
	r.register(&value.Builtin{Name: "==", MinArity: 2, MaxArity: 2, Invoke: builtinEquals})
	r.register(&value.Builtin{Name: "<", MinArity: 2, MaxArity: 2, Invoke: comparison("<", func(a, b float64) bool { return a < b })})
	r.register(&value.Builtin{Name: ">", MinArity: 2, MaxArity: 2, Invoke: comparison(">", func(a, b float64) bool { return a > b })})
}

func asNumber(name string, v value.Value) (*value.Number, *solerr.Error) {
	n, ok := v.(*value.Number)
	if !ok {
		return nil, solerr.New(solerr.TypeError, 0, "%q expects a number, got %s", name, v.Kind())
	}
	return n, nil
}

// combine applies op to the float forms of a and b, preserving IsInt
// only when both operands were integers (spec §3's promotion rule).
func combine(a, b *value.Number, op func(x, y float64) float64) *value.Number {
	if a.IsInt && b.IsInt {
		result := op(float64(a.I), float64(b.I))
		return value.Int(int64(result))
	}
	return value.Float(op(a.AsFloat(), b.AsFloat()))
}

func builtinAdd(rt value.Runtime, args []value.Value) (value.Value, error) {
	acc, err := asNumber("+", args[0])
	if err != nil {
		return nil, err
	}
	for _, a := range args[1:] {
		n, err := asNumber("+", a)
		if err != nil {
			return nil, err
		}
		acc = combine(acc, n, func(x, y float64) float64 { return x + y })
	}
	return acc, nil
}

func binaryNumeric(name string, op func(a, b float64) float64) func(value.Runtime, []value.Value) (value.Value, error) {
	return func(rt value.Runtime, args []value.Value) (value.Value, error) {
		a, err := asNumber(name, args[0])
		if err != nil {
			return nil, err
		}
		b, err := asNumber(name, args[1])
		if err != nil {
			return nil, err
		}
		return combine(a, b, op), nil
	}
}

func builtinDivide(rt value.Runtime, args []value.Value) (value.Value, error) {
	a, err := asNumber("/", args[0])
	if err != nil {
		return nil, err
	}
	b, err := asNumber("/", args[1])
	if err != nil {
		return nil, err
	}
	if b.AsFloat() == 0 {
		return nil, solerr.New(solerr.DivideByZero, 0, "division by zero")
	}
	return combine(a, b, func(x, y float64) float64 { return x / y }), nil
}

func builtinModulo(rt value.Runtime, args []value.Value) (value.Value, error) {
	a, err := asNumber("%", args[0])
	if err != nil {
		return nil, err
	}
	b, err := asNumber("%", args[1])
	if err != nil {
		return nil, err
	}
	if b.AsFloat() == 0 {
		return nil, solerr.New(solerr.DivideByZero, 0, "division by zero")
	}
	if a.IsInt && b.IsInt {
		return value.Int(a.I % b.I), nil
	}
	af, bf := a.AsFloat(), b.AsFloat()
	q := float64(int64(af / bf))
	return value.Float(af - q*bf), nil
}

func comparison(name string, op func(a, b float64) bool) func(value.Runtime, []value.Value) (value.Value, error) {
	return func(rt value.Runtime, args []value.Value) (value.Value, error) {
		a, err := asNumber(name, args[0])
		if err != nil {
			return nil, err
		}
		b, err := asNumber(name, args[1])
		if err != nil {
			return nil, err
		}
		return value.BoolOf(op(a.AsFloat(), b.AsFloat())), nil
	}
}

func builtinEquals(rt value.Runtime, args []value.Value) (value.Value, error) {
	return value.BoolOf(valuesEqual(args[0], args[1])), nil
}

// valuesEqual implements structural equality across the value model,
// used by "==".
func valuesEqual(a, b value.Value) bool {
	switch x := a.(type) {
	case *value.Number:
		y, ok := b.(*value.Number)
		return ok && x.AsFloat() == y.AsFloat()
	case *value.String:
		y, ok := b.(*value.String)
		return ok && x.Value == y.Value
	case *value.Bool:
		y, ok := b.(*value.Bool)
		return ok && x.Value == y.Value
	case *value.Null:
		_, ok := b.(*value.Null)
		return ok
	case *value.Array:
		y, ok := b.(*value.Array)
		if !ok || len(x.Elements) != len(y.Elements) {
			return false
		}
		for i := range x.Elements {
			if !valuesEqual(x.Elements[i], y.Elements[i]) {
				return false
			}
		}
		return true
	case *value.Dict:
		y, ok := b.(*value.Dict)
		if !ok || len(x.Keys) != len(y.Keys) {
			return false
		}
		for _, k := range x.Keys {
			yv, ok := y.Pairs[k]
			if !ok || !valuesEqual(x.Pairs[k], yv) {
				return false
			}
		}
		return true
	default:
		return a == b
	}
}
