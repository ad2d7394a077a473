package builtin

import (
	"github.com/hyperswine/sol/solerr"
	"github.com/hyperswine/sol/value"
)

// registerHigherOrder installs map/filter/fold (spec §6), grounded in
// the teacher's std/arrays.go. Each dispatches back into the evaluator
// through rt.Call so the callee can be a Closure, a Builtin, or a
// Partial — the same application rule as any other call.
func registerHigherOrder(r *Registry) {
	r.register(&value.Builtin{Name: "map", MinArity: 2, MaxArity: 2, Invoke: builtinMap})
	r.register(&value.Builtin{Name: "filter", MinArity: 2, MaxArity: 2, Invoke: builtinFilter})
	r.register(&value.Builtin{Name: "fold", MinArity: 2, MaxArity: 3, Invoke: builtinFold})
}

// splitArray locates the single *value.Array argument among args and
// returns it together with the remaining arguments in their original
// relative order. Called directly, `map f arr` puts the array last
// ("f arr"); piped through `arr |> map f`, the pipeline rewrite puts
// the array first ("arr f") instead — spec §4.5's pipeline rule
// prepends the piped value as argument 1 regardless of the builtin's
// documented direct-call signature. Locating the array by type rather
// than by fixed position lets map/filter/fold work both ways.
func splitArray(name string, args []value.Value) (*value.Array, []value.Value, *solerr.Error) {
	idx := -1
	for i, a := range args {
		if _, ok := a.(*value.Array); ok {
			if idx != -1 {
				return nil, nil, solerr.New(solerr.TypeError, 0, "%q received more than one array argument", name)
			}
			idx = i
		}
	}
	if idx == -1 {
		return nil, nil, solerr.New(solerr.TypeError, 0, "%q expects an array argument", name)
	}
	arr := args[idx].(*value.Array)
	rest := make([]value.Value, 0, len(args)-1)
	rest = append(rest, args[:idx]...)
	rest = append(rest, args[idx+1:]...)
	return arr, rest, nil
}

func builtinMap(rt value.Runtime, args []value.Value) (value.Value, error) {
	arr, rest, aerr := splitArray("map", args)
	if aerr != nil {
		return nil, aerr
	}
	fn := rest[0]
	out := make([]value.Value, len(arr.Elements))
	for i, e := range arr.Elements {
		v, err := rt.Call(fn, []value.Value{e})
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return &value.Array{Elements: out}, nil
}

func builtinFilter(rt value.Runtime, args []value.Value) (value.Value, error) {
	arr, rest, aerr := splitArray("filter", args)
	if aerr != nil {
		return nil, aerr
	}
	pred := rest[0]
	var out []value.Value
	for _, e := range arr.Elements {
		keep, err := rt.Call(pred, []value.Value{e})
		if err != nil {
			return nil, err
		}
		if value.Truthy(keep) {
			out = append(out, e)
		}
	}
	return &value.Array{Elements: out}, nil
}

// builtinFold implements `fold f arr [init]` as a left fold (spec §6).
// With no init argument, the array's first element seeds the
// accumulator and folding starts from the second element.
func builtinFold(rt value.Runtime, args []value.Value) (value.Value, error) {
	arr, rest, aerr := splitArray("fold", args)
	if aerr != nil {
		return nil, aerr
	}
	fn := rest[0]

	elems := arr.Elements
	var acc value.Value
	if len(rest) == 2 {
		acc = rest[1]
	} else {
		if len(elems) == 0 {
			return nil, solerr.New(solerr.TypeError, 0, "fold with no init requires a non-empty array")
		}
		acc = elems[0]
		elems = elems[1:]
	}

	for _, e := range elems {
		v, err := rt.Call(fn, []value.Value{acc, e})
		if err != nil {
			return nil, err
		}
		acc = v
	}
	return acc, nil
}
