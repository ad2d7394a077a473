package builtin

import (
	"strings"

	"github.com/hyperswine/sol/value"
)

// registerStrings installs the string builtins grounded in the
// teacher's std/strings.go.
func registerStrings(r *Registry) {
	r.register(&value.Builtin{Name: "split", MinArity: 2, MaxArity: 2, Invoke: builtinSplit})
	r.register(&value.Builtin{Name: "join", MinArity: 2, MaxArity: 2, Invoke: builtinJoin})
	r.register(&value.Builtin{Name: "upper", MinArity: 1, MaxArity: 1, Invoke: builtinUpper})
	r.register(&value.Builtin{Name: "lower", MinArity: 1, MaxArity: 1, Invoke: builtinLower})
	r.register(&value.Builtin{Name: "trim", MinArity: 1, MaxArity: 1, Invoke: builtinTrim})
	r.register(&value.Builtin{Name: "contains", MinArity: 2, MaxArity: 2, Invoke: builtinContains})
	r.register(&value.Builtin{Name: "replace", MinArity: 3, MaxArity: 3, Invoke: builtinReplace})
}

func strArg(v value.Value) (string, bool) {
	s, ok := v.(*value.String)
	if !ok {
		return "", false
	}
	return s.Value, true
}

func builtinSplit(rt value.Runtime, args []value.Value) (value.Value, error) {
	s, ok1 := strArg(args[0])
	sep, ok2 := strArg(args[1])
	if !ok1 || !ok2 {
		return value.Err(&value.String{Value: "split expects two strings"}), nil
	}
	parts := strings.Split(s, sep)
	elems := make([]value.Value, len(parts))
	for i, p := range parts {
		elems[i] = &value.String{Value: p}
	}
	return &value.Array{Elements: elems}, nil
}

func builtinJoin(rt value.Runtime, args []value.Value) (value.Value, error) {
	arr, ok := args[0].(*value.Array)
	sep, ok2 := strArg(args[1])
	if !ok || !ok2 {
		return value.Err(&value.String{Value: "join expects an array and a separator string"}), nil
	}
	parts := make([]string, len(arr.Elements))
	for i, e := range arr.Elements {
		parts[i] = e.Render()
	}
	return &value.String{Value: strings.Join(parts, sep)}, nil
}

func builtinUpper(rt value.Runtime, args []value.Value) (value.Value, error) {
	s, ok := strArg(args[0])
	if !ok {
		return value.Err(&value.String{Value: "upper expects a string"}), nil
	}
	return &value.String{Value: strings.ToUpper(s)}, nil
}

func builtinLower(rt value.Runtime, args []value.Value) (value.Value, error) {
	s, ok := strArg(args[0])
	if !ok {
		return value.Err(&value.String{Value: "lower expects a string"}), nil
	}
	return &value.String{Value: strings.ToLower(s)}, nil
}

func builtinTrim(rt value.Runtime, args []value.Value) (value.Value, error) {
	s, ok := strArg(args[0])
	if !ok {
		return value.Err(&value.String{Value: "trim expects a string"}), nil
	}
	return &value.String{Value: strings.TrimSpace(s)}, nil
}

func builtinContains(rt value.Runtime, args []value.Value) (value.Value, error) {
	s, ok1 := strArg(args[0])
	sub, ok2 := strArg(args[1])
	if !ok1 || !ok2 {
		return value.BoolOf(false), nil
	}
	return value.BoolOf(strings.Contains(s, sub)), nil
}

func builtinReplace(rt value.Runtime, args []value.Value) (value.Value, error) {
	s, ok1 := strArg(args[0])
	old, ok2 := strArg(args[1])
	repl, ok3 := strArg(args[2])
	if !ok1 || !ok2 || !ok3 {
		return value.Err(&value.String{Value: "replace expects three strings"}), nil
	}
	return &value.String{Value: strings.ReplaceAll(s, old, repl)}, nil
}
