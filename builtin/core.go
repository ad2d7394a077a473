package builtin

import (
	"fmt"
	"strconv"

	"github.com/hyperswine/sol/solerr"
	"github.com/hyperswine/sol/value"
)

// registerCore installs the general-purpose builtins grounded in the
// teacher's std/builtins.go and std/format.go: output, stringification,
// and the two reflective helpers typeof/length.
func registerCore(r *Registry) {
	r.register(&value.Builtin{Name: "echo", MinArity: 1, MaxArity: 1, Invoke: builtinEcho})
	r.register(&value.Builtin{Name: "to_string", MinArity: 1, MaxArity: 1, Invoke: builtinToString})
	r.register(&value.Builtin{Name: "to_number", MinArity: 1, MaxArity: 1, Invoke: builtinToNumber})
	r.register(&value.Builtin{Name: "typeof", MinArity: 1, MaxArity: 1, Invoke: builtinTypeof})
	r.register(&value.Builtin{Name: "length", MinArity: 1, MaxArity: 1, Invoke: builtinLength})
}

func builtinEcho(rt value.Runtime, args []value.Value) (value.Value, error) {
	fmt.Fprintln(rt.Stdout(), args[0].Render())
	return value.NullValue, nil
}

func builtinToString(rt value.Runtime, args []value.Value) (value.Value, error) {
	return &value.String{Value: args[0].Render()}, nil
}

func builtinToNumber(rt value.Runtime, args []value.Value) (value.Value, error) {
	s, ok := args[0].(*value.String)
	if !ok {
		if n, ok := args[0].(*value.Number); ok {
			return value.Ok(n), nil
		}
		return value.Err(&value.String{Value: fmt.Sprintf("cannot convert %s to a number", args[0].Kind())}), nil
	}
	if i, err := strconv.ParseInt(s.Value, 10, 64); err == nil {
		return value.Ok(value.Int(i)), nil
	}
	if f, err := strconv.ParseFloat(s.Value, 64); err == nil {
		return value.Ok(value.Float(f)), nil
	}
	return value.Err(&value.String{Value: fmt.Sprintf("%q is not a number", s.Value)}), nil
}

func builtinTypeof(rt value.Runtime, args []value.Value) (value.Value, error) {
	return &value.String{Value: string(args[0].Kind())}, nil
}

func builtinLength(rt value.Runtime, args []value.Value) (value.Value, error) {
	switch v := args[0].(type) {
	case *value.String:
		return value.Int(int64(len(v.Value))), nil
	case *value.Array:
		return value.Int(int64(len(v.Elements))), nil
	case *value.Dict:
		return value.Int(int64(len(v.Keys))), nil
	default:
		return nil, solerr.New(solerr.TypeError, 0, "length expects a string, array, or dict, got %s", v.Kind())
	}
}
