package builtin

import (
	"encoding/json"

	"github.com/hyperswine/sol/value"
)

// registerJSON installs parse_json/stringify_json, grounded in the
// teacher's std/json.go and built on stdlib encoding/json; no
// third-party JSON library appears in go.mod.
func registerJSON(r *Registry) {
	r.register(&value.Builtin{Name: "parse_json", MinArity: 1, MaxArity: 1, Invoke: builtinParseJSON})
	r.register(&value.Builtin{Name: "stringify_json", MinArity: 1, MaxArity: 1, Invoke: builtinStringifyJSON})
}

func builtinParseJSON(rt value.Runtime, args []value.Value) (value.Value, error) {
	s, ok := strArg(args[0])
	if !ok {
		return value.Err(&value.String{Value: "parse_json expects a string"}), nil
	}
	var raw interface{}
	if err := json.Unmarshal([]byte(s), &raw); err != nil {
		return value.Err(&value.String{Value: err.Error()}), nil
	}
	return value.Ok(fromJSON(raw)), nil
}

func builtinStringifyJSON(rt value.Runtime, args []value.Value) (value.Value, error) {
	raw := toJSON(args[0])
	out, err := json.Marshal(raw)
	if err != nil {
		return value.Err(&value.String{Value: err.Error()}), nil
	}
	return value.Ok(&value.String{Value: string(out)}), nil
}

func fromJSON(raw interface{}) value.Value {
	switch v := raw.(type) {
	case nil:
		return value.NullValue
	case bool:
		return value.BoolOf(v)
	case float64:
		return value.Float(v)
	case string:
		return &value.String{Value: v}
	case []interface{}:
		elems := make([]value.Value, len(v))
		for i, e := range v {
			elems[i] = fromJSON(e)
		}
		return &value.Array{Elements: elems}
	case map[string]interface{}:
		d := value.NewDict()
		for k, e := range v {
			d = d.Set(k, fromJSON(e))
		}
		return d
	default:
		return value.NullValue
	}
}

func toJSON(v value.Value) interface{} {
	switch x := v.(type) {
	case *value.Null:
		return nil
	case *value.Bool:
		return x.Value
	case *value.Number:
		return x.AsFloat()
	case *value.String:
		return x.Value
	case *value.Array:
		out := make([]interface{}, len(x.Elements))
		for i, e := range x.Elements {
			out[i] = toJSON(e)
		}
		return out
	case *value.Dict:
		out := make(map[string]interface{}, len(x.Keys))
		for _, k := range x.Keys {
			out[k] = toJSON(x.Pairs[k])
		}
		return out
	default:
		return v.Render()
	}
}
