package builtin

import (
	"strings"
	"time"

	"github.com/hyperswine/sol/value"
)

// registerTime installs the time builtins grounded in the teacher's
// std/time.go.
func registerTime(r *Registry) {
	r.register(&value.Builtin{Name: "now", MinArity: 0, MaxArity: 0, Invoke: builtinNow})
	r.register(&value.Builtin{Name: "now_ms", MinArity: 0, MaxArity: 0, Invoke: builtinNowMs})
	r.register(&value.Builtin{Name: "format_time", MinArity: 2, MaxArity: 2, Invoke: builtinFormatTime})
	r.register(&value.Builtin{Name: "parse_time", MinArity: 2, MaxArity: 2, Invoke: builtinParseTime})
}

func builtinNow(rt value.Runtime, args []value.Value) (value.Value, error) {
	return value.Int(time.Now().Unix()), nil
}

func builtinNowMs(rt value.Runtime, args []value.Value) (value.Value, error) {
	return value.Int(time.Now().UnixMilli()), nil
}

func builtinFormatTime(rt value.Runtime, args []value.Value) (value.Value, error) {
	epoch, ok1 := args[0].(*value.Number)
	layout, ok2 := strArg(args[1])
	if !ok1 || !ok2 {
		return value.Err(&value.String{Value: "format_time expects (epoch_seconds, layout)"}), nil
	}
	t := time.Unix(int64(epoch.AsFloat()), 0).UTC()
	return value.Ok(&value.String{Value: t.Format(goLayout(layout))}), nil
}

func builtinParseTime(rt value.Runtime, args []value.Value) (value.Value, error) {
	text, ok1 := strArg(args[0])
	layout, ok2 := strArg(args[1])
	if !ok1 || !ok2 {
		return value.Err(&value.String{Value: "parse_time expects (text, layout)"}), nil
	}
	t, err := time.Parse(goLayout(layout), text)
	if err != nil {
		return value.Err(&value.String{Value: err.Error()}), nil
	}
	return value.Ok(value.Int(t.Unix())), nil
}

// goLayout accepts either a Go reference-time layout verbatim or the
// common strftime-style "%Y-%m-%d" shorthand, translating the latter
// so Sol scripts need not know Go's reference date.
func goLayout(layout string) string {
	replacer := map[string]string{
		"%Y": "2006", "%m": "01", "%d": "02",
		"%H": "15", "%M": "04", "%S": "05",
	}
	out := layout
	for k, v := range replacer {
		out = strings.ReplaceAll(out, k, v)
	}
	return out
}
