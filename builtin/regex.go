package builtin

import (
	"regexp"

	"github.com/hyperswine/sol/value"
)

// registerRegex installs the regex builtins grounded in the teacher's
// std/regex.go, stdlib regexp only.
func registerRegex(r *Registry) {
	r.register(&value.Builtin{Name: "match_regex", MinArity: 2, MaxArity: 2, Invoke: builtinMatchRegex})
	r.register(&value.Builtin{Name: "find_regex", MinArity: 2, MaxArity: 2, Invoke: builtinFindRegex})
	r.register(&value.Builtin{Name: "replace_regex", MinArity: 3, MaxArity: 3, Invoke: builtinReplaceRegex})
	r.register(&value.Builtin{Name: "split_regex", MinArity: 2, MaxArity: 2, Invoke: builtinSplitRegex})
}

func compileArg(v value.Value) (*regexp.Regexp, *value.Result) {
	pattern, ok := strArg(v)
	if !ok {
		return nil, value.Err(&value.String{Value: "expects a regex pattern string"})
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, value.Err(&value.String{Value: err.Error()})
	}
	return re, nil
}

func builtinMatchRegex(rt value.Runtime, args []value.Value) (value.Value, error) {
	s, ok := strArg(args[0])
	re, failure := compileArg(args[1])
	if failure != nil {
		return failure, nil
	}
	if !ok {
		return value.Err(&value.String{Value: "match_regex expects a subject string"}), nil
	}
	return value.BoolOf(re.MatchString(s)), nil
}

func builtinFindRegex(rt value.Runtime, args []value.Value) (value.Value, error) {
	s, ok := strArg(args[0])
	re, failure := compileArg(args[1])
	if failure != nil {
		return failure, nil
	}
	if !ok {
		return value.Err(&value.String{Value: "find_regex expects a subject string"}), nil
	}
	m := re.FindString(s)
	if m == "" && !re.MatchString(s) {
		return value.Err(&value.String{Value: "no match"}), nil
	}
	return value.Ok(&value.String{Value: m}), nil
}

func builtinReplaceRegex(rt value.Runtime, args []value.Value) (value.Value, error) {
	s, ok1 := strArg(args[0])
	re, failure := compileArg(args[1])
	if failure != nil {
		return failure, nil
	}
	repl, ok2 := strArg(args[2])
	if !ok1 || !ok2 {
		return value.Err(&value.String{Value: "replace_regex expects (subject, pattern, replacement) strings"}), nil
	}
	return value.Ok(&value.String{Value: re.ReplaceAllString(s, repl)}), nil
}

func builtinSplitRegex(rt value.Runtime, args []value.Value) (value.Value, error) {
	s, ok := strArg(args[0])
	re, failure := compileArg(args[1])
	if failure != nil {
		return failure, nil
	}
	if !ok {
		return value.Err(&value.String{Value: "split_regex expects a subject string"}), nil
	}
	parts := re.Split(s, -1)
	elems := make([]value.Value, len(parts))
	for i, p := range parts {
		elems[i] = &value.String{Value: p}
	}
	return value.Ok(&value.Array{Elements: elems}), nil
}
