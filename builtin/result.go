package builtin

import (
	"fmt"

	"github.com/hyperswine/sol/value"
)

// registerResult installs the Result-handling builtins (spec §3, §6,
// §7). Result has no analogue in the teacher's object model beyond the
// shape of its ReturnValue wrapper; these builtins are new kernel
// concepts rather than adaptations of an existing teacher file.
func registerResult(r *Registry) {
	r.register(&value.Builtin{Name: "ok", MinArity: 1, MaxArity: 1, Invoke: builtinOk})
	r.register(&value.Builtin{Name: "err", MinArity: 1, MaxArity: 1, Invoke: builtinErr})
	r.register(&value.Builtin{Name: "unwrap_or", MinArity: 2, MaxArity: 2, Invoke: builtinUnwrapOr})
	r.register(&value.Builtin{Name: "unwrap_or_exit", MinArity: 2, MaxArity: 2, Invoke: builtinUnwrapOrExit})
	r.register(&value.Builtin{Name: "failed", MinArity: 1, MaxArity: 1, Invoke: builtinFailed})
	r.register(&value.Builtin{Name: "succeeded", MinArity: 1, MaxArity: 1, Invoke: builtinSucceeded})
}

func builtinOk(rt value.Runtime, args []value.Value) (value.Value, error) {
	return value.Ok(args[0]), nil
}

func builtinErr(rt value.Runtime, args []value.Value) (value.Value, error) {
	return value.Err(args[0]), nil
}

func asResult(v value.Value) (*value.Result, bool) {
	r, ok := v.(*value.Result)
	return r, ok
}

// builtinUnwrapOr returns r.value if r.success, else d (spec §6's
// "unwrap_or r d" rule). A non-Result first argument is treated as
// already-successful, so unwrap_or composes with plain values too.
func builtinUnwrapOr(rt value.Runtime, args []value.Value) (value.Value, error) {
	r, ok := asResult(args[0])
	if !ok {
		return args[0], nil
	}
	if r.Success {
		return r.Val, nil
	}
	return args[1], nil
}

// builtinUnwrapOrExit exits the process with code 1 and prints msg to
// stdout if the Result failed (spec §6, §9's "second positional
// argument after the piped-in Result" resolution of the open question).
func builtinUnwrapOrExit(rt value.Runtime, args []value.Value) (value.Value, error) {
	r, ok := asResult(args[0])
	if !ok {
		return args[0], nil
	}
	if r.Success {
		return r.Val, nil
	}
	msg, ok := args[1].(*value.String)
	text := r.Err.Render()
	if ok {
		text = msg.Value
	}
	fmt.Fprintln(rt.Stdout(), text)
	rt.Exit(1)
	return value.NullValue, nil
}

func builtinFailed(rt value.Runtime, args []value.Value) (value.Value, error) {
	r, ok := asResult(args[0])
	return value.BoolOf(ok && !r.Success), nil
}

func builtinSucceeded(rt value.Runtime, args []value.Value) (value.Value, error) {
	r, ok := asResult(args[0])
	return value.BoolOf(ok && r.Success), nil
}
