package builtin

import (
	"bytes"
	"os"
	"os/exec"

	"github.com/hyperswine/sol/value"
)

// registerOS installs the process/OS builtins grounded in the
// teacher's std/os.go: environment access, shelling out, and process
// termination.
func registerOS(r *Registry) {
	r.register(&value.Builtin{Name: "getenv", MinArity: 1, MaxArity: 1, Invoke: builtinGetenv})
	r.register(&value.Builtin{Name: "setenv", MinArity: 2, MaxArity: 2, Invoke: builtinSetenv})
	r.register(&value.Builtin{Name: "sh", MinArity: 1, MaxArity: 1, Invoke: builtinSh})
	r.register(&value.Builtin{Name: "exit", MinArity: 1, MaxArity: 1, Invoke: builtinExit})
}

func builtinGetenv(rt value.Runtime, args []value.Value) (value.Value, error) {
	name, ok := args[0].(*value.String)
	if !ok {
		return value.Err(&value.String{Value: "getenv expects a string name"}), nil
	}
	v, found := os.LookupEnv(name.Value)
	if !found {
		return value.Err(&value.String{Value: "environment variable not set: " + name.Value}), nil
	}
	return value.Ok(&value.String{Value: v}), nil
}

func builtinSetenv(rt value.Runtime, args []value.Value) (value.Value, error) {
	name, ok1 := args[0].(*value.String)
	val, ok2 := args[1].(*value.String)
	if !ok1 || !ok2 {
		return value.Err(&value.String{Value: "setenv expects two strings"}), nil
	}
	if err := os.Setenv(name.Value, val.Value); err != nil {
		return value.Err(&value.String{Value: err.Error()}), nil
	}
	return value.Ok(value.NullValue), nil
}

// builtinSh runs command through the shell and returns a Result
// carrying combined stdout+stderr on success (spec §6's "preferred for
// I/O-shaped operations" guidance).
func builtinSh(rt value.Runtime, args []value.Value) (value.Value, error) {
	cmdStr, ok := args[0].(*value.String)
	if !ok {
		return value.Err(&value.String{Value: "sh expects a command string"}), nil
	}
	cmd := exec.Command("sh", "-c", cmdStr.Value)
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	if err := cmd.Run(); err != nil {
		return value.Err(&value.String{Value: err.Error() + ": " + out.String()}), nil
	}
	return value.Ok(&value.String{Value: out.String()}), nil
}

func builtinExit(rt value.Runtime, args []value.Value) (value.Value, error) {
	n, ok := args[0].(*value.Number)
	code := 0
	if ok {
		code = int(n.AsFloat())
	}
	rt.Exit(code)
	return value.NullValue, nil
}
