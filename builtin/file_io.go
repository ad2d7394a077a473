package builtin

import (
	"os"

	"github.com/hyperswine/sol/value"
)

// registerFileIO installs the filesystem builtins grounded in the
// teacher's std/file_io.go, each returning a Result rather than the
// teacher's rendered-error-string convention.
func registerFileIO(r *Registry) {
	r.register(&value.Builtin{Name: "read_file", MinArity: 1, MaxArity: 1, Invoke: builtinReadFile})
	r.register(&value.Builtin{Name: "write_file", MinArity: 2, MaxArity: 2, Invoke: builtinWriteFile})
	r.register(&value.Builtin{Name: "append_file", MinArity: 2, MaxArity: 2, Invoke: builtinAppendFile})
	r.register(&value.Builtin{Name: "file_exists", MinArity: 1, MaxArity: 1, Invoke: builtinFileExists})
}

func fileArg(v value.Value) (string, bool) {
	s, ok := v.(*value.String)
	if !ok {
		return "", false
	}
	return s.Value, true
}

func builtinReadFile(rt value.Runtime, args []value.Value) (value.Value, error) {
	path, ok := fileArg(args[0])
	if !ok {
		return value.Err(&value.String{Value: "read_file expects a path string"}), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return value.Err(&value.String{Value: err.Error()}), nil
	}
	return value.Ok(&value.String{Value: string(data)}), nil
}

func builtinWriteFile(rt value.Runtime, args []value.Value) (value.Value, error) {
	path, ok1 := fileArg(args[0])
	content, ok2 := fileArg(args[1])
	if !ok1 || !ok2 {
		return value.Err(&value.String{Value: "write_file expects (path, content) strings"}), nil
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return value.Err(&value.String{Value: err.Error()}), nil
	}
	return value.Ok(value.NullValue), nil
}

func builtinAppendFile(rt value.Runtime, args []value.Value) (value.Value, error) {
	path, ok1 := fileArg(args[0])
	content, ok2 := fileArg(args[1])
	if !ok1 || !ok2 {
		return value.Err(&value.String{Value: "append_file expects (path, content) strings"}), nil
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return value.Err(&value.String{Value: err.Error()}), nil
	}
	defer f.Close()
	if _, err := f.WriteString(content); err != nil {
		return value.Err(&value.String{Value: err.Error()}), nil
	}
	return value.Ok(value.NullValue), nil
}

func builtinFileExists(rt value.Runtime, args []value.Value) (value.Value, error) {
	path, ok := fileArg(args[0])
	if !ok {
		return value.BoolOf(false), nil
	}
	_, err := os.Stat(path)
	return value.BoolOf(err == nil), nil
}
