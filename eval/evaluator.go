// Package eval implements Sol's tree-walking evaluator (spec §4.5): a
// recursive eval(expr, env) -> Value together with the application,
// pipeline, if-expression, path-access, and assignment rules. Unlike
// the teacher, which signals failure by panicking with an Error value
// and recovering at the REPL/driver boundary, every recursive step
// here returns (value.Value, *solerr.Error) explicitly; panic/recover
// is reserved for the driver's outermost safety net (package repl,
// package cmd/sol) against genuine programmer bugs, not routine
// evaluation failures.
package eval

import (
	"bufio"
	"io"
	"os"

	"github.com/hyperswine/sol/builtin"
	"github.com/hyperswine/sol/environment"
	"github.com/hyperswine/sol/solerr"
	"github.com/hyperswine/sol/value"
)

// Evaluator holds the process-wide state Eval needs beyond the
// Expression/Environment pair: the builtin registry, I/O streams
// builtins read/write through, and the last evaluated value (spec
// §4.5's "return values", surfaced by the REPL).
type Evaluator struct {
	Registry *builtin.Registry
	Out      io.Writer
	In       *bufio.Reader
	Last     value.Value
	ExitFunc func(code int)
}

// New builds an Evaluator wired to out/in and a fresh Builtin Registry.
func New(out io.Writer, in *bufio.Reader) *Evaluator {
	return &Evaluator{
		Registry: builtin.NewRegistry(),
		Out:      out,
		In:       in,
		Last:     value.NullValue,
		ExitFunc: os.Exit,
	}
}

// Evaluator implements value.Runtime so builtins (map, filter, fold,
// unwrap_or_exit) can call back into application and I/O.
var _ value.Runtime = (*Evaluator)(nil)

func (ev *Evaluator) Call(callee value.Value, args []value.Value) (value.Value, error) {
	v, err := ev.Apply(callee, args, 0)
	if err != nil {
		return v, err
	}
	return v, nil
}

func (ev *Evaluator) Stdout() io.Writer      { return ev.Out }
func (ev *Evaluator) Stdin() *bufio.Reader   { return ev.In }

// Exit flushes standard output, if Out is flushable, before handing
// off to ExitFunc (spec §5: "halt the process... after flushing
// standard output").
func (ev *Evaluator) Exit(code int) {
	if f, ok := ev.Out.(interface{ Flush() error }); ok {
		f.Flush()
	}
	ev.ExitFunc(code)
}

func (ev *Evaluator) resolveName(name string, line int, env *environment.Environment) (value.Value, *solerr.Error) {
	if v, ok := env.Get(name); ok {
		return v, nil
	}
	if b, ok := ev.Registry.Lookup(name); ok {
		return b, nil
	}
	switch name {
	case "true":
		return value.True, nil
	case "false":
		return value.False, nil
	}
	return nil, solerr.New(solerr.NameError, line, "undefined name %q", name)
}

// isBound reports whether name resolves in env or the registry,
// without producing a NameError — used by f-string slot evaluation to
// decide whether to evaluate a slot or leave it as literal text.
func (ev *Evaluator) isBound(name string, env *environment.Environment) bool {
	if _, ok := env.Get(name); ok {
		return true
	}
	_, ok := ev.Registry.Lookup(name)
	return ok
}
