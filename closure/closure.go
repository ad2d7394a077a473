// Package closure defines Sol's user-defined callable value. It is
// kept separate from package value and package environment to avoid
// the import cycle those two would otherwise form with it: a Closure
// holds an *environment.Environment, and an Environment stores
// value.Values. Closure satisfies value.Value structurally, the same
// way the teacher codebase splits function/objects/scope for the
// identical reason.
package closure

import (
	"fmt"
	"strings"

	"github.com/hyperswine/sol/environment"
	"github.com/hyperswine/sol/parser"
	"github.com/hyperswine/sol/value"
)

// Closure is a user-defined function: a parameter list, a body
// expression, and the environment captured by reference at definition
// time (spec §3, §4.3). Because Env is held by reference rather than
// copied, bindings added to that environment after the closure is
// created (e.g. sibling helpers defined later in the same REPL scope)
// are still visible when the closure is eventually called.
type Closure struct {
	Params []string
	Body   parser.Expression
	Env    *environment.Environment
}

func New(params []string, body parser.Expression, env *environment.Environment) *Closure {
	return &Closure{Params: params, Body: body, Env: env}
}

func (c *Closure) Kind() value.Kind { return value.ClosureKind }

func (c *Closure) Render() string {
	return fmt.Sprintf("closure(%s)", strings.Join(c.Params, ", "))
}

func (c *Closure) Inspect() string {
	return fmt.Sprintf("<%s>", c.Render())
}

// Arity is the declared parameter count used by the evaluator's
// partial-application rule (spec §4.5).
func (c *Closure) Arity() int { return len(c.Params) }
