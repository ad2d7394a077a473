package eval

import (
	"github.com/hyperswine/sol/closure"
	"github.com/hyperswine/sol/environment"
	"github.com/hyperswine/sol/solerr"
	"github.com/hyperswine/sol/value"
)

// Apply implements spec §4.5's application rule for every callable
// kind: Closure (exact/partial/curried-through-result), Builtin
// (arity-range dispatch), Partial (prefix + new args, re-dispatched),
// and any other value applied with zero arguments (returned as-is, so
// `f = myvalue.` reads back `myvalue`).
func (ev *Evaluator) Apply(callee value.Value, args []value.Value, line int) (value.Value, *solerr.Error) {
	switch c := callee.(type) {
	case *closure.Closure:
		return ev.applyClosure(c, args, line)

	case *value.Builtin:
		return ev.applyBuiltin(c, args, line)

	case *value.Partial:
		// New arguments fill the leading parameter slots and the
		// stored prefix trails them (right-section semantics: "(> 5)"
		// applied to x means "x > 5", not "5 > x") — see DESIGN.md for
		// why this reading was chosen over a literal prefix-then-new
		// ordering.
		combined := make([]value.Value, 0, len(c.Prefix)+len(args))
		combined = append(combined, args...)
		combined = append(combined, c.Prefix...)
		return ev.Apply(c.Callee, combined, line)

	default:
		if len(args) == 0 {
			return callee, nil
		}
		return nil, solerr.New(solerr.TypeError, line, "%s is not callable", callee.Kind())
	}
}

func (ev *Evaluator) applyClosure(c *closure.Closure, args []value.Value, line int) (value.Value, *solerr.Error) {
	n := c.Arity()
	k := len(args)

	switch {
	case k == n:
		child := environment.New(c.Env)
		for i, p := range c.Params {
			child.Bind(p, args[i])
		}
		return ev.Eval(c.Body, child)

	case k < n:
		return &value.Partial{Callee: c, Prefix: append([]value.Value{}, args...)}, nil

	default: // k > n: call on the first n, curry the rest onto the result
		result, err := ev.applyClosure(c, args[:n], line)
		if err != nil {
			return nil, err
		}
		return ev.Apply(result, args[n:], line)
	}
}

// applyBuiltin dispatches by the declared arity range [MinArity,
// MaxArity] (spec §4.5, §9). Builtins have no analogue of the
// Closure's "curry the extra arguments onto the returned value" rule:
// supplying more than MaxArity is an ArityError.
func (ev *Evaluator) applyBuiltin(b *value.Builtin, args []value.Value, line int) (value.Value, *solerr.Error) {
	k := len(args)

	if k < b.MinArity {
		return &value.Partial{Callee: b, Prefix: append([]value.Value{}, args...)}, nil
	}
	if b.MaxArity != -1 && k > b.MaxArity {
		return nil, solerr.New(solerr.ArityError, line, "%q takes at most %d argument(s), got %d", b.Name, b.MaxArity, k)
	}

	v, err := b.Invoke(ev, args)
	if err != nil {
		if se, ok := err.(*solerr.Error); ok {
			if se.Line == 0 {
				se.Line = line
			}
			return nil, se
		}
		return nil, solerr.New(solerr.TypeError, line, "%s", err.Error())
	}
	return v, nil
}
