package eval

import (
	"strconv"

	"github.com/hyperswine/sol/environment"
	"github.com/hyperswine/sol/parser"
	"github.com/hyperswine/sol/solerr"
	"github.com/hyperswine/sol/value"
)

// pathStep is one resolved `|`-path component: its string form (used
// for Dict keys) and, when it names a whole number, its integer form
// (used for 1-based Array indexing). A parenthesised component is
// evaluated once and yields both forms from its result (spec §4.5).
type pathStep struct {
	str    string
	n      int64
	hasInt bool
}

// evalPath resolves a full `base|p1|p2|...` chain (spec §4.5's "path
// access"), stepping into successive Dicts/Arrays.
func (ev *Evaluator) evalPath(p *parser.PathExpression, env *environment.Environment) (value.Value, *solerr.Error) {
	v, err := ev.resolveName(p.Base.Name, p.Base.Line(), env)
	if err != nil {
		return nil, err
	}
	for _, comp := range p.Components {
		step, serr := ev.evalPathComponent(comp, env)
		if serr != nil {
			return nil, serr
		}
		v, serr = stepInto(v, step, p.Line())
		if serr != nil {
			return nil, serr
		}
	}
	return v, nil
}

func (ev *Evaluator) evalPathComponent(comp parser.PathComponent, env *environment.Environment) (pathStep, *solerr.Error) {
	switch comp.Kind {
	case parser.PathIdent:
		return pathStep{str: comp.Name}, nil

	case parser.PathNumber:
		return pathStep{str: strconv.FormatInt(comp.N, 10), n: comp.N, hasInt: true}, nil

	case parser.PathExprComponent:
		v, err := ev.Eval(comp.Expr, env)
		if err != nil {
			return pathStep{}, err
		}
		if n, ok := v.(*value.Number); ok && n.IsInt {
			return pathStep{str: n.Render(), n: n.I, hasInt: true}, nil
		}
		return pathStep{str: v.Render()}, nil
	}
	return pathStep{}, solerr.New(solerr.ParseError, 0, "invalid path component")
}

// stepInto implements spec §4.5's per-kind access rule: string key on
// a Dict, 1-based positive integer on an Array.
func stepInto(container value.Value, step pathStep, line int) (value.Value, *solerr.Error) {
	switch c := container.(type) {
	case *value.Dict:
		v, ok := c.Pairs[step.str]
		if !ok {
			return nil, solerr.New(solerr.KeyError, line, "key %q not found", step.str)
		}
		return v, nil

	case *value.Array:
		if !step.hasInt {
			return nil, solerr.New(solerr.IndexError, line, "array index must be a whole number, got %q", step.str)
		}
		if step.n < 1 || step.n > int64(len(c.Elements)) {
			return nil, solerr.New(solerr.IndexError, line, "array index %d out of range", step.n)
		}
		return c.Elements[step.n-1], nil

	default:
		return nil, solerr.New(solerr.TypeError, line, "cannot path-access into a %s", container.Kind())
	}
}
