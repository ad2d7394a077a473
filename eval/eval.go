package eval

import (
	"github.com/hyperswine/sol/closure"
	"github.com/hyperswine/sol/environment"
	"github.com/hyperswine/sol/parser"
	"github.com/hyperswine/sol/solerr"
	"github.com/hyperswine/sol/value"
)

// Eval walks expr against env, implementing every rule of spec §4.5.
func (ev *Evaluator) Eval(expr parser.Expression, env *environment.Environment) (value.Value, *solerr.Error) {
	switch e := expr.(type) {

	case *parser.ExpressionStatement:
		v, err := ev.Eval(e.Expr, env)
		if err != nil {
			return nil, err
		}
		ev.Last = v
		return v, nil

	case *parser.ValueAssignment:
		v, err := ev.Eval(e.Value, env)
		if err != nil {
			return nil, err
		}
		env.Bind(e.Name, v)
		ev.Last = v
		return v, nil

	case *parser.FunctionAssignment:
		c := closure.New(e.Params, e.Body, env)
		env.Bind(e.Name, c)
		ev.Last = c
		return c, nil

	case *parser.NumberLiteral:
		if e.IsInt {
			return value.Int(e.I), nil
		}
		return value.Float(e.F), nil

	case *parser.StringLiteral:
		return &value.String{Value: e.Value}, nil

	case *parser.InterpolatedString:
		return ev.evalInterpolated(e, env)

	case *parser.ArrayLiteral:
		elems := make([]value.Value, len(e.Elements))
		for i, el := range e.Elements {
			v, err := ev.Eval(el, env)
			if err != nil {
				return nil, err
			}
			elems[i] = v
		}
		return &value.Array{Elements: elems}, nil

	case *parser.DictLiteral:
		d := value.NewDict()
		for _, pair := range e.Pairs {
			v, err := ev.Eval(pair.Value, env)
			if err != nil {
				return nil, err
			}
			d = d.Set(pair.Key, v)
		}
		return d, nil

	case *parser.Identifier:
		return ev.resolveName(e.Name, e.Line(), env)

	case *parser.OperatorRef:
		return ev.resolveName(e.Symbol, e.Line(), env)

	case *parser.PathExpression:
		return ev.evalPath(e, env)

	case *parser.GroupExpression:
		return ev.Eval(e.Inner, env)

	case *parser.ApplicationExpression:
		return ev.evalApplication(e, env)

	case *parser.PipelineExpression:
		return ev.evalPipeline(e, env)

	case *parser.IfExpression:
		return ev.evalIf(e, env)
	}

	return nil, solerr.New(solerr.ParseError, expr.Line(), "internal: unhandled expression node %T", expr)
}

func (ev *Evaluator) evalApplication(app *parser.ApplicationExpression, env *environment.Environment) (value.Value, *solerr.Error) {
	callee, err := ev.Eval(app.Callee, env)
	if err != nil {
		return nil, err
	}
	args := make([]value.Value, len(app.Args))
	for i, a := range app.Args {
		v, err := ev.Eval(a, env)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	return ev.Apply(callee, args, app.Line())
}

func (ev *Evaluator) evalIf(e *parser.IfExpression, env *environment.Environment) (value.Value, *solerr.Error) {
	cond, err := ev.Eval(e.Cond, env)
	if err != nil {
		return nil, err
	}
	if value.Truthy(cond) {
		return ev.Eval(e.Then, env)
	}
	return ev.Eval(e.Else, env)
}

// evalPipeline implements the left-fold rewrite of spec §4.5: each
// stage after the first is an application whose argument list gets the
// running value prepended, and a bare callee with no arguments is
// treated as an application of zero extra arguments.
func (ev *Evaluator) evalPipeline(p *parser.PipelineExpression, env *environment.Environment) (value.Value, *solerr.Error) {
	v, err := ev.Eval(p.Stages[0], env)
	if err != nil {
		return nil, err
	}

	for _, stage := range p.Stages[1:] {
		var calleeExpr parser.Expression
		var argExprs []parser.Expression
		if app, ok := stage.(*parser.ApplicationExpression); ok {
			calleeExpr = app.Callee
			argExprs = app.Args
		} else {
			calleeExpr = stage
		}

		callee, cerr := ev.Eval(calleeExpr, env)
		if cerr != nil {
			return nil, cerr
		}

		args := make([]value.Value, 0, len(argExprs)+1)
		args = append(args, v)
		for _, a := range argExprs {
			av, aerr := ev.Eval(a, env)
			if aerr != nil {
				return nil, aerr
			}
			args = append(args, av)
		}

		v, err = ev.Apply(callee, args, stage.Line())
		if err != nil {
			return nil, err
		}
	}
	return v, nil
}
