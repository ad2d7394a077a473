// Package debug prints a Sol AST as an indented tree, wired to the
// driver's --debug flag. Adapted from the teacher's PrintingVisitor
// (main/print_visitor.go): same indent-and-accumulate-into-a-buffer
// shape, generalized from go-mix's visitor-dispatch node set to Sol's
// plain type-switch over parser.Expression.
package debug

import (
	"bytes"
	"fmt"

	"github.com/hyperswine/sol/parser"
)

const indentSize = 2

// Dumper walks an Expression tree and renders it as indented lines,
// one node per line, with line numbers in parentheses.
type Dumper struct {
	indent int
	buf    bytes.Buffer
}

// Dump renders a whole Program, one top-level statement at a time.
func Dump(prog *parser.Program) string {
	d := &Dumper{}
	for _, stmt := range prog.Statements {
		d.write(stmt)
	}
	return d.buf.String()
}

// DumpExpression renders a single Expression, used per statement by
// the --debug flag in file mode and in the REPL.
func DumpExpression(expr parser.Expression) string {
	d := &Dumper{}
	d.write(expr)
	return d.buf.String()
}

func (d *Dumper) line(format string, args ...interface{}) {
	for i := 0; i < d.indent; i++ {
		d.buf.WriteByte(' ')
	}
	fmt.Fprintf(&d.buf, format, args...)
	d.buf.WriteByte('\n')
}

func (d *Dumper) nested(f func()) {
	d.indent += indentSize
	f()
	d.indent -= indentSize
}

func (d *Dumper) write(expr parser.Expression) {
	if expr == nil {
		d.line("<nil>")
		return
	}
	switch n := expr.(type) {
	case *parser.NumberLiteral:
		if n.IsInt {
			d.line("Number[%d] (line %d)", n.I, n.Line())
		} else {
			d.line("Number[%g] (line %d)", n.F, n.Line())
		}

	case *parser.StringLiteral:
		d.line("String[%q] (line %d)", n.Value, n.Line())

	case *parser.InterpolatedString:
		d.line("InterpolatedString (line %d)", n.Line())
		d.nested(func() {
			for _, frag := range n.Fragments {
				if frag.Slot == nil {
					d.line("Text[%q]", frag.Text)
					continue
				}
				d.line("Slot[%s]", frag.Raw)
				d.nested(func() { d.write(frag.Slot) })
			}
		})

	case *parser.Identifier:
		d.line("Identifier[%s] (line %d)", n.Name, n.Line())

	case *parser.OperatorRef:
		d.line("OperatorRef[%s] (line %d)", n.Symbol, n.Line())

	case *parser.ArrayLiteral:
		d.line("Array (line %d)", n.Line())
		d.nested(func() {
			for _, el := range n.Elements {
				d.write(el)
			}
		})

	case *parser.DictLiteral:
		d.line("Dict (line %d)", n.Line())
		d.nested(func() {
			for _, p := range n.Pairs {
				d.line("Key[%s]", p.Key)
				d.nested(func() { d.write(p.Value) })
			}
		})

	case *parser.GroupExpression:
		d.line("Group (line %d)", n.Line())
		d.nested(func() { d.write(n.Inner) })

	case *parser.ApplicationExpression:
		d.line("Application (line %d)", n.Line())
		d.nested(func() {
			d.line("Callee:")
			d.nested(func() { d.write(n.Callee) })
			d.line("Args:")
			d.nested(func() {
				for _, a := range n.Args {
					d.write(a)
				}
			})
		})

	case *parser.PipelineExpression:
		d.line("Pipeline (line %d)", n.Line())
		d.nested(func() {
			for _, s := range n.Stages {
				d.write(s)
			}
		})

	case *parser.IfExpression:
		d.line("If (line %d)", n.Line())
		d.nested(func() {
			d.line("Cond:")
			d.nested(func() { d.write(n.Cond) })
			d.line("Then:")
			d.nested(func() { d.write(n.Then) })
			d.line("Else:")
			d.nested(func() { d.write(n.Else) })
		})

	case *parser.PathExpression:
		d.line("Path (line %d)", n.Line())
		d.nested(func() {
			d.write(n.Base)
			for _, c := range n.Components {
				switch c.Kind {
				case parser.PathIdent:
					d.line("|%s", c.Name)
				case parser.PathNumber:
					d.line("|%d", c.N)
				case parser.PathExprComponent:
					d.line("|(...)")
					d.nested(func() { d.write(c.Expr) })
				}
			}
		})

	case *parser.ValueAssignment:
		d.line("ValueAssignment[%s] (line %d)", n.Name, n.Line())
		d.nested(func() { d.write(n.Value) })

	case *parser.FunctionAssignment:
		d.line("FunctionAssignment[%s %v] (line %d)", n.Name, n.Params, n.Line())
		d.nested(func() { d.write(n.Body) })

	case *parser.ExpressionStatement:
		d.line("ExpressionStatement (line %d)", n.Line())
		d.nested(func() { d.write(n.Expr) })

	default:
		d.line("<unknown node %T> (line %d)", n, n.Line())
	}
}
