package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hyperswine/sol/lexer"
)

func parseOne(t *testing.T, src string) Expression {
	t.Helper()
	toks, lexErr := lexer.New(src).Tokenize()
	assert.Nil(t, lexErr)
	prog, err := New(toks).ParseProgram()
	assert.Nil(t, err)
	assert.Len(t, prog.Statements, 1)
	stmt, ok := prog.Statements[0].(*ExpressionStatement)
	assert.True(t, ok)
	return stmt.Expr
}

func TestParse_SimpleApplication(t *testing.T) {
	expr := parseOne(t, `echo res.`)
	app, ok := expr.(*ApplicationExpression)
	assert.True(t, ok)
	callee, ok := app.Callee.(*Identifier)
	assert.True(t, ok)
	assert.Equal(t, "echo", callee.Name)
	assert.Len(t, app.Args, 1)
}

func TestParse_ValueAssignment(t *testing.T) {
	toks, _ := lexer.New(`x = 1.`).Tokenize()
	prog, err := New(toks).ParseProgram()
	assert.Nil(t, err)
	assign, ok := prog.Statements[0].(*ValueAssignment)
	assert.True(t, ok)
	assert.Equal(t, "x", assign.Name)
}

func TestParse_FunctionAssignmentBindsParams(t *testing.T) {
	toks, _ := lexer.New(`f a b = * a b.`).Tokenize()
	prog, err := New(toks).ParseProgram()
	assert.Nil(t, err)
	fn, ok := prog.Statements[0].(*FunctionAssignment)
	assert.True(t, ok)
	assert.Equal(t, "f", fn.Name)
	assert.Equal(t, []string{"a", "b"}, fn.Params)
}

func TestParse_PipelineIsLeftFolded(t *testing.T) {
	expr := parseOne(t, `nums |> map (* 2) |> filter (> 5).`)
	pipe, ok := expr.(*PipelineExpression)
	assert.True(t, ok)
	assert.Len(t, pipe.Stages, 3)
}

func TestParse_IfBindsLooserThanPipeline(t *testing.T) {
	expr := parseOne(t, `if c then a |> b else d.`)
	ifExpr, ok := expr.(*IfExpression)
	assert.True(t, ok)
	_, ok = ifExpr.Then.(*PipelineExpression)
	assert.True(t, ok, "then-branch must absorb the whole pipeline")
}

func TestParse_PathAccess(t *testing.T) {
	expr := parseOne(t, `d|x|1|(key).`)
	path, ok := expr.(*PathExpression)
	assert.True(t, ok)
	assert.Equal(t, "d", path.Base.Name)
	assert.Len(t, path.Components, 3)
	assert.Equal(t, PathIdent, path.Components[0].Kind)
	assert.Equal(t, PathNumber, path.Components[1].Kind)
	assert.Equal(t, PathExprComponent, path.Components[2].Kind)
}

func TestParse_OperatorAsValueRequiresParens(t *testing.T) {
	expr := parseOne(t, `(+ 1).`)
	group, ok := expr.(*GroupExpression)
	assert.True(t, ok)
	app, ok := group.Inner.(*ApplicationExpression)
	assert.True(t, ok)
	op, ok := app.Callee.(*OperatorRef)
	assert.True(t, ok)
	assert.Equal(t, "+", op.Symbol)
}

func TestParse_NegativeLiteralFoldsAdjacentMinus(t *testing.T) {
	expr := parseOne(t, `-5.`)
	num, ok := expr.(*NumberLiteral)
	assert.True(t, ok)
	assert.True(t, num.IsInt)
	assert.Equal(t, int64(-5), num.I)
}

func TestParse_SpacedMinusIsOperatorRef(t *testing.T) {
	expr := parseOne(t, `f - 1.`)
	app, ok := expr.(*ApplicationExpression)
	assert.True(t, ok)
	assert.Len(t, app.Args, 2)
	op, ok := app.Args[0].(*OperatorRef)
	assert.True(t, ok)
	assert.Equal(t, "-", op.Symbol)
}

func TestParse_ArrayAndDictLiterals(t *testing.T) {
	expr := parseOne(t, `[1, 2, 3].`)
	arr, ok := expr.(*ArrayLiteral)
	assert.True(t, ok)
	assert.Len(t, arr.Elements, 3)

	expr = parseOne(t, `{"x": [1, 2]}.`)
	dict, ok := expr.(*DictLiteral)
	assert.True(t, ok)
	assert.Len(t, dict.Pairs, 1)
	assert.Equal(t, "x", dict.Pairs[0].Key)
}

func TestParse_BarewordDictKey(t *testing.T) {
	expr := parseOne(t, `{x: 1}.`)
	dict, ok := expr.(*DictLiteral)
	assert.True(t, ok)
	assert.Equal(t, "x", dict.Pairs[0].Key)
}

func TestParse_InterpolatedStringWithPathSlot(t *testing.T) {
	expr := parseOne(t, `"Hello, {name}!".`)
	str, ok := expr.(*InterpolatedString)
	assert.True(t, ok)
	assert.Len(t, str.Fragments, 3)
	assert.Equal(t, "Hello, ", str.Fragments[0].Text)
	assert.NotNil(t, str.Fragments[1].Slot)
	assert.Equal(t, "name", str.Fragments[1].Slot.Base.Name)
	assert.Equal(t, "!", str.Fragments[2].Text)
}

func TestParse_InterpolatedStringRejectsNestedBraces(t *testing.T) {
	toks, _ := lexer.New(`"{a{b}}".`).Tokenize()
	_, err := New(toks).ParseProgram()
	assert.NotNil(t, err)
}

func TestParse_SingleQuotedStringHasNoSlots(t *testing.T) {
	expr := parseOne(t, `'Hello, {name}!'.`)
	str, ok := expr.(*StringLiteral)
	assert.True(t, ok)
	assert.Equal(t, "Hello, {name}!", str.Value)
}

func TestParse_ComparisonIsInfixInNonLeadingPosition(t *testing.T) {
	expr := parseOne(t, `x == 1.`)
	app, ok := expr.(*ApplicationExpression)
	assert.True(t, ok)
	op, ok := app.Callee.(*OperatorRef)
	assert.True(t, ok)
	assert.Equal(t, "==", op.Symbol)
	assert.Len(t, app.Args, 2)
	ident, ok := app.Args[0].(*Identifier)
	assert.True(t, ok)
	assert.Equal(t, "x", ident.Name)
	num, ok := app.Args[1].(*NumberLiteral)
	assert.True(t, ok)
	assert.True(t, num.IsInt)
	assert.Equal(t, int64(1), num.I)
}

func TestParse_BareOperatorStillWorksAsPrefixArgument(t *testing.T) {
	expr := parseOne(t, `fold + 0.`)
	app, ok := expr.(*ApplicationExpression)
	assert.True(t, ok)
	callee, ok := app.Callee.(*Identifier)
	assert.True(t, ok)
	assert.Equal(t, "fold", callee.Name)
	assert.Len(t, app.Args, 2)
	op, ok := app.Args[0].(*OperatorRef)
	assert.True(t, ok)
	assert.Equal(t, "+", op.Symbol)
}
