package debug

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hyperswine/sol/lexer"
	"github.com/hyperswine/sol/parser"
)

func TestDump_ContainsEveryStatementKind(t *testing.T) {
	toks, err := lexer.New(`x = 1. f a = + a 1. echo (f x).`).Tokenize()
	assert.Nil(t, err)
	prog, perr := parser.New(toks).ParseProgram()
	assert.Nil(t, perr)

	out := Dump(prog)
	assert.True(t, strings.Contains(out, "ValueAssignment[x]"))
	assert.True(t, strings.Contains(out, "FunctionAssignment[f [a]]"))
	assert.True(t, strings.Contains(out, "ExpressionStatement"))
	assert.True(t, strings.Contains(out, "Application"))
}

func TestDumpExpression_SingleNode(t *testing.T) {
	toks, err := lexer.New(`1.`).Tokenize()
	assert.Nil(t, err)
	prog, perr := parser.New(toks).ParseProgram()
	assert.Nil(t, perr)

	out := DumpExpression(prog.Statements[0])
	assert.True(t, strings.Contains(out, "ExpressionStatement"))
	assert.True(t, strings.Contains(out, "Number[1]"))
}
