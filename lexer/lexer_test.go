package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func tokenTypes(toks []Token) []TokenType {
	out := make([]TokenType, 0, len(toks))
	for _, t := range toks {
		out = append(out, t.Type)
	}
	return out
}

func TestTokenize_ArithmeticAndPunctuation(t *testing.T) {
	toks, err := New(`myarray = [1, 2, 3].`).Tokenize()
	assert.Nil(t, err)
	assert.Equal(t, []TokenType{
		IDENT, ASSIGN, LBRACKET, NUMBER, COMMA, NUMBER, COMMA, NUMBER, RBRACKET, PERIOD, EOF,
	}, tokenTypes(toks))
}

func TestTokenize_PipeVsPipeline(t *testing.T) {
	toks, err := New(`d|x|1 |> f.`).Tokenize()
	assert.Nil(t, err)
	assert.Equal(t, []TokenType{
		IDENT, BAR, IDENT, BAR, NUMBER, PIPE, IDENT, PERIOD, EOF,
	}, tokenTypes(toks))
}

func TestTokenize_IfThenElse(t *testing.T) {
	toks, err := New(`if x == 1 then "yes" else "no".`).Tokenize()
	assert.Nil(t, err)
	assert.Equal(t, []TokenType{
		IF, IDENT, EQEQ, NUMBER, THEN, STRING_DOUBLE, ELSE, STRING_DOUBLE, PERIOD, EOF,
	}, tokenTypes(toks))
}

func TestTokenize_SingleVsDoubleQuotedStrings(t *testing.T) {
	toks, err := New(`echo 'Hello, {name}!'.`).Tokenize()
	assert.Nil(t, err)
	assert.Equal(t, STRING_SINGLE, toks[1].Type)
	assert.Equal(t, "Hello, {name}!", toks[1].Literal)
}

func TestTokenize_CommentsAreDiscarded(t *testing.T) {
	toks, err := New("x = 1. # trailing comment\ny = 2.").Tokenize()
	assert.Nil(t, err)
	assert.Equal(t, []TokenType{
		IDENT, ASSIGN, NUMBER, PERIOD, IDENT, ASSIGN, NUMBER, PERIOD, EOF,
	}, tokenTypes(toks))
}

func TestTokenize_ShebangIsTreatedAsComment(t *testing.T) {
	toks, err := New("#!/usr/bin/env sol\nx = 1.").Tokenize()
	assert.Nil(t, err)
	assert.Equal(t, []TokenType{IDENT, ASSIGN, NUMBER, PERIOD, EOF}, tokenTypes(toks))
}

func TestTokenize_TrailingApostropheIdentifier(t *testing.T) {
	toks, err := New(`res' = 1.`).Tokenize()
	assert.Nil(t, err)
	assert.Equal(t, IDENT, toks[0].Type)
	assert.Equal(t, "res'", toks[0].Literal)
}

func TestTokenize_DecimalNumberNotConfusedWithPeriod(t *testing.T) {
	toks, err := New(`x = 3.14.`).Tokenize()
	assert.Nil(t, err)
	assert.Equal(t, []TokenType{IDENT, ASSIGN, NUMBER, PERIOD, EOF}, tokenTypes(toks))
	assert.Equal(t, "3.14", toks[2].Literal)
}

func TestTokenize_UnterminatedStringIsLexError(t *testing.T) {
	_, err := New(`x = "oops.`).Tokenize()
	assert.NotNil(t, err)
	assert.Equal(t, 1, err.Line)
}

func TestTokenize_NegativeAdjacency(t *testing.T) {
	toks, err := New(`-5 - 5`).Tokenize()
	assert.Nil(t, err)
	assert.True(t, toks[0].AdjacentTo(toks[1]))
	assert.False(t, toks[2].AdjacentTo(toks[3]))
}
