package eval

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hyperswine/sol/environment"
	"github.com/hyperswine/sol/lexer"
	"github.com/hyperswine/sol/parser"
)

// runProgram evaluates every statement of src against a fresh
// Evaluator and Environment, returning captured stdout, mirroring how
// the driver threads a whole source file through the evaluator (spec
// §6).
func runProgram(t *testing.T, src string) string {
	t.Helper()
	toks, lexErr := lexer.New(src).Tokenize()
	assert.Nil(t, lexErr)
	prog, parseErr := parser.New(toks).ParseProgram()
	assert.Nil(t, parseErr)

	var out bytes.Buffer
	ev := New(&out, bufio.NewReader(strings.NewReader("")))
	env := environment.New(nil)

	for _, stmt := range prog.Statements {
		_, err := ev.Eval(stmt, env)
		assert.Nil(t, err)
	}
	return out.String()
}

func TestScenario1_MapOverArray(t *testing.T) {
	out := runProgram(t, `myarray = [1, 2, 3]. res = map (+ 1) myarray. echo res.`)
	assert.Equal(t, "[2, 3, 4]\n", out)
}

func TestScenario2_ClosureApplication(t *testing.T) {
	out := runProgram(t, `f a b = * a b. echo (f 2 3).`)
	assert.Equal(t, "6\n", out)
}

func TestScenario3_PipelineChain(t *testing.T) {
	out := runProgram(t, `nums = [1, 2, 3, 4, 5]. sum = nums |> map (* 2) |> filter (> 5) |> fold + 0. echo sum.`)
	assert.Equal(t, "24\n", out)
}

func TestScenario4_StringInterpolation(t *testing.T) {
	out := runProgram(t, `name = "World". echo "Hello, {name}!".`)
	assert.Equal(t, "Hello, World!\n", out)

	out = runProgram(t, `name = "World". echo 'Hello, {name}!'.`)
	assert.Equal(t, "Hello, {name}!\n", out)
}

func TestScenario5_IfExpression(t *testing.T) {
	out := runProgram(t, `x = 1. y = if x == 1 then "yes" else "no". echo y.`)
	assert.Equal(t, "yes\n", out)
}

func TestScenario6_NestedPathAccess(t *testing.T) {
	out := runProgram(t, `d = {"x": [1, 2]}. echo d|x|1.`)
	assert.Equal(t, "1\n", out)

	out = runProgram(t, `d = {"x": [1, 2]}. k = "x". echo d|(k)|2.`)
	assert.Equal(t, "2\n", out)
}

func TestPartialApplication_SaturatesAcrossTwoCalls(t *testing.T) {
	out := runProgram(t, `add3 a b c = + a (+ b c). p = add3 1. echo (p 2 3).`)
	assert.Equal(t, "6\n", out)
}

func TestClosure_MutualRecursionViaLateBinding(t *testing.T) {
	out := runProgram(t, `isEven n = if n == 0 then true else isOdd (- n 1). isOdd n = if n == 0 then false else isEven (- n 1). echo (isEven 4).`)
	assert.Equal(t, "true\n", out)
}

func TestIf_OnlyChosenBranchEvaluates(t *testing.T) {
	out := runProgram(t, `x = if true then "ok" else boom_not_defined. echo x.`)
	assert.Equal(t, "ok\n", out)
}

func TestDivideByZero_FailsWithoutCorruptingEnvironment(t *testing.T) {
	toks, _ := lexer.New(`x = / 1 0.`).Tokenize()
	prog, _ := parser.New(toks).ParseProgram()
	var out bytes.Buffer
	ev := New(&out, bufio.NewReader(strings.NewReader("")))
	env := environment.New(nil)

	_, err := ev.Eval(prog.Statements[0], env)
	assert.NotNil(t, err)
	assert.Equal(t, "DivideByZero", string(err.Kind))

	_, ok := env.Get("x")
	assert.False(t, ok)
}

func TestUnboundInterpolationSlotIsLeftAsIs(t *testing.T) {
	out := runProgram(t, `echo "Hello, {nobody}!".`)
	assert.Equal(t, "Hello, {nobody}!\n", out)
}
