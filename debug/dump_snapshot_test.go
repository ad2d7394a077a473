package debug

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/hyperswine/sol/lexer"
	"github.com/hyperswine/sol/parser"
)

// TestDump_Snapshot pins the AST dump's exact tree shape for a program
// exercising every statement kind and most expression kinds (dict
// literals, groups and single-quoted strings are not in it), the way
// CWBudde-go-dws/internal/interp/fixture_test.go uses go-snaps to pin
// interpreter output against a reference fixture.
func TestDump_Snapshot(t *testing.T) {
	src := `nums = [1, 2, 3].
double n = * n 2.
sum = nums |> map double |> fold + 0.
greeting = if sum > 0 then "Hello, {nums|1}!" else "never".
echo greeting.`

	toks, err := lexer.New(src).Tokenize()
	if err != nil {
		t.Fatalf("lex error: %v", err)
	}
	prog, perr := parser.New(toks).ParseProgram()
	if perr != nil {
		t.Fatalf("parse error: %v", perr)
	}

	snaps.MatchSnapshot(t, Dump(prog))
}
