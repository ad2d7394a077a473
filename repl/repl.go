// Package repl implements Sol's interactive Read-Eval-Print Loop,
// adapted from the teacher's repl/repl.go: the same readline-driven
// loop, colored output, and panic-recovery boundary per evaluated
// chunk, generalized to Sol's period-terminated, possibly-multi-line
// statement grammar and persistent Environment (spec §5, §9).
package repl

import (
	"bufio"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/hyperswine/sol/debug"
	"github.com/hyperswine/sol/environment"
	"github.com/hyperswine/sol/eval"
	"github.com/hyperswine/sol/lexer"
	"github.com/hyperswine/sol/parser"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl holds the display configuration for an interactive session.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
	Debug   bool // dump each statement's AST before evaluating it
}

// New creates a Repl with Sol's banner, version, and prompt.
func New(debugMode bool) *Repl {
	return &Repl{
		Banner:  banner,
		Version: version,
		Author:  author,
		Line:    strings.Repeat("-", 66),
		License: license,
		Prompt:  "sol >>> ",
		Debug:   debugMode,
	}
}

const (
	version = "v0.1.0"
	author  = "hyperswine"
	license = "MIT"
	banner  = `
   _____       _
  / ____|     | |
 | (___   ___ | |
  \___ \ / _ \| |
  ____) | (_) | |
 |_____/ \___/|_|
`
)

func (r *Repl) printBanner(w io.Writer) {
	blueColor.Fprintf(w, "%s\n", r.Line)
	greenColor.Fprintf(w, "%s\n", r.Banner)
	blueColor.Fprintf(w, "%s\n", r.Line)
	yellowColor.Fprintln(w, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(w, "%s\n", r.Line)
	cyanColor.Fprintf(w, "%s\n", "Welcome to Sol!")
	cyanColor.Fprintf(w, "%s\n", "Type a statement and press enter; a period ends it.")
	cyanColor.Fprintf(w, "%s\n", "Type /exit to quit, /scope to list bound names.")
	blueColor.Fprintf(w, "%s\n", r.Line)
}

// Start runs the loop until EOF, /exit, or a readline error. A shared
// Environment persists across statements (spec §9's supplemented
// REPL behavior); a shared Evaluator carries over the builtin
// registry and the last-evaluated value.
func (r *Repl) Start(in io.Reader, out io.Writer) {
	r.printBanner(out)

	rl, err := readline.NewEx(&readline.Config{Prompt: r.Prompt, Stdin: io.NopCloser(in), Stdout: out})
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	w := bufio.NewWriter(out)
	defer w.Flush()

	ev := eval.New(w, bufio.NewReader(in))
	env := environment.New(nil)

	var pending strings.Builder

	for {
		prompt := r.Prompt
		if pending.Len() > 0 {
			prompt = "...     "
		}
		rl.SetPrompt(prompt)

		line, rerr := rl.Readline()
		if rerr != nil {
			w.WriteString("Good bye!\n")
			w.Flush()
			return
		}

		if pending.Len() == 0 {
			trimmed := strings.TrimSpace(line)
			switch trimmed {
			case "":
				continue
			case "/exit":
				w.WriteString("Good bye!\n")
				w.Flush()
				return
			case "/scope":
				r.printScope(w, env)
				w.Flush()
				continue
			}
		}

		rl.SaveHistory(line)
		pending.WriteString(line)
		pending.WriteByte('\n')

		for {
			cut, ready := scanBoundary(pending.String())
			if !ready {
				break
			}
			stmtSrc := pending.String()[:cut]
			rest := pending.String()[cut:]
			pending.Reset()
			pending.WriteString(rest)

			r.runStatement(w, stmtSrc, ev, env)
			w.Flush()
		}
	}
}

// runStatement lexes, parses, and evaluates one statement, recovering
// from any panic so a single bad statement never kills the session
// (spec §9's line-mode recovery rule, the one deliberate panic/recover
// boundary carried from the teacher's executeWithRecovery).
func (r *Repl) runStatement(w io.Writer, src string, ev *eval.Evaluator, env *environment.Environment) {
	defer func() {
		if rec := recover(); rec != nil {
			redColor.Fprintf(w, "InternalError: %v\n", rec)
		}
	}()

	toks, lerr := lexer.New(src).Tokenize()
	if lerr != nil {
		redColor.Fprintf(w, "%s\n", lerr.Error())
		return
	}
	prog, perr := parser.New(toks).ParseProgram()
	if perr != nil {
		redColor.Fprintf(w, "%s\n", perr.Error())
		return
	}

	for _, stmt := range prog.Statements {
		if r.Debug {
			cyanColor.Fprint(w, debug.DumpExpression(stmt))
		}
		v, eerr := ev.Eval(stmt, env)
		if eerr != nil {
			redColor.Fprintf(w, "%s\n", eerr.Error())
			return
		}
		if _, isExprStmt := stmt.(*parser.ExpressionStatement); isExprStmt {
			yellowColor.Fprintf(w, "%s\n", v.Render())
		}
	}
}

func (r *Repl) printScope(w io.Writer, env *environment.Environment) {
	names := env.Names()
	if len(names) == 0 {
		cyanColor.Fprintln(w, "(empty scope)")
		return
	}
	cyanColor.Fprintln(w, "Bound names:")
	for _, n := range names {
		v, _ := env.Get(n)
		yellowColor.Fprintf(w, "  %s = %s\n", n, v.Inspect())
	}
}
