// Package solerr defines the evaluator-fatal error kind used across the
// lexer, parser, and evaluator. These are distinct from Sol's Result
// value (see package value): an *Error aborts the current statement
// (REPL) or the whole process (file mode), while a Result is an
// ordinary, inert value that user code inspects explicitly.
package solerr

import "fmt"

// Kind identifies the category of a Sol failure. The set is fixed by
// spec §7; the evaluator never invents new kinds at runtime.
type Kind string

const (
	NameError    Kind = "NameError"
	TypeError    Kind = "TypeError"
	ArityError   Kind = "ArityError"
	KeyError     Kind = "KeyError"
	IndexError   Kind = "IndexError"
	DivideByZero Kind = "DivideByZero"
	LexError     Kind = "LexError"
	ParseError   Kind = "ParseError"
)

// Error is a single lexical, syntactic, or evaluation failure, tagged
// with the line on which it occurred so the driver can report it the
// way a human would point at the source.
type Error struct {
	Kind    Kind
	Message string
	Line    int
}

// New builds an Error from a Kind, a line, and a printf-style message.
func New(kind Kind, line int, format string, a ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, a...), Line: line}
}

// Error implements the standard error interface with the wire format
// the driver prints verbatim: "<Kind>: <message> (line <L>)".
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s (line %d)", e.Kind, e.Message, e.Line)
}
