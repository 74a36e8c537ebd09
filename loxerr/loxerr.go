/*
File    : go-mix/loxerr/loxerr.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package loxerr defines the diagnostic error taxonomy shared by every stage
// of the Lox pipeline (scan, parse, resolve, evaluate). Every error renders
// the same way regardless of which stage raised it: "KIND (line L at LEXEME)
// MESSAGE". Keeping this in its own leaf package lets the scanner, parser,
// resolver and interpreter all construct the same shape of diagnostic
// without importing each other.
package loxerr

import "fmt"

// Kind identifies which of the taxonomy's error variants a Error carries.
// The interpreter stage also uses TypeError/UndefinedError for runtime
// faults.
type Kind string

const (
	UnexpectedCharacter Kind = "UnexpectedCharacter"
	UnterminatedString  Kind = "UnterminatedString"
	UnexpectedToken     Kind = "UnexpectedToken"
	InvalidAssignment   Kind = "InvalidAssignment"
	AlreadyDeclared     Kind = "AlreadyDeclared"
	ReadInOwnInitializer Kind = "ReadInOwnInitializer"
	TopLevelReturn      Kind = "TopLevelReturn"
	TypeError           Kind = "TypeError"
	UndefinedError      Kind = "UndefinedError"
)

// Error is the single diagnostic type used across every stage of the
// pipeline. Line and Lexeme locate the fault in the source text; Message is
// the human-readable explanation.
type Error struct {
	Kind    Kind
	Line    int
	Lexeme  string
	Message string
}

// New constructs an Error with a fmt.Sprintf-style formatted message.
func New(kind Kind, line int, lexeme string, format string, args ...interface{}) *Error {
	return &Error{
		Kind:    kind,
		Line:    line,
		Lexeme:  lexeme,
		Message: fmt.Sprintf(format, args...),
	}
}

// Error implements the standard error interface. The scanner, parser and
// resolver return *Error directly; the interpreter instead folds this into
// the runtime value channel (see value.Error) to match its error-as-value
// evaluation style.
func (e *Error) Error() string {
	return fmt.Sprintf("%s (line %d at %s) %s", e.Kind, e.Line, e.Lexeme, e.Message)
}
