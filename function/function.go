/*
File    : go-mix/function/function.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package function holds the two callable representations Lox values can
// take: UserFunction, a function declared in Lox source, and Native, a
// host-provided builtin. Both satisfy value.Value by implementing Type()
// and String(); this package imports value without value importing back.
//
// Neither type has a Call method. Invocation logic — creating the call
// environment, binding parameters, running the body, invoking the host
// callback — lives entirely in the interpreter package, which type-switches
// on *UserFunction and *Native.
package function

import (
	"fmt"
	"strings"

	"github.com/akashmaji946/go-mix/ast"
	"github.com/akashmaji946/go-mix/environment"
	"github.com/akashmaji946/go-mix/lexer"
	"github.com/akashmaji946/go-mix/value"
)

// UserFunction is a function declared with `fun` in Lox source.
type UserFunction struct {
	Name    string
	Params  []lexer.Token
	Body    []ast.Stmt
	Closure *environment.Environment
}

// New builds a UserFunction, capturing env as its closure — the lexical
// scope active at the point the `fun` statement executed.
func New(name string, params []lexer.Token, body []ast.Stmt, closure *environment.Environment) *UserFunction {
	return &UserFunction{Name: name, Params: params, Body: body, Closure: closure}
}

func (f *UserFunction) Type() value.Type { return value.CallableType }

func (f *UserFunction) String() string {
	return fmt.Sprintf("<fn %s>", f.Name)
}

// Arity is the number of parameters a UserFunction declares.
func (f *UserFunction) Arity() int { return len(f.Params) }

// NativeFn is the signature a host-provided builtin implements.
type NativeFn func(args []value.Value) value.Value

// Native is a builtin implemented in Go and exposed to Lox code under a
// name, with a fixed arity the interpreter checks before calling it.
type Native struct {
	Name     string
	ArityVal int
	Fn       NativeFn
}

// NewNative registers a host function under name with a fixed arity.
func NewNative(name string, arity int, fn NativeFn) *Native {
	return &Native{Name: name, ArityVal: arity, Fn: fn}
}

func (n *Native) Type() value.Type { return value.CallableType }

func (n *Native) String() string {
	return "<native func>"
}

// Arity is the fixed number of arguments this native expects.
func (n *Native) Arity() int { return n.ArityVal }

// ParamNames renders a UserFunction's parameter list for diagnostics, e.g.
// in a REPL's `.env` dump.
func (f *UserFunction) ParamNames() string {
	names := make([]string, len(f.Params))
	for i, p := range f.Params {
		names[i] = p.Lexeme
	}
	return strings.Join(names, ", ")
}
