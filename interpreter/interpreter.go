/*
File    : go-mix/interpreter/interpreter.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package interpreter tree-walks a resolved statement list and executes
// it. Every Eval/execute method returns a value.Value, the same channel
// ordinary results travel on: a *value.Error propagates a runtime fault
// and a *value.ReturnSignal propagates a function's `return`. Callers check
// value.IsError after every recursive call rather than threading a second Go
// error return through the whole evaluator.
package interpreter

import (
	"fmt"
	"io"
	"time"

	"github.com/akashmaji946/go-mix/ast"
	"github.com/akashmaji946/go-mix/environment"
	"github.com/akashmaji946/go-mix/function"
	"github.com/akashmaji946/go-mix/value"
)

// Interpreter owns the live environment chain and the resolver's
// distance side table, and executes one program (or REPL line) at a time
// against them.
type Interpreter struct {
	Globals   *environment.Environment
	env       *environment.Environment
	distances map[int64]int
	out       io.Writer
}

// New creates an Interpreter with a fresh global environment pre-populated
// with the `clock` native, writing `print` output to out.
func New(out io.Writer) *Interpreter {
	globals := environment.New(nil)
	globals.Define("clock", function.NewNative("clock", 0, func(args []value.Value) value.Value {
		return value.Number{Val: float64(time.Now().UnixNano()) / 1e6}
	}))
	return &Interpreter{
		Globals:   globals,
		env:       globals,
		distances: make(map[int64]int),
		out:       out,
	}
}

// SetDistances installs the resolver's side table for the program about to
// run. Call it once per resolved statement list, before Interpret.
func (it *Interpreter) SetDistances(distances map[int64]int) {
	it.distances = distances
}

// GlobalEnv exposes the global environment for REPL introspection (the
// `.env` pseudo-command).
func (it *Interpreter) GlobalEnv() *environment.Environment {
	return it.Globals
}

// Interpret executes a resolved statement list against the interpreter's
// current environment and returns either value.NilValue on success or the
// first *value.Error encountered. A *value.ReturnSignal escaping to this
// level (a `return` outside any function) is an internal consistency bug,
// since the resolver rejects that case before execution ever starts.
func (it *Interpreter) Interpret(stmts []ast.Stmt) value.Value {
	for _, stmt := range stmts {
		result := it.execute(stmt)
		if value.IsError(result) {
			return result
		}
	}
	return value.NilValue
}

func (it *Interpreter) execute(stmt ast.Stmt) value.Value {
	switch s := stmt.(type) {
	case *ast.Expression:
		return it.discardResult(it.eval(s.Expression))

	case *ast.Print:
		v := it.eval(s.Expression)
		if value.IsError(v) {
			return v
		}
		fmt.Fprintln(it.out, v.String())
		return value.NilValue

	case *ast.Var:
		val := value.Value(value.NilValue)
		if s.Initializer != nil {
			val = it.eval(s.Initializer)
			if value.IsError(val) {
				return val
			}
		}
		it.env.Define(s.Name.Lexeme, val)
		return value.NilValue

	case *ast.Block:
		return it.executeBlock(s.Statements, environment.New(it.env))

	case *ast.If:
		cond := it.eval(s.Condition)
		if value.IsError(cond) {
			return cond
		}
		if value.Truthy(cond) {
			return it.execute(s.Then)
		}
		if s.Else != nil {
			return it.execute(s.Else)
		}
		return value.NilValue

	case *ast.While:
		for {
			cond := it.eval(s.Condition)
			if value.IsError(cond) {
				return cond
			}
			if !value.Truthy(cond) {
				return value.NilValue
			}
			result := it.execute(s.Body)
			if value.IsError(result) || value.IsReturn(result) {
				return result
			}
		}

	case *ast.Function:
		fn := function.New(s.Name.Lexeme, s.Params, s.Body, it.env)
		it.env.Define(s.Name.Lexeme, fn)
		return value.NilValue

	case *ast.Return:
		val := value.Value(value.NilValue)
		if s.Value != nil {
			val = it.eval(s.Value)
			if value.IsError(val) {
				return val
			}
		}
		return &value.ReturnSignal{Val: val}

	case *ast.Null:
		return value.NilValue
	}
	return value.NilValue
}

// executeBlock runs stmts against env, restoring the interpreter's
// previous environment on every exit path — normal completion, an error,
// or a return signal unwinding through it.
func (it *Interpreter) executeBlock(stmts []ast.Stmt, env *environment.Environment) value.Value {
	previous := it.env
	it.env = env
	defer func() { it.env = previous }()

	for _, stmt := range stmts {
		result := it.execute(stmt)
		if value.IsError(result) || value.IsReturn(result) {
			return result
		}
	}
	return value.NilValue
}

func (it *Interpreter) discardResult(v value.Value) value.Value {
	if value.IsError(v) {
		return v
	}
	return value.NilValue
}
