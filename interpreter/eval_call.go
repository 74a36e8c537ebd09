/*
File    : go-mix/interpreter/eval_call.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package interpreter

import (
	"github.com/akashmaji946/go-mix/ast"
	"github.com/akashmaji946/go-mix/environment"
	"github.com/akashmaji946/go-mix/function"
	"github.com/akashmaji946/go-mix/loxerr"
	"github.com/akashmaji946/go-mix/value"
)

func (it *Interpreter) evalCall(e *ast.Call) value.Value {
	callee := it.eval(e.Callee)
	if value.IsError(callee) {
		return callee
	}

	args := make([]value.Value, 0, len(e.Args))
	for _, argExpr := range e.Args {
		arg := it.eval(argExpr)
		if value.IsError(arg) {
			return arg
		}
		args = append(args, arg)
	}

	switch fn := callee.(type) {
	case *function.Native:
		if len(args) != fn.Arity() {
			return arityError(e, fn.Arity(), len(args))
		}
		return fn.Fn(args)

	case *function.UserFunction:
		if len(args) != fn.Arity() {
			return arityError(e, fn.Arity(), len(args))
		}
		return it.callUserFunction(fn, args)

	default:
		return value.NewError(loxerr.TypeError, e.Paren.Line, e.Paren.Lexeme, "Can only call functions and classes.")
	}
}

func arityError(e *ast.Call, want, got int) *value.Error {
	return value.NewError(loxerr.TypeError, e.Paren.Line, e.Paren.Lexeme,
		"Expected %d arguments but got %d.", want, got)
}

// callUserFunction runs fn's body in a fresh environment chained to its
// closure — never to the caller's environment, which is what makes the
// function's free variables resolve lexically instead of dynamically.
func (it *Interpreter) callUserFunction(fn *function.UserFunction, args []value.Value) value.Value {
	callEnv := environment.New(fn.Closure)
	for i, param := range fn.Params {
		callEnv.Define(param.Lexeme, args[i])
	}

	result := it.executeBlock(fn.Body, callEnv)
	if value.IsError(result) {
		return result
	}
	if ret, ok := result.(*value.ReturnSignal); ok {
		return ret.Val
	}
	return value.NilValue
}
