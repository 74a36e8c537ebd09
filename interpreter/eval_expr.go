/*
File    : go-mix/interpreter/eval_expr.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package interpreter

import (
	"github.com/akashmaji946/go-mix/ast"
	"github.com/akashmaji946/go-mix/environment"
	"github.com/akashmaji946/go-mix/lexer"
	"github.com/akashmaji946/go-mix/loxerr"
	"github.com/akashmaji946/go-mix/value"
)

func (it *Interpreter) eval(expr ast.Expr) value.Value {
	switch e := expr.(type) {
	case *ast.Literal:
		return literalValue(e.Value)

	case *ast.Grouping:
		return it.eval(e.Expression)

	case *ast.Unary:
		return it.evalUnary(e)

	case *ast.Binary:
		return it.evalBinary(e)

	case *ast.Logical:
		return it.evalLogical(e)

	case *ast.Variable:
		return it.lookupVariable(e.Name, e)

	case *ast.Assign:
		return it.evalAssign(e)

	case *ast.Call:
		return it.evalCall(e)
	}
	return value.NilValue
}

func literalValue(lv ast.LiteralValue) value.Value {
	switch {
	case lv.IsNil:
		return value.NilValue
	case lv.IsBool:
		return value.Bool(lv.Bool)
	case lv.IsNumber:
		return value.Number{Val: lv.Number}
	case lv.IsString:
		return value.String{Val: lv.Str}
	}
	return value.NilValue
}

func (it *Interpreter) evalUnary(e *ast.Unary) value.Value {
	right := it.eval(e.Right)
	if value.IsError(right) {
		return right
	}

	switch e.Operator.Type {
	case lexer.MINUS:
		num, ok := right.(value.Number)
		if !ok {
			return value.NewError(loxerr.TypeError, e.Operator.Line, e.Operator.Lexeme, "Operand must be a number.")
		}
		return value.Number{Val: -num.Val}
	case lexer.BANG:
		return value.Bool(!value.Truthy(right))
	}
	return value.NilValue
}

func (it *Interpreter) evalBinary(e *ast.Binary) value.Value {
	left := it.eval(e.Left)
	if value.IsError(left) {
		return left
	}
	right := it.eval(e.Right)
	if value.IsError(right) {
		return right
	}
	op := e.Operator

	switch op.Type {
	case lexer.EQUAL_EQUAL:
		return value.Bool(value.Equal(left, right))
	case lexer.BANG_EQUAL:
		return value.Bool(!value.Equal(left, right))
	case lexer.PLUS:
		if ln, ok := left.(value.Number); ok {
			if rn, ok := right.(value.Number); ok {
				return value.Number{Val: ln.Val + rn.Val}
			}
		}
		if ls, ok := left.(value.String); ok {
			if rs, ok := right.(value.String); ok {
				return value.String{Val: ls.Val + rs.Val}
			}
		}
		return value.NewError(loxerr.TypeError, op.Line, op.Lexeme, "Operands must be two numbers or two strings.")
	}

	ln, lok := left.(value.Number)
	rn, rok := right.(value.Number)
	if !lok || !rok {
		return value.NewError(loxerr.TypeError, op.Line, op.Lexeme, "Operand must be a number.")
	}

	switch op.Type {
	case lexer.MINUS:
		return value.Number{Val: ln.Val - rn.Val}
	case lexer.STAR:
		return value.Number{Val: ln.Val * rn.Val}
	case lexer.SLASH:
		// Division by zero produces IEEE-754 Inf/NaN, not a runtime error.
		return value.Number{Val: ln.Val / rn.Val}
	case lexer.GREATER:
		return value.Bool(ln.Val > rn.Val)
	case lexer.GREATER_EQUAL:
		return value.Bool(ln.Val >= rn.Val)
	case lexer.LESS:
		return value.Bool(ln.Val < rn.Val)
	case lexer.LESS_EQUAL:
		return value.Bool(ln.Val <= rn.Val)
	}
	return value.NilValue
}

func (it *Interpreter) evalLogical(e *ast.Logical) value.Value {
	left := it.eval(e.Left)
	if value.IsError(left) {
		return left
	}

	if e.Operator.Type == lexer.OR {
		if value.Truthy(left) {
			return left
		}
	} else {
		if !value.Truthy(left) {
			return left
		}
	}
	return it.eval(e.Right)
}

func (it *Interpreter) lookupVariable(name lexer.Token, node ast.Expr) value.Value {
	if distance, ok := it.distances[node.ID()]; ok {
		if v, ok := it.env.GetAt(distance, name.Lexeme); ok {
			return v
		}
		return environment.Undefined(name.Lexeme, name.Line)
	}
	if v, ok := it.Globals.Get(name.Lexeme); ok {
		return v
	}
	return environment.Undefined(name.Lexeme, name.Line)
}

func (it *Interpreter) evalAssign(e *ast.Assign) value.Value {
	val := it.eval(e.Value)
	if value.IsError(val) {
		return val
	}

	if distance, ok := it.distances[e.ID()]; ok {
		it.env.AssignAt(distance, e.Name.Lexeme, val)
		return val
	}
	if it.Globals.Assign(e.Name.Lexeme, val) {
		return val
	}
	return environment.Undefined(e.Name.Lexeme, e.Name.Line)
}
