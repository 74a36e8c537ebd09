/*
File    : go-mix/parser/expr.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/go-mix/ast"
	"github.com/akashmaji946/go-mix/lexer"
	"github.com/akashmaji946/go-mix/loxerr"
)

func (p *Parser) expression() (ast.Expr, *loxerr.Error) {
	return p.assignment()
}

// assignment parses the left side as a general expression first, then — if
// an `=` follows — requires that left side to be a Variable and rewrites
// the pair into an Assign node. Any other left side is a parse error at the
// `=` token; the already-parsed left expression is simply discarded.
func (p *Parser) assignment() (ast.Expr, *loxerr.Error) {
	expr, err := p.or()
	if err != nil {
		return nil, err
	}

	if p.match(lexer.EQUAL) {
		equals := p.previous()
		value, err := p.assignment()
		if err != nil {
			return nil, err
		}

		if variable, ok := expr.(*ast.Variable); ok {
			return ast.NewAssign(variable.Name, value), nil
		}
		return nil, loxerr.New(loxerr.InvalidAssignment, equals.Line, equals.Lexeme, "Invalid assignment target.")
	}

	return expr, nil
}

func (p *Parser) or() (ast.Expr, *loxerr.Error) {
	expr, err := p.and()
	if err != nil {
		return nil, err
	}
	for p.match(lexer.OR) {
		operator := p.previous()
		right, err := p.and()
		if err != nil {
			return nil, err
		}
		expr = ast.NewLogical(expr, operator, right)
	}
	return expr, nil
}

func (p *Parser) and() (ast.Expr, *loxerr.Error) {
	expr, err := p.equality()
	if err != nil {
		return nil, err
	}
	for p.match(lexer.AND) {
		operator := p.previous()
		right, err := p.equality()
		if err != nil {
			return nil, err
		}
		expr = ast.NewLogical(expr, operator, right)
	}
	return expr, nil
}

func (p *Parser) equality() (ast.Expr, *loxerr.Error) {
	expr, err := p.comparison()
	if err != nil {
		return nil, err
	}
	for p.match(lexer.BANG_EQUAL, lexer.EQUAL_EQUAL) {
		operator := p.previous()
		right, err := p.comparison()
		if err != nil {
			return nil, err
		}
		expr = ast.NewBinary(expr, operator, right)
	}
	return expr, nil
}

func (p *Parser) comparison() (ast.Expr, *loxerr.Error) {
	expr, err := p.term()
	if err != nil {
		return nil, err
	}
	for p.match(lexer.GREATER, lexer.GREATER_EQUAL, lexer.LESS, lexer.LESS_EQUAL) {
		operator := p.previous()
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		expr = ast.NewBinary(expr, operator, right)
	}
	return expr, nil
}

func (p *Parser) term() (ast.Expr, *loxerr.Error) {
	expr, err := p.factor()
	if err != nil {
		return nil, err
	}
	for p.match(lexer.MINUS, lexer.PLUS) {
		operator := p.previous()
		right, err := p.factor()
		if err != nil {
			return nil, err
		}
		expr = ast.NewBinary(expr, operator, right)
	}
	return expr, nil
}

func (p *Parser) factor() (ast.Expr, *loxerr.Error) {
	expr, err := p.unary()
	if err != nil {
		return nil, err
	}
	for p.match(lexer.SLASH, lexer.STAR) {
		operator := p.previous()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		expr = ast.NewBinary(expr, operator, right)
	}
	return expr, nil
}

func (p *Parser) unary() (ast.Expr, *loxerr.Error) {
	if p.match(lexer.BANG, lexer.MINUS) {
		operator := p.previous()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		return ast.NewUnary(operator, right), nil
	}
	return p.call()
}

// call parses a primary expression followed by zero or more trailing `(`
// argument lists, so calls chain: `f()()`.
func (p *Parser) call() (ast.Expr, *loxerr.Error) {
	expr, err := p.primary()
	if err != nil {
		return nil, err
	}

	for {
		if p.match(lexer.LEFT_PAREN) {
			expr, err = p.finishCall(expr)
			if err != nil {
				return nil, err
			}
			continue
		}
		break
	}

	return expr, nil
}

func (p *Parser) finishCall(callee ast.Expr) (ast.Expr, *loxerr.Error) {
	args := make([]ast.Expr, 0)
	if !p.check(lexer.RIGHT_PAREN) {
		for {
			arg, err := p.expression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if !p.match(lexer.COMMA) {
				break
			}
		}
	}

	paren, err := p.consume(lexer.RIGHT_PAREN, "Expect ')' after arguments.")
	if err != nil {
		return nil, err
	}

	return ast.NewCall(callee, paren, args), nil
}

func (p *Parser) primary() (ast.Expr, *loxerr.Error) {
	switch {
	case p.match(lexer.FALSE):
		return ast.NewLiteral(ast.LiteralValue{IsBool: true, Bool: false}), nil
	case p.match(lexer.TRUE):
		return ast.NewLiteral(ast.LiteralValue{IsBool: true, Bool: true}), nil
	case p.match(lexer.NIL):
		return ast.NewLiteral(ast.LiteralValue{IsNil: true}), nil
	case p.match(lexer.NUMBER):
		lit := p.previous().Literal
		return ast.NewLiteral(ast.LiteralValue{IsNumber: true, Number: lit.Number}), nil
	case p.match(lexer.STRING):
		lit := p.previous().Literal
		return ast.NewLiteral(ast.LiteralValue{IsString: true, Str: lit.Str}), nil
	case p.match(lexer.IDENTIFIER):
		return ast.NewVariable(p.previous()), nil
	case p.match(lexer.LEFT_PAREN):
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(lexer.RIGHT_PAREN, "Expect ')' after expression."); err != nil {
			return nil, err
		}
		return ast.NewGrouping(expr), nil
	}

	tok := p.peek()
	return nil, loxerr.New(loxerr.UnexpectedToken, tok.Line, tok.Lexeme, "Expect expression.")
}
