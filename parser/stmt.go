/*
File    : go-mix/parser/stmt.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/go-mix/ast"
	"github.com/akashmaji946/go-mix/lexer"
	"github.com/akashmaji946/go-mix/loxerr"
)

func (p *Parser) declaration() (ast.Stmt, *loxerr.Error) {
	if p.match(lexer.VAR) {
		return p.varDeclaration()
	}
	if p.match(lexer.FUN) {
		return p.functionDeclaration()
	}
	return p.statement()
}

func (p *Parser) varDeclaration() (ast.Stmt, *loxerr.Error) {
	name, err := p.consume(lexer.IDENTIFIER, "Expect variable name.")
	if err != nil {
		return nil, err
	}

	var initializer ast.Expr
	if p.match(lexer.EQUAL) {
		initializer, err = p.expression()
		if err != nil {
			return nil, err
		}
	}

	if _, err := p.consume(lexer.SEMICOLON, "Expect ';' after variable declaration."); err != nil {
		return nil, err
	}
	return &ast.Var{Name: name, Initializer: initializer}, nil
}

func (p *Parser) functionDeclaration() (ast.Stmt, *loxerr.Error) {
	name, err := p.consume(lexer.IDENTIFIER, "Expect function name.")
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.LEFT_PAREN, "Expect '(' after function name."); err != nil {
		return nil, err
	}

	params := make([]lexer.Token, 0)
	if !p.check(lexer.RIGHT_PAREN) {
		for {
			param, err := p.consume(lexer.IDENTIFIER, "Expect parameter name.")
			if err != nil {
				return nil, err
			}
			params = append(params, param)
			if !p.match(lexer.COMMA) {
				break
			}
		}
	}
	if _, err := p.consume(lexer.RIGHT_PAREN, "Expect ')' after parameters."); err != nil {
		return nil, err
	}

	if _, err := p.consume(lexer.LEFT_BRACE, "Expect '{' before function body."); err != nil {
		return nil, err
	}
	body, err := p.block()
	if err != nil {
		return nil, err
	}

	return &ast.Function{Name: name, Params: params, Body: body}, nil
}

func (p *Parser) statement() (ast.Stmt, *loxerr.Error) {
	switch {
	case p.match(lexer.LEFT_BRACE):
		stmts, err := p.block()
		if err != nil {
			return nil, err
		}
		return &ast.Block{Statements: stmts}, nil
	case p.match(lexer.IF):
		return p.ifStatement()
	case p.match(lexer.WHILE):
		return p.whileStatement()
	case p.match(lexer.FOR):
		return p.forStatement()
	case p.match(lexer.PRINT):
		return p.printStatement()
	case p.match(lexer.RETURN):
		return p.returnStatement()
	default:
		return p.expressionStatement()
	}
}

func (p *Parser) block() ([]ast.Stmt, *loxerr.Error) {
	stmts := make([]ast.Stmt, 0)
	for !p.check(lexer.RIGHT_BRACE) && !p.isAtEnd() {
		stmt, err := p.declaration()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	if _, err := p.consume(lexer.RIGHT_BRACE, "Expect '}' after block."); err != nil {
		return nil, err
	}
	return stmts, nil
}

func (p *Parser) ifStatement() (ast.Stmt, *loxerr.Error) {
	if _, err := p.consume(lexer.LEFT_PAREN, "Expect '(' after 'if'."); err != nil {
		return nil, err
	}
	condition, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.RIGHT_PAREN, "Expect ')' after if condition."); err != nil {
		return nil, err
	}

	then, err := p.statement()
	if err != nil {
		return nil, err
	}

	var elseBranch ast.Stmt
	if p.match(lexer.ELSE) {
		elseBranch, err = p.statement()
		if err != nil {
			return nil, err
		}
	}

	return &ast.If{Condition: condition, Then: then, Else: elseBranch}, nil
}

func (p *Parser) whileStatement() (ast.Stmt, *loxerr.Error) {
	if _, err := p.consume(lexer.LEFT_PAREN, "Expect '(' after 'while'."); err != nil {
		return nil, err
	}
	condition, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.RIGHT_PAREN, "Expect ')' after condition."); err != nil {
		return nil, err
	}
	body, err := p.statement()
	if err != nil {
		return nil, err
	}
	return &ast.While{Condition: condition, Body: body}, nil
}

// forStatement desugars C-style for loops into the equivalent while loop:
//
//	for (init; cond; step) body
//	=>
//	{ init; while (cond || true) { body; step; } }
//
// A missing condition becomes the literal true, matching an infinite loop
// with no condition clause.
func (p *Parser) forStatement() (ast.Stmt, *loxerr.Error) {
	if _, err := p.consume(lexer.LEFT_PAREN, "Expect '(' after 'for'."); err != nil {
		return nil, err
	}

	var initializer ast.Stmt
	var err *loxerr.Error
	switch {
	case p.match(lexer.SEMICOLON):
		initializer = nil
	case p.match(lexer.VAR):
		initializer, err = p.varDeclaration()
	default:
		initializer, err = p.expressionStatement()
	}
	if err != nil {
		return nil, err
	}

	var condition ast.Expr
	if !p.check(lexer.SEMICOLON) {
		condition, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(lexer.SEMICOLON, "Expect ';' after loop condition."); err != nil {
		return nil, err
	}

	var step ast.Expr
	if !p.check(lexer.RIGHT_PAREN) {
		step, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(lexer.RIGHT_PAREN, "Expect ')' after for clauses."); err != nil {
		return nil, err
	}

	body, err := p.statement()
	if err != nil {
		return nil, err
	}

	if step != nil {
		body = &ast.Block{Statements: []ast.Stmt{body, &ast.Expression{Expression: step}}}
	}

	if condition == nil {
		condition = ast.NewLiteral(ast.LiteralValue{IsBool: true, Bool: true})
	}
	body = &ast.While{Condition: condition, Body: body}

	outer := make([]ast.Stmt, 0, 2)
	if initializer != nil {
		outer = append(outer, initializer)
	}
	return &ast.Block{Statements: append(outer, body)}, nil
}

func (p *Parser) printStatement() (ast.Stmt, *loxerr.Error) {
	value, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.SEMICOLON, "Expect ';' after value."); err != nil {
		return nil, err
	}
	return &ast.Print{Expression: value}, nil
}

func (p *Parser) returnStatement() (ast.Stmt, *loxerr.Error) {
	keyword := p.previous()

	var value ast.Expr
	if !p.check(lexer.SEMICOLON) {
		var err *loxerr.Error
		value, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(lexer.SEMICOLON, "Expect ';' after return value."); err != nil {
		return nil, err
	}
	return &ast.Return{Keyword: keyword, Value: value}, nil
}

func (p *Parser) expressionStatement() (ast.Stmt, *loxerr.Error) {
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.SEMICOLON, "Expect ';' after value."); err != nil {
		return nil, err
	}
	return &ast.Expression{Expression: expr}, nil
}
