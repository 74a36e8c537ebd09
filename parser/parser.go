/*
File    : go-mix/parser/parser.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package parser implements a recursive-descent parser with precedence
// climbing for the Lox grammar, turning a finished token stream into a
// statement list. This does not build a Pratt-style table of per-token
// parse functions: the grammar's precedence ladder (assignment through
// primary) is small and fixed enough that one method per precedence level,
// each calling the next, is the clearer shape — the same structure
// marcuscaisey's and archevan's reference Lox parsers use.
//
// There is no panic-mode error synchronization: the first parse error
// aborts the parse and is returned to the caller, matching the language's
// error-handling design.
package parser

import (
	"github.com/akashmaji946/go-mix/ast"
	"github.com/akashmaji946/go-mix/lexer"
	"github.com/akashmaji946/go-mix/loxerr"
)

// Parser converts a finished token stream into a statement list. It holds
// no lexer reference of its own — callers scan a whole source unit up
// front and hand the resulting tokens to New.
type Parser struct {
	tokens  []lexer.Token
	current int
}

// New creates a Parser over a complete token stream (the scanner's
// ScanTokens output, always EOF-terminated).
func New(tokens []lexer.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse consumes the whole token stream and returns the resulting
// statement list, or the first error encountered.
func (p *Parser) Parse() ([]ast.Stmt, *loxerr.Error) {
	stmts := make([]ast.Stmt, 0)
	for !p.isAtEnd() {
		stmt, err := p.declaration()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	return stmts, nil
}

func (p *Parser) peek() lexer.Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() lexer.Token {
	return p.tokens[p.current-1]
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Type == lexer.EOF
}

func (p *Parser) advance() lexer.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) check(t lexer.TokenType) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Type == t
}

// match advances and returns true if the current token is one of types,
// otherwise leaves the position unchanged.
func (p *Parser) match(types ...lexer.TokenType) bool {
	for _, t := range types {
		if p.check(t) {
			p.advance()
			return true
		}
	}
	return false
}

// consume advances past an expected token kind or fails with message.
func (p *Parser) consume(t lexer.TokenType, message string) (lexer.Token, *loxerr.Error) {
	if p.check(t) {
		return p.advance(), nil
	}
	tok := p.peek()
	return lexer.Token{}, loxerr.New(loxerr.UnexpectedToken, tok.Line, tok.Lexeme, message)
}
