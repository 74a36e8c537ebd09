/*
File    : go-mix/ast/stmt.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package ast

import "github.com/akashmaji946/go-mix/lexer"

// Stmt is any node executed for its effect. Statement nodes carry no id of
// their own: the resolver never needs to address a statement by identity,
// only the expression nodes nested inside it.
type Stmt interface {
	stmtNode()
}

// Block executes its statements in a fresh child scope.
type Block struct {
	Statements []Stmt
}

func (s *Block) stmtNode() {}

// Expression evaluates Expr and discards the result.
type Expression struct {
	Expression Expr
}

func (s *Expression) stmtNode() {}

// Print evaluates Expr and writes its formatted value to standard output.
type Print struct {
	Expression Expr
}

func (s *Print) stmtNode() {}

// Var declares Name in the current scope, bound to Initializer's value, or
// to nil if Initializer is absent.
type Var struct {
	Name        lexer.Token
	Initializer Expr // nil when the declaration has no initializer
}

func (s *Var) stmtNode() {}

// If executes Then when Condition is truthy, otherwise Else (which may be
// nil if there was no `else` clause).
type If struct {
	Condition Expr
	Then      Stmt
	Else      Stmt // nil when there is no else branch
}

func (s *If) stmtNode() {}

// While re-evaluates Condition before each execution of Body.
type While struct {
	Condition Expr
	Body      Stmt
}

func (s *While) stmtNode() {}

// Function declares a named function: Params are bound as locals and Body
// executed when it is called. The function's defining environment is
// captured as its closure by the interpreter, not recorded here.
type Function struct {
	Name   lexer.Token
	Params []lexer.Token
	Body   []Stmt
}

func (s *Function) stmtNode() {}

// Return unwinds the enclosing call with Value's result, or nil for a bare
// `return;`.
type Return struct {
	Keyword lexer.Token
	Value   Expr // nil when the statement is a bare `return;`
}

func (s *Return) stmtNode() {}

// Null is a placeholder statement for a declaration the parser could not
// make sense of. The core parser never actually produces one since panic-
// mode synchronization is disabled and the first parse error aborts the
// run; it exists so the Stmt sum type has a well-defined empty case for any
// driver that chooses to recover.
type Null struct{}

func (s *Null) stmtNode() {}
