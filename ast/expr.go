/*
File    : go-mix/ast/expr.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package ast defines the parse tree the parser builds and the resolver and
// interpreter walk. Expr and Stmt are sealed interfaces (Go's stand-in for a
// sum type): every concrete variant lives in this package and carries an
// unexported marker method so no other package can introduce a new one.
//
// Every Expr node also carries a unique, monotonically increasing id,
// assigned at construction time. The resolver keys its distance side table
// by this id rather than by token identity, since two references to the
// same name on the same line (e.g. `a = a + a;`) share a lexeme and line but
// must resolve independently.
package ast

import "github.com/akashmaji946/go-mix/lexer"

var nextExprID int64

func newExprID() int64 {
	nextExprID++
	return nextExprID
}

// Expr is any node that produces a value when evaluated.
type Expr interface {
	// ID returns this node's unique identity, used by the resolver's side
	// table and by nothing else — it is not meaningful across parses.
	ID() int64
	exprNode()
}

// LiteralValue is the payload a Literal expression carries: one of
// boolean, nil, number, or string, per the language's literal grammar.
type LiteralValue struct {
	IsBool   bool
	Bool     bool
	IsNil    bool
	IsNumber bool
	Number   float64
	IsString bool
	Str      string
}

// Literal is a constant value appearing directly in source: a number,
// string, boolean, or nil.
type Literal struct {
	id    int64
	Value LiteralValue
}

func NewLiteral(value LiteralValue) *Literal {
	return &Literal{id: newExprID(), Value: value}
}

func (e *Literal) ID() int64  { return e.id }
func (e *Literal) exprNode() {}

// Grouping is a parenthesized sub-expression, kept as its own node purely
// to preserve the source's grouping for tools that print the tree back;
// evaluation simply delegates to Expression.
type Grouping struct {
	id         int64
	Expression Expr
}

func NewGrouping(expression Expr) *Grouping {
	return &Grouping{id: newExprID(), Expression: expression}
}

func (e *Grouping) ID() int64  { return e.id }
func (e *Grouping) exprNode() {}

// Unary is a prefix operator expression: `!` or `-` applied to Right.
type Unary struct {
	id       int64
	Operator lexer.Token
	Right    Expr
}

func NewUnary(operator lexer.Token, right Expr) *Unary {
	return &Unary{id: newExprID(), Operator: operator, Right: right}
}

func (e *Unary) ID() int64  { return e.id }
func (e *Unary) exprNode() {}

// Binary is an arithmetic or comparison operator applied to two operands.
// Unlike Logical, both operands are always evaluated.
type Binary struct {
	id       int64
	Left     Expr
	Operator lexer.Token
	Right    Expr
}

func NewBinary(left Expr, operator lexer.Token, right Expr) *Binary {
	return &Binary{id: newExprID(), Left: left, Operator: operator, Right: right}
}

func (e *Binary) ID() int64  { return e.id }
func (e *Binary) exprNode() {}

// Logical is `and`/`or`, kept distinct from Binary because the interpreter
// must short-circuit: Right is evaluated only when the result isn't already
// determined by Left.
type Logical struct {
	id       int64
	Left     Expr
	Operator lexer.Token
	Right    Expr
}

func NewLogical(left Expr, operator lexer.Token, right Expr) *Logical {
	return &Logical{id: newExprID(), Left: left, Operator: operator, Right: right}
}

func (e *Logical) ID() int64  { return e.id }
func (e *Logical) exprNode() {}

// Variable is a reference to a named binding. Name.Lexeme is the variable
// name; the node's own id is what the resolver's side table keys on.
type Variable struct {
	id   int64
	Name lexer.Token
}

func NewVariable(name lexer.Token) *Variable {
	return &Variable{id: newExprID(), Name: name}
}

func (e *Variable) ID() int64  { return e.id }
func (e *Variable) exprNode() {}

// Assign is `name = value`. Like Variable, its id (not Name) is the
// resolver side-table key.
type Assign struct {
	id    int64
	Name  lexer.Token
	Value Expr
}

func NewAssign(name lexer.Token, value Expr) *Assign {
	return &Assign{id: newExprID(), Name: name, Value: value}
}

func (e *Assign) ID() int64  { return e.id }
func (e *Assign) exprNode() {}

// Call is a function invocation. Paren is the closing `)` token, captured
// so runtime errors (wrong arity, callee not callable) can report a source
// location.
type Call struct {
	id     int64
	Callee Expr
	Paren  lexer.Token
	Args   []Expr
}

func NewCall(callee Expr, paren lexer.Token, args []Expr) *Call {
	return &Call{id: newExprID(), Callee: callee, Paren: paren, Args: args}
}

func (e *Call) ID() int64  { return e.id }
func (e *Call) exprNode() {}
