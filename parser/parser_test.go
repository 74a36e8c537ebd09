/*
File    : go-mix/parser/parser_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"testing"

	"github.com/akashmaji946/go-mix/ast"
	"github.com/akashmaji946/go-mix/lexer"
	"github.com/stretchr/testify/assert"
)

func mustParse(t *testing.T, src string) []ast.Stmt {
	t.Helper()
	tokens, scanErr := lexer.NewLexer(src).ScanTokens()
	assert.Nil(t, scanErr)
	stmts, err := New(tokens).Parse()
	assert.Nil(t, err)
	return stmts
}

func TestParser_ArithmeticPrecedence(t *testing.T) {
	stmts := mustParse(t, "print -123 * (45.67);")
	assert.Len(t, stmts, 1)

	printStmt, ok := stmts[0].(*ast.Print)
	assert.True(t, ok)

	binary, ok := printStmt.Expression.(*ast.Binary)
	assert.True(t, ok)
	assert.Equal(t, lexer.STAR, binary.Operator.Type)

	unary, ok := binary.Left.(*ast.Unary)
	assert.True(t, ok)
	assert.Equal(t, lexer.MINUS, unary.Operator.Type)

	grouping, ok := binary.Right.(*ast.Grouping)
	assert.True(t, ok)
	literal, ok := grouping.Expression.(*ast.Literal)
	assert.True(t, ok)
	assert.Equal(t, 45.67, literal.Value.Number)
}

func TestParser_VarDeclaration(t *testing.T) {
	stmts := mustParse(t, `var a = "global";`)
	varStmt, ok := stmts[0].(*ast.Var)
	assert.True(t, ok)
	assert.Equal(t, "a", varStmt.Name.Lexeme)
	lit, ok := varStmt.Initializer.(*ast.Literal)
	assert.True(t, ok)
	assert.Equal(t, "global", lit.Value.Str)
}

func TestParser_AssignmentRewritesVariableToAssign(t *testing.T) {
	stmts := mustParse(t, "a = 1;")
	exprStmt, ok := stmts[0].(*ast.Expression)
	assert.True(t, ok)
	assign, ok := exprStmt.Expression.(*ast.Assign)
	assert.True(t, ok)
	assert.Equal(t, "a", assign.Name.Lexeme)
}

func TestParser_InvalidAssignmentTarget(t *testing.T) {
	tokens, scanErr := lexer.NewLexer("1 = 2;").ScanTokens()
	assert.Nil(t, scanErr)
	_, err := New(tokens).Parse()
	assert.NotNil(t, err)
	assert.Equal(t, "Invalid assignment target.", err.Message)
}

func TestParser_IfElse(t *testing.T) {
	stmts := mustParse(t, `if (a) { print 1; } else { print 2; }`)
	ifStmt, ok := stmts[0].(*ast.If)
	assert.True(t, ok)
	assert.NotNil(t, ifStmt.Then)
	assert.NotNil(t, ifStmt.Else)
}

func TestParser_ForDesugarsToWhile(t *testing.T) {
	stmts := mustParse(t, `for (var i = 0; i < 3; i = i + 1) print i;`)

	block, ok := stmts[0].(*ast.Block)
	assert.True(t, ok)
	assert.Len(t, block.Statements, 2)

	_, ok = block.Statements[0].(*ast.Var)
	assert.True(t, ok)

	whileStmt, ok := block.Statements[1].(*ast.While)
	assert.True(t, ok)

	bodyBlock, ok := whileStmt.Body.(*ast.Block)
	assert.True(t, ok)
	assert.Len(t, bodyBlock.Statements, 2)
}

func TestParser_ForMissingConditionDefaultsTrue(t *testing.T) {
	stmts := mustParse(t, `for (;;) print 1;`)
	block := stmts[0].(*ast.Block)
	whileStmt := block.Statements[0].(*ast.While)
	lit, ok := whileStmt.Condition.(*ast.Literal)
	assert.True(t, ok)
	assert.True(t, lit.Value.IsBool)
	assert.True(t, lit.Value.Bool)
}

func TestParser_FunctionDeclaration(t *testing.T) {
	stmts := mustParse(t, `fun add(a, b) { return a + b; }`)
	fn, ok := stmts[0].(*ast.Function)
	assert.True(t, ok)
	assert.Equal(t, "add", fn.Name.Lexeme)
	assert.Len(t, fn.Params, 2)
	assert.Len(t, fn.Body, 1)
}

func TestParser_CallChaining(t *testing.T) {
	stmts := mustParse(t, `f()();`)
	exprStmt := stmts[0].(*ast.Expression)
	outer, ok := exprStmt.Expression.(*ast.Call)
	assert.True(t, ok)
	_, ok = outer.Callee.(*ast.Call)
	assert.True(t, ok)
}

func TestParser_MissingSemicolonIsError(t *testing.T) {
	tokens, scanErr := lexer.NewLexer(`print 1`).ScanTokens()
	assert.Nil(t, scanErr)
	_, err := New(tokens).Parse()
	assert.NotNil(t, err)
	assert.Equal(t, "Expect ';' after value.", err.Message)
}
