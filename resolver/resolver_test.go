/*
File    : go-mix/resolver/resolver_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package resolver

import (
	"testing"

	"github.com/akashmaji946/go-mix/ast"
	"github.com/akashmaji946/go-mix/lexer"
	"github.com/akashmaji946/go-mix/parser"
	"github.com/stretchr/testify/assert"
)

func mustResolve(t *testing.T, src string) ([]ast.Stmt, *Resolver) {
	t.Helper()
	tokens, scanErr := lexer.NewLexer(src).ScanTokens()
	assert.Nil(t, scanErr)
	stmts, parseErr := parser.New(tokens).Parse()
	assert.Nil(t, parseErr)
	r := New()
	resolveErr := r.Resolve(stmts)
	assert.Nil(t, resolveErr)
	return stmts, r
}

func TestResolver_LocalShadowingDistances(t *testing.T) {
	stmts, r := mustResolve(t, `
		var a = "global";
		{
			var a = "outer";
			{
				var a = "inner";
				print a;
			}
			print a;
		}
	`)

	outerBlock := stmts[1].(*ast.Block)
	innerBlock := outerBlock.Statements[1].(*ast.Block)
	innerPrint := innerBlock.Statements[1].(*ast.Print)
	innerVar := innerPrint.Expression.(*ast.Variable)
	assert.Equal(t, 0, r.Distances[innerVar.ID()])

	outerPrint := outerBlock.Statements[2].(*ast.Print)
	outerVar := outerPrint.Expression.(*ast.Variable)
	assert.Equal(t, 0, r.Distances[outerVar.ID()])
}

func TestResolver_GlobalHasNoDistance(t *testing.T) {
	_, r := mustResolve(t, `var a = 1; print a;`)
	assert.Empty(t, r.Distances)
}

func TestResolver_ReadInOwnInitializerIsError(t *testing.T) {
	tokens, _ := lexer.NewLexer(`{ var a = a; }`).ScanTokens()
	stmts, err := parser.New(tokens).Parse()
	assert.Nil(t, err)
	resolveErr := New().Resolve(stmts)
	assert.NotNil(t, resolveErr)
	assert.Equal(t, "Can't read local variable in its own initializer.", resolveErr.Message)
}

func TestResolver_AlreadyDeclaredIsError(t *testing.T) {
	tokens, _ := lexer.NewLexer(`{ var a = 1; var a = 2; }`).ScanTokens()
	stmts, err := parser.New(tokens).Parse()
	assert.Nil(t, err)
	resolveErr := New().Resolve(stmts)
	assert.NotNil(t, resolveErr)
	assert.Equal(t, "Already a variable with this name in this scope.", resolveErr.Message)
}

func TestResolver_TopLevelReturnIsError(t *testing.T) {
	tokens, _ := lexer.NewLexer(`return 1;`).ScanTokens()
	stmts, err := parser.New(tokens).Parse()
	assert.Nil(t, err)
	resolveErr := New().Resolve(stmts)
	assert.NotNil(t, resolveErr)
	assert.Equal(t, "Can't return from top-level code.", resolveErr.Message)
}

func TestResolver_ClosureCapturesDefinitionScope(t *testing.T) {
	// showA is resolved before the second `var a` shadows the global,
	// so no distance is recorded for the `a` reference inside showA's body:
	// both calls read the global binding.
	stmts, r := mustResolve(t, `
		var a = "global";
		{
			fun showA() { print a; }
			showA();
			var a = "block";
			showA();
		}
	`)
	block := stmts[1].(*ast.Block)
	fn := block.Statements[0].(*ast.Function)
	printStmt := fn.Body[0].(*ast.Print)
	variable := printStmt.Expression.(*ast.Variable)
	_, hasDistance := r.Distances[variable.ID()]
	assert.False(t, hasDistance, "showA's reference to 'a' should resolve globally, not to the later local 'a'")
}
