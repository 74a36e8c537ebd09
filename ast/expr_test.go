/*
File    : go-mix/ast/expr_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package ast

import (
	"testing"

	"github.com/akashmaji946/go-mix/lexer"
	"github.com/stretchr/testify/assert"
)

func TestExpr_IDsAreUniquePerConstruction(t *testing.T) {
	a := NewVariable(lexer.NewToken(lexer.IDENTIFIER, "a", 1))
	b := NewVariable(lexer.NewToken(lexer.IDENTIFIER, "a", 1))

	assert.NotEqual(t, a.ID(), b.ID(), "two nodes referencing the same name on the same line must still get distinct ids")
}

func TestExpr_IDIsStableAcrossReads(t *testing.T) {
	lit := NewLiteral(LiteralValue{IsNumber: true, Number: 1})
	id := lit.ID()
	assert.Equal(t, id, lit.ID())
}

func TestLiteral_PayloadRoundTrips(t *testing.T) {
	lit := NewLiteral(LiteralValue{IsString: true, Str: "hi"})
	assert.True(t, lit.Value.IsString)
	assert.Equal(t, "hi", lit.Value.Str)
}

func TestCall_CarriesClosingParenForDiagnostics(t *testing.T) {
	paren := lexer.NewToken(lexer.RIGHT_PAREN, ")", 3)
	call := NewCall(NewVariable(lexer.NewToken(lexer.IDENTIFIER, "f", 3)), paren, nil)
	assert.Equal(t, 3, call.Paren.Line)
}
