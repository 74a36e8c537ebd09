/*
File    : go-mix/interpreter/interpreter_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package interpreter

import (
	"bytes"
	"strings"
	"testing"

	"github.com/akashmaji946/go-mix/lexer"
	"github.com/akashmaji946/go-mix/parser"
	"github.com/akashmaji946/go-mix/resolver"
	"github.com/akashmaji946/go-mix/value"
	"github.com/stretchr/testify/assert"
)

// run scans, parses, resolves, and interprets src, returning everything
// written to stdout and the final result value (NilValue on success, or a
// *value.Error).
func run(t *testing.T, src string) (string, value.Value) {
	t.Helper()

	tokens, scanErr := lexer.NewLexer(src).ScanTokens()
	assert.Nil(t, scanErr)

	stmts, parseErr := parser.New(tokens).Parse()
	assert.Nil(t, parseErr)

	r := resolver.New()
	resolveErr := r.Resolve(stmts)
	assert.Nil(t, resolveErr)

	var out bytes.Buffer
	it := New(&out)
	it.SetDistances(r.Distances)
	result := it.Interpret(stmts)
	return out.String(), result
}

func TestInterpreter_S1_ArithmeticPrecedence(t *testing.T) {
	out, result := run(t, `print -123 * (45.67);`)
	assert.False(t, value.IsError(result))
	assert.Equal(t, "-5617.41\n", out)
}

func TestInterpreter_S2_LexicalScopeShadowing(t *testing.T) {
	out, result := run(t, `
		var a = "global";
		{
			var a = "outer";
			{
				var a = "inner";
				print a;
			}
			print a;
		}
		print a;
	`)
	assert.False(t, value.IsError(result))
	assert.Equal(t, "inner\nouter\nglobal\n", out)
}

func TestInterpreter_S3_ClosuresCaptureEnvironment(t *testing.T) {
	out, result := run(t, `
		fun makeCounter() {
			var i = 0;
			fun count() { i = i + 1; print i; }
			return count;
		}
		var c = makeCounter();
		c(); c(); c();
	`)
	assert.False(t, value.IsError(result))
	assert.Equal(t, "1\n2\n3\n", out)
}

func TestInterpreter_S4_ResolverFixesScopeAtDefinition(t *testing.T) {
	out, result := run(t, `
		var a = "global";
		{
			fun showA() { print a; }
			showA();
			var a = "block";
			showA();
		}
	`)
	assert.False(t, value.IsError(result))
	assert.Equal(t, "global\nglobal\n", out)
}

func TestInterpreter_S5_RecursionAndReturn(t *testing.T) {
	out, result := run(t, `
		fun fib(n) {
			if (n < 2) return n;
			return fib(n - 2) + fib(n - 1);
		}
		print fib(10);
	`)
	assert.False(t, value.IsError(result))
	assert.Equal(t, "55\n", out)
}

func TestInterpreter_S6_RuntimeTypeError(t *testing.T) {
	_, result := run(t, `print "a" + 1;`)
	assert.True(t, value.IsError(result))
	errVal := result.(*value.Error)
	assert.Equal(t, "TypeError (line 1 at +) Operands must be two numbers or two strings.", errVal.String())
}

func TestInterpreter_ShortCircuitOr(t *testing.T) {
	out, result := run(t, `
		fun sideEffect() { print "called"; return true; }
		print true or sideEffect();
	`)
	assert.False(t, value.IsError(result))
	assert.Equal(t, "true\n", out)
	assert.False(t, strings.Contains(out, "called"))
}

func TestInterpreter_ShortCircuitAnd(t *testing.T) {
	out, result := run(t, `
		fun sideEffect() { print "called"; return true; }
		print false and sideEffect();
	`)
	assert.False(t, value.IsError(result))
	assert.Equal(t, "false\n", out)
	assert.False(t, strings.Contains(out, "called"))
}

func TestInterpreter_DivisionByZeroYieldsInfNotError(t *testing.T) {
	_, result := run(t, `print 1 / 0;`)
	assert.False(t, value.IsError(result))
}

func TestInterpreter_ForDesugaring(t *testing.T) {
	out, result := run(t, `
		for (var i = 0; i < 3; i = i + 1) {
			print i;
		}
	`)
	assert.False(t, value.IsError(result))
	assert.Equal(t, "0\n1\n2\n", out)
}

func TestInterpreter_UndefinedVariableIsError(t *testing.T) {
	_, result := run(t, `print nope;`)
	assert.True(t, value.IsError(result))
}

func TestInterpreter_ClockArity(t *testing.T) {
	out, result := run(t, `print clock() >= 0;`)
	assert.False(t, value.IsError(result))
	assert.Equal(t, "true\n", out)
}

func TestInterpreter_CallNonCallableIsError(t *testing.T) {
	_, result := run(t, `var x = 1; x();`)
	assert.True(t, value.IsError(result))
}

func TestInterpreter_WrongArityIsError(t *testing.T) {
	_, result := run(t, `fun f(a, b) { return a; } f(1);`)
	assert.True(t, value.IsError(result))
}
