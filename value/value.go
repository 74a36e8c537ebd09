/*
File    : go-mix/value/value.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package value defines the runtime value model for the Lox interpreter.
// It is a small closed interface
// (Value) implemented by a handful of concrete types, cheap to copy, with
// string conversion built in for the print statement and error messages.
//
// Two of the concrete types here are not ordinary Lox values: Error carries
// a runtime fault through the evaluator using the same channel as every
// other value (see loxerr and the interpreter package for why), and
// ReturnSignal carries a non-local return's payload up through nested
// block execution until the enclosing call catches it.
package value

import (
	"fmt"
	"strconv"

	"github.com/akashmaji946/go-mix/loxerr"
)

// Type identifies the runtime type of a Value, used for error messages and
// the typeof-style checks scattered through the interpreter.
type Type string

const (
	NilType      Type = "nil"
	BooleanType  Type = "bool"
	NumberType   Type = "number"
	StringType   Type = "string"
	CallableType Type = "callable"
	ErrorType    Type = "error"
	ReturnType   Type = "return"
)

// Value is the interface every runtime Lox value implements.
type Value interface {
	Type() Type
	// String returns the representation the print statement writes to
	// stdout.
	String() string
}

// Nil is Lox's nil value. There is exactly one logical nil; NilValue below
// is the value every part of the interpreter should use rather than
// constructing a fresh Nil{}, purely by convention (Nil carries no state).
type Nil struct{}

func (Nil) Type() Type     { return NilType }
func (Nil) String() string { return "nil" }

// NilValue is the canonical Lox nil, returned whenever an expression or
// statement has no other meaningful result.
var NilValue Value = Nil{}

// Boolean wraps a Go bool.
type Boolean struct {
	Val bool
}

func (b Boolean) Type() Type { return BooleanType }
func (b Boolean) String() string {
	if b.Val {
		return "true"
	}
	return "false"
}

// Bool converts a Go bool into the canonical Boolean value.
func Bool(b bool) Value { return Boolean{Val: b} }

// Number wraps an IEEE-754 double, Lox's only numeric type.
type Number struct {
	Val float64
}

func (n Number) Type() Type { return NumberType }

// String renders the shortest decimal representation that round-trips back
// to the same float64, which naturally omits a trailing ".0" for integral
// values (e.g. 123, not 123.0). strconv's 'g' verb with precision -1 is
// exactly this algorithm.
func (n Number) String() string {
	return strconv.FormatFloat(n.Val, 'g', -1, 64)
}

// String wraps a Lox string value.
type String struct {
	Val string
}

func (s String) Type() Type     { return StringType }
func (s String) String() string { return s.Val }

// Error carries a runtime fault through the evaluator as an ordinary value,
// rather than through Go's error return channel, checked with IsError after
// every sub-evaluation: propagation is modeled as a value, not an overloaded
// error channel.
type Error struct {
	Err *loxerr.Error
}

func (e *Error) Type() Type { return ErrorType }
func (e *Error) String() string {
	return e.Err.Error()
}

// NewError builds an Error value from a loxerr.Kind and formatted message.
func NewError(kind loxerr.Kind, line int, lexeme string, format string, args ...interface{}) *Error {
	return &Error{Err: loxerr.New(kind, line, lexeme, format, args...)}
}

// IsError reports whether v is a runtime fault. Every recursive evaluation
// step checks this immediately after evaluating a sub-expression or
// sub-statement and propagates the fault upward without further work.
func IsError(v Value) bool {
	_, ok := v.(*Error)
	return ok
}

// ReturnSignal wraps the value passed to a `return` statement. It unwinds
// through block and statement execution as an ordinary Value until the
// Call expression handler catches it and unwraps the payload. The resolver
// rejects a `return` outside any function, so no ReturnSignal reaches the
// top-level Interpret loop.
type ReturnSignal struct {
	Val Value
}

func (r *ReturnSignal) Type() Type     { return ReturnType }
func (r *ReturnSignal) String() string { return fmt.Sprintf("<return %s>", r.Val.String()) }

// IsReturn reports whether v is a non-local return signal in flight.
func IsReturn(v Value) bool {
	_, ok := v.(*ReturnSignal)
	return ok
}

// Truthy implements Lox's truthiness rule: nil and false are falsy,
// everything else (including 0 and the empty string) is truthy.
func Truthy(v Value) bool {
	switch val := v.(type) {
	case Nil:
		return false
	case Boolean:
		return val.Val
	default:
		return true
	}
}

// Equal implements Lox's `==` rule: structural equality of like-typed
// values, IEEE-754 equality for numbers (so NaN != NaN), and false for any
// cross-type comparison other than both operands being nil.
func Equal(a, b Value) bool {
	switch av := a.(type) {
	case Nil:
		_, ok := b.(Nil)
		return ok
	case Boolean:
		bv, ok := b.(Boolean)
		return ok && av.Val == bv.Val
	case Number:
		bv, ok := b.(Number)
		return ok && av.Val == bv.Val
	case String:
		bv, ok := b.(String)
		return ok && av.Val == bv.Val
	default:
		return false
	}
}
