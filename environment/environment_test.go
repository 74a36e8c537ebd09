/*
File    : go-mix/environment/environment_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package environment

import (
	"testing"

	"github.com/akashmaji946/go-mix/value"
	"github.com/stretchr/testify/assert"
)

func TestEnvironment_DefineAndGet(t *testing.T) {
	env := New(nil)
	env.Define("x", value.Number{Val: 10})
	v, ok := env.Get("x")
	assert.True(t, ok)
	assert.Equal(t, value.Number{Val: 10}, v)
}

func TestEnvironment_GetFallsThroughToEnclosing(t *testing.T) {
	outer := New(nil)
	outer.Define("x", value.Number{Val: 1})
	inner := New(outer)

	v, ok := inner.Get("x")
	assert.True(t, ok)
	assert.Equal(t, value.Number{Val: 1}, v)
}

func TestEnvironment_ShadowingDoesNotMutateEnclosing(t *testing.T) {
	outer := New(nil)
	outer.Define("x", value.Number{Val: 1})
	inner := New(outer)
	inner.Define("x", value.Number{Val: 2})

	innerVal, _ := inner.Get("x")
	outerVal, _ := outer.Get("x")
	assert.Equal(t, value.Number{Val: 2}, innerVal)
	assert.Equal(t, value.Number{Val: 1}, outerVal)
}

func TestEnvironment_AssignUpdatesEnclosingBinding(t *testing.T) {
	outer := New(nil)
	outer.Define("x", value.Number{Val: 1})
	inner := New(outer)

	ok := inner.Assign("x", value.Number{Val: 9})
	assert.True(t, ok)

	v, _ := outer.Get("x")
	assert.Equal(t, value.Number{Val: 9}, v)
}

func TestEnvironment_AssignUndefinedReturnsFalse(t *testing.T) {
	env := New(nil)
	ok := env.Assign("never_declared", value.NilValue)
	assert.False(t, ok)
}

func TestEnvironment_GetAtAndAssignAt(t *testing.T) {
	global := New(nil)
	global.Define("a", value.Number{Val: 1})
	child := New(global)
	child.Define("a", value.Number{Val: 2})
	grandchild := New(child)

	v, ok := grandchild.GetAt(1, "a")
	assert.True(t, ok)
	assert.Equal(t, value.Number{Val: 2}, v)

	grandchild.AssignAt(1, "a", value.Number{Val: 42})
	v, _ = child.Get("a")
	assert.Equal(t, value.Number{Val: 42}, v)

	// the grandparent's own binding of "a" is untouched
	v, _ = global.Get("a")
	assert.Equal(t, value.Number{Val: 1}, v)
}

func TestEnvironment_SharedReferenceObservesMutationAcrossHolders(t *testing.T) {
	// Two "closures" (callEnv1, callEnv2) both holding the same captured
	// environment must see each other's writes through it — environments
	// are shared mutable cells, not copied snapshots.
	captured := New(nil)
	captured.Define("count", value.Number{Val: 0})

	holderA := New(captured)
	holderB := New(captured)

	holderA.Assign("count", value.Number{Val: 1})
	v, _ := holderB.Get("count")
	assert.Equal(t, value.Number{Val: 1}, v)
}
