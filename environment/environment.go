/*
File    : go-mix/environment/environment.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package environment implements the lexical binding chain Lox programs run
// against: a mutable map of names to values per scope, chained to an
// enclosing environment. Environments are never copied — closures hold a
// pointer to the live
// enclosing Environment and observe later mutations through it, rather than
// capturing a point-in-time snapshot of its bindings. That sharing is what
// makes the counter in a closure keep counting across calls.
package environment

import (
	"github.com/akashmaji946/go-mix/loxerr"
	"github.com/akashmaji946/go-mix/value"
)

// Environment is one scope's binding table, optionally chained to an
// enclosing scope. The global environment is the chain's root and has a
// nil Enclosing.
type Environment struct {
	values    map[string]value.Value
	Enclosing *Environment
}

// New creates an environment with the given enclosing scope, or a fresh
// global environment when enclosing is nil.
func New(enclosing *Environment) *Environment {
	return &Environment{
		values:    make(map[string]value.Value),
		Enclosing: enclosing,
	}
}

// Define binds name to val in this environment, overwriting any existing
// binding of the same name in this scope only. Used for `var` declarations
// and for installing function parameters at call time.
func (e *Environment) Define(name string, val value.Value) {
	e.values[name] = val
}

// Get looks up name starting in this environment and walking the Enclosing
// chain to the global scope. This is the dynamic fallback path used when
// the resolver recorded no distance for a reference (i.e. it's global).
func (e *Environment) Get(name string) (value.Value, bool) {
	if v, ok := e.values[name]; ok {
		return v, true
	}
	if e.Enclosing != nil {
		return e.Enclosing.Get(name)
	}
	return nil, false
}

// Assign updates name's binding in the nearest environment (starting here)
// that already defines it, walking the Enclosing chain. It does not create
// a new binding; an unresolved name anywhere in the chain is reported by the
// caller as UndefinedError.
func (e *Environment) Assign(name string, val value.Value) bool {
	if _, ok := e.values[name]; ok {
		e.values[name] = val
		return true
	}
	if e.Enclosing != nil {
		return e.Enclosing.Assign(name, val)
	}
	return false
}

// ancestor walks exactly distance steps up the Enclosing chain. A distance
// that overruns the chain is an internal consistency bug — the resolver
// guarantees every recorded distance is reachable — so it panics rather
// than returning an error a caller could silently ignore.
func (e *Environment) ancestor(distance int) *Environment {
	env := e
	for i := 0; i < distance; i++ {
		if env.Enclosing == nil {
			panic("environment: resolver distance overruns the enclosing chain")
		}
		env = env.Enclosing
	}
	return env
}

// GetAt reads name directly from the environment distance steps up the
// chain, per the resolver's recorded scope distance. A miss there is an
// internal consistency bug (resolver said it would be there), not a user
// error; GetAt reports it as ok == false and the interpreter turns that into
// the ordinary UndefinedError. It should never happen for a resolved program.
func (e *Environment) GetAt(distance int, name string) (value.Value, bool) {
	v, ok := e.ancestor(distance).values[name]
	return v, ok
}

// AssignAt writes name directly into the environment distance steps up the
// chain, the resolver-addressed counterpart to GetAt.
func (e *Environment) AssignAt(distance int, name string, val value.Value) {
	e.ancestor(distance).values[name] = val
}

// Names returns the bindings declared directly in this environment (not
// its enclosing chain), for REPL diagnostics such as an `.env` dump.
func (e *Environment) Names() []string {
	names := make([]string, 0, len(e.values))
	for name := range e.values {
		names = append(names, name)
	}
	return names
}

// Undefined builds the runtime error the interpreter's variable lookup and
// assignment use to report a name with no binding.
func Undefined(name string, line int) *value.Error {
	return value.NewError(loxerr.UndefinedError, line, name, "Undefined variable '%s'.", name)
}
