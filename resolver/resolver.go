/*
File    : go-mix/resolver/resolver.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package resolver performs the static scope pass between parsing and
// evaluation: for every variable reference, it works out how many
// enclosing environments the interpreter must walk at runtime to find the
// binding, and records that distance in a side table keyed by the
// referencing expression's node id. A reference with no recorded distance
// is resolved dynamically against the global environment instead.
package resolver

import (
	"github.com/akashmaji946/go-mix/ast"
	"github.com/akashmaji946/go-mix/lexer"
	"github.com/akashmaji946/go-mix/loxerr"
)

type functionContext int

const (
	contextNone functionContext = iota
	contextFunction
)

// Resolver walks a parsed program exactly once, before the interpreter
// sees it.
type Resolver struct {
	// Distances maps an Expr node's id (Variable or Assign) to the number
	// of enclosing scopes the interpreter must walk to find its binding.
	Distances map[int64]int

	scopes          []map[string]bool
	currentFunction functionContext
}

// New creates an empty Resolver ready to walk a program.
func New() *Resolver {
	return &Resolver{
		Distances: make(map[int64]int),
		scopes:    make([]map[string]bool, 0),
	}
}

// Resolve walks every top-level statement, stopping at the first error —
// matching the parser's own no-recovery policy.
func (r *Resolver) Resolve(stmts []ast.Stmt) *loxerr.Error {
	for _, stmt := range stmts {
		if err := r.resolveStmt(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (r *Resolver) beginScope() {
	r.scopes = append(r.scopes, make(map[string]bool))
}

func (r *Resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

func (r *Resolver) inGlobalScope() bool {
	return len(r.scopes) == 0
}

func (r *Resolver) declare(name lexer.Token) *loxerr.Error {
	if r.inGlobalScope() {
		return nil
	}
	scope := r.scopes[len(r.scopes)-1]
	if _, ok := scope[name.Lexeme]; ok {
		return loxerr.New(loxerr.AlreadyDeclared, name.Line, name.Lexeme,
			"Already a variable with this name in this scope.")
	}
	scope[name.Lexeme] = false
	return nil
}

func (r *Resolver) define(name lexer.Token) {
	if r.inGlobalScope() {
		return
	}
	r.scopes[len(r.scopes)-1][name.Lexeme] = true
}

// resolveLocal searches the scope stack top-down for name, recording the
// distance at which it's found. A miss leaves no entry, meaning "global."
func (r *Resolver) resolveLocal(node ast.Expr, name string) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name]; ok {
			r.Distances[node.ID()] = len(r.scopes) - 1 - i
			return
		}
	}
}

func (r *Resolver) resolveStmt(stmt ast.Stmt) *loxerr.Error {
	switch s := stmt.(type) {
	case *ast.Block:
		r.beginScope()
		defer r.endScope()
		for _, inner := range s.Statements {
			if err := r.resolveStmt(inner); err != nil {
				return err
			}
		}
		return nil

	case *ast.Var:
		if err := r.declare(s.Name); err != nil {
			return err
		}
		if s.Initializer != nil {
			if err := r.resolveExpr(s.Initializer); err != nil {
				return err
			}
		}
		r.define(s.Name)
		return nil

	case *ast.Function:
		if err := r.declare(s.Name); err != nil {
			return err
		}
		r.define(s.Name)
		return r.resolveFunction(s)

	case *ast.Expression:
		return r.resolveExpr(s.Expression)

	case *ast.If:
		if err := r.resolveExpr(s.Condition); err != nil {
			return err
		}
		if err := r.resolveStmt(s.Then); err != nil {
			return err
		}
		if s.Else != nil {
			return r.resolveStmt(s.Else)
		}
		return nil

	case *ast.Print:
		return r.resolveExpr(s.Expression)

	case *ast.Return:
		if r.currentFunction == contextNone {
			return loxerr.New(loxerr.TopLevelReturn, s.Keyword.Line, s.Keyword.Lexeme,
				"Can't return from top-level code.")
		}
		if s.Value != nil {
			return r.resolveExpr(s.Value)
		}
		return nil

	case *ast.While:
		if err := r.resolveExpr(s.Condition); err != nil {
			return err
		}
		return r.resolveStmt(s.Body)

	case *ast.Null:
		return nil
	}
	return nil
}

func (r *Resolver) resolveFunction(fn *ast.Function) *loxerr.Error {
	enclosingFunction := r.currentFunction
	r.currentFunction = contextFunction
	defer func() { r.currentFunction = enclosingFunction }()

	r.beginScope()
	defer r.endScope()
	for _, param := range fn.Params {
		if err := r.declare(param); err != nil {
			return err
		}
		r.define(param)
	}
	for _, inner := range fn.Body {
		if err := r.resolveStmt(inner); err != nil {
			return err
		}
	}
	return nil
}

func (r *Resolver) resolveExpr(expr ast.Expr) *loxerr.Error {
	switch e := expr.(type) {
	case *ast.Variable:
		if !r.inGlobalScope() {
			if defined, ok := r.scopes[len(r.scopes)-1][e.Name.Lexeme]; ok && !defined {
				return loxerr.New(loxerr.ReadInOwnInitializer, e.Name.Line, e.Name.Lexeme,
					"Can't read local variable in its own initializer.")
			}
		}
		r.resolveLocal(e, e.Name.Lexeme)
		return nil

	case *ast.Assign:
		if err := r.resolveExpr(e.Value); err != nil {
			return err
		}
		r.resolveLocal(e, e.Name.Lexeme)
		return nil

	case *ast.Binary:
		if err := r.resolveExpr(e.Left); err != nil {
			return err
		}
		return r.resolveExpr(e.Right)

	case *ast.Logical:
		if err := r.resolveExpr(e.Left); err != nil {
			return err
		}
		return r.resolveExpr(e.Right)

	case *ast.Call:
		if err := r.resolveExpr(e.Callee); err != nil {
			return err
		}
		for _, arg := range e.Args {
			if err := r.resolveExpr(arg); err != nil {
				return err
			}
		}
		return nil

	case *ast.Grouping:
		return r.resolveExpr(e.Expression)

	case *ast.Unary:
		return r.resolveExpr(e.Right)

	case *ast.Literal:
		return nil
	}
	return nil
}
