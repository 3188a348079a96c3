// Package resolver performs the static variable-resolution pass described in
// spec.md §4.3: for every variable reference it records how many enclosing
// scopes separate it from its binding (depth) and the binding's position
// within that scope (index), and it rejects a fixed set of static errors.
package resolver

import (
	"github.com/cwbudde/sox/internal/ast"
	"github.com/cwbudde/sox/internal/sourceerr"
	"github.com/cwbudde/sox/internal/token"
)

// Coordinate is a resolved variable reference: Depth hops of parent pointers
// from the reference site, then Index within that scope's insertion order.
type Coordinate struct {
	Depth int
	Index int
}

// Table maps a variable-reference token's unique ID to its Coordinate.
// References absent from the table are globals — the evaluator falls back
// to by-name lookup on the global frame for them (spec.md §3.7).
type Table map[uint64]Coordinate

// StaticError is a resolver-detected error (spec.md §4.3, §7). The resolve
// pass does not stop at the first one: it walks the whole program and
// collects every static error it finds. The callers in this repository
// (cmd/sox, internal/repl) do not evaluate a program that has any.
type StaticError struct {
	sourceerr.Positioned
}

// Format renders the error with a caret against the original source.
func (e *StaticError) Format(source string, color bool) string {
	return sourceerr.Render(e.Message, e.Pos, source, color)
}

type functionKind int

const (
	noFunction functionKind = iota
	inFunction
	inMethod
	inInitializer
)

type classKind int

const (
	noClass classKind = iota
	inClass
	inSubclass
)

// binding is one (name, defined?) entry in a scope, in insertion order.
type binding struct {
	name    string
	defined bool
}

// scope is an ordered list of bindings. Index in the slice is the resolver
// coordinate's Index.
type scope struct {
	bindings []binding
	index    map[string]int // name -> position in bindings, for fast declare/define/resolve
}

func newScope() *scope {
	return &scope{index: make(map[string]int)}
}

// Resolver walks an already-parsed program once and produces a Table.
type Resolver struct {
	scopes          []*scope
	table           Table
	errors          []*StaticError
	currentFunction functionKind
	currentClass    classKind
}

// New creates a Resolver ready to run Resolve.
func New() *Resolver {
	return &Resolver{table: make(Table)}
}

// Resolve walks all of stmts and returns the resolution table together
// with every static error encountered; it does not stop at the first error.
func Resolve(stmts []ast.Stmt) (Table, []*StaticError) {
	r := New()
	r.resolveStmts(stmts)
	return r.table, r.errors
}

func (r *Resolver) errorAt(pos token.Position, message string) {
	r.errors = append(r.errors, &StaticError{sourceerr.Positioned{Message: message, Pos: pos}})
}

func (r *Resolver) beginScope() { r.scopes = append(r.scopes, newScope()) }

func (r *Resolver) endScope() { r.scopes = r.scopes[:len(r.scopes)-1] }

func (r *Resolver) inGlobalScope() bool { return len(r.scopes) == 0 }

// declare adds name to the innermost scope as not-yet-defined, rejecting a
// duplicate declaration in that same scope (spec.md §4.3 — globals are
// exempt, since spec.md never places them in a scope at all).
func (r *Resolver) declare(name token.Token) {
	if r.inGlobalScope() {
		return
	}
	sc := r.scopes[len(r.scopes)-1]
	if _, exists := sc.index[name.Lexeme]; exists {
		r.errorAt(name.Pos, "already a variable named '"+name.Lexeme+"' in this scope")
		return
	}
	sc.index[name.Lexeme] = len(sc.bindings)
	sc.bindings = append(sc.bindings, binding{name: name.Lexeme, defined: false})
}

func (r *Resolver) define(name token.Token) {
	if r.inGlobalScope() {
		return
	}
	sc := r.scopes[len(r.scopes)-1]
	if i, ok := sc.index[name.Lexeme]; ok {
		sc.bindings[i].defined = true
	}
}

// declareDefine is shorthand for constructs (parameters, `this`, `super`)
// that are always immediately usable — there is no initializer expression
// to resolve in between declare and define.
func (r *Resolver) declareDefine(name token.Token) {
	r.declare(name)
	r.define(name)
}

// resolveLocal searches the scope stack from innermost to outermost for
// name, recording (depth, index) the first time it's found. depth is the
// hop count from the reference site (0 = innermost scope).
func (r *Resolver) resolveLocal(refToken token.Token, name string) {
	for depth := 0; depth < len(r.scopes); depth++ {
		sc := r.scopes[len(r.scopes)-1-depth]
		if i, ok := sc.index[name]; ok {
			r.table[refToken.ID] = Coordinate{Depth: depth, Index: i}
			return
		}
	}
	// Not found in any scope: it's a global. Left absent from the table.
}
