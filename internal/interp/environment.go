package interp

import (
	"github.com/dolthub/swiss"

	"github.com/cwbudde/sox/internal/values"
)

// Environment is one scope frame. Locals are addressed by the resolver's
// (depth, index) coordinates and stored in insertion order, since depth and
// index are only meaningful relative to that order; the single global frame
// is instead addressed by name through a swiss.Map, since resolver
// coordinates are never computed for globals (spec.md §3.6/§3.7, grounded
// on environment.rs's Namespace/Env split and on mna-nenuphar's swiss-backed
// Map for its own name-keyed storage).
type Environment struct {
	outer   *Environment
	slots   []values.Value
	globals *swiss.Map[string, values.Value]
}

// NewGlobal creates the root environment. Every child environment descended
// from it shares its globals map.
func NewGlobal() *Environment {
	return &Environment{globals: swiss.NewMap[string, values.Value](64)}
}

// Child creates a new scope enclosed by e.
func (e *Environment) Child() *Environment {
	return &Environment{outer: e, globals: e.globals}
}

// IsGlobal reports whether e is the root environment — the evaluator's
// counterpart to the resolver's inGlobalScope(), since both treat the
// outermost scope as name-addressed rather than index-addressed.
func (e *Environment) IsGlobal() bool {
	return e.outer == nil
}

// Define appends value as a new local slot in this environment and returns
// its index — the counterpart to the resolver's declare/define bookkeeping,
// which assigns the same index by counting declarations in parse order.
func (e *Environment) Define(value values.Value) int {
	e.slots = append(e.slots, value)
	return len(e.slots) - 1
}

// ancestor walks depth hops up the outer chain.
func (e *Environment) ancestor(depth int) *Environment {
	env := e
	for i := 0; i < depth; i++ {
		env = env.outer
	}
	return env
}

// GetAt reads the local at (depth, index) — a resolved reference.
func (e *Environment) GetAt(depth, index int) values.Value {
	return e.ancestor(depth).slots[index]
}

// AssignAt writes the local at (depth, index).
func (e *Environment) AssignAt(depth, index int, value values.Value) {
	e.ancestor(depth).slots[index] = value
}

// DefineGlobal binds name in the shared global frame, overwriting any prior
// binding (spec.md §3.7 — top-level `let` may redeclare).
func (e *Environment) DefineGlobal(name string, value values.Value) {
	e.globals.Put(name, value)
}

// GetGlobal looks up name in the global frame.
func (e *Environment) GetGlobal(name string) (values.Value, bool) {
	return e.globals.Get(name)
}

// AssignGlobal updates an existing global binding, reporting whether name
// was defined at all.
func (e *Environment) AssignGlobal(name string, value values.Value) bool {
	if _, ok := e.globals.Get(name); !ok {
		return false
	}
	e.globals.Put(name, value)
	return true
}
