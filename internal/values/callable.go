package values

import "github.com/cwbudde/sox/internal/ast"

// Function is a user-defined function or method value. Closure is stored as
// `any` rather than a concrete environment type and type-asserted back by
// internal/interp when the function is called — the same circular-import
// break the teacher's environment migration used for Environment.NewEnclosed.
type Function struct {
	Decl          *ast.FunctionStmt
	Closure       any // *interp.Environment
	IsInitializer bool
}

func (f *Function) TypeName() string { return "function" }
func (f *Function) Render() string   { return "<function " + f.Decl.Name.Lexeme + ">" }

// WithClosure returns a copy of f bound to a different closure. Used to
// produce bound methods: the evaluator wraps the class's own closure in a
// fresh scope defining `this`, then rebinds the method onto it.
func (f *Function) WithClosure(closure any) *Function {
	return &Function{Decl: f.Decl, Closure: closure, IsInitializer: f.IsInitializer}
}

// Class is a class value: a name, an optional superclass, and its own
// (non-inherited) methods.
type Class struct {
	Name       string
	Superclass *Class
	Methods    map[string]*Function
}

func (c *Class) TypeName() string { return "class" }
func (c *Class) Render() string   { return "<class " + c.Name + ">" }

// FindMethod walks the base-class chain for name, own methods first
// (spec.md §4.4 — single inheritance, overriding).
func (c *Class) FindMethod(name string) *Function {
	if m, ok := c.Methods[name]; ok {
		return m
	}
	if c.Superclass != nil {
		return c.Superclass.FindMethod(name)
	}
	return nil
}

// Instance is an instantiated object: a reference to its class plus its own
// field storage.
type Instance struct {
	Class  *Class
	Fields map[string]Value
}

func (i *Instance) TypeName() string { return i.Class.Name }
func (i *Instance) Render() string   { return "<" + i.Class.Name + " instance>" }

// Get returns a field previously Set on the instance. Method lookup is the
// evaluator's job (it needs to bind `this`), not the Instance's.
func (i *Instance) Get(name string) (Value, bool) {
	v, ok := i.Fields[name]
	return v, ok
}

func (i *Instance) Set(name string, v Value) {
	if i.Fields == nil {
		i.Fields = make(map[string]Value)
	}
	i.Fields[name] = v
}

// NewInstance creates a zero-field instance of class.
func NewInstance(class *Class) *Instance {
	return &Instance{Class: class, Fields: make(map[string]Value)}
}

// Exception is a first-class runtime value representing a raised error
// (spec.md §7, grounded on exceptions.rs's Exception enum). Unlike Rust's
// enum, sox has no raise/catch construct of its own — exceptions surface as
// the payload of a RuntimeError that aborts evaluation, but the value type
// itself is ordinary data so it can be printed, compared, and stored.
type Exception struct {
	Kind    string // e.g. "NameError", "RuntimeError", "ArgumentError"
	Message string
}

func (e *Exception) TypeName() string { return "exception" }
func (e *Exception) Render() string   { return e.Kind + ": " + e.Message }
func (e *Exception) Error() string    { return e.Render() }

// NewException constructs an Exception value of the given kind.
func NewException(kind, message string) *Exception {
	return &Exception{Kind: kind, Message: message}
}
