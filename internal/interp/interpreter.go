// Package interp implements the tree-walking evaluator described in
// spec.md §4.6: given a resolved program, it executes statements and
// evaluates expressions directly against the AST, using the resolver's
// (depth, index) table to address local variables and falling back to the
// global frame by name otherwise.
package interp

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cwbudde/sox/internal/ast"
	"github.com/cwbudde/sox/internal/resolver"
	"github.com/cwbudde/sox/internal/sourceerr"
	"github.com/cwbudde/sox/internal/token"
	"github.com/cwbudde/sox/internal/values"
)

// RuntimeError is a runtime failure with source position, rendered the same
// way lexer/parser/resolver errors are (spec.md §5.1). Value is the
// first-class exception object (spec.md §3.3's "exception" tag) the failure
// actually carries — RuntimeError is the Go-level error wrapper the
// evaluator propagates to abort execution; Value is the ordinary sox value
// that wrapper is rendering.
type RuntimeError struct {
	sourceerr.Positioned
	Value *values.Exception
}

// Format renders the error with a caret against the original source, for
// the CLI's `run` command.
func (e *RuntimeError) Format(source string, color bool) string {
	return sourceerr.Render(e.Message, e.Pos, source, color)
}

// classifyError splits a message of the form "NameError: name 'x' is not
// defined" into its Kind/detail, falling back to a generic "RuntimeError"
// kind for messages with no such prefix (e.g. "can't add string and int").
func classifyError(message string) (kind, detail string) {
	if i := strings.Index(message, ": "); i > 0 {
		head := message[:i]
		if strings.HasSuffix(head, "Error") && !strings.ContainsAny(head, " \t") {
			return head, message[i+2:]
		}
	}
	return "RuntimeError", message
}

// returnSignal unwinds a `return` statement up to the enclosing function
// call without a panic: statement execution returns it as an ordinary
// error, and only callFunction knows how to interpret it (spec.md §4.6.4).
type returnSignal struct {
	value values.Value
}

func (r *returnSignal) Error() string { return "return" }

// Interpreter holds everything that persists across a single program run:
// the global scope and the resolver's binding table.
type Interpreter struct {
	Globals *Environment
	table   resolver.Table
	Out     io.Writer
}

// New creates an Interpreter ready to Run a resolved program.
func New(table resolver.Table) *Interpreter {
	return &Interpreter{
		Globals: NewGlobal(),
		table:   table,
		Out:     os.Stdout,
	}
}

// SetTable swaps the resolver table used to resolve subsequent Run calls —
// used by the REPL, which re-resolves each line independently but keeps the
// same Interpreter (and so the same Globals) across the whole session.
func (it *Interpreter) SetTable(table resolver.Table) {
	it.table = table
}

// Run executes every top-level statement in order against the global
// environment, stopping at the first runtime error. It returns the value of
// the last top-level expression statement (values.None{} if the program is
// empty or its last statement isn't an expression statement) — the REPL
// uses this to print the value of the last evaluated expression (spec.md
// §6); `sox run` ignores it.
func (it *Interpreter) Run(program *ast.Program) (values.Value, error) {
	var last values.Value = values.None{}
	for _, s := range program.Statements {
		if expr, ok := s.(*ast.ExprStmt); ok {
			v, err := it.eval(expr.Expression, it.Globals)
			if err != nil {
				return nil, err
			}
			last = v
			continue
		}
		if err := it.execStmt(s, it.Globals); err != nil {
			return nil, err
		}
		last = values.None{}
	}
	return last, nil
}

func (it *Interpreter) runtimeErr(tok token.Token, message string) error {
	kind, detail := classifyError(message)
	return &RuntimeError{
		Positioned: sourceerr.Positioned{Message: message, Pos: tok.Pos},
		Value:      values.NewException(kind, detail),
	}
}

func (it *Interpreter) runtimeErrf(tok token.Token, format string, args ...any) error {
	return it.runtimeErr(tok, fmt.Sprintf(format, args...))
}

// lookupVariable resolves a name reference: a resolved local uses the
// (depth, index) coordinate directly; an unresolved one falls back to the
// shared global frame, and failing that is a NameError (spec.md §3.7, §8).
func (it *Interpreter) lookupVariable(tok token.Token, env *Environment) (values.Value, error) {
	if coord, ok := it.table[tok.ID]; ok {
		return env.GetAt(coord.Depth, coord.Index), nil
	}
	if v, ok := env.GetGlobal(tok.Lexeme); ok {
		return v, nil
	}
	return nil, it.runtimeErrf(tok, "NameError: name '%s' is not defined", tok.Lexeme)
}

// assignVariable mirrors lookupVariable for `name = value`.
func (it *Interpreter) assignVariable(tok token.Token, env *Environment, val values.Value) error {
	if coord, ok := it.table[tok.ID]; ok {
		env.AssignAt(coord.Depth, coord.Index, val)
		return nil
	}
	if env.AssignGlobal(tok.Lexeme, val) {
		return nil
	}
	return it.runtimeErrf(tok, "NameError: name '%s' is not defined", tok.Lexeme)
}

// bindMethod produces a bound method: a fresh scope enclosed by the method's
// original closure, with a single `this` binding at index 0 (spec.md
// §4.6.3).
func bindMethod(fn *values.Function, instance *values.Instance) *values.Function {
	closure, _ := fn.Closure.(*Environment)
	bound := closure.Child()
	bound.Define(instance)
	return fn.WithClosure(bound)
}
