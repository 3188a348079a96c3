package ast

import (
	"fmt"
	"strings"

	"github.com/cwbudde/sox/internal/token"
)

// Literal is a number, string, boolean, or None literal.
type Literal struct {
	Token token.Token
	Value any // int64, float64, string, bool, or nil
}

func (l *Literal) exprNode()           {}
func (l *Literal) Pos() token.Position { return l.Token.Pos }
func (l *Literal) String() string      { return l.Token.Lexeme }

// Variable is a reference to a named binding. Token is the identifier
// occurrence itself: the resolver keys its (depth, index) table on this
// token's unique ID (see spec.md §3.1, §9 — the "token identity" open
// question), so each occurrence of the same name resolves independently.
type Variable struct {
	Name token.Token
}

func (v *Variable) exprNode()           {}
func (v *Variable) Pos() token.Position { return v.Name.Pos }
func (v *Variable) String() string      { return v.Name.Lexeme }

// Assign is `name = value`.
type Assign struct {
	Name  token.Token
	Value Expr
}

func (a *Assign) exprNode()           {}
func (a *Assign) Pos() token.Position { return a.Name.Pos }
func (a *Assign) String() string      { return a.Name.Lexeme + " = " + a.Value.String() }

// Grouping is a parenthesized expression, kept as its own node so printers
// can round-trip parentheses even though precedence makes them redundant
// once parsed.
type Grouping struct {
	LParen     token.Token
	Expression Expr
}

func (g *Grouping) exprNode()           {}
func (g *Grouping) Pos() token.Position { return g.LParen.Pos }
func (g *Grouping) String() string      { return "(" + g.Expression.String() + ")" }

// Unary is `!expr` or `-expr`.
type Unary struct {
	Operator token.Token
	Right    Expr
}

func (u *Unary) exprNode()           {}
func (u *Unary) Pos() token.Position { return u.Operator.Pos }
func (u *Unary) String() string      { return u.Operator.Lexeme + u.Right.String() }

// Binary is a left/operator/right arithmetic or comparison expression.
type Binary struct {
	Left     Expr
	Operator token.Token
	Right    Expr
}

func (b *Binary) exprNode()           {}
func (b *Binary) Pos() token.Position { return b.Operator.Pos }
func (b *Binary) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Left.String(), b.Operator.Lexeme, b.Right.String())
}

// Logical is `and`/`or`, kept distinct from Binary because it short-circuits
// (spec.md §4.4) instead of always evaluating both operands.
type Logical struct {
	Left     Expr
	Operator token.Token
	Right    Expr
}

func (l *Logical) exprNode()           {}
func (l *Logical) Pos() token.Position { return l.Operator.Pos }
func (l *Logical) String() string {
	return fmt.Sprintf("(%s %s %s)", l.Left.String(), l.Operator.Lexeme, l.Right.String())
}

// Call is `callee(args...)`.
type Call struct {
	Callee Expr
	Paren  token.Token // closing ')' — used to report arity errors at a stable position
	Args   []Expr
}

func (c *Call) exprNode()           {}
func (c *Call) Pos() token.Position { return c.Callee.Pos() }
func (c *Call) String() string {
	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		args[i] = a.String()
	}
	return c.Callee.String() + "(" + strings.Join(args, ", ") + ")"
}

// Get is `object.name` (property read or method reference).
type Get struct {
	Object Expr
	Name   token.Token
}

func (g *Get) exprNode()           {}
func (g *Get) Pos() token.Position { return g.Name.Pos }
func (g *Get) String() string      { return g.Object.String() + "." + g.Name.Lexeme }

// Set is `object.name = value` (property write).
type Set struct {
	Object Expr
	Name   token.Token
	Value  Expr
}

func (s *Set) exprNode()           {}
func (s *Set) Pos() token.Position { return s.Name.Pos }
func (s *Set) String() string {
	return s.Object.String() + "." + s.Name.Lexeme + " = " + s.Value.String()
}

// This is the `this` keyword inside a method body.
type This struct {
	Keyword token.Token
}

func (t *This) exprNode()           {}
func (t *This) Pos() token.Position { return t.Keyword.Pos }
func (t *This) String() string      { return "this" }

// Super is `super.method`.
type Super struct {
	Keyword token.Token
	Method  token.Token
}

func (s *Super) exprNode()           {}
func (s *Super) Pos() token.Position { return s.Keyword.Pos }
func (s *Super) String() string      { return "super." + s.Method.Lexeme }
