// Package ast defines the expression and statement node types produced by
// the parser. Nodes are immutable after parse: the resolver and evaluator
// only ever read them.
package ast

import "github.com/cwbudde/sox/internal/token"

// Node is the base interface implemented by every AST node.
type Node interface {
	Pos() token.Position
	String() string
}

// Expr is any node that produces a value.
type Expr interface {
	Node
	exprNode()
}

// Stmt is any node that performs an action but doesn't itself produce a
// value.
type Stmt interface {
	Node
	stmtNode()
}

// Program is the root of the AST: a sequence of top-level statements.
type Program struct {
	Statements []Stmt
}

func (p *Program) Pos() token.Position {
	if len(p.Statements) > 0 {
		return p.Statements[0].Pos()
	}
	return token.Position{Line: 1, Column: 1}
}

func (p *Program) String() string {
	var sb []byte
	for _, s := range p.Statements {
		sb = append(sb, s.String()...)
	}
	return string(sb)
}
