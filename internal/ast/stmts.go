package ast

import (
	"strings"

	"github.com/cwbudde/sox/internal/token"
)

// ExprStmt evaluates an expression and discards the result.
type ExprStmt struct {
	Expression Expr
}

func (s *ExprStmt) stmtNode()           {}
func (s *ExprStmt) Pos() token.Position { return s.Expression.Pos() }
func (s *ExprStmt) String() string      { return s.Expression.String() + ";" }

// PrintStmt is `print expr;`.
type PrintStmt struct {
	Keyword    token.Token
	Expression Expr
}

func (s *PrintStmt) stmtNode()           {}
func (s *PrintStmt) Pos() token.Position { return s.Keyword.Pos }
func (s *PrintStmt) String() string      { return "print " + s.Expression.String() + ";" }

// VarStmt is `let name = initializer;` or `let name;` (Initializer is nil).
type VarStmt struct {
	Name        token.Token
	Initializer Expr
}

func (s *VarStmt) stmtNode()           {}
func (s *VarStmt) Pos() token.Position { return s.Name.Pos }
func (s *VarStmt) String() string {
	if s.Initializer == nil {
		return "let " + s.Name.Lexeme + ";"
	}
	return "let " + s.Name.Lexeme + " = " + s.Initializer.String() + ";"
}

// BlockStmt is `{ statements... }`.
type BlockStmt struct {
	LBrace     token.Token
	Statements []Stmt
}

func (s *BlockStmt) stmtNode()           {}
func (s *BlockStmt) Pos() token.Position { return s.LBrace.Pos }
func (s *BlockStmt) String() string {
	var sb strings.Builder
	sb.WriteString("{ ")
	for _, st := range s.Statements {
		sb.WriteString(st.String())
		sb.WriteByte(' ')
	}
	sb.WriteString("}")
	return sb.String()
}

// IfStmt is `if (cond) then [else else]`. Else is nil when absent.
type IfStmt struct {
	Keyword   token.Token
	Condition Expr
	Then      Stmt
	Else      Stmt
}

func (s *IfStmt) stmtNode()           {}
func (s *IfStmt) Pos() token.Position { return s.Keyword.Pos }
func (s *IfStmt) String() string {
	out := "if (" + s.Condition.String() + ") " + s.Then.String()
	if s.Else != nil {
		out += " else " + s.Else.String()
	}
	return out
}

// WhileStmt is `while (cond) body`. `for` loops desugar into this (plus a
// block for the initializer), so there is no separate ForStmt node.
type WhileStmt struct {
	Keyword   token.Token
	Condition Expr
	Body      Stmt
}

func (s *WhileStmt) stmtNode()           {}
func (s *WhileStmt) Pos() token.Position { return s.Keyword.Pos }
func (s *WhileStmt) String() string {
	return "while (" + s.Condition.String() + ") " + s.Body.String()
}

// FunctionStmt is a named function declaration. It is also used, without the
// leading `def` keyword, to represent a class's method declarations — the
// node shape is identical, only the surrounding ClassStmt distinguishes the
// two roles.
type FunctionStmt struct {
	Name   token.Token
	Params []token.Token
	Body   []Stmt
}

func (s *FunctionStmt) stmtNode()           {}
func (s *FunctionStmt) Pos() token.Position { return s.Name.Pos }
func (s *FunctionStmt) String() string {
	params := make([]string, len(s.Params))
	for i, p := range s.Params {
		params[i] = p.Lexeme
	}
	return "def " + s.Name.Lexeme + "(" + strings.Join(params, ", ") + ") { ... }"
}

// ReturnStmt is `return;` or `return value;`. Value is nil for the bare
// form.
type ReturnStmt struct {
	Keyword token.Token
	Value   Expr
}

func (s *ReturnStmt) stmtNode()           {}
func (s *ReturnStmt) Pos() token.Position { return s.Keyword.Pos }
func (s *ReturnStmt) String() string {
	if s.Value == nil {
		return "return;"
	}
	return "return " + s.Value.String() + ";"
}

// ClassStmt is a class declaration. Superclass is nil when there is no
// `: Base` clause.
type ClassStmt struct {
	Name       token.Token
	Superclass *Variable
	Methods    []*FunctionStmt
}

func (s *ClassStmt) stmtNode()           {}
func (s *ClassStmt) Pos() token.Position { return s.Name.Pos }
func (s *ClassStmt) String() string {
	var sb strings.Builder
	sb.WriteString("class " + s.Name.Lexeme)
	if s.Superclass != nil {
		sb.WriteString(" : " + s.Superclass.String())
	}
	sb.WriteString(" { ")
	for _, m := range s.Methods {
		sb.WriteString(m.String())
		sb.WriteByte(' ')
	}
	sb.WriteString("}")
	return sb.String()
}
