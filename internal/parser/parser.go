// Package parser implements sox's recursive-descent parser: tokens to an
// AST, with panic-mode synchronization so a single syntax error doesn't
// prevent reporting the rest.
package parser

import (
	"github.com/cwbudde/sox/internal/ast"
	"github.com/cwbudde/sox/internal/sourceerr"
	"github.com/cwbudde/sox/internal/token"
)

// maxArgs is the hard cap on call arguments and function parameters
// (spec.md §4.2). Exceeding it is a syntax error that does not abort
// parsing.
const maxArgs = 255

// SyntaxError is a single parse-time error: a message and the line on which
// it occurred.
type SyntaxError struct {
	sourceerr.Positioned
}

// Format renders the error with a caret against the original source.
func (e *SyntaxError) Format(source string, color bool) string {
	return sourceerr.Render(e.Message, e.Pos, source, color)
}

// Parser consumes a pre-filtered token stream (no whitespace/newline/comment
// tokens — see New) and produces a Program, or a list of SyntaxErrors if any
// rule failed.
type Parser struct {
	tokens  []token.Token
	current int
	errors  []*SyntaxError
}

// isTrivia is the skip-set for the lexer's trivia tokens: the parser never
// sees WHITESPACE, NEWLINE, or COMMENT tokens.
func isTrivia(t token.Token) bool {
	switch t.Type {
	case token.WHITESPACE, token.NEWLINE, token.COMMENT:
		return true
	}
	return false
}

// New filters trivia out of toks and returns a Parser ready to call Parse.
func New(toks []token.Token) *Parser {
	filtered := make([]token.Token, 0, len(toks))
	for _, t := range toks {
		if !isTrivia(t) {
			filtered = append(filtered, t)
		}
	}
	return &Parser{tokens: filtered}
}

// Parse runs the program rule to completion, returning the parsed statement
// list and any accumulated syntax errors. Even on error, Statements may be
// partially populated; callers should check len(errors) before using it.
func (p *Parser) Parse() (*ast.Program, []*SyntaxError) {
	prog := &ast.Program{}
	for !p.isAtEnd() {
		if stmt := p.declaration(); stmt != nil {
			prog.Statements = append(prog.Statements, stmt)
		}
	}
	return prog, p.errors
}

func (p *Parser) peek() token.Token { return p.tokens[p.current] }

func (p *Parser) previous() token.Token { return p.tokens[p.current-1] }

func (p *Parser) isAtEnd() bool { return p.peek().Type == token.EOF }

func (p *Parser) advance() token.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) check(t token.Type) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Type == t
}

func (p *Parser) match(types ...token.Type) bool {
	for _, t := range types {
		if p.check(t) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) consume(t token.Type, message string) (token.Token, bool) {
	if p.check(t) {
		return p.advance(), true
	}
	p.errorAt(p.peek(), message)
	return token.Token{}, false
}

func (p *Parser) errorAt(tok token.Token, message string) {
	p.errors = append(p.errors, &SyntaxError{sourceerr.Positioned{Message: message, Pos: tok.Pos}})
}

// synchronize implements panic-mode recovery (spec.md §4.2): consume tokens
// until a semicolon is swallowed or the next token starts a new top-level
// construct.
func (p *Parser) synchronize() {
	p.advance()
	for !p.isAtEnd() {
		if p.previous().Type == token.SEMICOLON {
			return
		}
		switch p.peek().Type {
		case token.CLASS, token.DEF, token.LET, token.FOR, token.IF,
			token.WHILE, token.PRINT, token.RETURN:
			return
		}
		p.advance()
	}
}
