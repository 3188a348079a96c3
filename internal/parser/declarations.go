package parser

import (
	"strconv"

	"github.com/cwbudde/sox/internal/ast"
	"github.com/cwbudde/sox/internal/token"
)

// declaration = classDecl | funDecl | varDecl | statement
func (p *Parser) declaration() ast.Stmt {
	var stmt ast.Stmt
	switch {
	case p.match(token.CLASS):
		stmt = p.classDecl()
	case p.match(token.DEF):
		stmt = p.funDecl("function")
	case p.match(token.LET):
		stmt = p.varDecl()
	default:
		stmt = p.statement()
	}
	if stmt == nil {
		p.synchronize()
		return nil
	}
	return stmt
}

// classDecl = "class" IDENT (":" IDENT)? "{" funDecl* "}"
func (p *Parser) classDecl() ast.Stmt {
	name, ok := p.consume(token.IDENT, "expected class name")
	if !ok {
		return nil
	}

	var superclass *ast.Variable
	if p.match(token.COLON) {
		superName, ok := p.consume(token.IDENT, "expected superclass name")
		if !ok {
			return nil
		}
		superclass = &ast.Variable{Name: superName}
	}

	if _, ok := p.consume(token.LBRACE, "expected '{' before class body"); !ok {
		return nil
	}

	var methods []*ast.FunctionStmt
	for !p.check(token.RBRACE) && !p.isAtEnd() {
		m := p.funDecl("method")
		if m == nil {
			return nil
		}
		methods = append(methods, m.(*ast.FunctionStmt))
	}

	if _, ok := p.consume(token.RBRACE, "expected '}' after class body"); !ok {
		return nil
	}

	return &ast.ClassStmt{Name: name, Superclass: superclass, Methods: methods}
}

// funDecl = "def" IDENT "(" params? ")" block
// Methods reuse this without the leading "def" (the caller already consumed
// it, or — for methods — never expects it).
func (p *Parser) funDecl(kind string) ast.Stmt {
	name, ok := p.consume(token.IDENT, "expected "+kind+" name")
	if !ok {
		return nil
	}
	if _, ok := p.consume(token.LPAREN, "expected '(' after "+kind+" name"); !ok {
		return nil
	}
	var params []token.Token
	if !p.check(token.RPAREN) {
		for {
			if len(params) >= maxArgs {
				p.errorAt(p.peek(), "can't have more than "+strconv.Itoa(maxArgs)+" parameters")
			}
			param, ok := p.consume(token.IDENT, "expected parameter name")
			if !ok {
				return nil
			}
			params = append(params, param)
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	if _, ok := p.consume(token.RPAREN, "expected ')' after parameters"); !ok {
		return nil
	}
	if _, ok := p.consume(token.LBRACE, "expected '{' before "+kind+" body"); !ok {
		return nil
	}
	body := p.blockStatements()
	return &ast.FunctionStmt{Name: name, Params: params, Body: body}
}

// varDecl = "let" IDENT ("=" expression)? ";"
func (p *Parser) varDecl() ast.Stmt {
	name, ok := p.consume(token.IDENT, "expected variable name")
	if !ok {
		return nil
	}
	var initializer ast.Expr
	if p.match(token.EQUAL) {
		initializer = p.expression()
		if initializer == nil {
			return nil
		}
	}
	if _, ok := p.consume(token.SEMICOLON, "expected ';' after variable declaration"); !ok {
		return nil
	}
	return &ast.VarStmt{Name: name, Initializer: initializer}
}
