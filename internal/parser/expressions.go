package parser

import (
	"strconv"

	"github.com/cwbudde/sox/internal/ast"
	"github.com/cwbudde/sox/internal/token"
)

func (p *Parser) expression() ast.Expr {
	return p.assignment()
}

// assignment = (call ".")? IDENT "=" assignment | logic_or
//
// Parsed by first parsing the left-hand side as a full logic_or expression
// (which subsumes `call`), then, if an '=' follows, reinterpreting that
// left-hand side as an assignment target. This avoids needing unbounded
// lookahead to decide whether we're parsing an assignment.
func (p *Parser) assignment() ast.Expr {
	expr := p.or()
	if expr == nil {
		return nil
	}
	if p.match(token.EQUAL) {
		equals := p.previous()
		value := p.assignment()
		if value == nil {
			return nil
		}
		switch target := expr.(type) {
		case *ast.Variable:
			return &ast.Assign{Name: target.Name, Value: value}
		case *ast.Get:
			return &ast.Set{Object: target.Object, Name: target.Name, Value: value}
		}
		p.errorAt(equals, "invalid assignment target")
		return expr
	}
	return expr
}

// logic_or = logic_and ("or" logic_and)*
func (p *Parser) or() ast.Expr {
	expr := p.and()
	for expr != nil && p.match(token.OR) {
		op := p.previous()
		right := p.and()
		if right == nil {
			return nil
		}
		expr = &ast.Logical{Left: expr, Operator: op, Right: right}
	}
	return expr
}

// logic_and = equality ("and" equality)*
func (p *Parser) and() ast.Expr {
	expr := p.equality()
	for expr != nil && p.match(token.AND) {
		op := p.previous()
		right := p.equality()
		if right == nil {
			return nil
		}
		expr = &ast.Logical{Left: expr, Operator: op, Right: right}
	}
	return expr
}

// equality = comparison (("!="|"==") comparison)*
func (p *Parser) equality() ast.Expr {
	expr := p.comparison()
	for expr != nil && p.match(token.BANG_EQ, token.EQUAL_EQ) {
		op := p.previous()
		right := p.comparison()
		if right == nil {
			return nil
		}
		expr = &ast.Binary{Left: expr, Operator: op, Right: right}
	}
	return expr
}

// comparison = term (("<"|"<="|">"|">=") term)*
func (p *Parser) comparison() ast.Expr {
	expr := p.term()
	for expr != nil && p.match(token.LESS, token.LESS_EQ, token.GREATER, token.GREATER_EQ) {
		op := p.previous()
		right := p.term()
		if right == nil {
			return nil
		}
		expr = &ast.Binary{Left: expr, Operator: op, Right: right}
	}
	return expr
}

// term = factor (("-"|"+") factor)*
//
// Left-then-right evaluation order (spec.md §9 open question, resolved): the
// parse tree's shape does not encode evaluation order — that's an evaluator
// decision — but it's documented here since this is where operand position
// is fixed.
func (p *Parser) term() ast.Expr {
	expr := p.factor()
	for expr != nil && p.match(token.MINUS, token.PLUS) {
		op := p.previous()
		right := p.factor()
		if right == nil {
			return nil
		}
		expr = &ast.Binary{Left: expr, Operator: op, Right: right}
	}
	return expr
}

// factor = unary (("/"|"*"|"%") unary)*
func (p *Parser) factor() ast.Expr {
	expr := p.unary()
	for expr != nil && p.match(token.SLASH, token.STAR, token.PERCENT) {
		op := p.previous()
		right := p.unary()
		if right == nil {
			return nil
		}
		expr = &ast.Binary{Left: expr, Operator: op, Right: right}
	}
	return expr
}

// unary = ("!"|"-") unary | call
func (p *Parser) unary() ast.Expr {
	if p.match(token.BANG, token.MINUS) {
		op := p.previous()
		right := p.unary()
		if right == nil {
			return nil
		}
		return &ast.Unary{Operator: op, Right: right}
	}
	return p.call()
}

// call = primary ( "(" arguments? ")" | "." IDENT )*
func (p *Parser) call() ast.Expr {
	expr := p.primary()
	if expr == nil {
		return nil
	}
	for {
		switch {
		case p.match(token.LPAREN):
			expr = p.finishCall(expr)
			if expr == nil {
				return nil
			}
		case p.match(token.DOT):
			name, ok := p.consume(token.IDENT, "expected property name after '.'")
			if !ok {
				return nil
			}
			expr = &ast.Get{Object: expr, Name: name}
		default:
			return expr
		}
	}
}

func (p *Parser) finishCall(callee ast.Expr) ast.Expr {
	var args []ast.Expr
	if !p.check(token.RPAREN) {
		for {
			if len(args) >= maxArgs {
				p.errorAt(p.peek(), "can't have more than "+strconv.Itoa(maxArgs)+" arguments")
			}
			arg := p.expression()
			if arg == nil {
				return nil
			}
			args = append(args, arg)
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	paren, ok := p.consume(token.RPAREN, "expected ')' after arguments")
	if !ok {
		return nil
	}
	return &ast.Call{Callee: callee, Paren: paren, Args: args}
}

// primary = "None"|"true"|"false"|NUMBER|STRING|"this"
//         | "super" "." IDENT
//         | IDENT | "(" expression ")"
func (p *Parser) primary() ast.Expr {
	switch {
	case p.match(token.FALSE):
		return &ast.Literal{Token: p.previous(), Value: false}
	case p.match(token.TRUE):
		return &ast.Literal{Token: p.previous(), Value: true}
	case p.match(token.NONE):
		return &ast.Literal{Token: p.previous(), Value: nil}
	case p.match(token.NUMBER_INT, token.NUMBER_FLOAT, token.STRING):
		tok := p.previous()
		return &ast.Literal{Token: tok, Value: tok.Literal}
	case p.match(token.THIS):
		return &ast.This{Keyword: p.previous()}
	case p.match(token.SUPER):
		keyword := p.previous()
		if _, ok := p.consume(token.DOT, "expected '.' after 'super'"); !ok {
			return nil
		}
		method, ok := p.consume(token.IDENT, "expected superclass method name")
		if !ok {
			return nil
		}
		return &ast.Super{Keyword: keyword, Method: method}
	case p.match(token.IDENT):
		return &ast.Variable{Name: p.previous()}
	case p.match(token.LPAREN):
		lparen := p.previous()
		expr := p.expression()
		if expr == nil {
			return nil
		}
		if _, ok := p.consume(token.RPAREN, "expected ')' after expression"); !ok {
			return nil
		}
		return &ast.Grouping{LParen: lparen, Expression: expr}
	default:
		p.errorAt(p.peek(), "expected expression")
		return nil
	}
}
