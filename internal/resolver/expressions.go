package resolver

import "github.com/cwbudde/sox/internal/ast"

func (r *Resolver) resolveExpr(e ast.Expr) {
	switch expr := e.(type) {
	case *ast.Literal:
		// no references to resolve
	case *ast.Variable:
		if !r.inGlobalScope() {
			if sc := r.scopes[len(r.scopes)-1]; sc != nil {
				if i, ok := sc.index[expr.Name.Lexeme]; ok && !sc.bindings[i].defined {
					r.errorAt(expr.Name.Pos, "can't read local variable '"+expr.Name.Lexeme+"' in its own initializer")
				}
			}
		}
		r.resolveLocal(expr.Name, expr.Name.Lexeme)
	case *ast.Assign:
		r.resolveExpr(expr.Value)
		r.resolveLocal(expr.Name, expr.Name.Lexeme)
	case *ast.Grouping:
		r.resolveExpr(expr.Expression)
	case *ast.Unary:
		r.resolveExpr(expr.Right)
	case *ast.Binary:
		r.resolveExpr(expr.Left)
		r.resolveExpr(expr.Right)
	case *ast.Logical:
		r.resolveExpr(expr.Left)
		r.resolveExpr(expr.Right)
	case *ast.Call:
		r.resolveExpr(expr.Callee)
		for _, a := range expr.Args {
			r.resolveExpr(a)
		}
	case *ast.Get:
		r.resolveExpr(expr.Object)
	case *ast.Set:
		r.resolveExpr(expr.Value)
		r.resolveExpr(expr.Object)
	case *ast.This:
		if r.currentClass == noClass {
			r.errorAt(expr.Keyword.Pos, "can't use 'this' outside of a class")
			return
		}
		r.resolveLocal(expr.Keyword, "this")
	case *ast.Super:
		switch r.currentClass {
		case noClass:
			r.errorAt(expr.Keyword.Pos, "can't use 'super' outside of a class")
		case inClass:
			r.errorAt(expr.Keyword.Pos, "can't use 'super' in a class with no superclass")
		default:
			r.resolveLocal(expr.Keyword, "super")
		}
	}
}
