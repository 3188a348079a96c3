package resolver

import "github.com/cwbudde/sox/internal/ast"

func (r *Resolver) resolveStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		r.resolveStmt(s)
	}
}

func (r *Resolver) resolveStmt(s ast.Stmt) {
	switch stmt := s.(type) {
	case *ast.ExprStmt:
		r.resolveExpr(stmt.Expression)
	case *ast.PrintStmt:
		r.resolveExpr(stmt.Expression)
	case *ast.VarStmt:
		r.resolveVarStmt(stmt)
	case *ast.BlockStmt:
		r.beginScope()
		r.resolveStmts(stmt.Statements)
		r.endScope()
	case *ast.IfStmt:
		r.resolveExpr(stmt.Condition)
		r.resolveStmt(stmt.Then)
		if stmt.Else != nil {
			r.resolveStmt(stmt.Else)
		}
	case *ast.WhileStmt:
		r.resolveExpr(stmt.Condition)
		r.resolveStmt(stmt.Body)
	case *ast.FunctionStmt:
		r.declareDefine(stmt.Name)
		r.resolveFunction(stmt, inFunction)
	case *ast.ReturnStmt:
		r.resolveReturnStmt(stmt)
	case *ast.ClassStmt:
		r.resolveClassStmt(stmt)
	}
}

// resolveVarStmt declares the name before resolving the initializer, but
// leaves it marked not-yet-defined until the initializer is fully resolved.
// A reference to the same name inside the initializer then finds an
// undefined binding in the innermost scope, which resolveExpr's Variable
// case reports as reading a local in its own initializer (spec.md §4.3).
func (r *Resolver) resolveVarStmt(stmt *ast.VarStmt) {
	r.declare(stmt.Name)
	if stmt.Initializer != nil {
		r.resolveExpr(stmt.Initializer)
	}
	r.define(stmt.Name)
}

func (r *Resolver) resolveFunction(fn *ast.FunctionStmt, kind functionKind) {
	enclosing := r.currentFunction
	r.currentFunction = kind
	defer func() { r.currentFunction = enclosing }()

	r.beginScope()
	for _, p := range fn.Params {
		r.declareDefine(p)
	}
	r.resolveStmts(fn.Body)
	r.endScope()
}

func (r *Resolver) resolveReturnStmt(stmt *ast.ReturnStmt) {
	if r.currentFunction == noFunction {
		r.errorAt(stmt.Keyword.Pos, "Return not allowed at top-level code.")
		return
	}
	if stmt.Value != nil {
		if r.currentFunction == inInitializer {
			r.errorAt(stmt.Keyword.Pos, "can't return a value from an initializer")
		}
		r.resolveExpr(stmt.Value)
	}
}

func (r *Resolver) resolveClassStmt(stmt *ast.ClassStmt) {
	enclosingClass := r.currentClass
	r.currentClass = inClass
	defer func() { r.currentClass = enclosingClass }()

	r.declareDefine(stmt.Name)

	if stmt.Superclass != nil {
		if stmt.Superclass.Name.Lexeme == stmt.Name.Lexeme {
			r.errorAt(stmt.Superclass.Name.Pos, "a class can't inherit from itself")
		} else {
			r.currentClass = inSubclass
			r.resolveExpr(stmt.Superclass)
		}
	}

	if stmt.Superclass != nil {
		r.beginScope()
		r.scopes[len(r.scopes)-1].index["super"] = 0
		r.scopes[len(r.scopes)-1].bindings = append(r.scopes[len(r.scopes)-1].bindings, binding{name: "super", defined: true})
	}

	r.beginScope()
	r.scopes[len(r.scopes)-1].index["this"] = 0
	r.scopes[len(r.scopes)-1].bindings = append(r.scopes[len(r.scopes)-1].bindings, binding{name: "this", defined: true})

	for _, method := range stmt.Methods {
		kind := inMethod
		if method.Name.Lexeme == "init" {
			kind = inInitializer
		}
		r.resolveFunction(method, kind)
	}

	r.endScope()
	if stmt.Superclass != nil {
		r.endScope()
	}
}
