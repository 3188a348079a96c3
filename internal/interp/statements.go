package interp

import (
	"fmt"

	"github.com/cwbudde/sox/internal/ast"
	"github.com/cwbudde/sox/internal/values"
)

func (it *Interpreter) execStmts(stmts []ast.Stmt, env *Environment) error {
	for _, s := range stmts {
		if err := it.execStmt(s, env); err != nil {
			return err
		}
	}
	return nil
}

func (it *Interpreter) execStmt(s ast.Stmt, env *Environment) error {
	switch stmt := s.(type) {
	case *ast.ExprStmt:
		_, err := it.eval(stmt.Expression, env)
		return err
	case *ast.PrintStmt:
		v, err := it.eval(stmt.Expression, env)
		if err != nil {
			return err
		}
		fmt.Fprintln(it.Out, v.Render())
		return nil
	case *ast.VarStmt:
		return it.execVarStmt(stmt, env)
	case *ast.BlockStmt:
		return it.execStmts(stmt.Statements, env.Child())
	case *ast.IfStmt:
		return it.execIfStmt(stmt, env)
	case *ast.WhileStmt:
		return it.execWhileStmt(stmt, env)
	case *ast.FunctionStmt:
		return it.execFunctionStmt(stmt, env)
	case *ast.ReturnStmt:
		return it.execReturnStmt(stmt, env)
	case *ast.ClassStmt:
		return it.execClassStmt(stmt, env)
	default:
		return fmt.Errorf("interp: unhandled statement %T", s)
	}
}

func (it *Interpreter) execVarStmt(stmt *ast.VarStmt, env *Environment) error {
	var val values.Value = values.None{}
	if stmt.Initializer != nil {
		v, err := it.eval(stmt.Initializer, env)
		if err != nil {
			return err
		}
		val = v
	}
	if env.IsGlobal() {
		env.DefineGlobal(stmt.Name.Lexeme, val)
	} else {
		env.Define(val)
	}
	return nil
}

func (it *Interpreter) execIfStmt(stmt *ast.IfStmt, env *Environment) error {
	cond, err := it.eval(stmt.Condition, env)
	if err != nil {
		return err
	}
	switch {
	case values.Truthy(cond):
		return it.execStmt(stmt.Then, env)
	case stmt.Else != nil:
		return it.execStmt(stmt.Else, env)
	default:
		return nil
	}
}

func (it *Interpreter) execWhileStmt(stmt *ast.WhileStmt, env *Environment) error {
	for {
		cond, err := it.eval(stmt.Condition, env)
		if err != nil {
			return err
		}
		if !values.Truthy(cond) {
			return nil
		}
		if err := it.execStmt(stmt.Body, env); err != nil {
			return err
		}
	}
}

func (it *Interpreter) execFunctionStmt(stmt *ast.FunctionStmt, env *Environment) error {
	fn := &values.Function{Decl: stmt, Closure: env}
	if env.IsGlobal() {
		env.DefineGlobal(stmt.Name.Lexeme, fn)
	} else {
		env.Define(fn)
	}
	return nil
}

func (it *Interpreter) execReturnStmt(stmt *ast.ReturnStmt, env *Environment) error {
	var val values.Value = values.None{}
	if stmt.Value != nil {
		v, err := it.eval(stmt.Value, env)
		if err != nil {
			return err
		}
		val = v
	}
	return &returnSignal{value: val}
}

// execClassStmt mirrors the resolver's scope layout exactly: the class name
// is declared in the enclosing scope before anything else, a child scope
// holds `super` when there's a superclass, and every method closes over
// that scope — `this` is bound later, per call, by bindMethod (spec.md
// §4.6.2 "Class").
func (it *Interpreter) execClassStmt(stmt *ast.ClassStmt, env *Environment) error {
	var localIndex int
	if !env.IsGlobal() {
		localIndex = env.Define(values.None{})
	}

	var superclass *values.Class
	if stmt.Superclass != nil {
		v, err := it.eval(stmt.Superclass, env)
		if err != nil {
			return err
		}
		sc, ok := v.(*values.Class)
		if !ok {
			return it.runtimeErr(stmt.Superclass.Name, "Superclass must be a class")
		}
		superclass = sc
	}

	classEnv := env
	if superclass != nil {
		classEnv = env.Child()
		classEnv.Define(superclass)
	}

	methods := make(map[string]*values.Function, len(stmt.Methods))
	for _, m := range stmt.Methods {
		methods[m.Name.Lexeme] = &values.Function{
			Decl:          m,
			Closure:       classEnv,
			IsInitializer: m.Name.Lexeme == "init",
		}
	}

	class := &values.Class{Name: stmt.Name.Lexeme, Superclass: superclass, Methods: methods}
	if env.IsGlobal() {
		env.DefineGlobal(stmt.Name.Lexeme, class)
	} else {
		env.AssignAt(0, localIndex, class)
	}
	return nil
}
