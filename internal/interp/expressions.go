package interp

import (
	"fmt"

	"github.com/cwbudde/sox/internal/ast"
	"github.com/cwbudde/sox/internal/token"
	"github.com/cwbudde/sox/internal/values"
)

func (it *Interpreter) eval(e ast.Expr, env *Environment) (values.Value, error) {
	switch expr := e.(type) {
	case *ast.Literal:
		return literalValue(expr), nil
	case *ast.Variable:
		return it.lookupVariable(expr.Name, env)
	case *ast.Assign:
		val, err := it.eval(expr.Value, env)
		if err != nil {
			return nil, err
		}
		if err := it.assignVariable(expr.Name, env, val); err != nil {
			return nil, err
		}
		return val, nil
	case *ast.Grouping:
		return it.eval(expr.Expression, env)
	case *ast.Unary:
		return it.evalUnary(expr, env)
	case *ast.Binary:
		return it.evalBinary(expr, env)
	case *ast.Logical:
		return it.evalLogical(expr, env)
	case *ast.Call:
		return it.evalCall(expr, env)
	case *ast.Get:
		return it.evalGet(expr, env)
	case *ast.Set:
		return it.evalSet(expr, env)
	case *ast.This:
		return it.lookupVariable(expr.Keyword, env)
	case *ast.Super:
		return it.evalSuper(expr, env)
	default:
		return nil, fmt.Errorf("interp: unhandled expression %T", e)
	}
}

func literalValue(lit *ast.Literal) values.Value {
	switch v := lit.Value.(type) {
	case nil:
		return values.None{}
	case bool:
		return values.Bool(v)
	case int64:
		return values.Int(v)
	case float64:
		return values.Float(v)
	case string:
		return values.String(v)
	default:
		return values.None{}
	}
}

func (it *Interpreter) evalUnary(expr *ast.Unary, env *Environment) (values.Value, error) {
	right, err := it.eval(expr.Right, env)
	if err != nil {
		return nil, err
	}
	switch expr.Operator.Type {
	case token.MINUS:
		v, err := values.Negate(right)
		if err != nil {
			return nil, it.runtimeErr(expr.Operator, err.Error())
		}
		return v, nil
	case token.BANG:
		return values.Bool(!values.Truthy(right)), nil
	default:
		return nil, it.runtimeErrf(expr.Operator, "unknown unary operator %q", expr.Operator.Lexeme)
	}
}

// evalBinary evaluates left, then right (spec.md §9 open-question
// resolution), then applies the operator.
func (it *Interpreter) evalBinary(expr *ast.Binary, env *Environment) (values.Value, error) {
	left, err := it.eval(expr.Left, env)
	if err != nil {
		return nil, err
	}
	right, err := it.eval(expr.Right, env)
	if err != nil {
		return nil, err
	}

	var (
		result values.Value
		opErr  error
	)
	switch expr.Operator.Type {
	case token.PLUS:
		result, opErr = values.Add(left, right)
	case token.MINUS:
		result, opErr = values.Sub(left, right)
	case token.STAR:
		result, opErr = values.Mul(left, right)
	case token.SLASH:
		result, opErr = values.Div(left, right)
	case token.PERCENT:
		result, opErr = values.Mod(left, right)
	case token.LESS:
		result, opErr = values.Less(left, right)
	case token.LESS_EQ:
		result, opErr = values.LessEq(left, right)
	case token.GREATER:
		result, opErr = values.Greater(left, right)
	case token.GREATER_EQ:
		result, opErr = values.GreaterEq(left, right)
	case token.EQUAL_EQ:
		return values.Bool(values.Equal(left, right)), nil
	case token.BANG_EQ:
		return values.Bool(!values.Equal(left, right)), nil
	default:
		return nil, it.runtimeErrf(expr.Operator, "unknown binary operator %q", expr.Operator.Lexeme)
	}
	if opErr != nil {
		return nil, it.runtimeErr(expr.Operator, opErr.Error())
	}
	return result, nil
}

// evalLogical short-circuits: `or` returns the left operand once it's
// truthy, `and` once it's falsy, without evaluating the right at all.
func (it *Interpreter) evalLogical(expr *ast.Logical, env *Environment) (values.Value, error) {
	left, err := it.eval(expr.Left, env)
	if err != nil {
		return nil, err
	}
	if expr.Operator.Type == token.OR {
		if values.Truthy(left) {
			return left, nil
		}
	} else {
		if !values.Truthy(left) {
			return left, nil
		}
	}
	return it.eval(expr.Right, env)
}

func (it *Interpreter) evalGet(expr *ast.Get, env *Environment) (values.Value, error) {
	obj, err := it.eval(expr.Object, env)
	if err != nil {
		return nil, err
	}
	instance, ok := obj.(*values.Instance)
	if !ok {
		return nil, it.runtimeErr(expr.Name, "Only class instances have attributes")
	}
	if v, ok := instance.Get(expr.Name.Lexeme); ok {
		return v, nil
	}
	if m := instance.Class.FindMethod(expr.Name.Lexeme); m != nil {
		return bindMethod(m, instance), nil
	}
	return nil, it.runtimeErrf(expr.Name, "Undefined property %s", expr.Name.Lexeme)
}

func (it *Interpreter) evalSet(expr *ast.Set, env *Environment) (values.Value, error) {
	obj, err := it.eval(expr.Object, env)
	if err != nil {
		return nil, err
	}
	instance, ok := obj.(*values.Instance)
	if !ok {
		return nil, it.runtimeErr(expr.Name, "Only instances have fields")
	}
	val, err := it.eval(expr.Value, env)
	if err != nil {
		return nil, err
	}
	instance.Set(expr.Name.Lexeme, val)
	return val, nil
}

// evalSuper resolves `super.method`: the coordinate points at the `super`
// binding, and `this` always lives exactly one scope shallower (the
// resolver pushes the `this` scope directly inside the `super` scope, see
// resolver.resolveClassStmt).
func (it *Interpreter) evalSuper(expr *ast.Super, env *Environment) (values.Value, error) {
	coord, ok := it.table[expr.Keyword.ID]
	if !ok {
		return nil, it.runtimeErr(expr.Keyword, "invalid use of 'super'")
	}
	superclass, ok := env.GetAt(coord.Depth, coord.Index).(*values.Class)
	if !ok {
		return nil, it.runtimeErr(expr.Keyword, "invalid use of 'super'")
	}
	instance, ok := env.GetAt(coord.Depth-1, 0).(*values.Instance)
	if !ok {
		return nil, it.runtimeErr(expr.Keyword, "invalid use of 'super'")
	}
	method := superclass.FindMethod(expr.Method.Lexeme)
	if method == nil {
		return nil, it.runtimeErrf(expr.Method, "Undefined property %s", expr.Method.Lexeme)
	}
	return bindMethod(method, instance), nil
}
