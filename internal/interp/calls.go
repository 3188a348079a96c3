package interp

import (
	"github.com/cwbudde/sox/internal/ast"
	"github.com/cwbudde/sox/internal/token"
	"github.com/cwbudde/sox/internal/values"
)

func (it *Interpreter) evalCall(expr *ast.Call, env *Environment) (values.Value, error) {
	callee, err := it.eval(expr.Callee, env)
	if err != nil {
		return nil, err
	}
	args := make([]values.Value, len(expr.Args))
	for i, a := range expr.Args {
		v, err := it.eval(a, env)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	switch fn := callee.(type) {
	case *values.Function:
		return it.callFunction(fn, args, expr.Paren)
	case *values.Class:
		return it.instantiate(fn, args, expr.Paren)
	default:
		return nil, it.runtimeErrf(expr.Paren, "%s object is not callable", callee.TypeName())
	}
}

// callFunction binds arguments into a fresh child of the function's closure
// and executes its body, per spec.md §4.6.3. An `init` method always
// returns the receiver (bound as `this` in its own closure) regardless of
// what its body returns.
func (it *Interpreter) callFunction(fn *values.Function, args []values.Value, paren token.Token) (values.Value, error) {
	params := fn.Decl.Params
	if len(args) != len(params) {
		return nil, it.runtimeErrf(paren, "Expected %d arguments but got %d", len(params), len(args))
	}

	closure, _ := fn.Closure.(*Environment)
	callEnv := closure.Child()
	for _, a := range args {
		callEnv.Define(a)
	}

	err := it.execStmts(fn.Decl.Body, callEnv)
	if ret, ok := err.(*returnSignal); ok {
		if fn.IsInitializer {
			return closure.GetAt(0, 0), nil
		}
		return ret.value, nil
	}
	if err != nil {
		return nil, err
	}
	if fn.IsInitializer {
		return closure.GetAt(0, 0), nil
	}
	return values.None{}, nil
}

// instantiate implements the class-descriptor call slot: allocate an
// instance, invoke its bound `init` if present (arity must match), then
// always return the instance rather than whatever `init` returned.
func (it *Interpreter) instantiate(class *values.Class, args []values.Value, paren token.Token) (values.Value, error) {
	instance := values.NewInstance(class)
	init := class.FindMethod("init")
	if init == nil {
		if len(args) != 0 {
			return nil, it.runtimeErrf(paren, "Expected 0 arguments but got %d", len(args))
		}
		return instance, nil
	}
	bound := bindMethod(init, instance)
	if _, err := it.callFunction(bound, args, paren); err != nil {
		return nil, err
	}
	return instance, nil
}
