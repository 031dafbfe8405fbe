package interp

import (
	"strings"

	"github.com/cwbudde/fplc/internal/ast"
	"github.com/cwbudde/fplc/internal/errors"
)

func (it *Interpreter) evalExpression(expr ast.Expression, env *Environment) (Value, error) {
	switch n := expr.(type) {
	case *ast.IntegerLiteral:
		return &IntegerValue{Value: n.Value}, nil
	case *ast.FloatLiteral:
		return &FloatValue{Value: n.Value}, nil
	case *ast.StringLiteral:
		return &StringValue{Value: n.Value}, nil
	case *ast.RawStringLiteral:
		return &StringValue{Value: n.Value}, nil
	case *ast.FormatString:
		return it.evalFormatString(n, env)
	case *ast.BoolLiteral:
		return &BooleanValue{Value: n.Value}, nil
	case *ast.NullLiteral:
		return Null, nil
	case *ast.NanLiteral:
		return NaN, nil
	case *ast.ListLiteral:
		return it.evalListLiteral(n, env)
	case *ast.Variable:
		v, ok := env.Get(n.Name)
		if !ok {
			return nil, errors.NewAt(errors.NameError, n.Pos(), "undefined variable %q", n.Name)
		}
		return v, nil
	case *ast.Index:
		return it.evalIndex(n, env)
	case *ast.FieldAccess:
		return it.evalFieldAccess(n, env)
	case *ast.Call:
		return it.evalCall(n, env)
	case *ast.MethodCall:
		return it.evalMethodCall(n, env)
	case *ast.Unary:
		return it.evalUnary(n, env)
	case *ast.Binary:
		return it.evalBinary(n, env)
	case *ast.Display:
		if _, err := it.evalDisplayValue(n.Value, env, true); err != nil {
			return nil, err
		}
		return Null, nil
	case *ast.DisplayInline:
		if _, err := it.evalDisplayValue(n.Value, env, false); err != nil {
			return nil, err
		}
		return Null, nil
	}
	return nil, errors.NewAt(errors.ParseError, expr.Pos(), "unhandled expression %T", expr)
}

func (it *Interpreter) evalFormatString(n *ast.FormatString, env *Environment) (Value, error) {
	var sb strings.Builder
	for _, part := range n.Parts {
		if part.Expr == nil {
			sb.WriteString(part.Literal)
			continue
		}
		v, err := it.evalExpression(part.Expr, env)
		if err != nil {
			return nil, err
		}
		sb.WriteString(v.String())
	}
	return &StringValue{Value: sb.String()}, nil
}

func (it *Interpreter) evalListLiteral(n *ast.ListLiteral, env *Environment) (Value, error) {
	out := &ListValue{Elements: make([]Value, 0, len(n.Elements))}
	for _, elExpr := range n.Elements {
		v, err := it.evalExpression(elExpr, env)
		if err != nil {
			return nil, err
		}
		out.Elements = append(out.Elements, CloneForAssignment(v))
	}
	return out, nil
}

func (it *Interpreter) evalIndex(n *ast.Index, env *Environment) (Value, error) {
	left, err := it.evalExpression(n.Left, env)
	if err != nil {
		return nil, err
	}
	list, ok := left.(*ListValue)
	if !ok {
		return nil, errors.NewAt(errors.TypeError, n.Pos(), "cannot index into %s", left.Type())
	}
	idxVal, err := it.evalExpression(n.Index, env)
	if err != nil {
		return nil, err
	}
	idx, err := requireInt(idxVal, n.Pos(), "index")
	if err != nil {
		return nil, err
	}
	if idx < 1 || int(idx) > len(list.Elements) {
		return nil, errors.NewAt(errors.IndexError, n.Pos(), "Index out of range (%d)", idx)
	}
	return list.Elements[idx-1], nil
}

func (it *Interpreter) evalFieldAccess(n *ast.FieldAccess, env *Environment) (Value, error) {
	left, err := it.evalExpression(n.Left, env)
	if err != nil {
		return nil, err
	}
	inst, ok := left.(*InstanceValue)
	if !ok {
		return nil, errors.NewAt(errors.TypeError, n.Pos(), "cannot read field of %s", left.Type())
	}
	v, ok := inst.Fields[n.Field]
	if !ok {
		return nil, errors.NewAt(errors.NameError, n.Pos(), "undefined field %q on %s", n.Field, inst.Type())
	}
	return v, nil
}

func (it *Interpreter) evalArgs(argExprs []ast.Expression, env *Environment) ([]Value, error) {
	args := make([]Value, 0, len(argExprs))
	for _, a := range argExprs {
		v, err := it.evalExpression(a, env)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}
	return args, nil
}

func (it *Interpreter) evalCall(n *ast.Call, env *Environment) (Value, error) {
	// User-declared procedures and classes take precedence over a
	// same-named builtin (spec.md §4.4 reserves the names, but nothing
	// stops a program from shadowing one; the registry is a fallback).
	if v, ok := env.Get(n.Name); ok {
		switch fn := v.(type) {
		case *ProcedureValue:
			args, err := it.evalArgs(n.Args, env)
			if err != nil {
				return nil, err
			}
			return it.callProcedure(fn, args, n.Pos())
		case *ClassValue:
			if len(n.Args) != 0 {
				return nil, errors.NewAt(errors.ArityError, n.Pos(), "%s() takes no arguments", fn.Name)
			}
			return it.instantiate(fn), nil
		default:
			return nil, errors.NewAt(errors.TypeError, n.Pos(), "%q is not callable", n.Name)
		}
	}

	if builtin, ok := builtins[n.Name]; ok {
		args, err := it.evalArgs(n.Args, env)
		if err != nil {
			return nil, err
		}
		return builtin(it, env, args, n.Pos())
	}

	return nil, errors.NewAt(errors.NameError, n.Pos(), "Undefined procedure %q", n.Name)
}

func (it *Interpreter) evalMethodCall(n *ast.MethodCall, env *Environment) (Value, error) {
	target, err := it.evalExpression(n.Target, env)
	if err != nil {
		return nil, err
	}
	inst, ok := target.(*InstanceValue)
	if !ok {
		return nil, errors.NewAt(errors.TypeError, n.Pos(), "cannot call method on %s", target.Type())
	}
	method, ok := inst.Class.Methods[n.Name]
	if !ok {
		return nil, errors.NewAt(errors.NameError, n.Pos(), "undefined method %q on %s", n.Name, inst.Type())
	}
	args, err := it.evalArgs(n.Args, env)
	if err != nil {
		return nil, err
	}
	return it.callMethod(method, inst, args, n.Pos())
}
