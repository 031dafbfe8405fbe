package interp

import (
	"fmt"

	"github.com/cwbudde/fplc/internal/ast"
	"github.com/cwbudde/fplc/internal/errors"
)

// evalBlock runs a brace-delimited statement list in its own enclosed
// frame, stopping at the first Return/Exit signal or error.
func (it *Interpreter) evalBlock(block *ast.Block, outer *Environment) (*Signal, error) {
	env := NewEnclosedEnvironment(outer)
	for _, stmt := range block.Statements {
		sig, err := it.evalStatement(stmt, env)
		if err != nil {
			return nil, err
		}
		if sig != nil {
			return sig, nil
		}
	}
	return nil, nil
}

func (it *Interpreter) evalStatement(stmt ast.Statement, env *Environment) (*Signal, error) {
	switch n := stmt.(type) {
	case *ast.Assign:
		return it.evalAssign(n, env)
	case *ast.IndexAssign:
		return it.evalIndexAssign(n, env)
	case *ast.FieldAssign:
		return it.evalFieldAssign(n, env)
	case *ast.Display:
		return it.evalDisplayValue(n.Value, env, true)
	case *ast.DisplayInline:
		return it.evalDisplayValue(n.Value, env, false)
	case *ast.If:
		return it.evalIf(n, env)
	case *ast.RepeatTimes:
		return it.evalRepeatTimes(n, env)
	case *ast.RepeatUntil:
		return it.evalRepeatUntil(n, env)
	case *ast.ForEach:
		return it.evalForEach(n, env)
	case *ast.ProcedureDecl:
		env.Define(n.Name, &ProcedureValue{Name: n.Name, Params: n.Params, Body: n.Body, Env: env})
		return nil, nil
	case *ast.ClassDecl:
		return it.evalClassDecl(n, env)
	case *ast.Return:
		var val Value = Null
		if n.Value != nil {
			v, err := it.evalExpression(n.Value, env)
			if err != nil {
				return nil, err
			}
			val = v
		}
		return &Signal{Kind: SignalReturn, Value: val}, nil
	case *ast.Import:
		return it.evalImport(n)
	case *ast.TryCatch:
		return it.evalTryCatch(n, env)
	case *ast.ExpressionStatement:
		_, err := it.evalExpression(n.Expr, env)
		return nil, err
	case *ast.Exit:
		return &Signal{Kind: SignalExit}, nil
	}
	return nil, errors.NewAt(errors.ParseError, stmt.Pos(), "unhandled statement %T", stmt)
}

func (it *Interpreter) evalAssign(n *ast.Assign, env *Environment) (*Signal, error) {
	v, err := it.evalExpression(n.Value, env)
	if err != nil {
		return nil, err
	}
	env.Assign(n.Name, CloneForAssignment(v))
	return nil, nil
}

func (it *Interpreter) evalIndexAssign(n *ast.IndexAssign, env *Environment) (*Signal, error) {
	target, err := it.evalExpression(n.Target, env)
	if err != nil {
		return nil, err
	}
	list, ok := target.(*ListValue)
	if !ok {
		return nil, errors.NewAt(errors.TypeError, n.Pos(), "cannot index into %s", target.Type())
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
	val, err := it.evalExpression(n.Value, env)
	if err != nil {
		return nil, err
	}
	list.Elements[idx-1] = CloneForAssignment(val)
	return nil, nil
}

func (it *Interpreter) evalFieldAssign(n *ast.FieldAssign, env *Environment) (*Signal, error) {
	target, err := it.evalExpression(n.Target, env)
	if err != nil {
		return nil, err
	}
	inst, ok := target.(*InstanceValue)
	if !ok {
		return nil, errors.NewAt(errors.TypeError, n.Pos(), "cannot assign field on %s", target.Type())
	}
	val, err := it.evalExpression(n.Value, env)
	if err != nil {
		return nil, err
	}
	inst.Fields[n.Field] = CloneForAssignment(val)
	return nil, nil
}

func (it *Interpreter) evalDisplayValue(valExpr ast.Expression, env *Environment, newline bool) (*Signal, error) {
	v, err := it.evalExpression(valExpr, env)
	if err != nil {
		return nil, err
	}
	if newline {
		fmt.Fprintln(it.Stdout, v.String())
	} else {
		fmt.Fprint(it.Stdout, v.String())
	}
	return nil, nil
}

func (it *Interpreter) evalIf(n *ast.If, env *Environment) (*Signal, error) {
	cond, err := it.evalExpression(n.Condition, env)
	if err != nil {
		return nil, err
	}
	b, err := requireBool(cond, n.Pos())
	if err != nil {
		return nil, err
	}
	if b {
		return it.evalBlock(n.Then, env)
	}
	if n.Else != nil {
		return it.evalBlock(n.Else, env)
	}
	return nil, nil
}

func (it *Interpreter) evalRepeatTimes(n *ast.RepeatTimes, env *Environment) (*Signal, error) {
	countVal, err := it.evalExpression(n.Count, env)
	if err != nil {
		return nil, err
	}
	count, err := requireInt(countVal, n.Pos(), "REPEAT ... TIMES count")
	if err != nil {
		return nil, err
	}
	for i := int64(0); i < count; i++ {
		sig, err := it.evalBlock(n.Body, env)
		if err != nil {
			return nil, err
		}
		if sig != nil {
			return sig, nil
		}
	}
	return nil, nil
}

func (it *Interpreter) evalRepeatUntil(n *ast.RepeatUntil, env *Environment) (*Signal, error) {
	for {
		sig, err := it.evalBlock(n.Body, env)
		if err != nil {
			return nil, err
		}
		if sig != nil {
			return sig, nil
		}
		cond, err := it.evalExpression(n.Condition, env)
		if err != nil {
			return nil, err
		}
		done, err := requireBool(cond, n.Pos())
		if err != nil {
			return nil, err
		}
		if done {
			return nil, nil
		}
	}
}

func (it *Interpreter) evalForEach(n *ast.ForEach, env *Environment) (*Signal, error) {
	listVal, err := it.evalExpression(n.List, env)
	if err != nil {
		return nil, err
	}
	list, ok := listVal.(*ListValue)
	if !ok {
		return nil, errors.NewAt(errors.TypeError, n.Pos(), "FOR EACH requires a List, got %s", listVal.Type())
	}
	// Snapshot the elements at loop entry (spec.md §4.3): later mutation
	// of the original list never changes iteration length or order.
	snapshot := append([]Value(nil), list.Elements...)
	for _, elem := range snapshot {
		loopEnv := NewEnclosedEnvironment(env)
		loopEnv.Define(n.Var, elem)
		sig, err := it.evalBlock(n.Body, loopEnv)
		if err != nil {
			return nil, err
		}
		if sig != nil {
			return sig, nil
		}
	}
	return nil, nil
}
