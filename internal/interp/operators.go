package interp

import (
	"github.com/cwbudde/fplc/internal/ast"
	"github.com/cwbudde/fplc/internal/errors"
	"github.com/cwbudde/fplc/internal/lexer"
)

func requireBool(v Value, pos lexer.Position) (bool, error) {
	b, ok := v.(*BooleanValue)
	if !ok {
		return false, errors.NewAt(errors.TypeError, pos, "expected Boolean, got %s", v.Type())
	}
	return b.Value, nil
}

func requireInt(v Value, pos lexer.Position, what string) (int64, error) {
	n, ok := v.(*IntegerValue)
	if !ok {
		return 0, errors.NewAt(errors.TypeError, pos, "%s must be Integer, got %s", what, v.Type())
	}
	return n.Value, nil
}

// asFloat reports whether v is numeric (Integer or Float) and its
// value widened to float64; used by the arithmetic promotion rule
// (spec.md §3.2 invariant i).
func asFloat(v Value) (float64, bool) {
	switch n := v.(type) {
	case *IntegerValue:
		return float64(n.Value), true
	case *FloatValue:
		return n.Value, true
	}
	return 0, false
}

func (it *Interpreter) evalUnary(n *ast.Unary, env *Environment) (Value, error) {
	right, err := it.evalExpression(n.Right, env)
	if err != nil {
		return nil, err
	}
	switch n.Operator {
	case "NOT":
		b, err := requireBool(right, n.Pos())
		if err != nil {
			return nil, err
		}
		return &BooleanValue{Value: !b}, nil
	case "-":
		if _, ok := right.(*NanValue); ok {
			return NaN, nil
		}
		switch v := right.(type) {
		case *IntegerValue:
			return &IntegerValue{Value: -v.Value}, nil
		case *FloatValue:
			return &FloatValue{Value: -v.Value}, nil
		}
		return nil, errors.NewAt(errors.TypeError, n.Pos(), "unary '-' requires a number, got %s", right.Type())
	case "+":
		if _, ok := right.(*NanValue); ok {
			return NaN, nil
		}
		if _, ok := asFloat(right); !ok {
			return nil, errors.NewAt(errors.TypeError, n.Pos(), "unary '+' requires a number, got %s", right.Type())
		}
		return right, nil
	}
	return nil, errors.NewAt(errors.ParseError, n.Pos(), "unknown unary operator %q", n.Operator)
}

func (it *Interpreter) evalBinary(n *ast.Binary, env *Environment) (Value, error) {
	// AND/OR short-circuit (spec.md §4.3): the right operand is not even
	// evaluated when the left side already decides the result.
	if n.Operator == "AND" || n.Operator == "OR" {
		return it.evalShortCircuit(n, env)
	}

	left, err := it.evalExpression(n.Left, env)
	if err != nil {
		return nil, err
	}
	right, err := it.evalExpression(n.Right, env)
	if err != nil {
		return nil, err
	}

	switch n.Operator {
	case "+", "-", "*", "/", "MOD":
		if _, ok := left.(*NanValue); ok {
			return NaN, nil
		}
		if _, ok := right.(*NanValue); ok {
			return NaN, nil
		}
		return it.evalArithmetic(n.Operator, left, right, n.Pos())
	case "=":
		return &BooleanValue{Value: valuesEqual(left, right)}, nil
	case "NOT=":
		return &BooleanValue{Value: !valuesEqual(left, right)}, nil
	case "<", ">", "<=", ">=":
		return evalRelational(n.Operator, left, right, n.Pos())
	}
	return nil, errors.NewAt(errors.ParseError, n.Pos(), "unknown binary operator %q", n.Operator)
}

func (it *Interpreter) evalShortCircuit(n *ast.Binary, env *Environment) (Value, error) {
	left, err := it.evalExpression(n.Left, env)
	if err != nil {
		return nil, err
	}
	lb, err := requireBool(left, n.Pos())
	if err != nil {
		return nil, err
	}
	if n.Operator == "AND" && !lb {
		return &BooleanValue{Value: false}, nil
	}
	if n.Operator == "OR" && lb {
		return &BooleanValue{Value: true}, nil
	}
	right, err := it.evalExpression(n.Right, env)
	if err != nil {
		return nil, err
	}
	rb, err := requireBool(right, n.Pos())
	if err != nil {
		return nil, err
	}
	return &BooleanValue{Value: rb}, nil
}

func (it *Interpreter) evalArithmetic(op string, left, right Value, pos lexer.Position) (Value, error) {
	leftList, leftIsList := left.(*ListValue)
	rightList, rightIsList := right.(*ListValue)
	leftStr, leftIsStr := left.(*StringValue)
	rightStr, rightIsStr := right.(*StringValue)

	if op == "+" {
		switch {
		case leftIsStr && rightIsStr:
			return &StringValue{Value: leftStr.Value + rightStr.Value}, nil
		case leftIsList && rightIsList:
			out := &ListValue{Elements: make([]Value, 0, len(leftList.Elements)+len(rightList.Elements))}
			out.Elements = append(out.Elements, leftList.Elements...)
			out.Elements = append(out.Elements, rightList.Elements...)
			return out, nil
		case leftIsList || rightIsList || leftIsStr || rightIsStr:
			// Mixed List/String combinations, or one String/List operand
			// paired with a non-matching kind: a TypeError (DESIGN.md
			// Open Question #2), never silent coercion.
			return nil, errors.NewAt(errors.TypeError, pos, "cannot add %s and %s", left.Type(), right.Type())
		}
	} else if leftIsStr || rightIsStr || leftIsList || rightIsList {
		return nil, errors.NewAt(errors.TypeError, pos, "operator %s requires numbers, got %s and %s", op, left.Type(), right.Type())
	}

	if op == "MOD" {
		li, lok := left.(*IntegerValue)
		ri, rok := right.(*IntegerValue)
		if !lok || !rok {
			return nil, errors.NewAt(errors.TypeError, pos, "MOD requires Integer operands, got %s and %s", left.Type(), right.Type())
		}
		if ri.Value == 0 {
			return nil, errors.NewAt(errors.ArithmeticError, pos, "Division by zero")
		}
		return &IntegerValue{Value: li.Value % ri.Value}, nil
	}

	li, lok := left.(*IntegerValue)
	ri, rok := right.(*IntegerValue)
	if lok && rok && op != "/" {
		switch op {
		case "+":
			return &IntegerValue{Value: li.Value + ri.Value}, nil
		case "-":
			return &IntegerValue{Value: li.Value - ri.Value}, nil
		case "*":
			return &IntegerValue{Value: li.Value * ri.Value}, nil
		}
	}
	if lok && rok && op == "/" {
		if ri.Value == 0 {
			return nil, errors.NewAt(errors.ArithmeticError, pos, "Division by zero")
		}
		// Truncation toward zero (spec.md §4.3 worked examples: 5/2=2,
		// -5/2=-2, 19/4=4) — Go's integer division already truncates
		// toward zero, so this is a direct translation.
		return &IntegerValue{Value: li.Value / ri.Value}, nil
	}

	lf, lok := asFloat(left)
	rf, rok := asFloat(right)
	if !lok || !rok {
		return nil, errors.NewAt(errors.TypeError, pos, "operator %s requires numbers, got %s and %s", op, left.Type(), right.Type())
	}
	switch op {
	case "+":
		return &FloatValue{Value: lf + rf}, nil
	case "-":
		return &FloatValue{Value: lf - rf}, nil
	case "*":
		return &FloatValue{Value: lf * rf}, nil
	case "/":
		if rf == 0 {
			return nil, errors.NewAt(errors.ArithmeticError, pos, "Division by zero")
		}
		return &FloatValue{Value: lf / rf}, nil
	}
	return nil, errors.NewAt(errors.ParseError, pos, "unknown arithmetic operator %q", op)
}

func evalRelational(op string, left, right Value, pos lexer.Position) (Value, error) {
	// A NaN operand makes every ordering comparison false (spec.md §8:
	// NaN compares unequal to everything; = and NOT= are handled by the
	// caller via valuesEqual, so only ordering remains here).
	if _, ok := left.(*NanValue); ok {
		return &BooleanValue{Value: false}, nil
	}
	if _, ok := right.(*NanValue); ok {
		return &BooleanValue{Value: false}, nil
	}

	if ls, ok := left.(*StringValue); ok {
		rs, ok := right.(*StringValue)
		if !ok {
			return nil, errors.NewAt(errors.TypeError, pos, "cannot compare String and %s", right.Type())
		}
		return &BooleanValue{Value: compareOp(op, cmpStrings(ls.Value, rs.Value))}, nil
	}

	lf, lok := asFloat(left)
	rf, rok := asFloat(right)
	if !lok || !rok {
		return nil, errors.NewAt(errors.TypeError, pos, "operator %s requires comparable numbers or strings, got %s and %s", op, left.Type(), right.Type())
	}
	var cmp int
	switch {
	case lf < rf:
		cmp = -1
	case lf > rf:
		cmp = 1
	}
	return &BooleanValue{Value: compareOp(op, cmp)}, nil
}

func cmpStrings(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareOp(op string, cmp int) bool {
	switch op {
	case "<":
		return cmp < 0
	case ">":
		return cmp > 0
	case "<=":
		return cmp <= 0
	case ">=":
		return cmp >= 0
	}
	return false
}

// valuesEqual implements '=' / 'NOT=' across all Value kinds. NaN is
// unequal to everything, including itself (spec.md §3.2/§8).
func valuesEqual(a, b Value) bool {
	if _, ok := a.(*NanValue); ok {
		return false
	}
	if _, ok := b.(*NanValue); ok {
		return false
	}
	if af, aok := asFloat(a); aok {
		if bf, bok := asFloat(b); bok {
			return af == bf
		}
		return false
	}
	switch av := a.(type) {
	case *StringValue:
		bv, ok := b.(*StringValue)
		return ok && av.Value == bv.Value
	case *BooleanValue:
		bv, ok := b.(*BooleanValue)
		return ok && av.Value == bv.Value
	case *NullValue:
		_, ok := b.(*NullValue)
		return ok
	case *ListValue:
		bv, ok := b.(*ListValue)
		if !ok || len(av.Elements) != len(bv.Elements) {
			return false
		}
		for i := range av.Elements {
			if !valuesEqual(av.Elements[i], bv.Elements[i]) {
				return false
			}
		}
		return true
	case *InstanceValue:
		bv, ok := b.(*InstanceValue)
		return ok && av == bv
	case *ClassValue:
		bv, ok := b.(*ClassValue)
		return ok && av == bv
	case *ProcedureValue:
		bv, ok := b.(*ProcedureValue)
		return ok && av == bv
	}
	return false
}
