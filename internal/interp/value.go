// Package interp implements the tree-walking evaluator: the Value model
// (spec.md §3.2), lexical Environment (§3.3), and statement/expression
// evaluation (§4.3), grounded on the teacher's internal/interp package
// (Value interface + per-kind struct, Environment frame chain) at the
// much smaller scale this language calls for.
package interp

import (
	"strconv"
	"strings"

	"github.com/cwbudde/fplc/internal/ast"
)

// Value is a runtime value. All variants implement Type (a short,
// uppercase tag used in error messages) and String (the canonical form
// used by DISPLAY/TOSTRING, spec.md §4.3).
type Value interface {
	Type() string
	String() string
}

// IntegerValue is a 64-bit signed integer.
type IntegerValue struct{ Value int64 }

func (v *IntegerValue) Type() string   { return "INTEGER" }
func (v *IntegerValue) String() string { return strconv.FormatInt(v.Value, 10) }

// FloatValue is a 64-bit IEEE-754 float. Canonical form is the shortest
// round-trip decimal with a forced '.' (DESIGN.md Open Question #3).
type FloatValue struct{ Value float64 }

func (v *FloatValue) Type() string { return "FLOAT" }
func (v *FloatValue) String() string {
	s := strconv.FormatFloat(v.Value, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// StringValue is an immutable UTF-8 string.
type StringValue struct{ Value string }

func (v *StringValue) Type() string   { return "STRING" }
func (v *StringValue) String() string { return v.Value }

// BooleanValue is TRUE/FALSE.
type BooleanValue struct{ Value bool }

func (v *BooleanValue) Type() string { return "BOOLEAN" }
func (v *BooleanValue) String() string {
	if v.Value {
		return "TRUE"
	}
	return "FALSE"
}

// NullValue is the NULL literal; a singleton.
type NullValue struct{}

func (v *NullValue) Type() string   { return "NULL" }
func (v *NullValue) String() string { return "" }

// Null is the shared NullValue instance.
var Null = &NullValue{}

// NanValue is the distinguished NaN value: it propagates through
// arithmetic and compares unequal to everything, including itself
// (spec.md §3.2).
type NanValue struct{}

func (v *NanValue) Type() string   { return "NAN" }
func (v *NanValue) String() string { return "NAN" }

// NaN is the shared NanValue instance.
var NaN = &NanValue{}

// ListValue is a dense, 1-based, mutable ordered sequence. It is always
// held and passed by pointer so that in-place mutation (INSERT, APPEND,
// REMOVE, index assignment) is visible to every alias that legitimately
// shares it, while assignment (spec.md §3.2 invariant iii) takes an
// explicit deep copy via CloneDeep before binding a new name to it.
type ListValue struct{ Elements []Value }

func (v *ListValue) Type() string { return "LIST" }
func (v *ListValue) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, e := range v.Elements {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(nestedForm(e))
	}
	sb.WriteByte(']')
	return sb.String()
}

// CloneDeep returns a new ListValue with every nested ListValue
// recursively cloned too; non-List elements (including Instances) are
// shared, matching spec.md §3.2's "deep w.r.t. List structure, shallow
// w.r.t. Instances" rule.
func (v *ListValue) CloneDeep() *ListValue {
	out := &ListValue{Elements: make([]Value, len(v.Elements))}
	for i, e := range v.Elements {
		if nested, ok := e.(*ListValue); ok {
			out.Elements[i] = nested.CloneDeep()
		} else {
			out.Elements[i] = e
		}
	}
	return out
}

// CloneForAssignment deep-copies a List, and passes every other value
// (including Instances) through unchanged, per spec.md §3.2.
func CloneForAssignment(v Value) Value {
	if list, ok := v.(*ListValue); ok {
		return list.CloneDeep()
	}
	return v
}

// nestedForm renders a value the way it looks nested inside a List:
// Strings are quoted and Null renders as the literal NULL (spec.md §4.3).
func nestedForm(v Value) string {
	switch t := v.(type) {
	case *StringValue:
		return strconv.Quote(t.Value)
	case *NullValue:
		return "NULL"
	default:
		return v.String()
	}
}

// ProcedureValue is a callable procedure: its parameter names, its body,
// and the frame it closed over at declaration time (spec.md §3.2).
type ProcedureValue struct {
	Name   string
	Params []string
	Body   *ast.Block
	Env    *Environment
}

func (v *ProcedureValue) Type() string   { return "PROCEDURE" }
func (v *ProcedureValue) String() string { return "PROCEDURE " + v.Name }

// ClassValue is a declared class: its member procedure table.
type ClassValue struct {
	Name    string
	Methods map[string]*ProcedureValue
}

func (v *ClassValue) Type() string   { return "CLASS" }
func (v *ClassValue) String() string { return "CLASS " + v.Name }

// InstanceValue is a reference to an instance's mutable field map. Like
// ListValue it is always held by pointer so field writes are visible
// through every alias; assignment never clones it (spec.md §3.2).
type InstanceValue struct {
	Class  *ClassValue
	Fields map[string]Value
}

func (v *InstanceValue) Type() string   { return v.Class.Name }
func (v *InstanceValue) String() string { return "<" + v.Class.Name + " instance>" }
