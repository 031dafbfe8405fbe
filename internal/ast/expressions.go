package ast

import (
	"bytes"
	"fmt"

	"github.com/cwbudde/fplc/internal/lexer"
)

// IntegerLiteral is an integer number literal (no '.').
type IntegerLiteral struct {
	Token lexer.Token
	Value int64
}

func (n *IntegerLiteral) expressionNode()      {}
func (n *IntegerLiteral) TokenLiteral() string { return n.Token.Literal }
func (n *IntegerLiteral) Pos() lexer.Position  { return n.Token.Pos }
func (n *IntegerLiteral) String() string       { return n.Token.Literal }

// FloatLiteral is a floating-point number literal (contains '.').
type FloatLiteral struct {
	Token lexer.Token
	Value float64
}

func (n *FloatLiteral) expressionNode()      {}
func (n *FloatLiteral) TokenLiteral() string { return n.Token.Literal }
func (n *FloatLiteral) Pos() lexer.Position  { return n.Token.Pos }
func (n *FloatLiteral) String() string       { return n.Token.Literal }

// StringLiteral is a plain "…" literal with escapes already processed.
type StringLiteral struct {
	Token lexer.Token
	Value string
}

func (n *StringLiteral) expressionNode()      {}
func (n *StringLiteral) TokenLiteral() string { return n.Token.Literal }
func (n *StringLiteral) Pos() lexer.Position  { return n.Token.Pos }
func (n *StringLiteral) String() string       { return fmt.Sprintf("%q", n.Value) }

// RawStringLiteral is an r"…" literal: escapes are never processed.
type RawStringLiteral struct {
	Token lexer.Token
	Value string
}

func (n *RawStringLiteral) expressionNode()      {}
func (n *RawStringLiteral) TokenLiteral() string { return n.Token.Literal }
func (n *RawStringLiteral) Pos() lexer.Position  { return n.Token.Pos }
func (n *RawStringLiteral) String() string       { return "r" + fmt.Sprintf("%q", n.Value) }

// FormatStringPart is one alternating literal/expression fragment of an
// f"…" literal.
type FormatStringPart struct {
	Literal string     // set when this part is plain text
	Expr    Expression // set when this part is a {expr} interpolation
}

// FormatString is an f"…" literal, pre-split at lex/parse time into
// alternating literal text and parsed {expr} fragments (spec.md §9:
// "Interpolated strings ... re-parsed as expressions by the main parser
// so precedence and errors are uniform").
type FormatString struct {
	Token lexer.Token
	Parts []FormatStringPart
}

func (n *FormatString) expressionNode()      {}
func (n *FormatString) TokenLiteral() string { return n.Token.Literal }
func (n *FormatString) Pos() lexer.Position  { return n.Token.Pos }
func (n *FormatString) String() string {
	var out bytes.Buffer
	out.WriteString("f\"")
	for _, p := range n.Parts {
		if p.Expr != nil {
			out.WriteString("{" + p.Expr.String() + "}")
		} else {
			out.WriteString(p.Literal)
		}
	}
	out.WriteString("\"")
	return out.String()
}

// BoolLiteral is TRUE or FALSE.
type BoolLiteral struct {
	Token lexer.Token
	Value bool
}

func (n *BoolLiteral) expressionNode()      {}
func (n *BoolLiteral) TokenLiteral() string { return n.Token.Literal }
func (n *BoolLiteral) Pos() lexer.Position  { return n.Token.Pos }
func (n *BoolLiteral) String() string       { return n.Token.Literal }

// NullLiteral is the NULL literal.
type NullLiteral struct {
	Token lexer.Token
}

func (n *NullLiteral) expressionNode()      {}
func (n *NullLiteral) TokenLiteral() string { return n.Token.Literal }
func (n *NullLiteral) Pos() lexer.Position  { return n.Token.Pos }
func (n *NullLiteral) String() string       { return "NULL" }

// NanLiteral is the NAN literal.
type NanLiteral struct {
	Token lexer.Token
}

func (n *NanLiteral) expressionNode()      {}
func (n *NanLiteral) TokenLiteral() string { return n.Token.Literal }
func (n *NanLiteral) Pos() lexer.Position  { return n.Token.Pos }
func (n *NanLiteral) String() string       { return "NAN" }

// ListLiteral is a `[e1, e2, ...]` literal.
type ListLiteral struct {
	Token    lexer.Token // the '[' token
	Elements []Expression
}

func (n *ListLiteral) expressionNode()      {}
func (n *ListLiteral) TokenLiteral() string { return n.Token.Literal }
func (n *ListLiteral) Pos() lexer.Position  { return n.Token.Pos }
func (n *ListLiteral) String() string       { return "[" + joinStrings(n.Elements) + "]" }

// Variable references a bound name.
type Variable struct {
	Token lexer.Token
	Name  string
}

func (n *Variable) expressionNode()      {}
func (n *Variable) TokenLiteral() string { return n.Token.Literal }
func (n *Variable) Pos() lexer.Position  { return n.Token.Pos }
func (n *Variable) String() string       { return n.Name }

// Index is a `List[idx]` access (1-based).
type Index struct {
	Token lexer.Token // the '[' token
	Left  Expression
	Index Expression
}

func (n *Index) expressionNode()      {}
func (n *Index) TokenLiteral() string { return n.Token.Literal }
func (n *Index) Pos() lexer.Position  { return n.Token.Pos }
func (n *Index) String() string       { return fmt.Sprintf("%s[%s]", n.Left, n.Index) }

// FieldAccess is a `target.field` read.
type FieldAccess struct {
	Token lexer.Token // the '.' token
	Left  Expression
	Field string
}

func (n *FieldAccess) expressionNode()      {}
func (n *FieldAccess) TokenLiteral() string { return n.Token.Literal }
func (n *FieldAccess) Pos() lexer.Position  { return n.Token.Pos }
func (n *FieldAccess) String() string       { return fmt.Sprintf("%s.%s", n.Left, n.Field) }

// Call is a bare `name(args)` invocation: a procedure or builtin.
type Call struct {
	Token lexer.Token // the '(' token
	Name  string
	Args  []Expression
}

func (n *Call) expressionNode()      {}
func (n *Call) TokenLiteral() string { return n.Token.Literal }
func (n *Call) Pos() lexer.Position  { return n.Token.Pos }
func (n *Call) String() string       { return fmt.Sprintf("%s(%s)", n.Name, joinStrings(n.Args)) }

// MethodCall is a `target.name(args)` invocation.
type MethodCall struct {
	Token  lexer.Token // the '(' token
	Target Expression
	Name   string
	Args   []Expression
}

func (n *MethodCall) expressionNode()      {}
func (n *MethodCall) TokenLiteral() string { return n.Token.Literal }
func (n *MethodCall) Pos() lexer.Position  { return n.Token.Pos }
func (n *MethodCall) String() string {
	return fmt.Sprintf("%s.%s(%s)", n.Target, n.Name, joinStrings(n.Args))
}

// Unary is a prefix `+x`, `-x`, or `NOT x`.
type Unary struct {
	Token    lexer.Token
	Operator string
	Right    Expression
}

func (n *Unary) expressionNode()      {}
func (n *Unary) TokenLiteral() string { return n.Token.Literal }
func (n *Unary) Pos() lexer.Position  { return n.Token.Pos }
func (n *Unary) String() string {
	if n.Operator == "NOT" {
		return fmt.Sprintf("(NOT %s)", n.Right)
	}
	return fmt.Sprintf("(%s%s)", n.Operator, n.Right)
}

// Binary is an infix arithmetic/relational/boolean operation.
type Binary struct {
	Token    lexer.Token
	Left     Expression
	Operator string
	Right    Expression
}

func (n *Binary) expressionNode()      {}
func (n *Binary) TokenLiteral() string { return n.Token.Literal }
func (n *Binary) Pos() lexer.Position  { return n.Token.Pos }
func (n *Binary) String() string {
	return fmt.Sprintf("(%s %s %s)", n.Left, n.Operator, n.Right)
}
