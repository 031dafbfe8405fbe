package ast

import (
	"fmt"

	"github.com/cwbudde/fplc/internal/lexer"
)

// Assign is `lvalue <- expr` where lvalue is a bare identifier.
type Assign struct {
	Token lexer.Token // the '<-' token
	Name  string
	Value Expression
}

func (n *Assign) statementNode()       {}
func (n *Assign) TokenLiteral() string { return n.Token.Literal }
func (n *Assign) Pos() lexer.Position  { return n.Token.Pos }
func (n *Assign) String() string       { return fmt.Sprintf("%s <- %s", n.Name, n.Value) }

// IndexAssign is `target[index] <- expr`.
type IndexAssign struct {
	Token  lexer.Token
	Target Expression
	Index  Expression
	Value  Expression
}

func (n *IndexAssign) statementNode()       {}
func (n *IndexAssign) TokenLiteral() string { return n.Token.Literal }
func (n *IndexAssign) Pos() lexer.Position  { return n.Token.Pos }
func (n *IndexAssign) String() string {
	return fmt.Sprintf("%s[%s] <- %s", n.Target, n.Index, n.Value)
}

// FieldAssign is `target.field <- expr`.
type FieldAssign struct {
	Token  lexer.Token
	Target Expression
	Field  string
	Value  Expression
}

func (n *FieldAssign) statementNode()       {}
func (n *FieldAssign) TokenLiteral() string { return n.Token.Literal }
func (n *FieldAssign) Pos() lexer.Position  { return n.Token.Pos }
func (n *FieldAssign) String() string {
	return fmt.Sprintf("%s.%s <- %s", n.Target, n.Field, n.Value)
}

// Display is `DISPLAY(expr)`, a statement in grammar position but also
// usable as an expression yielding Null (spec.md §4.4).
type Display struct {
	Token lexer.Token
	Value Expression
}

func (n *Display) statementNode()       {}
func (n *Display) expressionNode()      {}
func (n *Display) TokenLiteral() string { return n.Token.Literal }
func (n *Display) Pos() lexer.Position  { return n.Token.Pos }
func (n *Display) String() string       { return fmt.Sprintf("DISPLAY(%s)", n.Value) }

// DisplayInline is `DISPLAYINLINE(expr)`, likewise usable as an
// expression yielding Null.
type DisplayInline struct {
	Token lexer.Token
	Value Expression
}

func (n *DisplayInline) statementNode()       {}
func (n *DisplayInline) expressionNode()      {}
func (n *DisplayInline) TokenLiteral() string { return n.Token.Literal }
func (n *DisplayInline) Pos() lexer.Position  { return n.Token.Pos }
func (n *DisplayInline) String() string       { return fmt.Sprintf("DISPLAYINLINE(%s)", n.Value) }

// If is `IF (cond) block (ELSE block)?`.
type If struct {
	Token     lexer.Token
	Condition Expression
	Then      *Block
	Else      *Block // nil when there is no ELSE
}

func (n *If) statementNode()       {}
func (n *If) TokenLiteral() string { return n.Token.Literal }
func (n *If) Pos() lexer.Position  { return n.Token.Pos }
func (n *If) String() string {
	s := fmt.Sprintf("IF (%s) %s", n.Condition, n.Then)
	if n.Else != nil {
		s += " ELSE " + n.Else.String()
	}
	return s
}

// RepeatTimes is `REPEAT expr TIMES block`.
type RepeatTimes struct {
	Token lexer.Token
	Count Expression
	Body  *Block
}

func (n *RepeatTimes) statementNode()       {}
func (n *RepeatTimes) TokenLiteral() string { return n.Token.Literal }
func (n *RepeatTimes) Pos() lexer.Position  { return n.Token.Pos }
func (n *RepeatTimes) String() string {
	return fmt.Sprintf("REPEAT %s TIMES %s", n.Count, n.Body)
}

// RepeatUntil is `REPEAT UNTIL (cond) block`: body executes at least once,
// condition checked after each iteration (spec.md §4.3).
type RepeatUntil struct {
	Token     lexer.Token
	Condition Expression
	Body      *Block
}

func (n *RepeatUntil) statementNode()       {}
func (n *RepeatUntil) TokenLiteral() string { return n.Token.Literal }
func (n *RepeatUntil) Pos() lexer.Position  { return n.Token.Pos }
func (n *RepeatUntil) String() string {
	return fmt.Sprintf("REPEAT UNTIL (%s) %s", n.Condition, n.Body)
}

// ForEach is `FOR EACH x IN list block`.
type ForEach struct {
	Token lexer.Token
	Var   string
	List  Expression
	Body  *Block
}

func (n *ForEach) statementNode()       {}
func (n *ForEach) TokenLiteral() string { return n.Token.Literal }
func (n *ForEach) Pos() lexer.Position  { return n.Token.Pos }
func (n *ForEach) String() string {
	return fmt.Sprintf("FOR EACH %s IN %s %s", n.Var, n.List, n.Body)
}

// ProcedureDecl is `PROCEDURE name(params) block`.
type ProcedureDecl struct {
	Token  lexer.Token
	Name   string
	Params []string
	Body   *Block
}

func (n *ProcedureDecl) statementNode()       {}
func (n *ProcedureDecl) TokenLiteral() string { return n.Token.Literal }
func (n *ProcedureDecl) Pos() lexer.Position  { return n.Token.Pos }
func (n *ProcedureDecl) String() string {
	return fmt.Sprintf("PROCEDURE %s(%v) %s", n.Name, n.Params, n.Body)
}

// ClassDecl is `CLASS name() { procDecl* }`.
type ClassDecl struct {
	Token   lexer.Token
	Name    string
	Methods []*ProcedureDecl
}

func (n *ClassDecl) statementNode()       {}
func (n *ClassDecl) TokenLiteral() string { return n.Token.Literal }
func (n *ClassDecl) Pos() lexer.Position  { return n.Token.Pos }
func (n *ClassDecl) String() string {
	return fmt.Sprintf("CLASS %s() { %d method(s) }", n.Name, len(n.Methods))
}

// Return is `RETURN`, `RETURN()`, or `RETURN(expr)`.
type Return struct {
	Token lexer.Token
	Value Expression // nil means Null
}

func (n *Return) statementNode()       {}
func (n *Return) TokenLiteral() string { return n.Token.Literal }
func (n *Return) Pos() lexer.Position  { return n.Token.Pos }
func (n *Return) String() string {
	if n.Value == nil {
		return "RETURN"
	}
	return fmt.Sprintf("RETURN(%s)", n.Value)
}

// Import is `IMPORT name`.
type Import struct {
	Token lexer.Token
	Name  string
}

func (n *Import) statementNode()       {}
func (n *Import) TokenLiteral() string { return n.Token.Literal }
func (n *Import) Pos() lexer.Position  { return n.Token.Pos }
func (n *Import) String() string       { return fmt.Sprintf("IMPORT %s", n.Name) }

// TryCatch is `TRY block CATCH (name) block`.
type TryCatch struct {
	Token     lexer.Token
	Body      *Block
	CatchName string
	Handler   *Block
}

func (n *TryCatch) statementNode()       {}
func (n *TryCatch) TokenLiteral() string { return n.Token.Literal }
func (n *TryCatch) Pos() lexer.Position  { return n.Token.Pos }
func (n *TryCatch) String() string {
	return fmt.Sprintf("TRY %s CATCH (%s) %s", n.Body, n.CatchName, n.Handler)
}

// ExpressionStatement wraps a bare expression used as a statement (a
// procedure/method call evaluated for side effects).
type ExpressionStatement struct {
	Token lexer.Token
	Expr  Expression
}

func (n *ExpressionStatement) statementNode()       {}
func (n *ExpressionStatement) TokenLiteral() string { return n.Token.Literal }
func (n *ExpressionStatement) Pos() lexer.Position  { return n.Token.Pos }
func (n *ExpressionStatement) String() string       { return n.Expr.String() }

// Exit is the bare `EXIT()` statement (spec.md §3.4/§4.4).
type Exit struct {
	Token lexer.Token
}

func (n *Exit) statementNode()       {}
func (n *Exit) TokenLiteral() string { return n.Token.Literal }
func (n *Exit) Pos() lexer.Position  { return n.Token.Pos }
func (n *Exit) String() string       { return "EXIT()" }
