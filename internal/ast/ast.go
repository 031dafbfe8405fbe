// Package ast defines the abstract syntax tree node types produced by
// the fplc parser and walked by the evaluator.
package ast

import (
	"bytes"
	"strings"

	"github.com/cwbudde/fplc/internal/lexer"
)

// Node is the base interface implemented by every AST node.
type Node interface {
	TokenLiteral() string
	String() string
	Pos() lexer.Position
}

// Expression is a node that produces a Value when evaluated.
type Expression interface {
	Node
	expressionNode()
}

// Statement is a node that performs an action without itself producing a
// value.
type Statement interface {
	Node
	statementNode()
}

// Program is the root of the tree: a flat list of top-level statements.
type Program struct {
	Statements []Statement
}

func (p *Program) TokenLiteral() string {
	if len(p.Statements) > 0 {
		return p.Statements[0].TokenLiteral()
	}
	return ""
}

func (p *Program) String() string {
	var out bytes.Buffer
	for _, s := range p.Statements {
		out.WriteString(s.String())
		out.WriteString("\n")
	}
	return out.String()
}

func (p *Program) Pos() lexer.Position {
	if len(p.Statements) > 0 {
		return p.Statements[0].Pos()
	}
	return lexer.Position{Line: 1, Column: 1}
}

// Block is a brace-delimited statement list, used by every construct in
// spec.md's grammar that names `block`.
type Block struct {
	Token      lexer.Token // the '{' token
	Statements []Statement
}

func (b *Block) statementNode()       {}
func (b *Block) TokenLiteral() string { return b.Token.Literal }
func (b *Block) Pos() lexer.Position  { return b.Token.Pos }
func (b *Block) String() string {
	var out bytes.Buffer
	out.WriteString("{\n")
	for _, s := range b.Statements {
		out.WriteString(s.String())
		out.WriteString("\n")
	}
	out.WriteString("}")
	return out.String()
}

func joinStrings(items []Expression) string {
	parts := make([]string, len(items))
	for i, e := range items {
		parts[i] = e.String()
	}
	return strings.Join(parts, ", ")
}
