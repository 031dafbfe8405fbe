// Package parser implements fplc's recursive-descent, operator-precedence
// parser (spec.md §4.2), grounded on the teacher's internal/parser split
// into statement/expression/control-flow files, at a much smaller scale.
package parser

import (
	"github.com/cwbudde/fplc/internal/ast"
	"github.com/cwbudde/fplc/internal/errors"
	"github.com/cwbudde/fplc/internal/lexer"
)

// precedence levels, lowest to highest, per spec.md §4.2.
const (
	_ int = iota
	precLowest
	precOr
	precAnd
	precNot
	precRelational
	precAdditive
	precMultiplicative
	precUnary
	precPostfix
)

var binaryPrecedence = map[lexer.TokenType]int{
	lexer.OR:    precOr,
	lexer.AND:   precAnd,
	lexer.EQ:    precRelational,
	lexer.NOTEQ: precRelational,
	lexer.LT:    precRelational,
	lexer.GT:    precRelational,
	lexer.LE:    precRelational,
	lexer.GE:    precRelational,
	lexer.PLUS:  precAdditive,
	lexer.MINUS: precAdditive,
	lexer.STAR:  precMultiplicative,
	lexer.SLASH: precMultiplicative,
	lexer.MOD:   precMultiplicative,
}

// Parser consumes a pre-scanned token stream and builds an *ast.Program.
type Parser struct {
	tokens []lexer.Token
	pos    int
}

// New tokenizes source and returns a Parser ready to ParseProgram.
func New(source string) (*Parser, error) {
	toks, err := lexer.Tokenize(source)
	if err != nil {
		return nil, err
	}
	return &Parser{tokens: toks}, nil
}

func (p *Parser) cur() lexer.Token  { return p.tokens[p.pos] }
func (p *Parser) peek() lexer.Token {
	if p.pos+1 < len(p.tokens) {
		return p.tokens[p.pos+1]
	}
	return p.tokens[len(p.tokens)-1]
}
func (p *Parser) advance() lexer.Token {
	t := p.cur()
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return t
}

func (p *Parser) curIs(tt lexer.TokenType) bool { return p.cur().Type == tt }

func (p *Parser) expect(tt lexer.TokenType) (lexer.Token, error) {
	if p.cur().Type != tt {
		return lexer.Token{}, errors.NewAt(errors.ParseError, p.cur().Pos,
			"expected %s, got %s %q", tt, p.cur().Type, p.cur().Literal)
	}
	return p.advance(), nil
}

// ParseProgram parses the full token stream into a Program, stopping at
// the first parse error encountered.
func (p *Parser) ParseProgram() (*ast.Program, error) {
	prog := &ast.Program{}
	for !p.curIs(lexer.EOF) {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		prog.Statements = append(prog.Statements, stmt)
	}
	return prog, nil
}

func (p *Parser) parseBlock() (*ast.Block, error) {
	tok, err := p.expect(lexer.LBRACE)
	if err != nil {
		return nil, err
	}
	block := &ast.Block{Token: tok}
	for !p.curIs(lexer.RBRACE) {
		if p.curIs(lexer.EOF) {
			return nil, errors.NewAt(errors.ParseError, p.cur().Pos, "unterminated block: expected '}'")
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		block.Statements = append(block.Statements, stmt)
	}
	if _, err := p.expect(lexer.RBRACE); err != nil {
		return nil, err
	}
	return block, nil
}
