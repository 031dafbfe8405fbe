package parser

import (
	"strconv"
	"strings"

	"github.com/cwbudde/fplc/internal/ast"
	"github.com/cwbudde/fplc/internal/errors"
	"github.com/cwbudde/fplc/internal/lexer"
)

// parseExpression implements precedence climbing: parse a prefix term,
// then repeatedly fold in infix operators whose precedence exceeds minPrec.
func (p *Parser) parseExpression(minPrec int) (ast.Expression, error) {
	left, err := p.parsePrefix()
	if err != nil {
		return nil, err
	}

	for {
		prec, ok := binaryPrecedence[p.cur().Type]
		if !ok || prec <= minPrec {
			break
		}
		opTok := p.advance()
		right, err := p.parseExpression(prec)
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{Token: opTok, Left: left, Operator: operatorLiteral(opTok), Right: right}
	}

	return left, nil
}

func operatorLiteral(tok lexer.Token) string {
	switch tok.Type {
	case lexer.EQ:
		return "="
	case lexer.NOTEQ:
		return "NOT="
	case lexer.LT:
		return "<"
	case lexer.GT:
		return ">"
	case lexer.LE:
		return "<="
	case lexer.GE:
		return ">="
	case lexer.PLUS:
		return "+"
	case lexer.MINUS:
		return "-"
	case lexer.STAR:
		return "*"
	case lexer.SLASH:
		return "/"
	case lexer.MOD:
		return "MOD"
	case lexer.AND:
		return "AND"
	case lexer.OR:
		return "OR"
	}
	return tok.Literal
}

// parsePrefix parses unary prefix operators and NOT, then falls through
// to postfix parsing of a primary expression.
func (p *Parser) parsePrefix() (ast.Expression, error) {
	switch p.cur().Type {
	case lexer.NOT:
		tok := p.advance()
		right, err := p.parseExpression(precNot)
		if err != nil {
			return nil, err
		}
		return &ast.Unary{Token: tok, Operator: "NOT", Right: right}, nil
	case lexer.PLUS, lexer.MINUS:
		tok := p.advance()
		right, err := p.parseExpression(precUnary)
		if err != nil {
			return nil, err
		}
		return &ast.Unary{Token: tok, Operator: operatorLiteral(tok), Right: right}, nil
	}
	return p.parsePostfix()
}

// parsePostfix parses a primary expression followed by any chain of
// `[index]`, `.field`, `.method(args)`, or `(args)` suffixes.
func (p *Parser) parsePostfix() (ast.Expression, error) {
	expr, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	for {
		switch p.cur().Type {
		case lexer.LBRACKET:
			tok := p.advance()
			idx, err := p.parseExpression(precLowest)
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(lexer.RBRACKET); err != nil {
				return nil, err
			}
			expr = &ast.Index{Token: tok, Left: expr, Index: idx}
		case lexer.DOT:
			tok := p.advance()
			name, err := p.expect(lexer.IDENT)
			if err != nil {
				return nil, err
			}
			if p.curIs(lexer.LPAREN) {
				args, err := p.parseArgs()
				if err != nil {
					return nil, err
				}
				expr = &ast.MethodCall{Token: tok, Target: expr, Name: name.Literal, Args: args}
			} else {
				expr = &ast.FieldAccess{Token: tok, Left: expr, Field: name.Literal}
			}
		default:
			return expr, nil
		}
	}
}

func (p *Parser) parseArgs() ([]ast.Expression, error) {
	if _, err := p.expect(lexer.LPAREN); err != nil {
		return nil, err
	}
	var args []ast.Expression
	for !p.curIs(lexer.RPAREN) {
		arg, err := p.parseExpression(precLowest)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if p.curIs(lexer.COMMA) {
			p.advance()
		} else {
			break
		}
	}
	if _, err := p.expect(lexer.RPAREN); err != nil {
		return nil, err
	}
	return args, nil
}

func (p *Parser) parsePrimary() (ast.Expression, error) {
	tok := p.cur()
	switch tok.Type {
	case lexer.INT:
		p.advance()
		v, err := strconv.ParseInt(tok.Literal, 10, 64)
		if err != nil {
			return nil, errors.NewAt(errors.ParseError, tok.Pos, "invalid integer literal %q", tok.Literal)
		}
		return &ast.IntegerLiteral{Token: tok, Value: v}, nil
	case lexer.FLOAT:
		p.advance()
		v, err := strconv.ParseFloat(tok.Literal, 64)
		if err != nil {
			return nil, errors.NewAt(errors.ParseError, tok.Pos, "invalid float literal %q", tok.Literal)
		}
		return &ast.FloatLiteral{Token: tok, Value: v}, nil
	case lexer.STRING:
		p.advance()
		return &ast.StringLiteral{Token: tok, Value: tok.Literal}, nil
	case lexer.RAWSTRING:
		p.advance()
		return &ast.RawStringLiteral{Token: tok, Value: tok.Literal}, nil
	case lexer.FMTSTRING:
		p.advance()
		return p.parseFormatString(tok)
	case lexer.TRUE:
		p.advance()
		return &ast.BoolLiteral{Token: tok, Value: true}, nil
	case lexer.FALSE:
		p.advance()
		return &ast.BoolLiteral{Token: tok, Value: false}, nil
	case lexer.NULLLIT:
		p.advance()
		return &ast.NullLiteral{Token: tok}, nil
	case lexer.NANLIT:
		p.advance()
		return &ast.NanLiteral{Token: tok}, nil
	case lexer.THIS:
		p.advance()
		return &ast.Variable{Token: tok, Name: "THIS"}, nil
	case lexer.DISPLAY:
		return p.parseDisplayNode(false)
	case lexer.DISPLAYINLINE:
		return p.parseDisplayNode(true)
	case lexer.LBRACKET:
		return p.parseListLiteral()
	case lexer.LPAREN:
		p.advance()
		inner, err := p.parseExpression(precLowest)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.RPAREN); err != nil {
			return nil, err
		}
		return inner, nil
	case lexer.IDENT:
		p.advance()
		if p.curIs(lexer.LPAREN) {
			args, err := p.parseArgs()
			if err != nil {
				return nil, err
			}
			return &ast.Call{Token: tok, Name: tok.Literal, Args: args}, nil
		}
		return &ast.Variable{Token: tok, Name: tok.Literal}, nil
	}
	return nil, errors.NewAt(errors.ParseError, tok.Pos, "unexpected token %s %q", tok.Type, tok.Literal)
}

func (p *Parser) parseListLiteral() (ast.Expression, error) {
	tok := p.advance() // '['
	node := &ast.ListLiteral{Token: tok}
	for !p.curIs(lexer.RBRACKET) {
		el, err := p.parseExpression(precLowest)
		if err != nil {
			return nil, err
		}
		node.Elements = append(node.Elements, el)
		if p.curIs(lexer.COMMA) {
			p.advance()
		} else {
			break
		}
	}
	if _, err := p.expect(lexer.RBRACKET); err != nil {
		return nil, err
	}
	return node, nil
}

// parseFormatString splits an f"…" literal's already-brace-preserved
// content into alternating literal text and parsed {expr} fragments
// (spec.md §9: reified at lex time, re-parsed here so precedence and
// error reporting stay uniform with the rest of the language).
func (p *Parser) parseFormatString(tok lexer.Token) (ast.Expression, error) {
	node := &ast.FormatString{Token: tok}
	src := tok.Literal
	var lit strings.Builder

	flush := func() {
		if lit.Len() > 0 {
			node.Parts = append(node.Parts, ast.FormatStringPart{Literal: lit.String()})
			lit.Reset()
		}
	}

	i := 0
	for i < len(src) {
		ch := src[i]
		switch {
		case ch == '{' && i+1 < len(src) && src[i+1] == '{':
			lit.WriteByte('{')
			i += 2
		case ch == '}' && i+1 < len(src) && src[i+1] == '}':
			lit.WriteByte('}')
			i += 2
		case ch == '{':
			flush()
			depth := 1
			j := i + 1
			for j < len(src) && depth > 0 {
				switch src[j] {
				case '{':
					depth++
				case '}':
					depth--
				}
				if depth == 0 {
					break
				}
				j++
			}
			if depth != 0 {
				return nil, errors.NewAt(errors.ParseError, tok.Pos, "unbalanced '{' in formatted string %q", src)
			}
			exprSrc := src[i+1 : j]
			sub, err := New(exprSrc)
			if err != nil {
				return nil, err
			}
			expr, err := sub.parseExpression(precLowest)
			if err != nil {
				return nil, err
			}
			node.Parts = append(node.Parts, ast.FormatStringPart{Expr: expr})
			i = j + 1
		default:
			lit.WriteByte(ch)
			i++
		}
	}
	flush()
	return node, nil
}
