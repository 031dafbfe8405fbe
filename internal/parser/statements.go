package parser

import (
	"github.com/cwbudde/fplc/internal/ast"
	"github.com/cwbudde/fplc/internal/errors"
	"github.com/cwbudde/fplc/internal/lexer"
)

func (p *Parser) parseStatement() (ast.Statement, error) {
	switch p.cur().Type {
	case lexer.IF:
		return p.parseIf()
	case lexer.REPEAT:
		return p.parseRepeat()
	case lexer.FOR:
		return p.parseForEach()
	case lexer.PROCEDURE:
		return p.parseProcedureDecl()
	case lexer.CLASS:
		return p.parseClassDecl()
	case lexer.RETURN:
		return p.parseReturn()
	case lexer.IMPORT:
		return p.parseImport()
	case lexer.TRY:
		return p.parseTryCatch()
	case lexer.DISPLAY:
		return p.parseDisplay(false)
	case lexer.DISPLAYINLINE:
		return p.parseDisplay(true)
	case lexer.IDENT:
		if p.cur().Literal == lexer.BuiltinExit && p.peek().Type == lexer.LPAREN {
			return p.parseExit()
		}
	}
	return p.parseAssignOrExprStatement()
}

func (p *Parser) parseExit() (ast.Statement, error) {
	tok := p.advance() // EXIT
	if _, err := p.expect(lexer.LPAREN); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.RPAREN); err != nil {
		return nil, err
	}
	return &ast.Exit{Token: tok}, nil
}

func (p *Parser) parseDisplay(inline bool) (ast.Statement, error) {
	node, err := p.parseDisplayNode(inline)
	if err != nil {
		return nil, err
	}
	return node.(ast.Statement), nil
}

// parseDisplayNode builds the shared Display/DisplayInline node consumed
// both at statement position (parseStatement) and, since DISPLAY and
// DISPLAYINLINE are also callable as expressions yielding Null (spec.md
// §4.4), at primary-expression position (parsePrimary).
func (p *Parser) parseDisplayNode(inline bool) (ast.Expression, error) {
	tok := p.advance()
	if _, err := p.expect(lexer.LPAREN); err != nil {
		return nil, err
	}
	val, err := p.parseExpression(precLowest)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.RPAREN); err != nil {
		return nil, err
	}
	if inline {
		return &ast.DisplayInline{Token: tok, Value: val}, nil
	}
	return &ast.Display{Token: tok, Value: val}, nil
}

func (p *Parser) parseIf() (ast.Statement, error) {
	tok := p.advance()
	if _, err := p.expect(lexer.LPAREN); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression(precLowest)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.RPAREN); err != nil {
		return nil, err
	}
	then, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	node := &ast.If{Token: tok, Condition: cond, Then: then}
	if p.curIs(lexer.ELSE) {
		p.advance()
		// ELSE binds to the nearest open IF; a following IF nests as a
		// single-statement else-block for if/elseif chains.
		if p.curIs(lexer.IF) {
			elseIf, err := p.parseIf()
			if err != nil {
				return nil, err
			}
			node.Else = &ast.Block{
				Token:      lexer.Token{Type: lexer.LBRACE, Literal: "{", Pos: elseIf.Pos()},
				Statements: []ast.Statement{elseIf},
			}
		} else {
			elseBlock, err := p.parseBlock()
			if err != nil {
				return nil, err
			}
			node.Else = elseBlock
		}
	}
	return node, nil
}

func (p *Parser) parseRepeat() (ast.Statement, error) {
	tok := p.advance() // REPEAT
	if p.curIs(lexer.UNTIL) {
		p.advance()
		if _, err := p.expect(lexer.LPAREN); err != nil {
			return nil, err
		}
		cond, err := p.parseExpression(precLowest)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.RPAREN); err != nil {
			return nil, err
		}
		body, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		return &ast.RepeatUntil{Token: tok, Condition: cond, Body: body}, nil
	}
	count, err := p.parseExpression(precLowest)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TIMES); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.RepeatTimes{Token: tok, Count: count, Body: body}, nil
}

func (p *Parser) parseForEach() (ast.Statement, error) {
	tok := p.advance() // FOR
	if _, err := p.expect(lexer.EACH); err != nil {
		return nil, err
	}
	name, err := p.expect(lexer.IDENT)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.IN); err != nil {
		return nil, err
	}
	list, err := p.parseExpression(precLowest)
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.ForEach{Token: tok, Var: name.Literal, List: list, Body: body}, nil
}

func (p *Parser) parseProcedureDecl() (*ast.ProcedureDecl, error) {
	tok := p.advance() // PROCEDURE
	name, err := p.expect(lexer.IDENT)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.LPAREN); err != nil {
		return nil, err
	}
	var params []string
	for !p.curIs(lexer.RPAREN) {
		id, err := p.expect(lexer.IDENT)
		if err != nil {
			return nil, err
		}
		params = append(params, id.Literal)
		if p.curIs(lexer.COMMA) {
			p.advance()
		}
	}
	if _, err := p.expect(lexer.RPAREN); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.ProcedureDecl{Token: tok, Name: name.Literal, Params: params, Body: body}, nil
}

func (p *Parser) parseClassDecl() (ast.Statement, error) {
	tok := p.advance() // CLASS
	name, err := p.expect(lexer.IDENT)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.LPAREN); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.RPAREN); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.LBRACE); err != nil {
		return nil, err
	}
	node := &ast.ClassDecl{Token: tok, Name: name.Literal}
	for !p.curIs(lexer.RBRACE) {
		if p.curIs(lexer.EOF) {
			return nil, errors.NewAt(errors.ParseError, p.cur().Pos, "unterminated class body: expected '}'")
		}
		if !p.curIs(lexer.PROCEDURE) {
			return nil, errors.NewAt(errors.ParseError, p.cur().Pos,
				"expected PROCEDURE in class body, got %s", p.cur().Type)
		}
		m, err := p.parseProcedureDecl()
		if err != nil {
			return nil, err
		}
		node.Methods = append(node.Methods, m)
	}
	if _, err := p.expect(lexer.RBRACE); err != nil {
		return nil, err
	}
	return node, nil
}

func (p *Parser) parseReturn() (ast.Statement, error) {
	tok := p.advance() // RETURN
	node := &ast.Return{Token: tok}
	if p.curIs(lexer.LPAREN) {
		p.advance()
		if p.curIs(lexer.RPAREN) {
			p.advance()
			return node, nil
		}
		val, err := p.parseExpression(precLowest)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.RPAREN); err != nil {
			return nil, err
		}
		node.Value = val
		return node, nil
	}
	return node, nil
}

func (p *Parser) parseImport() (ast.Statement, error) {
	tok := p.advance() // IMPORT
	name, err := p.expect(lexer.IDENT)
	if err != nil {
		return nil, err
	}
	return &ast.Import{Token: tok, Name: name.Literal}, nil
}

func (p *Parser) parseTryCatch() (ast.Statement, error) {
	tok := p.advance() // TRY
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.CATCH); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.LPAREN); err != nil {
		return nil, err
	}
	name, err := p.expect(lexer.IDENT)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.RPAREN); err != nil {
		return nil, err
	}
	handler, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.TryCatch{Token: tok, Body: body, CatchName: name.Literal, Handler: handler}, nil
}

// reservedAssignTargets rejects assignment to a literal keyword spelled
// as an identifier-shaped lvalue, e.g. `TRUE <- 1` (spec.md §4.2).
var reservedAssignTargets = map[lexer.TokenType]bool{
	lexer.TRUE: true, lexer.FALSE: true, lexer.NULLLIT: true, lexer.NANLIT: true,
	lexer.THIS: true,
}

func (p *Parser) parseAssignOrExprStatement() (ast.Statement, error) {
	if reservedAssignTargets[p.cur().Type] && p.peek().Type == lexer.ASSIGN {
		return nil, errors.NewAt(errors.ParseError, p.cur().Pos,
			"cannot assign to reserved word %q", p.cur().Literal)
	}

	startTok := p.cur()
	expr, err := p.parseExpression(precLowest)
	if err != nil {
		return nil, err
	}

	if p.curIs(lexer.ASSIGN) {
		assignTok := p.advance()
		value, err := p.parseExpression(precLowest)
		if err != nil {
			return nil, err
		}
		switch target := expr.(type) {
		case *ast.Variable:
			return &ast.Assign{Token: assignTok, Name: target.Name, Value: value}, nil
		case *ast.Index:
			return &ast.IndexAssign{Token: assignTok, Target: target.Left, Index: target.Index, Value: value}, nil
		case *ast.FieldAccess:
			return &ast.FieldAssign{Token: assignTok, Target: target.Left, Field: target.Field, Value: value}, nil
		default:
			return nil, errors.NewAt(errors.ParseError, startTok.Pos,
				"invalid assignment target %s", expr)
		}
	}

	return &ast.ExpressionStatement{Token: startTok, Expr: expr}, nil
}
