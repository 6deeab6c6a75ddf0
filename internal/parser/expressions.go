package parser

import (
	"strconv"

	"github.com/symlang/symlang/internal/ast"
	"github.com/symlang/symlang/internal/token"
)

// builtinOperators maps the symbol token that opens a built-in call to
// its canonical operator text, per the closed catalogue in the grammar.
// '!' is deliberately absent: `!(x)` is already expressible as unary '!'
// applied to a parenthesized expression, so it is parsed through the
// unary path rather than duplicated here.
var builtinOperators = map[token.Type]string{
	token.HASH:     "#",
	token.DOLLAR:   "$",
	token.TILDE:    "~",
	token.CARET:    "^",
	token.VEE:      "v",
	token.AMP:      "&",
	token.PIPE:     "|",
	token.RANDOM:   "?=",
	token.REV:      "<>",
	token.SORTASC:  "++",
	token.SORTDESC: "--",
	token.UNIQUE:   "><",
	token.DEDUPE:   "<<",
}

func (p *Parser) parseExpression() ast.Expression {
	return p.parseEquality()
}

func (p *Parser) parseEquality() ast.Expression {
	left := p.parseComparison()
	for p.at(token.EQ) || p.at(token.NEQ) {
		opTok := p.advance()
		right := p.parseComparison()
		left = &ast.BinaryExpression{Tok: opTok, Operator: opTok.Literal, Left: left, Right: right}
	}
	return left
}

func (p *Parser) parseComparison() ast.Expression {
	left := p.parseAdditive()
	for p.at(token.LT) || p.at(token.LTE) || p.at(token.GT) || p.at(token.GTE) {
		opTok := p.advance()
		right := p.parseAdditive()
		left = &ast.BinaryExpression{Tok: opTok, Operator: opTok.Literal, Left: left, Right: right}
	}
	return left
}

func (p *Parser) parseAdditive() ast.Expression {
	left := p.parseMultiplicative()
	for p.at(token.PLUS) || p.at(token.MINUS) {
		opTok := p.advance()
		right := p.parseMultiplicative()
		left = &ast.BinaryExpression{Tok: opTok, Operator: opTok.Literal, Left: left, Right: right}
	}
	return left
}

func (p *Parser) parseMultiplicative() ast.Expression {
	left := p.parseUnary()
	for p.at(token.STAR) || p.at(token.SLASH) || p.at(token.PERCENT) {
		opTok := p.advance()
		right := p.parseUnary()
		left = &ast.BinaryExpression{Tok: opTok, Operator: opTok.Literal, Left: left, Right: right}
	}
	return left
}

func (p *Parser) parseUnary() ast.Expression {
	if p.at(token.BANG) || p.at(token.MINUS) {
		opTok := p.advance()
		operand := p.parseUnary()
		return &ast.UnaryExpression{Tok: opTok, Operator: opTok.Literal, Operand: operand}
	}
	return p.parsePostfix()
}

func (p *Parser) parsePostfix() ast.Expression {
	expr := p.parsePrimary()
	for {
		switch {
		case p.at(token.LBRACKET):
			lb := p.advance()
			idx := p.parseExpression()
			p.expect(token.RBRACKET)
			expr = &ast.IndexExpression{Tok: lb, Left: expr, Index: idx}
		case p.at(token.LPAREN):
			ident, ok := expr.(*ast.Identifier)
			if !ok {
				return expr
			}
			expr = p.parseCallArguments(ident)
		default:
			return expr
		}
	}
}

func (p *Parser) parseCallArguments(fn *ast.Identifier) *ast.CallExpression {
	tok := p.advance() // '('
	call := &ast.CallExpression{Tok: tok, Function: fn}
	for !p.at(token.RPAREN) && !p.at(token.EOF) {
		call.Arguments = append(call.Arguments, p.parseExpression())
	}
	p.expect(token.RPAREN)
	return call
}

func (p *Parser) parsePrimary() ast.Expression {
	tok := p.cur()

	if op, ok := builtinOperators[tok.Type]; ok {
		return p.parseBuiltinCall(op)
	}

	switch tok.Type {
	case token.NUMBER:
		p.advance()
		v, err := strconv.ParseFloat(tok.Literal, 64)
		if err != nil {
			p.errorAt(tok.Pos, "malformed number %q", tok.Literal)
		}
		return &ast.NumberLiteral{Tok: tok, Value: v}
	case token.TEXT:
		p.advance()
		return &ast.TextLiteral{Tok: tok, Value: tok.Literal}
	case token.IDENT:
		p.advance()
		if tok.Literal == "yes" || tok.Literal == "no" {
			return &ast.BoolLiteral{Tok: tok, Value: tok.Literal == "yes"}
		}
		return &ast.Identifier{Tok: tok, Value: tok.Literal}
	case token.LBRACKET:
		return p.parseListLiteral()
	case token.LPAREN:
		p.advance()
		expr := p.parseExpression()
		p.expect(token.RPAREN)
		return expr
	case token.INPUTEXPR:
		p.advance()
		return &ast.InlineInputExpression{Tok: tok}
	}

	p.errorAt(tok.Pos, "unexpected token %s (%q)", tok.Type, tok.Literal)
	p.advance()
	return &ast.Identifier{Tok: tok, Value: tok.Literal}
}

func (p *Parser) parseListLiteral() *ast.ListLiteral {
	tok := p.advance() // '['
	lit := &ast.ListLiteral{Tok: tok}
	for !p.at(token.RBRACKET) && !p.at(token.EOF) {
		lit.Elements = append(lit.Elements, p.parseExpression())
	}
	p.expect(token.RBRACKET)
	return lit
}

// parseBuiltinCall parses `OP(arg arg ...)` optionally followed by a
// mutating '*' suffix. The '->' sugar between the first and second
// argument is accepted and discarded.
func (p *Parser) parseBuiltinCall(operator string) *ast.BuiltinCallExpression {
	tok := p.advance() // the operator symbol token
	p.expect(token.LPAREN)

	call := &ast.BuiltinCallExpression{Tok: tok, Operator: operator}
	for !p.at(token.RPAREN) && !p.at(token.EOF) {
		if p.at(token.ARROW) {
			p.advance()
			continue
		}
		call.Arguments = append(call.Arguments, p.parseExpression())
	}
	p.expect(token.RPAREN)

	if p.at(token.STAR) {
		p.advance()
		call.Mutating = true
	}
	return call
}
