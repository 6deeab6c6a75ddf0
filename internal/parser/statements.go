package parser

import (
	"github.com/symlang/symlang/internal/ast"
	"github.com/symlang/symlang/internal/token"
)

func (p *Parser) parseStatement() ast.Statement {
	switch p.cur().Type {
	case token.QUESTION:
		return p.parseQuestionStatement()
	case token.AT:
		return p.parseWhileStatement()
	case token.SHR:
		return p.parseForEachStatement()
	case token.INPUT:
		return p.parseInputStatement()
	case token.ARROW:
		return p.parseReturnStatement()
	case token.IDENT:
		if p.peek(1).Type == token.ASSIGN {
			return p.parseAssignmentStatement()
		}
		if p.peek(1).Type == token.LPAREN {
			if fn := p.tryParseFunctionDef(); fn != nil {
				return fn
			}
		}
		return p.parseExpressionStatement()
	default:
		return p.parseExpressionStatement()
	}
}

// tryParseFunctionDef recognizes `Ident '(' Ident* ')' '=>' block` or the
// quick-function `~>' expr` form by looking past the matching ')' for a
// '=>' or '~>'. If neither follows, it returns nil and leaves the cursor
// untouched so the caller falls back to a normal expression statement
// (a plain call like `foo(1 2)` used as a statement).
func (p *Parser) tryParseFunctionDef() *ast.FunctionDefStatement {
	openIdx := p.pos + 1
	closeIdx := p.matchingParen(openIdx)
	if closeIdx+1 >= len(p.toks) {
		return nil
	}
	after := p.toks[closeIdx+1]
	if after.Type != token.FATARR && after.Type != token.SQUIGARR {
		return nil
	}

	tokName := p.cur()
	name := &ast.Identifier{Tok: tokName, Value: tokName.Literal}
	p.advance() // name
	p.advance() // '('

	var params []*ast.Identifier
	for !p.at(token.RPAREN) && !p.at(token.EOF) {
		pt := p.expect(token.IDENT)
		params = append(params, &ast.Identifier{Tok: pt, Value: pt.Literal})
	}
	p.expect(token.RPAREN)

	arrow := p.advance() // '=>' or '~>'
	def := &ast.FunctionDefStatement{Tok: arrow, Name: name, Parameters: params}
	if arrow.Type == token.SQUIGARR {
		def.Quick = true
		def.Expr = p.parseExpression()
		return def
	}
	def.Body = p.parseBlock()
	return def
}

func (p *Parser) parseAssignmentStatement() *ast.AssignmentStatement {
	nameTok := p.advance()
	eq := p.expect(token.ASSIGN)
	value := p.parseExpression()
	return &ast.AssignmentStatement{
		Tok:   eq,
		Name:  &ast.Identifier{Tok: nameTok, Value: nameTok.Literal},
		Value: value,
	}
}

// parseQuestionStatement disambiguates the overloaded leading '?': a
// bare identifier immediately followed by a statement terminator is a
// legacy input read; anything else is the head of an if-chain.
func (p *Parser) parseQuestionStatement() ast.Statement {
	tok := p.advance() // '?'

	if p.at(token.IDENT) && isStmtEnd(p.peek(1)) {
		varTok := p.advance()
		return &ast.LegacyInputStatement{Tok: tok, Variable: &ast.Identifier{Tok: varTok, Value: varTok.Literal}}
	}

	stmt := &ast.IfChainStatement{Tok: tok}
	cond := p.parseExpression()
	body := p.parseBlock()
	stmt.Clauses = append(stmt.Clauses, &ast.ConditionalGuard{Condition: cond, Body: body})

	for {
		// The '}' (or '<=') closing a clause is normally followed by a
		// newline before the next '??'. Look past terminators without
		// consuming them unless the chain actually continues, so a plain
		// statement after the if-chain still gets its terminator.
		n := 0
		for p.peek(n).Type == token.NEWLINE || p.peek(n).Type == token.SEMICOLON {
			n++
		}
		if p.peek(n).Type != token.QQUESTION {
			break
		}
		p.pos += n
		p.advance()
		if p.at(token.LBRACE) {
			// Trailing else with no condition. Brace style is the only
			// spelling that disambiguates this from an else-if guard
			// expression; a legacy-style bare else is not supported
			// (see DESIGN.md).
			stmt.ElseBody = p.parseBlock()
			break
		}
		elseCond := p.parseExpression()
		elseBody := p.parseBlock()
		stmt.Clauses = append(stmt.Clauses, &ast.ConditionalGuard{Condition: elseCond, Body: elseBody})
	}

	return stmt
}

func isStmtEnd(t token.Token) bool {
	return t.Type == token.NEWLINE || t.Type == token.SEMICOLON || t.Type == token.EOF
}

func (p *Parser) parseWhileStatement() *ast.WhileStatement {
	tok := p.advance() // '@'
	cond := p.parseExpression()
	body := p.parseBlock()
	return &ast.WhileStatement{Tok: tok, Condition: cond, Body: body}
}

func (p *Parser) parseForEachStatement() *ast.ForEachStatement {
	tok := p.advance() // '>>'
	varTok := p.expect(token.IDENT)
	coll := p.parseExpression()
	body := p.parseBlock()
	return &ast.ForEachStatement{
		Tok:        tok,
		Variable:   &ast.Identifier{Tok: varTok, Value: varTok.Literal},
		Collection: coll,
		Body:       body,
	}
}

func (p *Parser) parseInputStatement() *ast.InputStatement {
	tok := p.advance() // '+?'
	stmt := &ast.InputStatement{Tok: tok}
	for p.at(token.IDENT) {
		vt := p.advance()
		stmt.Variables = append(stmt.Variables, &ast.Identifier{Tok: vt, Value: vt.Literal})
	}
	if len(stmt.Variables) == 0 {
		p.errorAt(p.cur().Pos, "expected at least one variable after '+?'")
	}
	if p.at(token.COLON) {
		p.advance()
		stmt.Prompt = p.parseExpression()
	}
	return stmt
}

func (p *Parser) parseReturnStatement() *ast.ReturnStatement {
	tok := p.advance() // '->'
	val := p.parseExpression()
	return &ast.ReturnStatement{Tok: tok, Value: val}
}

func (p *Parser) parseExpressionStatement() *ast.ExpressionStatement {
	tok := p.cur()
	expr := p.parseExpression()
	return &ast.ExpressionStatement{Tok: tok, Expression: expr}
}
