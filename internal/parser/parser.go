// Package parser builds an AST from the flat token stream produced by
// the lexer. It resolves the one piece of real context sensitivity in
// the grammar: whether a leading '?' begins an if-chain, a legacy input
// statement, or (inside a block) a bare '<=' closing it.
package parser

import (
	"fmt"

	"github.com/symlang/symlang/internal/ast"
	"github.com/symlang/symlang/internal/lexer"
	"github.com/symlang/symlang/internal/token"
)

// Parser walks a pre-scanned token vector with arbitrary lookahead; the
// grammar has no recursive-descent need for streaming lexing, and a flat
// vector makes the '?' and legacy-block disambiguation trivial to
// implement as lookahead rather than backtracking.
type Parser struct {
	toks   []token.Token
	pos    int
	errors []LocError
}

// LocError is a single diagnostic with the position it occurred at.
type LocError struct {
	Pos     token.Position
	Message string
}

// New builds a Parser over source. Lexical errors found while scanning
// are retained and surfaced through Errors() alongside any parse errors.
func New(source string) *Parser {
	toks, lexErrs := lexer.Tokenize(source)
	p := &Parser{toks: toks}
	for _, le := range lexErrs {
		p.errorAt(le.Pos, le.Message)
	}
	return p
}

// Errors returns every lexical and syntax error found: all lexical errors
// first, then syntax errors, each group in the order it was found.
func (p *Parser) Errors() []string {
	out := make([]string, len(p.errors))
	for i, e := range p.errors {
		out[i] = fmt.Sprintf("%s at %d:%d", e.Message, e.Pos.Line, e.Pos.Column)
	}
	return out
}

// LocatedErrors returns the same diagnostics as Errors but with structured
// positions, for building errors.CompilerError values.
func (p *Parser) LocatedErrors() []LocError { return p.errors }

func (p *Parser) errorAt(pos token.Position, format string, args ...any) {
	p.errors = append(p.errors, LocError{Pos: pos, Message: fmt.Sprintf(format, args...)})
}

func (p *Parser) cur() token.Token { return p.toks[p.pos] }

func (p *Parser) peek(n int) token.Token {
	i := p.pos + n
	if i >= len(p.toks) {
		return p.toks[len(p.toks)-1] // EOF
	}
	return p.toks[i]
}

func (p *Parser) advance() token.Token {
	t := p.toks[p.pos]
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

func (p *Parser) at(t token.Type) bool { return p.cur().Type == t }

func (p *Parser) expect(t token.Type) token.Token {
	if p.cur().Type != t {
		p.errorAt(p.cur().Pos, "expected %s, got %s (%q)", t, p.cur().Type, p.cur().Literal)
		return p.cur()
	}
	return p.advance()
}

func (p *Parser) isTerminator() bool {
	return p.at(token.NEWLINE) || p.at(token.SEMICOLON)
}

func (p *Parser) skipTerminators() {
	for p.isTerminator() {
		p.advance()
	}
}

// ParseProgram parses the full token stream into a Program.
func (p *Parser) ParseProgram() *ast.Program {
	prog := &ast.Program{}
	p.skipTerminators()
	for !p.at(token.EOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			prog.Statements = append(prog.Statements, stmt)
		}
		p.skipTerminators()
	}
	return prog
}

// parseBlock parses `{ stmt* }` or the legacy `stmt* <=` form, per the
// grammar note that both spellings are accepted and parsed identically.
func (p *Parser) parseBlock() *ast.Block {
	tok := p.cur()
	block := &ast.Block{Tok: tok}

	if p.at(token.LBRACE) {
		p.advance()
		p.skipTerminators()
		for !p.at(token.RBRACE) && !p.at(token.EOF) {
			stmt := p.parseStatement()
			if stmt != nil {
				block.Statements = append(block.Statements, stmt)
			}
			p.skipTerminators()
		}
		p.expect(token.RBRACE)
		return block
	}

	block.Legacy = true
	p.skipTerminators()
	for !p.at(token.LTE) && !p.at(token.EOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
		p.skipTerminators()
	}
	p.expect(token.LTE)
	return block
}

// matchingParen returns the index of the ')' that closes the '(' at
// index open, accounting for nested parentheses in argument expressions.
func (p *Parser) matchingParen(open int) int {
	depth := 0
	for i := open; i < len(p.toks); i++ {
		switch p.toks[i].Type {
		case token.LPAREN:
			depth++
		case token.RPAREN:
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return len(p.toks) - 1
}
