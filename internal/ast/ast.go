// Package ast defines the abstract syntax tree produced by the parser and
// walked by the evaluator.
package ast

import (
	"bytes"
	"strings"

	"github.com/symlang/symlang/internal/token"
)

// Node is the base interface implemented by every AST node.
type Node interface {
	TokenLiteral() string
	String() string
	Pos() token.Position
}

// Expression is a node that produces a Value when evaluated.
type Expression interface {
	Node
	expressionNode()
}

// Statement is a node that performs an action.
type Statement interface {
	Node
	statementNode()
}

// Program is the root node: a flat list of top-level statements.
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

func (p *Program) Pos() token.Position {
	if len(p.Statements) > 0 {
		return p.Statements[0].Pos()
	}
	return token.Position{Line: 1, Column: 1}
}

// Block is a sequence of statements delimited either by `{ }` or by a
// bare legacy `<=` terminator. The parser normalizes both spellings to
// this single node, recording which style it saw for round-tripping
// String() output only.
type Block struct {
	Tok        token.Token
	Statements []Statement
	Legacy     bool // true if closed with a bare '<=' rather than '}'
}

func (b *Block) statementNode()       {}
func (b *Block) TokenLiteral() string { return b.Tok.Literal }
func (b *Block) Pos() token.Position  { return b.Tok.Pos }
func (b *Block) String() string {
	var out bytes.Buffer
	if !b.Legacy {
		out.WriteString("{ ")
	}
	for _, s := range b.Statements {
		out.WriteString(s.String())
		out.WriteString(" ")
	}
	if b.Legacy {
		out.WriteString("<=")
	} else {
		out.WriteString("}")
	}
	return out.String()
}

// Identifier is a bare name reference.
type Identifier struct {
	Tok   token.Token
	Value string
}

func (i *Identifier) expressionNode()      {}
func (i *Identifier) TokenLiteral() string { return i.Tok.Literal }
func (i *Identifier) Pos() token.Position  { return i.Tok.Pos }
func (i *Identifier) String() string       { return i.Value }

// NumberLiteral is a double-precision numeric literal.
type NumberLiteral struct {
	Tok   token.Token
	Value float64
}

func (n *NumberLiteral) expressionNode()      {}
func (n *NumberLiteral) TokenLiteral() string { return n.Tok.Literal }
func (n *NumberLiteral) Pos() token.Position  { return n.Tok.Pos }
func (n *NumberLiteral) String() string       { return n.Tok.Literal }

// TextLiteral is a double-quoted string literal.
type TextLiteral struct {
	Tok   token.Token
	Value string
}

func (s *TextLiteral) expressionNode()      {}
func (s *TextLiteral) TokenLiteral() string { return s.Tok.Literal }
func (s *TextLiteral) Pos() token.Position  { return s.Tok.Pos }
func (s *TextLiteral) String() string       { return `"` + s.Value + `"` }

// BoolLiteral is the `yes`/`no` literal.
type BoolLiteral struct {
	Tok   token.Token
	Value bool
}

func (b *BoolLiteral) expressionNode()      {}
func (b *BoolLiteral) TokenLiteral() string { return b.Tok.Literal }
func (b *BoolLiteral) Pos() token.Position  { return b.Tok.Pos }
func (b *BoolLiteral) String() string {
	if b.Value {
		return "yes"
	}
	return "no"
}

// ListLiteral is a space-separated list literal: [ e1 e2 ... ].
type ListLiteral struct {
	Tok      token.Token
	Elements []Expression
}

func (l *ListLiteral) expressionNode()      {}
func (l *ListLiteral) TokenLiteral() string { return l.Tok.Literal }
func (l *ListLiteral) Pos() token.Position  { return l.Tok.Pos }
func (l *ListLiteral) String() string {
	parts := make([]string, len(l.Elements))
	for i, e := range l.Elements {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// BinaryExpression is an infix operator application.
type BinaryExpression struct {
	Tok      token.Token // the operator token
	Operator string
	Left     Expression
	Right    Expression
}

func (b *BinaryExpression) expressionNode()      {}
func (b *BinaryExpression) TokenLiteral() string { return b.Tok.Literal }
func (b *BinaryExpression) Pos() token.Position  { return b.Tok.Pos }
func (b *BinaryExpression) String() string {
	return "(" + b.Left.String() + " " + b.Operator + " " + b.Right.String() + ")"
}

// UnaryExpression is a prefix `!` or `-` application.
type UnaryExpression struct {
	Tok      token.Token
	Operator string
	Operand  Expression
}

func (u *UnaryExpression) expressionNode()      {}
func (u *UnaryExpression) TokenLiteral() string { return u.Tok.Literal }
func (u *UnaryExpression) Pos() token.Position  { return u.Tok.Pos }
func (u *UnaryExpression) String() string {
	return "(" + u.Operator + u.Operand.String() + ")"
}

// IndexExpression is postfix `xs[i]`.
type IndexExpression struct {
	Tok   token.Token // '['
	Left  Expression
	Index Expression
}

func (ix *IndexExpression) expressionNode()      {}
func (ix *IndexExpression) TokenLiteral() string { return ix.Tok.Literal }
func (ix *IndexExpression) Pos() token.Position  { return ix.Tok.Pos }
func (ix *IndexExpression) String() string {
	return "(" + ix.Left.String() + "[" + ix.Index.String() + "])"
}

// CallExpression is a user-function call: name(args...).
type CallExpression struct {
	Tok       token.Token // '('
	Function  *Identifier
	Arguments []Expression
}

func (c *CallExpression) expressionNode()      {}
func (c *CallExpression) TokenLiteral() string { return c.Tok.Literal }
func (c *CallExpression) Pos() token.Position  { return c.Tok.Pos }
func (c *CallExpression) String() string {
	parts := make([]string, len(c.Arguments))
	for i, a := range c.Arguments {
		parts[i] = a.String()
	}
	return c.Function.String() + "(" + strings.Join(parts, " ") + ")"
}

// BuiltinCallExpression is a symbol-operator call such as `^(xs v)` or,
// with the mutating suffix, `^(xs v)*`. The Mutating flag is carried on
// this node rather than modeled as a distinct expression type, per the
// grammar's design note that '*' is a flag on the call, not a value.
type BuiltinCallExpression struct {
	Tok       token.Token // the operator symbol token
	Operator  string
	Arguments []Expression
	Mutating  bool
}

func (b *BuiltinCallExpression) expressionNode()      {}
func (b *BuiltinCallExpression) TokenLiteral() string { return b.Tok.Literal }
func (b *BuiltinCallExpression) Pos() token.Position  { return b.Tok.Pos }
func (b *BuiltinCallExpression) String() string {
	parts := make([]string, len(b.Arguments))
	for i, a := range b.Arguments {
		parts[i] = a.String()
	}
	s := b.Operator + "(" + strings.Join(parts, " ") + ")"
	if b.Mutating {
		s += "*"
	}
	return s
}

// InlineInputExpression is `+??` used inline in an expression.
type InlineInputExpression struct {
	Tok token.Token
}

func (e *InlineInputExpression) expressionNode()      {}
func (e *InlineInputExpression) TokenLiteral() string { return e.Tok.Literal }
func (e *InlineInputExpression) Pos() token.Position  { return e.Tok.Pos }
func (e *InlineInputExpression) String() string       { return "+??" }

// ConditionalGuard pairs a guard expression with the block to run when it
// is truthy; an if-chain holds one per `?`/`??` clause.
type ConditionalGuard struct {
	Condition Expression
	Body      *Block
}
