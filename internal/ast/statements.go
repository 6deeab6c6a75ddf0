package ast

import (
	"strings"

	"github.com/symlang/symlang/internal/token"
)

// ExpressionStatement wraps a bare expression used as a statement. Its
// value is auto-printed by the evaluator unless it is Nothing, per the
// auto-print rule.
type ExpressionStatement struct {
	Tok        token.Token
	Expression Expression
}

func (e *ExpressionStatement) statementNode()       {}
func (e *ExpressionStatement) TokenLiteral() string { return e.Tok.Literal }
func (e *ExpressionStatement) Pos() token.Position  { return e.Tok.Pos }
func (e *ExpressionStatement) String() string {
	if e.Expression == nil {
		return ""
	}
	return e.Expression.String()
}

// AssignmentStatement binds or rebinds a name in the current frame.
type AssignmentStatement struct {
	Tok   token.Token // '='
	Name  *Identifier
	Value Expression
}

func (a *AssignmentStatement) statementNode()       {}
func (a *AssignmentStatement) TokenLiteral() string { return a.Tok.Literal }
func (a *AssignmentStatement) Pos() token.Position  { return a.Tok.Pos }
func (a *AssignmentStatement) String() string {
	return a.Name.String() + " = " + a.Value.String()
}

// FunctionDefStatement is `name(params) => block` or `name(params) ~> expr`.
type FunctionDefStatement struct {
	Tok        token.Token // '=>' or '~>'
	Name       *Identifier
	Parameters []*Identifier
	Quick      bool        // true for ~>
	Body       *Block      // set when !Quick
	Expr       Expression  // set when Quick
}

func (f *FunctionDefStatement) statementNode()       {}
func (f *FunctionDefStatement) TokenLiteral() string { return f.Tok.Literal }
func (f *FunctionDefStatement) Pos() token.Position  { return f.Tok.Pos }
func (f *FunctionDefStatement) String() string {
	params := make([]string, len(f.Parameters))
	for i, p := range f.Parameters {
		params[i] = p.String()
	}
	head := f.Name.String() + "(" + strings.Join(params, " ") + ")"
	if f.Quick {
		return head + " ~> " + f.Expr.String()
	}
	return head + " => " + f.Body.String()
}

// IfChainStatement is `? cond block (?? cond block)* (?? block)?`.
type IfChainStatement struct {
	Tok      token.Token // '?'
	Clauses  []*ConditionalGuard
	ElseBody *Block // nil if there is no trailing else
}

func (i *IfChainStatement) statementNode()       {}
func (i *IfChainStatement) TokenLiteral() string { return i.Tok.Literal }
func (i *IfChainStatement) Pos() token.Position  { return i.Tok.Pos }
func (i *IfChainStatement) String() string {
	var sb strings.Builder
	for idx, c := range i.Clauses {
		if idx == 0 {
			sb.WriteString("? ")
		} else {
			sb.WriteString("?? ")
		}
		sb.WriteString(c.Condition.String())
		sb.WriteString(" ")
		sb.WriteString(c.Body.String())
		sb.WriteString(" ")
	}
	if i.ElseBody != nil {
		sb.WriteString("?? ")
		sb.WriteString(i.ElseBody.String())
	}
	return sb.String()
}

// WhileStatement is `@ cond block`.
type WhileStatement struct {
	Tok       token.Token // '@'
	Condition Expression
	Body      *Block
}

func (w *WhileStatement) statementNode()       {}
func (w *WhileStatement) TokenLiteral() string { return w.Tok.Literal }
func (w *WhileStatement) Pos() token.Position  { return w.Tok.Pos }
func (w *WhileStatement) String() string {
	return "@ " + w.Condition.String() + " " + w.Body.String()
}

// ForEachStatement is `>> ident expr block`.
type ForEachStatement struct {
	Tok        token.Token // '>>'
	Variable   *Identifier
	Collection Expression
	Body       *Block
}

func (f *ForEachStatement) statementNode()       {}
func (f *ForEachStatement) TokenLiteral() string { return f.Tok.Literal }
func (f *ForEachStatement) Pos() token.Position  { return f.Tok.Pos }
func (f *ForEachStatement) String() string {
	return ">> " + f.Variable.String() + " " + f.Collection.String() + " " + f.Body.String()
}

// InputStatement is `+? a b c` or `+? a b c : "prompt"`.
type InputStatement struct {
	Tok       token.Token // '+?'
	Variables []*Identifier
	Prompt    Expression // nil when no prompt was given
}

func (in *InputStatement) statementNode()       {}
func (in *InputStatement) TokenLiteral() string { return in.Tok.Literal }
func (in *InputStatement) Pos() token.Position  { return in.Tok.Pos }
func (in *InputStatement) String() string {
	names := make([]string, len(in.Variables))
	for i, v := range in.Variables {
		names[i] = v.String()
	}
	s := "+? " + strings.Join(names, " ")
	if in.Prompt != nil {
		s += " : " + in.Prompt.String()
	}
	return s
}

// ReturnStatement is `-> expr`.
type ReturnStatement struct {
	Tok   token.Token // '->'
	Value Expression
}

func (r *ReturnStatement) statementNode()       {}
func (r *ReturnStatement) TokenLiteral() string { return r.Tok.Literal }
func (r *ReturnStatement) Pos() token.Position  { return r.Tok.Pos }
func (r *ReturnStatement) String() string {
	if r.Value == nil {
		return "->"
	}
	return "-> " + r.Value.String()
}

// LegacyInputStatement is the `? ident` disambiguation outcome: a bare
// identifier following '?' at statement position with no guard syntax,
// equivalent to `+? ident`.
type LegacyInputStatement struct {
	Tok      token.Token // '?'
	Variable *Identifier
}

func (l *LegacyInputStatement) statementNode()       {}
func (l *LegacyInputStatement) TokenLiteral() string { return l.Tok.Literal }
func (l *LegacyInputStatement) Pos() token.Position  { return l.Tok.Pos }
func (l *LegacyInputStatement) String() string {
	return "? " + l.Variable.String()
}
