package lexer

import (
	"testing"

	"github.com/symlang/symlang/internal/token"
)

func TestNextTokenSymbols(t *testing.T) {
	input := `name = 5
"Hello " + name
? score >= 80 { "B" }
?? { "F" }
xs = [3 1 2]
^(xs -> 9)*
+? a b c : "Name? "
add(+?? +??)
`

	tests := []struct {
		expectedType    token.Type
		expectedLiteral string
	}{
		{token.IDENT, "name"},
		{token.ASSIGN, "="},
		{token.NUMBER, "5"},
		{token.NEWLINE, "\n"},
		{token.TEXT, "Hello "},
		{token.PLUS, "+"},
		{token.IDENT, "name"},
		{token.NEWLINE, "\n"},
		{token.QUESTION, "?"},
		{token.IDENT, "score"},
		{token.GTE, ">="},
		{token.NUMBER, "80"},
		{token.LBRACE, "{"},
		{token.TEXT, "B"},
		{token.RBRACE, "}"},
		{token.NEWLINE, "\n"},
		{token.QQUESTION, "??"},
		{token.LBRACE, "{"},
		{token.TEXT, "F"},
		{token.RBRACE, "}"},
		{token.NEWLINE, "\n"},
		{token.IDENT, "xs"},
		{token.ASSIGN, "="},
		{token.LBRACKET, "["},
		{token.NUMBER, "3"},
		{token.NUMBER, "1"},
		{token.NUMBER, "2"},
		{token.RBRACKET, "]"},
		{token.NEWLINE, "\n"},
		{token.CARET, "^"},
		{token.LPAREN, "("},
		{token.IDENT, "xs"},
		{token.ARROW, "->"},
		{token.NUMBER, "9"},
		{token.RPAREN, ")"},
		{token.STAR, "*"},
		{token.NEWLINE, "\n"},
		{token.INPUT, "+?"},
		{token.IDENT, "a"},
		{token.IDENT, "b"},
		{token.IDENT, "c"},
		{token.COLON, ":"},
		{token.TEXT, "Name? "},
		{token.NEWLINE, "\n"},
		{token.IDENT, "add"},
		{token.LPAREN, "("},
		{token.INPUTEXPR, "+??"},
		{token.INPUTEXPR, "+??"},
		{token.RPAREN, ")"},
		{token.NEWLINE, "\n"},
		{token.EOF, ""},
	}

	l := New(input)
	for i, tt := range tests {
		tok := l.NextToken()
		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - type wrong. expected=%s got=%s (literal=%q)", i, tt.expectedType, tok.Type, tok.Literal)
		}
		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - literal wrong. expected=%q got=%q", i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestBareVIsReservedSymbol(t *testing.T) {
	l := New("v(xs)")
	tok := l.NextToken()
	if tok.Type != token.VEE {
		t.Fatalf("expected VEE, got %s", tok.Type)
	}
}

func TestIdentifierStartingWithVIsIdent(t *testing.T) {
	l := New("value")
	tok := l.NextToken()
	if tok.Type != token.IDENT || tok.Literal != "value" {
		t.Fatalf("expected IDENT(value), got %s(%q)", tok.Type, tok.Literal)
	}
}

func TestAllBuiltinSymbols(t *testing.T) {
	input := "# $ ~ ^ & | ! ?= <> ++ -- >< <<"
	tests := []token.Type{
		token.HASH, token.DOLLAR, token.TILDE, token.CARET, token.AMP, token.PIPE, token.BANG,
		token.RANDOM, token.REV, token.SORTASC, token.SORTDESC, token.UNIQUE, token.DEDUPE,
	}
	l := New(input)
	for i, want := range tests {
		tok := l.NextToken()
		if tok.Type != want {
			t.Fatalf("tests[%d] - expected %s got %s (literal=%q)", i, want, tok.Type, tok.Literal)
		}
	}
}

func TestUnicodeIdentifier(t *testing.T) {
	l := New("Δ = café_Δ2")
	toks := []token.Token{l.NextToken(), l.NextToken(), l.NextToken()}
	if toks[0].Literal != "Δ" || toks[0].Type != token.IDENT {
		t.Fatalf("unexpected first token: %+v", toks[0])
	}
	if toks[2].Literal != "café_Δ2" {
		t.Fatalf("unexpected third token: %+v", toks[2])
	}
}

func TestLineComment(t *testing.T) {
	l := New("x = 1 // comment here\ny = 2")
	var lits []string
	for {
		tok := l.NextToken()
		if tok.Type == token.EOF {
			break
		}
		lits = append(lits, tok.Literal)
	}
	want := []string{"x", "=", "1", "\n", "y", "=", "2"}
	if len(lits) != len(want) {
		t.Fatalf("expected %d tokens, got %d: %v", len(want), len(lits), lits)
	}
	for i := range want {
		if lits[i] != want[i] {
			t.Fatalf("token %d: expected %q got %q", i, want[i], lits[i])
		}
	}
}

func TestStringEscapes(t *testing.T) {
	l := New(`"a\nb\tc\"d\\e"`)
	tok := l.NextToken()
	want := "a\nb\tc\"d\\e"
	if tok.Literal != want {
		t.Fatalf("expected %q got %q", want, tok.Literal)
	}
}

func TestUnterminatedStringReportsError(t *testing.T) {
	l := New(`"oops`)
	l.NextToken()
	if len(l.Errors()) == 0 {
		t.Fatalf("expected a lexer error for unterminated string")
	}
}

func TestFloatNumber(t *testing.T) {
	l := New("3.14 5")
	tok := l.NextToken()
	if tok.Type != token.NUMBER || tok.Literal != "3.14" {
		t.Fatalf("expected NUMBER(3.14), got %s(%q)", tok.Type, tok.Literal)
	}
}

func TestTokenizeHelper(t *testing.T) {
	toks, errs := Tokenize("1 + 2")
	if len(errs) != 0 {
		t.Fatalf("unexpected lexer errors: %v", errs)
	}
	if toks[len(toks)-1].Type != token.EOF {
		t.Fatalf("expected final token to be EOF")
	}
}
