package errors

import (
	"strings"
	"testing"

	"github.com/symlang/symlang/internal/token"
)

func TestCompilerErrorFormat(t *testing.T) {
	tests := []struct {
		name        string
		pos         token.Position
		message     string
		source      string
		file        string
		wantContain []string
	}{
		{
			name:    "error with file",
			pos:     token.Position{Line: 1, Column: 10},
			message: "unexpected token",
			source:  `x = 1 +`,
			file:    "test.sym",
			wantContain: []string{
				"Error in test.sym:1:10",
				"   1 | x = 1 +",
				"^",
				"unexpected token",
			},
		},
		{
			name:    "error without file",
			pos:     token.Position{Line: 3, Column: 1},
			message: "expected ')'",
			source:  "a = 1\nb = 2\nc = add(1 2\n",
			file:    "",
			wantContain: []string{
				"Error at line 3:1",
				"   3 | c = add(1 2",
				"expected ')'",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewCompilerError(tt.pos, tt.message, tt.source, tt.file)
			got := err.Format(false)
			for _, want := range tt.wantContain {
				if !strings.Contains(got, want) {
					t.Errorf("Format() missing %q in:\n%s", want, got)
				}
			}
		})
	}
}

func TestFormatErrorsEmpty(t *testing.T) {
	if got := FormatErrors(nil, false); got != "" {
		t.Errorf("FormatErrors(nil) = %q, want empty", got)
	}
}

func TestFormatErrorsSingleOmitsHeader(t *testing.T) {
	errs := []*CompilerError{NewCompilerError(token.Position{Line: 1, Column: 1}, "boom", "x", "f.sym")}
	got := FormatErrors(errs, false)
	if strings.Contains(got, "Compilation failed") {
		t.Error("a single error should not get the multi-error header")
	}
}

func TestFormatErrorsMultipleIncludesHeader(t *testing.T) {
	errs := []*CompilerError{
		NewCompilerError(token.Position{Line: 1, Column: 1}, "first", "x\ny", "f.sym"),
		NewCompilerError(token.Position{Line: 2, Column: 1}, "second", "x\ny", "f.sym"),
	}
	got := FormatErrors(errs, false)
	if !strings.Contains(got, "2 error(s)") {
		t.Errorf("expected the multi-error header, got:\n%s", got)
	}
}

func TestFromLocated(t *testing.T) {
	locs := []Located{
		{Pos: token.Position{Line: 1, Column: 1}, Message: "a"},
		{Pos: token.Position{Line: 2, Column: 2}, Message: "b"},
	}
	out := FromLocated(locs, "src", "f.sym")
	if len(out) != 2 {
		t.Fatalf("expected 2 errors, got %d", len(out))
	}
	if out[0].Message != "a" || out[1].Message != "b" {
		t.Errorf("unexpected messages: %q, %q", out[0].Message, out[1].Message)
	}
}
