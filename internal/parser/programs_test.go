package parser

import (
	"testing"
)

// TestCanonicalPrograms parses the reference example programs end to end,
// checking only that each one produces the expected top-level statement
// count with no diagnostics. Semantic behavior is covered in internal/interp.
func TestCanonicalPrograms(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		stmtCount int
	}{
		{
			name: "hello with prompted input",
			input: `+? name : "Name? "
"Hello " + name
`,
			stmtCount: 2,
		},
		{
			name: "if else if chain",
			input: `score = 85
? score >= 90 { "A" }
?? score >= 80 { "B" }
?? { "F" }
`,
			stmtCount: 2,
		},
		{
			name: "factorial recursion",
			input: `fact(n) => {
? n <= 1 { -> 1 }
-> n * fact(n - 1)
}
fact(5)
`,
			stmtCount: 2,
		},
		{
			name: "for each with mutation",
			input: `xs = [1 2 3]
ys = []
>> x xs {
^(ys -> x * 2)*
}
ys
`,
			stmtCount: 4,
		},
		{
			name: "dedupe and sort descending",
			input: `s = [5 1 5 3 1]
<<(s)*
--(s)*
s
`,
			stmtCount: 4,
		},
		{
			name: "inline input into a quick function",
			input: `add(a b) ~> a + b
add(+?? +??)
`,
			stmtCount: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			program := parseProgram(t, tt.input)
			if len(program.Statements) != tt.stmtCount {
				t.Fatalf("expected %d statements, got %d", tt.stmtCount, len(program.Statements))
			}
		})
	}
}
