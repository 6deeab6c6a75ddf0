package interp

import (
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
)

// fakeHost is an in-memory Host for tests: input lines come from a fixed
// queue, output is captured rather than written to a real terminal.
type fakeHost struct {
	lines  []string
	pos    int
	output strings.Builder
	rand   func(n int) int
}

func (h *fakeHost) ReadLine() (string, bool) {
	if h.pos >= len(h.lines) {
		return "", false
	}
	line := h.lines[h.pos]
	h.pos++
	return line, true
}

func (h *fakeHost) Write(text string) {
	h.output.WriteString(text)
	h.output.WriteString("\n")
}

func (h *fakeHost) WriteRaw(text string) {
	h.output.WriteString(text)
}

func (h *fakeHost) RandBelow(n int) int {
	if h.rand != nil {
		return h.rand(n)
	}
	return 0
}

func runProgram(t *testing.T, source string, input ...string) string {
	t.Helper()
	host := &fakeHost{lines: input}
	ev := New(host)
	diags, _ := Evaluate(source, "<test>", ev)
	if len(diags) > 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	return host.output.String()
}

func TestHelloWithInput(t *testing.T) {
	out := runProgram(t, "+? name : \"Name? \"\n\"Hello \" + name\n", "World")
	snaps.MatchSnapshot(t, out)
}

func TestIfElseIfChain(t *testing.T) {
	out := runProgram(t, `score = 85
? score >= 90 { "A" }
?? score >= 80 { "B" }
?? { "F" }
`)
	snaps.MatchSnapshot(t, out)
}

func TestFactorialRecursion(t *testing.T) {
	out := runProgram(t, `fact(n) => { ? n <= 1 { -> 1 } -> n * fact(n - 1) }
fact(5)
`)
	snaps.MatchSnapshot(t, out)
}

func TestForEachSnapshotsBeforeMutation(t *testing.T) {
	out := runProgram(t, `xs = [1 2 3]
ys = []
>> x xs {
^(ys -> x * 2)*
^(xs -> 99)*
}
ys
`)
	snaps.MatchSnapshot(t, out)
}

func TestSortAscending(t *testing.T) {
	out := runProgram(t, `xs = [3 1 2]
++(xs)*
xs
`)
	snaps.MatchSnapshot(t, out)
}

func TestDedupeAndSortDescending(t *testing.T) {
	out := runProgram(t, `s = [5 1 5 3 1]
<<(s)*
--(s)*
s
`)
	snaps.MatchSnapshot(t, out)
}

func TestInlineInputIntoQuickFunction(t *testing.T) {
	out := runProgram(t, `add(a b) ~> a + b
add(+?? +??)
`, "2", "3")
	snaps.MatchSnapshot(t, out)
}

func TestMutationAliasing(t *testing.T) {
	out := runProgram(t, `xs = [1]
ys = xs
^(xs -> 9)*
ys
`)
	snaps.MatchSnapshot(t, out)
}

func TestScopeSurvivesIfBlock(t *testing.T) {
	out := runProgram(t, `? yes { x = 5 }
x
`)
	snaps.MatchSnapshot(t, out)
}

func TestLegacyBlockStyle(t *testing.T) {
	out := runProgram(t, `score = 42
? score >= 40
"ok"
<=
`)
	snaps.MatchSnapshot(t, out)
}

func TestWhileLoop(t *testing.T) {
	out := runProgram(t, `n = 0
@ n < 3 {
n = n + 1
n
}
`)
	snaps.MatchSnapshot(t, out)
}

func TestLegacyInputStatement(t *testing.T) {
	out := runProgram(t, `? name
"Hi " + name
`, "Ada")
	snaps.MatchSnapshot(t, out)
}

func TestEndOfInputYieldsNothing(t *testing.T) {
	out := runProgram(t, `+? a
a
`)
	snaps.MatchSnapshot(t, out)
}

func TestParameterShadowsGlobal(t *testing.T) {
	out := runProgram(t, `n = 100
double(n) ~> n * 2
double(4)
n
`)
	snaps.MatchSnapshot(t, out)
}

func TestStringSplitAndJoinRoundTrip(t *testing.T) {
	out := runProgram(t, `s = "a,b,c"
parts = |(s -> ",")
&(parts -> ",")
`)
	snaps.MatchSnapshot(t, out)
}
