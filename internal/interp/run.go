package interp

import (
	"github.com/symlang/symlang/internal/errors"
	"github.com/symlang/symlang/internal/parser"
)

// Evaluate is the core's single entry point: parse source against e's
// existing environment and run it. On a parse failure no statement is
// executed and the diagnostics are returned instead; the caller (a file
// runner or a REPL) decides how to report them. file is used only for
// diagnostic headers and may be empty.
func Evaluate(source, file string, e *Evaluator) ([]*errors.CompilerError, Value) {
	p := parser.New(source)
	program := p.ParseProgram()

	if locs := p.LocatedErrors(); len(locs) > 0 {
		located := make([]errors.Located, len(locs))
		for i, l := range locs {
			located[i] = errors.Located{Pos: l.Pos, Message: l.Message}
		}
		return errors.FromLocated(located, source, file), nil
	}

	return nil, e.Run(program)
}
