package interp

import (
	"github.com/symlang/symlang/internal/ast"
)

// Host is the set of contracts the evaluator consumes from whatever is
// driving it (a file runner, a REPL): a blocking line reader, an output
// sink, and a random source. None of these have a concrete implementation
// here; cmd/symlang supplies stdin/stdout/math-rand backed ones.
type Host interface {
	// ReadLine blocks for the next newline-terminated line with the
	// terminator stripped. ok is false on EOF.
	ReadLine() (line string, ok bool)
	// Write appends text followed by a newline to the output sink.
	Write(text string)
	// WriteRaw appends text with no trailing newline (used for prompts).
	WriteRaw(text string)
	// RandBelow returns a uniform integer in [0, max(0, n)).
	RandBelow(n int) int
}

// completion is the result of evaluating a statement or block: either a
// normal fall-through, carrying the last expression's value for REPL use,
// or a return completion carrying the function's result. There is no
// break/continue surface, so these are the only two completion kinds.
type completion struct {
	value    Value
	isReturn bool
	lastExpr Value // last non-assignment expression statement's value
}

// Evaluator walks the AST against an Environment, calling out to Host for
// I/O and randomness.
type Evaluator struct {
	Global *Environment
	Host   Host
}

// New creates an Evaluator with a fresh global environment.
func New(host Host) *Evaluator {
	return &Evaluator{Global: NewEnvironment(), Host: host}
}

// Run evaluates every top-level statement of program against e.Global in
// order and returns the value of the final expression statement (used by
// a REPL to echo a result); statements other than the last are evaluated
// purely for effect.
func (e *Evaluator) Run(program *ast.Program) Value {
	c := e.evalStatements(program.Statements, e.Global)
	if c.isReturn {
		return c.value
	}
	return c.lastExpr
}

// evalStatements evaluates a statement list in order against env. A
// return completion encountered partway through short-circuits the rest
// of the list and propagates upward unchanged.
func (e *Evaluator) evalStatements(stmts []ast.Statement, env *Environment) completion {
	var last Value = Nothing()
	for _, stmt := range stmts {
		c := e.evalStatement(stmt, env)
		if c.isReturn {
			return c
		}
		if _, ok := stmt.(*ast.ExpressionStatement); ok {
			last = c.lastExpr
		}
	}
	return completion{lastExpr: last}
}

func (e *Evaluator) evalBlock(b *ast.Block, env *Environment) completion {
	return e.evalStatements(b.Statements, env)
}

func (e *Evaluator) evalStatement(stmt ast.Statement, env *Environment) completion {
	switch s := stmt.(type) {
	case *ast.ExpressionStatement:
		v := e.evalExpr(s.Expression, env)
		if !IsNothing(v) {
			e.Host.Write(Display(v))
		}
		return completion{lastExpr: v}

	case *ast.AssignmentStatement:
		v := e.evalExpr(s.Value, env)
		env.Assign(s.Name.Value, v)
		return completion{lastExpr: Nothing()}

	case *ast.FunctionDefStatement:
		fn := &FunctionValue{Name: s.Name.Value}
		for _, p := range s.Parameters {
			fn.Parameters = append(fn.Parameters, p.Value)
		}
		if s.Quick {
			fn.Flavor = Quick
			fn.Expr = s.Expr
		} else {
			fn.Flavor = Block
			fn.Body = s.Body
		}
		// Last definition wins: a redefinition simply rebinds the name;
		// in-flight invocations of the old value keep their own reference.
		e.Global.Assign(s.Name.Value, fn)
		return completion{lastExpr: Nothing()}

	case *ast.IfChainStatement:
		for _, clause := range s.Clauses {
			if Truthy(e.evalExpr(clause.Condition, env)) {
				return e.evalBlock(clause.Body, env)
			}
		}
		if s.ElseBody != nil {
			return e.evalBlock(s.ElseBody, env)
		}
		return completion{lastExpr: Nothing()}

	case *ast.WhileStatement:
		for Truthy(e.evalExpr(s.Condition, env)) {
			c := e.evalBlock(s.Body, env)
			if c.isReturn {
				return c
			}
		}
		return completion{lastExpr: Nothing()}

	case *ast.ForEachStatement:
		coll := e.evalExpr(s.Collection, env)
		list, ok := coll.(*ListValue)
		if !ok {
			return completion{lastExpr: Nothing()}
		}
		// Snapshot semantics: iterate the element references captured at
		// loop entry so a mutation inside the body cannot invalidate it.
		snapshot := make([]Value, len(list.Elements))
		copy(snapshot, list.Elements)
		for _, el := range snapshot {
			env.Assign(s.Variable.Value, el)
			c := e.evalBlock(s.Body, env)
			if c.isReturn {
				return c
			}
		}
		return completion{lastExpr: Nothing()}

	case *ast.InputStatement:
		e.evalInput(s, env)
		return completion{lastExpr: Nothing()}

	case *ast.LegacyInputStatement:
		v := e.readOneConverted("")
		env.Assign(s.Variable.Value, v)
		return completion{lastExpr: Nothing()}

	case *ast.ReturnStatement:
		var v Value = Nothing()
		if s.Value != nil {
			v = e.evalExpr(s.Value, env)
		}
		return completion{value: v, isReturn: true}

	default:
		return completion{lastExpr: Nothing()}
	}
}
