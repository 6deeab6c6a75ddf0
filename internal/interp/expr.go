package interp

import (
	"strconv"
	"strings"

	"github.com/symlang/symlang/internal/ast"
)

func (e *Evaluator) evalExpr(expr ast.Expression, env *Environment) Value {
	switch n := expr.(type) {
	case *ast.NumberLiteral:
		return &NumberValue{Value: n.Value}

	case *ast.TextLiteral:
		return &TextValue{Value: n.Value}

	case *ast.BoolLiteral:
		return &BoolValue{Value: n.Value}

	case *ast.Identifier:
		if v, ok := env.Get(n.Value); ok {
			return v
		}
		return Nothing()

	case *ast.ListLiteral:
		els := make([]Value, len(n.Elements))
		for i, el := range n.Elements {
			els[i] = e.evalExpr(el, env)
		}
		return &ListValue{Elements: els}

	case *ast.BinaryExpression:
		left := e.evalExpr(n.Left, env)
		right := e.evalExpr(n.Right, env)
		switch n.Operator {
		case "+":
			return Add(left, right)
		case "-":
			return Sub(left, right)
		case "*":
			return Mul(left, right)
		case "/":
			return Div(left, right)
		case "%":
			return Mod(left, right)
		case "==", "!=", "<", "<=", ">", ">=":
			return Compare(n.Operator, left, right)
		}
		return Nothing()

	case *ast.UnaryExpression:
		operand := e.evalExpr(n.Operand, env)
		switch n.Operator {
		case "!":
			return &BoolValue{Value: !Truthy(operand)}
		case "-":
			if num, ok := operand.(*NumberValue); ok {
				return &NumberValue{Value: -num.Value}
			}
			return Nothing()
		}
		return Nothing()

	case *ast.IndexExpression:
		left := e.evalExpr(n.Left, env)
		idx := e.evalExpr(n.Index, env)
		return indexInto(left, idx)

	case *ast.CallExpression:
		return e.evalCall(n, env)

	case *ast.BuiltinCallExpression:
		return e.evalBuiltinCall(n, env)

	case *ast.InlineInputExpression:
		return e.readOneConverted("")

	default:
		return Nothing()
	}
}

// indexInto implements xs[i]: the integer part of i is used, negative i
// wraps from the end (-1 is last), out-of-range yields Nothing.
func indexInto(target, index Value) Value {
	list, ok := target.(*ListValue)
	if !ok {
		return Nothing()
	}
	num, ok := index.(*NumberValue)
	if !ok {
		return Nothing()
	}
	i := int(num.Value)
	n := len(list.Elements)
	if i < 0 {
		i += n
	}
	if i < 0 || i >= n {
		return Nothing()
	}
	return list.Elements[i]
}

// evalCall invokes a user-defined function. Missing arguments bind to
// Nothing; extra arguments are discarded. Function values capture no
// lexical scope beyond the global environment, so every call frame is
// parented directly at e.Global regardless of where the call occurs.
func (e *Evaluator) evalCall(n *ast.CallExpression, env *Environment) Value {
	callee, ok := env.Get(n.Function.Value)
	if !ok {
		return Nothing()
	}
	fn, ok := callee.(*FunctionValue)
	if !ok {
		return Nothing()
	}

	args := make([]Value, len(n.Arguments))
	for i, a := range n.Arguments {
		args[i] = e.evalExpr(a, env)
	}

	frame := NewCallFrame(e.Global)
	for i, param := range fn.Parameters {
		if i < len(args) {
			frame.Define(param, args[i])
		} else {
			frame.Define(param, Nothing())
		}
	}

	if fn.Flavor == Quick {
		return e.evalExpr(fn.Expr, frame)
	}

	c := e.evalBlock(fn.Body, frame)
	if c.isReturn {
		return c.value
	}
	return Nothing()
}

// readOneConverted reads one line from the host and applies the language's
// input auto-conversion rule: a numeric-parseable line yields Number,
// anything else yields Text; EOF yields Nothing. prompt, if non-empty, is
// written (without a trailing newline) before the read.
func (e *Evaluator) readOneConverted(prompt string) Value {
	if prompt != "" {
		e.Host.WriteRaw(prompt)
	}
	line, ok := e.Host.ReadLine()
	if !ok {
		return Nothing()
	}
	return convertInput(line)
}

func convertInput(line string) Value {
	trimmed := strings.TrimSpace(line)
	if f, ok := ParseNumber(trimmed); ok {
		return &NumberValue{Value: f}
	}
	return &TextValue{Value: trimmed}
}

// evalInput implements `+? a b c` and `+? a b c : "prompt"`. Each variable
// reads one line; if the prompt contains the literal substring "{?}", it
// is replaced with the 1-based index of that particular read.
func (e *Evaluator) evalInput(s *ast.InputStatement, env *Environment) {
	var promptText string
	hasPrompt := s.Prompt != nil
	if hasPrompt {
		promptText = Display(e.evalExpr(s.Prompt, env))
	}

	for i, v := range s.Variables {
		prompt := ""
		if hasPrompt {
			prompt = strings.ReplaceAll(promptText, "{?}", strconv.Itoa(i+1))
		}
		env.Assign(v.Value, e.readOneConverted(prompt))
	}
}
