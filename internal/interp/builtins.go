package interp

import (
	"sort"
	"strings"

	"github.com/symlang/symlang/internal/ast"
)

// evalBuiltinCall dispatches a symbol-operator call to its implementation.
// Every built-in is forgiving: a type mismatch yields Nothing rather than
// aborting, per the language's soft-failure error model.
func (e *Evaluator) evalBuiltinCall(n *ast.BuiltinCallExpression, env *Environment) Value {
	args := make([]Value, len(n.Arguments))
	for i, a := range n.Arguments {
		args[i] = e.evalExpr(a, env)
	}

	arg := func(i int) Value {
		if i < len(args) {
			return args[i]
		}
		return Nothing()
	}

	switch n.Operator {
	case "#":
		return builtinLen(arg(0))
	case "$":
		return &TextValue{Value: Display(arg(0))}
	case "~":
		return builtinToNumber(arg(0))
	case "?=":
		return e.builtinRandBelow(arg(0))
	case "^":
		return e.builtinAppend(arg(0), arg(1), n.Mutating)
	case "v":
		return e.builtinPopLast(arg(0), n.Mutating)
	case "<>":
		return e.builtinReverse(arg(0), n.Mutating)
	case "++":
		return e.builtinSort(arg(0), n.Mutating, true)
	case "--":
		return e.builtinSort(arg(0), n.Mutating, false)
	case "><":
		return builtinContains(arg(0), arg(1))
	case "<<":
		return e.builtinDedupe(arg(0), n.Mutating)
	case "&":
		return builtinJoin(arg(0), arg(1))
	case "|":
		return builtinSplit(arg(0), arg(1))
	default:
		return Nothing()
	}
}

func builtinLen(v Value) Value {
	switch x := v.(type) {
	case *ListValue:
		return &NumberValue{Value: float64(len(x.Elements))}
	case *TextValue:
		return &NumberValue{Value: float64(len([]rune(x.Value)))}
	default:
		return Nothing()
	}
}

func builtinToNumber(v Value) Value {
	switch x := v.(type) {
	case *NumberValue:
		return x
	case *TextValue:
		if f, ok := ParseNumber(x.Value); ok {
			return &NumberValue{Value: f}
		}
		return Nothing()
	default:
		return Nothing()
	}
}

// builtinRandBelow implements ?=(n): a uniform integer in [0, n), flooring
// a non-integer bound per the resolved open question, and returning 0 for
// n <= 0 (matching the host contract's rand_below behavior exactly).
func (e *Evaluator) builtinRandBelow(v Value) Value {
	num, ok := v.(*NumberValue)
	if !ok {
		return Nothing()
	}
	n := int(num.Value) // truncation toward zero is floor for the n > 0 domain this is used in
	if n <= 0 {
		return &NumberValue{Value: 0}
	}
	return &NumberValue{Value: float64(e.Host.RandBelow(n))}
}

// builtinAppend implements ^(xs v): appends v to a copy (or, mutating, to
// xs itself), returning the resulting list either way.
func (e *Evaluator) builtinAppend(xs, v Value, mutating bool) Value {
	list, ok := xs.(*ListValue)
	if !ok {
		return Nothing()
	}
	if mutating {
		list.Elements = append(list.Elements, v)
		return list
	}
	els := make([]Value, len(list.Elements)+1)
	copy(els, list.Elements)
	els[len(list.Elements)] = v
	return &ListValue{Elements: els}
}

// builtinPopLast implements v(xs): removes and discards the last element,
// returning the resulting list. An empty list yields Nothing.
func (e *Evaluator) builtinPopLast(xs Value, mutating bool) Value {
	list, ok := xs.(*ListValue)
	if !ok || len(list.Elements) == 0 {
		return Nothing()
	}
	if mutating {
		list.Elements = list.Elements[:len(list.Elements)-1]
		return list
	}
	els := make([]Value, len(list.Elements)-1)
	copy(els, list.Elements[:len(list.Elements)-1])
	return &ListValue{Elements: els}
}

func (e *Evaluator) builtinReverse(xs Value, mutating bool) Value {
	list, ok := xs.(*ListValue)
	if !ok {
		return Nothing()
	}
	target := list.Elements
	if !mutating {
		target = make([]Value, len(list.Elements))
		copy(target, list.Elements)
	}
	for i, j := 0, len(target)-1; i < j; i, j = i+1, j-1 {
		target[i], target[j] = target[j], target[i]
	}
	if mutating {
		return list
	}
	return &ListValue{Elements: target}
}

// builtinSort implements ++/--: stable sort ascending or descending.
// Numbers sort numerically, Texts lexicographically; mixed tags sort by
// tag ordinal first, then by display text.
func (e *Evaluator) builtinSort(xs Value, mutating, ascending bool) Value {
	list, ok := xs.(*ListValue)
	if !ok {
		return Nothing()
	}
	target := list.Elements
	if !mutating {
		target = make([]Value, len(list.Elements))
		copy(target, list.Elements)
	}
	sort.SliceStable(target, func(i, j int) bool {
		less := lessForSort(target[i], target[j])
		if ascending {
			return less
		}
		return lessForSort(target[j], target[i])
	})
	if mutating {
		return list
	}
	return &ListValue{Elements: target}
}

func lessForSort(a, b Value) bool {
	oa, ob := compareOrdinal(a), compareOrdinal(b)
	if oa != ob {
		return oa < ob
	}
	switch av := a.(type) {
	case *NumberValue:
		return av.Value < b.(*NumberValue).Value
	case *TextValue:
		return av.Value < b.(*TextValue).Value
	default:
		return Display(a) < Display(b)
	}
}

func builtinContains(xs, v Value) Value {
	list, ok := xs.(*ListValue)
	if !ok {
		return Nothing()
	}
	for _, el := range list.Elements {
		if el.Equals(v) {
			return &BoolValue{Value: true}
		}
	}
	return &BoolValue{Value: false}
}

// builtinDedupe implements <<(xs): keeps the first occurrence of each
// element in order.
func (e *Evaluator) builtinDedupe(xs Value, mutating bool) Value {
	list, ok := xs.(*ListValue)
	if !ok {
		return Nothing()
	}
	var out []Value
	for _, el := range list.Elements {
		seen := false
		for _, kept := range out {
			if kept.Equals(el) {
				seen = true
				break
			}
		}
		if !seen {
			out = append(out, el)
		}
	}
	if mutating {
		list.Elements = out
		return list
	}
	return &ListValue{Elements: out}
}

// builtinJoin implements &(xs s): Display of each element joined by s.
func builtinJoin(xs, sep Value) Value {
	list, ok := xs.(*ListValue)
	if !ok {
		return Nothing()
	}
	sepText, ok := sep.(*TextValue)
	if !ok {
		return Nothing()
	}
	parts := make([]string, len(list.Elements))
	for i, el := range list.Elements {
		parts[i] = Display(el)
	}
	return &TextValue{Value: strings.Join(parts, sepText.Value)}
}

// builtinSplit implements |(t s): split of t by s. An empty separator
// splits per character (rune).
func builtinSplit(t, sep Value) Value {
	text, ok := t.(*TextValue)
	if !ok {
		return Nothing()
	}
	sepText, ok := sep.(*TextValue)
	if !ok {
		return Nothing()
	}

	var parts []string
	if sepText.Value == "" {
		for _, r := range text.Value {
			parts = append(parts, string(r))
		}
	} else {
		parts = strings.Split(text.Value, sepText.Value)
	}

	els := make([]Value, len(parts))
	for i, p := range parts {
		els[i] = &TextValue{Value: p}
	}
	return &ListValue{Elements: els}
}
