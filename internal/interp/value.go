// Package interp evaluates a parsed program against an environment: the
// value model, environment, built-in catalogue and statement/expression
// evaluation all live here.
package interp

import (
	"strconv"
	"strings"

	"github.com/symlang/symlang/internal/ast"
)

// Value is the tagged union every runtime operation produces and consumes.
// A Value never silently changes tag; coercion between tags is always an
// explicit operation (display, parse, truthy).
type Value interface {
	Type() string
	String() string
	Equals(other Value) bool
	Copy() Value
}

// NumberValue is a double-precision number, displayed without a trailing
// ".0" when it is mathematically integral.
type NumberValue struct {
	Value float64
}

func (n *NumberValue) Type() string { return "NUMBER" }

func (n *NumberValue) String() string {
	if n.Value == float64(int64(n.Value)) {
		return strconv.FormatInt(int64(n.Value), 10)
	}
	return strconv.FormatFloat(n.Value, 'g', -1, 64)
}

func (n *NumberValue) Equals(other Value) bool {
	o, ok := other.(*NumberValue)
	return ok && n.Value == o.Value
}

func (n *NumberValue) Copy() Value { return &NumberValue{Value: n.Value} }

// TextValue is an immutable Unicode string.
type TextValue struct {
	Value string
}

func (t *TextValue) Type() string   { return "TEXT" }
func (t *TextValue) String() string { return t.Value }

func (t *TextValue) Equals(other Value) bool {
	o, ok := other.(*TextValue)
	return ok && t.Value == o.Value
}

func (t *TextValue) Copy() Value { return &TextValue{Value: t.Value} }

// BoolValue is the yes/no surface boolean.
type BoolValue struct {
	Value bool
}

func (b *BoolValue) Type() string { return "BOOL" }

func (b *BoolValue) String() string {
	if b.Value {
		return "yes"
	}
	return "no"
}

func (b *BoolValue) Equals(other Value) bool {
	o, ok := other.(*BoolValue)
	return ok && b.Value == o.Value
}

func (b *BoolValue) Copy() Value { return &BoolValue{Value: b.Value} }

// ListValue is the only mutable Value; every other tag is semantically
// immutable. Aliased bindings share the same *ListValue, so a mutating
// built-in is visible through every name bound to it.
type ListValue struct {
	Elements []Value
}

func (l *ListValue) Type() string { return "LIST" }

func (l *ListValue) String() string {
	parts := make([]string, len(l.Elements))
	for i, e := range l.Elements {
		parts[i] = Display(e)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func (l *ListValue) Equals(other Value) bool {
	o, ok := other.(*ListValue)
	if !ok || len(l.Elements) != len(o.Elements) {
		return false
	}
	for i := range l.Elements {
		if !l.Elements[i].Equals(o.Elements[i]) {
			return false
		}
	}
	return true
}

// Copy returns a new list sharing no backing array with the original, but
// whose elements are the same Value references (element tags other than
// List are immutable, so this is safe).
func (l *ListValue) Copy() Value {
	els := make([]Value, len(l.Elements))
	copy(els, l.Elements)
	return &ListValue{Elements: els}
}

// NothingValue is the sentinel absence/soft-failure result. There is
// exactly one logical instance; Nothing() returns it.
type NothingValue struct{}

func (n *NothingValue) Type() string   { return "NOTHING" }
func (n *NothingValue) String() string { return "nothing" }

func (n *NothingValue) Equals(other Value) bool {
	_, ok := other.(*NothingValue)
	return ok
}

func (n *NothingValue) Copy() Value { return nothing }

var nothing = &NothingValue{}

// Nothing returns the shared absence value.
func Nothing() Value { return nothing }

// IsNothing reports whether v is the Nothing value.
func IsNothing(v Value) bool {
	_, ok := v.(*NothingValue)
	return ok
}

// FunctionFlavor distinguishes a block-bodied function from a quick,
// single-expression one.
type FunctionFlavor int

const (
	// Block functions evaluate a statement list; a return completion
	// yields its value, normal completion yields Nothing.
	Block FunctionFlavor = iota
	// Quick functions evaluate a single expression and return it directly.
	Quick
)

// FunctionValue is a user-defined function. It captures no lexical scope
// beyond the global environment: invocation always builds a fresh frame
// parented directly at the global environment, never at the defining
// call's own frame.
type FunctionValue struct {
	Name       string
	Parameters []string
	Flavor     FunctionFlavor
	Body       *ast.Block     // set when Flavor == Block
	Expr       ast.Expression // set when Flavor == Quick
}

func (f *FunctionValue) Type() string   { return "FUNCTION" }
func (f *FunctionValue) String() string { return "<function " + f.Name + ">" }

func (f *FunctionValue) Equals(other Value) bool {
	o, ok := other.(*FunctionValue)
	return ok && f == o
}

func (f *FunctionValue) Copy() Value { return f }

// Display renders v the way implicit print statements and the $ built-in
// do: Number without a trailing ".0" when integral, List recursively via
// Display, Bool as yes/no, Nothing as the literal word.
func Display(v Value) string {
	return v.String()
}

// Truthy implements the truthiness rule in full: Bool(yes), any nonzero
// Number, and any non-empty Text/List are truthy; everything else,
// including Nothing, is falsy.
func Truthy(v Value) bool {
	switch val := v.(type) {
	case *BoolValue:
		return val.Value
	case *NumberValue:
		return val.Value != 0
	case *TextValue:
		return val.Value != ""
	case *ListValue:
		return len(val.Elements) > 0
	default:
		return false
	}
}
