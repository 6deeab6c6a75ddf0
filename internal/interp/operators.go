package interp

import (
	"math"
	"strconv"
	"strings"
)

// Add implements the + operator: numeric addition when both operands are
// Number, list concatenation when both are List, string concatenation when
// either operand is Text (the other is coerced via Display); anything else
// yields Nothing.
func Add(a, b Value) Value {
	an, aok := a.(*NumberValue)
	bn, bok := b.(*NumberValue)
	if aok && bok {
		return &NumberValue{Value: an.Value + bn.Value}
	}
	if _, ok := a.(*TextValue); ok {
		return &TextValue{Value: Display(a) + Display(b)}
	}
	if _, ok := b.(*TextValue); ok {
		return &TextValue{Value: Display(a) + Display(b)}
	}
	al, aok := a.(*ListValue)
	bl, bok := b.(*ListValue)
	if aok && bok {
		els := make([]Value, 0, len(al.Elements)+len(bl.Elements))
		els = append(els, al.Elements...)
		els = append(els, bl.Elements...)
		return &ListValue{Elements: els}
	}
	return Nothing()
}

func numericBinary(a, b Value, f func(x, y float64) (float64, bool)) Value {
	an, aok := a.(*NumberValue)
	bn, bok := b.(*NumberValue)
	if !aok || !bok {
		return Nothing()
	}
	result, ok := f(an.Value, bn.Value)
	if !ok {
		return Nothing()
	}
	return &NumberValue{Value: result}
}

// Sub implements numeric subtraction; non-numeric operands yield Nothing.
func Sub(a, b Value) Value {
	return numericBinary(a, b, func(x, y float64) (float64, bool) { return x - y, true })
}

// Mul implements numeric multiplication; non-numeric operands yield Nothing.
func Mul(a, b Value) Value {
	return numericBinary(a, b, func(x, y float64) (float64, bool) { return x * y, true })
}

// Div implements numeric division; non-numeric operands and division by
// zero both yield Nothing.
func Div(a, b Value) Value {
	return numericBinary(a, b, func(x, y float64) (float64, bool) {
		if y == 0 {
			return 0, false
		}
		return x / y, true
	})
}

// Mod implements numeric modulo; non-numeric operands and modulo by zero
// both yield Nothing.
func Mod(a, b Value) Value {
	return numericBinary(a, b, func(x, y float64) (float64, bool) {
		if y == 0 {
			return 0, false
		}
		return math.Mod(x, y), true
	})
}

// compareOrdinal gives a stable cross-tag ordering used to rank mixed-tag
// lists: Number < Text < Bool < List < Nothing < Function.
func compareOrdinal(v Value) int {
	switch v.(type) {
	case *NumberValue:
		return 0
	case *TextValue:
		return 1
	case *BoolValue:
		return 2
	case *ListValue:
		return 3
	case *NothingValue:
		return 4
	default:
		return 5
	}
}

// Compare implements the == / != / < / <= / > / >= family. == and != are
// defined across all tags (equal only when tags match). Ordering
// comparisons are defined for Number/Number and lexicographically for
// Text/Text; any other combination returns Bool(no).
func Compare(op string, a, b Value) Value {
	switch op {
	case "==":
		return &BoolValue{Value: a.Equals(b)}
	case "!=":
		return &BoolValue{Value: !a.Equals(b)}
	}

	an, aok := a.(*NumberValue)
	bn, bok := b.(*NumberValue)
	if aok && bok {
		return &BoolValue{Value: numericOrder(op, an.Value, bn.Value)}
	}

	at, aok := a.(*TextValue)
	bt, bok := b.(*TextValue)
	if aok && bok {
		return &BoolValue{Value: textOrder(op, at.Value, bt.Value)}
	}

	return &BoolValue{Value: false}
}

func numericOrder(op string, x, y float64) bool {
	switch op {
	case "<":
		return x < y
	case "<=":
		return x <= y
	case ">":
		return x > y
	case ">=":
		return x >= y
	}
	return false
}

func textOrder(op string, x, y string) bool {
	switch op {
	case "<":
		return x < y
	case "<=":
		return x <= y
	case ">":
		return x > y
	case ">=":
		return x >= y
	}
	return false
}

// ParseNumber attempts to read s as a float64, stripping surrounding
// whitespace. Used by the ~ built-in and by input auto-conversion.
func ParseNumber(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
