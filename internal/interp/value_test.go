package interp

import "testing"

func TestNumberValueString(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{5, "5"},
		{5.5, "5.5"},
		{0, "0"},
		{-3, "-3"},
	}
	for _, tt := range tests {
		v := &NumberValue{Value: tt.value}
		if got := v.String(); got != tt.want {
			t.Errorf("NumberValue{%v}.String() = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestBoolValueString(t *testing.T) {
	if (&BoolValue{Value: true}).String() != "yes" {
		t.Error("expected true to display as yes")
	}
	if (&BoolValue{Value: false}).String() != "no" {
		t.Error("expected false to display as no")
	}
}

func TestEqualsAcrossTags(t *testing.T) {
	if (&NumberValue{Value: 1}).Equals(&TextValue{Value: "1"}) {
		t.Error("a Number and a Text with the same display should not be Equals")
	}
	if !(&NumberValue{Value: 1}).Equals(&NumberValue{Value: 1}) {
		t.Error("equal numbers should be Equals")
	}
}

func TestListEqualsElementwise(t *testing.T) {
	a := &ListValue{Elements: []Value{&NumberValue{Value: 1}, &TextValue{Value: "x"}}}
	b := &ListValue{Elements: []Value{&NumberValue{Value: 1}, &TextValue{Value: "x"}}}
	c := &ListValue{Elements: []Value{&NumberValue{Value: 1}}}
	if !a.Equals(b) {
		t.Error("expected equal-content lists to be Equals")
	}
	if a.Equals(c) {
		t.Error("expected different-length lists to not be Equals")
	}
}

func TestListCopyIsShallowButIndependentSlice(t *testing.T) {
	a := &ListValue{Elements: []Value{&NumberValue{Value: 1}}}
	b := a.Copy().(*ListValue)
	b.Elements = append(b.Elements, &NumberValue{Value: 2})
	if len(a.Elements) != 1 {
		t.Error("mutating the copy's slice should not affect the original")
	}
}

func TestNothingSentinel(t *testing.T) {
	if !IsNothing(Nothing()) {
		t.Error("Nothing() should be IsNothing")
	}
	if IsNothing(&NumberValue{Value: 0}) {
		t.Error("a zero Number is not Nothing")
	}
}

func TestTruthy(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want bool
	}{
		{"true bool", &BoolValue{Value: true}, true},
		{"false bool", &BoolValue{Value: false}, false},
		{"nonzero number", &NumberValue{Value: 1}, true},
		{"zero number", &NumberValue{Value: 0}, false},
		{"nonempty text", &TextValue{Value: "x"}, true},
		{"empty text", &TextValue{Value: ""}, false},
		{"nonempty list", &ListValue{Elements: []Value{&NumberValue{Value: 1}}}, true},
		{"empty list", &ListValue{}, false},
		{"nothing", Nothing(), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truthy(tt.v); got != tt.want {
				t.Errorf("Truthy(%v) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}
