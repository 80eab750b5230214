package object

import (
	"testing"

	"github.com/kr/pretty"
)

func TestIsTrueInvariants(t *testing.T) {
	tests := []struct {
		name string
		h    *Holder
		want bool
	}{
		{"nil holder", nil, false},
		{"None value", Own(None{}), false},
		{"false bool", Own(Bool(false)), false},
		{"true bool", Own(Bool(true)), true},
		{"zero number", Own(Number(0)), false},
		{"nonzero number", Own(Number(-3)), true},
		{"empty string", Own(String("")), false},
		{"nonempty string", Own(String("x")), true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsTrue(tc.h); got != tc.want {
				t.Errorf("IsTrue(%# v) = %v, want %v", pretty.Formatter(tc.h), got, tc.want)
			}
		})
	}
}

func TestClassAndInstanceAreFalsy(t *testing.T) {
	cls := NewClass("Point", nil)
	if IsTrue(Own(cls)) {
		t.Error("class should coerce to false")
	}
	if IsTrue(Own(NewInstance(cls))) {
		t.Error("instance should coerce to false")
	}
}

func TestPrintForms(t *testing.T) {
	tests := []struct {
		h    *Holder
		want string
	}{
		{nil, "None"},
		{Own(None{}), "None"},
		{Own(Bool(true)), "True"},
		{Own(Bool(false)), "False"},
		{Own(Number(42)), "42"},
		{Own(String("hi")), "hi"},
	}
	for _, tc := range tests {
		if got := Print(tc.h); got != tc.want {
			t.Errorf("Print() = %q, want %q", got, tc.want)
		}
	}
}

func TestHolderAliasing(t *testing.T) {
	cls := NewClass("Box", nil)
	inst := NewInstance(cls)
	h1 := Own(inst)
	h2 := Share(h1)

	inst.SetField("x", Own(Number(1)))
	got1, _ := h1.Value.(*Instance).GetField("x")
	got2, _ := h2.Value.(*Instance).GetField("x")
	if Print(got1) != Print(got2) {
		t.Errorf("aliased holders observed different field values: %s vs %s", Print(got1), Print(got2))
	}
}
