package kbcomplete

import "testing"

func TestSubstitutionApply(t *testing.T) {
	f := NewOperator("f", 2)
	x, y := NewVariable("x"), NewVariable("y")
	a := NewConstant(NewOperator("a", 0))

	sigma := NewSubstitution()
	sigma, ok := sigma.Extend("x", a)
	if !ok {
		t.Fatal("Extend must succeed for a fresh, non-occurring binding")
	}

	term := MustApplication(f, x, y)
	result := sigma.Apply(term)
	if result.String() != "f(a, y_)" {
		t.Errorf("got %q, want %q", result.String(), "f(a, y_)")
	}
	if term.String() != "f(x_, y_)" {
		t.Error("Apply must not mutate its argument")
	}
}

func TestSubstitutionOccursCheck(t *testing.T) {
	g := NewOperator("g", 1)
	x := NewVariable("x")

	sigma := NewSubstitution()
	_, ok := sigma.Extend("x", MustApplication(g, x))
	if ok {
		t.Error("Extend must fail the occurs-check when the replacement mentions the bound name")
	}
}

func TestSubstitutionComposition(t *testing.T) {
	f := NewOperator("f", 2)
	x, y := NewVariable("x"), NewVariable("y")
	a := NewConstant(NewOperator("a", 0))

	sigma := NewSubstitution()
	sigma, ok := sigma.Extend("y", x)
	if !ok {
		t.Fatal("unexpected occurs-check failure")
	}
	sigma, ok = sigma.Extend("x", a)
	if !ok {
		t.Fatal("unexpected occurs-check failure")
	}

	// y was bound to x before x was bound to a; composing must thread the
	// new binding through the old one so y ultimately maps to a.
	if sigma.Apply(y).String() != "a" {
		t.Errorf("expected y to resolve to a, got %q", sigma.Apply(y).String())
	}
	term := MustApplication(f, x, y)
	if sigma.Apply(term).String() != "f(a, a)" {
		t.Errorf("got %q, want %q", sigma.Apply(term).String(), "f(a, a)")
	}
}
