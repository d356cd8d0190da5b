package kbcomplete

import "testing"

func TestMatch(t *testing.T) {
	f := NewOperator("f", 2)
	a := NewConstant(NewOperator("a", 0))
	b := NewConstant(NewOperator("b", 0))
	x, y := NewVariable("x"), NewVariable("y")

	pattern := MustApplication(f, x, y)
	instance := MustApplication(f, a, b)

	sigma, ok := Match(pattern, instance)
	if !ok {
		t.Fatal("expected pattern to match instance")
	}
	if sigma.Apply(x).String() != "a" || sigma.Apply(y).String() != "b" {
		t.Errorf("unexpected bindings: x=%s y=%s", sigma.Apply(x), sigma.Apply(y))
	}
}

func TestMatchNonLinearPattern(t *testing.T) {
	f := NewOperator("f", 2)
	a := NewConstant(NewOperator("a", 0))
	b := NewConstant(NewOperator("b", 0))
	x := NewVariable("x")

	pattern := MustApplication(f, x, x)
	if _, ok := Match(pattern, MustApplication(f, a, a)); !ok {
		t.Error("f(x,x) must match f(a,a)")
	}
	if _, ok := Match(pattern, MustApplication(f, a, b)); ok {
		t.Error("f(x,x) must not match f(a,b): x cannot bind to both a and b")
	}
}

func TestMatchInstanceVariablesAreOpaque(t *testing.T) {
	f := NewOperator("f", 1)
	a := NewConstant(NewOperator("a", 0))
	v := NewVariable("v")

	// The pattern is ground; an instance variable can never be bound.
	if _, ok := Match(MustApplication(f, a), MustApplication(f, v)); ok {
		t.Error("a ground pattern must not match an instance containing a variable in place of the constant")
	}
}

func TestMatchArityMismatch(t *testing.T) {
	f := NewOperator("f", 1)
	g := NewOperator("g", 2)
	x, y := NewVariable("x"), NewVariable("y")
	if _, ok := Match(MustApplication(f, x), MustApplication(g, x, y)); ok {
		t.Error("patterns and instances headed by different operators must not match")
	}
}
