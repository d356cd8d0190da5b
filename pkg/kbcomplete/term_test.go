package kbcomplete

import "testing"

func TestTermConstructors(t *testing.T) {
	t.Run("NewConstant requires arity 0", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("expected panic for non-zero arity constant")
			}
		}()
		f := NewOperator("f", 1)
		NewConstant(f)
	})

	t.Run("NewApplication rejects arity mismatch", func(t *testing.T) {
		f := NewOperator("f", 2)
		x := NewVariable("x")
		_, err := NewApplication(f, x)
		if err == nil {
			t.Fatal("expected an arity mismatch error")
		}
		if _, ok := err.(*InvariantError); !ok {
			t.Errorf("expected *InvariantError, got %T", err)
		}
	})

	t.Run("NewApplication accepts correct arity", func(t *testing.T) {
		f := NewOperator("f", 2)
		x, y := NewVariable("x"), NewVariable("y")
		app, err := NewApplication(f, x, y)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(Children(app)) != 2 {
			t.Errorf("expected 2 children, got %d", len(Children(app)))
		}
	})
}

func TestOperatorIdentity(t *testing.T) {
	a := NewOperator("f", 1)
	b := NewOperator("f", 1)
	if a.Equal(b) {
		t.Error("two separately interned operators with the same name must not be equal")
	}
	if !a.Equal(a) {
		t.Error("an operator must equal itself")
	}
}

func TestHeadAndChildren(t *testing.T) {
	f := NewOperator("f", 1)
	e := NewOperator("e", 0)
	x := NewVariable("x")
	con := NewConstant(e)
	app := MustApplication(f, x)

	if _, ok := Head(x); ok {
		t.Error("a variable must have no head")
	}
	if head, ok := Head(con); !ok || !head.Equal(e) {
		t.Error("a constant's head must be its operator")
	}
	if head, ok := Head(app); !ok || !head.Equal(f) {
		t.Error("an application's head must be its operator")
	}
	if len(Children(con)) != 0 {
		t.Error("a constant has no children")
	}
	if got := Children(app); len(got) != 1 || got[0] != Term(x) {
		t.Error("an application's children must be its operands in order")
	}
}

func TestIsVariable(t *testing.T) {
	if !IsVariable(NewVariable("x")) {
		t.Error("NewVariable must produce a variable")
	}
	if IsVariable(NewConstant(NewOperator("e", 0))) {
		t.Error("a constant is not a variable")
	}
}

func TestStringRendering(t *testing.T) {
	x := NewVariable("x")
	if x.String() != "x_" {
		t.Errorf("variable rendering: got %q, want %q", x.String(), "x_")
	}
	e := NewConstant(NewOperator("e", 0))
	if e.String() != "e" {
		t.Errorf("constant rendering: got %q, want %q", e.String(), "e")
	}
}
