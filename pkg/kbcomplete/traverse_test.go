package kbcomplete

import "testing"

func TestPreorder(t *testing.T) {
	f := NewOperator("f", 2)
	g := NewOperator("g", 1)
	x, y := NewVariable("x"), NewVariable("y")
	term := MustApplication(f, MustApplication(g, x), y)

	positions := Preorder(term)
	if len(positions) != 4 {
		t.Fatalf("expected 4 subterms (f(g(x),y), g(x), x, y), got %d", len(positions))
	}
	if len(positions[0].Pos) != 0 {
		t.Error("root must be at the empty position")
	}
	want := []string{"f(g(x_), y_)", "g(x_)", "x_", "y_"}
	for i, p := range positions {
		if p.Term.String() != want[i] {
			t.Errorf("position %d: got %q, want %q", i, p.Term.String(), want[i])
		}
	}
}

func TestReplaceAt(t *testing.T) {
	f := NewOperator("f", 2)
	g := NewOperator("g", 1)
	x, y, z := NewVariable("x"), NewVariable("y"), NewVariable("z")
	term := MustApplication(f, MustApplication(g, x), y)

	replaced := ReplaceAt(term, Position{0, 0}, z)
	want := "f(g(z_), y_)"
	if replaced.String() != want {
		t.Errorf("got %q, want %q", replaced.String(), want)
	}

	if ReplaceAt(term, Position{}, z) != Term(z) {
		t.Error("replacing at the root position must return the replacement itself")
	}
}

func TestReplaceAtInvalidPosition(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic for an out-of-range position")
		}
	}()
	x := NewVariable("x")
	ReplaceAt(x, Position{0}, x)
}

func TestRename(t *testing.T) {
	f := NewOperator("f", 2)
	x, y := NewVariable("x"), NewVariable("y")
	term := MustApplication(f, x, y)
	renamed := Rename(term, map[string]string{"x": "a", "y": "b"})
	if renamed.String() != "f(a_, b_)" {
		t.Errorf("got %q, want %q", renamed.String(), "f(a_, b_)")
	}
	if term.String() != "f(x_, y_)" {
		t.Error("Rename must not mutate its argument")
	}
}

func TestVariablesAndSize(t *testing.T) {
	f := NewOperator("f", 2)
	x, y := NewVariable("x"), NewVariable("y")
	term := MustApplication(f, x, MustApplication(f, x, y))

	vars := Variables(term)
	if vars.Count() != 3 {
		t.Errorf("expected 3 variable occurrences, got %d", vars.Count())
	}
	if vars["x"] != 2 || vars["y"] != 1 {
		t.Errorf("unexpected per-name counts: %v", vars)
	}

	set := VariableSet(term)
	if len(set) != 2 {
		t.Errorf("expected 2 distinct variables, got %d", len(set))
	}

	if Size(term) != 5 {
		t.Errorf("expected node count 5, got %d", Size(term))
	}
}

func TestMultisetContainsAll(t *testing.T) {
	m := Multiset{"x": 2, "y": 1}
	if !m.ContainsAll(Multiset{"x": 1}) {
		t.Error("m must contain a subset of its own names")
	}
	if m.ContainsAll(Multiset{"z": 1}) {
		t.Error("m must not contain a name it lacks")
	}
}
