package kbcomplete

import "testing"

// buildGroupTheorySystem constructs the three group axioms under the
// standard KBO as a starting point for completion.
func buildGroupTheorySystem(t *testing.T) (*System, Operator, Operator, Operator) {
	t.Helper()
	kbo, star, inv, e := groupTheoryKBO(t)
	sys := NewSystem(kbo, nil)

	x, y, z := NewVariable("x"), NewVariable("y"), NewVariable("z")
	eTerm := NewConstant(e)

	axioms := []Equation{
		{ // (x*y)*z = x*(y*z)
			Left:  MustApplication(star, MustApplication(star, x, y), z),
			Right: MustApplication(star, x, MustApplication(star, y, z)),
		},
		{ // e*x = x
			Left:  MustApplication(star, eTerm, x),
			Right: x,
		},
		{ // i(x)*x = e
			Left:  MustApplication(star, MustApplication(inv, x), x),
			Right: eTerm,
		},
	}

	if err := sys.FromEquations(axioms); err != nil {
		t.Fatalf("unexpected error seeding the system: %v", err)
	}
	return sys, star, inv, e
}

// TestGroupTheoryCompletion checks that completing the group axioms
// produces exactly the expected ten-rule canonical system, up to
// alpha-renaming.
func TestGroupTheoryCompletion(t *testing.T) {
	sys, star, inv, e := buildGroupTheorySystem(t)

	completed, err := sys.Complete(500)
	if err != nil {
		t.Fatalf("completion failed: %v", err)
	}
	if !completed {
		t.Fatal("completion did not reach a fixpoint within the step budget")
	}

	x, y := NewVariable("x"), NewVariable("y")
	eTerm := NewConstant(e)

	want := []*RewriteRule{
		MustRewriteRule(MustApplication(star, x, eTerm), x),
		MustRewriteRule(MustApplication(star, eTerm, x), x),
		MustRewriteRule(MustApplication(star, MustApplication(inv, x), x), eTerm),
		MustRewriteRule(MustApplication(star, x, MustApplication(inv, x)), eTerm),
		MustRewriteRule(MustApplication(star, MustApplication(star, x, y), NewVariable("z")),
			MustApplication(star, x, MustApplication(star, y, NewVariable("z")))),
		MustRewriteRule(MustApplication(inv, eTerm), eTerm),
		MustRewriteRule(MustApplication(star, MustApplication(inv, x), MustApplication(star, x, y)), y),
		MustRewriteRule(MustApplication(star, x, MustApplication(star, MustApplication(inv, x), y)), y),
		MustRewriteRule(MustApplication(inv, MustApplication(inv, x)), x),
		MustRewriteRule(MustApplication(inv, MustApplication(star, y, x)),
			MustApplication(star, MustApplication(inv, x), MustApplication(inv, y))),
	}

	got := sys.Rules()
	if len(got) != len(want) {
		t.Fatalf("expected %d rules, got %d: %v", len(want), len(got), got)
	}

	for _, w := range want {
		found := false
		for _, g := range got {
			if EqualModRenaming(g.Left, w.Left) && EqualModRenaming(g.Right, w.Right) {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("expected rule %s (mod renaming) among the completed rules, got %v", w, got)
		}
	}
}

func TestGroupTheoryConfluence(t *testing.T) {
	sys, _, _, _ := buildGroupTheorySystem(t)
	completed, err := sys.Complete(500)
	if err != nil {
		t.Fatalf("completion failed: %v", err)
	}
	if !completed {
		t.Fatal("completion did not reach a fixpoint within the step budget")
	}

	rules := sys.Rules()
	rs := NewRuleSet()
	for _, r := range rules {
		rs.Append(r)
	}

	for _, r1 := range rules {
		for _, r2 := range rules {
			for _, eq := range criticalPairsFrom(r1, r2) {
				s := rs.ApplyAll(eq.Left, 0)
				tt := rs.ApplyAll(eq.Right, 0)
				if !EqualModRenaming(s, tt) {
					t.Errorf("critical pair between %s and %s is not joinable: %s vs %s", r1, r2, s, tt)
				}
			}
		}
	}
}

func TestOrientationFailureIsReported(t *testing.T) {
	f := NewOperator("f", 1)
	g := NewOperator("g", 1)
	// A precedence in which f and g each precede the other closes to
	// f >> f and must be rejected at construction.
	kbo, err := NewKBO(map[Operator]int{f: 0, g: 0}, 1, [][2]Operator{{f, g}, {g, f}})
	if err == nil {
		t.Fatal("a two-cycle precedence should itself be rejected as non-irreflexive after closure")
	}

	// With equal weights and no precedence, f and g are incomparable
	// (different heads, neither precedes the other): f(x) = g(x) cannot
	// be oriented.
	kbo, err = NewKBO(map[Operator]int{f: 1, g: 1}, 1, nil)
	if err != nil {
		t.Fatalf("unexpected configuration error: %v", err)
	}
	sys := NewSystem(kbo, nil)
	x := NewVariable("x")
	err = sys.FromEquations([]Equation{{Left: MustApplication(f, x), Right: MustApplication(g, x)}})
	if _, ok := err.(*OrientationError); !ok {
		t.Fatalf("expected *OrientationError, got %v (%T)", err, err)
	}
}
