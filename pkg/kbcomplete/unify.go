package kbcomplete

import "fmt"

// TermEqual reports strict syntactic equality: same shape, same operator
// identities, same variable names. Use EqualModRenaming for equality up
// to alpha-renaming.
func TermEqual(a, b Term) bool {
	switch av := a.(type) {
	case *Variable:
		bv, ok := b.(*Variable)
		return ok && av.Name == bv.Name
	case *Constant:
		bv, ok := b.(*Constant)
		return ok && av.Op.Equal(bv.Op)
	case *Application:
		bv, ok := b.(*Application)
		if !ok || !av.Op.Equal(bv.Op) || len(av.Children) != len(bv.Children) {
			return false
		}
		for i := range av.Children {
			if !TermEqual(av.Children[i], bv.Children[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

type unifyPair struct {
	a, b Term
}

// Unify computes a most-general unifier of s and t by the Martelli-
// Montanari work-queue algorithm: repeatedly pop a pending pair,
// decompose matching applications into their children, bind variables
// with an occurs-checked Extend, and re-normalize the remaining queue
// against every newly extended substitution. Returns (nil, false) if no
// unifier exists.
func Unify(s, t Term) (*Substitution, bool) {
	sigma := NewSubstitution()
	queue := []unifyPair{{s, t}}

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		a, b := p.a, p.b

		if TermEqual(a, b) {
			continue
		}

		if va, ok := a.(*Variable); ok {
			next, ok := sigma.Extend(va.Name, b)
			if !ok {
				return nil, false
			}
			sigma = next
			normalizeQueue(queue, sigma)
			continue
		}

		if vb, ok := b.(*Variable); ok {
			next, ok := sigma.Extend(vb.Name, a)
			if !ok {
				return nil, false
			}
			sigma = next
			normalizeQueue(queue, sigma)
			continue
		}

		ha, okA := Head(a)
		hb, okB := Head(b)
		ca := Children(a)
		cb := Children(b)
		if okA && okB && ha.Equal(hb) && len(ca) == len(cb) {
			for i := range ca {
				queue = append(queue, unifyPair{ca[i], cb[i]})
			}
			continue
		}

		return nil, false
	}

	return sigma, true
}

// normalizeQueue rewrites every pending pair in place by applying sigma
// to both sides.
func normalizeQueue(queue []unifyPair, sigma *Substitution) {
	for i := range queue {
		queue[i].a = sigma.Apply(queue[i].a)
		queue[i].b = sigma.Apply(queue[i].b)
	}
}

// canonicalRename renames t's variables to a deterministic sequence in
// the order first encountered by preorder traversal, for use in
// EqualModRenaming.
func canonicalRename(t Term) Term {
	m := map[string]string{}
	counter := 0
	for _, pt := range Preorder(t) {
		if v, ok := pt.Term.(*Variable); ok {
			if _, seen := m[v.Name]; !seen {
				m[v.Name] = fmt.Sprintf("#%d", counter)
				counter++
			}
		}
	}
	return Rename(t, m)
}

// EqualModRenaming reports whether t1 and t2 are equal up to a bijective
// renaming of variables.
func EqualModRenaming(t1, t2 Term) bool {
	if len(VariableSet(t1)) != len(VariableSet(t2)) {
		return false
	}
	return TermEqual(canonicalRename(t1), canonicalRename(t2))
}

// ProperContains reports whether sub appears, modulo renaming, as a
// subterm of within at some position other than the root.
func ProperContains(sub, within Term) bool {
	for _, pt := range Preorder(within) {
		if len(pt.Pos) == 0 {
			continue
		}
		if EqualModRenaming(sub, pt.Term) {
			return true
		}
	}
	return false
}

var freshVarCounter int64

// uniqifyVariables renames every variable in t to a globally fresh name,
// guaranteeing disjointness from any other term's variables (including
// within, for FindOverlaps' use) without needing to inspect the other
// term's variable set.
func uniqifyVariables(t Term) Term {
	m := map[string]string{}
	for name := range VariableSet(t) {
		freshVarCounter++
		m[name] = fmt.Sprintf("%%%d", freshVarCounter)
	}
	return Rename(t, m)
}

// FindOverlaps yields, for every non-variable subterm of within that
// unifies with term, the result of applying that unifier to within as a
// whole - one term per overlap. term's variables are first renamed
// disjoint from within's so the two sides of an overlap never collide.
func FindOverlaps(term, within Term) []Term {
	term = uniqifyVariables(term)
	var out []Term
	for _, pt := range Preorder(within) {
		if IsVariable(pt.Term) {
			continue
		}
		sigma, ok := Unify(term, pt.Term)
		if !ok {
			continue
		}
		out = append(out, sigma.Apply(within))
	}
	return out
}
