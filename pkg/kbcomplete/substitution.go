package kbcomplete

// Substitution is a finite, total mapping from variable names to terms.
// Variables absent from Bindings map to themselves. Substitution values
// are immutable; Extend returns a new Substitution rather than mutating
// the receiver.
type Substitution struct {
	Bindings map[string]Term
}

// NewSubstitution returns the empty substitution.
func NewSubstitution() *Substitution {
	return &Substitution{Bindings: map[string]Term{}}
}

// Lookup returns the term bound to name, or nil if name is unbound.
func (s *Substitution) Lookup(name string) Term {
	return s.Bindings[name]
}

// Apply performs capture-free substitution of t under s: every Variable
// is replaced by its s-image (transitively unresolved - callers wanting
// a fully-walked term call Apply again until stable, which RuleSet's
// normalization loop does implicitly by rewriting rather than chasing
// bindings).
func (s *Substitution) Apply(t Term) Term {
	switch v := t.(type) {
	case *Variable:
		if bound, ok := s.Bindings[v.Name]; ok {
			return bound
		}
		return v
	case *Constant:
		return v
	case *Application:
		changed := false
		newChildren := make([]Term, len(v.Children))
		for i, c := range v.Children {
			newChildren[i] = s.Apply(c)
			if newChildren[i] != c {
				changed = true
			}
		}
		if !changed {
			return v
		}
		return &Application{Op: v.Op, Children: newChildren}
	default:
		panic("kbcomplete: Substitution.Apply: unreachable term case")
	}
}

// substituteOne applies the single replacement {name: replacement} to t,
// structurally, without touching the rest of a wider substitution. Used
// by Extend to update existing bindings when a new one is added.
func substituteOne(t Term, name string, replacement Term) Term {
	switch v := t.(type) {
	case *Variable:
		if v.Name == name {
			return replacement
		}
		return v
	case *Constant:
		return v
	case *Application:
		changed := false
		newChildren := make([]Term, len(v.Children))
		for i, c := range v.Children {
			newChildren[i] = substituteOne(c, name, replacement)
			if newChildren[i] != c {
				changed = true
			}
		}
		if !changed {
			return v
		}
		return &Application{Op: v.Op, Children: newChildren}
	default:
		panic("kbcomplete: substituteOne: unreachable term case")
	}
}

// occursIn reports whether a variable named name appears anywhere in t.
func occursIn(name string, t Term) bool {
	switch v := t.(type) {
	case *Variable:
		return v.Name == name
	case *Constant:
		return false
	case *Application:
		for _, c := range v.Children {
			if occursIn(name, c) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// Extend attempts to compose s with the single binding {name: replacement}:
// it fails the occurs-check if replacement mentions name, and fails if
// updating any existing binding w -> u to w -> u[name := replacement]
// would make that updated binding mention w (which would break
// idempotency of the resulting substitution). On success it returns a
// new Substitution; the receiver is left unchanged.
func (s *Substitution) Extend(name string, replacement Term) (*Substitution, bool) {
	if occursIn(name, replacement) {
		return nil, false
	}

	newBindings := make(map[string]Term, len(s.Bindings)+1)
	newBindings[name] = replacement

	for w, u := range s.Bindings {
		updated := substituteOne(u, name, replacement)
		if occursIn(w, updated) {
			return nil, false
		}
		newBindings[w] = updated
	}

	return &Substitution{Bindings: newBindings}, true
}
