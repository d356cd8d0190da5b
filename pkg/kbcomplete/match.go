package kbcomplete

// Match attempts one-directional pattern matching: find a substitution
// sigma, binding only pattern's variables, such that sigma.Apply(pattern)
// is syntactically equal to instance. Unlike Unify, instance's own
// variables (if any) are treated as opaque constants, never bound.
func Match(pattern, instance Term) (*Substitution, bool) {
	sigma := NewSubstitution()
	ok := matchInto(pattern, instance, sigma.Bindings)
	if !ok {
		return nil, false
	}
	return sigma, true
}

func matchInto(pattern, instance Term, bindings map[string]Term) bool {
	switch p := pattern.(type) {
	case *Variable:
		if bound, ok := bindings[p.Name]; ok {
			return TermEqual(bound, instance)
		}
		bindings[p.Name] = instance
		return true
	case *Constant:
		ic, ok := instance.(*Constant)
		return ok && p.Op.Equal(ic.Op)
	case *Application:
		ia, ok := instance.(*Application)
		if !ok || !p.Op.Equal(ia.Op) || len(p.Children) != len(ia.Children) {
			return false
		}
		for i := range p.Children {
			if !matchInto(p.Children[i], ia.Children[i], bindings) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
