package kbcomplete

// Position identifies a subterm by the sequence of child indices leading
// to it from the root. The root's position is the empty slice.
type Position []int

// Positioned pairs a subterm with its position, as yielded by Preorder.
type Positioned struct {
	Term Term
	Pos  Position
}

// Preorder yields every (subterm, position) pair of t in preorder:
// the root first, at position (), then each child's subtree left to
// right.
func Preorder(t Term) []Positioned {
	var out []Positioned
	var walk func(Term, Position)
	walk = func(cur Term, pos Position) {
		out = append(out, Positioned{Term: cur, Pos: pos})
		for i, child := range Children(cur) {
			childPos := make(Position, len(pos)+1)
			copy(childPos, pos)
			childPos[len(pos)] = i
			walk(child, childPos)
		}
	}
	walk(t, Position{})
	return out
}

// ReplaceAt returns a new term equal to t except that the subterm at
// position p is replaced by u. The root (empty position) replaces the
// whole term.
func ReplaceAt(t Term, p Position, u Term) Term {
	if len(p) == 0 {
		return u
	}
	app, ok := t.(*Application)
	if !ok {
		panic("kbcomplete: ReplaceAt: position does not exist in term")
	}
	idx := p[0]
	if idx < 0 || idx >= len(app.Children) {
		panic("kbcomplete: ReplaceAt: position index out of range")
	}
	newChildren := append([]Term(nil), app.Children...)
	newChildren[idx] = ReplaceAt(app.Children[idx], p[1:], u)
	return &Application{Op: app.Op, Children: newChildren}
}

// Rename returns t with each variable name replaced according to m.
// Variables whose name is absent from m are left unchanged. This is the
// building block canonical renaming (rule.go) and findOverlaps'
// disjointness step (unify.go) are built on.
func Rename(t Term, m map[string]string) Term {
	switch v := t.(type) {
	case *Variable:
		if newName, ok := m[v.Name]; ok {
			return &Variable{Name: newName}
		}
		return v
	case *Constant:
		return v
	case *Application:
		newChildren := make([]Term, len(v.Children))
		changed := false
		for i, c := range v.Children {
			newChildren[i] = Rename(c, m)
			if newChildren[i] != c {
				changed = true
			}
		}
		if !changed {
			return v
		}
		return &Application{Op: v.Op, Children: newChildren}
	default:
		panic("kbcomplete: Rename: unreachable term case")
	}
}

// Multiset is a multiset of variable names, used for weight computation
// and the variable-containment checks KBO and rule construction require.
type Multiset map[string]int

// Variables returns the multiset of variable occurrences in t (each
// occurrence counted, not just distinct names).
func Variables(t Term) Multiset {
	m := Multiset{}
	var walk func(Term)
	walk = func(cur Term) {
		switch v := cur.(type) {
		case *Variable:
			m[v.Name]++
		case *Constant:
		case *Application:
			for _, c := range v.Children {
				walk(c)
			}
		}
	}
	walk(t)
	return m
}

// VariableSet returns the distinct variable names of t, discarding
// multiplicity.
func VariableSet(t Term) map[string]struct{} {
	set := map[string]struct{}{}
	for name := range Variables(t) {
		set[name] = struct{}{}
	}
	return set
}

// ContainsAll reports whether every variable in other also appears in m,
// ignoring multiplicity: set containment over the distinct names, used
// by the KBO variable-containment precondition.
func (m Multiset) ContainsAll(other Multiset) bool {
	for name := range other {
		if _, ok := m[name]; !ok {
			return false
		}
	}
	return true
}

// Count returns the total number of variable occurrences recorded.
func (m Multiset) Count() int {
	total := 0
	for _, n := range m {
		total += n
	}
	return total
}

// Size returns the total node count of t (every Variable, Constant, and
// Application counts as one node), used as the critical-pair priority
// key in pqueue.go.
func Size(t Term) int {
	n := 1
	for _, c := range Children(t) {
		n += Size(c)
	}
	return n
}
