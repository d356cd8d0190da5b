package kbcomplete

// KBO implements the Knuth-Bendix reduction order over a fixed set of
// operators, parameterized by a weight function, a variable weight, and
// a precedence on operators. Construction validates irreflexivity of
// the precedence, minimum constant weight, and the Dick-Kalmus-Martin
// unary-zero-weight minimality condition.
type KBO struct {
	weights    map[Operator]int
	varWeight  int
	precedence map[Operator]map[Operator]bool
}

// NewKBO constructs a KBO configuration. precedence holds the "a should
// orient over b" pairs a >> b; it is transitively closed internally.
// Returns a *ConfigError if any configuration invariant is violated.
func NewKBO(weights map[Operator]int, varWeight int, precedence [][2]Operator) (*KBO, error) {
	closure := closePrecedence(weights, precedence)

	for op := range weights {
		if closure[op][op] {
			return nil, &ConfigError{Msg: "precedence >> is reflexive for operator " + op.Name}
		}
	}

	for op, w := range weights {
		if op.Arity == 0 {
			if w < varWeight {
				return nil, &ConfigError{Msg: "constant " + op.Name + " has weight below the variable weight"}
			}
			continue
		}
		if w == 0 && op.Arity == 1 {
			for other := range weights {
				if other.Equal(op) {
					continue
				}
				if !closure[op][other] {
					return nil, &ConfigError{Msg: "unary operator " + op.Name + " with weight 0 must precede every other operator"}
				}
			}
		}
	}

	return &KBO{weights: weights, varWeight: varWeight, precedence: closure}, nil
}

// closePrecedence computes the transitive closure of precedence over the
// operators appearing in weights.
func closePrecedence(weights map[Operator]int, precedence [][2]Operator) map[Operator]map[Operator]bool {
	closure := make(map[Operator]map[Operator]bool)
	for op := range weights {
		closure[op] = map[Operator]bool{}
	}
	for _, pair := range precedence {
		if closure[pair[0]] == nil {
			closure[pair[0]] = map[Operator]bool{}
		}
		closure[pair[0]][pair[1]] = true
	}

	changed := true
	for changed {
		changed = false
		for a, outA := range closure {
			for b := range outA {
				for c := range closure[b] {
					if !closure[a][c] {
						closure[a][c] = true
						changed = true
					}
				}
			}
		}
	}
	return closure
}

// precedes reports whether a >> b under the closed precedence.
func (k *KBO) precedes(a, b Operator) bool {
	row, ok := k.precedence[a]
	if !ok {
		return false
	}
	return row[b]
}

// Weight computes the Knuth-Bendix weight of t: varWeight times the
// number of variable occurrences, plus the configured weight of every
// operator occurrence in t.
func (k *KBO) Weight(t Term) int {
	total := k.varWeight * Variables(t).Count()
	for _, pt := range Preorder(t) {
		if op, ok := Head(pt.Term); ok {
			total += k.weights[op]
		}
	}
	return total
}

// Gt reports whether s > t under this Knuth-Bendix ordering. Returns
// false (not an error) when the variable-containment precondition
// fails - the pair may still orient the other way, which the
// completion driver tries.
func (k *KBO) Gt(s, t Term) bool {
	sVars := Variables(s)
	tVars := Variables(t)
	if !sVars.ContainsAll(tVars) {
		return false
	}

	ws := k.Weight(s)
	wt := k.Weight(t)
	if ws > wt {
		return true
	}
	if ws < wt {
		return false
	}

	sHead, sHasHead := Head(s)
	tHead, tHasHead := Head(t)

	// Dick-Kalmus-Martin unary-zero collapse: if s's head is a unary
	// operator of weight 0, descend along the first child, checking at
	// every descendant (including the operand before descending past
	// it) whether it already equals t modulo renaming.
	if sHasHead && sHead.Arity == 1 && k.weights[sHead] == 0 {
		app := s.(*Application)
		descendant := app.Children[0]
		for {
			if EqualModRenaming(descendant, t) {
				return true
			}
			head, ok := Head(descendant)
			if !ok || !head.Equal(sHead) {
				break
			}
			descendant = descendant.(*Application).Children[0]
		}
	}

	if !sHasHead || !tHasHead || !sHead.Equal(tHead) {
		if sHasHead && tHasHead {
			return k.precedes(sHead, tHead)
		}
		return false
	}

	// Same head: lexicographically compare children, skipping positions
	// equal modulo renaming, deciding at the first difference.
	sChildren := Children(s)
	tChildren := Children(t)
	for i := range sChildren {
		if EqualModRenaming(sChildren[i], tChildren[i]) {
			continue
		}
		return k.Gt(sChildren[i], tChildren[i])
	}
	return false
}
