package kbcomplete

import "fmt"

// RewriteRule is an oriented pair (Left, Right): vars(Right) is a subset
// of vars(Left), and Left is not a variable. Variables are canonically
// renamed on construction so that alpha-equivalent rules compare and
// print identically.
type RewriteRule struct {
	Left  Term
	Right Term
}

// canonicalVarNames returns n deterministic, human-readable variable
// names in preference order: x, y, z, w, then v4, v5, ... This is purely
// a cosmetic choice, not a semantic requirement.
func canonicalVarNames(n int) []string {
	preferred := []string{"x", "y", "z", "w"}
	names := make([]string, 0, n)
	for i := 0; i < n; i++ {
		if i < len(preferred) {
			names = append(names, preferred[i])
		} else {
			names = append(names, fmt.Sprintf("v%d", i))
		}
	}
	return names
}

// canonicalize renames left and right's variables together to the
// deterministic sequence canonicalVarNames assigns, in the order
// variables are first encountered in left's preorder traversal. Right's
// variables are a subset of left's by construction, so every variable
// right mentions already has an assigned canonical name.
func canonicalize(left, right Term) (Term, Term) {
	mapping := map[string]string{}
	names := canonicalVarNames(len(VariableSet(left)))
	next := 0
	for _, pt := range Preorder(left) {
		if v, ok := pt.Term.(*Variable); ok {
			if _, seen := mapping[v.Name]; !seen {
				mapping[v.Name] = names[next]
				next++
			}
		}
	}
	return Rename(left, mapping), Rename(right, mapping)
}

// NewRewriteRule constructs a rule left -> right, validating and
// canonicalizing. Returns a *RuleError if left is a variable or if right
// mentions a variable absent from left.
func NewRewriteRule(left, right Term) (*RewriteRule, error) {
	if IsVariable(left) {
		return nil, &RuleError{Msg: "left-hand side of a rewrite rule must not be a variable"}
	}
	leftVars := VariableSet(left)
	for name := range VariableSet(right) {
		if _, ok := leftVars[name]; !ok {
			return nil, &RuleError{Msg: fmt.Sprintf("variable %q appears on the right but not the left of the rule", name)}
		}
	}

	canonLeft, canonRight := canonicalize(left, right)
	return &RewriteRule{Left: canonLeft, Right: canonRight}, nil
}

// MustRewriteRule is like NewRewriteRule but panics on an invariant
// violation. Intended for literal rules built from program constants
// (e.g. in tests and the CLI's built-in example), where a violation
// indicates a programming error, not bad input.
func MustRewriteRule(left, right Term) *RewriteRule {
	r, err := NewRewriteRule(left, right)
	if err != nil {
		panic(err)
	}
	return r
}

// String renders the rule as "<left> -> <right>".
func (r *RewriteRule) String() string {
	return formatTerm(r.Left) + " -> " + formatTerm(r.Right)
}
