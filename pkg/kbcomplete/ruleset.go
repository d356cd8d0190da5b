package kbcomplete

// RuleSet is an ordered collection of rewrite rules with two application
// semantics: ApplyAll rewrites a term to a normal form under the whole
// set (optionally capped at a maximum number of steps), and
// ApplyEachOnce enumerates every one-step rewrite of a term by
// any rule (optionally restricted to a subset) at any position.
type RuleSet struct {
	rules []*RewriteRule
}

// NewRuleSet returns an empty rule set.
func NewRuleSet() *RuleSet {
	return &RuleSet{}
}

// Rules returns a snapshot of the current rules, in the order they were
// appended (replacements keep their original position).
func (rs *RuleSet) Rules() []*RewriteRule {
	out := make([]*RewriteRule, len(rs.rules))
	copy(out, rs.rules)
	return out
}

// Len reports the number of rules currently in the set.
func (rs *RuleSet) Len() int {
	return len(rs.rules)
}

// Append adds r to the end of the rule set.
func (rs *RuleSet) Append(r *RewriteRule) {
	rs.rules = append(rs.rules, r)
}

// Replace overwrites the rule at index i with r. Reports false if i is
// out of range.
func (rs *RuleSet) Replace(i int, r *RewriteRule) bool {
	if i < 0 || i >= len(rs.rules) {
		return false
	}
	rs.rules[i] = r
	return true
}

// Delete removes the rule at index i. Reports false if i is out of
// range.
func (rs *RuleSet) Delete(i int) bool {
	if i < 0 || i >= len(rs.rules) {
		return false
	}
	rs.rules = append(rs.rules[:i], rs.rules[i+1:]...)
	return true
}

// rewriteStep finds the first position in preorder and the first rule,
// in that order, under which t has a redex, and returns the term with
// that single redex replaced by the rule's instantiated right-hand
// side. Reports false if no rule matches anywhere in t.
func (rs *RuleSet) rewriteStep(t Term) (Term, bool) {
	for _, pt := range Preorder(t) {
		for _, r := range rs.rules {
			sigma, ok := Match(r.Left, pt.Term)
			if !ok {
				continue
			}
			return ReplaceAt(t, pt.Pos, sigma.Apply(r.Right)), true
		}
	}
	return t, false
}

// ApplyAll rewrites t to a normal form under the rule set: it repeats
// rewriteStep until no rule matches anywhere or maxCount applications
// have been made. maxCount <= 0 means unbounded. If the rule set is not
// terminating and maxCount is unbounded this does not halt; the
// completion driver only calls this unbounded with rule sets it is
// actively orienting to be terminating.
func (rs *RuleSet) ApplyAll(t Term, maxCount int) Term {
	count := 0
	for maxCount <= 0 || count < maxCount {
		next, ok := rs.rewriteStep(t)
		if !ok {
			return t
		}
		t = next
		count++
	}
	return t
}

// ApplyEachOnce returns every term reachable from t by a single
// rewrite step - one result per (position, rule) pair that
// matches. only, if non-nil, restricts consideration to rules also
// present in only; a nil only considers every rule in the set. Results
// are not deduplicated by EqualModRenaming; callers that need distinct
// results up to renaming filter themselves.
func (rs *RuleSet) ApplyEachOnce(t Term, only []*RewriteRule) []Term {
	rules := rs.rules
	if only != nil {
		allowed := make(map[*RewriteRule]bool, len(only))
		for _, r := range only {
			allowed[r] = true
		}
		rules = make([]*RewriteRule, 0, len(rs.rules))
		for _, r := range rs.rules {
			if allowed[r] {
				rules = append(rules, r)
			}
		}
	}

	var out []Term
	for _, pt := range Preorder(t) {
		for _, r := range rules {
			sigma, ok := Match(r.Left, pt.Term)
			if !ok {
				continue
			}
			out = append(out, ReplaceAt(t, pt.Pos, sigma.Apply(r.Right)))
		}
	}
	return out
}
