package kbcomplete

import (
	"github.com/hashicorp/go-hclog"

	"github.com/gitrdm/kbcomplete/internal/applog"
)

// System holds the completion state: the evolving rule set and the
// priority queue of pending critical pairs, together with the KBO they
// are oriented under. A System is built once per completion attempt; on
// return from Complete it holds the final rule set. Critical pairs are
// processed through a fairness priority queue rather than in batched
// rounds, so no pending pair waits indefinitely behind larger ones.
type System struct {
	kbo    *KBO
	rules  *RuleSet
	queue  *EquationQueue
	logger hclog.Logger
}

// NewSystem returns an empty completion state under the given ordering.
// A nil logger is replaced with hclog.NewNullLogger().
func NewSystem(kbo *KBO, logger hclog.Logger) *System {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &System{
		kbo:    kbo,
		rules:  NewRuleSet(),
		queue:  NewEquationQueue(),
		logger: logger,
	}
}

// Rules returns the current rule set, in installation order.
func (sys *System) Rules() []*RewriteRule {
	return sys.rules.Rules()
}

// PendingPairs reports how many critical pairs are still queued.
func (sys *System) PendingPairs() int {
	return sys.queue.Len()
}

// orient turns an unoriented equation into a rewrite rule: exactly one
// of gt(a,b), gt(b,a) must hold, or orientation fails.
func (sys *System) orient(a, b Term) (*RewriteRule, error) {
	agt := sys.kbo.Gt(a, b)
	bgt := sys.kbo.Gt(b, a)
	if agt == bgt {
		return nil, &OrientationError{Left: a, Right: b}
	}
	if agt {
		return NewRewriteRule(a, b)
	}
	return NewRewriteRule(b, a)
}

// applyRuleOnce applies a single rule to t at its first (outermost,
// leftmost) matching position.
func applyRuleOnce(t Term, r *RewriteRule) (Term, bool) {
	for _, pt := range Preorder(t) {
		sigma, ok := Match(r.Left, pt.Term)
		if !ok {
			continue
		}
		return ReplaceAt(t, pt.Pos, sigma.Apply(r.Right)), true
	}
	return t, false
}

// criticalPairsFrom computes the critical pairs between ra and rb in
// one direction: for every overlap E of ra.Left into rb.Left, the full
// cross product of ra's outer matches on E against rb's outer matches
// on E - a rule with more than one outer redex in E yields more than
// one pair, not just its first match.
func criticalPairsFrom(ra, rb *RewriteRule) []Equation {
	raSet := NewRuleSet()
	raSet.Append(ra)
	rbSet := NewRuleSet()
	rbSet.Append(rb)

	var out []Equation
	for _, e := range FindOverlaps(ra.Left, rb.Left) {
		ss := raSet.ApplyEachOnce(e, nil)
		ts := rbSet.ApplyEachOnce(e, nil)
		for _, s := range ss {
			for _, t := range ts {
				out = append(out, Equation{Left: s, Right: t})
			}
		}
	}
	return out
}

// enqueueCriticalPairsForNewRule pushes the critical pairs between
// newRule and every rule in existing (the rules installed before
// newRule), in both directions, plus newRule's self-overlaps.
func (sys *System) enqueueCriticalPairsForNewRule(newRule *RewriteRule, existing []*RewriteRule) {
	for _, eq := range criticalPairsFrom(newRule, newRule) {
		sys.queue.Push(eq)
	}
	for _, other := range existing {
		for _, eq := range criticalPairsFrom(newRule, other) {
			sys.queue.Push(eq)
		}
		for _, eq := range criticalPairsFrom(other, newRule) {
			sys.queue.Push(eq)
		}
	}
}

// FromEquations seeds the system: orient each equation into a rule,
// install it, and enqueue the critical pairs it forms with every
// already-installed rule (including itself). Returns the first
// OrientationError encountered.
func (sys *System) FromEquations(eqs []Equation) error {
	for _, eq := range eqs {
		r, err := sys.orient(eq.Left, eq.Right)
		if err != nil {
			return err
		}
		existing := sys.rules.Rules()
		sys.rules.Append(r)
		sys.logger.Debug("installed seed rule", applog.FieldRule, r.String())
		sys.enqueueCriticalPairsForNewRule(r, existing)
	}
	return nil
}

// canonicalizeStep performs at most one canonicalization action - the
// first of right-normalize, left-collapse, or trivial-redundancy-delete
// that applies. Returns whether the rule set changed, and the first
// orientation failure encountered while re-orienting a collapsed
// left-hand side.
func (sys *System) canonicalizeStep() (bool, error) {
	rules := sys.rules.Rules()

	// (a) Right-normalize.
	for idx, r := range rules {
		newRight := sys.rules.ApplyAll(r.Right, 0)
		if !EqualModRenaming(r.Right, newRight) {
			sys.rules.Replace(idx, &RewriteRule{Left: r.Left, Right: newRight})
			sys.logger.Debug("right-normalized rule", applog.FieldRule, idx)
			return true, nil
		}
	}

	// (b) Left-collapse.
	for idx, r := range rules {
		for j, other := range rules {
			if j == idx {
				continue
			}
			newE, changed := applyRuleOnce(r.Left, other)
			if !changed {
				continue
			}
			collapses := ProperContains(other.Left, r.Left) ||
				(EqualModRenaming(other.Left, r.Left) && sys.kbo.Gt(r.Right, other.Right))
			if !collapses {
				continue
			}
			if EqualModRenaming(newE, r.Right) {
				sys.rules.Delete(idx)
				sys.logger.Debug("left-collapsed rule to trivial equation", applog.FieldRule, idx)
				return true, nil
			}
			oriented, err := sys.orient(newE, r.Right)
			if err != nil {
				return false, err
			}
			sys.rules.Replace(idx, oriented)
			sys.logger.Debug("left-collapsed rule", applog.FieldRule, idx)
			return true, nil
		}
	}

	// (c) Trivial redundancy.
	for idx, r := range rules {
		if EqualModRenaming(r.Left, r.Right) {
			sys.rules.Delete(idx)
			sys.logger.Debug("deleted trivially redundant rule", applog.FieldRule, idx)
			return true, nil
		}
	}

	return false, nil
}

func (sys *System) canonicalizeToFixpoint() error {
	for {
		changed, err := sys.canonicalizeStep()
		if err != nil {
			return err
		}
		if !changed {
			return nil
		}
	}
}

// Complete runs the completion loop to a fixpoint: while the
// critical-pair queue is non-empty, pop the smallest pair, normalize
// both sides, discard if joinable, otherwise orient and install a new
// rule and inter-reduce the rule set before continuing. maxSteps bounds
// the number of queue pops attempted; 0 means unbounded. Returns
// (true, nil) if the queue emptied (the system completed), (false, nil)
// if the step budget was exhausted first, or (false, err) on an
// orientation failure.
func (sys *System) Complete(maxSteps int) (bool, error) {
	steps := 0
	for sys.queue.Len() > 0 {
		if maxSteps > 0 && steps >= maxSteps {
			sys.logger.Warn("step budget exhausted", applog.FieldStep, steps, applog.FieldQueueLen, sys.queue.Len())
			return false, nil
		}
		steps++

		eq, _ := sys.queue.Pop()
		s := sys.rules.ApplyAll(eq.Left, 0)
		t := sys.rules.ApplyAll(eq.Right, 0)
		if EqualModRenaming(s, t) {
			continue
		}

		r, err := sys.orient(s, t)
		if err != nil {
			return false, err
		}
		existing := sys.rules.Rules()
		sys.rules.Append(r)
		sys.logger.Info("installed rule", applog.FieldRule, r.String(), applog.FieldRules, sys.rules.Len(), applog.FieldStep, steps)
		sys.enqueueCriticalPairsForNewRule(r, existing)

		if err := sys.canonicalizeToFixpoint(); err != nil {
			return false, err
		}
	}
	return true, nil
}
