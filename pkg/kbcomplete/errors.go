package kbcomplete

// ConfigError reports a violated invariant in a KBO configuration: a
// reflexive precedence edge, a constant weighted below the variable
// weight, or a unary zero-weight operator that does not precede every
// other operator.
type ConfigError struct {
	Msg string
}

func (e *ConfigError) Error() string { return "kbcomplete: invalid KBO configuration: " + e.Msg }

// RuleError reports an invalid rewrite rule: a variable-only left-hand
// side, or a right-hand side mentioning a variable the left-hand side
// does not bind.
type RuleError struct {
	Msg string
}

func (e *RuleError) Error() string { return "kbcomplete: invalid rewrite rule: " + e.Msg }

// OrientationError reports that an equation could not be oriented under
// the configured KBO in either direction. Carries both sides so the
// caller can report them together.
type OrientationError struct {
	Left, Right Term
}

func (e *OrientationError) Error() string {
	return "kbcomplete: cannot orient equation " + formatTerm(e.Left) + " = " + formatTerm(e.Right) +
		": neither side is greater under the configured ordering"
}

// InvariantError reports a violated structural invariant of the term
// model itself, such as an operator applied to the wrong number of
// children.
type InvariantError struct {
	Msg string
}

func (e *InvariantError) Error() string { return "kbcomplete: " + e.Msg }
