package kbcomplete

import "strings"

// formatTerm renders t as a variable name followed by an underscore, a
// constant as its bare name, and an application as
// "name(child1, child2, ...)" - except that an operator created with
// NewInfixOperator (necessarily binary) renders as "(left op right)"
// instead. The infix hint is cosmetic only; it never affects parsing,
// equality, or ordering.
func formatTerm(t Term) string {
	switch v := t.(type) {
	case *Variable:
		return v.Name + "_"
	case *Constant:
		return v.Op.Name
	case *Application:
		if v.Op.Infix && len(v.Children) == 2 {
			return "(" + formatTerm(v.Children[0]) + " " + v.Op.Name + " " + formatTerm(v.Children[1]) + ")"
		}
		parts := make([]string, len(v.Children))
		for i, c := range v.Children {
			parts[i] = formatTerm(c)
		}
		return v.Op.Name + "(" + strings.Join(parts, ", ") + ")"
	default:
		return "<?>"
	}
}
