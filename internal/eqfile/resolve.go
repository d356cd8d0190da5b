package eqfile

import (
	"fmt"

	"github.com/gitrdm/kbcomplete/pkg/kbcomplete"
)

// Theory is a fully resolved equation file: a validated KBO
// configuration and the equations to seed completion with.
type Theory struct {
	KBO       *kbcomplete.KBO
	Equations []kbcomplete.Equation
}

// Resolve converts a parsed File into a Theory, interning operators,
// building the weight/precedence tables, and translating every
// declared equation's terms. Declaration order does not matter: a
// weight or precedence statement may appear before the operator
// declaration it refers to.
func Resolve(f *File) (*Theory, error) {
	operators := map[string]kbcomplete.Operator{}
	for _, st := range f.Statements {
		if st.Operator == nil {
			continue
		}
		if _, exists := operators[st.Operator.Name]; exists {
			return nil, fmt.Errorf("eqfile: operator %q declared more than once", st.Operator.Name)
		}
		if st.Operator.Infix {
			operators[st.Operator.Name] = kbcomplete.NewInfixOperator(st.Operator.Name, st.Operator.Arity)
		} else {
			operators[st.Operator.Name] = kbcomplete.NewOperator(st.Operator.Name, st.Operator.Arity)
		}
	}

	weights := map[kbcomplete.Operator]int{}
	varWeight := 0
	haveVarWeight := false
	var precedenceNames [][2]string
	var equationDecls []*EquationDecl

	for _, st := range f.Statements {
		switch {
		case st.Weight != nil:
			op, ok := operators[st.Weight.Operator]
			if !ok {
				return nil, fmt.Errorf("eqfile: weight declared for undeclared operator %q", st.Weight.Operator)
			}
			weights[op] = st.Weight.Value
		case st.VarWeight != nil:
			varWeight = st.VarWeight.Value
			haveVarWeight = true
		case st.Precedence != nil:
			precedenceNames = append(precedenceNames, [2]string{st.Precedence.Higher, st.Precedence.Lower})
		case st.Equation != nil:
			equationDecls = append(equationDecls, st.Equation)
		}
	}

	if !haveVarWeight {
		return nil, fmt.Errorf("eqfile: missing required \"varweight = N\" declaration")
	}
	for name, op := range operators {
		if _, ok := weights[op]; !ok {
			return nil, fmt.Errorf("eqfile: operator %q has no weight declaration", name)
		}
	}

	precedence := make([][2]kbcomplete.Operator, 0, len(precedenceNames))
	for _, pair := range precedenceNames {
		hi, ok := operators[pair[0]]
		if !ok {
			return nil, fmt.Errorf("eqfile: precedence declared for undeclared operator %q", pair[0])
		}
		lo, ok := operators[pair[1]]
		if !ok {
			return nil, fmt.Errorf("eqfile: precedence declared for undeclared operator %q", pair[1])
		}
		precedence = append(precedence, [2]kbcomplete.Operator{hi, lo})
	}

	kbo, err := kbcomplete.NewKBO(weights, varWeight, precedence)
	if err != nil {
		return nil, err
	}

	equations := make([]kbcomplete.Equation, 0, len(equationDecls))
	for _, ed := range equationDecls {
		left, err := convertTerm(ed.Left, operators)
		if err != nil {
			return nil, err
		}
		right, err := convertTerm(ed.Right, operators)
		if err != nil {
			return nil, err
		}
		equations = append(equations, kbcomplete.Equation{Left: left, Right: right})
	}

	return &Theory{KBO: kbo, Equations: equations}, nil
}

// convertTerm translates a parsed Term into a kbcomplete.Term. A bare
// identifier not among operators is a variable; an identifier among
// operators with no arguments is a constant; otherwise it must be
// applied to exactly as many arguments as its declared arity.
func convertTerm(t *Term, operators map[string]kbcomplete.Operator) (kbcomplete.Term, error) {
	op, isOperator := operators[t.Name]
	if !isOperator {
		if len(t.Args) > 0 {
			return nil, fmt.Errorf("eqfile: %q is applied to arguments but was never declared as an operator", t.Name)
		}
		return kbcomplete.NewVariable(t.Name), nil
	}

	if op.Arity == 0 {
		if len(t.Args) != 0 {
			return nil, fmt.Errorf("eqfile: constant %q must not be applied to arguments", t.Name)
		}
		return kbcomplete.NewConstant(op), nil
	}

	children := make([]kbcomplete.Term, len(t.Args))
	for i, a := range t.Args {
		c, err := convertTerm(a, operators)
		if err != nil {
			return nil, err
		}
		children[i] = c
	}
	app, err := kbcomplete.NewApplication(op, children...)
	if err != nil {
		return nil, err
	}
	return app, nil
}
