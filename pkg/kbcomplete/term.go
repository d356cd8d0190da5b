// Package kbcomplete implements Knuth-Bendix completion: given a set of
// equations between first-order terms and a well-founded reduction order,
// it attempts to produce a finite, confluent, terminating term-rewriting
// system whose equational theory matches the input equations.
//
// The package is organized around three tightly coupled subsystems: the
// term model and syntactic unification (this file, traverse.go,
// substitution.go, unify.go), the Knuth-Bendix ordering (kbo.go), and the
// completion driver (rule.go, ruleset.go, pqueue.go, driver.go).
//
// Terms are immutable. Structural equality is syntactic; equality up to
// variable renaming is provided separately by EqualModRenaming.
package kbcomplete

import "fmt"

// Term is the closed sum type of the term model: a term is exactly one of
// a Variable, a Constant, or an Application. Callers exhaustively switch
// on the concrete type; there is no fourth case.
type Term interface {
	isTerm()
	String() string
}

// Variable is a named logic variable, unique modulo alpha-renaming.
type Variable struct {
	Name string
}

func (*Variable) isTerm() {}

// String renders the variable with a trailing underscore, distinguishing
// it at a glance from a 0-arity constant of the same name.
func (v *Variable) String() string {
	return v.Name + "_"
}

// NewVariable constructs a variable with the given name.
func NewVariable(name string) *Variable {
	return &Variable{Name: name}
}

// Constant is a 0-arity operator symbol.
type Constant struct {
	Op Operator
}

func (*Constant) isTerm() {}

func (c *Constant) String() string {
	return c.Op.Name
}

// NewConstant constructs a constant term from a 0-arity operator. Panics
// if op's arity is not 0 - this is a programmer error, not a runtime
// failure a caller can trigger from untrusted input (use NewApplication
// for anything with operands).
func NewConstant(op Operator) *Constant {
	if op.Arity != 0 {
		panic(fmt.Sprintf("kbcomplete: NewConstant: operator %q has arity %d, want 0", op.Name, op.Arity))
	}
	return &Constant{Op: op}
}

// Application is an operator applied to exactly Op.Arity child terms,
// left to right.
type Application struct {
	Op       Operator
	Children []Term
}

func (*Application) isTerm() {}

func (a *Application) String() string {
	return formatTerm(a)
}

// NewApplication constructs an application of op to children. Returns an
// *InvariantError if len(children) != op.Arity, since this
// can be triggered by a caller building terms from untrusted or
// parser-derived arity information.
func NewApplication(op Operator, children ...Term) (*Application, error) {
	if op.Arity != len(children) {
		return nil, &InvariantError{
			Msg: fmt.Sprintf("operator %q has arity %d, got %d children", op.Name, op.Arity, len(children)),
		}
	}
	return &Application{Op: op, Children: append([]Term(nil), children...)}, nil
}

// MustApplication is like NewApplication but panics on arity mismatch.
// Intended for construction of literal/test terms where the arity is
// known statically.
func MustApplication(op Operator, children ...Term) *Application {
	app, err := NewApplication(op, children...)
	if err != nil {
		panic(err)
	}
	return app
}

// Operator is either a constant symbol (Arity == 0) or a function symbol
// with a fixed non-negative arity. Operators are interned values: two
// Operators with the same id compare equal, and Operator is comparable
// so it can be used directly as a map key.
type Operator struct {
	id     int64
	Name   string
	Arity  int
	Infix  bool // hint for printing only; has no semantic effect
}

var operatorCounter int64

// NewOperator interns a new operator symbol with the given name and
// arity. Each call produces a distinct identity even if the name
// repeats: operators are distinguished by identity, not name.
func NewOperator(name string, arity int) Operator {
	operatorCounter++
	return Operator{id: operatorCounter, Name: name, Arity: arity}
}

// NewInfixOperator is NewOperator with the Infix print hint set; arity
// must be 2, since only binary operators can render infix.
func NewInfixOperator(name string, arity int) Operator {
	op := NewOperator(name, arity)
	op.Infix = arity == 2
	return op
}

// Equal reports whether two operators are the same interned symbol.
func (o Operator) Equal(other Operator) bool {
	return o.id == other.id
}

// Head returns the operator of t, or (zero Operator, false) if t is a
// variable.
func Head(t Term) (Operator, bool) {
	switch v := t.(type) {
	case *Constant:
		return v.Op, true
	case *Application:
		return v.Op, true
	default:
		return Operator{}, false
	}
}

// Children returns t's argument list: empty for constants, nil for
// variables, and the operand slice for applications.
func Children(t Term) []Term {
	switch v := t.(type) {
	case *Application:
		return v.Children
	case *Constant:
		return nil
	default:
		return nil
	}
}

// IsVariable reports whether t is a Variable.
func IsVariable(t Term) bool {
	_, ok := t.(*Variable)
	return ok
}
