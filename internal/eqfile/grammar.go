// Package eqfile parses the equation-file DSL the kbcomplete CLI reads
// its operator signatures, KBO configuration, and starting equations
// from. The grammar is a small struct-tag definition built on
// alecthomas/participle: a file is a repeated, alternated sequence of
// declaration structs, each tagged with its own literal keyword.
package eqfile

// File is a whole equation-file: a flat sequence of declarations, in
// any order, repeated any number of times.
type File struct {
	Statements []*Statement `@@*`
}

// Statement is the declaration sum type: exactly one of its fields is
// non-nil after a successful parse.
type Statement struct {
	Operator   *OperatorDecl   `  @@`
	Weight     *WeightDecl     `| @@`
	VarWeight  *VarWeightDecl  `| @@`
	Precedence *PrecedenceDecl `| @@`
	Equation   *EquationDecl   `| @@`
}

// OperatorDecl declares an operator's name and arity, optionally
// marking it for infix printing: "operator mul 2 infix".
type OperatorDecl struct {
	Name  string `"operator" @Ident`
	Arity int    `@Int`
	Infix bool   `[ @"infix" ]`
}

// WeightDecl assigns an operator's Knuth-Bendix weight: "weight e = 1".
type WeightDecl struct {
	Operator string `"weight" @Ident "="`
	Value    int    `@Int`
}

// VarWeightDecl sets the uniform weight of every variable occurrence:
// "varweight = 1".
type VarWeightDecl struct {
	Value int `"varweight" "=" @Int`
}

// PrecedenceDecl declares one precedence edge Higher >> Lower:
// "precedence inv > mul".
type PrecedenceDecl struct {
	Higher string `"precedence" @Ident`
	Lower  string `">" @Ident`
}

// EquationDecl declares a starting axiom: "equation <left> = <right>".
type EquationDecl struct {
	Left  *Term `"equation" @@`
	Right *Term `"=" @@`
}

// Term is a first-order term in prefix notation: a bare identifier
// names a variable or a 0-arity operator, and an identifier followed by
// a parenthesized, comma-separated argument list names an application.
// Whether a bare identifier denotes a variable or a constant is decided
// during conversion (resolve.go), against the file's declared
// operators - the grammar itself stays agnostic.
type Term struct {
	Name string  `@Ident`
	Args []*Term `( "(" @@ ("," @@)* ")" )?`
}
