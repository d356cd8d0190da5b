// Command kbcomplete runs Knuth-Bendix completion and prints the
// resulting rewrite rules. With no flags it completes a group-theory
// example: associativity, left identity, and left inverse under the
// standard KBO (weights {*:0, i:0, e:1}, variable weight 1, precedence
// i >> *, * >> e). Pass -equations to complete a theory described in
// the equation-file DSL instead.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/gitrdm/kbcomplete/internal/applog"
	"github.com/gitrdm/kbcomplete/internal/eqfile"
	"github.com/gitrdm/kbcomplete/pkg/kbcomplete"
)

const (
	exitOK = iota
	exitUsage
	exitOrientationFailure
	exitStepLimitExceeded
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("kbcomplete", flag.ContinueOnError)
	equationsPath := fs.String("equations", "", "path to an equation file (default: built-in group-theory example)")
	maxSteps := fs.Int("max-steps", 0, "maximum number of completion steps (0 = unbounded)")
	logLevel := fs.String("log-level", "warn", "log level: trace, debug, info, warn, error")
	useColor := fs.Bool("color", true, "colorize rule output")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if !*useColor {
		color.NoColor = true
	}

	logger := applog.New(*logLevel)

	var (
		kbo       *kbcomplete.KBO
		equations []kbcomplete.Equation
	)
	if *equationsPath != "" {
		file, err := eqfile.ParseFile(*equationsPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return exitUsage
		}
		theory, err := eqfile.Resolve(file)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return exitUsage
		}
		kbo, equations = theory.KBO, theory.Equations
	} else {
		var err error
		kbo, equations, err = groupTheoryExample()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return exitUsage
		}
	}

	sys := kbcomplete.NewSystem(kbo, logger)
	if err := sys.FromEquations(equations); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("%s", err))
		return exitOrientationFailure
	}

	completed, err := sys.Complete(*maxSteps)
	if err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("%s", err))
		return exitOrientationFailure
	}
	if !completed {
		fmt.Fprintln(os.Stderr, color.YellowString("kbcomplete: step budget exhausted before completion finished"))
		for _, r := range sys.Rules() {
			fmt.Println(r.String())
		}
		return exitStepLimitExceeded
	}

	for _, r := range sys.Rules() {
		fmt.Println(color.GreenString(r.String()))
	}
	return exitOK
}

// groupTheoryExample builds a demonstration theory: group axioms under
// the standard Dick-Kalmus-Martin KBO configuration.
func groupTheoryExample() (*kbcomplete.KBO, []kbcomplete.Equation, error) {
	star := kbcomplete.NewInfixOperator("*", 2)
	inv := kbcomplete.NewOperator("i", 1)
	identity := kbcomplete.NewOperator("e", 0)

	weights := map[kbcomplete.Operator]int{star: 0, inv: 0, identity: 1}
	precedence := [][2]kbcomplete.Operator{{inv, star}, {star, identity}}
	kbo, err := kbcomplete.NewKBO(weights, 1, precedence)
	if err != nil {
		return nil, nil, err
	}

	x, y, z := kbcomplete.NewVariable("x"), kbcomplete.NewVariable("y"), kbcomplete.NewVariable("z")
	e := kbcomplete.NewConstant(identity)

	// (x * y) * z = x * (y * z)
	assoc := kbcomplete.Equation{
		Left:  kbcomplete.MustApplication(star, kbcomplete.MustApplication(star, x, y), z),
		Right: kbcomplete.MustApplication(star, x, kbcomplete.MustApplication(star, y, z)),
	}
	// e * x = x
	leftIdentity := kbcomplete.Equation{
		Left:  kbcomplete.MustApplication(star, e, x),
		Right: x,
	}
	// i(x) * x = e
	leftInverse := kbcomplete.Equation{
		Left:  kbcomplete.MustApplication(star, kbcomplete.MustApplication(inv, x), x),
		Right: e,
	}

	return kbo, []kbcomplete.Equation{assoc, leftIdentity, leftInverse}, nil
}
