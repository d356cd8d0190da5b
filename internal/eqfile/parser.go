package eqfile

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/fatih/color"
)

var fileParser = participle.MustBuild[File](
	participle.UseLookahead(2),
)

// ParseFile reads and parses the equation file at path.
func ParseFile(path string) (*File, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("eqfile: reading %s: %w", path, err)
	}
	return ParseString(path, string(source))
}

// ParseString parses source as an equation file; name is used only for
// error messages.
func ParseString(name, source string) (*File, error) {
	file, err := fileParser.ParseString(name, source)
	if err != nil {
		reportParseError(source, err)
		return nil, fmt.Errorf("eqfile: parsing %s: %w", name, err)
	}
	return file, nil
}

// reportParseError prints a caret-style diagnostic for a participle
// parse error to stderr.
func reportParseError(src string, err error) {
	pe, ok := err.(participle.Error)
	if !ok {
		fmt.Fprintln(os.Stderr, color.RedString("eqfile: unexpected error: %s", err))
		return
	}

	pos := pe.Position()
	lines := strings.Split(src, "\n")
	if pos.Line <= 0 || pos.Line > len(lines) {
		fmt.Fprintln(os.Stderr, color.RedString("eqfile: syntax error at unknown location: %s", err))
		return
	}

	line := lines[pos.Line-1]
	caret := strings.Repeat(" ", pos.Column-1) + "^"

	fmt.Fprintln(os.Stderr, color.RedString("eqfile: syntax error in %s at line %d, column %d:", pos.Filename, pos.Line, pos.Column))
	fmt.Fprintln(os.Stderr, line)
	fmt.Fprintln(os.Stderr, color.HiRedString("%s", caret))
	fmt.Fprintf(os.Stderr, "-> %s\n", pe.Message())
}
