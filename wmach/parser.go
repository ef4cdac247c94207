package wmach

import (
	"fmt"
	"os"

	"github.com/alecthomas/participle/v2"
)

var parser = participle.MustBuild[astProgram](
	participle.Lexer(wmachLexer),
	participle.Elide("Whitespace", "Comment"),
	participle.UseLookahead(2),
)

// Parse parses W-machine source text into a fully resolved Program:
// every label reference has already been turned into an absolute
// instruction offset.
func Parse(source string) (*Program, error) {
	ast, err := parser.ParseString("", source)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrParse, err)
	}
	return buildProgram(ast)
}

// ParseFile reads and parses a W-machine source file.
func ParseFile(path string) (*Program, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(string(contents))
}
