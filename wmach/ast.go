package wmach

import "github.com/alecthomas/participle/v2/lexer"

// wmachLexer tokenizes W-machine source: C-style block comments and
// whitespace are elided by the parser, identifiers cover label names
// (alpha, digit, apostrophe, underscore, matching the original's misc
// class), and every single-character operator is its own punctuation
// token.
var wmachLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `/\*[^*]*\*+(?:[^/*][^*]*\*+)*/`},
	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
	{Name: "Ident", Pattern: `[a-zA-Z0-9'_]+`},
	{Name: "Punct", Pattern: `[-+<>.,!:]`},
})

// astProgram is the raw grammar root: a flat sequence of statements.
// Labels are still unresolved names at this point; buildProgram turns
// them into absolute offsets.
type astProgram struct {
	Stmts []*astStmt `@@*`
}

// astStmt is the alternation over every statement shape, tried in the
// same order the original grammar did: a label definition first (so a
// bare identifier followed by ':' is never mistaken for anything else),
// then jmp, then the seven single-character operators.
type astStmt struct {
	Label *astLabel `  @@`
	Jmp   *astJmp   `| @@`
	Write *astWrite `| @@`
	Seek  *astSeek  `| @@`
	Io    *astIo    `| @@`
	Debug *astDebug `| @@`
}

type astLabel struct {
	Name string `@Ident ":"`
}

type astJmp struct {
	Keyword bool    `@"jmp"`
	True    string  `@Ident`
	False   *string `("," @Ident)?`
}

type astWrite struct {
	Op string `@("+" | "-")`
}

type astSeek struct {
	Op string `@("<" | ">")`
}

type astIo struct {
	Op string `@("," | ".")`
}

type astDebug struct {
	Op string `@"!"`
}
