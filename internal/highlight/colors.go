// Package highlight ports original_source/highlight.py's lexer-driven
// syntax coloring to a real, working Go implementation. It is a
// consumer-only package: it imports internal/lexer to walk tokens but
// is never imported back by it.
package highlight

import "github.com/fatih/color"

// tokenPalette holds one colorize function per highlight.py role. Unlike
// internal/diag's palette (header/underline/pointer/gutter), these map
// 1:1 onto colors.py's STRING/KEYWORD/PRIMITIVE/COMMENT/INT constants.
type tokenPalette struct {
	string    func(string) string
	keyword   func(string) string
	primitive func(string) string
	comment   func(string) string
	intLit    func(string) string
}

func newTokenPalette(enabled bool) tokenPalette {
	if !enabled {
		id := func(s string) string { return s }
		return tokenPalette{string: id, keyword: id, primitive: id, comment: id, intLit: id}
	}
	// EnableColor overrides fatih/color's own tty auto-detection: the
	// enabled/disabled decision already belongs to the caller (mirroring
	// internal/diag.ResolveColor), so a forced "on" must not be silently
	// downgraded just because stdout isn't a terminal in this process.
	role := func(attr color.Attribute) func(string) string {
		c := color.New(attr)
		c.EnableColor()
		return c.Sprint
	}
	return tokenPalette{
		string:    role(color.FgGreen),
		keyword:   role(color.FgMagenta),
		primitive: role(color.FgBlue),
		comment:   role(color.FgHiBlack),
		intLit:    role(color.FgCyan),
	}
}

// keywords is the closed set of reserved identifiers colorized as
// keywords, lifted verbatim from original_source/highlight.py.
var keywords = map[string]bool{
	"as": true, "break": true, "const": true, "continue": true,
	"crate": true, "else": true, "enum": true, "extern": true,
	"false": true, "fn": true, "for": true, "if": true, "impl": true,
	"in": true, "let": true, "loop": true, "match": true, "mod": true,
	"mut": true, "pub": true, "return": true, "self": true,
	"static": true, "struct": true, "super": true, "true": true,
	"type": true, "use": true, "where": true, "while": true,
}

// primitives is the closed set of primitive type names colorized
// distinctly from ordinary keywords, also lifted from highlight.py
// (which lists them separately from the parser's own primitive-name
// table in internal/ast/ty.go, but the two sets agree).
var primitives = map[string]bool{
	"u8": true, "u16": true, "u32": true, "u64": true, "u128": true,
	"i8": true, "i16": true, "i32": true, "i64": true, "i128": true,
	"f32": true, "f64": true, "bool": true, "str": true, "char": true,
	"usize": true, "isize": true, "Self": true,
}
