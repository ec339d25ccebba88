package highlight

import (
	"regexp"
	"strings"

	"github.com/lylythechosenone/scythe/internal/lexer"
)

var (
	lineComment  = regexp.MustCompile(`(?m)//[^\n]*`)
	blockComment = regexp.MustCompile(`(?s)/\*.*?\*/`)
)

// Highlight colorizes source by driving a fresh lexer over it and
// wrapping each recognized token in the role color original_source/
// colors.py assigns it. Comments are never emitted as tokens (the
// lexer treats them as whitespace, per internal/lexer.strip), so they
// are colorized in a second pass over the raw text that the token walk
// left untouched, matching highlight.py's own two-phase approach.
//
// If the lexer hits a fatal error partway through (e.g. a REPL line
// still mid-edit), Highlight stops coloring at that point and appends
// whatever remains verbatim rather than discarding it — a highlighter
// that refuses to show half-typed input is worse than one that shows
// it in black and white.
func Highlight(source string, enabled bool) string {
	pal := newTokenPalette(enabled)
	body, end := highlightLex(source, lexer.New(source), 0, pal)
	body += source[end:]
	return colorizeComments(body, pal)
}

// highlightLex walks every token lx yields, starting its raw-text
// bookkeeping at start, and returns the colorized text together with
// the byte offset it stopped at (either lx's limit, or wherever a
// fatal lex error cut the walk short).
//
// For a Group token this recurses into the group's own sub-lexer
// rather than trying to re-tokenize its span from the parent — the
// fix for the original's bug here: highlight.py's Group arm resumed
// the surrounding text using the position of the opening delimiter
// (the Group token's own span.start), when what it actually needed was
// the position just past the delimiter it had already emitted as part
// of the group's header — double-counting that byte into both the
// "raw" slice before the recursive call and the recursive call's own
// first raw slice. This version always resumes from the position the
// previous step actually reached (start, then each token's own Stop),
// never a span's Start.
func highlightLex(text string, lx *lexer.Lexer, start int, pal tokenPalette) (string, int) {
	var accum strings.Builder
	lastEnd := start
	for {
		tok, err := lx.Next()
		if err != nil || tok == nil {
			break
		}
		sp := tok.Span()
		switch t := tok.(type) {
		case lexer.String:
			accum.WriteString(text[lastEnd:sp.Start])
			accum.WriteString(pal.string(text[sp.Start:sp.Stop]))
			lastEnd = sp.Stop
		case lexer.Int:
			accum.WriteString(text[lastEnd:sp.Start])
			accum.WriteString(pal.intLit(text[sp.Start:sp.Stop]))
			lastEnd = sp.Stop
		case lexer.Ident:
			accum.WriteString(text[lastEnd:sp.Start])
			switch {
			case keywords[t.Text]:
				accum.WriteString(pal.keyword(text[sp.Start:sp.Stop]))
			case primitives[t.Text]:
				accum.WriteString(pal.primitive(text[sp.Start:sp.Stop]))
			default:
				accum.WriteString(text[sp.Start:sp.Stop])
			}
			lastEnd = sp.Stop
		case lexer.Group:
			accum.WriteString(text[lastEnd:t.Inner.Offset()])
			inner, innerEnd := highlightLex(text, t.Inner, t.Inner.Offset(), pal)
			accum.WriteString(inner)
			accum.WriteString(text[innerEnd:sp.Stop])
			lastEnd = sp.Stop
		default:
			// Char, Float, Punct carry no color of their own.
			accum.WriteString(text[lastEnd:sp.Stop])
			lastEnd = sp.Stop
		}
	}
	return accum.String(), lastEnd
}

func colorizeComments(text string, pal tokenPalette) string {
	text = lineComment.ReplaceAllStringFunc(text, pal.comment)
	text = blockComment.ReplaceAllStringFunc(text, pal.comment)
	return text
}
