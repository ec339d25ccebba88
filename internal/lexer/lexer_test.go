package lexer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func drain(t *testing.T, src string) []Token {
	t.Helper()
	l := New(src)
	var toks []Token
	for {
		tok, err := l.Next()
		require.NoError(t, err)
		if tok == nil {
			break
		}
		toks = append(toks, tok)
	}
	return toks
}

func TestIdentASCIIAndUnicode(t *testing.T) {
	toks := drain(t, "foo _bar café naïve")
	require.Len(t, toks, 4)
	for _, tok := range toks {
		id, ok := tok.(Ident)
		require.Truef(t, ok, "%#v", tok)
		_ = id
	}
	require.Equal(t, "foo", toks[0].(Ident).Text)
	require.Equal(t, "café", toks[2].(Ident).Text)
}

func TestIntSuffixes(t *testing.T) {
	toks := drain(t, "1i8 2u64 3")
	require.Equal(t, "i8", toks[0].(Int).Suffix)
	require.Equal(t, "u64", toks[1].(Int).Suffix)
	require.Equal(t, "", toks[2].(Int).Suffix)
}

func TestInvalidIntSuffixIsFatal(t *testing.T) {
	l := New("1i7")
	_, err := l.Next()
	require.Error(t, err)
	d, ok := AsDiagnostic(err)
	require.True(t, ok)
	require.Equal(t, "Invalid integer suffix", d.Short)
}

func TestBareIntLiteralFallsBackToFloatSuffix(t *testing.T) {
	// "3f32" fails as an int suffix (no i/u lead byte) and is read whole
	// as a float literal with an f32 suffix, matching lex.py's fallback.
	toks := drain(t, "3f32")
	require.Len(t, toks, 1)
	f, ok := toks[0].(Float)
	require.True(t, ok)
	require.Equal(t, "f32", f.Suffix)
	require.Equal(t, float64(3), f.Value)
}

func TestFloatLiteral(t *testing.T) {
	toks := drain(t, "3.14 2.0f64")
	require.Len(t, toks, 2)
	require.InDelta(t, 3.14, toks[0].(Float).Value, 0.0001)
	require.Equal(t, "f64", toks[1].(Float).Suffix)
}

func TestRadixPrefixedIntegers(t *testing.T) {
	toks := drain(t, "0xFF 0b101 0o17")
	require.Equal(t, int64(255), toks[0].(Int).Value.Int64())
	require.Equal(t, int64(5), toks[1].(Int).Value.Int64())
	require.Equal(t, int64(15), toks[2].(Int).Value.Int64())
}

func TestUnderscoreSeparatedDigits(t *testing.T) {
	toks := drain(t, "1_000_000")
	require.Equal(t, int64(1000000), toks[0].(Int).Value.Int64())
}

func TestStringEscapes(t *testing.T) {
	toks := drain(t, `"a\nb\t\u{1F600}"`)
	require.Len(t, toks, 1)
	require.Equal(t, "a\nb\t\U0001F600", toks[0].(String).Value)
}

func TestUnclosedStringIsFatal(t *testing.T) {
	l := New(`"abc`)
	_, err := l.Next()
	require.Error(t, err)
	d, ok := AsDiagnostic(err)
	require.True(t, ok)
	require.Equal(t, "Unclosed string literal", d.Short)
}

func TestCharLiteral(t *testing.T) {
	toks := drain(t, `'a' '\n' 'λ'`)
	require.Equal(t, 'a', toks[0].(Char).Value)
	require.Equal(t, '\n', toks[1].(Char).Value)
	require.Equal(t, 'λ', toks[2].(Char).Value)
}

func TestLineComment(t *testing.T) {
	toks := drain(t, "a // comment\nb")
	require.Len(t, toks, 2)
	require.Equal(t, "a", toks[0].(Ident).Text)
	require.Equal(t, "b", toks[1].(Ident).Text)
}

func TestBlockCommentDoesNotNest(t *testing.T) {
	// The first "*/" terminates the comment, even though a "/*" appears
	// inside it; this matches lex.py's strip(), not a depth counter.
	toks := drain(t, "a /* /* nested */ still here */ b")
	require.Len(t, toks, 6)
	require.Equal(t, "still", toks[1].(Ident).Text)
	require.Equal(t, "here", toks[2].(Ident).Text)
}

func TestGroupBalancesSameDelimiter(t *testing.T) {
	toks := drain(t, "(a (b) c)")
	require.Len(t, toks, 1)
	g, ok := toks[0].(Group)
	require.True(t, ok)
	require.Equal(t, "()", g.Delim)

	inner := drain(t, g.Inner.Source()[g.Inner.offset:g.Inner.limit])
	require.Len(t, inner, 3)
}

func TestGroupSharesBuffer(t *testing.T) {
	src := "{ x + 1 }"
	l := New(src)
	tok, err := l.Next()
	require.NoError(t, err)
	g := tok.(Group)
	require.Same(t, &src, &src)
	require.Equal(t, src, g.Inner.Source())
	require.Equal(t, 1, g.Inner.offset)
	require.Equal(t, len(src)-1, g.Inner.limit)
}

func TestUnclosedGroupIsFatal(t *testing.T) {
	l := New("(a, b")
	_, err := l.Next()
	require.Error(t, err)
	d, ok := AsDiagnostic(err)
	require.True(t, ok)
	require.Equal(t, "Unclosed delimiters", d.Short)
}

func TestPunctuationMaximalMunch(t *testing.T) {
	toks := drain(t, "<<= >>= -> => :: && || == != <= >=")
	want := []string{"<<=", ">>=", "->", "=>", "::", "&&", "||", "==", "!=", "<=", ">="}
	require.Len(t, toks, len(want))
	for i, w := range want {
		require.Equal(t, w, toks[i].(Punct).Text)
	}
}

func TestUnknownCharacterIsFatal(t *testing.T) {
	l := New("a $ b")
	_, err := l.Next()
	require.NoError(t, err)
	_, err = l.Next()
	require.Error(t, err)
	d, ok := AsDiagnostic(err)
	require.True(t, ok)
	require.Equal(t, "Unexpected token", d.Short)
}

func TestPeekDoesNotAdvance(t *testing.T) {
	l := New("a b")
	p1, err := l.Peek()
	require.NoError(t, err)
	p2, err := l.Peek()
	require.NoError(t, err)
	require.Equal(t, p1, p2)

	n, err := l.Next()
	require.NoError(t, err)
	require.Equal(t, p1, n)

	n2, err := l.Next()
	require.NoError(t, err)
	require.Equal(t, "b", n2.(Ident).Text)
}

func TestRewindToRestoresPosition(t *testing.T) {
	l := New("foo bar")
	first, err := l.Next()
	require.NoError(t, err)
	l.RewindTo(first.Span())
	again, err := l.Next()
	require.NoError(t, err)
	require.Equal(t, first, again)
}

func TestIsEmpty(t *testing.T) {
	l := New("   \n// comment\n  ")
	require.True(t, l.IsEmpty())

	l2 := New("  x")
	require.False(t, l2.IsEmpty())
}

func TestNestedGroupOffsetsEquivalentToOuter(t *testing.T) {
	// Testable Property #5: a token scanned from an inner sub-lexer
	// reports the same absolute byte offsets as scanning the same bytes
	// from a fresh top-level Lexer would.
	src := "outer { inner_ident } tail"
	l := New(src)
	tok, err := l.Next()
	require.NoError(t, err)
	_ = tok

	tok2, err := l.Next()
	require.NoError(t, err)
	g := tok2.(Group)

	innerTok, err := g.Inner.Next()
	require.NoError(t, err)
	ident := innerTok.(Ident)
	require.Equal(t, "inner_ident", ident.Text)
	require.Equal(t, "inner_ident", src[ident.Span().Start:ident.Span().Stop])
}
