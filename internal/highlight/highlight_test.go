package highlight

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHighlightMonoIsByteIdentical(t *testing.T) {
	source := "fn f(x: i32) -> i32 { return x + 1; } // comment\n"
	out := Highlight(source, false)
	require.Equal(t, source, out, "monochrome mode must not insert any escape bytes")
}

func TestHighlightColorsKeywordsAndPrimitives(t *testing.T) {
	out := Highlight("fn f(x: i32) -> i32 { return x; }", true)
	require.Contains(t, out, "\x1b[35mfn\x1b[0m")
	require.Contains(t, out, "\x1b[35mreturn\x1b[0m")
	require.Contains(t, out, "\x1b[34mi32\x1b[0m")
}

func TestHighlightColorsStringsAndInts(t *testing.T) {
	out := Highlight(`let s = "hi"; let n = 42;`, true)
	require.Contains(t, out, "\x1b[32m\"hi\"\x1b[0m")
	require.Contains(t, out, "\x1b[36m42\x1b[0m")
}

func TestHighlightDoesNotColorOrdinaryIdents(t *testing.T) {
	out := Highlight("let widget = 1;", true)
	require.Contains(t, out, "widget")
	require.NotContains(t, out, "\x1b[35mwidget\x1b[0m")
	require.NotContains(t, out, "\x1b[34mwidget\x1b[0m")
}

func TestHighlightRecursesIntoGroups(t *testing.T) {
	out := Highlight(`fn f() { let x = "nested"; }`, true)
	require.Contains(t, out, "\x1b[32m\"nested\"\x1b[0m")
	require.Contains(t, out, "\x1b[35mfn\x1b[0m")
	require.Contains(t, out, "\x1b[35mlet\x1b[0m")
}

func TestHighlightColorsLineComments(t *testing.T) {
	out := Highlight("let x = 1; // a trailing note\n", true)
	require.Contains(t, out, "\x1b[90m// a trailing note\x1b[0m")
}

func TestHighlightColorsBlockComments(t *testing.T) {
	out := Highlight("let x /* inline */ = 1;", true)
	require.Contains(t, out, "\x1b[90m/* inline */\x1b[0m")
}

func TestHighlightFallsBackOnFatalLexError(t *testing.T) {
	source := `let x = "unterminated`
	out := Highlight(source, false)
	require.Equal(t, source, out, "a fatal lex error must surface the remaining text verbatim, not drop it")
}

func TestSliceIgnoringANSISkipsEscapes(t *testing.T) {
	colored := "\x1b[35mfn\x1b[0m f"
	require.Equal(t, "fn", SliceIgnoringANSI(colored, 0, 2))
	require.Equal(t, " f", SliceIgnoringANSI(colored, 2, 4))
}

func TestSliceIgnoringANSIOnPlainText(t *testing.T) {
	require.Equal(t, "ello", SliceIgnoringANSI("hello world", 1, 5))
}

func TestSliceIgnoringANSIOutOfRangeClampsToEnd(t *testing.T) {
	require.Equal(t, "lo", SliceIgnoringANSI("hello", 3, 100))
}
