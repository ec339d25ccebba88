package diag

import (
	"strings"
	"testing"

	"github.com/lylythechosenone/scythe/internal/span"
	"github.com/stretchr/testify/require"
)

func TestRenderSingleLineMono(t *testing.T) {
	source := "let x = 1 + 2;\n"
	d := New("Unexpected token", span.Span{Start: 8, Stop: 9}, "Expected an expression, found this instead")

	out := NewMonoRenderer().Render(source, d)

	require.Contains(t, out, "╭─[1:9] Error: Unexpected token")
	require.Contains(t, out, "let x = 1 + 2;")
	require.Contains(t, out, "╰─ Expected an expression, found this instead")
	require.NotContains(t, out, "\x1b[")
}

func TestRenderDedentsLeadingWhitespace(t *testing.T) {
	source := "    let broken\n"
	d := New("Unexpected token", span.Span{Start: 8, Stop: 14}, "bad ident")

	out := NewMonoRenderer().Render(source, d)
	lines := strings.Split(out, "\n")
	require.Equal(t, "let broken", lines[1])
}

func TestRenderNoteHighlightsPrefix(t *testing.T) {
	source := "x\n"
	d := New("Unexpected token", span.Span{Start: 0, Stop: 1}, "long").WithNote("hint: try again")

	out := NewMonoRenderer().Render(source, d)
	require.Contains(t, out, "│ hint: try again")
}

func TestRenderMultiLineCoversEveryLine(t *testing.T) {
	source := "{\n  a\n  b\n}\n"
	d := New("Unclosed delimiters", span.Span{Start: 0, Stop: len(source) - 1}, "Expected '}' to close this group")

	out := NewMonoRenderer().Render(source, d)
	require.Contains(t, out, "│ {")
	require.Contains(t, out, "│   a")
	require.Contains(t, out, "│   b")
	require.Contains(t, out, "│ }")
}

func TestSinkDropLastAndExtend(t *testing.T) {
	s := NewSink()
	s.Push(New("a", span.Span{}, ""))
	s.Push(New("b", span.Span{}, ""))
	s.DropLast()
	require.Equal(t, 1, s.Len())
	require.Equal(t, "a", s.Diagnostics()[0].Short)

	other := NewSink()
	other.Push(New("c", span.Span{}, ""))
	s.Extend(other)
	require.Equal(t, []string{"a", "c"}, shortMsgs(s))
}

func shortMsgs(s *Sink) []string {
	out := make([]string, 0, s.Len())
	for _, d := range s.Diagnostics() {
		out = append(out, d.Short)
	}
	return out
}
