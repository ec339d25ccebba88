package diag

import (
	"fmt"
	"strings"
)

// Renderer turns a Diagnostic and its source buffer into a terminal-ready
// annotated snippet. Grounded on malphas-lang's Formatter
// struct/NewFormatter idiom (internal/diag/formatter.go), but the actual
// layout is replaced with the box-drawing header/underline/pointer/note
// format lifted from original_source/error.py's display() method rather
// than malphas-lang's Rust-style multi-line-context format.
type Renderer struct {
	pal palette
}

// NewRenderer builds a Renderer whose color mode resolves per mode (and,
// for ColorAuto, whether stderr is a terminal).
func NewRenderer(mode ColorMode) *Renderer {
	return &Renderer{pal: newPalette(ResolveColor(mode))}
}

// NewMonoRenderer returns a Renderer that never emits ANSI escapes, a
// monochrome fallback kept for testability.
func NewMonoRenderer() *Renderer {
	return &Renderer{pal: newPalette(false)}
}

func lineStart(source string, offset int) int {
	i := offset
	if i > len(source) {
		i = len(source)
	}
	for i > 0 && source[i-1] != '\n' {
		i--
	}
	return i
}

func lineEnd(source string, offset int) int {
	i := offset
	for i < len(source) && source[i] != '\n' {
		i++
	}
	return i
}

func lineNumber(source string, offset int) int {
	n := 1
	limit := offset
	if limit > len(source) {
		limit = len(source)
	}
	for i := 0; i < limit; i++ {
		if source[i] == '\n' {
			n++
		}
	}
	return n
}

func leadingWhitespace(line string) int {
	i := 0
	for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
		i++
	}
	return i
}

// underlineRun produces a run of `width` bytes' worth of underline: a
// single centered ┬ flanked by dashes, or a bare ┬ for a one-byte span.
func underlineRun(width int) string {
	if width <= 1 {
		return "┬"
	}
	left := (width - 1) / 2
	right := width - 1 - left
	return strings.Repeat("─", left) + "┬" + strings.Repeat("─", right)
}

// Render produces the full annotated snippet for d against source.
func (r *Renderer) Render(source string, d Diagnostic) string {
	var b strings.Builder

	startLine := lineNumber(source, d.Span.Start)
	startCol := d.Span.Start - lineStart(source, d.Span.Start) + 1
	b.WriteString(r.pal.header(fmt.Sprintf("╭─[%d:%d] Error: %s", startLine, startCol, d.Short)))
	b.WriteString("\n")

	if d.Span.Stop <= lineEnd(source, d.Span.Start) {
		r.renderSingleLine(&b, source, d)
	} else {
		r.renderMultiLine(&b, source, d)
	}

	b.WriteString(r.pal.pointer(fmt.Sprintf("╰─ %s", d.Long)))

	if d.Note != "" {
		b.WriteString("\n")
		r.renderNote(&b, d.Note)
	}

	return b.String()
}

func (r *Renderer) renderSingleLine(b *strings.Builder, source string, d Diagnostic) {
	ls := lineStart(source, d.Span.Start)
	le := lineEnd(source, d.Span.Start)
	line := source[ls:le]
	indent := leadingWhitespace(line)
	dedented := line[indent:]

	b.WriteString(dedented)
	b.WriteString("\n")

	pad := d.Span.Start - ls - indent
	if pad < 0 {
		pad = 0
	}
	width := d.Span.Stop - d.Span.Start
	if width < 1 {
		width = 1
	}
	b.WriteString(strings.Repeat(" ", pad))
	b.WriteString(r.pal.underline(underlineRun(width)))
	b.WriteString("\n")
}

// renderMultiLine implements a layout for diagnostics whose span covers
// more than one line, a case left otherwise unspecified: every line the
// span touches is shown behind a │ gutter, with the underline on the
// first line running
// from the span's start column to the line's end, full-width underlines
// on interior lines, and an underline from column 0 to the span's stop
// column on the final line.
func (r *Renderer) renderMultiLine(b *strings.Builder, source string, d Diagnostic) {
	cur := lineStart(source, d.Span.Start)
	first := true
	for {
		le := lineEnd(source, cur)
		line := source[cur:le]
		last := le >= d.Span.Stop

		underlineStart := 0
		if first {
			underlineStart = d.Span.Start - cur
		}
		underlineStop := len(line)
		if last {
			underlineStop = d.Span.Stop - cur
		}
		if underlineStart < 0 {
			underlineStart = 0
		}
		if underlineStart > len(line) {
			underlineStart = len(line)
		}
		if underlineStop > len(line) {
			underlineStop = len(line)
		}
		if underlineStop < underlineStart {
			underlineStop = underlineStart
		}

		b.WriteString(r.pal.gutter("│ "))
		b.WriteString(line)
		b.WriteString("\n")

		b.WriteString(r.pal.gutter("│ "))
		width := underlineStop - underlineStart
		if width < 1 {
			width = 1
		}
		b.WriteString(strings.Repeat(" ", underlineStart))
		b.WriteString(r.pal.underline(underlineRun(width)))
		b.WriteString("\n")

		if last {
			break
		}
		cur = le + 1
		first = false
	}
}

func (r *Renderer) renderNote(b *strings.Builder, note string) {
	for _, line := range strings.Split(note, "\n") {
		b.WriteString(r.pal.gutter("│ "))
		if idx := strings.IndexByte(line, ':'); idx >= 0 {
			b.WriteString(r.pal.highlight(line[:idx+1]))
			b.WriteString(line[idx+1:])
		} else {
			b.WriteString(line)
		}
		b.WriteString("\n")
	}
}
