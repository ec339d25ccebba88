// Package span defines the byte-range location primitive shared by the
// lexer, parser, AST, and diagnostics. Line and column numbers are never
// stored here; they are derived from a Span only when a diagnostic is
// rendered.
package span

import "fmt"

// Span is a half-open byte range [Start, Stop) into an immutable UTF-8
// source buffer.
type Span struct {
	Start int
	Stop  int
}

// Zero is the span of an empty, unset range at the start of a buffer.
var Zero = Span{}

// Valid reports whether the span is well-formed: Start <= Stop.
func (s Span) Valid() bool {
	return s.Start <= s.Stop
}

// Len returns the number of bytes the span covers.
func (s Span) Len() int {
	return s.Stop - s.Start
}

// Join returns the smallest span covering both a and b.
func Join(a, b Span) Span {
	start := a.Start
	if b.Start < start {
		start = b.Start
	}
	stop := a.Stop
	if b.Stop > stop {
		stop = b.Stop
	}
	return Span{Start: start, Stop: stop}
}

func (s Span) String() string {
	return fmt.Sprintf("%d..%d", s.Start, s.Stop)
}
