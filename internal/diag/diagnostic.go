// Package diag models compiler diagnostics and renders them as annotated
// terminal snippets. The shape mirrors malphas-lang's internal/diag
// package (Stage + Severity + Span + Diagnostic); besides Stage and
// Severity it carries only the four fields the source language's Error
// dataclass has: a short header message, a span, a long pointer
// message, and an optional note.
package diag

import "github.com/lylythechosenone/scythe/internal/span"

// Stage identifies which phase of the front end raised a diagnostic.
type Stage int

const (
	StageLexer Stage = iota
	StageParser
)

func (s Stage) String() string {
	switch s {
	case StageLexer:
		return "lexer"
	case StageParser:
		return "parser"
	default:
		return "unknown"
	}
}

// Severity distinguishes the two lexer failure classes from recoverable
// parser diagnostics. Per the taxonomy every lex-stage diagnostic is
// Fatal: it corrupts cursor position tracking badly enough that the
// caller must stop parsing the file after rendering it. Every
// parse-stage diagnostic is Recoverable.
type Severity int

const (
	SeverityRecoverable Severity = iota
	SeverityFatal
)

func (s Severity) String() string {
	if s == SeverityFatal {
		return "fatal"
	}
	return "recoverable"
}

// Diagnostic is a single reportable condition: a short header message, the
// span it points at, a longer explanation shown on the pointer row, and an
// optional note block.
type Diagnostic struct {
	Stage    Stage
	Severity Severity
	Short    string
	Span     span.Span
	Long     string
	Note     string
}

// New builds a recoverable parser diagnostic, the common case.
func New(short string, sp span.Span, long string) Diagnostic {
	return Diagnostic{Stage: StageParser, Severity: SeverityRecoverable, Short: short, Span: sp, Long: long}
}

// NewFatal builds a fatal lexer diagnostic.
func NewFatal(short string, sp span.Span, long string) Diagnostic {
	return Diagnostic{Stage: StageLexer, Severity: SeverityFatal, Short: short, Span: sp, Long: long}
}

// WithNote attaches a note block and returns the diagnostic for chaining.
func (d Diagnostic) WithNote(note string) Diagnostic {
	d.Note = note
	return d
}

// Error lets a fatal Diagnostic be carried as a Go error without losing
// its structure; see lexer.FatalError, which wraps this with juju/errors
// context as it propagates.
func (d Diagnostic) Error() string {
	return d.Short
}

// Sink accumulates diagnostics in source order. It is the "explicit
// diagnostic sink passed by reference into every production" the design
// notes call for: a scratch Sink buffers a speculative sub-parse (the
// struct-literal-vs-condition disambiguation), and is later drained,
// trimmed, or discarded into the real sink depending on what the
// speculative parse decided.
type Sink struct {
	diags []Diagnostic
}

// NewSink returns an empty sink.
func NewSink() *Sink {
	return &Sink{}
}

// Push records a diagnostic.
func (s *Sink) Push(d Diagnostic) {
	s.diags = append(s.diags, d)
}

// Len reports how many diagnostics are currently buffered.
func (s *Sink) Len() int {
	return len(s.diags)
}

// Diagnostics returns the buffered diagnostics in source order. The
// returned slice must not be mutated by the caller.
func (s *Sink) Diagnostics() []Diagnostic {
	return s.diags
}

// DropLast removes the most recently pushed diagnostic, if any. Used by
// the struct-literal backtrack rule to discard the trailing error a
// malformed condition produced once the struct-literal has been
// reinterpreted as a block.
func (s *Sink) DropLast() {
	if len(s.diags) > 0 {
		s.diags = s.diags[:len(s.diags)-1]
	}
}

// Extend appends another sink's diagnostics onto this one, in order.
func (s *Sink) Extend(other *Sink) {
	s.diags = append(s.diags, other.diags...)
}

// Reset discards all buffered diagnostics, leaving the sink empty for
// reuse as a fresh scratch buffer.
func (s *Sink) Reset() {
	s.diags = s.diags[:0]
}
