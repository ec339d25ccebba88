// Package parser implements the recursive-descent/Pratt parser: a
// family of productions, each consuming tokens from a *lexer.Lexer and
// pushing any diagnostics it raises into a shared sink rather than
// aborting, so a single file can yield many diagnostics and still
// produce a best-effort AST. Grounded on original_source/parse/*.py
// for grammar and recovery shape; malphas-lang's internal/parser
// package covers a generics/traits-aware grammar this language does
// not have, so only its small mechanical idiom of panicking on a truly
// fatal condition carries over.
package parser

import (
	"github.com/juju/loggo"
	"github.com/lylythechosenone/scythe/internal/ast"
	"github.com/lylythechosenone/scythe/internal/diag"
	"github.com/lylythechosenone/scythe/internal/lexer"
	"github.com/lylythechosenone/scythe/internal/span"
)

var logger = loggo.GetLogger("scythe.parser")

// Parser holds the diagnostic sink productions push into. It carries no
// lexer state of its own — every production takes the *lexer.Lexer it
// should read from explicitly, since a single parse descends into many
// distinct sub-lexers (one per Group token) and must never confuse
// which cursor it is advancing.
type Parser struct {
	sink *diag.Sink
}

// New returns a Parser that reports diagnostics into sink.
func New(sink *diag.Sink) *Parser {
	return &Parser{sink: sink}
}

// fatalSignal carries a lex-stage FatalError up to Parse's recover,
// mirroring the uncaught Python exception the original relies on to
// abort a file after a lexer failure: a raised exceptional condition
// the top-level driver catches once. Using panic/recover
// for this one, genuinely exceptional path (not for ordinary control
// flow) follows the same internal idiom the standard library itself
// uses in encoding/json and text/template.
type fatalSignal struct {
	err error
}

func (p *Parser) next(l *lexer.Lexer) lexer.Token {
	tok, err := l.Next()
	if err != nil {
		panic(fatalSignal{err})
	}
	return tok
}

func (p *Parser) peek(l *lexer.Lexer) lexer.Token {
	tok, err := l.Peek()
	if err != nil {
		panic(fatalSignal{err})
	}
	return tok
}

func eofSpan(l *lexer.Lexer) span.Span {
	off := l.Offset()
	return span.Span{Start: off, Stop: off + 1}
}

// Parse lexes and parses a complete source file, returning the parsed
// items, every recoverable diagnostic collected along the way, and a
// non-nil fatal error if a lex-stage failure aborted parsing.
func Parse(source string) (items ast.Items, diags []diag.Diagnostic, fatalErr error) {
	sink := diag.NewSink()
	p := New(sink)
	l := lexer.New(source)

	defer func() {
		if r := recover(); r != nil {
			fs, ok := r.(fatalSignal)
			if !ok {
				panic(r)
			}
			fatalErr = fs.err
			diags = sink.Diagnostics()
		}
	}()

	items = p.parseItems(l)
	diags = sink.Diagnostics()
	return
}

// parseItems consumes top-level items until l is empty, matching
// original_source/parse/item.py's Items.parse.
func (p *Parser) parseItems(l *lexer.Lexer) ast.Items {
	logger.Tracef("parseItems: starting at offset %d", l.Offset())
	var items []ast.Item
	for {
		tok := p.peek(l)
		if tok == nil {
			break
		}
		expr := p.parseSemi(l)
		if item, ok := expr.(ast.Item); ok {
			items = append(items, item)
		} else if semi, ok := expr.(ast.Semi); ok {
			if item, ok := semi.Inner.(ast.Item); ok {
				items = append(items, item)
			} else {
				p.sink.Push(diag.New("Unexpected token", expr.Span(), "Expected a declaration, found this instead"))
			}
		} else {
			p.sink.Push(diag.New("Unexpected token", expr.Span(), "Expected a declaration, found this instead"))
		}
	}
	var sp span.Span
	if len(items) > 0 {
		sp = span.Join(items[0].Span(), items[len(items)-1].Span())
	} else {
		off := l.Offset()
		sp = span.Span{Start: off, Stop: off}
	}
	return ast.NewItems(sp, items)
}
