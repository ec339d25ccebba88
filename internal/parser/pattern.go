package parser

import (
	"math/big"

	"github.com/lylythechosenone/scythe/internal/ast"
	"github.com/lylythechosenone/scythe/internal/diag"
	"github.com/lylythechosenone/scythe/internal/lexer"
	"github.com/lylythechosenone/scythe/internal/span"
)

// parsePattern parses a binding pattern. Ident/Ignore/Tuple are ported
// directly from original_source/parse/pattern.py's Pattern.parse;
// Struct and Value have no original algorithm to port from, since that
// file's own default case is an unreached `raise NotImplementedError` —
// their parse logic here is designed by analogy to atom.go's
// StructInit field loop and ordinary literal/path parsing.
func (p *Parser) parsePattern(l *lexer.Lexer) ast.Pattern {
	tok := p.next(l)
	switch t := tok.(type) {
	case lexer.Ident:
		if t.Text == "_" {
			return ast.NewIgnorePattern(t.Span())
		}
		segments := append([]string{t.Text}, p.continuePath(l)...)
		pathSpan := span.Span{Start: t.Span().Start, Stop: l.Offset()}
		if peeked := p.peek(l); peeked != nil {
			if g, ok := peeked.(lexer.Group); ok && g.Delim == "{}" {
				p.next(l)
				return p.parseStructPatternFields(l, t.Span().Start, ast.NewPath(pathSpan, segments), g)
			}
		}
		if len(segments) > 1 {
			path := ast.NewPath(pathSpan, segments)
			return ast.NewValuePattern(pathSpan, path)
		}
		return ast.NewIdentPattern(t.Span(), t.Text)
	case lexer.String:
		return ast.NewValuePattern(t.Span(), ast.NewString(t.Span(), t.Value))
	case lexer.Char:
		return ast.NewValuePattern(t.Span(), ast.NewChar(t.Span(), t.Value))
	case lexer.Int:
		return ast.NewValuePattern(t.Span(), ast.NewInt(t.Span(), t.Value, t.Suffix))
	case lexer.Float:
		return ast.NewValuePattern(t.Span(), ast.NewFloat(t.Span(), t.Value, t.Suffix))
	case lexer.Punct:
		if t.Text == "-" {
			if pat, ok := p.parseNegativeLiteralPattern(l, t); ok {
				return pat
			}
		}
		p.sink.Push(diag.New("Expected a pattern", t.Span(), "Expected a pattern, found this instead"))
		return ast.NewIgnorePattern(t.Span())
	case lexer.Group:
		if t.Delim == "()" {
			return p.parseTuplePattern(t)
		}
		p.sink.Push(diag.New("Expected a pattern", t.Span(), "Expected a pattern, found this instead"))
		return ast.NewIgnorePattern(t.Span())
	case nil:
		sp := eofSpan(l)
		p.sink.Push(diag.New("Expected a pattern", sp, "Expected a pattern, found end of file instead"))
		return ast.NewIgnorePattern(sp)
	default:
		p.sink.Push(diag.New("Expected a pattern", t.Span(), "Expected a pattern, found this instead"))
		return ast.NewIgnorePattern(t.Span())
	}
}

func (p *Parser) parseNegativeLiteralPattern(l *lexer.Lexer, minus lexer.Punct) (ast.Pattern, bool) {
	tok := p.next(l)
	switch it := tok.(type) {
	case lexer.Int:
		val := new(big.Int).Neg(it.Value)
		sp := span.Span{Start: minus.Span().Start, Stop: it.Span().Stop}
		return ast.NewValuePattern(sp, ast.NewInt(sp, val, it.Suffix)), true
	case lexer.Float:
		sp := span.Span{Start: minus.Span().Start, Stop: it.Span().Stop}
		return ast.NewValuePattern(sp, ast.NewFloat(sp, -it.Value, it.Suffix)), true
	default:
		return nil, false
	}
}

func (p *Parser) parseTuplePattern(g lexer.Group) ast.Pattern {
	inner := g.Inner
	patterns := p.commaSeparatedPatterns(inner)
	if !inner.IsEmpty() {
		p.sink.Push(diag.New("Unexpected tokens", g.Span(), "Expected a closing parenthesis, found extra tokens instead"))
	}
	return ast.NewTuplePattern(g.Span(), patterns)
}

func (p *Parser) commaSeparatedPatterns(l *lexer.Lexer) []ast.Pattern {
	var patterns []ast.Pattern
	for p.peek(l) != nil {
		patterns = append(patterns, p.parsePattern(l))
		peeked := p.peek(l)
		if peeked == nil {
			continue
		}
		if punct, ok := peeked.(lexer.Punct); ok && punct.Text == "," {
			p.next(l)
		} else {
			p.sink.Push(diag.New("Unexpected token", peeked.Span(), "Expected a comma, found this instead"))
		}
	}
	return patterns
}

// parseStructPatternFields parses `{ name (: pattern)?, ... }`, where a
// bare `name` is shorthand for `name: name`.
func (p *Parser) parseStructPatternFields(l *lexer.Lexer, start int, ty ast.Path, g lexer.Group) ast.Pattern {
	inner := g.Inner
	var fields []ast.FieldPattern
	for p.peek(inner) != nil {
		tok := p.next(inner)
		id, ok := tok.(lexer.Ident)
		if !ok {
			switch t := tok.(type) {
			case nil:
				p.sink.Push(diag.New("Unexpected end of file", eofSpan(inner), "Expected a field name, found end of file instead"))
			default:
				p.sink.Push(diag.New("Unexpected token", t.Span(), "Expected a field name, found this instead"))
			}
			break
		}
		var fieldPattern ast.Pattern
		if colon, ok := p.peek(inner).(lexer.Punct); ok && colon.Text == ":" {
			p.next(inner)
			fieldPattern = p.parsePattern(inner)
		} else {
			fieldPattern = ast.NewIdentPattern(id.Span(), id.Text)
		}
		fields = append(fields, ast.FieldPattern{Name: id.Text, Pattern: fieldPattern})

		peeked := p.peek(inner)
		if peeked == nil {
			break
		}
		if punct, ok := peeked.(lexer.Punct); ok && punct.Text == "," {
			p.next(inner)
			continue
		}
		p.sink.Push(diag.New("Unexpected token", peeked.Span(), "Expected a comma or closing brace, found this instead"))
		break
	}
	return ast.NewStructPattern(span.Span{Start: start, Stop: l.Offset()}, ty, fields)
}
