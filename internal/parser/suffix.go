package parser

import (
	"github.com/lylythechosenone/scythe/internal/ast"
	"github.com/lylythechosenone/scythe/internal/diag"
	"github.com/lylythechosenone/scythe/internal/lexer"
	"github.com/lylythechosenone/scythe/internal/span"
)

// parseSuffix parses an atom followed by any number of `.name`,
// `->name`, `(args)`, `[index]`, and `as Ty` suffixes, grounded on
// original_source/parse/suffix.py's Suffix.parse. The original matches
// the cast suffix on a Punct token spelled "as" — but "as" is never
// lexed as punctuation in this keyword-agnostic grammar, only as an
// Ident — so this port matches an Ident whose text is "as" instead,
// which is what actually makes Cast reachable.
func (p *Parser) parseSuffix(l *lexer.Lexer) ast.Expr {
	expr := p.parseAtom(l)
	for {
		tok := p.peek(l)
		switch t := tok.(type) {
		case lexer.Punct:
			switch t.Text {
			case ".":
				p.next(l)
				expr = p.parseMemberSuffix(l, expr)
			case "->":
				p.next(l)
				expr = p.parseOffsetSuffix(l, expr)
			default:
				return expr
			}
		case lexer.Ident:
			if t.Text != "as" {
				return expr
			}
			p.next(l)
			ty := p.parseTy(l)
			expr = ast.NewCast(span.Span{Start: expr.Span().Start, Stop: ty.Span().Stop}, expr, ty)
		case lexer.Group:
			switch t.Delim {
			case "()":
				p.next(l)
				args := p.commaSeparatedExprs(t.Inner)
				if !t.Inner.IsEmpty() {
					p.sink.Push(diag.New("Unexpected tokens", t.Span(), "Expected a closing parenthesis, found extra tokens instead"))
				}
				expr = ast.NewCall(span.Span{Start: expr.Span().Start, Stop: t.Span().Stop}, expr, args)
			case "[]":
				p.next(l)
				index := p.parseExpr(t.Inner)
				if !t.Inner.IsEmpty() {
					p.sink.Push(diag.New("Unexpected tokens", t.Span(), "Expected a closing bracket, found extra tokens instead"))
				}
				expr = ast.NewIndex(span.Span{Start: expr.Span().Start, Stop: t.Span().Stop}, expr, index)
			default:
				return expr
			}
		default:
			return expr
		}
	}
}

func (p *Parser) parseMemberSuffix(l *lexer.Lexer, base ast.Expr) ast.Expr {
	tok := p.next(l)
	switch t := tok.(type) {
	case lexer.Ident:
		return ast.NewMember(span.Span{Start: base.Span().Start, Stop: t.Span().Stop}, base, t.Text)
	case lexer.Int:
		if t.Suffix == "" {
			return ast.NewMember(span.Span{Start: base.Span().Start, Stop: t.Span().Stop}, base, t.Value.String())
		}
		p.sink.Push(diag.New("Unexpected token", t.Span(), "Expected a field name, found this instead"))
		return base
	case nil:
		p.sink.Push(diag.New("Unexpected end of file", eofSpan(l), "Expected a field name, found end of file instead"))
		return base
	default:
		p.sink.Push(diag.New("Unexpected token", t.Span(), "Expected a field name, found this instead"))
		return base
	}
}

func (p *Parser) parseOffsetSuffix(l *lexer.Lexer, base ast.Expr) ast.Expr {
	tok := p.next(l)
	switch t := tok.(type) {
	case lexer.Ident:
		return ast.NewOffset(span.Span{Start: base.Span().Start, Stop: t.Span().Stop}, base, t.Text)
	case lexer.Int:
		if t.Suffix == "" {
			return ast.NewOffset(span.Span{Start: base.Span().Start, Stop: t.Span().Stop}, base, t.Value.String())
		}
		p.sink.Push(diag.New("Unexpected token", t.Span(), "Expected a field name, found this instead"))
		return base
	case nil:
		p.sink.Push(diag.New("Unexpected end of file", eofSpan(l), "Expected a field name, found end of file instead"))
		return base
	default:
		p.sink.Push(diag.New("Unexpected token", t.Span(), "Expected a field name, found this instead"))
		return base
	}
}
