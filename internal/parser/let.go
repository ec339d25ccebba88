package parser

import (
	"github.com/lylythechosenone/scythe/internal/ast"
	"github.com/lylythechosenone/scythe/internal/lexer"
	"github.com/lylythechosenone/scythe/internal/span"
)

// parseLet handles `let pattern (: ty)? (= value (else else_)?)?`,
// falling back to parseBinary otherwise. Grounded on
// original_source/parse/let.py's Let.parse.
func (p *Parser) parseLet(l *lexer.Lexer) ast.Expr {
	tok := p.peek(l)
	id, ok := tok.(lexer.Ident)
	if !ok || id.Text != "let" {
		return p.parseBinary(l)
	}
	p.next(l)
	pattern := p.parsePattern(l)

	var ty ast.Ty
	if t, ok := p.peek(l).(lexer.Punct); ok && t.Text == ":" {
		p.next(l)
		ty = p.parseTy(l)
	}

	var value, els ast.Expr
	if t, ok := p.peek(l).(lexer.Punct); ok && t.Text == "=" {
		p.next(l)
		value = p.parseExpr(l)
		if t, ok := p.peek(l).(lexer.Ident); ok && t.Text == "else" {
			p.next(l)
			els = p.parseExpr(l)
		}
	}

	stop := pattern.Span().Stop
	switch {
	case els != nil:
		stop = els.Span().Stop
	case value != nil:
		stop = value.Span().Stop
	case ty != nil:
		stop = ty.Span().Stop
	}
	return ast.NewLet(span.Span{Start: id.Span().Start, Stop: stop}, pattern, ty, value, els)
}
