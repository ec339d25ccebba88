package parser

import (
	"github.com/lylythechosenone/scythe/internal/ast"
	"github.com/lylythechosenone/scythe/internal/lexer"
	"github.com/lylythechosenone/scythe/internal/span"
)

// parseExpr is the full expression grammar's entry point, descending
// through items, then control flow, then let/jump, then the binary
// ladder, then prefix/suffix/atom.
func (p *Parser) parseExpr(l *lexer.Lexer) ast.Expr {
	return p.parseItem(l)
}

// parseSemi wraps a parsed item/expression in Semi when a trailing `;`
// follows, matching original_source/parse/semi.py's Semi.parse.
func (p *Parser) parseSemi(l *lexer.Lexer) ast.Expr {
	base := p.parseItem(l)
	if punct, ok := p.peek(l).(lexer.Punct); ok && punct.Text == ";" {
		p.next(l)
		return ast.NewSemi(span.Span{Start: base.Span().Start, Stop: l.Offset()}, base)
	}
	return base
}
