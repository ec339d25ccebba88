package parser

import (
	"github.com/lylythechosenone/scythe/internal/ast"
	"github.com/lylythechosenone/scythe/internal/lexer"
	"github.com/lylythechosenone/scythe/internal/span"
)

// prefixOps maps each unary operator's punctuation spelling to its
// ast.PrefixOp tag, grounded on original_source/parse/prefix.py's
// Prefix.parse match arms.
var prefixOps = map[string]ast.PrefixOp{
	"-": ast.Neg,
	"!": ast.Not,
	"+": ast.Pos,
	"*": ast.Deref,
	"&": ast.Ref,
}

// parsePrefix parses a right-associative chain of unary operators,
// bottoming out at parseSuffix once no more prefix punctuation remains.
func (p *Parser) parsePrefix(l *lexer.Lexer) ast.Expr {
	tok := p.peek(l)
	if punct, ok := tok.(lexer.Punct); ok {
		if op, ok := prefixOps[punct.Text]; ok {
			p.next(l)
			rhs := p.parsePrefix(l)
			return ast.NewPrefix(span.Span{Start: punct.Span().Start, Stop: rhs.Span().Stop}, op, rhs)
		}
	}
	return p.parseSuffix(l)
}
