package parser

import (
	"github.com/lylythechosenone/scythe/internal/ast"
	"github.com/lylythechosenone/scythe/internal/lexer"
	"github.com/lylythechosenone/scythe/internal/span"
)

// parseCont handles `return`/`break`/`continue`, falling back to
// parseLet otherwise. Grounded on original_source/parse/cont.py's
// Cont.parse.
func (p *Parser) parseCont(l *lexer.Lexer) ast.Expr {
	tok := p.peek(l)
	id, ok := tok.(lexer.Ident)
	if !ok {
		return p.parseLet(l)
	}
	switch id.Text {
	case "return":
		p.next(l)
		value := p.parseJumpValue(l)
		stop := id.Span().Stop
		if value != nil {
			stop = value.Span().Stop
		}
		return ast.NewReturn(span.Span{Start: id.Span().Start, Stop: stop}, value)
	case "break":
		p.next(l)
		value := p.parseJumpValue(l)
		stop := id.Span().Stop
		if value != nil {
			stop = value.Span().Stop
		}
		return ast.NewBreak(span.Span{Start: id.Span().Start, Stop: stop}, value)
	case "continue":
		p.next(l)
		return ast.NewContinue(id.Span())
	default:
		return p.parseLet(l)
	}
}

// parseJumpValue parses the optional value after return/break: absent
// when the next token is `;` or EOF.
func (p *Parser) parseJumpValue(l *lexer.Lexer) ast.Expr {
	tok := p.peek(l)
	if tok == nil {
		return nil
	}
	if punct, ok := tok.(lexer.Punct); ok && punct.Text == ";" {
		return nil
	}
	return p.parseExpr(l)
}
