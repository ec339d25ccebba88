package parser

import (
	"math/big"

	"github.com/lylythechosenone/scythe/internal/ast"
	"github.com/lylythechosenone/scythe/internal/diag"
	"github.com/lylythechosenone/scythe/internal/lexer"
	"github.com/lylythechosenone/scythe/internal/span"
)

// continuePath consumes `(:: ident)*` after an already-read leading
// identifier, grounded on original_source/parse/atom.py's
// Atom.continue_path.
func (p *Parser) continuePath(l *lexer.Lexer) []string {
	var segments []string
	for {
		tok := p.peek(l)
		punct, ok := tok.(lexer.Punct)
		if !ok || punct.Text != "::" {
			return segments
		}
		p.next(l)
		tok = p.peek(l)
		switch t := tok.(type) {
		case lexer.Ident:
			p.next(l)
			segments = append(segments, t.Text)
		case nil:
			p.sink.Push(diag.New("Unexpected end of file", eofSpan(l), "Expected an identifier, found end of file instead"))
			return segments
		default:
			p.next(l)
			p.sink.Push(diag.New("Unexpected token", t.Span(), "Expected an identifier, found this instead"))
			return segments
		}
	}
}

// parsePath parses a leading identifier and any `::`-separated
// continuation, always returning an ast.Path (or Unrecoverable on
// failure) — used by `use` items, which never allow a trailing
// struct-init brace.
func (p *Parser) parsePath(l *lexer.Lexer) ast.Expr {
	tok := p.next(l)
	switch t := tok.(type) {
	case lexer.Ident:
		segments := append([]string{t.Text}, p.continuePath(l)...)
		return ast.NewPath(span.Span{Start: t.Span().Start, Stop: l.Offset()}, segments)
	case nil:
		sp := eofSpan(l)
		p.sink.Push(diag.New("Unexpected end of file", sp, "Expected an identifier, found end of file instead"))
		return ast.NewUnrecoverable(sp)
	default:
		p.sink.Push(diag.New("Unexpected token", t.Span(), "Expected an identifier, found this instead"))
		return ast.NewUnrecoverable(t.Span())
	}
}

// parseAtom parses the lowest expression-grammar level: literals,
// identifiers/paths (with the StructInit lookahead), parenthesized
// groups (unit/parenthesized/tuple), and brace groups (Block).
// Grounded on original_source/parse/atom.py's Atom.parse.
func (p *Parser) parseAtom(l *lexer.Lexer) ast.Expr {
	tok := p.next(l)
	switch t := tok.(type) {
	case lexer.Ident:
		segments := append([]string{t.Text}, p.continuePath(l)...)
		pathSpan := span.Span{Start: t.Span().Start, Stop: l.Offset()}
		path := ast.NewPath(pathSpan, segments)

		if peeked := p.peek(l); peeked != nil {
			if g, ok := peeked.(lexer.Group); ok && g.Delim == "{}" {
				p.next(l)
				return p.parseStructInitFields(l, t.Span().Start, path, g)
			}
		}
		if len(segments) > 1 {
			return path
		}
		return ast.NewIdent(t.Span(), t.Text)
	case lexer.String:
		return ast.NewString(t.Span(), t.Value)
	case lexer.Char:
		return ast.NewChar(t.Span(), t.Value)
	case lexer.Int:
		return ast.NewInt(t.Span(), t.Value, t.Suffix)
	case lexer.Float:
		return ast.NewFloat(t.Span(), t.Value, t.Suffix)
	case lexer.Group:
		switch t.Delim {
		case "()":
			return p.parseParenGroup(t)
		case "{}":
			return p.parseBraceGroup(t)
		}
		return ast.NewUnrecoverable(t.Span())
	case nil:
		sp := eofSpan(l)
		p.sink.Push(diag.New("Expected an expression", sp, "Expected an expression, found end of file instead"))
		return ast.NewUnrecoverable(sp)
	default:
		p.sink.Push(diag.New("Expected an expression", t.Span(), "Expected an expression, found this instead"))
		return ast.NewUnrecoverable(t.Span())
	}
}

func (p *Parser) parseStructInitFields(l *lexer.Lexer, start int, path ast.Path, g lexer.Group) ast.Expr {
	inner := g.Inner
	var fields []ast.FieldInit
loop:
	for {
		tok := p.peek(inner)
		if tok == nil {
			break
		}
		next := p.next(inner)
		id, ok := next.(lexer.Ident)
		if !ok {
			p.sink.Push(diag.New("Unexpected token", next.Span(), "Expected an identifier, found this instead"))
			break
		}
		colon := p.next(inner)
		punct, ok := colon.(lexer.Punct)
		if !ok || punct.Text != ":" {
			switch c := colon.(type) {
			case nil:
				p.sink.Push(diag.New("Unexpected end of file", eofSpan(inner), "Expected a colon, found end of file instead"))
			default:
				p.sink.Push(diag.New("Unexpected token", c.Span(), "Expected a colon, found this instead"))
			}
			fields = append(fields, ast.FieldInit{Name: id.Text, NameSpan: id.Span(), Value: ast.NewUnrecoverable(span.Zero)})
			break loop
		}
		value := p.parseExpr(inner)
		fields = append(fields, ast.FieldInit{Name: id.Text, NameSpan: id.Span(), Value: value})

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
	return ast.NewStructInit(span.Span{Start: start, Stop: l.Offset()}, path, g.Span(), fields)
}

func (p *Parser) parseParenGroup(g lexer.Group) ast.Expr {
	inner := g.Inner
	if inner.IsEmpty() {
		return ast.NewTuple(g.Span(), nil)
	}
	expr := p.parseExpr(inner)
	if !inner.IsEmpty() {
		peeked := p.peek(inner)
		if punct, ok := peeked.(lexer.Punct); ok && punct.Text == "," {
			p.next(inner)
			exprs := append([]ast.Expr{expr}, p.commaSeparatedExprs(inner)...)
			return ast.NewTuple(g.Span(), exprs)
		}
		p.sink.Push(diag.New("Unexpected tokens", peeked.Span(), "Expected a closing parenthesis, found this instead"))
	}
	return expr
}

func (p *Parser) parseBraceGroup(g lexer.Group) ast.Expr {
	inner := g.Inner
	var exprs []ast.Expr
	for p.peek(inner) != nil {
		exprs = append(exprs, p.parseSemi(inner))
	}
	return ast.NewBlock(g.Span(), exprs)
}

// commaSeparatedExprs parses a comma-separated list of expressions
// until l is empty, per original_source/parse/expr.py's
// Expr.comma_separated.
func (p *Parser) commaSeparatedExprs(l *lexer.Lexer) []ast.Expr {
	var exprs []ast.Expr
	for p.peek(l) != nil {
		exprs = append(exprs, p.parseExpr(l))
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
	return exprs
}

// bigIntFits reports whether v fits in an unsuffixed array-size
// integer literal (used by the type grammar's array-length parse).
func bigIntFits(v *big.Int) (int64, bool) {
	if !v.IsInt64() {
		return 0, false
	}
	return v.Int64(), true
}
