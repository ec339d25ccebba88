package parser

import (
	"github.com/lylythechosenone/scythe/internal/ast"
	"github.com/lylythechosenone/scythe/internal/diag"
	"github.com/lylythechosenone/scythe/internal/lexer"
	"github.com/lylythechosenone/scythe/internal/span"
)

// parseFlow handles `if`/`while`/`for`/`match`, falling back to
// parseCont otherwise. Grounded on original_source/parse/flow.py's
// Flow.parse.
func (p *Parser) parseFlow(l *lexer.Lexer) ast.Expr {
	tok := p.peek(l)
	id, ok := tok.(lexer.Ident)
	if !ok {
		return p.parseCont(l)
	}
	switch id.Text {
	case "if":
		return p.parseIf(l, id)
	case "while":
		return p.parseWhile(l, id)
	case "for":
		return p.parseFor(l, id)
	case "match":
		return p.parseMatch(l, id)
	default:
		return p.parseCont(l)
	}
}

func (p *Parser) parseIf(l *lexer.Lexer, id lexer.Ident) ast.Expr {
	p.next(l)
	cond := p.parseFlowCondition(l)
	then := p.parseExpr(l)
	var els ast.Expr
	stop := then.Span().Stop
	if t, ok := p.peek(l).(lexer.Ident); ok && t.Text == "else" {
		p.next(l)
		els = p.parseExpr(l)
		stop = els.Span().Stop
	}
	return ast.NewIf(span.Span{Start: id.Span().Start, Stop: stop}, cond, then, els)
}

// parseWhile intentionally does not apply the struct-literal
// backtrack rule to its condition — only if/match conditions get it,
// per original_source/parse/flow.py's Flow.parse (while's condition is
// just a plain Expr.parse call).
func (p *Parser) parseWhile(l *lexer.Lexer, id lexer.Ident) ast.Expr {
	p.next(l)
	cond := p.parseExpr(l)
	body := p.parseExpr(l)
	return ast.NewWhile(span.Span{Start: id.Span().Start, Stop: body.Span().Stop}, cond, body)
}

// parseFor, like parseWhile, never applies the backtrack rule.
func (p *Parser) parseFor(l *lexer.Lexer, id lexer.Ident) ast.Expr {
	p.next(l)
	pattern := p.parsePattern(l)
	tok := p.next(l)
	if in, ok := tok.(lexer.Ident); !ok || in.Text != "in" {
		switch t := tok.(type) {
		case nil:
			p.sink.Push(diag.New("Unexpected end of file", eofSpan(l), "Expected 'in', found end of file instead"))
		default:
			p.sink.Push(diag.New("Unexpected token", t.Span(), "Expected 'in', found this instead"))
		}
	}
	iter := p.parseExpr(l)
	body := p.parseExpr(l)
	return ast.NewFor(span.Span{Start: id.Span().Start, Stop: body.Span().Stop}, pattern, iter, body)
}

func (p *Parser) parseMatch(l *lexer.Lexer, id lexer.Ident) ast.Expr {
	p.next(l)
	cond := p.parseFlowCondition(l)

	tok := p.next(l)
	g, ok := tok.(lexer.Group)
	if !ok || g.Delim != "{}" {
		switch t := tok.(type) {
		case nil:
			p.sink.Push(diag.New("Unexpected end of file", eofSpan(l), "Expected a match body, found end of file instead"))
		default:
			p.sink.Push(diag.New("Unexpected token", t.Span(), "Expected a match body, found this instead"))
		}
		return ast.NewMatch(span.Span{Start: id.Span().Start, Stop: cond.Span().Stop}, cond, nil)
	}

	inner := g.Inner
	var arms []ast.MatchArm
	for p.peek(inner) != nil {
		pat := p.parsePattern(inner)
		arrow := p.next(inner)
		if punct, ok := arrow.(lexer.Punct); !ok || punct.Text != "=>" {
			switch t := arrow.(type) {
			case nil:
				p.sink.Push(diag.New("Unexpected end of file", eofSpan(inner), "Expected '=>', found end of file instead"))
			default:
				p.sink.Push(diag.New("Unexpected token", t.Span(), "Expected '=>', found this instead"))
			}
			break
		}
		body := p.parseExpr(inner)
		arms = append(arms, ast.MatchArm{Pattern: pat, Body: body})

		peeked := p.peek(inner)
		if peeked == nil {
			break
		}
		if punct, ok := peeked.(lexer.Punct); ok && punct.Text == "," {
			p.next(inner)
			continue
		}
		p.sink.Push(diag.New("Unexpected token", peeked.Span(), "Expected a comma, found this instead"))
		break
	}
	return ast.NewMatch(span.Span{Start: id.Span().Start, Stop: g.Span().Stop}, cond, arms)
}

// parseFlowCondition parses an if/match condition into a scratch sink
// so the struct-literal-vs-condition backtrack rule can inspect (and
// possibly discard) whatever diagnostics the speculative parse
// produced before deciding whether a trailing StructInit was actually
// meant as one.
func (p *Parser) parseFlowCondition(l *lexer.Lexer) ast.Expr {
	scratch := diag.NewSink()
	real := p.sink
	p.sink = scratch
	cond := p.parseExpr(l)
	p.sink = real
	return p.fixImproperStructInit(l, cond, scratch)
}

// fixImproperStructInit resolves the ambiguity where a condition
// expression that looks like `path { ... }` collides with the opening
// brace of the surrounding if/match body, so the grammar requires a struct
// literal appearing as the immediate child of specific expression
// shapes (Binary.Rhs, Prefix.Rhs, a suffix op's Base, Let.Value when
// Let.Else is absent, Let.Else unconditionally) to be reinterpreted as
// a bare path followed by the block it actually introduces — unless the
// speculative parse of its field list came back clean, in which case it
// really was meant as a struct literal and a dedicated diagnostic is
// raised instead. Grounded on
// original_source/parse/flow.py's Flow.fix_improper_struct_init.
func (p *Parser) fixImproperStructInit(l *lexer.Lexer, expr ast.Expr, scratch *diag.Sink) ast.Expr {
	replaced, si, found := replaceStructInitChild(expr)
	if !found {
		p.sink.Extend(scratch)
		return expr
	}
	if scratch.Len() > 0 {
		scratch.DropLast()
		p.sink.Extend(scratch)
		l.RewindTo(si.FieldBlockSpan)
		return replaced
	}
	p.sink.Push(diag.New("Struct initializer not allowed here", si.Span(), "A struct literal can't appear directly as an if/match condition"))
	return expr
}

// replaceStructInitChild walks exactly one level into expr looking for
// an immediate-child StructInit, returning a copy of expr with that
// child replaced by its bare Path, the StructInit found, and whether
// anything was found at all.
func replaceStructInitChild(expr ast.Expr) (ast.Expr, ast.StructInit, bool) {
	switch e := expr.(type) {
	case ast.StructInit:
		return e.Ty, e, true
	case ast.Binary:
		if si, ok := e.Rhs.(ast.StructInit); ok {
			e.Rhs = si.Ty
			return e, si, true
		}
	case ast.Prefix:
		if si, ok := e.Rhs.(ast.StructInit); ok {
			e.Rhs = si.Ty
			return e, si, true
		}
	case ast.Member:
		if si, ok := e.Base.(ast.StructInit); ok {
			e.Base = si.Ty
			return e, si, true
		}
	case ast.Offset:
		if si, ok := e.Base.(ast.StructInit); ok {
			e.Base = si.Ty
			return e, si, true
		}
	case ast.Call:
		if si, ok := e.Base.(ast.StructInit); ok {
			e.Base = si.Ty
			return e, si, true
		}
	case ast.Index:
		if si, ok := e.Base.(ast.StructInit); ok {
			e.Base = si.Ty
			return e, si, true
		}
	case ast.Cast:
		if si, ok := e.Base.(ast.StructInit); ok {
			e.Base = si.Ty
			return e, si, true
		}
	case ast.Let:
		if e.Value != nil && e.Else == nil {
			if si, ok := e.Value.(ast.StructInit); ok {
				e.Value = si.Ty
				return e, si, true
			}
		}
		if e.Else != nil {
			if si, ok := e.Else.(ast.StructInit); ok {
				e.Else = si.Ty
				return e, si, true
			}
		}
	}
	return expr, ast.StructInit{}, false
}
