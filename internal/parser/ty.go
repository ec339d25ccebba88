package parser

import (
	"github.com/lylythechosenone/scythe/internal/ast"
	"github.com/lylythechosenone/scythe/internal/diag"
	"github.com/lylythechosenone/scythe/internal/lexer"
	"github.com/lylythechosenone/scythe/internal/span"
)

// parseTy parses a type expression. Grounded on
// original_source/parse/ty.py's Ty.parse, but checks the closed
// primitive-name set before falling back to a path, fixing the dead
// primitive-name arms the original's catch-all Ident case shadows (see
// the ast.Ty doc comment).
func (p *Parser) parseTy(l *lexer.Lexer) ast.Ty {
	tok := p.next(l)
	switch t := tok.(type) {
	case lexer.Ident:
		if ast.IsPrimitiveTyName(t.Text) {
			return primitiveTy(t.Span(), t.Text)
		}
		segments := append([]string{t.Text}, p.continuePath(l)...)
		return ast.NewPathTy(span.Span{Start: t.Span().Start, Stop: l.Offset()}, segments)
	case lexer.Punct:
		if t.Text == "*" {
			elem := p.parseTy(l)
			return ast.NewPtrTy(span.Span{Start: t.Span().Start, Stop: elem.Span().Stop}, elem)
		}
		p.sink.Push(diag.New("Expected a type", t.Span(), "Expected a type, found this instead"))
		return ast.NewUnrecoverableTy(t.Span())
	case lexer.Group:
		switch t.Delim {
		case "()":
			return p.parseTupleTy(t)
		case "[]":
			return p.parseArrayOrSliceTy(t)
		}
		p.sink.Push(diag.New("Expected a type", t.Span(), "Expected a type, found this instead"))
		return ast.NewUnrecoverableTy(t.Span())
	case nil:
		sp := eofSpan(l)
		p.sink.Push(diag.New("Expected a type", sp, "Expected a type, found end of file instead"))
		return ast.NewUnrecoverableTy(sp)
	default:
		p.sink.Push(diag.New("Expected a type", t.Span(), "Expected a type, found this instead"))
		return ast.NewUnrecoverableTy(t.Span())
	}
}

func primitiveTy(sp span.Span, name string) ast.Ty {
	switch name {
	case "i8":
		return ast.NewIntTy(sp, 8, true)
	case "i16":
		return ast.NewIntTy(sp, 16, true)
	case "i32":
		return ast.NewIntTy(sp, 32, true)
	case "i64":
		return ast.NewIntTy(sp, 64, true)
	case "i128":
		return ast.NewIntTy(sp, 128, true)
	case "u8":
		return ast.NewIntTy(sp, 8, false)
	case "u16":
		return ast.NewIntTy(sp, 16, false)
	case "u32":
		return ast.NewIntTy(sp, 32, false)
	case "u64":
		return ast.NewIntTy(sp, 64, false)
	case "u128":
		return ast.NewIntTy(sp, 128, false)
	case "f32":
		return ast.NewFloatTy(sp, 32)
	case "f64":
		return ast.NewFloatTy(sp, 64)
	case "str":
		return ast.NewStrTy(sp)
	case "bool":
		return ast.NewBoolTy(sp)
	case "char":
		return ast.NewCharTy(sp)
	case "usize":
		return ast.NewSizeTy(sp, false)
	case "isize":
		return ast.NewSizeTy(sp, true)
	case "Self":
		return ast.NewSelfTy(sp)
	default:
		return ast.NewUnrecoverableTy(sp)
	}
}

func (p *Parser) parseTupleTy(g lexer.Group) ast.Ty {
	inner := g.Inner
	if inner.IsEmpty() {
		return ast.NewUnitTy(g.Span())
	}
	first := p.parseTy(inner)
	if !inner.IsEmpty() {
		if punct, ok := p.peek(inner).(lexer.Punct); ok && punct.Text == "," {
			p.next(inner)
			tys := append([]ast.Ty{first}, p.commaSeparatedTys(inner)...)
			return ast.NewTupleTy(g.Span(), tys)
		}
		p.sink.Push(diag.New("Unexpected tokens", g.Span(), "Expected a closing parenthesis, found extra tokens instead"))
	}
	return first
}

func (p *Parser) commaSeparatedTys(l *lexer.Lexer) []ast.Ty {
	var tys []ast.Ty
	for p.peek(l) != nil {
		tys = append(tys, p.parseTy(l))
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
	return tys
}

// parseArrayOrSliceTy disambiguates `[Ty]` (SliceTy) from `[Ty; N]`
// (ArrayTy) by checking for a trailing `;` followed by an unsuffixed
// integer literal, per original_source/parse/ty.py's Ty.parse `[]`
// group arm.
func (p *Parser) parseArrayOrSliceTy(g lexer.Group) ast.Ty {
	inner := g.Inner
	elem := p.parseTy(inner)
	if inner.IsEmpty() {
		return ast.NewSliceTy(g.Span(), elem)
	}
	if punct, ok := p.peek(inner).(lexer.Punct); ok && punct.Text == ";" {
		p.next(inner)
		tok := p.next(inner)
		if intTok, ok := tok.(lexer.Int); ok && intTok.Suffix == "" {
			size, fits := bigIntFits(intTok.Value)
			if fits {
				return ast.NewArrayTy(g.Span(), elem, size)
			}
		}
		p.sink.Push(diag.New("Invalid array length", g.Span(), "Expected an unsuffixed integer literal for the array length"))
		return ast.NewArrayTy(g.Span(), elem, 0)
	}
	p.sink.Push(diag.New("Unexpected tokens", g.Span(), "Expected ']' or '; length]', found extra tokens instead"))
	return ast.NewSliceTy(g.Span(), elem)
}
