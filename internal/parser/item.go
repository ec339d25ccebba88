package parser

import (
	"github.com/lylythechosenone/scythe/internal/ast"
	"github.com/lylythechosenone/scythe/internal/diag"
	"github.com/lylythechosenone/scythe/internal/lexer"
	"github.com/lylythechosenone/scythe/internal/span"
)

// parseItem handles `pub`/`fn`/`use`/`mod`/`static`/`const`/`struct`/
// `enum`/`union`, falling back to parseFlow for anything else (a bare
// expression statement). Grounded on original_source/parse/item.py's
// Item.parse.
func (p *Parser) parseItem(l *lexer.Lexer) ast.Expr {
	tok := p.peek(l)
	id, ok := tok.(lexer.Ident)
	if !ok {
		return p.parseFlow(l)
	}

	start := id.Span()
	public := false
	if id.Text == "pub" {
		p.next(l)
		public = true
		tok = p.peek(l)
		id, ok = tok.(lexer.Ident)
		if !ok {
			switch t := tok.(type) {
			case nil:
				p.sink.Push(diag.New("Unexpected end of file", eofSpan(l), "Expected an item after 'pub'"))
			default:
				p.sink.Push(diag.New("Unexpected token", t.Span(), "Expected an item after 'pub'"))
			}
			return ast.NewUnrecoverable(start)
		}
	}

	switch id.Text {
	case "fn":
		return p.parseFunction(l, public, start)
	case "use":
		return p.parseUse(l, public, start)
	case "mod":
		return p.parseMod(l, public, start)
	case "static":
		return p.parseStaticOrConst(l, public, start, false)
	case "const":
		return p.parseStaticOrConst(l, public, start, true)
	case "struct":
		return p.parseStruct(l, public, start)
	case "enum":
		return p.parseEnum(l, public, start)
	case "union":
		return p.parseUnion(l, public, start)
	default:
		if public {
			p.sink.Push(diag.New("Unexpected token", id.Span(), "Expected an item after 'pub'"))
			return ast.NewUnrecoverable(id.Span())
		}
		return p.parseFlow(l)
	}
}

func (p *Parser) expectIdent(l *lexer.Lexer, what string) (lexer.Ident, bool) {
	tok := p.next(l)
	id, ok := tok.(lexer.Ident)
	if !ok {
		switch t := tok.(type) {
		case nil:
			p.sink.Push(diag.New("Unexpected end of file", eofSpan(l), "Expected "+what+", found end of file instead"))
		default:
			p.sink.Push(diag.New("Unexpected token", t.Span(), "Expected "+what+", found this instead"))
		}
	}
	return id, ok
}

func (p *Parser) expectPunct(l *lexer.Lexer, text, what string) bool {
	tok := p.next(l)
	if punct, ok := tok.(lexer.Punct); ok && punct.Text == text {
		return true
	}
	switch t := tok.(type) {
	case nil:
		p.sink.Push(diag.New("Unexpected end of file", eofSpan(l), "Expected "+what+", found end of file instead"))
	default:
		p.sink.Push(diag.New("Unexpected token", t.Span(), "Expected "+what+", found this instead"))
	}
	return false
}

// parseFunction handles `fn name(params) (-> ty)? body`. Unlike
// original_source/parse/item.py's parameter-list loop — which calls
// Pattern.parse/Ty.parse as plain (never yield-from'd) generator
// expressions and so silently drops any diagnostic a malformed
// parameter raises — this port drives both sub-parses for real, so
// their diagnostics reach the enclosing sink.
func (p *Parser) parseFunction(l *lexer.Lexer, public bool, start span.Span) ast.Function {
	nameID, _ := p.expectIdent(l, "a function name")

	tok := p.next(l)
	g, ok := tok.(lexer.Group)
	var params []ast.Param
	if !ok || g.Delim != "()" {
		switch t := tok.(type) {
		case nil:
			p.sink.Push(diag.New("Unexpected end of file", eofSpan(l), "Expected a parameter list, found end of file instead"))
		default:
			p.sink.Push(diag.New("Unexpected token", t.Span(), "Expected a parameter list, found this instead"))
		}
	} else {
		inner := g.Inner
		for p.peek(inner) != nil {
			pattern := p.parsePattern(inner)
			p.expectPunct(inner, ":", "a colon")
			ty := p.parseTy(inner)
			params = append(params, ast.Param{Pattern: pattern, Ty: ty})

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
	}

	var retTy ast.Ty
	if punct, ok := p.peek(l).(lexer.Punct); ok && punct.Text == "->" {
		p.next(l)
		retTy = p.parseTy(l)
	}

	body := p.parseExpr(l)
	return ast.NewFunction(span.Span{Start: start.Start, Stop: body.Span().Stop}, public, nameID.Text, params, retTy, body)
}

// parseUse handles `use path (as alias)?`.
func (p *Parser) parseUse(l *lexer.Lexer, public bool, start span.Span) ast.Use {
	pathExpr := p.parsePath(l)
	var segments []string
	stop := pathExpr.Span().Stop
	if path, ok := pathExpr.(ast.Path); ok {
		segments = path.Segments
	}
	alias := ""
	if id, ok := p.peek(l).(lexer.Ident); ok && id.Text == "as" {
		p.next(l)
		if aliasID, ok := p.expectIdent(l, "an alias"); ok {
			alias = aliasID.Text
			stop = aliasID.Span().Stop
		}
	}
	return ast.NewUse(span.Span{Start: start.Start, Stop: stop}, public, segments, alias)
}

// parseMod handles `mod name;` and `mod name { items }`.
func (p *Parser) parseMod(l *lexer.Lexer, public bool, start span.Span) ast.Item {
	nameID, _ := p.expectIdent(l, "a module name")

	if g, ok := p.peek(l).(lexer.Group); ok && g.Delim == "{}" {
		p.next(l)
		items := p.parseItemList(g.Inner)
		return ast.NewModDef(span.Span{Start: start.Start, Stop: g.Span().Stop}, public, nameID.Text, items)
	}
	stop := nameID.Span().Stop
	if punct, ok := p.peek(l).(lexer.Punct); ok && punct.Text == ";" {
		p.next(l)
		stop = l.Offset()
	}
	return ast.NewModDecl(span.Span{Start: start.Start, Stop: stop}, public, nameID.Text)
}

// parseItemList parses `pub? item ;?` repeatedly until l is empty,
// used for a braced `mod` body.
func (p *Parser) parseItemList(l *lexer.Lexer) []ast.Item {
	var items []ast.Item
	for p.peek(l) != nil {
		expr := p.parseSemi(l)
		if item, ok := expr.(ast.Item); ok {
			items = append(items, item)
			continue
		}
		if semi, ok := expr.(ast.Semi); ok {
			if item, ok := semi.Inner.(ast.Item); ok {
				items = append(items, item)
				continue
			}
		}
		p.sink.Push(diag.New("Unexpected token", expr.Span(), "Expected a declaration, found this instead"))
	}
	return items
}

// parseStaticOrConst handles `static name: ty = value` and
// `const name: ty = value`.
func (p *Parser) parseStaticOrConst(l *lexer.Lexer, public bool, start span.Span, isConst bool) ast.Item {
	nameID, _ := p.expectIdent(l, "a name")
	p.expectPunct(l, ":", "a colon")
	ty := p.parseTy(l)
	p.expectPunct(l, "=", "an equals sign")
	value := p.parseExpr(l)
	sp := span.Span{Start: start.Start, Stop: value.Span().Stop}
	if isConst {
		return ast.NewConst(sp, public, nameID.Text, ty, value)
	}
	return ast.NewStatic(sp, public, nameID.Text, ty, value)
}

// parseFields handles a struct/variant/union body: `()`-delimited
// positional fields, `{}`-delimited named fields, or neither (unit).
// Grounded on original_source/parse/item.py's Fields.parse/Fields.named.
func (p *Parser) parseFields(l *lexer.Lexer) ast.Fields {
	tok := p.peek(l)
	g, ok := tok.(lexer.Group)
	if !ok {
		off := l.Offset()
		return ast.NewUnitFields(span.Span{Start: off, Stop: off})
	}
	switch g.Delim {
	case "()":
		p.next(l)
		tys := p.commaSeparatedTys(g.Inner)
		return ast.NewTupleFields(g.Span(), tys)
	case "{}":
		p.next(l)
		return p.parseNamedFieldsBody(g)
	default:
		off := l.Offset()
		return ast.NewUnitFields(span.Span{Start: off, Stop: off})
	}
}

func (p *Parser) parseNamedFieldsBody(g lexer.Group) ast.NamedFields {
	fields := p.commaSeparatedNamedFields(g.Inner)
	return ast.NewNamedFields(g.Span(), fields)
}

func (p *Parser) commaSeparatedNamedFields(l *lexer.Lexer) []ast.NamedField {
	var fields []ast.NamedField
	for p.peek(l) != nil {
		id, ok := p.expectIdent(l, "a field name")
		if !ok {
			break
		}
		p.expectPunct(l, ":", "a colon")
		ty := p.parseTy(l)
		fields = append(fields, ast.NamedField{Name: id.Text, Ty: ty})

		peeked := p.peek(l)
		if peeked == nil {
			break
		}
		if punct, ok := peeked.(lexer.Punct); ok && punct.Text == "," {
			p.next(l)
			continue
		}
		p.sink.Push(diag.New("Unexpected token", peeked.Span(), "Expected a comma, found this instead"))
		break
	}
	return fields
}

// parseStruct handles `struct name fields`.
func (p *Parser) parseStruct(l *lexer.Lexer, public bool, start span.Span) ast.Struct {
	nameID, _ := p.expectIdent(l, "a struct name")
	fields := p.parseFields(l)
	if _, unit := fields.(ast.UnitFields); unit {
		if punct, ok := p.peek(l).(lexer.Punct); ok && punct.Text == ";" {
			p.next(l)
		}
	}
	sp := span.Span{Start: start.Start, Stop: l.Offset()}
	return ast.NewStruct(sp, public, nameID.Text, fields)
}

// parseEnum handles `enum name { variant fields, ... }`.
func (p *Parser) parseEnum(l *lexer.Lexer, public bool, start span.Span) ast.Enum {
	nameID, _ := p.expectIdent(l, "an enum name")
	tok := p.next(l)
	g, ok := tok.(lexer.Group)
	var variants []ast.Variant
	if !ok || g.Delim != "{}" {
		switch t := tok.(type) {
		case nil:
			p.sink.Push(diag.New("Unexpected end of file", eofSpan(l), "Expected an enum body, found end of file instead"))
		default:
			p.sink.Push(diag.New("Unexpected token", t.Span(), "Expected an enum body, found this instead"))
		}
		return ast.NewEnum(span.Span{Start: start.Start, Stop: l.Offset()}, public, nameID.Text, nil)
	}
	inner := g.Inner
	for p.peek(inner) != nil {
		variantID, ok := p.expectIdent(inner, "a variant name")
		if !ok {
			break
		}
		fields := p.parseFields(inner)
		variants = append(variants, ast.Variant{Name: variantID.Text, Fields: fields})

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
	return ast.NewEnum(span.Span{Start: start.Start, Stop: g.Span().Stop}, public, nameID.Text, variants)
}

// parseUnion handles `union name { named_fields }`; braces are
// mandatory, unlike struct bodies.
func (p *Parser) parseUnion(l *lexer.Lexer, public bool, start span.Span) ast.Union {
	nameID, _ := p.expectIdent(l, "a union name")
	tok := p.next(l)
	g, ok := tok.(lexer.Group)
	if !ok || g.Delim != "{}" {
		switch t := tok.(type) {
		case nil:
			p.sink.Push(diag.New("Unexpected end of file", eofSpan(l), "Expected a union body, found end of file instead"))
		default:
			p.sink.Push(diag.New("Unexpected token", t.Span(), "Expected a union body, found this instead"))
		}
		return ast.NewUnion(span.Span{Start: start.Start, Stop: l.Offset()}, public, nameID.Text, nil)
	}
	fields := p.commaSeparatedNamedFields(g.Inner)
	return ast.NewUnion(span.Span{Start: start.Start, Stop: g.Span().Stop}, public, nameID.Text, fields)
}
