package parser

import (
	"github.com/lylythechosenone/scythe/internal/ast"
	"github.com/lylythechosenone/scythe/internal/lexer"
	"github.com/lylythechosenone/scythe/internal/span"
)

// binaryLevel is one step of the precedence ladder: the set of operator
// spellings recognized at this level, mapped to their BinaryOp tag, and
// the next-higher-precedence level to call for each operand. Grounded
// on original_source/parse/binary.py's factor/term/shift/bit_and/
// bit_xor/bit_or/compare/logical_and/logical_or/assign chain.
type binaryLevel struct {
	ops        map[string]ast.BinaryOp
	next       func(p *Parser, l *lexer.Lexer) ast.Expr
	rightAssoc bool
}

var factorOps = map[string]ast.BinaryOp{"*": ast.Mul, "/": ast.Div, "%": ast.Rem}
var termOps = map[string]ast.BinaryOp{"+": ast.Add, "-": ast.Sub}
var shiftOps = map[string]ast.BinaryOp{"<<": ast.Shl, ">>": ast.Shr}
var bitAndOps = map[string]ast.BinaryOp{"&": ast.BitAnd}
var bitXorOps = map[string]ast.BinaryOp{"^": ast.BitXor}
var bitOrOps = map[string]ast.BinaryOp{"|": ast.BitOr}
var compareOps = map[string]ast.BinaryOp{
	"==": ast.Eq, "!=": ast.Ne, "<": ast.Lt, "<=": ast.Le, ">": ast.Gt, ">=": ast.Ge,
}
var logicalAndOps = map[string]ast.BinaryOp{"&&": ast.And}
var logicalOrOps = map[string]ast.BinaryOp{"||": ast.Or}
var assignOps = map[string]ast.BinaryOp{
	"=": ast.Assign, "+=": ast.AddAssign, "-=": ast.SubAssign, "*=": ast.MulAssign,
	"/=": ast.DivAssign, "%=": ast.RemAssign, "&=": ast.BitAndAssign, "|=": ast.BitOrAssign,
	"^=": ast.BitXorAssign, "<<=": ast.ShlAssign, ">>=": ast.ShrAssign,
}

func (p *Parser) parseFactor(l *lexer.Lexer) ast.Expr {
	return p.parseLeftAssoc(l, factorOps, (*Parser).parsePrefix)
}
func (p *Parser) parseTerm(l *lexer.Lexer) ast.Expr {
	return p.parseLeftAssoc(l, termOps, (*Parser).parseFactor)
}
func (p *Parser) parseShift(l *lexer.Lexer) ast.Expr {
	return p.parseLeftAssoc(l, shiftOps, (*Parser).parseTerm)
}
func (p *Parser) parseBitAnd(l *lexer.Lexer) ast.Expr {
	return p.parseLeftAssoc(l, bitAndOps, (*Parser).parseShift)
}
func (p *Parser) parseBitXor(l *lexer.Lexer) ast.Expr {
	return p.parseLeftAssoc(l, bitXorOps, (*Parser).parseBitAnd)
}
func (p *Parser) parseBitOr(l *lexer.Lexer) ast.Expr {
	return p.parseLeftAssoc(l, bitOrOps, (*Parser).parseBitXor)
}
func (p *Parser) parseCompare(l *lexer.Lexer) ast.Expr {
	return p.parseLeftAssoc(l, compareOps, (*Parser).parseBitOr)
}
func (p *Parser) parseLogicalAnd(l *lexer.Lexer) ast.Expr {
	return p.parseLeftAssoc(l, logicalAndOps, (*Parser).parseCompare)
}
func (p *Parser) parseLogicalOr(l *lexer.Lexer) ast.Expr {
	return p.parseLeftAssoc(l, logicalOrOps, (*Parser).parseLogicalAnd)
}

// parseAssign is right-associative: the rhs recurses into parseAssign
// itself, matching original_source/parse/binary.py's Binary.assign.
func (p *Parser) parseAssign(l *lexer.Lexer) ast.Expr {
	lhs := p.parseLogicalOr(l)
	tok := p.peek(l)
	punct, ok := tok.(lexer.Punct)
	if !ok {
		return lhs
	}
	op, ok := assignOps[punct.Text]
	if !ok {
		return lhs
	}
	p.next(l)
	rhs := p.parseAssign(l)
	return ast.NewBinary(span.Span{Start: lhs.Span().Start, Stop: rhs.Span().Stop}, op, lhs, rhs)
}

// parseLeftAssoc implements one left-associative ladder level: parse
// one operand via next, then loop consuming any operator in ops and
// folding in another operand.
func (p *Parser) parseLeftAssoc(l *lexer.Lexer, ops map[string]ast.BinaryOp, next func(p *Parser, l *lexer.Lexer) ast.Expr) ast.Expr {
	expr := next(p, l)
	for {
		tok := p.peek(l)
		punct, ok := tok.(lexer.Punct)
		if !ok {
			return expr
		}
		op, ok := ops[punct.Text]
		if !ok {
			return expr
		}
		p.next(l)
		rhs := next(p, l)
		expr = ast.NewBinary(span.Span{Start: expr.Span().Start, Stop: rhs.Span().Stop}, op, expr, rhs)
	}
}

// parseBinary is the ladder's entry point, matching
// original_source/parse/binary.py's Binary.parse.
func (p *Parser) parseBinary(l *lexer.Lexer) ast.Expr {
	return p.parseAssign(l)
}
