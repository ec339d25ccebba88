// Package ast defines a tagged-variant AST: Expr, Pattern, Ty, Item,
// and Fields are each a small interface with a private marker method,
// with one concrete struct per variant carrying its own span and
// children. Grounded on malphas-lang's internal/ast/*.go idiom
// (private span field, Span() getter, New<Type> constructor) and on
// original_source/parse/*.py for the actual variant set, which this
// grammar's much smaller surface (no generics, traits, effects) lets
// fit in far fewer files than malphas-lang's ast package.
package ast

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/lylythechosenone/scythe/internal/span"
)

// Expr is the tagged-variant interface for every expression node,
// including item and binding forms: items are grouped under the
// Expr variant list since an item production can be reached from the
// same ladder a bare expression statement is.
type Expr interface {
	Span() span.Span
	isExpr()
}

type exprBase struct {
	span span.Span
}

func (e exprBase) Span() span.Span { return e.span }
func (exprBase) isExpr()           {}

// Ident is a bare, unqualified name used as an expression.
type Ident struct {
	exprBase
	Name string
}

func NewIdent(sp span.Span, name string) Ident {
	return Ident{exprBase{sp}, name}
}

func (e Ident) String() string { return e.Name }

// Path is a `::`-separated sequence of identifiers.
type Path struct {
	exprBase
	Segments []string
}

func NewPath(sp span.Span, segments []string) Path {
	return Path{exprBase{sp}, segments}
}

func (e Path) String() string { return strings.Join(e.Segments, "::") }

// String is a decoded string literal.
type String struct {
	exprBase
	Value string
}

func NewString(sp span.Span, value string) String {
	return String{exprBase{sp}, value}
}

func (e String) String() string { return fmt.Sprintf("%q", e.Value) }

// Char is a decoded character literal holding exactly one scalar value.
type Char struct {
	exprBase
	Value rune
}

func NewChar(sp span.Span, value rune) Char {
	return Char{exprBase{sp}, value}
}

func (e Char) String() string { return fmt.Sprintf("'%c'", e.Value) }

// Int is an arbitrary-precision integer literal with an optional
// size/signedness suffix.
type Int struct {
	exprBase
	Value  *big.Int
	Suffix string // "" when absent
}

func NewInt(sp span.Span, value *big.Int, suffix string) Int {
	return Int{exprBase{sp}, value, suffix}
}

func (e Int) String() string { return e.Value.String() }

// Float is a floating-point literal with an optional f32/f64 suffix.
type Float struct {
	exprBase
	Value  float64
	Suffix string // "" when absent
}

func NewFloat(sp span.Span, value float64, suffix string) Float {
	return Float{exprBase{sp}, value, suffix}
}

func (e Float) String() string { return fmt.Sprintf("%g", e.Value) }

// Block is a brace-delimited sequence of statements, the last of which
// (if not wrapped in Semi) is the block's value.
type Block struct {
	exprBase
	Exprs []Expr
}

func NewBlock(sp span.Span, exprs []Expr) Block {
	return Block{exprBase{sp}, exprs}
}

func (e Block) String() string {
	parts := make([]string, len(e.Exprs))
	for i, x := range e.Exprs {
		parts[i] = fmt.Sprint(x)
	}
	if len(e.Exprs) > 2 {
		return "{\n    " + strings.Join(parts, "\n    ") + "\n}"
	}
	return "{ " + strings.Join(parts, " ") + " }"
}

// Tuple is a parenthesized, comma-separated expression list with at
// least one comma (a single expression with no trailing comma is just
// that expression, not a one-element Tuple).
type Tuple struct {
	exprBase
	Exprs []Expr
}

func NewTuple(sp span.Span, exprs []Expr) Tuple {
	return Tuple{exprBase{sp}, exprs}
}

func (e Tuple) String() string {
	parts := make([]string, len(e.Exprs))
	for i, x := range e.Exprs {
		parts[i] = fmt.Sprint(x)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// FieldInit is one `name: expr` pair inside a StructInit.
type FieldInit struct {
	Name     string
	NameSpan span.Span
	Value    Expr
}

// StructInit is `Path { name: expr, ... }`.
type StructInit struct {
	exprBase
	Ty            Path
	FieldBlockSpan span.Span
	Fields        []FieldInit
}

func NewStructInit(sp span.Span, ty Path, fieldBlockSpan span.Span, fields []FieldInit) StructInit {
	return StructInit{exprBase{sp}, ty, fieldBlockSpan, fields}
}

func (e StructInit) String() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = fmt.Sprintf("%s: %s", f.Name, f.Value)
	}
	return fmt.Sprintf("%s {%s}", e.Ty, strings.Join(parts, ", "))
}

// Unrecoverable is a placeholder left where a recoverable parse error
// occurred, so the enclosing production can keep going.
type Unrecoverable struct {
	exprBase
}

func NewUnrecoverable(sp span.Span) Unrecoverable {
	return Unrecoverable{exprBase{sp}}
}

func (Unrecoverable) String() string { return "{error}" }

// Semi wraps an expression consumed as a statement (followed by `;`),
// distinguishing it from the same expression used as a block's trailing
// value.
type Semi struct {
	exprBase
	Inner Expr
}

func NewSemi(sp span.Span, inner Expr) Semi {
	return Semi{exprBase{sp}, inner}
}

func (e Semi) String() string { return fmt.Sprintf("%s;", e.Inner) }

// BinaryOp identifies which of the 29 binary/assignment operators a
// Binary node applies. One struct with an op tag, rather than 29
// near-identical Go types, is the idiomatic Go realization of a node
// discriminated by an enum tag; original_source/parse/
// binary.py instead gives each operator its own dataclass subclassing
// Binary, which this port collapses into this single tagged type.
type BinaryOp int

const (
	Add BinaryOp = iota
	Sub
	Mul
	Div
	Rem
	Eq
	Ne
	Lt
	Le
	Gt
	Ge
	And
	Or
	BitAnd
	BitOr
	BitXor
	Shl
	Shr
	Assign
	AddAssign
	SubAssign
	MulAssign
	DivAssign
	RemAssign
	BitAndAssign
	BitOrAssign
	BitXorAssign
	ShlAssign
	ShrAssign
)

var binaryOpText = map[BinaryOp]string{
	Add: "+", Sub: "-", Mul: "*", Div: "/", Rem: "%",
	Eq: "==", Ne: "!=", Lt: "<", Le: "<=", Gt: ">", Ge: ">=",
	And: "&&", Or: "||",
	BitAnd: "&", BitOr: "|", BitXor: "^",
	Shl: "<<", Shr: ">>",
	Assign: "=",
	AddAssign: "+=", SubAssign: "-=", MulAssign: "*=", DivAssign: "/=", RemAssign: "%=",
	BitAndAssign: "&=", BitOrAssign: "|=", BitXorAssign: "^=",
	ShlAssign: "<<=", ShrAssign: ">>=",
}

func (op BinaryOp) String() string { return binaryOpText[op] }

// Binary is a two-operand expression; Op selects which operator.
type Binary struct {
	exprBase
	Op       BinaryOp
	Lhs, Rhs Expr
}

func NewBinary(sp span.Span, op BinaryOp, lhs, rhs Expr) Binary {
	return Binary{exprBase{sp}, op, lhs, rhs}
}

func (e Binary) String() string { return fmt.Sprintf("(%s %s %s)", e.Lhs, e.Op, e.Rhs) }

// PrefixOp identifies a unary prefix operator.
type PrefixOp int

const (
	Neg PrefixOp = iota
	Not
	Pos
	Deref
	Ref
)

var prefixOpText = map[PrefixOp]string{
	Neg: "-", Not: "!", Pos: "+", Deref: "*", Ref: "&",
}

func (op PrefixOp) String() string { return prefixOpText[op] }

// Prefix is a unary prefix expression.
type Prefix struct {
	exprBase
	Op  PrefixOp
	Rhs Expr
}

func NewPrefix(sp span.Span, op PrefixOp, rhs Expr) Prefix {
	return Prefix{exprBase{sp}, op, rhs}
}

func (e Prefix) String() string { return fmt.Sprintf("%s(%s)", e.Op, e.Rhs) }

// Member is `base.name`.
type Member struct {
	exprBase
	Base Expr
	Name string
}

func NewMember(sp span.Span, base Expr, name string) Member {
	return Member{exprBase{sp}, base, name}
}

func (e Member) String() string { return fmt.Sprintf("(%s).%s", e.Base, e.Name) }

// Offset is `base->name`.
type Offset struct {
	exprBase
	Base Expr
	Name string
}

func NewOffset(sp span.Span, base Expr, name string) Offset {
	return Offset{exprBase{sp}, base, name}
}

func (e Offset) String() string { return fmt.Sprintf("(%s)->%s", e.Base, e.Name) }

// Call is `base(args...)`.
type Call struct {
	exprBase
	Base Expr
	Args []Expr
}

func NewCall(sp span.Span, base Expr, args []Expr) Call {
	return Call{exprBase{sp}, base, args}
}

func (e Call) String() string {
	parts := make([]string, len(e.Args))
	for i, a := range e.Args {
		parts[i] = fmt.Sprint(a)
	}
	return fmt.Sprintf("(%s)(%s)", e.Base, strings.Join(parts, ", "))
}

// Index is `base[index]`.
type Index struct {
	exprBase
	Base  Expr
	Index Expr
}

func NewIndex(sp span.Span, base, index Expr) Index {
	return Index{exprBase{sp}, base, index}
}

func (e Index) String() string { return fmt.Sprintf("(%s)[%s]", e.Base, e.Index) }

// Cast is `base as Ty`.
type Cast struct {
	exprBase
	Base Expr
	To   Ty
}

func NewCast(sp span.Span, base Expr, to Ty) Cast {
	return Cast{exprBase{sp}, base, to}
}

func (e Cast) String() string { return fmt.Sprintf("(%s as %s)", e.Base, e.To) }

// If is a conditional expression; Else is nil when absent.
type If struct {
	exprBase
	Cond, Then, Else Expr
}

func NewIf(sp span.Span, cond, then, els Expr) If {
	return If{exprBase{sp}, cond, then, els}
}

func (e If) String() string {
	if e.Else == nil {
		return fmt.Sprintf("(if %s %s)", e.Cond, e.Then)
	}
	return fmt.Sprintf("(if %s %s else %s)", e.Cond, e.Then, e.Else)
}

// While is a condition-guarded loop.
type While struct {
	exprBase
	Cond, Body Expr
}

func NewWhile(sp span.Span, cond, body Expr) While {
	return While{exprBase{sp}, cond, body}
}

func (e While) String() string { return fmt.Sprintf("(while %s %s)", e.Cond, e.Body) }

// For is a pattern-binding iteration loop.
type For struct {
	exprBase
	Pattern    Pattern
	Iter, Body Expr
}

func NewFor(sp span.Span, pattern Pattern, iter, body Expr) For {
	return For{exprBase{sp}, pattern, iter, body}
}

func (e For) String() string {
	return fmt.Sprintf("(for %s in %s %s)", e.Pattern, e.Iter, e.Body)
}

// MatchArm is one `pattern => body` arm of a Match.
type MatchArm struct {
	Pattern Pattern
	Body    Expr
}

// Match is a pattern-dispatch expression.
type Match struct {
	exprBase
	Cond Expr
	Arms []MatchArm
}

func NewMatch(sp span.Span, cond Expr, arms []MatchArm) Match {
	return Match{exprBase{sp}, cond, arms}
}

func (e Match) String() string {
	parts := make([]string, len(e.Arms))
	for i, a := range e.Arms {
		parts[i] = fmt.Sprintf("%s => %s", a.Pattern, a.Body)
	}
	return fmt.Sprintf("(match %s { %s })", e.Cond, strings.Join(parts, " "))
}

// Return is a `return expr?` expression; Value is nil when absent.
type Return struct {
	exprBase
	Value Expr
}

func NewReturn(sp span.Span, value Expr) Return {
	return Return{exprBase{sp}, value}
}

func (e Return) String() string {
	if e.Value == nil {
		return "return"
	}
	return fmt.Sprintf("return %s", e.Value)
}

// Break is a `break expr?` expression; Value is nil when absent.
type Break struct {
	exprBase
	Value Expr
}

func NewBreak(sp span.Span, value Expr) Break {
	return Break{exprBase{sp}, value}
}

func (e Break) String() string {
	if e.Value == nil {
		return "break"
	}
	return fmt.Sprintf("break %s", e.Value)
}

// Continue is a bare `continue` expression.
type Continue struct {
	exprBase
}

func NewContinue(sp span.Span) Continue {
	return Continue{exprBase{sp}}
}

func (Continue) String() string { return "continue" }

// Let is `let pattern (: ty)? (= value (else else_)?)?`.
type Let struct {
	exprBase
	Pattern          Pattern
	Ty               Ty   // nil when absent
	Value            Expr // nil when absent
	Else             Expr // nil when absent
}

func NewLet(sp span.Span, pattern Pattern, ty Ty, value, els Expr) Let {
	return Let{exprBase{sp}, pattern, ty, value, els}
}

func (e Let) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "let %s", e.Pattern)
	if e.Ty != nil {
		fmt.Fprintf(&b, ": %s", e.Ty)
	}
	if e.Value != nil {
		fmt.Fprintf(&b, " = %s", e.Value)
		if e.Else != nil {
			fmt.Fprintf(&b, " else %s", e.Else)
		}
	}
	return b.String()
}
