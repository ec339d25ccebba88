// Package lexer implements the delimiter-aware lexer: it produces tokens
// lazily from a shared source buffer and eagerly balances `()`, `[]`,
// and `{}` into Group tokens whose payload is a nested sub-lexer scoped
// to the interior byte range. Grounded on malphas-lang's
// internal/lexer/{token,lexer}.go for Go idiom (rune-cursor fields,
// error-as-diagnostic conversion), but the actual token set and scan
// rules follow original_source/lex.py, the behavioral ground truth,
// since malphas-lang's lexer has no group/sub-lexer support at all and
// assigns distinct token types per keyword (this grammar is
// keyword-agnostic: the lexer only ever emits Ident).
package lexer

import (
	"fmt"
	"math/big"

	"github.com/lylythechosenone/scythe/internal/span"
)

// Token is the tagged-variant interface every lexical token implements.
// Concrete variants are exactly: Ident, String, Char, Int, Float,
// Punct, Group.
type Token interface {
	Span() span.Span
	isToken()
}

type tokenBase struct {
	span span.Span
}

func (t tokenBase) Span() span.Span { return t.span }
func (tokenBase) isToken()          {}

// Ident is an identifier: a leading XID_Start/underscore rune followed by
// XID_Continue runes. Keyword recognition is left entirely to downstream
// consumers (the parser); the lexer never special-cases keyword text.
type Ident struct {
	tokenBase
	Text string
}

// NewIdent constructs an Ident token.
func NewIdent(sp span.Span, text string) Ident {
	return Ident{tokenBase{sp}, text}
}

// String is a double-quoted string literal with escapes already resolved.
type String struct {
	tokenBase
	Value string
}

// NewString constructs a String token.
func NewString(sp span.Span, value string) String {
	return String{tokenBase{sp}, value}
}

// Char is a single-quoted character literal holding exactly one decoded
// scalar value.
type Char struct {
	tokenBase
	Value rune
}

// NewChar constructs a Char token.
func NewChar(sp span.Span, value rune) Char {
	return Char{tokenBase{sp}, value}
}

// Int is an arbitrary-precision non-negative integer literal with an
// optional size/signedness suffix (one of i8 i16 i32 i64 u8 u16 u32 u64).
type Int struct {
	tokenBase
	Value  *big.Int
	Suffix string // "" when absent
}

// NewInt constructs an Int token.
func NewInt(sp span.Span, value *big.Int, suffix string) Int {
	return Int{tokenBase{sp}, value, suffix}
}

// Float is a floating point literal with an optional f32/f64 suffix.
type Float struct {
	tokenBase
	Value  float64
	Suffix string // "" when absent
}

// NewFloat constructs a Float token.
func NewFloat(sp span.Span, value float64, suffix string) Float {
	return Float{tokenBase{sp}, value, suffix}
}

// Punct is one punctuation token from the closed operator alphabet.
type Punct struct {
	tokenBase
	Text string
}

// NewPunct constructs a Punct token.
func NewPunct(sp span.Span, text string) Punct {
	return Punct{tokenBase{sp}, text}
}

// Group is a balanced `()`, `[]`, or `{}` region. Inner is a sub-lexer
// sharing the same underlying buffer, scoped to just past the opener up
// to (not including) the matching closer.
type Group struct {
	tokenBase
	Delim string // "()", "[]", or "{}"
	Inner *Lexer
}

// NewGroup constructs a Group token.
func NewGroup(sp span.Span, delim string, inner *Lexer) Group {
	return Group{tokenBase{sp}, delim, inner}
}

func (t Ident) String() string  { return t.Text }
func (t String) String() string { return fmt.Sprintf("%q", t.Value) }
func (t Char) String() string   { return fmt.Sprintf("%q", t.Value) }
func (t Int) String() string {
	if t.Suffix != "" {
		return t.Value.String() + t.Suffix
	}
	return t.Value.String()
}
func (t Float) String() string {
	s := fmt.Sprintf("%g", t.Value)
	if t.Suffix != "" {
		return s + t.Suffix
	}
	return s
}
func (t Punct) String() string { return t.Text }
func (t Group) String() string { return t.Delim }
