package ast

import (
	"fmt"
	"strings"

	"github.com/lylythechosenone/scythe/internal/span"
)

// Pattern is the tagged-variant interface for binding patterns: `let`
// targets, function parameters, `for` loop variables, and `match` arm
// discriminants. Grounded on original_source/parse/pattern.py, with two
// variants (Struct, Value) given real constructors here, since the
// original's Pattern.parse never actually reaches either of its own
// Struct/Value dataclasses.
type Pattern interface {
	Span() span.Span
	isPattern()
}

type patternBase struct {
	span span.Span
}

func (p patternBase) Span() span.Span { return p.span }
func (patternBase) isPattern()        {}

// IdentPattern binds the matched value to a name.
type IdentPattern struct {
	patternBase
	Name string
}

func NewIdentPattern(sp span.Span, name string) IdentPattern {
	return IdentPattern{patternBase{sp}, name}
}

func (p IdentPattern) String() string { return p.Name }

// IgnorePattern is `_`: matches anything, binds nothing.
type IgnorePattern struct {
	patternBase
}

func NewIgnorePattern(sp span.Span) IgnorePattern {
	return IgnorePattern{patternBase{sp}}
}

func (IgnorePattern) String() string { return "_" }

// TuplePattern destructures a parenthesized, comma-separated pattern
// list.
type TuplePattern struct {
	patternBase
	Patterns []Pattern
}

func NewTuplePattern(sp span.Span, patterns []Pattern) TuplePattern {
	return TuplePattern{patternBase{sp}, patterns}
}

func (p TuplePattern) String() string {
	parts := make([]string, len(p.Patterns))
	for i, sub := range p.Patterns {
		parts[i] = fmt.Sprint(sub)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// FieldPattern is one `name: pattern` (or bare `name`, short for
// `name: name`) entry inside a StructPattern.
type FieldPattern struct {
	Name    string
	Pattern Pattern
}

// StructPattern destructures a struct value by field, mirroring
// StructInit's shape: `Path { name: pattern, ... }`.
type StructPattern struct {
	patternBase
	Ty     Path
	Fields []FieldPattern
}

func NewStructPattern(sp span.Span, ty Path, fields []FieldPattern) StructPattern {
	return StructPattern{patternBase{sp}, ty, fields}
}

func (p StructPattern) String() string {
	parts := make([]string, len(p.Fields))
	for i, f := range p.Fields {
		parts[i] = fmt.Sprintf("%s: %s", f.Name, f.Pattern)
	}
	return fmt.Sprintf("%s { %s }", p.Ty, strings.Join(parts, ", "))
}

// ValuePattern matches a literal or path used as a discriminant, e.g. a
// match arm keyed on a specific integer or string.
type ValuePattern struct {
	patternBase
	Value Expr
}

func NewValuePattern(sp span.Span, value Expr) ValuePattern {
	return ValuePattern{patternBase{sp}, value}
}

func (p ValuePattern) String() string { return fmt.Sprint(p.Value) }
