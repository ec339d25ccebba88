package ast

import (
	"fmt"
	"strings"

	"github.com/lylythechosenone/scythe/internal/span"
)

// Ty is the tagged-variant interface for type expressions. Grounded on
// original_source/parse/ty.py's dataclass hierarchy; primitive names
// are checked before falling back to Path, since the original's
// catch-all Ident arm is listed ahead of every primitive literal-string
// case, making primitives permanently unreachable dead code there.
type Ty interface {
	Span() span.Span
	isTy()
}

type tyBase struct {
	span span.Span
}

func (t tyBase) Span() span.Span { return t.span }
func (tyBase) isTy()             {}

// IntTy is a fixed-width integer type (8/16/32/64/128, signed or not).
type IntTy struct {
	tyBase
	Size   int
	Signed bool
}

func NewIntTy(sp span.Span, size int, signed bool) IntTy {
	return IntTy{tyBase{sp}, size, signed}
}

func (t IntTy) String() string {
	if t.Signed {
		return fmt.Sprintf("i%d", t.Size)
	}
	return fmt.Sprintf("u%d", t.Size)
}

// SizeTy is the machine-width integer type, `usize`/`isize`.
type SizeTy struct {
	tyBase
	Signed bool
}

func NewSizeTy(sp span.Span, signed bool) SizeTy {
	return SizeTy{tyBase{sp}, signed}
}

func (t SizeTy) String() string {
	if t.Signed {
		return "isize"
	}
	return "usize"
}

// FloatTy is a 32- or 64-bit floating point type.
type FloatTy struct {
	tyBase
	Size int
}

func NewFloatTy(sp span.Span, size int) FloatTy {
	return FloatTy{tyBase{sp}, size}
}

func (t FloatTy) String() string { return fmt.Sprintf("f%d", t.Size) }

// StrTy is the `str` primitive.
type StrTy struct{ tyBase }

func NewStrTy(sp span.Span) StrTy { return StrTy{tyBase{sp}} }
func (StrTy) String() string     { return "str" }

// BoolTy is the `bool` primitive.
type BoolTy struct{ tyBase }

func NewBoolTy(sp span.Span) BoolTy { return BoolTy{tyBase{sp}} }
func (BoolTy) String() string      { return "bool" }

// CharTy is the `char` primitive.
type CharTy struct{ tyBase }

func NewCharTy(sp span.Span) CharTy { return CharTy{tyBase{sp}} }
func (CharTy) String() string      { return "char" }

// SelfTy is the `Self` type, referring to the enclosing item.
type SelfTy struct{ tyBase }

func NewSelfTy(sp span.Span) SelfTy { return SelfTy{tyBase{sp}} }
func (SelfTy) String() string      { return "Self" }

// UnitTy is `()`, the empty tuple type.
type UnitTy struct{ tyBase }

func NewUnitTy(sp span.Span) UnitTy { return UnitTy{tyBase{sp}} }
func (UnitTy) String() string      { return "()" }

// PtrTy is `*Ty`, a raw pointer.
type PtrTy struct {
	tyBase
	Elem Ty
}

func NewPtrTy(sp span.Span, elem Ty) PtrTy {
	return PtrTy{tyBase{sp}, elem}
}

func (t PtrTy) String() string { return fmt.Sprintf("*%s", t.Elem) }

// TupleTy is `(Ty, Ty, ...)`.
type TupleTy struct {
	tyBase
	Tys []Ty
}

func NewTupleTy(sp span.Span, tys []Ty) TupleTy {
	return TupleTy{tyBase{sp}, tys}
}

func (t TupleTy) String() string {
	parts := make([]string, len(t.Tys))
	for i, sub := range t.Tys {
		parts[i] = fmt.Sprint(sub)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// ArrayTy is `[Ty; Size]`, a fixed-length array.
type ArrayTy struct {
	tyBase
	Elem Ty
	Size int64
}

func NewArrayTy(sp span.Span, elem Ty, size int64) ArrayTy {
	return ArrayTy{tyBase{sp}, elem, size}
}

func (t ArrayTy) String() string { return fmt.Sprintf("[%s; %d]", t.Elem, t.Size) }

// SliceTy is `[Ty]`, an unsized view.
type SliceTy struct {
	tyBase
	Elem Ty
}

func NewSliceTy(sp span.Span, elem Ty) SliceTy {
	return SliceTy{tyBase{sp}, elem}
}

func (t SliceTy) String() string { return fmt.Sprintf("[%s]", t.Elem) }

// PathTy is a `::`-separated named type reference.
type PathTy struct {
	tyBase
	Segments []string
}

func NewPathTy(sp span.Span, segments []string) PathTy {
	return PathTy{tyBase{sp}, segments}
}

func (t PathTy) String() string { return strings.Join(t.Segments, "::") }

// UnrecoverableTy is a placeholder left where a recoverable type parse
// error occurred.
type UnrecoverableTy struct{ tyBase }

func NewUnrecoverableTy(sp span.Span) UnrecoverableTy { return UnrecoverableTy{tyBase{sp}} }
func (UnrecoverableTy) String() string                { return "{error}" }

// primitiveTyNames is the closed set of primitive type names checked
// before a bare identifier falls back to a Path type.
var primitiveTyNames = map[string]bool{
	"i8": true, "i16": true, "i32": true, "i64": true, "i128": true,
	"u8": true, "u16": true, "u32": true, "u64": true, "u128": true,
	"f32": true, "f64": true,
	"str": true, "bool": true, "char": true,
	"usize": true, "isize": true, "Self": true,
}

// IsPrimitiveTyName reports whether name is one of the reserved
// primitive type spellings (as opposed to a Path segment).
func IsPrimitiveTyName(name string) bool {
	return primitiveTyNames[name]
}
