package ast

import (
	"fmt"
	"strings"

	"github.com/lylythechosenone/scythe/internal/span"
)

// Fields is the tagged-variant interface for a struct/enum-variant/
// union body, grounded on original_source/parse/item.py's Fields
// dataclass hierarchy.
type Fields interface {
	Span() span.Span
	isFields()
}

type fieldsBase struct {
	span span.Span
}

func (f fieldsBase) Span() span.Span { return f.span }
func (fieldsBase) isFields()         {}

// UnitFields is a field-less body (`struct S;`).
type UnitFields struct{ fieldsBase }

func NewUnitFields(sp span.Span) UnitFields { return UnitFields{fieldsBase{sp}} }
func (UnitFields) String() string           { return "" }

// TupleFields is a positional body (`struct S(i32, u8);`).
type TupleFields struct {
	fieldsBase
	Tys []Ty
}

func NewTupleFields(sp span.Span, tys []Ty) TupleFields {
	return TupleFields{fieldsBase{sp}, tys}
}

func (f TupleFields) String() string {
	parts := make([]string, len(f.Tys))
	for i, ty := range f.Tys {
		parts[i] = fmt.Sprint(ty)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// NamedField is one `name: ty` entry in a NamedFields body.
type NamedField struct {
	Name string
	Ty   Ty
}

// NamedFields is a braced, named-field body (`struct S { x: i32 }`).
type NamedFields struct {
	fieldsBase
	Fields []NamedField
}

func NewNamedFields(sp span.Span, fields []NamedField) NamedFields {
	return NamedFields{fieldsBase{sp}, fields}
}

func (f NamedFields) String() string {
	parts := make([]string, len(f.Fields))
	for i, field := range f.Fields {
		parts[i] = fmt.Sprintf("%s: %s", field.Name, field.Ty)
	}
	return "{ " + strings.Join(parts, ", ") + " }"
}

// Item is the tagged-variant interface for top-level declarations. Item
// also satisfies Expr, since item parsing sits in the same
// ladder as a bare expression statement, so every concrete Item struct
// embeds itemBase, which in turn embeds exprBase.
type Item interface {
	Expr
	Public() bool
	isItem()
}

type itemBase struct {
	exprBase
	public bool
}

func (b itemBase) Public() bool { return b.public }
func (itemBase) isItem()        {}

// Param is one `pattern: ty` function parameter.
type Param struct {
	Pattern Pattern
	Ty      Ty
}

// Function is `fn name(params) (-> ret_ty)? body`.
type Function struct {
	itemBase
	Name   string
	Params []Param
	RetTy  Ty // nil when absent
	Body   Expr
}

func NewFunction(sp span.Span, public bool, name string, params []Param, retTy Ty, body Expr) Function {
	return Function{itemBase{exprBase{sp}, public}, name, params, retTy, body}
}

func (i Function) String() string {
	parts := make([]string, len(i.Params))
	for idx, p := range i.Params {
		parts[idx] = fmt.Sprintf("%s: %s", p.Pattern, p.Ty)
	}
	ret := ""
	if i.RetTy != nil {
		ret = fmt.Sprintf(" -> %s", i.RetTy)
	}
	return fmt.Sprintf("fn %s(%s)%s %s", i.Name, strings.Join(parts, ", "), ret, i.Body)
}

// Use is `use path (as alias)?`.
type Use struct {
	itemBase
	Segments []string
	Alias    string // "" when absent
}

func NewUse(sp span.Span, public bool, segments []string, alias string) Use {
	return Use{itemBase{exprBase{sp}, public}, segments, alias}
}

func (i Use) String() string { return fmt.Sprintf("use %s", strings.Join(i.Segments, "::")) }

// ModDecl is `mod name;`, declaring a submodule defined elsewhere.
type ModDecl struct {
	itemBase
	Name string
}

func NewModDecl(sp span.Span, public bool, name string) ModDecl {
	return ModDecl{itemBase{exprBase{sp}, public}, name}
}

func (i ModDecl) String() string { return fmt.Sprintf("mod %s", i.Name) }

// ModDef is `mod name { items }`, an inline module body.
type ModDef struct {
	itemBase
	Name  string
	Items []Item
}

func NewModDef(sp span.Span, public bool, name string, items []Item) ModDef {
	return ModDef{itemBase{exprBase{sp}, public}, name, items}
}

func (i ModDef) String() string {
	parts := make([]string, len(i.Items))
	for idx, item := range i.Items {
		parts[idx] = fmt.Sprint(item)
	}
	return fmt.Sprintf("mod %s {\n%s\n}", i.Name, strings.Join(parts, "\n"))
}

// Static is `static name: ty = value`.
type Static struct {
	itemBase
	Name  string
	Ty    Ty
	Value Expr
}

func NewStatic(sp span.Span, public bool, name string, ty Ty, value Expr) Static {
	return Static{itemBase{exprBase{sp}, public}, name, ty, value}
}

func (i Static) String() string { return fmt.Sprintf("static %s: %s = %s", i.Name, i.Ty, i.Value) }

// Const is `const name: ty = value`.
type Const struct {
	itemBase
	Name  string
	Ty    Ty
	Value Expr
}

func NewConst(sp span.Span, public bool, name string, ty Ty, value Expr) Const {
	return Const{itemBase{exprBase{sp}, public}, name, ty, value}
}

func (i Const) String() string { return fmt.Sprintf("const %s: %s = %s", i.Name, i.Ty, i.Value) }

// Struct is `struct name fields`.
type Struct struct {
	itemBase
	Name   string
	Fields Fields
}

func NewStruct(sp span.Span, public bool, name string, fields Fields) Struct {
	return Struct{itemBase{exprBase{sp}, public}, name, fields}
}

func (i Struct) String() string {
	sep := ""
	if _, named := i.Fields.(NamedFields); named {
		sep = " "
	}
	return fmt.Sprintf("struct %s%s%s", i.Name, sep, i.Fields)
}

// Variant is one `name fields` enum variant.
type Variant struct {
	Name   string
	Fields Fields
}

// Enum is `enum name { variants }`.
type Enum struct {
	itemBase
	Name     string
	Variants []Variant
}

func NewEnum(sp span.Span, public bool, name string, variants []Variant) Enum {
	return Enum{itemBase{exprBase{sp}, public}, name, variants}
}

func (i Enum) String() string {
	parts := make([]string, len(i.Variants))
	for idx, v := range i.Variants {
		sep := ""
		if _, named := v.Fields.(NamedFields); named {
			sep = " "
		}
		parts[idx] = fmt.Sprintf("%s%s%s", v.Name, sep, v.Fields)
	}
	return fmt.Sprintf("enum %s {\n%s\n}", i.Name, strings.Join(parts, "\n"))
}

// Union is `union name { named_fields }`; braces are mandatory.
type Union struct {
	itemBase
	Name   string
	Fields []NamedField
}

func NewUnion(sp span.Span, public bool, name string, fields []NamedField) Union {
	return Union{itemBase{exprBase{sp}, public}, name, fields}
}

func (i Union) String() string {
	parts := make([]string, len(i.Fields))
	for idx, f := range i.Fields {
		parts[idx] = fmt.Sprintf("%s: %s", f.Name, f.Ty)
	}
	return fmt.Sprintf("union %s { %s }", i.Name, strings.Join(parts, ", "))
}

// Items is the root node of a parsed file: an ordered list of top-level
// declarations.
type Items struct {
	exprBase
	List []Item
}

func NewItems(sp span.Span, items []Item) Items {
	return Items{exprBase{sp}, items}
}

func (i Items) String() string {
	parts := make([]string, len(i.List))
	for idx, item := range i.List {
		parts[idx] = fmt.Sprint(item)
	}
	return strings.Join(parts, "\n")
}
