package parser_test

import (
	"math/big"
	"testing"

	"github.com/go-test/deep"
	"github.com/stretchr/testify/require"

	"github.com/lylythechosenone/scythe/internal/ast"
	"github.com/lylythechosenone/scythe/internal/parser"
	"github.com/lylythechosenone/scythe/internal/span"
)

// requireWellFormedSpan checks invariant 1 (span monotonicity): every
// node's start must be <= its stop.
func requireWellFormedSpan(t *testing.T, sp span.Span) {
	t.Helper()
	require.LessOrEqual(t, sp.Start, sp.Stop, "span must be well-formed: %v", sp)
}

// requireIntTy checks an ast.Ty is an IntTy of the given size/sign,
// ignoring its span (which depends on source position, not shape).
func requireIntTy(t *testing.T, ty ast.Ty, size int, signed bool) {
	t.Helper()
	it, ok := ty.(ast.IntTy)
	require.True(t, ok, "expected IntTy, got %T", ty)
	require.Equal(t, size, it.Size)
	require.Equal(t, signed, it.Signed)
}

func TestScenario1LetBinding(t *testing.T) {
	items, diags, err := parser.Parse("let x: i32 = 1 + 2 * 3;")
	require.NoError(t, err)
	require.Empty(t, diags)
	require.Len(t, items.List, 1)

	semi, ok := items.List[0].(ast.Semi)
	require.True(t, ok)

	let, ok := semi.Inner.(ast.Let)
	require.True(t, ok)

	ident, ok := let.Pattern.(ast.IdentPattern)
	require.True(t, ok)
	require.Equal(t, "x", ident.Name)
	requireIntTy(t, let.Ty, 32, true)

	add, ok := let.Value.(ast.Binary)
	require.True(t, ok)
	require.Equal(t, ast.Add, add.Op)
	require.Equal(t, big.NewInt(1), add.Lhs.(ast.Int).Value)

	mul, ok := add.Rhs.(ast.Binary)
	require.True(t, ok)
	require.Equal(t, ast.Mul, mul.Op)
	require.Equal(t, big.NewInt(2), mul.Lhs.(ast.Int).Value)
	require.Equal(t, big.NewInt(3), mul.Rhs.(ast.Int).Value)
}

func TestScenario2IfNoStructInit(t *testing.T) {
	items, diags, err := parser.Parse("if x { y } else { z }")
	require.NoError(t, err)
	require.Empty(t, diags, "the x { … } backtrack rule must not produce a struct-init here")
	require.Len(t, items.List, 1)

	ifExpr, ok := items.List[0].(ast.If)
	require.True(t, ok, "top-level expr should be an If, got %T", items.List[0])

	_, isStructInit := ifExpr.Cond.(ast.StructInit)
	require.False(t, isStructInit, "condition must have been reinterpreted away from StructInit")

	then, ok := ifExpr.Then.(ast.Block)
	require.True(t, ok)
	require.Len(t, then.Exprs, 1)

	els, ok := ifExpr.Else.(ast.Block)
	require.True(t, ok)
	require.Len(t, els.Exprs, 1)
}

func TestScenario3StructInitNotAllowedInCondition(t *testing.T) {
	items, diags, err := parser.Parse("if Foo { a: 1 } { }")
	require.NoError(t, err)
	require.Len(t, diags, 1)
	require.Equal(t, "Struct initializer not allowed here", diags[0].Short)
	require.Len(t, items.List, 1)

	ifExpr, ok := items.List[0].(ast.If)
	require.True(t, ok)

	si, ok := ifExpr.Cond.(ast.StructInit)
	require.True(t, ok, "condition should remain a StructInit when the speculative parse was clean")
	require.Equal(t, []string{"Foo"}, si.Ty.Segments)
	require.Len(t, si.Fields, 1)
	require.Equal(t, "a", si.Fields[0].Name)

	then, ok := ifExpr.Then.(ast.Block)
	require.True(t, ok)
	require.Empty(t, then.Exprs)
}

func TestScenario4InvalidRadixPrefixIsFatal(t *testing.T) {
	_, _, err := parser.Parse("0xZZ")
	require.Error(t, err)
}

func TestScenario5StructDecl(t *testing.T) {
	items, diags, err := parser.Parse("struct S { x: i32, y: u8 }")
	require.NoError(t, err)
	require.Empty(t, diags)
	require.Len(t, items.List, 1)

	s, ok := items.List[0].(ast.Struct)
	require.True(t, ok)
	require.Equal(t, "S", s.Name)

	fields, ok := s.Fields.(ast.NamedFields)
	require.True(t, ok)
	require.Len(t, fields.Fields, 2)
	require.Equal(t, "x", fields.Fields[0].Name)
	requireIntTy(t, fields.Fields[0].Ty, 32, true)
	require.Equal(t, "y", fields.Fields[1].Name)
	requireIntTy(t, fields.Fields[1].Ty, 8, false)
}

func TestScenario6FunctionDecl(t *testing.T) {
	items, diags, err := parser.Parse("fn f(x: i32) -> i32 { return x + 1; }")
	require.NoError(t, err)
	require.Empty(t, diags)
	require.Len(t, items.List, 1)

	fn, ok := items.List[0].(ast.Function)
	require.True(t, ok)
	require.Equal(t, "f", fn.Name)
	require.Len(t, fn.Params, 1)
	requireIntTy(t, fn.RetTy, 32, true)

	body, ok := fn.Body.(ast.Block)
	require.True(t, ok)
	require.Len(t, body.Exprs, 1)

	semi, ok := body.Exprs[0].(ast.Semi)
	require.True(t, ok)

	ret, ok := semi.Inner.(ast.Return)
	require.True(t, ok)

	add, ok := ret.Value.(ast.Binary)
	require.True(t, ok)
	require.Equal(t, ast.Add, add.Op)
}

func TestPrecedenceAddMul(t *testing.T) {
	items, diags, err := parser.Parse("a + b * c;")
	require.NoError(t, err)
	require.Empty(t, diags)
	semi := items.List[0].(ast.Semi)
	bin := semi.Inner.(ast.Binary)
	require.Equal(t, ast.Add, bin.Op)
	rhs := bin.Rhs.(ast.Binary)
	require.Equal(t, ast.Mul, rhs.Op)
}

func TestPrecedenceAssignRightAssoc(t *testing.T) {
	items, diags, err := parser.Parse("a = b = c;")
	require.NoError(t, err)
	require.Empty(t, diags)
	semi := items.List[0].(ast.Semi)
	bin := semi.Inner.(ast.Binary)
	require.Equal(t, ast.Assign, bin.Op)
	rhs := bin.Rhs.(ast.Binary)
	require.Equal(t, ast.Assign, rhs.Op)
}

func TestPrecedenceUnaryChain(t *testing.T) {
	items, diags, err := parser.Parse("!-x;")
	require.NoError(t, err)
	require.Empty(t, diags)
	semi := items.List[0].(ast.Semi)
	not := semi.Inner.(ast.Prefix)
	require.Equal(t, ast.Not, not.Op)
	neg := not.Rhs.(ast.Prefix)
	require.Equal(t, ast.Neg, neg.Op)
	_, ok := neg.Rhs.(ast.Ident)
	require.True(t, ok)
}

func TestPrecedenceSuffixChain(t *testing.T) {
	items, diags, err := parser.Parse("a.b(c)[d];")
	require.NoError(t, err)
	require.Empty(t, diags)
	semi := items.List[0].(ast.Semi)
	idx := semi.Inner.(ast.Index)
	call := idx.Base.(ast.Call)
	require.Len(t, call.Args, 1)
	member := call.Base.(ast.Member)
	require.Equal(t, "b", member.Name)
	_, ok := member.Base.(ast.Ident)
	require.True(t, ok)
}

func TestRecoveryNonAborts(t *testing.T) {
	// Every delimiter here is balanced, so lexing succeeds outright; the
	// garbage is entirely in how these lexically valid tokens are
	// arranged, which the parser must recover from rather than abort on.
	garbage := ", , :: => -> ++ fn () {} [] struct ;;;"
	items, diags, err := parser.Parse(garbage)
	require.NoError(t, err, "parser-stage garbage must never produce a fatal lexer error")
	require.GreaterOrEqual(t, len(diags), 1)
	require.NotNil(t, items)
}

func TestWhileDoesNotBacktrackStructLiteral(t *testing.T) {
	// Unlike if/match, while's condition never applies the
	// struct-literal-vs-condition backtrack rule, so a trailing brace after a bare path is parsed
	// straight through as an (almost certainly malformed) StructInit
	// rather than reinterpreted as the loop body.
	_, diags, err := parser.Parse("while x { y } z;")
	require.NoError(t, err)
	require.NotEmpty(t, diags, "no backtrack means the malformed field list must surface a diagnostic")
}

func TestGroupBalanceAndDelimiterNesting(t *testing.T) {
	items, diags, err := parser.Parse("fn f() { (1 + 2) }")
	require.NoError(t, err)
	require.Empty(t, diags)
	fn := items.List[0].(ast.Function)
	body := fn.Body.(ast.Block)
	require.Len(t, body.Exprs, 1)
	bin, ok := body.Exprs[0].(ast.Binary)
	require.True(t, ok)
	lhs := bin.Lhs.(ast.Int)
	require.Equal(t, big.NewInt(1), lhs.Value)
}

func TestSpanMonotonicityEverySpanIsWellFormed(t *testing.T) {
	items, _, err := parser.Parse(`
		fn f(x: i32) -> i32 {
			let y = if x { 1 } else { 2 };
			return y + 1;
		}
	`)
	require.NoError(t, err)
	requireWellFormedSpan(t, items.Span())
	for _, item := range items.List {
		requireWellFormedSpan(t, item.Span())
	}
}

// TestParseIsDeterministic runs the same source through Parse twice and
// field-by-field diffs the two diagnostic slices, rather than relying
// on require.Equal's single pass/fail, so a regression that only
// changes one diagnostic's field (say, a message string but not its
// span) is reported precisely instead of just "not equal".
func TestParseIsDeterministic(t *testing.T) {
	source := `
		fn f(x: i32) -> i32 {
			let y = if x { 1 } else { 2 };
			return y + garbage_trailer +;
		}
	`
	_, diags1, err1 := parser.Parse(source)
	_, diags2, err2 := parser.Parse(source)
	require.NoError(t, err1)
	require.NoError(t, err2)
	require.Equal(t, len(diags1), len(diags2), "two parses of identical source produced different diagnostic counts")

	for i := range diags1 {
		if diff := deep.Equal(diags1[i], diags2[i]); diff != nil {
			for _, d := range diff {
				t.Errorf("diagnostic %d diverged between runs: %s", i, d)
			}
		}
	}
}
