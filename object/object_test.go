package object

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/objkit-dev/objkit/typedesc"
)

func TestParamConstructors(t *testing.T) {
	req := RequiredParam("a", typedesc.NewPlain("str"))
	assert.Equal(t, PositionalOrKeyword, req.Kind)
	assert.Equal(t, Unset, req.Default)

	opt := OptionalParam("b", nil, nil)
	assert.Nil(t, opt.Type)
	assert.Nil(t, opt.Default, "explicit nil default is a value, not Unset")
}

func TestFunc_Call_DirectShape(t *testing.T) {
	f := NewFunc("join", func(args ...any) (any, error) {
		out := ""
		for _, a := range args {
			out += a.(string)
		}
		return out, nil
	})

	got, err := f.Call("a", "b", "c")
	require.NoError(t, err)
	assert.Equal(t, "abc", got)
}

func TestFunc_Call_Reflected(t *testing.T) {
	f := NewFunc("add", func(a, b int) int { return a + b })

	got, err := f.Call(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 5, got)
}

func TestFunc_Call_ReflectedTrailingError(t *testing.T) {
	f := NewFunc("parse", strconv.Atoi)

	got, err := f.Call("41")
	require.NoError(t, err)
	assert.Equal(t, 41, got)

	_, err = f.Call("not a number")
	assert.Error(t, err)
}

func TestFunc_Call_ReflectedMultipleResults(t *testing.T) {
	f := NewFunc("divmod", func(a, b int) (int, int) { return a / b, a % b })

	got, err := f.Call(7, 2)
	require.NoError(t, err)
	assert.Equal(t, []any{3, 1}, got)
}

func TestFunc_Call_ErrorResultPassesThrough(t *testing.T) {
	boom := errors.New("boom")
	f := NewFunc("fail", func() (string, error) { return "", boom })

	_, err := f.Call()
	assert.ErrorIs(t, err, boom)
}

func TestFunc_Call_ArgumentConversion(t *testing.T) {
	f := NewFunc("scale", func(x float64) float64 { return x * 2 })

	got, err := f.Call(3)
	require.NoError(t, err)
	assert.Equal(t, 6.0, got)

	_, err = f.Call("three")
	assert.Error(t, err)
}

func TestFunc_Call_NilBecomesZeroValue(t *testing.T) {
	f := NewFunc("echo", func(s string) string { return s })

	got, err := f.Call(nil)
	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestFunc_Call_Variadic(t *testing.T) {
	f := NewFunc("sum", func(base int, rest ...int) int {
		for _, n := range rest {
			base += n
		}
		return base
	})

	got, err := f.Call(1, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, 6, got)

	_, err = f.Call()
	assert.Error(t, err)
}

func TestFunc_Call_ArityMismatch(t *testing.T) {
	f := NewFunc("one", func(a int) int { return a })
	_, err := f.Call(1, 2)
	assert.Error(t, err)
}

func TestFunc_Call_NoImplementation(t *testing.T) {
	f := &Func{Name: "ghost"}
	_, err := f.Call()
	assert.Error(t, err)
}

func TestFunc_Bind(t *testing.T) {
	f := NewFunc("describe", func(self, suffix string) string { return self + suffix })

	bound := f.Bind("base")
	require.True(t, bound.IsBound())
	assert.False(t, f.IsBound(), "binding returns a copy")

	got, err := bound.Call("!")
	require.NoError(t, err)
	assert.Equal(t, "base!", got)
}

func TestType_DefineKeepsInsertionOrder(t *testing.T) {
	typ := NewType("Widget").
		Define("b", NewFunc("b", nil), WrapperNone).
		Define("a", NewFunc("a", nil), WrapperNone).
		Define("b", NewFunc("b2", nil), WrapperNone)

	assert.Equal(t, []string{"b", "a"}, typ.OwnNames(), "redefinition keeps position")

	attr, ok := typ.Attr("b")
	require.True(t, ok)
	assert.Equal(t, "b2", attr.Func.Name)
}

func TestType_Chain(t *testing.T) {
	root := NewType("Root")
	left := NewType("Left", root)
	right := NewType("Right", root)
	leaf := NewType("Leaf", left, right)

	chain := leaf.Chain()
	require.Len(t, chain, 4)
	assert.Same(t, leaf, chain[0])
	assert.Same(t, left, chain[1])
	assert.Same(t, root, chain[2], "depth-first, first occurrence wins")
	assert.Same(t, right, chain[3])
}

func TestType_Resolve(t *testing.T) {
	base := NewType("Base").Define("shared", NewFunc("shared", nil), WrapperNone)
	derived := NewType("Derived", base).Define("own", NewFunc("own", nil), WrapperNone)

	attr, level, ok := derived.Resolve("shared")
	require.True(t, ok)
	assert.Equal(t, "shared", attr.Name)
	assert.Same(t, base, level)

	_, level, ok = derived.Resolve("own")
	require.True(t, ok)
	assert.Same(t, derived, level)

	_, _, ok = derived.Resolve("missing")
	assert.False(t, ok)
}

func TestType_Resolve_OverrideWins(t *testing.T) {
	base := NewType("Base").Define("greet", NewFunc("base greet", nil), WrapperNone)
	derived := NewType("Derived", base).Define("greet", NewFunc("derived greet", nil), WrapperNone)

	attr, level, ok := derived.Resolve("greet")
	require.True(t, ok)
	assert.Same(t, derived, level)
	assert.Equal(t, "derived greet", attr.Func.Name)
}

func TestType_Names_OwnFirstThenInherited(t *testing.T) {
	base := NewType("Base").
		Define("inherited", NewFunc("inherited", nil), WrapperNone).
		Define("shadowed", NewFunc("shadowed", nil), WrapperNone)
	derived := NewType("Derived", base).
		Define("zeta", NewFunc("zeta", nil), WrapperNone).
		Define("alpha", NewFunc("alpha", nil), WrapperNone).
		Define("shadowed", NewFunc("shadowed", nil), WrapperNone)

	assert.Equal(t, []string{"zeta", "alpha", "shadowed", "inherited"}, derived.Names())
}

func TestType_Construct(t *testing.T) {
	type widget struct{ label string }

	typ := NewType("Widget").DefineInit(
		NewFunc(InitName, func(label string) *widget { return &widget{label: label} }),
	)

	got, err := typ.Construct("on/off")
	require.NoError(t, err)
	assert.Equal(t, "on/off", got.(*widget).label)
}

func TestType_Construct_NoConstructor(t *testing.T) {
	_, err := NewType("Bare").Construct()
	assert.Error(t, err)
}

func TestNewInstance(t *testing.T) {
	typ := NewType("Widget")
	inst := NewInstance(typ, "payload")
	assert.Same(t, typ, inst.Of)
	assert.Equal(t, "payload", inst.Value)
}

func TestParamKind_String(t *testing.T) {
	assert.Equal(t, "positional_only", PositionalOnly.String())
	assert.Equal(t, "positional_or_keyword", PositionalOrKeyword.String())
	assert.Equal(t, "var_positional", VarPositional.String())
	assert.Equal(t, "keyword_only", KeywordOnly.String())
	assert.Equal(t, "var_keyword", VarKeyword.String())
}

func TestWrapper_String(t *testing.T) {
	assert.Equal(t, "static", WrapperStatic.String())
	assert.Equal(t, "classmethod", WrapperClass.String())
	assert.Equal(t, "property", WrapperProperty.String())
}
