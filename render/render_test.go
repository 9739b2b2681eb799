package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/objkit-dev/objkit/inspect"
	"github.com/objkit-dev/objkit/object"
	"github.com/objkit-dev/objkit/typedesc"
)

func plainRenderer(opts ...Option) *Renderer {
	return New(append([]Option{NoColor()}, opts...)...)
}

func TestRenderer_Parameter(t *testing.T) {
	r := plainRenderer()

	tests := []struct {
		name string
		p    inspect.Parameter
		want string
	}{
		{
			"typed with default",
			inspect.NewParameter("count", object.PositionalOrKeyword, typedesc.NewPlain("int"), 3, "", false),
			"count: int = 3",
		},
		{
			"untyped required",
			inspect.NewParameter("name", object.PositionalOrKeyword, nil, object.Unset, "", false),
			"name",
		},
		{
			"string default is quoted",
			inspect.NewParameter("sep", object.PositionalOrKeyword, typedesc.NewPlain("str"), ", ", "", false),
			`sep: str = ", "`,
		},
		{
			"optional union",
			inspect.NewParameter("extra", object.PositionalOrKeyword,
				typedesc.NewUnion(typedesc.NewPlain("str"), typedesc.None), nil, "", false),
			"extra: str | None = <nil>",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Parameter(tt.p))
		})
	}
}

func TestRenderer_Function(t *testing.T) {
	decl := object.NewFunc("join", nil).
		WithParams(
			object.RequiredParam("a", typedesc.NewPlain("str")),
			object.OptionalParam("b", typedesc.NewPlain("int"), 0),
		).
		WithReturn(typedesc.NewPlain("str"))
	f := inspect.NewFunction(decl)

	got := plainRenderer().Function(f)
	assert.Equal(t, "join(a: str, b: int = 0) -> str", got)
}

func TestRenderer_Function_NoReturn(t *testing.T) {
	f := inspect.NewFunction(object.NewFunc("fire", nil))
	assert.Equal(t, "fire()", plainRenderer().Function(f))
}

func TestRenderer_Simplified(t *testing.T) {
	decl := object.NewFunc("load", nil).
		WithReturn(typedesc.NewUnion(typedesc.NewPlain("str"), typedesc.None))
	f := inspect.NewFunction(decl)

	assert.Equal(t, "load() -> str?", plainRenderer(Simplified()).Function(f))
	assert.Equal(t, "load() -> str | None", plainRenderer().Function(f))
}

func TestRenderer_Class(t *testing.T) {
	typ := object.NewType("Pair").
		DefineInit(object.NewFunc(object.InitName, func(a, b int) any { return nil }).
			WithParams(
				object.RequiredParam("a", typedesc.NewPlain("int")),
				object.RequiredParam("b", typedesc.NewPlain("int")),
			)).
		Define("sum", object.NewFunc("sum", nil).
			WithReturn(typedesc.NewPlain("int")), object.WrapperNone)
	c := inspect.NewClass(typ)

	got := plainRenderer().Class(c)
	lines := strings.Split(got, "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "class Pair:", lines[0])
	assert.Equal(t, "  __init__(a: int, b: int)", lines[1])
	assert.Equal(t, "  sum() -> int", lines[2])
}

func TestRenderer_Class_IndentOption(t *testing.T) {
	typ := object.NewType("One").
		Define("go", object.NewFunc("go", nil), object.WrapperNone)
	c := inspect.NewClass(typ)

	got := plainRenderer(WithIndent(4)).Class(c)
	assert.Contains(t, got, "\n    go()")
}

func TestRenderer_ColoredOutputDiffersFromPlain(t *testing.T) {
	f := inspect.NewFunction(object.NewFunc("tick", nil).
		WithReturn(typedesc.NewPlain("int")))

	theme := DefaultTheme()
	for _, c := range []interface{ EnableColor() }{
		theme.Keyword, theme.Name, theme.Type, theme.Default, theme.Description,
	} {
		c.EnableColor()
	}
	colored := New(WithTheme(theme)).Function(f)
	plain := plainRenderer().Function(f)

	assert.NotEqual(t, plain, colored)
	assert.Contains(t, colored, "\x1b[")
}

func TestDump(t *testing.T) {
	type point struct{ X, Y int }

	got := Dump(point{X: 1, Y: 2})
	assert.Contains(t, got, "X:")
	assert.Equal(t, got, Dump(point{X: 1, Y: 2}), "dumps are deterministic")
	assert.NotContains(t, got, "0x", "pointer addresses stay out of dumps")
}
