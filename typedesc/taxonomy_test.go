package typedesc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsUnion(t *testing.T) {
	assert.True(t, IsUnion(NewUnion(NewPlain("int"), None)))
	assert.False(t, IsUnion(NewPlain("int")))
	assert.False(t, IsUnion(nil))
}

func TestIsGenericContainer(t *testing.T) {
	assert.True(t, IsGenericContainer(NewGeneric(NewPlain("list"), NewPlain("str"))))
	assert.False(t, IsGenericContainer(NewPlain("list")))
	assert.False(t, IsGenericContainer(NewUnion(NewPlain("int"), None)))
}

func TestIsDirectLiteral(t *testing.T) {
	assert.True(t, IsDirectLiteral(NewLiteral(1, 2, 3)))
	assert.False(t, IsDirectLiteral(LiteralMarker), "bare marker is not a direct literal")
	assert.False(t, IsDirectLiteral(NewPlain("int")))
	assert.False(t, IsDirectLiteral(NewUnion(NewPlain("str"), NewLiteral(1, 2))))
}

func TestIsOrContainsLiteral(t *testing.T) {
	assert.True(t, IsOrContainsLiteral(NewLiteral(1, 2, 3)))
	assert.True(t, IsOrContainsLiteral(NewUnion(NewPlain("int"), NewLiteral(1, 2))))
	assert.True(t, IsOrContainsLiteral(NewUnion(NewLiteral("a", "b"), None)))
	assert.False(t, IsOrContainsLiteral(NewPlain("int")))
	assert.False(t, IsOrContainsLiteral(NewUnion(NewPlain("int"), None)))
}

func TestFlatten_Idempotent(t *testing.T) {
	nested := &Union{Branches: []Type{
		NewPlain("str"),
		&Union{Branches: []Type{NewPlain("int"), &Union{Branches: []Type{NewPlain("float"), None}}}},
	}}

	once := Flatten(nested)
	twice := Flatten(NewUnion(once...))

	require.Equal(t, len(once), len(twice))
	for i := range once {
		assert.True(t, once[i].Equals(twice[i]))
	}
	assert.Equal(t, "str | int | float | None", NewUnion(once...).String())
}

func TestFlatten_NonUnion(t *testing.T) {
	flat := Flatten(NewPlain("int"))
	require.Len(t, flat, 1)
	assert.True(t, flat[0].Equals(NewPlain("int")))
}

func TestChoices(t *testing.T) {
	tests := []struct {
		name string
		t    Type
		want []any
	}{
		{"direct literal", NewLiteral("a", "b"), []any{"a", "b"}},
		{"enum", NewEnum("Color", "RED", "GREEN"), []any{"RED", "GREEN"}},
		{"union of literal and none", NewUnion(NewLiteral("a", "b"), None), []any{"a", "b"}},
		{"union of literal and enum", NewUnion(NewLiteral(1, 2), NewEnum("Color", "RED")), []any{1, 2, "RED"}},
		{"union deduplicates first-seen", NewUnion(NewLiteral("a", "b"), NewLiteral("b", "c")), []any{"a", "b", "c"}},
		{"union with no choice branches", NewUnion(NewPlain("int"), NewPlain("str")), nil},
		{"plain", NewPlain("int"), nil},
		{"bare marker", LiteralMarker, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Choices(tt.t))
		})
	}
}

// Literal['a','b'] | None: choices come through the union, but the union
// itself is not a direct literal.
func TestChoices_OptionalLiteral(t *testing.T) {
	opt := NewUnion(NewLiteral("a", "b"), None)

	assert.Equal(t, []any{"a", "b"}, Choices(opt))
	assert.True(t, IsOrContainsLiteral(opt))
	assert.False(t, IsDirectLiteral(opt))
}

func TestSimplify(t *testing.T) {
	list := NewGeneric(NewPlain("list"), NewPlain("str"))
	assert.Equal(t, "list", Simplify(list).String())

	u := NewUnion(NewPlain("float"), list)
	simplified := Simplify(u)
	require.Equal(t, KindUnion, simplified.Kind())
	assert.Equal(t, "float | list", simplified.String())

	assert.Same(t, None, Simplify(None))
}

func TestSimplifiedName(t *testing.T) {
	assert.Equal(t, "int?", SimplifiedName("int | None"))
	assert.Equal(t, "datetime", SimplifiedName("datetime.datetime"))
	assert.Equal(t, "list[str]", SimplifiedName("list[str]"))
}
