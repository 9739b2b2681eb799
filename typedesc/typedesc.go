// Package typedesc implements the closed type taxonomy used by objkit
// metadata models. A raw annotation is classified exactly once into one of
// six descriptor kinds; all downstream logic switches on the kind and never
// re-probes the original value.
package typedesc

import (
	"fmt"
	"strings"
)

// Kind identifies which variant of the taxonomy a descriptor belongs to.
type Kind int

const (
	// KindUnset marks the absence of an annotation. Distinct from the none
	// type, which is an explicit annotation.
	KindUnset Kind = iota
	// KindPlain is a bare named type (int, str, Path, ...).
	KindPlain
	// KindUnion is a set of alternative types (A | B | C).
	KindUnion
	// KindGeneric is a parametrized container (list[int], dict[str, int]).
	KindGeneric
	// KindLiteral is a fixed set of concrete values.
	KindLiteral
	// KindEnum is an enum-like type with a fixed named value set.
	KindEnum
)

func (k Kind) String() string {
	switch k {
	case KindUnset:
		return "unset"
	case KindPlain:
		return "plain"
	case KindUnion:
		return "union"
	case KindGeneric:
		return "generic"
	case KindLiteral:
		return "literal"
	case KindEnum:
		return "enum"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Type is a single descriptor in the taxonomy.
type Type interface {
	// Kind returns the taxonomy variant of this descriptor.
	Kind() Kind

	// String returns the human-readable name of the type with
	// module-qualification stripped. Unions render as "A | B | C".
	String() string

	// Equals checks if two descriptors are structurally equal.
	Equals(other Type) bool
}

// unsetType is the singleton behind Unset. Its display form is fixed here
// and is never overridden at runtime.
type unsetType struct{}

// Unset is the descriptor for "no annotation was declared".
var Unset Type = unsetType{}

func (unsetType) Kind() Kind     { return KindUnset }
func (unsetType) String() string { return "<unset>" }

func (unsetType) Equals(other Type) bool {
	return other != nil && other.Kind() == KindUnset
}

// IsUnset reports whether t carries no annotation. A nil descriptor is
// treated as unset so callers can leave annotation fields zero-valued.
func IsUnset(t Type) bool {
	return t == nil || t.Kind() == KindUnset
}

// Plain is a bare named type.
type Plain struct {
	Name string
}

// NewPlain creates a plain named type. Module qualification is stripped at
// construction so rendering never has to re-derive it.
func NewPlain(name string) *Plain {
	if idx := strings.LastIndex(name, "."); idx >= 0 {
		name = name[idx+1:]
	}
	return &Plain{Name: name}
}

// None is the descriptor for the explicit null/none type. It is a real
// annotation, unlike Unset.
var None = NewPlain("None")

func (p *Plain) Kind() Kind     { return KindPlain }
func (p *Plain) String() string { return p.Name }

// Equals checks if two plain types have the same name.
func (p *Plain) Equals(other Type) bool {
	otherPlain, ok := other.(*Plain)
	if !ok {
		return false
	}
	return p.Name == otherPlain.Name
}

// Union is a set of alternative types. Branches are always fully flattened:
// no branch is itself a Union. Construction through NewUnion preserves the
// invariant; code that builds a Union literal must keep it manually.
type Union struct {
	Branches []Type
}

// NewUnion creates a union from the given branches. Nested unions are
// flattened recursively and duplicate branches are dropped, preserving
// first-seen order. A union that ends up with a single unique branch is
// still reported as a union; normalizing X | X to X is the caller's
// responsibility, upstream of this package.
func NewUnion(branches ...Type) *Union {
	flat := make([]Type, 0, len(branches))
	for _, b := range branches {
		for _, leaf := range Flatten(b) {
			if !containsType(flat, leaf) {
				flat = append(flat, leaf)
			}
		}
	}
	return &Union{Branches: flat}
}

func (u *Union) Kind() Kind { return KindUnion }

func (u *Union) String() string {
	names := make([]string, len(u.Branches))
	for i, b := range u.Branches {
		names[i] = b.String()
	}
	return strings.Join(names, " | ")
}

// Equals checks if two unions have equal branches in the same order.
func (u *Union) Equals(other Type) bool {
	otherUnion, ok := other.(*Union)
	if !ok {
		return false
	}
	if len(u.Branches) != len(otherUnion.Branches) {
		return false
	}
	for i, b := range u.Branches {
		if !b.Equals(otherUnion.Branches[i]) {
			return false
		}
	}
	return true
}

// Generic is a parametrized container: an origin type plus zero or more
// argument types.
type Generic struct {
	Origin Type
	Args   []Type
}

// NewGeneric creates a parametrized container type.
func NewGeneric(origin Type, args ...Type) *Generic {
	return &Generic{Origin: origin, Args: args}
}

func (g *Generic) Kind() Kind { return KindGeneric }

func (g *Generic) String() string {
	if len(g.Args) == 0 {
		return g.Origin.String()
	}
	names := make([]string, len(g.Args))
	for i, a := range g.Args {
		names[i] = a.String()
	}
	return fmt.Sprintf("%s[%s]", g.Origin.String(), strings.Join(names, ", "))
}

// Equals checks if two generics have equal origins and argument lists.
func (g *Generic) Equals(other Type) bool {
	otherGeneric, ok := other.(*Generic)
	if !ok {
		return false
	}
	if !g.Origin.Equals(otherGeneric.Origin) {
		return false
	}
	if len(g.Args) != len(otherGeneric.Args) {
		return false
	}
	for i, a := range g.Args {
		if !a.Equals(otherGeneric.Args[i]) {
			return false
		}
	}
	return true
}

// Literal is a fixed set of concrete values. A Literal with no values is the
// bare, unparametrized marker and is not a direct literal.
type Literal struct {
	Values []any
}

// NewLiteral creates a literal type restricted to the given values.
func NewLiteral(values ...any) *Literal {
	return &Literal{Values: values}
}

// LiteralMarker is the unparametrized literal marker. It appears when an
// annotation names the literal construct without restricting it to values.
var LiteralMarker = &Literal{}

func (l *Literal) Kind() Kind { return KindLiteral }

func (l *Literal) String() string {
	if len(l.Values) == 0 {
		return "Literal"
	}
	parts := make([]string, len(l.Values))
	for i, v := range l.Values {
		parts[i] = literalValueString(v)
	}
	return fmt.Sprintf("Literal[%s]", strings.Join(parts, ", "))
}

// Equals checks if two literals carry the same values in the same order.
func (l *Literal) Equals(other Type) bool {
	otherLiteral, ok := other.(*Literal)
	if !ok {
		return false
	}
	if len(l.Values) != len(otherLiteral.Values) {
		return false
	}
	for i, v := range l.Values {
		if literalValueString(v) != literalValueString(otherLiteral.Values[i]) {
			return false
		}
	}
	return true
}

func literalValueString(v any) string {
	if s, ok := v.(string); ok {
		return "'" + s + "'"
	}
	return fmt.Sprintf("%v", v)
}

// Enum is an enum-like type: a named type with a fixed set of member names.
type Enum struct {
	Name    string
	Choices []string
}

// NewEnum creates an enum descriptor with the given member names.
func NewEnum(name string, choices ...string) *Enum {
	if idx := strings.LastIndex(name, "."); idx >= 0 {
		name = name[idx+1:]
	}
	return &Enum{Name: name, Choices: choices}
}

func (e *Enum) Kind() Kind     { return KindEnum }
func (e *Enum) String() string { return e.Name }

// Equals checks if two enums have the same name and member names.
func (e *Enum) Equals(other Type) bool {
	otherEnum, ok := other.(*Enum)
	if !ok {
		return false
	}
	if e.Name != otherEnum.Name || len(e.Choices) != len(otherEnum.Choices) {
		return false
	}
	for i, c := range e.Choices {
		if c != otherEnum.Choices[i] {
			return false
		}
	}
	return true
}

func containsType(list []Type, t Type) bool {
	for _, existing := range list {
		if existing.Equals(t) {
			return true
		}
	}
	return false
}
