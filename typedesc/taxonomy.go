package typedesc

import "strings"

// IsUnion reports whether t is a union descriptor.
func IsUnion(t Type) bool {
	return t != nil && t.Kind() == KindUnion
}

// IsGenericContainer reports whether t carries an origin type plus argument
// types, i.e. a parametrized container such as list[int].
func IsGenericContainer(t Type) bool {
	return t != nil && t.Kind() == KindGeneric
}

// IsEnum reports whether t is an enum-like type.
func IsEnum(t Type) bool {
	return t != nil && t.Kind() == KindEnum
}

// IsDirectLiteral reports whether t is a parametrized literal type. The bare
// literal marker (no values) is not a direct literal, and neither is a
// literal wrapped inside a union.
func IsDirectLiteral(t Type) bool {
	l, ok := t.(*Literal)
	return ok && len(l.Values) > 0
}

// IsOrContainsLiteral reports whether t is a direct literal or a union with
// at least one literal branch, recursively.
func IsOrContainsLiteral(t Type) bool {
	if IsDirectLiteral(t) {
		return true
	}
	u, ok := t.(*Union)
	if !ok {
		return false
	}
	for _, b := range u.Branches {
		if IsOrContainsLiteral(b) {
			return true
		}
	}
	return false
}

// Flatten expands nested union branches into one linear, de-duplicated,
// order-preserving list. A non-union descriptor flattens to itself.
// Flatten is idempotent: flattening an already-flat list changes nothing.
func Flatten(t Type) []Type {
	u, ok := t.(*Union)
	if !ok {
		return []Type{t}
	}
	flat := make([]Type, 0, len(u.Branches))
	for _, b := range u.Branches {
		for _, leaf := range Flatten(b) {
			if !containsType(flat, leaf) {
				flat = append(flat, leaf)
			}
		}
	}
	return flat
}

// Choices returns the ordered set of concrete values or member names a type
// is restricted to: a direct literal yields its values, an enum its member
// names, and a union the first-seen-order concatenation of choices from each
// literal or enum branch. Any other descriptor yields nil.
func Choices(t Type) []any {
	switch d := t.(type) {
	case *Literal:
		if len(d.Values) == 0 {
			return nil
		}
		out := make([]any, len(d.Values))
		copy(out, d.Values)
		return out
	case *Enum:
		out := make([]any, len(d.Choices))
		for i, c := range d.Choices {
			out[i] = c
		}
		return out
	case *Union:
		var out []any
		seen := make(map[string]bool)
		for _, b := range d.Branches {
			for _, c := range Choices(b) {
				key := literalValueString(c)
				if seen[key] {
					continue
				}
				seen[key] = true
				out = append(out, c)
			}
		}
		return out
	default:
		return nil
	}
}

// Simplify collapses a parametrized container to its bare origin
// (list[int] becomes list) and simplifies each branch of a union. All other
// descriptors are returned unchanged.
func Simplify(t Type) Type {
	switch d := t.(type) {
	case *Generic:
		return d.Origin
	case *Union:
		simplified := make([]Type, len(d.Branches))
		for i, b := range d.Branches {
			simplified[i] = Simplify(b)
		}
		return NewUnion(simplified...)
	default:
		return t
	}
}

// SimplifiedName shortens a rendered type name for compact display: module
// paths are stripped and a trailing "| None" union branch collapses into a
// "?" suffix.
func SimplifiedName(name string) string {
	if idx := strings.LastIndex(name, "."); idx >= 0 {
		name = name[idx+1:]
	}
	if strings.Contains(name, "| None") {
		name = strings.TrimSpace(strings.ReplaceAll(name, "| None", ""))
		name += "?"
	}
	return name
}
