// Package object defines the declaration snapshots objkit inspects: callable
// declarations, type declarations with an ordered attribute namespace and a
// base hierarchy, and instance values. Declarations are built once and
// treated as immutable afterwards; classification elsewhere consumes only
// the snapshot, never global state.
package object

import "fmt"

// InitName is the member name of a type's constructor.
const InitName = "__init__"

// unset is the sentinel type behind Unset. Its display form is fixed at
// definition time.
type unset struct{}

func (unset) String() string { return "<unset>" }

// Unset marks "no value was supplied". It is distinct from an explicit nil
// default: a parameter declared with a nil default has a value, a parameter
// declared with Unset does not.
var Unset = unset{}

// ParamKind classifies how a parameter binds at a call site.
type ParamKind int

const (
	// PositionalOnly binds by position exclusively.
	PositionalOnly ParamKind = iota
	// PositionalOrKeyword binds by position or by name.
	PositionalOrKeyword
	// VarPositional collects excess positional arguments.
	VarPositional
	// KeywordOnly binds by name exclusively.
	KeywordOnly
	// VarKeyword collects excess keyword arguments.
	VarKeyword
)

func (k ParamKind) String() string {
	switch k {
	case PositionalOnly:
		return "positional_only"
	case PositionalOrKeyword:
		return "positional_or_keyword"
	case VarPositional:
		return "var_positional"
	case KeywordOnly:
		return "keyword_only"
	case VarKeyword:
		return "var_keyword"
	default:
		return fmt.Sprintf("param_kind(%d)", int(k))
	}
}

// Wrapper marks how an attribute is declared on its type: as a plain
// instance method, a static method, a classmethod, or a property accessor.
type Wrapper int

const (
	// WrapperNone is a plain instance method.
	WrapperNone Wrapper = iota
	// WrapperStatic is a static method marker.
	WrapperStatic
	// WrapperClass is a classmethod wrapper.
	WrapperClass
	// WrapperProperty is a computed-accessor object.
	WrapperProperty
)

func (w Wrapper) String() string {
	switch w {
	case WrapperNone:
		return "instance"
	case WrapperStatic:
		return "static"
	case WrapperClass:
		return "classmethod"
	case WrapperProperty:
		return "property"
	default:
		return fmt.Sprintf("wrapper(%d)", int(w))
	}
}
