package inspect

import (
	"github.com/objkit-dev/objkit/object"
	"github.com/objkit-dev/objkit/typedesc"
)

// Parameter is one parameter of an extracted signature: its identity, type,
// default value, and docstring description. Parameters are immutable once
// built; Function hands out copies.
type Parameter struct {
	Name        string
	Kind        object.ParamKind
	Type        typedesc.Type
	Default     any
	Description string
}

// NewParameter builds a parameter and, when infer is set, runs default-value
// type inference exactly once: an untyped parameter with a present default
// takes the runtime type of that default. A nil default infers the none
// type. Inference never re-runs.
func NewParameter(name string, kind object.ParamKind, typ typedesc.Type, def any, description string, infer bool) Parameter {
	if typ == nil {
		typ = typedesc.Unset
	}
	p := Parameter{
		Name:        name,
		Kind:        kind,
		Type:        typ,
		Default:     def,
		Description: description,
	}
	if infer && !p.IsTyped() && p.HasDefault() {
		p.Type = typedesc.OfValue(p.Default)
	}
	return p
}

func parameterFromDecl(decl object.Param, infer bool) Parameter {
	return NewParameter(decl.Name, decl.Kind, decl.Type, decl.Default, "", infer)
}

// IsTyped reports whether the parameter carries a type, declared or
// inferred.
func (p Parameter) IsTyped() bool {
	return !typedesc.IsUnset(p.Type)
}

// IsRequired reports whether the parameter has no default value.
func (p Parameter) IsRequired() bool {
	return p.Default == object.Unset
}

// IsOptional reports whether the parameter has a default value.
func (p Parameter) IsOptional() bool {
	return !p.IsRequired()
}

// HasDefault reports whether a default value is present. An explicit nil
// default counts; the Unset sentinel does not.
func (p Parameter) HasDefault() bool {
	return p.Default != object.Unset
}

// ToData returns the plain nested data projection of the parameter.
func (p Parameter) ToData() map[string]any {
	data := map[string]any{
		"name":        p.Name,
		"kind":        p.Kind.String(),
		"type":        nil,
		"default":     nil,
		"required":    p.IsRequired(),
		"description": p.Description,
	}
	if p.IsTyped() {
		data["type"] = p.Type.String()
	}
	if p.HasDefault() {
		data["default"] = p.Default
	}
	return data
}
