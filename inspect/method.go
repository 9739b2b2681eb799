package inspect

import (
	"fmt"
	"strings"

	"github.com/objkit-dev/objkit/object"
)

// MemberKind classifies how a member is invoked.
type MemberKind int

const (
	// KindInstance is a plain method invoked on an instance.
	KindInstance MemberKind = iota
	// KindStatic is a static method.
	KindStatic
	// KindClass is a classmethod.
	KindClass
	// KindProperty is a computed accessor.
	KindProperty
)

func (k MemberKind) String() string {
	switch k {
	case KindInstance:
		return "instance"
	case KindStatic:
		return "static"
	case KindClass:
		return "classmethod"
	case KindProperty:
		return "property"
	default:
		return fmt.Sprintf("member_kind(%d)", int(k))
	}
}

// Visibility is the naming-convention access level of a member.
type Visibility int

const (
	// Public members carry no underscore prefix.
	Public Visibility = iota
	// Protected members carry a single leading underscore.
	Protected
	// Private members carry the declaring type's mangling prefix or a
	// double leading underscore.
	Private
)

func (v Visibility) String() string {
	switch v {
	case Public:
		return "public"
	case Protected:
		return "protected"
	case Private:
		return "private"
	default:
		return fmt.Sprintf("visibility(%d)", int(v))
	}
}

// Method is a classified member of a type: an extracted signature plus its
// kind, visibility, and inheritance origin. Classification is computed once
// from the declaring type's hierarchy snapshot; no mutable state
// participates.
type Method struct {
	*Function

	declaring  *object.Type
	kind       MemberKind
	visibility Visibility
	inherited  bool
}

// NewMethod extracts and classifies one member of a type.
func NewMethod(attr *object.Attr, declaring *object.Type, opts ...Option) *Method {
	kind, visibility, inherited := classifyMember(attr.Name, attr, declaring, declaring.Chain())
	return &Method{
		Function:   NewFunction(attr.Func, opts...),
		declaring:  declaring,
		kind:       kind,
		visibility: visibility,
		inherited:  inherited,
	}
}

// classifyMember is a pure function of the member name, its raw attribute,
// the declaring type, and the declaring type's hierarchy snapshot.
func classifyMember(name string, attr *object.Attr, declaring *object.Type, chain []*object.Type) (MemberKind, Visibility, bool) {
	// Find the defining level: the first type in the snapshot whose own
	// namespace carries the name. The raw, un-resolved wrapper at that
	// level decides static and classmethod status.
	var defining *object.Attr
	for _, level := range chain {
		if a, ok := level.Attr(name); ok {
			defining = a
			break
		}
	}
	if defining == nil {
		defining = attr
	}

	kind := KindInstance
	switch {
	case defining.Wrapper == object.WrapperStatic:
		kind = KindStatic
	case defining.Wrapper == object.WrapperClass:
		kind = KindClass
	case attr.Wrapper == object.WrapperProperty:
		kind = KindProperty
	}

	visibility := Public
	manglingPrefix := "_" + declaring.Name + "__"
	switch {
	case strings.HasPrefix(name, manglingPrefix),
		strings.HasPrefix(name, "__") && !isDunder(name):
		visibility = Private
	case strings.HasPrefix(name, "_") && !isDunder(name):
		visibility = Protected
	}

	_, definedHere := declaring.Attr(name)
	return kind, visibility, !definedHere
}

// isDunder reports whether a name is double-underscore framed, like the
// constructor name.
func isDunder(name string) bool {
	return strings.HasPrefix(name, "__") && strings.HasSuffix(name, "__")
}

// Declaring returns the type the member was classified against.
func (m *Method) Declaring() *object.Type { return m.declaring }

// Kind returns the member's invocation kind.
func (m *Method) Kind() MemberKind { return m.kind }

// Visibility returns the member's naming-convention access level.
func (m *Method) Visibility() Visibility { return m.visibility }

// IsStatic reports whether the member is a static method.
func (m *Method) IsStatic() bool { return m.kind == KindStatic }

// IsClassMethod reports whether the member is a classmethod.
func (m *Method) IsClassMethod() bool { return m.kind == KindClass }

// IsProperty reports whether the member is a computed accessor.
func (m *Method) IsProperty() bool { return m.kind == KindProperty }

// IsPublic reports whether the member is public.
func (m *Method) IsPublic() bool { return m.visibility == Public }

// IsProtected reports whether the member is protected.
func (m *Method) IsProtected() bool { return m.visibility == Protected }

// IsPrivate reports whether the member is private.
func (m *Method) IsPrivate() bool { return m.visibility == Private }

// IsInherited reports whether the member was found only via a base type.
func (m *Method) IsInherited() bool { return m.inherited }

// ToData returns the plain nested data projection of the member.
func (m *Method) ToData() map[string]any {
	data := m.Function.ToData()
	data["kind"] = m.kind.String()
	data["visibility"] = m.visibility.String()
	data["inherited"] = m.inherited
	data["declaring_type"] = m.declaring.Name
	return data
}
