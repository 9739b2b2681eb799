package object

import "fmt"

// Attr is one raw attribute in a type's namespace: the underlying callable
// declaration plus the wrapper it was declared with. The wrapper is the
// un-invoked marker classification reads; it is never resolved away.
type Attr struct {
	Name    string
	Func    *Func
	Wrapper Wrapper
}

// Type declares a type: its name, doc text, base types, and an
// insertion-ordered attribute namespace. The constructor, when present, is
// the attribute named InitName; its implementation returns the constructed
// instance value.
type Type struct {
	Name  string
	Doc   string
	Bases []*Type

	attrs map[string]*Attr
	order []string
}

// NewType declares a type with the given bases, most-derived-first.
func NewType(name string, bases ...*Type) *Type {
	return &Type{
		Name:  name,
		Bases: bases,
		attrs: make(map[string]*Attr),
	}
}

// WithDoc attaches raw doc text to the declaration.
func (t *Type) WithDoc(doc string) *Type {
	t.Doc = doc
	return t
}

// Define adds an attribute to the type's own namespace, preserving
// insertion order. Redefining a name replaces the attribute but keeps its
// original position.
func (t *Type) Define(name string, fn *Func, wrapper Wrapper) *Type {
	if _, exists := t.attrs[name]; !exists {
		t.order = append(t.order, name)
	}
	t.attrs[name] = &Attr{Name: name, Func: fn, Wrapper: wrapper}
	return t
}

// DefineInit declares the type's constructor. The implementation must
// return the constructed instance value.
func (t *Type) DefineInit(fn *Func) *Type {
	return t.Define(InitName, fn, WrapperNone)
}

// Attr looks up a name in the type's own namespace only; inherited
// attributes are not visible here.
func (t *Type) Attr(name string) (*Attr, bool) {
	a, ok := t.attrs[name]
	return a, ok
}

// OwnNames returns the type's own attribute names in declaration order.
func (t *Type) OwnNames() []string {
	names := make([]string, len(t.order))
	copy(names, t.order)
	return names
}

// Chain returns the hierarchy snapshot for this type: an ordered list from
// most- to least-derived, depth-first over the bases with the first
// occurrence of a type winning. Classification consumes this snapshot and
// nothing else.
func (t *Type) Chain() []*Type {
	var chain []*Type
	seen := make(map[*Type]bool)
	var walk func(*Type)
	walk = func(cur *Type) {
		if cur == nil || seen[cur] {
			return
		}
		seen[cur] = true
		chain = append(chain, cur)
		for _, base := range cur.Bases {
			walk(base)
		}
	}
	walk(t)
	return chain
}

// Resolve walks the hierarchy snapshot for a name and returns the attribute
// together with the type that defines it.
func (t *Type) Resolve(name string) (*Attr, *Type, bool) {
	for _, level := range t.Chain() {
		if a, ok := level.attrs[name]; ok {
			return a, level, true
		}
	}
	return nil, nil, false
}

// Names returns every attribute name reachable from the type: its own names
// in declaration order, then inherited names level by level along the
// hierarchy, skipping names already seen.
func (t *Type) Names() []string {
	var names []string
	seen := make(map[string]bool)
	for _, level := range t.Chain() {
		for _, name := range level.order {
			if seen[name] {
				continue
			}
			seen[name] = true
			names = append(names, name)
		}
	}
	return names
}

// Construct invokes the type's constructor and returns the new instance
// value.
func (t *Type) Construct(args ...any) (any, error) {
	attr, _, ok := t.Resolve(InitName)
	if !ok || attr.Func == nil || attr.Func.Impl == nil {
		return nil, fmt.Errorf("type %s has no constructor", t.Name)
	}
	return attr.Func.Call(args...)
}

// Instance pairs an already-constructed value with its declaring type. The
// value is referenced, never copied or owned.
type Instance struct {
	Of    *Type
	Value any
}

// NewInstance wraps a constructed value with its type declaration.
func NewInstance(of *Type, value any) *Instance {
	return &Instance{Of: of, Value: value}
}
