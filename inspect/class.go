package inspect

import (
	"context"

	"github.com/objkit-dev/objkit/docstring"
	"github.com/objkit-dev/objkit/object"
)

// Class aggregates the classified, filtered members of a type or instance.
// Member order is declaration order: the type's own namespace first, then
// inherited names level by level along the hierarchy snapshot.
//
// The only mutable state is the initialized flag and its instance
// reference, flipped by Init. That pair follows single-writer discipline;
// concurrent mutation is the caller's responsibility.
type Class struct {
	name        string
	doc         string
	description string
	decl        *object.Type

	members map[string]*Method
	order   []string
	hasInit bool

	initialized      bool
	instance         any
	receivedInstance bool
}

// NewClass inspects a type declaration. The class starts uninitialized;
// Init constructs the underlying instance.
func NewClass(decl *object.Type, opts ...Option) *Class {
	c := build(decl, opts)
	c.name = decl.Name
	return c
}

// NewClassOf inspects an already-constructed instance. The class is
// initialized immediately and references the instance value for its
// lifetime; ownership is not taken.
func NewClassOf(inst *object.Instance, opts ...Option) *Class {
	c := build(inst.Of, opts)
	c.name = inst.Of.Name + " instance"
	c.initialized = true
	c.instance = inst.Value
	c.receivedInstance = true
	return c
}

func build(decl *object.Type, opts []Option) *Class {
	cfg := newConfig(opts)
	filter := newMemberFilter(cfg.filter)

	var doc docstring.Doc
	if cfg.parser != nil && decl.Doc != "" {
		doc = cfg.parser.Parse(decl.Doc)
	}

	c := &Class{
		doc:         decl.Doc,
		description: doc.Description(),
		decl:        decl,
		members:     make(map[string]*Method),
	}
	for _, name := range decl.Names() {
		attr, _, ok := decl.Resolve(name)
		if !ok {
			continue
		}
		m := NewMethod(attr, decl, opts...)
		if !filter.Include(m) {
			continue
		}
		c.members[name] = m
		c.order = append(c.order, name)
	}
	_, c.hasInit = c.members[object.InitName]
	return c
}

// Name returns the class name, or "<Name> instance" when wrapping an
// instance.
func (c *Class) Name() string { return c.name }

// Doc returns the raw docstring text.
func (c *Class) Doc() string { return c.doc }

// Description returns the docstring description.
func (c *Class) Description() string { return c.description }

// Decl returns the underlying type declaration.
func (c *Class) Decl() *object.Type { return c.decl }

// HasInit reports whether the constructor survived filtering.
func (c *Class) HasInit() bool { return c.hasInit }

// Initialized reports whether an underlying instance exists.
func (c *Class) Initialized() bool { return c.initialized }

// WrapsInstance reports whether the class was built from an
// already-constructed instance rather than a bare type.
func (c *Class) WrapsInstance() bool { return c.receivedInstance }

// Instance returns the underlying instance value, nil before Init.
func (c *Class) Instance() any { return c.instance }

// Methods returns the included members in declaration order.
func (c *Class) Methods() []*Method {
	out := make([]*Method, len(c.order))
	for i, name := range c.order {
		out[i] = c.members[name]
	}
	return out
}

// InitMethod returns the constructor member, or nil when absent.
func (c *Class) InitMethod() *Method {
	return c.members[object.InitName]
}

// InitParams returns the constructor's parameters, or nil when the class
// has no constructor.
func (c *Class) InitParams() []Parameter {
	init := c.InitMethod()
	if init == nil {
		return nil
	}
	return init.Params()
}

// GetMethod retrieves a member by name or by declaration-order index.
func (c *Class) GetMethod(key any) (*Method, error) {
	switch k := key.(type) {
	case string:
		m, ok := c.members[k]
		if !ok {
			return nil, newError(CodeNotFound, "no method named %q in %s", k, c.name)
		}
		return m, nil
	case int:
		if k < 0 || k >= len(c.order) {
			return nil, newError(CodeIndexOutOfRange, "method index %d out of range for %s (%d methods)", k, c.name, len(c.order))
		}
		return c.members[c.order[k]], nil
	default:
		return nil, newError(CodeInvalidKeyType, "method selector must be string or int, got %T", key)
	}
}

// Init constructs the underlying instance. It fails if the class is
// already initialized or if the declaration cannot be constructed.
func (c *Class) Init(args ...any) error {
	if c.initialized {
		return newError(CodeAlreadyInitialized, "%s is already initialized", c.name)
	}
	instance, err := c.decl.Construct(args...)
	if err != nil {
		return newError(CodeUnsupportedObject, "cannot initialize %s: %v", c.name, err)
	}
	c.instance = instance
	c.initialized = true
	return nil
}

// CallMethod resolves a member and invokes it. Non-static members require
// an initialized class. The owned instance is bound as the receiver only
// when the member was not already bound by the original declaration.
func (c *Class) CallMethod(key any, args ...any) (any, error) {
	m, err := c.GetMethod(key)
	if err != nil {
		return nil, err
	}
	if !m.IsStatic() && !c.initialized {
		return nil, newError(CodeNotInitialized, "%s is not initialized", c.name)
	}
	return c.call(m, args)
}

// CallMethodAwait is CallMethod with the await-capable result path.
func (c *Class) CallMethodAwait(ctx context.Context, key any, args ...any) (any, error) {
	res, err := c.CallMethod(key, args...)
	if err != nil {
		return nil, err
	}
	if aw, ok := res.(Awaitable); ok {
		return aw.Await(ctx)
	}
	return res, nil
}

func (c *Class) call(m *Method, args []any) (any, error) {
	switch {
	case m.IsStatic():
		return m.Call(args...)
	case m.IsClassMethod():
		if m.Function.decl.IsBound() {
			return m.Call(args...)
		}
		return m.Call(append([]any{c.decl}, args...)...)
	default:
		if m.Function.decl.IsBound() {
			return m.Call(args...)
		}
		return m.Call(append([]any{c.instance}, args...)...)
	}
}

// SplitInitArgs partitions a name-to-value map intended for a combined
// constructor-plus-method call: keys naming constructor parameters go to
// the first map, everything else to the second. A static target method
// needs no construction, so everything stays in the second map.
func (c *Class) SplitInitArgs(args map[string]any, m *Method) (map[string]any, map[string]any) {
	initArgs := make(map[string]any)
	rest := make(map[string]any)
	if m.IsStatic() || !c.hasInit {
		for k, v := range args {
			rest[k] = v
		}
		return initArgs, rest
	}
	initNames := make(map[string]bool)
	for _, p := range c.InitParams() {
		initNames[p.Name] = true
	}
	for k, v := range args {
		if initNames[k] {
			initArgs[k] = v
		} else {
			rest[k] = v
		}
	}
	return initArgs, rest
}

// ToData returns the plain nested data projection of the class.
func (c *Class) ToData() map[string]any {
	methods := make([]map[string]any, 0, len(c.order))
	for _, name := range c.order {
		methods = append(methods, c.members[name].ToData())
	}
	return map[string]any{
		"name":        c.name,
		"methods":     methods,
		"description": c.description,
		"initialized": c.initialized,
		"docstring":   c.doc,
	}
}
