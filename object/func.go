package object

import (
	"fmt"

	"github.com/objkit-dev/objkit/typedesc"
)

// Param declares one parameter of a callable: its name, binding kind,
// optional annotation, and optional default value. Leave Type nil for an
// unannotated parameter and Default set to Unset for a required one.
type Param struct {
	Name    string
	Kind    ParamKind
	Type    typedesc.Type
	Default any
}

// RequiredParam declares a positional-or-keyword parameter with no default.
// A nil annotation means the parameter is unannotated.
func RequiredParam(name string, annotation typedesc.Type) Param {
	return Param{Name: name, Kind: PositionalOrKeyword, Type: annotation, Default: Unset}
}

// OptionalParam declares a positional-or-keyword parameter with a default
// value. An explicit nil default is a real value, not an absent one.
func OptionalParam(name string, annotation typedesc.Type, def any) Param {
	return Param{Name: name, Kind: PositionalOrKeyword, Type: annotation, Default: def}
}

// Func declares a callable: its identity, doc text, ordered parameters,
// return annotation, and an optional Go implementation used for invocation.
//
// Impl may be a func(args ...any) (any, error), which is invoked directly,
// or any other Go func, which is invoked through reflection with argument
// conversion. Receiver, when non-nil, is an instance the callable is
// already bound to; Call prepends it to the arguments.
type Func struct {
	Name     string
	Doc      string
	Params   []Param
	Return   typedesc.Type
	Impl     any
	Receiver any
}

// NewFunc declares a callable with the given implementation. Parameters and
// doc text are attached with the chainable With* methods.
func NewFunc(name string, impl any) *Func {
	return &Func{Name: name, Impl: impl}
}

// WithDoc attaches raw doc text to the declaration.
func (f *Func) WithDoc(doc string) *Func {
	f.Doc = doc
	return f
}

// WithParams appends parameter declarations in declaration order.
func (f *Func) WithParams(params ...Param) *Func {
	f.Params = append(f.Params, params...)
	return f
}

// WithReturn sets the declared return annotation.
func (f *Func) WithReturn(t typedesc.Type) *Func {
	f.Return = t
	return f
}

// Bind returns a copy of the declaration bound to the given receiver.
// Calling the bound copy passes the receiver as the leading argument.
func (f *Func) Bind(receiver any) *Func {
	bound := *f
	bound.Receiver = receiver
	return &bound
}

// IsBound reports whether the declaration carries a bound receiver.
func (f *Func) IsBound() bool { return f.Receiver != nil }

// Call invokes the declared implementation. A bound receiver is prepended
// to the arguments.
func (f *Func) Call(args ...any) (any, error) {
	if f.Impl == nil {
		return nil, fmt.Errorf("callable %s has no implementation", f.Name)
	}
	if f.Receiver != nil {
		args = append([]any{f.Receiver}, args...)
	}
	return invoke(f.Impl, args)
}
