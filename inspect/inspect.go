// Package inspect builds structured, queryable metadata models of callables
// and types: ordered parameter lists with reconciled types and
// descriptions, return types, and member classification by kind,
// visibility, and inheritance origin. Models are extracted once,
// synchronously, and are immutable afterwards.
package inspect

import (
	"fmt"
	"reflect"
	"runtime"
	"strings"

	"github.com/objkit-dev/objkit/object"
	"github.com/objkit-dev/objkit/typedesc"
)

// Model is the common surface of every extracted metadata model.
type Model interface {
	// Name returns the inspected object's name.
	Name() string
	// ToData returns the model's plain nested data projection.
	ToData() map[string]any
}

// Inspect dispatches an arbitrary input to the matching model: a callable
// declaration or bare Go func yields a Function, a type declaration a
// Class, and an instance an initialized Class. Anything else fails with an
// unsupported-object error.
func Inspect(obj any, opts ...Option) (Model, error) {
	switch v := obj.(type) {
	case *object.Func:
		return NewFunction(v, opts...), nil
	case *object.Type:
		return NewClass(v, opts...), nil
	case *object.Instance:
		return NewClassOf(v, opts...), nil
	}

	if obj != nil && reflect.TypeOf(obj).Kind() == reflect.Func {
		return NewFunction(declOfGoFunc(obj), opts...), nil
	}
	return nil, newError(CodeUnsupportedObject, "cannot inspect %T: not a callable or type", obj)
}

// declOfGoFunc derives a callable declaration from a live Go func through
// reflection. Go's runtime does not retain parameter names, so positional
// names are synthesized; types are mapped through the taxonomy.
func declOfGoFunc(fn any) *object.Func {
	t := reflect.TypeOf(fn)

	decl := object.NewFunc(goFuncName(fn), fn)
	for i := 0; i < t.NumIn(); i++ {
		p := object.Param{
			Name:    fmt.Sprintf("arg%d", i),
			Kind:    object.PositionalOnly,
			Type:    typedesc.FromReflect(t.In(i)),
			Default: object.Unset,
		}
		if t.IsVariadic() && i == t.NumIn()-1 {
			p.Kind = object.VarPositional
			p.Type = typedesc.FromReflect(t.In(i).Elem())
		}
		decl.Params = append(decl.Params, p)
	}

	outs := make([]typedesc.Type, 0, t.NumOut())
	for i := 0; i < t.NumOut(); i++ {
		if t.Out(i) == reflect.TypeOf((*error)(nil)).Elem() {
			continue
		}
		outs = append(outs, typedesc.FromReflect(t.Out(i)))
	}
	switch len(outs) {
	case 0:
	case 1:
		decl.Return = outs[0]
	default:
		decl.Return = typedesc.NewGeneric(typedesc.NewPlain("tuple"), outs...)
	}
	return decl
}

// goFuncName resolves a func value's symbol name, stripped of its package
// path. Anonymous funcs keep the runtime's func1-style suffix.
func goFuncName(fn any) string {
	pc := reflect.ValueOf(fn).Pointer()
	rf := runtime.FuncForPC(pc)
	if rf == nil {
		return "func"
	}
	name := rf.Name()
	if idx := strings.LastIndex(name, "."); idx >= 0 {
		name = name[idx+1:]
	}
	return strings.TrimSuffix(name, "-fm")
}
