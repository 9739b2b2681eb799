package object

import (
	"fmt"
	"reflect"
)

var errType = reflect.TypeOf((*error)(nil)).Elem()

// invoke calls an implementation with the given arguments. The
// func(args ...any) (any, error) shape is invoked directly; every other Go
// func goes through reflection with per-argument conversion. Reflected
// results follow the usual Go conventions: a trailing error return is
// surfaced as the error, a single remaining value as the result, and
// multiple remaining values as a []any.
func invoke(impl any, args []any) (any, error) {
	if direct, ok := impl.(func(args ...any) (any, error)); ok {
		return direct(args...)
	}

	fn := reflect.ValueOf(impl)
	if fn.Kind() != reflect.Func {
		return nil, fmt.Errorf("implementation is %T, not a func", impl)
	}
	ft := fn.Type()

	in, err := convertArgs(ft, args)
	if err != nil {
		return nil, err
	}

	out := fn.Call(in)

	// Split off a trailing error return.
	if n := len(out); n > 0 && ft.Out(n-1) == errType {
		if !out[n-1].IsNil() {
			return nil, out[n-1].Interface().(error)
		}
		out = out[:n-1]
	}

	switch len(out) {
	case 0:
		return nil, nil
	case 1:
		return out[0].Interface(), nil
	default:
		results := make([]any, len(out))
		for i, v := range out {
			results[i] = v.Interface()
		}
		return results, nil
	}
}

// convertArgs maps loosely-typed arguments onto the func's parameter types.
// A nil argument becomes the zero value of the parameter type; assignable
// and convertible values are passed through or converted.
func convertArgs(ft reflect.Type, args []any) ([]reflect.Value, error) {
	numIn := ft.NumIn()
	if ft.IsVariadic() {
		if len(args) < numIn-1 {
			return nil, fmt.Errorf("expected at least %d arguments, got %d", numIn-1, len(args))
		}
	} else if len(args) != numIn {
		return nil, fmt.Errorf("expected %d arguments, got %d", numIn, len(args))
	}

	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		var want reflect.Type
		if ft.IsVariadic() && i >= numIn-1 {
			want = ft.In(numIn - 1).Elem()
		} else {
			want = ft.In(i)
		}

		if arg == nil {
			in[i] = reflect.Zero(want)
			continue
		}
		v := reflect.ValueOf(arg)
		switch {
		case v.Type().AssignableTo(want):
			in[i] = v
		case v.Type().ConvertibleTo(want):
			in[i] = v.Convert(want)
		default:
			return nil, fmt.Errorf("argument %d: cannot use %T as %s", i, arg, want)
		}
	}
	return in, nil
}
