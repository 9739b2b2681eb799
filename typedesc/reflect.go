package typedesc

import "reflect"

// Enumerated is implemented by Go values that expose a fixed named choice
// set. Values implementing it are classified as enums by OfValue and
// FromReflect.
type Enumerated interface {
	EnumChoices() []string
}

var enumeratedIface = reflect.TypeOf((*Enumerated)(nil)).Elem()

// OfValue maps a live Go value into the taxonomy. A nil value maps to the
// none type. This is the inference source for untyped parameters with
// default values.
func OfValue(v any) Type {
	if v == nil {
		return None
	}
	if e, ok := v.(Enumerated); ok {
		return NewEnum(reflect.TypeOf(v).Name(), e.EnumChoices()...)
	}
	return FromReflect(reflect.TypeOf(v))
}

// FromReflect maps a Go reflect type into the taxonomy:
//
//   - pointers become "T | None" unions (an absent pointer is a null)
//   - slices and arrays become generic list containers
//   - maps become generic dict containers
//   - numeric kinds collapse to int / float / complex
//   - named non-builtin types keep their declared name
//
// The vocabulary is the annotation-style one the rest of the taxonomy
// renders (list[int], str, None), not Go syntax.
func FromReflect(t reflect.Type) Type {
	if t == nil {
		return None
	}
	if t.Implements(enumeratedIface) && t.Kind() != reflect.Ptr {
		zero := reflect.Zero(t).Interface()
		if e, ok := zero.(Enumerated); ok {
			return NewEnum(t.Name(), e.EnumChoices()...)
		}
	}

	switch t.Kind() {
	case reflect.Ptr:
		return NewUnion(FromReflect(t.Elem()), None)
	case reflect.Slice, reflect.Array:
		return NewGeneric(NewPlain("list"), FromReflect(t.Elem()))
	case reflect.Map:
		return NewGeneric(NewPlain("dict"), FromReflect(t.Key()), FromReflect(t.Elem()))
	case reflect.Func:
		return NewPlain("callable")
	}

	// Named non-builtin types keep their declared name even when their
	// underlying kind is a basic one.
	if t.PkgPath() != "" && t.Name() != "" {
		return NewPlain(t.Name())
	}

	switch t.Kind() {
	case reflect.Bool:
		return NewPlain("bool")
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return NewPlain("int")
	case reflect.Float32, reflect.Float64:
		return NewPlain("float")
	case reflect.Complex64, reflect.Complex128:
		return NewPlain("complex")
	case reflect.String:
		return NewPlain("str")
	case reflect.Interface:
		if t.NumMethod() == 0 {
			return NewPlain("Any")
		}
		return NewPlain(t.String())
	default:
		return NewPlain(t.String())
	}
}
