package inspect

import (
	"context"
	"strconv"
	"strings"

	"github.com/objkit-dev/objkit/docstring"
	"github.com/objkit-dev/objkit/object"
	"github.com/objkit-dev/objkit/typedesc"
)

// greeter is the instance value behind the Greeter declaration.
type greeter struct {
	name  string
	count int
}

func newGreeterDecl() *object.Type {
	return object.NewType("Greeter").
		WithDoc("Greets whoever it was built for.").
		DefineInit(object.NewFunc(object.InitName, func(name string, count int) *greeter {
			return &greeter{name: name, count: count}
		}).WithParams(
			object.RequiredParam("name", typedesc.NewPlain("str")),
			object.OptionalParam("count", typedesc.NewPlain("int"), 1),
		)).
		Define("greet", object.NewFunc("greet", func(g *greeter, punct string) string {
			return strings.Repeat("hello "+g.name+punct+" ", g.count)
		}).WithParams(
			object.RequiredParam("punct", typedesc.NewPlain("str")),
		).WithReturn(typedesc.NewPlain("str")), object.WrapperNone).
		Define("tally", object.NewFunc("tally", func(g *greeter) string {
			return g.name + strconv.Itoa(g.count)
		}).WithReturn(typedesc.NewPlain("str")), object.WrapperNone)
}

// newShapeHierarchy builds a two-level hierarchy covering every member
// classification: plain, static, classmethod, property, protected, private,
// and inherited.
func newShapeHierarchy() (base, derived *object.Type) {
	base = object.NewType("Shape").
		Define("area", object.NewFunc("area", func(self any) float64 {
			return 0
		}).WithReturn(typedesc.NewPlain("float")), object.WrapperNone).
		Define("unit", object.NewFunc("unit", func() string {
			return "px"
		}).WithReturn(typedesc.NewPlain("str")), object.WrapperStatic).
		Define("of_size", object.NewFunc("of_size", func(cls any, n int) any {
			return nil
		}), object.WrapperClass).
		Define("_bounds", object.NewFunc("_bounds", func(self any) any {
			return nil
		}), object.WrapperNone).
		Define("__cache_key", object.NewFunc("__cache_key", func(self any) string {
			return ""
		}), object.WrapperNone)

	derived = object.NewType("Box", base).
		Define("area", object.NewFunc("area", func(self any) float64 {
			return 1
		}).WithReturn(typedesc.NewPlain("float")), object.WrapperNone).
		Define("label", object.NewFunc("label", func(self any) string {
			return "box"
		}).WithReturn(typedesc.NewPlain("str")), object.WrapperProperty)
	return base, derived
}

// stubParser hands back a fixed parse result regardless of input.
func stubParser(doc docstring.Doc) docstring.Parser {
	return docstring.ParserFunc(func(string) docstring.Doc { return doc })
}

// deferred resolves to a fixed value when awaited.
type deferred struct {
	value any
	err   error
}

func (d deferred) Await(ctx context.Context) (any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return d.value, d.err
}
