package inspect

import (
	"context"

	"github.com/objkit-dev/objkit/docstring"
	"github.com/objkit-dev/objkit/object"
	"github.com/objkit-dev/objkit/typedesc"
)

// Awaitable is a deferred result. When an invocation returns an Awaitable,
// the await-capable call paths suspend at that single point and resume with
// the unwrapped value. No scheduler is implied; waiting happens on whatever
// concurrency substrate the host already runs.
type Awaitable interface {
	Await(ctx context.Context) (any, error)
}

// Function is the extracted signature of one callable: its name, ordered
// parameters, return type, and description. A Function is built atomically
// and never mutated afterwards; a partially extracted signature is never
// exposed.
type Function struct {
	name        string
	doc         string
	description string
	params      []Parameter
	byName      map[string]int
	ret         typedesc.Type
	decl        *object.Func
}

// NewFunction extracts the signature of a callable declaration. Parameters
// are enumerated in declaration order; a leading receiver parameter is
// skipped unless KeepReceiver is given; descriptions from the parsed
// docstring are folded in by name, first match wins.
func NewFunction(decl *object.Func, opts ...Option) *Function {
	cfg := newConfig(opts)

	var doc docstring.Doc
	if cfg.parser != nil && decl.Doc != "" {
		doc = cfg.parser.Parse(decl.Doc)
	}
	descriptions := doc.ParamMap()

	f := &Function{
		name:        decl.Name,
		doc:         decl.Doc,
		description: doc.Description(),
		byName:      make(map[string]int),
		ret:         decl.Return,
		decl:        decl,
	}
	if f.ret == nil {
		f.ret = typedesc.Unset
	}

	for i, pd := range decl.Params {
		if i == 0 && cfg.skipReceiver && isReceiverName(pd.Name) {
			continue
		}
		p := parameterFromDecl(pd, cfg.infer)
		if desc, ok := descriptions[p.Name]; ok && desc != "" {
			p.Description = desc
		}
		f.byName[p.Name] = len(f.params)
		f.params = append(f.params, p)
	}
	return f
}

func isReceiverName(name string) bool {
	return name == "self" || name == "cls"
}

// Name returns the callable's name.
func (f *Function) Name() string { return f.name }

// Doc returns the raw docstring text.
func (f *Function) Doc() string { return f.doc }

// Description returns the docstring description, short form preferred.
func (f *Function) Description() string { return f.description }

// Return returns the declared return type, Unset when none was declared.
func (f *Function) Return() typedesc.Type { return f.ret }

// Params returns the parameters in declaration order.
func (f *Function) Params() []Parameter {
	out := make([]Parameter, len(f.params))
	copy(out, f.params)
	return out
}

// ParamCount returns the number of extracted parameters.
func (f *Function) ParamCount() int { return len(f.params) }

// GetParam retrieves a single parameter by name or by position.
func (f *Function) GetParam(key any) (Parameter, error) {
	switch k := key.(type) {
	case string:
		idx, ok := f.byName[k]
		if !ok {
			return Parameter{}, newError(CodeNotFound, "no parameter named %q in %s", k, f.name)
		}
		return f.params[idx], nil
	case int:
		if k < 0 || k >= len(f.params) {
			return Parameter{}, newError(CodeIndexOutOfRange, "parameter index %d out of range for %s (%d parameters)", k, f.name, len(f.params))
		}
		return f.params[k], nil
	default:
		return Parameter{}, newError(CodeInvalidKeyType, "parameter selector must be string or int, got %T", key)
	}
}

// Call invokes the underlying callable.
func (f *Function) Call(args ...any) (any, error) {
	return f.decl.Call(args...)
}

// CallAwait invokes the underlying callable and, if the result is an
// Awaitable, waits for it.
func (f *Function) CallAwait(ctx context.Context, args ...any) (any, error) {
	res, err := f.Call(args...)
	if err != nil {
		return nil, err
	}
	if aw, ok := res.(Awaitable); ok {
		return aw.Await(ctx)
	}
	return res, nil
}

// ToData returns the plain nested data projection of the signature.
func (f *Function) ToData() map[string]any {
	params := make([]map[string]any, len(f.params))
	for i, p := range f.params {
		params[i] = p.ToData()
	}
	data := map[string]any{
		"name":        f.name,
		"parameters":  params,
		"description": f.description,
		"docstring":   f.doc,
		"return":      nil,
	}
	if !typedesc.IsUnset(f.ret) {
		data["return"] = f.ret.String()
	}
	return data
}

// SplitArgs partitions a name-to-value argument map into the positional
// slice and keyword map an invocation needs: positional-only parameters go
// to the slice in declaration order, everything else binds by name. Only
// names present in the map are bound.
func SplitArgs(args map[string]any, f *Function) ([]any, map[string]any) {
	var positional []any
	keyword := make(map[string]any)
	for _, p := range f.params {
		v, ok := args[p.Name]
		if !ok {
			continue
		}
		if p.Kind == object.PositionalOnly {
			positional = append(positional, v)
		} else {
			keyword[p.Name] = v
		}
	}
	return positional, keyword
}
