// Package render turns inspection models into display strings, plain or
// colorized. The core models never format themselves; this package reads
// their public surface only.
package render

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/objkit-dev/objkit/inspect"
	"github.com/objkit-dev/objkit/typedesc"
)

// Theme maps model elements to colors.
type Theme struct {
	Keyword     *color.Color
	Name        *color.Color
	Type        *color.Color
	Default     *color.Color
	Description *color.Color
}

// DefaultTheme mirrors common terminal conventions: names in yellow, types
// in green, defaults in blue.
func DefaultTheme() *Theme {
	return &Theme{
		Keyword:     color.New(color.FgBlue),
		Name:        color.New(color.FgYellow),
		Type:        color.New(color.FgGreen),
		Default:     color.New(color.FgBlue),
		Description: color.New(color.FgHiBlack),
	}
}

// Renderer formats inspection models.
type Renderer struct {
	theme    *Theme
	colored  bool
	indent   int
	simplify bool
}

// Option configures a Renderer.
type Option func(*Renderer)

// NoColor disables ANSI colors.
func NoColor() Option {
	return func(r *Renderer) { r.colored = false }
}

// WithTheme sets the color theme.
func WithTheme(t *Theme) Option {
	return func(r *Renderer) { r.theme = t }
}

// WithIndent sets the indentation width for class member listings.
func WithIndent(n int) Option {
	return func(r *Renderer) { r.indent = n }
}

// Simplified shortens type names: module paths stripped, "| None" unions
// collapsed into a "?" suffix.
func Simplified() Option {
	return func(r *Renderer) { r.simplify = true }
}

// New creates a Renderer. Colors are on by default.
func New(opts ...Option) *Renderer {
	r := &Renderer{
		theme:   DefaultTheme(),
		colored: true,
		indent:  2,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Parameter renders one parameter as "name: type = default".
func (r *Renderer) Parameter(p inspect.Parameter) string {
	var b strings.Builder
	b.WriteString(r.paint(r.theme.Name, p.Name))

	if p.IsTyped() {
		b.WriteString(": ")
		b.WriteString(r.typeName(p.Type))
	}
	if p.HasDefault() {
		b.WriteString(" = ")
		b.WriteString(r.paint(r.theme.Default, formatValue(p.Default)))
	}
	return b.String()
}

// Function renders a signature line with an optional description line.
func (r *Renderer) Function(f *inspect.Function) string {
	params := make([]string, 0, f.ParamCount())
	for _, p := range f.Params() {
		params = append(params, r.Parameter(p))
	}

	var b strings.Builder
	b.WriteString(r.paint(r.theme.Name, f.Name()))
	b.WriteString("(")
	b.WriteString(strings.Join(params, ", "))
	b.WriteString(")")
	if !typedesc.IsUnset(f.Return()) {
		b.WriteString(" -> ")
		b.WriteString(r.typeName(f.Return()))
	}
	if f.Description() != "" {
		b.WriteString("\n")
		b.WriteString(r.paint(r.theme.Description, f.Description()))
	}
	return b.String()
}

// Class renders a class header, its description, and its members indented
// one level.
func (r *Renderer) Class(c *inspect.Class) string {
	var b strings.Builder
	b.WriteString(r.paint(r.theme.Keyword, "class"))
	b.WriteString(" ")
	b.WriteString(r.paint(r.theme.Name, c.Name()))
	b.WriteString(":")
	if c.Description() != "" {
		b.WriteString("\n")
		b.WriteString(r.paint(r.theme.Description, c.Description()))
	}

	pad := strings.Repeat(" ", r.indent)
	for _, m := range c.Methods() {
		b.WriteString("\n")
		for i, line := range strings.Split(r.Function(m.Function), "\n") {
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString(pad + line)
		}
	}
	return b.String()
}

// typeName renders a type, coloring name segments while leaving structural
// punctuation uncolored.
func (r *Renderer) typeName(t typedesc.Type) string {
	name := t.String()
	if r.simplify {
		name = typedesc.SimplifiedName(name)
	}
	if !r.colored {
		return name
	}

	const plain = "[](){}|,?"
	var b strings.Builder
	var segment strings.Builder
	flush := func() {
		if segment.Len() > 0 {
			b.WriteString(r.theme.Type.Sprint(segment.String()))
			segment.Reset()
		}
	}
	for _, ch := range name {
		if strings.ContainsRune(plain, ch) {
			flush()
			b.WriteRune(ch)
		} else {
			segment.WriteRune(ch)
		}
	}
	flush()
	return b.String()
}

func (r *Renderer) paint(c *color.Color, s string) string {
	if !r.colored || c == nil {
		return s
	}
	return c.Sprint(s)
}

func formatValue(v any) string {
	if s, ok := v.(string); ok {
		return fmt.Sprintf("%q", s)
	}
	return fmt.Sprintf("%v", v)
}
