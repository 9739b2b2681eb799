// Package docstring defines the boundary to the external docstring parser
// collaborator. The core consumes parsed results only; no parser
// implementation ships here.
package docstring

// ParamDoc is one documented parameter: its name and free-text description.
type ParamDoc struct {
	Name        string
	Description string
}

// Doc is the parsed form of a docstring. The zero value is the empty
// result for absent or empty input.
type Doc struct {
	Short  string
	Long   string
	Params []ParamDoc
}

// Description returns the short description, falling back to the long one.
func (d Doc) Description() string {
	if d.Short != "" {
		return d.Short
	}
	return d.Long
}

// ParamMap builds a name-keyed description lookup. The first entry for a
// name wins; later duplicates are ignored.
func (d Doc) ParamMap() map[string]string {
	m := make(map[string]string, len(d.Params))
	for _, p := range d.Params {
		if _, seen := m[p.Name]; seen {
			continue
		}
		m[p.Name] = p.Description
	}
	return m
}

// Parser parses raw docstring text. Absent or empty input must yield the
// zero Doc, never an error.
type Parser interface {
	Parse(text string) Doc
}

// ParserFunc adapts a plain function to the Parser interface.
type ParserFunc func(text string) Doc

// Parse implements Parser.
func (f ParserFunc) Parse(text string) Doc { return f(text) }
