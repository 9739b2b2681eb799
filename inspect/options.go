package inspect

import "github.com/objkit-dev/objkit/docstring"

type config struct {
	parser       docstring.Parser
	skipReceiver bool
	infer        bool
	filter       FilterConfig
}

func newConfig(opts []Option) config {
	cfg := config{
		skipReceiver: true,
		infer:        true,
		filter:       DefaultFilter(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Option configures extraction.
type Option func(*config)

// WithDocParser sets the docstring parser collaborator used to merge
// parameter descriptions. Without one, descriptions stay absent.
func WithDocParser(p docstring.Parser) Option {
	return func(c *config) { c.parser = p }
}

// KeepReceiver keeps a declared leading receiver parameter ("self" or
// "cls") in the extracted signature instead of skipping it.
func KeepReceiver() Option {
	return func(c *config) { c.skipReceiver = false }
}

// WithoutInference disables default-value type inference for untyped
// parameters.
func WithoutInference() Option {
	return func(c *config) { c.infer = false }
}

// WithFilter sets the member inclusion filter used by class extraction.
func WithFilter(f FilterConfig) Option {
	return func(c *config) { c.filter = f }
}
