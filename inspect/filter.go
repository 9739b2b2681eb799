package inspect

import "github.com/objkit-dev/objkit/object"

// FilterConfig is the member inclusion option set. Each flag admits one
// category of members; for each disabled flag a matching exclusion
// predicate is active. Enabling a flag can only grow the included set.
type FilterConfig struct {
	Init        bool
	Public      bool
	Inherited   bool
	Static      bool
	Protected   bool
	Private     bool
	ClassMethod bool
}

// DefaultFilter includes everything except protected, private, and
// classmethod members.
func DefaultFilter() FilterConfig {
	return FilterConfig{
		Init:      true,
		Public:    true,
		Inherited: true,
		Static:    true,
	}
}

// memberFilter holds the active exclusion predicates for one config. A
// member is included iff it matches none of them.
type memberFilter struct {
	checks []func(*Method) bool
}

func newMemberFilter(cfg FilterConfig) *memberFilter {
	f := &memberFilter{}
	if !cfg.Init {
		f.checks = append(f.checks, func(m *Method) bool { return m.Name() == object.InitName })
	}
	if !cfg.Static {
		f.checks = append(f.checks, (*Method).IsStatic)
	}
	if !cfg.Inherited {
		f.checks = append(f.checks, (*Method).IsInherited)
	}
	if !cfg.Private {
		f.checks = append(f.checks, (*Method).IsPrivate)
	}
	if !cfg.Protected {
		f.checks = append(f.checks, (*Method).IsProtected)
	}
	if !cfg.Public {
		f.checks = append(f.checks, (*Method).IsPublic)
	}
	if !cfg.ClassMethod {
		f.checks = append(f.checks, (*Method).IsClassMethod)
	}
	return f
}

// Include reports whether the member passes every active exclusion check.
func (f *memberFilter) Include(m *Method) bool {
	for _, check := range f.checks {
		if check(m) {
			return false
		}
	}
	return true
}
