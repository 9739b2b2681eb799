// Package registry keeps inspected models addressable by name so that
// downstream tools can treat arbitrary callables and types uniformly. The
// registry is in-memory only; models are registered once and read many
// times.
package registry

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/objkit-dev/objkit/inspect"
)

// Entry is one registered model with its registration identity.
type Entry struct {
	ID         string
	Name       string
	Model      inspect.Model
	Registered time.Time
}

// Registry is a thread-safe name-to-model index.
type Registry struct {
	mu     sync.RWMutex
	byName map[string]*Entry
	order  []string
	logger *zap.Logger
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the structured logger. The default is a no-op logger, so
// the registry stays silent unless asked.
func WithLogger(l *zap.Logger) Option {
	return func(r *Registry) { r.logger = l }
}

// New creates an empty registry.
func New(opts ...Option) *Registry {
	r := &Registry{
		byName: make(map[string]*Entry),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds a model under its own name. Registering a name twice
// fails; use Reset to start over.
func (r *Registry) Register(m inspect.Model) (*Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := m.Name()
	if _, exists := r.byName[name]; exists {
		return nil, fmt.Errorf("already registered: %s", name)
	}
	entry := &Entry{
		ID:         uuid.NewString(),
		Name:       name,
		Model:      m,
		Registered: time.Now(),
	}
	r.byName[name] = entry
	r.order = append(r.order, name)

	r.logger.Debug("model registered",
		zap.String("id", entry.ID),
		zap.String("name", name),
	)
	return entry, nil
}

// Lookup finds a registered model by name.
func (r *Registry) Lookup(name string) (*Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.byName[name]
	if !ok {
		return nil, fmt.Errorf("not registered: %s", name)
	}
	return entry, nil
}

// List returns all entries in registration order.
func (r *Registry) List() []*Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Entry, len(r.order))
	for i, name := range r.order {
		out[i] = r.byName[name]
	}
	return out
}

// Match returns the entries whose names match a wildcard pattern. A "*"
// matches any run of characters; everything else matches literally.
func (r *Registry) Match(pattern string) []*Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*Entry
	for _, name := range r.order {
		if matchPattern(name, pattern) {
			out = append(out, r.byName[name])
		}
	}
	return out
}

// Len returns the number of registered models.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

// Reset clears the registry.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byName = make(map[string]*Entry)
	r.order = nil
	r.logger.Debug("registry reset")
}

// Serialize renders every registered model's data projection as
// deterministic, indented JSON, keyed and sorted by name.
func (r *Registry) Serialize() ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	projection := make(map[string]any, len(r.byName))
	names := make([]string, 0, len(r.byName))
	for name, entry := range r.byName {
		projection[name] = entry.Model.ToData()
		names = append(names, name)
	}
	sort.Strings(names)

	data, err := json.MarshalIndent(projection, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize registry: %w", err)
	}
	return data, nil
}

// matchPattern matches a name against a pattern with "*" wildcards.
func matchPattern(s, pattern string) bool {
	if pattern == "*" || pattern == s {
		return true
	}
	parts := strings.Split(pattern, "*")
	if len(parts) == 1 {
		return false
	}
	if !strings.HasPrefix(s, parts[0]) {
		return false
	}
	s = s[len(parts[0]):]
	for _, part := range parts[1 : len(parts)-1] {
		idx := strings.Index(s, part)
		if idx < 0 {
			return false
		}
		s = s[idx+len(part):]
	}
	return strings.HasSuffix(s, parts[len(parts)-1])
}
