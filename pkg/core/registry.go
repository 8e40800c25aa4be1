package core

import (
	"fmt"
	"reflect"
	"sort"
)

// RegistryKey identifies a payload type inside a registry. Obtain one with
// KindOf or Kind.
type RegistryKey = reflect.Type

// Registry is a type-indexed table of default strategies, keyed by the
// concrete payload type. At most one strategy is held per type; registering
// over an existing entry requires explicit replace intent.
//
// The two instantiations used by Document are FormatterRegistry and
// RendererRegistry.
type Registry[S any] struct {
	entries map[reflect.Type]S
}

// FormatterRegistry maps payload types to their default Formatter.
type FormatterRegistry = Registry[Formatter]

// RendererRegistry maps payload types to their default Renderer.
type RendererRegistry = Registry[Renderer]

// NewFormatterRegistry returns an empty formatter registry.
func NewFormatterRegistry() *FormatterRegistry { return newRegistry[Formatter]() }

// NewRendererRegistry returns an empty renderer registry.
func NewRendererRegistry() *RendererRegistry { return newRegistry[Renderer]() }

func newRegistry[S any]() *Registry[S] {
	return &Registry[S]{entries: make(map[reflect.Type]S)}
}

// Set registers the default strategy for a payload type. If an entry already
// exists and replace is false, it fails with ErrAlreadyRegistered and leaves
// the prior registration intact.
func (r *Registry[S]) Set(t reflect.Type, s S, replace bool) error {
	if _, exists := r.entries[t]; exists && !replace {
		return fmt.Errorf("type %s: %w (use replace to overwrite intentionally)", t, ErrAlreadyRegistered)
	}
	r.entries[t] = s
	return nil
}

// Get returns the strategy registered for the type. The boolean distinguishes
// "no strategy" from a registered strategy that happens to do nothing.
func (r *Registry[S]) Get(t reflect.Type) (S, bool) {
	s, ok := r.entries[t]
	return s, ok
}

// Remove deletes and returns the strategy registered for the type. It fails
// with ErrNotRegistered if the type has no entry.
func (r *Registry[S]) Remove(t reflect.Type) (S, error) {
	s, ok := r.entries[t]
	if !ok {
		var zero S
		return zero, fmt.Errorf("type %s: %w", t, ErrNotRegistered)
	}
	delete(r.entries, t)
	return s, nil
}

// Has reports whether a strategy is registered for the type.
func (r *Registry[S]) Has(t reflect.Type) bool {
	_, ok := r.entries[t]
	return ok
}

// Len returns the number of registered types.
func (r *Registry[S]) Len() int { return len(r.entries) }

// Types returns the registered payload type names, sorted for deterministic
// introspection output.
func (r *Registry[S]) Types() []string {
	out := make([]string, 0, len(r.entries))
	for t := range r.entries {
		out = append(out, t.String())
	}
	sort.Strings(out)
	return out
}
