// Package core contains the document-assembly domain: blocks, content,
// strategy registries and the Document orchestrator.
//
// The core is agnostic to concrete payload types and output formats. Payloads
// live in pkg/blocks (or in any caller package), formatting and rendering
// strategies in pkg/formatters and pkg/renderers. The core only resolves and
// applies them.
package core

import (
	"fmt"
	"reflect"
)

// Data marks a value as block payload.
//
// Concrete payload types declare their own fields and invariants; the core
// treats them as opaque capsules and dispatches on their concrete type
// identity. Implementations are typically empty:
//
//	type PlainText struct{ Text string }
//
//	func (PlainText) BlockData() {}
type Data interface {
	// BlockData is a marker method with no behavior.
	BlockData()
}

// Validatable is implemented by payload types that carry construction
// invariants. NewBlock calls Validate eagerly so malformed payloads fail at
// assembly time, not at render time.
type Validatable interface {
	Validate() error
}

// KindOf returns the registry key for a payload value: its concrete type.
func KindOf(d Data) reflect.Type {
	return reflect.TypeOf(d)
}

// Kind returns the registry key for a payload type without needing a value.
func Kind[T Data]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// Formatter transforms a payload before rendering. It must return a payload
// of the same concrete type it received.
type Formatter interface {
	Format(d Data) (Data, error)
}

// FormatterFunc adapts a plain function to the Formatter interface.
type FormatterFunc func(d Data) (Data, error)

// Format implements Formatter.
func (f FormatterFunc) Format(d Data) (Data, error) { return f(d) }

// Renderer produces the textual representation of a payload.
type Renderer interface {
	Render(d Data) (string, error)
}

// RendererFunc adapts a plain function to the Renderer interface.
type RendererFunc func(d Data) (string, error)

// Render implements Renderer.
func (f RendererFunc) Render(d Data) (string, error) { return f(d) }

// FormatterFor wraps a typed formatting function into a Formatter that
// rejects payloads of any other concrete type with ErrUnsupportedData.
// The guard matters when a strategy is invoked directly, outside the
// registry's own type-indexed dispatch.
func FormatterFor[T Data](fn func(d T) (T, error)) Formatter {
	return FormatterFunc(func(d Data) (Data, error) {
		t, ok := d.(T)
		if !ok {
			return nil, fmt.Errorf("formatter for %s got %s: %w", Kind[T](), KindOf(d), ErrUnsupportedData)
		}
		return fn(t)
	})
}

// RendererFor wraps a typed rendering function into a Renderer that rejects
// payloads of any other concrete type with ErrUnsupportedData.
func RendererFor[T Data](fn func(d T) (string, error)) Renderer {
	return RendererFunc(func(d Data) (string, error) {
		t, ok := d.(T)
		if !ok {
			return "", fmt.Errorf("renderer for %s got %s: %w", Kind[T](), KindOf(d), ErrUnsupportedData)
		}
		return fn(t)
	})
}
