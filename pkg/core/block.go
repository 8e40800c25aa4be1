package core

import (
	"fmt"

	"github.com/google/uuid"
)

// Block is a named wrapper around exactly one payload, with optional
// per-instance formatting/rendering overrides. The name is fixed at
// construction and the payload is only replaced transiently during a render
// pass, never on the block itself.
type Block struct {
	name      string
	data      Data
	formatter Formatter
	renderer  Renderer
}

// BlockOption configures a Block at construction time.
type BlockOption func(*Block)

// WithName sets an explicit block name. Without it the block generates one
// from the payload type name and a random suffix.
func WithName(name string) BlockOption {
	return func(b *Block) {
		if name != "" {
			b.name = name
		}
	}
}

// WithBlockFormatter binds an instance-level formatter that overrides the
// document-level default for this block only.
func WithBlockFormatter(f Formatter) BlockOption {
	return func(b *Block) { b.formatter = f }
}

// WithBlockRenderer binds an instance-level renderer that overrides the
// document-level default for this block only.
func WithBlockRenderer(r Renderer) BlockOption {
	return func(b *Block) { b.renderer = r }
}

// NewBlock creates a block wrapping the given payload.
//
// A nil payload fails with ErrDataMissing. Payloads implementing Validatable
// are validated here, so construction errors surface before the block ever
// reaches a document.
func NewBlock(d Data, opts ...BlockOption) (*Block, error) {
	if d == nil {
		return nil, fmt.Errorf("block payload is nil: %w", ErrDataMissing)
	}
	if v, ok := d.(Validatable); ok {
		if err := v.Validate(); err != nil {
			return nil, err
		}
	}

	b := &Block{data: d}
	for _, opt := range opts {
		opt(b)
	}
	if b.name == "" {
		b.name = fmt.Sprintf("%s-%s", KindOf(d).Name(), uuid.NewString())
	}
	return b, nil
}

// Name returns the immutable block name.
func (b *Block) Name() string { return b.name }

// Data returns the block payload.
func (b *Block) Data() Data { return b.data }

// Formatter returns the instance-level formatter, or nil if the block relies
// on the document's registry.
func (b *Block) Formatter() Formatter { return b.formatter }

// Renderer returns the instance-level renderer, or nil if the block relies
// on the document's registry.
func (b *Block) Renderer() Renderer { return b.renderer }
