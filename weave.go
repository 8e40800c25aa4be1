package weave

import (
	"github.com/aretw0/weave/pkg/blocks"
	"github.com/aretw0/weave/pkg/core"
)

// Version is the current library version.
const Version = "0.1.0"

// Re-export key types so users don't need to dig into pkg/core.

type (
	Data              = core.Data
	Block             = core.Block
	BlockOption       = core.BlockOption
	Content           = core.Content
	Formatter         = core.Formatter
	FormatterFunc     = core.FormatterFunc
	Renderer          = core.Renderer
	RendererFunc      = core.RendererFunc
	FormatterRegistry = core.FormatterRegistry
	RendererRegistry  = core.RendererRegistry
)

// Re-export block construction helpers.

var (
	NewBlock           = core.NewBlock
	WithName           = core.WithName
	WithBlockFormatter = core.WithBlockFormatter
	WithBlockRenderer  = core.WithBlockRenderer
	KindOf             = core.KindOf
)

// Document wraps the core orchestrator with convenience helpers for the
// payload types shipped in pkg/blocks.
type Document struct {
	*core.Document
}

// New creates an empty Document configured by the given options. Without
// options it has empty registries, utf-8 encoding and a newline delimiter.
func New(opts ...Option) *Document {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	return &Document{
		Document: core.NewDocument(core.Config{
			Formatters: o.formatters,
			Renderers:  o.renderers,
			Encoding:   o.encoding,
			Delimiter:  o.delimiter,
			Logger:     o.logger,
		}),
	}
}

// AddText appends a plain-text block and returns the block name.
func (d *Document) AddText(text string, opts ...BlockOption) (string, error) {
	b, err := blocks.NewPlainText(text, opts...)
	if err != nil {
		return "", err
	}
	return d.Append(b), nil
}

// AddParagraph appends a paragraph block and returns the block name.
func (d *Document) AddParagraph(text string, opts ...BlockOption) (string, error) {
	b, err := blocks.NewParagraph(text, opts...)
	if err != nil {
		return "", err
	}
	return d.Append(b), nil
}

// AddHeading appends a heading block and returns the block name. A zero
// level selects the default level.
func (d *Document) AddHeading(text string, level int, opts ...BlockOption) (string, error) {
	b, err := blocks.NewHeading(text, level, opts...)
	if err != nil {
		return "", err
	}
	return d.Append(b), nil
}
