package weave

import (
	"github.com/aretw0/weave/pkg/blocks"
	"github.com/aretw0/weave/pkg/core"
	"github.com/aretw0/weave/pkg/renderers"
)

// Preset factories for the most common registry configurations. Use these
// instead of wiring every renderer on your own from scratch.

// NewText returns a Document pre-wired for plain-text output: decorated
// headings, wrapped paragraphs and verbatim plain text.
func NewText(opts ...Option) *Document {
	reg := core.NewRendererRegistry()
	mustSet(reg, core.Kind[blocks.Heading](), renderers.HeadingText("", ""))
	mustSet(reg, core.Kind[blocks.Paragraph](), renderers.Paragraph(0))
	mustSet(reg, core.Kind[blocks.PlainText](), renderers.PlainText())

	return New(append([]Option{WithRenderers(reg)}, opts...)...)
}

// NewMarkdown returns a Document pre-wired for Markdown output: hash-prefixed
// headings, wrapped paragraphs and verbatim plain text.
func NewMarkdown(opts ...Option) *Document {
	reg := core.NewRendererRegistry()
	mustSet(reg, core.Kind[blocks.Heading](), renderers.HeadingMarkdown())
	mustSet(reg, core.Kind[blocks.Paragraph](), renderers.Paragraph(0))
	mustSet(reg, core.Kind[blocks.PlainText](), renderers.PlainText())

	return New(append([]Option{WithRenderers(reg)}, opts...)...)
}

// mustSet registers into a fresh registry, where a conflict is impossible.
func mustSet[S any](reg *core.Registry[S], t core.RegistryKey, s S) {
	if err := reg.Set(t, s, false); err != nil {
		panic(err)
	}
}
