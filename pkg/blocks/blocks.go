// Package blocks provides the concrete payload types shipped with weave and
// typed constructors that build validated core Blocks from them.
//
// Any package can define further payload types by implementing core.Data;
// nothing here is special-cased by the core.
package blocks

import (
	"fmt"

	"github.com/aretw0/weave/pkg/core"
)

// PlainText is a payload holding free-form text rendered as-is.
type PlainText struct {
	Text string
}

// BlockData marks PlainText as block payload.
func (PlainText) BlockData() {}

// Paragraph is a payload holding a paragraph of prose. Renderers typically
// reflow it to a target width.
type Paragraph struct {
	Text string
}

// BlockData marks Paragraph as block payload.
func (Paragraph) BlockData() {}

// Validate requires the paragraph text to be present.
func (p Paragraph) Validate() error {
	if p.Text == "" {
		return fmt.Errorf("paragraph text: %w", core.ErrDataMissing)
	}
	return nil
}

// DefaultHeadingLevel is used when no level is given.
const DefaultHeadingLevel = 1

// Heading is a payload for a section heading. Lower level means higher
// importance; level 1 is the document title.
type Heading struct {
	Text  string
	Level int
}

// BlockData marks Heading as block payload.
func (Heading) BlockData() {}

// Validate requires non-empty text and a positive level.
func (h Heading) Validate() error {
	if h.Text == "" {
		return fmt.Errorf("heading text: %w", core.ErrDataMissing)
	}
	if h.Level < 1 {
		return fmt.Errorf("heading level %d must be a positive integer: %w", h.Level, core.ErrDataInvalid)
	}
	return nil
}

// NewPlainText builds a block wrapping a PlainText payload.
func NewPlainText(text string, opts ...core.BlockOption) (*core.Block, error) {
	return core.NewBlock(PlainText{Text: text}, opts...)
}

// NewParagraph builds a block wrapping a Paragraph payload.
// It fails with ErrDataMissing when text is empty.
func NewParagraph(text string, opts ...core.BlockOption) (*core.Block, error) {
	return core.NewBlock(Paragraph{Text: text}, opts...)
}

// NewHeading builds a block wrapping a Heading payload. A zero level selects
// DefaultHeadingLevel; negative levels fail with ErrDataInvalid.
func NewHeading(text string, level int, opts ...core.BlockOption) (*core.Block, error) {
	if level == 0 {
		level = DefaultHeadingLevel
	}
	return core.NewBlock(Heading{Text: text, Level: level}, opts...)
}
