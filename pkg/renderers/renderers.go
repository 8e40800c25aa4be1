// Package renderers provides the rendering strategies shipped with weave.
//
// Each strategy is a type-guarded core.Renderer: applying one to a payload of
// the wrong concrete type fails with core.ErrUnsupportedData.
package renderers

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/wordwrap"

	"github.com/aretw0/weave/pkg/blocks"
	"github.com/aretw0/weave/pkg/core"
)

// Defaults for the plain-text heading decorations and paragraph wrapping.
const (
	DefaultTopDecorator   = "="
	DefaultBasicDecorator = "-"
	DefaultParagraphWidth = 120

	// MaxMarkdownHeadingLevel is the deepest heading Markdown can express.
	MaxMarkdownHeadingLevel = 6
)

// PlainText returns a renderer that emits PlainText payloads verbatim.
func PlainText() core.Renderer {
	return core.RendererFor(func(p blocks.PlainText) (string, error) {
		return p.Text, nil
	})
}

// Paragraph returns a renderer that word-wraps Paragraph payloads to the
// given width. A non-positive width selects DefaultParagraphWidth.
func Paragraph(width int) core.Renderer {
	if width <= 0 {
		width = DefaultParagraphWidth
	}
	return core.RendererFor(func(p blocks.Paragraph) (string, error) {
		return wordwrap.String(p.Text, width), nil
	})
}

// HeadingText returns a renderer producing decorated plain-text headings:
//
//	Level 1:
//	=========
//	= Title =
//	=========
//
//	Level 2:
//	Subtitle
//	========
//
//	Level 3 and deeper, indented two spaces per level:
//	  Section
//	  -------
//
// Empty decorator arguments select the defaults.
func HeadingText(topDecorator, basicDecorator string) core.Renderer {
	if topDecorator == "" {
		topDecorator = DefaultTopDecorator
	}
	if basicDecorator == "" {
		basicDecorator = DefaultBasicDecorator
	}

	return core.RendererFor(func(h blocks.Heading) (string, error) {
		switch h.Level {
		case 1:
			line := strings.Repeat(topDecorator, len(h.Text)+4)
			return fmt.Sprintf("%s\n%s %s %s\n%s\n", line, topDecorator, h.Text, topDecorator, line), nil
		case 2:
			return fmt.Sprintf("%s\n%s\n", h.Text, strings.Repeat(topDecorator, len(h.Text))), nil
		default:
			indent := strings.Repeat(" ", (h.Level-1)*2)
			underline := strings.Repeat(basicDecorator, len(h.Text))
			return fmt.Sprintf("%s%s\n%s%s\n", indent, h.Text, indent, underline), nil
		}
	})
}

// HeadingMarkdown returns a renderer producing Markdown headings. Levels
// beyond MaxMarkdownHeadingLevel fail with core.ErrDataInvalid.
func HeadingMarkdown() core.Renderer {
	return core.RendererFor(func(h blocks.Heading) (string, error) {
		if h.Level > MaxMarkdownHeadingLevel {
			return "", fmt.Errorf("heading level %d exceeds markdown maximum %d: %w",
				h.Level, MaxMarkdownHeadingLevel, core.ErrDataInvalid)
		}
		return fmt.Sprintf("%s %s\n", strings.Repeat("#", h.Level), h.Text), nil
	})
}
