// Package formatters provides the formatting strategies shipped with weave.
//
// Each strategy is a type-guarded core.Formatter: applying one to a payload
// of the wrong concrete type fails with core.ErrUnsupportedData.
package formatters

import (
	"strings"

	"github.com/muesli/reflow/wordwrap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/aretw0/weave/pkg/blocks"
	"github.com/aretw0/weave/pkg/core"
)

// DefaultWrapWidth is the wrapping width used when none is given.
const DefaultWrapWidth = 120

// Wrap returns a formatter that word-wraps PlainText payloads to the given
// maximum width. A non-positive width selects DefaultWrapWidth.
func Wrap(width int) core.Formatter {
	if width <= 0 {
		width = DefaultWrapWidth
	}
	return core.FormatterFor(func(p blocks.PlainText) (blocks.PlainText, error) {
		p.Text = wordwrap.String(p.Text, width)
		return p, nil
	})
}

// HeadingCase returns a formatter that adjusts heading capitalization by
// level: level 1 headings are fully uppercased, deeper levels get each word
// capitalized.
func HeadingCase() core.Formatter {
	title := cases.Title(language.English)
	return core.FormatterFor(func(h blocks.Heading) (blocks.Heading, error) {
		if h.Level == 1 {
			h.Text = strings.ToUpper(h.Text)
		} else {
			h.Text = title.String(h.Text)
		}
		return h, nil
	})
}
