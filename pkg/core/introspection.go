package core

import (
	"github.com/aretw0/introspection"
)

// DocumentState exposes internal state for observability.
type DocumentState struct {
	Blocks     int      `json:"blocks"`
	Formatters []string `json:"formatters"`
	Renderers  []string `json:"renderers"`
	Encoding   string   `json:"encoding"`
	Delimiter  string   `json:"delimiter"`
}

// State implements introspection.Introspectable.
func (d *Document) State() any {
	return DocumentState{
		Blocks:     d.content.Len(),
		Formatters: d.formatters.Types(),
		Renderers:  d.renderers.Types(),
		Encoding:   d.encoding,
		Delimiter:  d.delimiter,
	}
}

// ComponentType implements introspection.Component.
func (d *Document) ComponentType() string {
	return "document"
}

var _ introspection.Introspectable = (*Document)(nil)
var _ introspection.Component = (*Document)(nil)
