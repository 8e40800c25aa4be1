package weave

import (
	"log/slog"

	"github.com/aretw0/weave/pkg/core"
)

// options holds the internal configuration for a Document.
type options struct {
	formatters *core.FormatterRegistry
	renderers  *core.RendererRegistry
	encoding   string
	delimiter  string
	logger     *slog.Logger
}

// Option defines a functional option for configuring a Document.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		formatters: nil, // NewDocument falls back to an empty registry
		renderers:  nil,
		encoding:   core.DefaultEncoding,
		delimiter:  core.DefaultDelimiter,
		logger:     nil,
	}
}

// WithEncoding sets the character encoding used by Stream. The name is an
// IANA encoding identifier such as "utf-8" or "iso-8859-1".
func WithEncoding(name string) Option {
	return func(o *options) {
		if name != "" {
			o.encoding = name
		}
	}
}

// WithDelimiter sets the string written between rendered blocks. An empty
// delimiter falls back to the default newline.
func WithDelimiter(delimiter string) Option {
	return func(o *options) {
		o.delimiter = delimiter
	}
}

// WithLogger sets the logger for the document pipeline.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithFormatters injects a pre-populated formatter registry, e.g. one built
// by a preset factory.
func WithFormatters(reg *core.FormatterRegistry) Option {
	return func(o *options) {
		o.formatters = reg
	}
}

// WithRenderers injects a pre-populated renderer registry, e.g. one built by
// a preset factory.
func WithRenderers(reg *core.RendererRegistry) Option {
	return func(o *options) {
		o.renderers = reg
	}
}
