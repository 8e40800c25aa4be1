package core

import (
	"bytes"
	"fmt"
	"log/slog"
	"reflect"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"
)

// Default rendering configuration.
const (
	DefaultEncoding  = "utf-8"
	DefaultDelimiter = "\n"
)

// Config configures a Document. Zero values fall back to defaults: empty
// registries, utf-8, newline delimiter, no logging.
type Config struct {
	Formatters *FormatterRegistry
	Renderers  *RendererRegistry
	Encoding   string
	Delimiter  string
	Logger     *slog.Logger
}

// Document orchestrates rendering: it owns the content and both strategy
// registries, resolves the effective formatter and renderer for every block
// and emits the result into a text or byte sink.
//
// A Document is not safe for concurrent mutation; callers populating it from
// multiple goroutines must serialize externally.
type Document struct {
	content    *Content
	formatters *FormatterRegistry
	renderers  *RendererRegistry
	encoding   string
	delimiter  string
	logger     *slog.Logger
}

// NewDocument creates a Document from the given configuration. Registries
// passed in may be pre-populated by preset factories; nil registries start
// empty.
func NewDocument(cfg Config) *Document {
	if cfg.Formatters == nil {
		cfg.Formatters = NewFormatterRegistry()
	}
	if cfg.Renderers == nil {
		cfg.Renderers = NewRendererRegistry()
	}
	if cfg.Encoding == "" {
		cfg.Encoding = DefaultEncoding
	}
	if cfg.Delimiter == "" {
		cfg.Delimiter = DefaultDelimiter
	}

	return &Document{
		content:    NewContent(),
		formatters: cfg.Formatters,
		renderers:  cfg.Renderers,
		encoding:   cfg.Encoding,
		delimiter:  cfg.Delimiter,
		logger:     cfg.Logger,
	}
}

// Append adds a block to the document content and returns the block name.
func (d *Document) Append(b *Block) string {
	return d.content.Append(b)
}

// Content returns the document content.
func (d *Document) Content() *Content { return d.content }

// Encoding returns the configured character encoding identifier.
func (d *Document) Encoding() string { return d.encoding }

// Delimiter returns the string written between rendered blocks.
func (d *Document) Delimiter() string { return d.delimiter }

// SetFormatter registers the default formatter for a payload type.
// It fails with ErrAlreadyRegistered if one is set and replace is false.
func (d *Document) SetFormatter(t reflect.Type, f Formatter, replace bool) error {
	return d.formatters.Set(t, f, replace)
}

// GetFormatter returns the default formatter registered for a payload type.
func (d *Document) GetFormatter(t reflect.Type) (Formatter, bool) {
	return d.formatters.Get(t)
}

// RemoveFormatter deletes and returns the default formatter for a payload
// type. It fails with ErrNotRegistered if none is set.
func (d *Document) RemoveFormatter(t reflect.Type) (Formatter, error) {
	return d.formatters.Remove(t)
}

// SetRenderer registers the default renderer for a payload type.
// It fails with ErrAlreadyRegistered if one is set and replace is false.
func (d *Document) SetRenderer(t reflect.Type, r Renderer, replace bool) error {
	return d.renderers.Set(t, r, replace)
}

// GetRenderer returns the default renderer registered for a payload type.
func (d *Document) GetRenderer(t reflect.Type) (Renderer, bool) {
	return d.renderers.Get(t)
}

// RemoveRenderer deletes and returns the default renderer for a payload
// type. It fails with ErrNotRegistered if none is set.
func (d *Document) RemoveRenderer(t reflect.Type) (Renderer, error) {
	return d.renderers.Remove(t)
}

// sink receives rendered block text. The traversal in renderInto is written
// once against this interface so the string and byte outputs cannot drift.
type sink interface {
	WriteString(s string) error
}

type textSink struct {
	b strings.Builder
}

func (s *textSink) WriteString(v string) error {
	s.b.WriteString(v)
	return nil
}

type byteSink struct {
	buf bytes.Buffer
	enc *encoding.Encoder
}

func (s *byteSink) WriteString(v string) error {
	out, _, err := transform.String(s.enc, v)
	if err != nil {
		return fmt.Errorf("failed to encode rendered text: %w", err)
	}
	s.buf.WriteString(out)
	return nil
}

// Render produces the full document as a string.
//
// Blocks are emitted in insertion order separated by the configured
// delimiter; no delimiter follows the last block. Rendering fails at the
// first block whose payload type has no resolvable renderer. Output already
// written for earlier blocks is not rolled back, but Render only returns a
// value when the whole pass succeeded.
func (d *Document) Render() (string, error) {
	s := &textSink{}
	if err := d.renderInto(s); err != nil {
		return "", err
	}
	return s.b.String(), nil
}

// Stream produces the full document as a seekable byte stream positioned at
// the start, with every rendered string encoded using the configured
// character encoding. The delimiter policy matches Render.
func (d *Document) Stream() (*bytes.Reader, error) {
	enc, err := resolveEncoding(d.encoding)
	if err != nil {
		return nil, err
	}
	s := &byteSink{enc: enc.NewEncoder()}
	if err := d.renderInto(s); err != nil {
		return nil, err
	}
	return bytes.NewReader(s.buf.Bytes()), nil
}

// renderInto runs the resolution pipeline for every block, in order:
// format (optional), render (mandatory), write plus delimiter.
func (d *Document) renderInto(s sink) error {
	total := d.content.Len()
	i := 0
	for b := range d.content.All() {
		i++

		data, err := d.formatData(b)
		if err != nil {
			return fmt.Errorf("block %q: %w", b.Name(), err)
		}

		rendered, err := d.renderData(b, data)
		if err != nil {
			return err
		}

		if d.logger != nil {
			d.logger.Debug("rendered block", "name", b.Name(), "type", KindOf(data).String())
		}

		if err := s.WriteString(rendered); err != nil {
			return fmt.Errorf("block %q: %w", b.Name(), err)
		}
		if i < total {
			if err := s.WriteString(d.delimiter); err != nil {
				return fmt.Errorf("block %q: %w", b.Name(), err)
			}
		}
	}
	return nil
}

// formatData resolves the effective formatter for a block and applies it:
// instance formatter first, then the registry default, else pass-through.
// The block's stored payload is never replaced; the formatted payload only
// lives for the current render pass.
func (d *Document) formatData(b *Block) (Data, error) {
	f := b.Formatter()
	if f == nil {
		reg, ok := d.formatters.Get(KindOf(b.Data()))
		if !ok {
			return b.Data(), nil
		}
		f = reg
	}

	out, err := f.Format(b.Data())
	if err != nil {
		return nil, err
	}
	if KindOf(out) != KindOf(b.Data()) {
		return nil, fmt.Errorf("formatter changed payload type %s to %s: %w",
			KindOf(b.Data()), KindOf(out), ErrUnsupportedData)
	}
	return out, nil
}

// renderData resolves the effective renderer with the same precedence and
// applies it. Unlike formatting, rendering is mandatory: with no instance
// renderer and no registry default the whole render pass fails.
func (d *Document) renderData(b *Block, data Data) (string, error) {
	if r := b.Renderer(); r != nil {
		return r.Render(data)
	}
	if r, ok := d.renderers.Get(KindOf(data)); ok {
		return r.Render(data)
	}
	return "", fmt.Errorf("block %q of type %s: %w", b.Name(), KindOf(data), ErrRendererUnknown)
}

// resolveEncoding maps an IANA encoding name to an encoding implementation.
func resolveEncoding(name string) (encoding.Encoding, error) {
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownEncoding)
	}
	return enc, nil
}
