// Package manifest loads declarative document descriptions from YAML and
// assembles them into renderable documents.
package manifest

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/weave"
)

var (
	// ErrUnknownFormat is returned when the manifest names a format no
	// preset exists for.
	ErrUnknownFormat = errors.New("unknown document format")
	// ErrInvalidBlock is returned when a block entry names no kind, or
	// more than one.
	ErrInvalidBlock = errors.New("invalid block entry")
)

// Manifest describes a document declaratively: the output format, the
// character encoding, the block delimiter and the ordered list of blocks.
type Manifest struct {
	Format    string      `yaml:"format"`
	Encoding  string      `yaml:"encoding"`
	Delimiter string      `yaml:"delimiter"`
	Blocks    []BlockSpec `yaml:"blocks"`

	// dir anchors include globs; it is the manifest file's directory, or
	// "." when the manifest was read from a stream.
	dir string
}

// BlockSpec is one entry of the blocks list. Exactly one field must be set.
type BlockSpec struct {
	Heading   *HeadingSpec   `yaml:"heading,omitempty"`
	Paragraph *ParagraphSpec `yaml:"paragraph,omitempty"`
	Text      *TextSpec      `yaml:"text,omitempty"`
	Include   string         `yaml:"include,omitempty"`
}

// HeadingSpec describes a heading block. A zero level selects the default.
type HeadingSpec struct {
	Text  string `yaml:"text"`
	Level int    `yaml:"level"`
	Name  string `yaml:"name,omitempty"`
}

// ParagraphSpec describes a paragraph block.
type ParagraphSpec struct {
	Text string `yaml:"text"`
	Name string `yaml:"name,omitempty"`
}

// TextSpec describes a verbatim plain-text block.
type TextSpec struct {
	Text string `yaml:"text"`
	Name string `yaml:"name,omitempty"`
}

// Load reads a manifest from r. Include globs resolve relative to the
// current directory; prefer LoadFile when the manifest lives on disk.
func Load(r io.Reader) (*Manifest, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}
	m.dir = "."

	if err := m.validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// LoadFile reads a manifest from path and anchors include globs at the
// file's directory.
func LoadFile(path string) (*Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening manifest: %w", err)
	}
	defer f.Close()

	m, err := Load(f)
	if err != nil {
		return nil, err
	}
	m.dir = filepath.Dir(path)
	return m, nil
}

func (m *Manifest) validate() error {
	for i, b := range m.Blocks {
		kinds := 0
		if b.Heading != nil {
			kinds++
		}
		if b.Paragraph != nil {
			kinds++
		}
		if b.Text != nil {
			kinds++
		}
		if b.Include != "" {
			kinds++
		}
		switch kinds {
		case 1:
		case 0:
			return fmt.Errorf("block %d names no kind: %w", i, ErrInvalidBlock)
		default:
			return fmt.Errorf("block %d names %d kinds: %w", i, kinds, ErrInvalidBlock)
		}
	}
	return nil
}

// Document assembles the manifest into a ready-to-render document.
func (m *Manifest) Document(opts ...weave.Option) (*weave.Document, error) {
	base := make([]weave.Option, 0, len(opts)+2)
	if m.Encoding != "" {
		base = append(base, weave.WithEncoding(m.Encoding))
	}
	if m.Delimiter != "" {
		base = append(base, weave.WithDelimiter(m.Delimiter))
	}
	base = append(base, opts...)

	var doc *weave.Document
	switch m.Format {
	case "", "text":
		doc = weave.NewText(base...)
	case "markdown":
		doc = weave.NewMarkdown(base...)
	default:
		return nil, fmt.Errorf("format %q: %w", m.Format, ErrUnknownFormat)
	}

	for i, b := range m.Blocks {
		if err := m.appendBlock(doc, b); err != nil {
			return nil, fmt.Errorf("block %d: %w", i, err)
		}
	}
	return doc, nil
}

func (m *Manifest) appendBlock(doc *weave.Document, b BlockSpec) error {
	switch {
	case b.Heading != nil:
		_, err := doc.AddHeading(b.Heading.Text, b.Heading.Level, nameOption(b.Heading.Name)...)
		return err
	case b.Paragraph != nil:
		_, err := doc.AddParagraph(b.Paragraph.Text, nameOption(b.Paragraph.Name)...)
		return err
	case b.Text != nil:
		_, err := doc.AddText(b.Text.Text, nameOption(b.Text.Name)...)
		return err
	case b.Include != "":
		return m.appendIncluded(doc, b.Include)
	}
	return ErrInvalidBlock
}

// appendIncluded expands a glob against the manifest directory and appends
// each matched file as a plain-text block named after its relative path.
func (m *Manifest) appendIncluded(doc *weave.Document, pattern string) error {
	matches, err := doublestar.FilepathGlob(filepath.Join(m.dir, pattern))
	if err != nil {
		return fmt.Errorf("include %q: %w", pattern, err)
	}
	sort.Strings(matches)

	for _, path := range matches {
		raw, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("include %q: %w", pattern, err)
		}
		name, err := filepath.Rel(m.dir, path)
		if err != nil {
			name = path
		}
		if _, err := doc.AddText(string(raw), weave.WithName(filepath.ToSlash(name))); err != nil {
			return fmt.Errorf("include %q: %w", pattern, err)
		}
	}
	return nil
}

// Includes returns the include globs of the manifest resolved against its
// directory, for callers that need to watch the matched inputs.
func (m *Manifest) Includes() []string {
	var patterns []string
	for _, b := range m.Blocks {
		if b.Include != "" {
			patterns = append(patterns, filepath.Join(m.dir, b.Include))
		}
	}
	return patterns
}

func nameOption(name string) []weave.BlockOption {
	if name == "" {
		return nil
	}
	return []weave.BlockOption{weave.WithName(name)}
}
