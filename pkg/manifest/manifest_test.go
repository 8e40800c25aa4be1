package manifest_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/weave/pkg/manifest"
)

func TestLoad_AssemblesMarkdownDocument(t *testing.T) {
	src := `
format: markdown
blocks:
  - heading: {text: Report, level: 1}
  - paragraph: {text: "All systems nominal."}
`
	m, err := manifest.Load(strings.NewReader(src))
	require.NoError(t, err)

	doc, err := m.Document()
	require.NoError(t, err)

	out, err := doc.Render()
	require.NoError(t, err)
	assert.Equal(t, "# Report\n\nAll systems nominal.", out)
}

func TestLoad_DefaultsToTextFormat(t *testing.T) {
	src := `
blocks:
  - heading: {text: Report, level: 2}
`
	m, err := manifest.Load(strings.NewReader(src))
	require.NoError(t, err)

	doc, err := m.Document()
	require.NoError(t, err)

	out, err := doc.Render()
	require.NoError(t, err)
	assert.Equal(t, "Report\n======\n", out)
}

func TestLoad_AppliesDelimiterAndNames(t *testing.T) {
	src := `
format: text
delimiter: " | "
blocks:
  - text: {text: alpha, name: first}
  - text: {text: beta}
`
	m, err := manifest.Load(strings.NewReader(src))
	require.NoError(t, err)

	doc, err := m.Document()
	require.NoError(t, err)

	out, err := doc.Render()
	require.NoError(t, err)
	assert.Equal(t, "alpha | beta", out)

	_, ok := doc.Content().Get("first")
	assert.True(t, ok)
}

func TestLoad_RejectsEmptyBlockEntry(t *testing.T) {
	src := `
blocks:
  - heading: {text: ok}
  - {}
`
	_, err := manifest.Load(strings.NewReader(src))
	assert.ErrorIs(t, err, manifest.ErrInvalidBlock)
}

func TestLoad_RejectsAmbiguousBlockEntry(t *testing.T) {
	src := `
blocks:
  - heading: {text: ok}
    paragraph: {text: also set}
`
	_, err := manifest.Load(strings.NewReader(src))
	assert.ErrorIs(t, err, manifest.ErrInvalidBlock)
}

func TestDocument_RejectsUnknownFormat(t *testing.T) {
	src := `
format: pdf
blocks:
  - text: {text: hello}
`
	m, err := manifest.Load(strings.NewReader(src))
	require.NoError(t, err)

	_, err = m.Document()
	assert.ErrorIs(t, err, manifest.ErrUnknownFormat)
}

func TestLoadFile_ExpandsIncludesSorted(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sections"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sections", "b.txt"), []byte("second"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sections", "a.txt"), []byte("first"), 0o644))

	src := `
format: text
blocks:
  - include: "sections/*.txt"
`
	path := filepath.Join(dir, "weave.yaml")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	m, err := manifest.LoadFile(path)
	require.NoError(t, err)

	doc, err := m.Document()
	require.NoError(t, err)

	out, err := doc.Render()
	require.NoError(t, err)
	assert.Equal(t, "first\nsecond", out)

	_, ok := doc.Content().Get("sections/a.txt")
	assert.True(t, ok, "included blocks are named after their relative path")
}

func TestIncludes_ResolvesAgainstManifestDir(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "weave.yaml")
	src := `
blocks:
  - include: "sections/*.txt"
  - text: {text: hello}
`
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	m, err := manifest.LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, []string{filepath.Join(dir, "sections", "*.txt")}, m.Includes())
}
