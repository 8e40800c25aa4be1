// Package fs writes assembled documents to disk and watches their inputs
// for changes.
package fs

import (
	"bytes"
	"fmt"
	"io"
)

// Streamer produces the encoded byte stream of an assembled document.
type Streamer interface {
	Stream() (*bytes.Reader, error)
}

// outputPerm is the mode for written documents.
const outputPerm = 0o644

// WriteDocument encodes doc and writes it to path atomically.
func WriteDocument(path string, doc Streamer) error {
	r, err := doc.Stream()
	if err != nil {
		return fmt.Errorf("encoding document: %w", err)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("reading document stream: %w", err)
	}

	return writeFileAtomic(path, data, outputPerm)
}
