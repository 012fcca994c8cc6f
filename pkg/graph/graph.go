package graph

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/fixturegen/pkg/errors"
)

// =============================================================================
// Document Serialization API
// =============================================================================

// Marshal converts a document to single-line JSON bytes.
func Marshal(d *Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeTo(d, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write writes a document as single-line JSON to an io.Writer.
// No trailing newline is emitted.
func Write(d *Document, w io.Writer) error {
	return writeTo(d, w)
}

// ReadFile reads a fixture file and returns the decoded, validated document.
func ReadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFilesystem, err, "open %s", path)
	}
	defer f.Close()
	return readFrom(f)
}

// Read decodes a JSON fixture from an io.Reader and validates its structure.
func Read(r io.Reader) (*Document, error) {
	return readFrom(r)
}

// =============================================================================
// Internal Implementation
// =============================================================================

func writeTo(d *Document, w io.Writer) error {
	data, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	_, err = w.Write(data)
	return err
}

func readFrom(r io.Reader) (*Document, error) {
	var d Document
	if err := json.NewDecoder(r).Decode(&d); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFixture, err, "decode graph")
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &d, nil
}
