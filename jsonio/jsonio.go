// SPDX-License-Identifier: MIT
//
// File: jsonio.go
// Role: File and stream helpers around the indoor export/import contract.
// Policy:
//   - Decoding is strict about trailing data: one document per stream.
//   - Encoding never escapes HTML characters, so non-ASCII and '<', '>' , '&' in
//     property values are written as-is.
//   - indent == "" writes compact JSON; anything else is used as the per-level indent.

package jsonio

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/indoorjson/indoor"
)

// ErrTrailingData indicates bytes after the first JSON value of a stream.
var ErrTrailingData = errors.New("jsonio: trailing data after document")

// Decode reads exactly one JSON value from r into v.
func Decode(r io.Reader, v any) error {
	dec := json.NewDecoder(r)
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("Decode: %w", err)
	}
	if dec.More() {
		return fmt.Errorf("Decode: %w", ErrTrailingData)
	}
	if _, err := dec.Token(); err != io.EOF {
		return fmt.Errorf("Decode: %w", ErrTrailingData)
	}

	return nil
}

// Encode writes v to w followed by a newline.
func Encode(w io.Writer, v any, indent string) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if indent != "" {
		enc.SetIndent("", indent)
	}
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("Encode: %w", err)
	}

	return nil
}

// DecodeGraph reads an export document from r and rebuilds the Graph.
func DecodeGraph(r io.Reader) (*indoor.Graph, error) {
	var d indoor.Document
	if err := Decode(r, &d); err != nil {
		return nil, err
	}

	return indoor.FromDocument(&d)
}

// Marshal encodes v into a byte slice using the Encode rules.
func Marshal(v any, indent string) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, v, indent); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// ReadGraph loads a Graph from the export document stored at path.
func ReadGraph(path string) (*indoor.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ReadGraph: %w", err)
	}
	defer f.Close()

	g, err := DecodeGraph(f)
	if err != nil {
		return nil, fmt.Errorf("ReadGraph %s: %w", path, err)
	}

	return g, nil
}

// WriteGraph stores the export document of g at path.
func WriteGraph(path string, g *indoor.Graph, indent string) error {
	return writeFile("WriteGraph", path, g.Document(), indent)
}

// WriteHypergraph stores h at path.
func WriteHypergraph(path string, h *indoor.Hypergraph, indent string) error {
	return writeFile("WriteHypergraph", path, h, indent)
}

// WriteJSON stores any encodable value at path using the Encode rules.
func WriteJSON(path string, v any, indent string) error {
	return writeFile("WriteJSON", path, v, indent)
}

// writeFile encodes v into a sibling temp file and renames it over path, so readers
// (and file watchers) never observe a half-written document.
func writeFile(op, path string, v any, indent string) error {
	b, err := Marshal(v, indent)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	tmp := path + ".tmp"
	if err = os.WriteFile(tmp, b, 0o644); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err = os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
