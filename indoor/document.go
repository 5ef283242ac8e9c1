// SPDX-License-Identifier: MIT
//
// File: document.go
// Role: Export/import contract (the persisted JSON form).
// Policy:
//   - Document is the wire shape; Graph.Document() produces it, FromDocument consumes it.
//   - Import replays every entity through AddCell/AddConnection, so a document can never
//     smuggle in a state the insertion invariants would reject.
//   - Export never emits null arrays or null property objects, so
//     FromDocument(g.Document()).Document() encodes byte-identically to g.Document().

package indoor

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/katalvlaran/indoorjson/geometry"
)

// Document is the persisted form of a Graph.
type Document struct {
	Properties  []Properties    `json:"properties"`
	Cells       []CellDoc       `json:"cells"`
	Connections []ConnectionDoc `json:"connections"`
	Layers      []Layer         `json:"layers"`
	RLines      []RLine         `json:"rlineses"`
}

// CellDoc is the persisted form of a Cell. Geometries are well-known text.
type CellDoc struct {
	ID         string     `json:"$id"`
	Properties Properties `json:"properties"`
	Space      string     `json:"space"`
	Node       string     `json:"node"`
}

// ConnectionDoc is the persisted form of a Connection. It is also the hypernode shape.
type ConnectionDoc struct {
	ID         string     `json:"$id"`
	Properties Properties `json:"properties"`
	Source     string     `json:"source"`
	Target     string     `json:"target"`
	Bound      string     `json:"bound"`
	Edge       string     `json:"edge"`
}

// UnmarshalJSON accepts the legacy "fr"/"to" endpoint keys when "source"/"target" are absent.
func (d *ConnectionDoc) UnmarshalJSON(b []byte) error {
	type plain ConnectionDoc
	var aux struct {
		plain
		From *string `json:"fr"`
		To   *string `json:"to"`
	}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	*d = ConnectionDoc(aux.plain)
	if d.Source == "" && aux.From != nil {
		d.Source = *aux.From
	}
	if d.Target == "" && aux.To != nil {
		d.Target = *aux.To
	}

	return nil
}

// Document returns the export form of g.
//
// Determinism:
//   - Entities are emitted in insertion order; property maps are copies.
//
// Complexity:
//   - O(total size of the graph).
func (g *Graph) Document() *Document {
	g.mu.RLock()
	defer g.mu.RUnlock()

	d := &Document{
		Properties:  make([]Properties, len(g.properties)),
		Cells:       make([]CellDoc, len(g.cells)),
		Connections: make([]ConnectionDoc, len(g.connections)),
		Layers:      make([]Layer, len(g.layers)),
		RLines:      make([]RLine, len(g.rlines)),
	}
	for i, p := range g.properties {
		d.Properties[i] = p.Clone()
	}
	for i, c := range g.cells {
		d.Cells[i] = CellDoc{
			ID:         c.id,
			Properties: c.properties.Clone(),
			Space:      c.space.Text(),
			Node:       c.node.Text(),
		}
	}
	for i, c := range g.connections {
		d.Connections[i] = connectionDoc(c)
	}
	for i, l := range g.layers {
		d.Layers[i] = l.clone()
	}
	for i, r := range g.rlines {
		d.RLines[i] = r.clone()
	}

	return d
}

// MarshalJSON encodes g in its export form.
func (g *Graph) MarshalJSON() ([]byte, error) {
	return marshalVerbatim(g.Document())
}

// marshalVerbatim is json.Marshal without HTML escaping, so '<', '>' and '&' in ids and
// metadata survive nested Marshaler calls unchanged.
func marshalVerbatim(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}

	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// FromDocument builds a Graph from its import form.
//
// Implementation:
//   - Stage 1: Copy global property blocks.
//   - Stage 2: Parse each cell's geometries and AddCell in document order.
//   - Stage 3: Parse each connection's geometries and AddConnection in document order.
//   - Stage 4: Append layers and relational lines as given (unvalidated).
//
// Errors:
//   - ErrDocument for a nil document.
//   - geometry.ErrParse / geometry.ErrKind wrapped with the entity id and field.
//   - Any AddCell/AddConnection sentinel (ErrDuplicateID, ErrMissing*), wrapped with the entry index.
//   - The import aborts at the first failing entry; no partial Graph is returned.
func FromDocument(d *Document) (*Graph, error) {
	if d == nil {
		return nil, fmt.Errorf("FromDocument: nil document: %w", ErrDocument)
	}
	g := NewGraph()

	// Stage 1.
	for _, p := range d.Properties {
		g.AddProperties(p)
	}

	// Stage 2.
	for i, cd := range d.Cells {
		c, err := cellFromDoc(cd)
		if err != nil {
			return nil, fmt.Errorf("FromDocument: cells[%d]: %w", i, err)
		}
		if err = g.AddCell(c); err != nil {
			return nil, fmt.Errorf("FromDocument: cells[%d]: %w", i, err)
		}
	}

	// Stage 3.
	for i, cd := range d.Connections {
		c, err := connectionFromDoc(cd)
		if err != nil {
			return nil, fmt.Errorf("FromDocument: connections[%d]: %w", i, err)
		}
		if err = g.AddConnection(c); err != nil {
			return nil, fmt.Errorf("FromDocument: connections[%d]: %w", i, err)
		}
	}

	// Stage 4.
	for _, l := range d.Layers {
		g.AddLayer(l)
	}
	for _, r := range d.RLines {
		g.AddRLine(r)
	}

	return g, nil
}

func cellFromDoc(cd CellDoc) (*Cell, error) {
	space, err := geometry.ParseKind(cd.Space, geometry.KindPolygon)
	if err != nil {
		return nil, fmt.Errorf("cell %q: space: %w", cd.ID, err)
	}
	node, err := geometry.ParseKind(cd.Node, geometry.KindPoint)
	if err != nil {
		return nil, fmt.Errorf("cell %q: node: %w", cd.ID, err)
	}

	return NewCell(cd.ID, cd.Properties, space, node)
}

func connectionFromDoc(cd ConnectionDoc) (*Connection, error) {
	bound, err := geometry.ParseKind(cd.Bound, geometry.KindLineString)
	if err != nil {
		return nil, fmt.Errorf("connection %q: bound: %w", cd.ID, err)
	}
	edge, err := geometry.ParseKind(cd.Edge, geometry.KindLineString)
	if err != nil {
		return nil, fmt.Errorf("connection %q: edge: %w", cd.ID, err)
	}

	return NewConnection(cd.ID, cd.Properties, cd.Source, cd.Target, bound, edge)
}

func connectionDoc(c *Connection) ConnectionDoc {
	return ConnectionDoc{
		ID:         c.id,
		Properties: c.properties.Clone(),
		Source:     c.source,
		Target:     c.target,
		Bound:      c.bound.Text(),
		Edge:       c.edge.Text(),
	}
}
