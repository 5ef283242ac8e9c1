// SPDX-License-Identifier: MIT
//
// File: entities.go
// Role: Primal entities (Cell, Connection) and the id-referencing metadata (Layer, RLine).
// Policy:
//   - Cell and Connection are immutable after construction; accessors return copies.
//   - Layer and RLine hold plain id strings that are never resolved or validated on insert.

package indoor

import (
	"encoding/json"
	"fmt"

	"github.com/katalvlaran/indoorjson/geometry"
)

// Cell is a spatial region (Space, a polygon) with a representative location (Node, a point).
// Node is not required to lie inside Space.
type Cell struct {
	id         string
	properties Properties
	space      geometry.Geometry
	node       geometry.Geometry
}

// NewCell constructs a Cell.
//
// Errors:
//   - geometry.ErrKind if space is not a polygon or node is not a point.
func NewCell(id string, props Properties, space, node geometry.Geometry) (*Cell, error) {
	if err := space.Expect(geometry.KindPolygon); err != nil {
		return nil, fmt.Errorf("NewCell %q: space: %w", id, err)
	}
	if err := node.Expect(geometry.KindPoint); err != nil {
		return nil, fmt.Errorf("NewCell %q: node: %w", id, err)
	}

	return &Cell{id: id, properties: props.Clone(), space: space, node: node}, nil
}

// ID returns the cell id.
func (c *Cell) ID() string { return c.id }

// Properties returns a copy of the cell metadata.
func (c *Cell) Properties() Properties { return c.properties.Clone() }

// Space returns the cell footprint.
func (c *Cell) Space() geometry.Geometry { return c.space }

// Node returns the representative point.
func (c *Cell) Node() geometry.Geometry { return c.node }

// Connection is a directed link from Source to Target, physically bounded by Bound
// (e.g. a door threshold) and idealized by Edge (typically node-to-node).
type Connection struct {
	id         string
	properties Properties
	source     string
	target     string
	bound      geometry.Geometry
	edge       geometry.Geometry
}

// NewConnection constructs a Connection. Endpoints are resolved only when the
// connection is added to a Graph.
//
// Errors:
//   - geometry.ErrKind if bound or edge is not a linestring.
func NewConnection(id string, props Properties, source, target string, bound, edge geometry.Geometry) (*Connection, error) {
	if err := bound.Expect(geometry.KindLineString); err != nil {
		return nil, fmt.Errorf("NewConnection %q: bound: %w", id, err)
	}
	if err := edge.Expect(geometry.KindLineString); err != nil {
		return nil, fmt.Errorf("NewConnection %q: edge: %w", id, err)
	}

	return &Connection{
		id:         id,
		properties: props.Clone(),
		source:     source,
		target:     target,
		bound:      bound,
		edge:       edge,
	}, nil
}

// ID returns the connection id.
func (c *Connection) ID() string { return c.id }

// Properties returns a copy of the connection metadata.
func (c *Connection) Properties() Properties { return c.properties.Clone() }

// Source returns the source cell id.
func (c *Connection) Source() string { return c.source }

// Target returns the target cell id.
func (c *Connection) Target() string { return c.target }

// Bound returns the physical boundary linestring.
func (c *Connection) Bound() geometry.Geometry { return c.bound }

// Edge returns the connectivity linestring.
func (c *Connection) Edge() geometry.Geometry { return c.edge }

// IsLoop reports whether source and target name the same cell.
func (c *Connection) IsLoop() bool { return c.source == c.target }

// Layer is a named grouping of cell ids (e.g. one per floor).
// Duplicates and dangling ids are kept as given.
type Layer struct {
	ID    string   `json:"$id"`
	Cells []string `json:"cells"`
}

// Pair is one traversable (in, out) route through a cell. It encodes as ["in","out"].
type Pair struct {
	In  string
	Out string
}

// MarshalJSON encodes p as a two-element array.
func (p Pair) MarshalJSON() ([]byte, error) {
	return marshalVerbatim([2]string{p.In, p.Out})
}

// UnmarshalJSON decodes a two-element string array.
func (p *Pair) UnmarshalJSON(b []byte) error {
	var raw []string
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("closure pair: %w", err)
	}
	if len(raw) != 2 {
		return fmt.Errorf("closure pair: want 2 ids, got %d: %w", len(raw), ErrDocument)
	}
	p.In, p.Out = raw[0], raw[1]

	return nil
}

// RLine (relational line) refines one cell of the hypergraph: Ins are connections
// entering Cell, Outs are connections leaving it, and Closure lists the (in, out)
// combinations that are actually traversable inside the cell. A combination absent
// from Closure is unspecified, not implicitly connected.
type RLine struct {
	ID      string   `json:"$id"`
	Cell    string   `json:"cell"`
	Ins     []string `json:"ins"`
	Outs    []string `json:"outs"`
	Closure []Pair   `json:"closure"`
}

func (l Layer) clone() Layer {
	return Layer{ID: l.ID, Cells: cloneStrings(l.Cells)}
}

func (r RLine) clone() RLine {
	out := RLine{ID: r.ID, Cell: r.Cell, Ins: cloneStrings(r.Ins), Outs: cloneStrings(r.Outs)}
	out.Closure = make([]Pair, len(r.Closure))
	copy(out.Closure, r.Closure)

	return out
}

// cloneStrings copies s and never returns nil, so exports encode [] rather than null.
func cloneStrings(s []string) []string {
	out := make([]string, len(s))
	copy(out, s)

	return out
}
