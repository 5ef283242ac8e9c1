// SPDX-License-Identifier: MIT
//
// File: graph.go
// Role: The IndoorGraph aggregate: ordered catalogs and id indexes guarded by insertion invariants.
// Policy:
//   - Cells and connections keep insertion order (serialization order) and an id→position
//     index for O(1) lookup.
//   - Invariants are enforced at insertion and never relaxed:
//     unique cell ids, unique connection ids, both connection endpoints present.
//   - A failed insertion does not touch any state (no partial append, no cache drop).
//   - The derived hypergraph is memoized and dropped on every cell/connection insert.
// Concurrency:
//   - mu guards all state; readers (lookups, exports, derivation) may run concurrently.

package indoor

import (
	"fmt"
	"sync"
)

// Graph is the aggregate root of an indoor space: cells, connections, layers,
// relational lines and global property blocks.
type Graph struct {
	mu sync.RWMutex

	properties []Properties

	cells     []*Cell
	cellIndex map[string]int

	connections []*Connection
	connIndex   map[string]int

	layers []Layer
	rlines []RLine

	// hyper is the memoized derivation; nil means "not computed since last mutation".
	hyper *Hypergraph
}

// NewGraph returns an empty Graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		cellIndex: make(map[string]int),
		connIndex: make(map[string]int),
	}
}

// AddProperties appends one global metadata block.
func (g *Graph) AddProperties(p Properties) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.properties = append(g.properties, p.Clone())
}

// Properties returns copies of the global metadata blocks in insertion order.
func (g *Graph) Properties() []Properties {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return cloneAll(g.properties)
}

// AddCell inserts c at the end of the cell catalog.
//
// Errors:
//   - ErrNilEntity if c is nil.
//   - ErrDuplicateID if a cell with the same id exists.
//
// Complexity:
//   - Time O(1) amortized.
func (g *Graph) AddCell(c *Cell) error {
	if c == nil {
		return fmt.Errorf("AddCell: %w", ErrNilEntity)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, dup := g.cellIndex[c.id]; dup {
		return fmt.Errorf("AddCell: cell %q: %w", c.id, ErrDuplicateID)
	}
	g.cellIndex[c.id] = len(g.cells)
	g.cells = append(g.cells, c)
	g.hyper = nil

	return nil
}

// AddConnection inserts c at the end of the connection catalog.
//
// Implementation:
//   - Stage 1: Reject a duplicate connection id (checked before endpoints).
//   - Stage 2: Resolve both endpoints and pick the referential error:
//     source absent only → ErrMissingSource; target absent only → ErrMissingTarget;
//     both absent → ErrMissingEndpoints.
//   - Stage 3: Append, index, drop the memoized hypergraph.
//
// Errors:
//   - ErrNilEntity, ErrDuplicateID, ErrMissingSource, ErrMissingTarget, ErrMissingEndpoints.
//
// Complexity:
//   - Time O(1) amortized.
func (g *Graph) AddConnection(c *Connection) error {
	if c == nil {
		return fmt.Errorf("AddConnection: %w", ErrNilEntity)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// Stage 1: id uniqueness.
	if _, dup := g.connIndex[c.id]; dup {
		return fmt.Errorf("AddConnection: connection %q: %w", c.id, ErrDuplicateID)
	}

	// Stage 2: endpoints.
	_, hasSource := g.cellIndex[c.source]
	_, hasTarget := g.cellIndex[c.target]
	switch {
	case !hasSource && !hasTarget:
		return fmt.Errorf("AddConnection: connection %q (%q→%q): %w", c.id, c.source, c.target, ErrMissingEndpoints)
	case !hasSource:
		return fmt.Errorf("AddConnection: connection %q source %q: %w", c.id, c.source, ErrMissingSource)
	case !hasTarget:
		return fmt.Errorf("AddConnection: connection %q target %q: %w", c.id, c.target, ErrMissingTarget)
	}

	// Stage 3: commit.
	g.connIndex[c.id] = len(g.connections)
	g.connections = append(g.connections, c)
	g.hyper = nil

	return nil
}

// AddLayer appends l without any uniqueness or reference check.
func (g *Graph) AddLayer(l Layer) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.layers = append(g.layers, l.clone())
}

// AddRLine appends r without any uniqueness or reference check.
// Use CheckRLine to validate it against the derived hypergraph.
func (g *Graph) AddRLine(r RLine) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.rlines = append(g.rlines, r.clone())
}

// CellByID returns the cell with the given id. Complexity: O(1).
func (g *Graph) CellByID(id string) (*Cell, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	i, ok := g.cellIndex[id]
	if !ok {
		return nil, false
	}

	return g.cells[i], true
}

// ConnectionByID returns the connection with the given id. Complexity: O(1).
func (g *Graph) ConnectionByID(id string) (*Connection, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	i, ok := g.connIndex[id]
	if !ok {
		return nil, false
	}

	return g.connections[i], true
}

// Cells returns the cells in insertion order (fresh slice; entities are immutable).
func (g *Graph) Cells() []*Cell {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]*Cell, len(g.cells))
	copy(out, g.cells)

	return out
}

// Connections returns the connections in insertion order.
func (g *Graph) Connections() []*Connection {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]*Connection, len(g.connections))
	copy(out, g.connections)

	return out
}

// Layers returns copies of the layers in insertion order.
func (g *Graph) Layers() []Layer {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Layer, len(g.layers))
	for i, l := range g.layers {
		out[i] = l.clone()
	}

	return out
}

// RLines returns copies of the relational lines in insertion order.
func (g *Graph) RLines() []RLine {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]RLine, len(g.rlines))
	for i, r := range g.rlines {
		out[i] = r.clone()
	}

	return out
}

// CellCount returns the number of cells.
func (g *Graph) CellCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.cells)
}

// ConnectionCount returns the number of connections.
func (g *Graph) ConnectionCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.connections)
}
