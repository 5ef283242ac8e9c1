// SPDX-License-Identifier: MIT
//
// File: hypergraph.go
// Role: Dual hypergraph derivation (connections as hypernodes, cells as hyperedges).
// Determinism:
//   - Output order follows the input order of cells (hyperedges) and connections
//     (hypernodes and ins/outs membership). Two derivations over the same input are equal.
// Complexity:
//   - O(n·m) for the incidence matrix and O(n·m) for assembly (n cells, m connections).

package indoor

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/indoorjson/matrix"
)

// Hypergraph is the derived dual view of a Graph. It is read-only and not re-importable.
type Hypergraph struct {
	HyperNodes []ConnectionDoc `json:"hyperNodes"`
	HyperEdges []Hyperedge     `json:"hyperEdges"`
}

// Hyperedge is one cell together with the connections incident to it, split by direction.
type Hyperedge struct {
	ID           string     `json:"id"`
	Properties   Properties `json:"properties"`
	Space        string     `json:"space"`
	Node         string     `json:"node"`
	InnerNodeset Nodeset    `json:"inner_nodeset"`
}

// Nodeset partitions the connections of one hyperedge: Ins enter the cell, Outs leave it.
type Nodeset struct {
	Ins  []string `json:"ins"`
	Outs []string `json:"outs"`
}

// HasThroughRoutes reports whether the cell has at least one inbound and one outbound
// connection, i.e. whether an RLine could declare any closure pair for it.
func (n Nodeset) HasThroughRoutes() bool { return len(n.Ins) > 0 && len(n.Outs) > 0 }

// Edge returns the hyperedge of the given cell id.
func (h *Hypergraph) Edge(cellID string) (Hyperedge, bool) {
	for _, e := range h.HyperEdges {
		if e.ID == cellID {
			return e, true
		}
	}

	return Hyperedge{}, false
}

// Clone returns a deep copy of h.
func (h *Hypergraph) Clone() *Hypergraph {
	out := &Hypergraph{
		HyperNodes: make([]ConnectionDoc, len(h.HyperNodes)),
		HyperEdges: make([]Hyperedge, len(h.HyperEdges)),
	}
	for i, n := range h.HyperNodes {
		n.Properties = n.Properties.Clone()
		out.HyperNodes[i] = n
	}
	for i, e := range h.HyperEdges {
		e.Properties = e.Properties.Clone()
		e.InnerNodeset = Nodeset{Ins: cloneStrings(e.InnerNodeset.Ins), Outs: cloneStrings(e.InnerNodeset.Outs)}
		out.HyperEdges[i] = e
	}

	return out
}

// DeriveHypergraph computes the hypergraph of cells and connections.
//
// Implementation:
//   - Stage 1: Build the n×m signed incidence matrix (rows = cells, columns = connections):
//     +1 on the source row, −1 on the target row, self-loops flagged per column.
//   - Stage 2: Serialize every connection as a hypernode, in order.
//   - Stage 3: For each cell row j, scan columns i in order:
//     −1 → connection i is inbound; +1 → outbound (and also inbound when column i is a loop);
//     0 → not incident; anything else → ErrIncidenceMatrix.
//
// Errors:
//   - ErrMissingEndpoints if a connection references an absent cell
//     (cannot happen for connections admitted by Graph.AddConnection).
//   - ErrDuplicateID for repeated cell ids in the input.
//   - ErrIncidenceMatrix for corrupted matrix values.
func DeriveHypergraph(cells []*Cell, connections []*Connection) (*Hypergraph, error) {
	im, err := buildIncidence(cells, connections)
	if err != nil {
		return nil, fmt.Errorf("DeriveHypergraph: %w", err)
	}

	return assemble(im, cells, connections)
}

func buildIncidence(cells []*Cell, connections []*Connection) (*matrix.Incidence, error) {
	rows := make([]string, len(cells))
	for i, c := range cells {
		rows[i] = c.id
	}
	arcs := make([]matrix.Arc, len(connections))
	for j, c := range connections {
		arcs[j] = matrix.Arc{ID: c.id, From: c.source, To: c.target}
	}

	im, err := matrix.BuildIncidence(rows, arcs)
	if err != nil {
		return nil, translateMatrixError(err)
	}

	return im, nil
}

func assemble(im *matrix.Incidence, cells []*Cell, connections []*Connection) (*Hypergraph, error) {
	h := &Hypergraph{
		HyperNodes: make([]ConnectionDoc, len(connections)),
		HyperEdges: make([]Hyperedge, len(cells)),
	}
	for i, c := range connections {
		h.HyperNodes[i] = connectionDoc(c)
	}

	if im.RowCount() != len(cells) || im.ArcCount() != len(connections) {
		return nil, fmt.Errorf("DeriveHypergraph: shape %dx%d for %d cells, %d connections: %w",
			im.RowCount(), im.ArcCount(), len(cells), len(connections), ErrIncidenceMatrix)
	}

	// Row j of M is column j of Mᵀ: one hyperedge per cell.
	for j, cell := range cells {
		row, err := im.RowIncidence(cell.id)
		if err != nil {
			return nil, fmt.Errorf("DeriveHypergraph: %v: %w", err, ErrIncidenceMatrix)
		}
		set := Nodeset{Ins: []string{}, Outs: []string{}}
		for i, v := range row {
			conn := connections[i]
			switch v {
			case 0:
				continue
			case matrix.TargetMark:
				set.Ins = append(set.Ins, conn.id)
			case matrix.SourceMark:
				if im.IsLoop(i) {
					set.Ins = append(set.Ins, conn.id)
				}
				set.Outs = append(set.Outs, conn.id)
			default:
				return nil, fmt.Errorf("DeriveHypergraph: cell %q connection %q value %d: %w",
					cell.id, conn.id, v, ErrIncidenceMatrix)
			}
		}
		h.HyperEdges[j] = Hyperedge{
			ID:           cell.id,
			Properties:   cell.properties.Clone(),
			Space:        cell.space.Text(),
			Node:         cell.node.Text(),
			InnerNodeset: set,
		}
	}

	return h, nil
}

// translateMatrixError maps builder sentinels onto the graph's own taxonomy.
func translateMatrixError(err error) error {
	switch {
	case errors.Is(err, matrix.ErrDuplicateRow):
		return fmt.Errorf("%v: %w", err, ErrDuplicateID)
	case errors.Is(err, matrix.ErrUnknownRow):
		return fmt.Errorf("%v: %w", err, ErrMissingEndpoints)
	default:
		return err
	}
}

// Hypergraph returns the derived hypergraph, computing it on first use after a mutation.
// The returned value is a private copy; mutating it does not affect the Graph.
//
// Concurrency:
//   - Cache hits take only the read lock; a miss upgrades to the write lock and rechecks.
func (g *Graph) Hypergraph() (*Hypergraph, error) {
	g.mu.RLock()
	if g.hyper != nil {
		out := g.hyper.Clone()
		g.mu.RUnlock()
		return out, nil
	}
	g.mu.RUnlock()

	g.mu.Lock()
	defer g.mu.Unlock()
	if g.hyper == nil {
		h, err := DeriveHypergraph(g.cells, g.connections)
		if err != nil {
			return nil, err
		}
		g.hyper = h
	}

	return g.hyper.Clone(), nil
}

// IncidenceMatrix returns the cell×connection signed incidence matrix.
// Use (*matrix.Incidence).Transpose for the connection×cell view.
func (g *Graph) IncidenceMatrix() (*matrix.Incidence, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	im, err := buildIncidence(g.cells, g.connections)
	if err != nil {
		return nil, fmt.Errorf("IncidenceMatrix: %w", err)
	}

	return im, nil
}
