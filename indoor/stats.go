// SPDX-License-Identifier: MIT

package indoor

import "github.com/golang/geo/r2"

// Stats is a read-only snapshot of catalog sizes.
type Stats struct {
	Cells        int `json:"cells"`
	Connections  int `json:"connections"`
	Layers       int `json:"layers"`
	RLines       int `json:"rlines"`
	ClosurePairs int `json:"closurePairs"`
	SelfLoops    int `json:"selfLoops"`
	Properties   int `json:"properties"`
}

// Stats returns counts of every catalog. Complexity: O(E + R).
func (g *Graph) Stats() Stats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	s := Stats{
		Cells:       len(g.cells),
		Connections: len(g.connections),
		Layers:      len(g.layers),
		RLines:      len(g.rlines),
		Properties:  len(g.properties),
	}
	for _, c := range g.connections {
		if c.IsLoop() {
			s.SelfLoops++
		}
	}
	for _, r := range g.rlines {
		s.ClosurePairs += len(r.Closure)
	}

	return s
}

// Extent returns the bounding box of all cell footprints; empty for a graph without cells.
func (g *Graph) Extent() r2.Rect {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ext := r2.EmptyRect()
	for _, c := range g.cells {
		ext = ext.Union(c.space.Envelope())
	}

	return ext
}
