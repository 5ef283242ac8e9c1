// SPDX-License-Identifier: MIT
//
// File: rline.go
// Role: Relational-line helpers layered on top of the derived hypergraph.
// Policy:
//   - The hypergraph only identifies the candidate (in, out) universe of a cell; which
//     pairs are traversable is caller knowledge. Nothing here fills a closure automatically.
//   - Validation is opt-in (CheckRLine); AddRLine and import never validate.

package indoor

import (
	"fmt"
	"strconv"
)

// rlineIDPrefix prefixes ids generated by SeedRLines ("rlines1", "rlines2", ...).
const rlineIDPrefix = "rlines"

// SeedRLines appends one RLine per cell that has both inbound and outbound connections,
// carrying the cell's ins/outs and an empty closure, and returns the appended lines.
//
// Ids are "rlines<N>" with N counting seeded lines from 1, skipping any id already used
// by an existing RLine of g.
//
// Errors:
//   - Any error from Hypergraph (only possible for a corrupted graph).
func (g *Graph) SeedRLines() ([]RLine, error) {
	h, err := g.Hypergraph()
	if err != nil {
		return nil, fmt.Errorf("SeedRLines: %w", err)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	used := make(map[string]struct{}, len(g.rlines))
	for _, r := range g.rlines {
		used[r.ID] = struct{}{}
	}

	var (
		seeded []RLine
		n      int
		id     string
	)
	for _, e := range h.HyperEdges {
		if !e.InnerNodeset.HasThroughRoutes() {
			continue
		}
		for {
			n++
			id = rlineIDPrefix + strconv.Itoa(n)
			if _, taken := used[id]; !taken {
				break
			}
		}
		r := RLine{
			ID:      id,
			Cell:    e.ID,
			Ins:     cloneStrings(e.InnerNodeset.Ins),
			Outs:    cloneStrings(e.InnerNodeset.Outs),
			Closure: []Pair{},
		}
		g.rlines = append(g.rlines, r)
		seeded = append(seeded, r.clone())
	}

	return seeded, nil
}

// CheckRLine validates r against the current hypergraph:
// the cell must exist, and every closure pair must join one of the cell's inbound
// connections to one of its outbound connections.
//
// r.Ins and r.Outs are informational and not compared with the hyperedge.
//
// Errors:
//   - ErrRLineCell if r.Cell is not a cell of g.
//   - ErrRLineClosure for the first offending pair.
func (g *Graph) CheckRLine(r RLine) error {
	h, err := g.Hypergraph()
	if err != nil {
		return fmt.Errorf("CheckRLine: %w", err)
	}
	e, ok := h.Edge(r.Cell)
	if !ok {
		return fmt.Errorf("CheckRLine: rline %q cell %q: %w", r.ID, r.Cell, ErrRLineCell)
	}

	ins := toSet(e.InnerNodeset.Ins)
	outs := toSet(e.InnerNodeset.Outs)
	for i, p := range r.Closure {
		if _, ok = ins[p.In]; !ok {
			return fmt.Errorf("CheckRLine: rline %q closure[%d] in %q: %w", r.ID, i, p.In, ErrRLineClosure)
		}
		if _, ok = outs[p.Out]; !ok {
			return fmt.Errorf("CheckRLine: rline %q closure[%d] out %q: %w", r.ID, i, p.Out, ErrRLineClosure)
		}
	}

	return nil
}

func toSet(ids []string) map[string]struct{} {
	out := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		out[id] = struct{}{}
	}

	return out
}
