// Package indoor models the cellular topology of an indoor space as a directed primal
// graph and derives its dual hypergraph for navigation reasoning.
//
// Primal graph:
//
//   - Cell: a spatial region (polygon footprint plus representative point); a node.
//   - Connection: a directed link Source→Target bounded by a shared boundary
//     (e.g. a door threshold); an edge.
//   - Layer: a named grouping of cell ids (e.g. one per floor).
//   - RLine: per-cell relational line: which (in, out) connection pairs are
//     traversable inside the cell.
//
// Graph is the aggregate root. It keeps insertion order for serialization and id
// indexes for O(1) lookup, and enforces at insertion time:
//
//  1. cell ids are unique                       → ErrDuplicateID
//  2. connection ids are unique                 → ErrDuplicateID
//  3. both endpoints of a connection exist      → ErrMissingSource / ErrMissingTarget / ErrMissingEndpoints
//
// The id check runs before the endpoint checks. A failed insert leaves the Graph untouched.
//
// Dual hypergraph:
//
// Hypernodes are the connections; hyperedges are the cells, each annotated with the
// connections entering it (ins) and leaving it (outs). The derivation builds a signed
// cell×connection incidence matrix (+1 source, −1 target) and reads it back per cell:
//
//	c1 ──conn1-2──▶ c2        hyperedge c1: ins=[conn3-1] outs=[conn1-2]
//	▲                         hyperedge c2: ins=[conn1-2] outs=[]
//	└──conn3-1── c3           hyperedge c3: ins=[]        outs=[conn3-1]
//
// A self-loop connection appears in both ins and outs of its cell.
//
// The hypergraph is memoized by Graph.Hypergraph and recomputed after any cell or
// connection insertion. Layers and RLines do not affect it.
//
// Persisted form:
//
// Graph.Document / FromDocument convert to and from the JSON shape
//
//	{"properties": [...], "cells": [...], "connections": [...], "layers": [...], "rlineses": [...]}
//
// with geometries as canonical well-known text (see package geometry).
//
// Concurrency:
//
// All Graph methods are safe for concurrent use; mutations are serialized internally.
package indoor
