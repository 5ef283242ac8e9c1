// SPDX-License-Identifier: MIT
//
// File: errors.go
// Role: Sentinel errors of the indoor graph.
// Policy:
//   - Callers match with errors.Is; returned errors carry the offending id as context.
//   - Every failed mutation leaves the Graph exactly as it was before the call.

package indoor

import "errors"

var (
	// ErrNilEntity indicates a nil *Cell or *Connection was passed to the graph.
	ErrNilEntity = errors.New("indoor: nil entity")

	// ErrDuplicateID indicates a cell or connection id already present in the graph.
	ErrDuplicateID = errors.New("indoor: duplicate id")

	// ErrMissingSource indicates a connection whose source cell is absent (target present).
	ErrMissingSource = errors.New("indoor: source cell does not exist")

	// ErrMissingTarget indicates a connection whose target cell is absent (source present).
	ErrMissingTarget = errors.New("indoor: target cell does not exist")

	// ErrMissingEndpoints indicates a connection whose source and target cells are both absent.
	ErrMissingEndpoints = errors.New("indoor: source and target cells do not exist")

	// ErrIncidenceMatrix indicates an incidence value outside {−1, 0, +1}. It can only be
	// produced by a corrupted graph and must not be recovered from.
	ErrIncidenceMatrix = errors.New("indoor: incidence matrix error")

	// ErrRLineCell indicates an RLine whose cell is not in the graph.
	ErrRLineCell = errors.New("indoor: rline cell does not exist")

	// ErrRLineClosure indicates a closure pair outside the cell's inbound/outbound sets.
	ErrRLineClosure = errors.New("indoor: rline closure pair not incident to cell")

	// ErrDocument indicates a malformed import document entry.
	ErrDocument = errors.New("indoor: malformed document")
)
