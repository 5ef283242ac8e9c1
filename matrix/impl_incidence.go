// SPDX-License-Identifier: MIT
// Package matrix: signed incidence builder (dense) with strict invariants.
//
// Conventions:
//  1. Rows are the given row ids in the given order; columns are the given arcs in the given order.
//  2. Signs: +1 (SourceMark) at the source row, −1 (TargetMark) at the target row.
//     Downstream readers key off "source" vs "target", never off the raw numbers; the
//     orientation is fixed for wire compatibility and must not be flipped.
//  3. Self-loop (From == To): the single incident cell keeps SourceMark and the column is
//     flagged in a separate loop set (IsLoop). Nothing is overwritten, so a reader can
//     report the arc as both leaving and entering that row.
//  4. Every value in Mat is one of {−1, 0, +1}. Any other value read back is a corruption.
//
// Complexity:
//   - BuildIncidence: O(|R| + |A|) index/marks plus O(|R|·|A|) zero-init of the dense buffer.
//   - RowIncidence: O(|A|) to copy the row.

package matrix

import "fmt"

// SourceMark is placed at the source row of an arc's column (outgoing end).
const SourceMark int8 = +1

// TargetMark is placed at the target row of an arc's column (incoming end).
const TargetMark int8 = -1

// Arc is one directed column of an incidence matrix.
type Arc struct {
	ID   string
	From string
	To   string
}

// Incidence is a signed row×arc incidence matrix.
// RowIndex maps row id → row; Arcs is aligned to columns [0..cols).
type Incidence struct {
	Mat      *Dense
	RowIndex map[string]int
	Rows     []string
	Arcs     []Arc
	loops    []bool
}

// BuildIncidence constructs the incidence matrix of arcs over rows.
//
// Implementation:
//   - Stage 1: Index rows in the provided order; reject duplicates.
//   - Stage 2: Resolve each arc's endpoints to row indices; reject unknown ids.
//   - Stage 3: Allocate a |rows|×|arcs| zero matrix (zero columns are legal).
//   - Stage 4: Write SourceMark/TargetMark per column; flag self-loops.
//
// Errors:
//   - ErrDuplicateRow, ErrUnknownRow (wrapped with the offending id).
//
// Determinism:
//   - Output depends only on the order and content of rows and arcs.
func BuildIncidence(rows []string, arcs []Arc) (*Incidence, error) {
	// Stage 1: row index.
	idx := make(map[string]int, len(rows))
	for i, id := range rows {
		if _, dup := idx[id]; dup {
			return nil, fmt.Errorf("BuildIncidence: row %q: %w", id, ErrDuplicateRow)
		}
		idx[id] = i
	}

	// Stage 2: endpoint resolution (fail-fast, before any allocation of the buffer).
	src := make([]int, len(arcs))
	dst := make([]int, len(arcs))
	var ok bool
	for j, a := range arcs {
		if src[j], ok = idx[a.From]; !ok {
			return nil, fmt.Errorf("BuildIncidence: arc %q source %q: %w", a.ID, a.From, ErrUnknownRow)
		}
		if dst[j], ok = idx[a.To]; !ok {
			return nil, fmt.Errorf("BuildIncidence: arc %q target %q: %w", a.ID, a.To, ErrUnknownRow)
		}
	}

	// Stage 3: allocation.
	mat, err := NewDense(len(rows), len(arcs))
	if err != nil {
		return nil, fmt.Errorf("BuildIncidence: %w", err)
	}

	// Stage 4: marks.
	loops := make([]bool, len(arcs))
	for j := range arcs {
		if err = mat.Set(src[j], j, SourceMark); err != nil {
			return nil, fmt.Errorf("BuildIncidence: %w", err)
		}
		if src[j] == dst[j] {
			loops[j] = true
			continue
		}
		if err = mat.Set(dst[j], j, TargetMark); err != nil {
			return nil, fmt.Errorf("BuildIncidence: %w", err)
		}
	}

	rowsCopy := make([]string, len(rows))
	copy(rowsCopy, rows)
	arcsCopy := make([]Arc, len(arcs))
	copy(arcsCopy, arcs)

	return &Incidence{
		Mat:      mat,
		RowIndex: idx,
		Rows:     rowsCopy,
		Arcs:     arcsCopy,
		loops:    loops,
	}, nil
}

// RowCount returns the number of rows. Panics on a nil receiver (developer error).
func (im *Incidence) RowCount() int {
	if im == nil || im.Mat == nil {
		panic("Incidence: nil receiver or Mat")
	}

	return im.Mat.Rows()
}

// ArcCount returns the number of columns. Panics on a nil receiver (developer error).
func (im *Incidence) ArcCount() int {
	if im == nil || im.Mat == nil {
		panic("Incidence: nil receiver or Mat")
	}

	return im.Mat.Cols()
}

// IsLoop reports whether column j is a self-loop. Out-of-range j reports false.
func (im *Incidence) IsLoop(j int) bool {
	if im == nil || j < 0 || j >= len(im.loops) {
		return false
	}

	return im.loops[j]
}

// LoopCount returns the number of self-loop columns.
func (im *Incidence) LoopCount() int {
	if im == nil {
		return 0
	}
	n := 0
	for _, l := range im.loops {
		if l {
			n++
		}
	}

	return n
}

// RowIncidence returns a copy of the row for id.
// Errors: ErrNilMatrix, ErrUnknownRow.
func (im *Incidence) RowIncidence(id string) ([]int8, error) {
	if im == nil || im.Mat == nil {
		return nil, fmt.Errorf("RowIncidence: %w", ErrNilMatrix)
	}
	row, ok := im.RowIndex[id]
	if !ok {
		return nil, fmt.Errorf("RowIncidence: row %q: %w", id, ErrUnknownRow)
	}

	return im.Mat.Row(row)
}

// Transpose returns the arc×row view (one row per arc). The loop flags are not encoded
// in the returned Dense; use IsLoop with the same column index.
func (im *Incidence) Transpose() (*Dense, error) {
	if im == nil || im.Mat == nil {
		return nil, fmt.Errorf("Transpose: %w", ErrNilMatrix)
	}

	return im.Mat.Transpose(), nil
}
