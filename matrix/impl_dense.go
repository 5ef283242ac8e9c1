// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a compact row-major buffer of signed marks with the index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep determinism (fixed loop orders, no map iteration).
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Transpose: O(r*c); Row: O(c).

package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	ctxAt  = "At"
	ctxSet = "Set"
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix of int8 marks.
//   - r,c hold dimensions (rows, cols); either may be zero (a graph without connections
//     still has one row per cell).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int
	data []int8
}

var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an r×c zero matrix.
//
// Errors:
//   - ErrBadShape if rows < 0 or cols < 0.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrBadShape)
	}

	return &Dense{r: rows, c: cols, data: make([]int8, rows*cols)}, nil
}

// Rows returns the row count.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count.
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf bounds-checks (row,col) and computes the row-major offset.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At returns the mark at (row,col).
// Errors: ErrOutOfRange (wrapped with coordinates).
func (m *Dense) At(row, col int) (int8, error) {
	off, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		return 0, err
	}

	return m.data[off], nil
}

// Set writes v at (row,col); a later Set on the same cell overwrites the earlier one.
// Errors: ErrOutOfRange (wrapped with coordinates).
func (m *Dense) Set(row, col int, v int8) error {
	off, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	m.data[off] = v

	return nil
}

// Row returns a copy of row i.
func (m *Dense) Row(i int) ([]int8, error) {
	if i < 0 || i >= m.r {
		return nil, fmt.Errorf("Dense.Row(%d): %w", i, ErrOutOfRange)
	}
	out := make([]int8, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Transpose returns a new c×r matrix with out[j][i] = m[i][j].
// Determinism: fixed i→j loop order. Complexity: O(r*c).
func (m *Dense) Transpose() *Dense {
	out := &Dense{r: m.c, c: m.r, data: make([]int8, len(m.data))}
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			out.data[j*m.r+i] = m.data[i*m.c+j]
		}
	}

	return out
}

// String renders one bracketed row per line, e.g. "[1, -1]\n".
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteString("[")
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(strconv.Itoa(int(m.data[i*m.c+j])))
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
