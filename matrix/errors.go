// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All exported functions return these sentinels (wrapped with call-site context via %w);
// tests match them with errors.Is. Nothing in this package panics on caller input.

package matrix

import "errors"

var (
	// ErrBadShape is returned when a requested shape has a negative dimension.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDuplicateRow indicates two incidence rows were given the same id.
	ErrDuplicateRow = errors.New("matrix: duplicate row id")

	// ErrUnknownRow indicates an arc endpoint that names no incidence row.
	ErrUnknownRow = errors.New("matrix: unknown row id")

	// ErrNilMatrix indicates a method was called on a nil receiver.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)
