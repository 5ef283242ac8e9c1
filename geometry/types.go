// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Geometry value type, kinds, sentinel errors and constructors.
// Policy:
//   - Geometry is an immutable value; every accessor returns copies.
//   - Only the three kinds an indoor graph needs are modelled: POINT, LINESTRING, POLYGON.
//   - Coordinates are planar XY; Z/M inputs are rejected at parse time, never truncated.

package geometry

import (
	"errors"

	"github.com/golang/geo/r2"
)

// Sentinel errors for geometry parsing and kind checks.
var (
	// ErrParse indicates malformed or unsupported well-known text.
	ErrParse = errors.New("geometry: malformed well-known text")

	// ErrKind indicates a geometry of a different kind than the caller required.
	ErrKind = errors.New("geometry: unexpected geometry kind")
)

// Kind identifies the shape family of a Geometry.
type Kind uint8

// Supported kinds. The zero Kind is reserved for the zero Geometry value.
const (
	KindInvalid Kind = iota
	KindPoint
	KindLineString
	KindPolygon
)

// String returns the WKT tag of the kind.
func (k Kind) String() string {
	switch k {
	case KindPoint:
		return tagPoint
	case KindLineString:
		return tagLineString
	case KindPolygon:
		return tagPolygon
	default:
		return "INVALID"
	}
}

// Geometry is an opaque 2D shape with a canonical text encoding.
//
// Layout by kind:
//   - KindPoint:      one ring holding exactly one point (or no rings when empty).
//   - KindLineString: one ring holding the vertices in order (or no rings when empty).
//   - KindPolygon:    exterior ring first, interior rings after (or no rings when empty).
type Geometry struct {
	kind  Kind
	rings [][]r2.Point
}

// NewPoint returns a POINT geometry.
func NewPoint(x, y float64) Geometry {
	return Geometry{kind: KindPoint, rings: [][]r2.Point{{{X: x, Y: y}}}}
}

// NewLineString returns a LINESTRING through pts. An empty pts yields LINESTRING EMPTY.
func NewLineString(pts ...r2.Point) Geometry {
	g := Geometry{kind: KindLineString}
	if len(pts) > 0 {
		g.rings = [][]r2.Point{clonePoints(pts)}
	}

	return g
}

// NewPolygon returns a POLYGON from an exterior ring followed by optional holes.
// Rings are stored as given; closure and simplicity are not checked.
func NewPolygon(rings ...[]r2.Point) Geometry {
	g := Geometry{kind: KindPolygon}
	for _, ring := range rings {
		g.rings = append(g.rings, clonePoints(ring))
	}

	return g
}

// Kind reports the shape family.
func (g Geometry) Kind() Kind { return g.kind }

// IsZero reports whether g is the zero value (never parsed nor constructed).
func (g Geometry) IsZero() bool { return g.kind == KindInvalid }

// IsEmpty reports whether g carries no coordinates (e.g. "POINT EMPTY").
func (g Geometry) IsEmpty() bool { return len(g.rings) == 0 }

// Points returns all coordinates of g in ring order, as a fresh slice.
func (g Geometry) Points() []r2.Point {
	n := 0
	for _, ring := range g.rings {
		n += len(ring)
	}
	out := make([]r2.Point, 0, n)
	for _, ring := range g.rings {
		out = append(out, ring...)
	}

	return out
}

// Equal reports whether g and other have the same kind and identical coordinates.
func (g Geometry) Equal(other Geometry) bool {
	if g.kind != other.kind || len(g.rings) != len(other.rings) {
		return false
	}
	for i := range g.rings {
		if len(g.rings[i]) != len(other.rings[i]) {
			return false
		}
		for j := range g.rings[i] {
			if g.rings[i][j] != other.rings[i][j] {
				return false
			}
		}
	}

	return true
}

// Expect returns an error wrapping ErrKind unless g is of kind want.
func (g Geometry) Expect(want Kind) error {
	if g.kind != want {
		return kindError(want, g.kind)
	}

	return nil
}

func clonePoints(pts []r2.Point) []r2.Point {
	out := make([]r2.Point, len(pts))
	copy(out, pts)

	return out
}
