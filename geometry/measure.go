// SPDX-License-Identifier: MIT
//
// File: measure.go
// Role: Planar measures used by inspection tooling (extent, anchor points).

package geometry

import (
	"math"

	"github.com/golang/geo/r2"
)

// Envelope returns the axis-aligned bounding box of g. Empty geometries yield r2.EmptyRect().
func (g Geometry) Envelope() r2.Rect {
	pts := g.Points()
	if len(pts) == 0 {
		return r2.EmptyRect()
	}

	return r2.RectFromPoints(pts...)
}

// Length returns the total length of all rings of g (perimeter for polygons, 0 for points).
func (g Geometry) Length() float64 {
	if g.kind == KindPoint {
		return 0
	}
	var total float64
	for _, ring := range g.rings {
		total += ringLength(ring)
	}

	return total
}

// Centroid returns the planar centroid of g.
//
// Policy:
//   - POINT: the point itself.
//   - LINESTRING: length-weighted mean of segment midpoints; the first vertex for zero length.
//   - POLYGON: signed-area centroid of the exterior minus holes; falls back to the
//     exterior ring's line centroid when the area is zero.
//
// The boolean is false for empty geometries.
func (g Geometry) Centroid() (r2.Point, bool) {
	if len(g.rings) == 0 || len(g.rings[0]) == 0 {
		return r2.Point{}, false
	}

	switch g.kind {
	case KindPoint:
		return g.rings[0][0], true
	case KindLineString:
		return lineCentroid(g.rings[0]), true
	case KindPolygon:
		var (
			area float64
			sum  r2.Point
		)
		for i, ring := range g.rings {
			a, c := ringAreaCentroid(ring)
			if i > 0 {
				// holes subtract regardless of their winding
				a = -math.Abs(a)
			} else {
				a = math.Abs(a)
			}
			area += a
			sum = sum.Add(c.Mul(a))
		}
		if area == 0 {
			return lineCentroid(g.rings[0]), true
		}
		return sum.Mul(1 / area), true
	default:
		return r2.Point{}, false
	}
}

func ringLength(ring []r2.Point) float64 {
	var l float64
	for i := 1; i < len(ring); i++ {
		l += ring[i].Sub(ring[i-1]).Norm()
	}

	return l
}

func lineCentroid(ring []r2.Point) r2.Point {
	if len(ring) == 2 {
		return ring[0].Add(ring[1]).Mul(0.5)
	}
	var (
		total float64
		sum   r2.Point
	)
	for i := 1; i < len(ring); i++ {
		seg := ring[i].Sub(ring[i-1]).Norm()
		mid := ring[i].Add(ring[i-1]).Mul(0.5)
		sum = sum.Add(mid.Mul(seg))
		total += seg
	}
	if total == 0 {
		return ring[0]
	}

	return sum.Mul(1 / total)
}

// ringAreaCentroid returns the signed shoelace area and the centroid of a ring.
func ringAreaCentroid(ring []r2.Point) (float64, r2.Point) {
	n := len(ring)
	if n < 3 {
		return 0, r2.Point{}
	}
	var (
		a      float64
		cx, cy float64
	)
	for i := 0; i < n; i++ {
		p, q := ring[i], ring[(i+1)%n]
		cross := p.Cross(q)
		a += cross
		cx += (p.X + q.X) * cross
		cy += (p.Y + q.Y) * cross
	}
	a /= 2
	if a == 0 {
		return 0, r2.Point{}
	}

	return a, r2.Point{X: cx / (6 * a), Y: cy / (6 * a)}
}
