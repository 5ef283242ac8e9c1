// SPDX-License-Identifier: MIT
//
// File: wkt.go
// Role: Well-known-text decoding (via simplefeatures) and canonical re-emission.
// Canonical form:
//   - "POINT (x y)", "LINESTRING (x y, x y)", "POLYGON ((x y, ...), (x y, ...))".
//   - "<TAG> EMPTY" for empty shapes.
//   - Numbers use the shortest decimal that round-trips float64 ('f' format, no exponent),
//     so Parse(g.Text()).Text() == g.Text() for every Geometry.

package geometry

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/golang/geo/r2"
	"github.com/peterstace/simplefeatures/geom"
)

const (
	tagPoint      = "POINT"
	tagLineString = "LINESTRING"
	tagPolygon    = "POLYGON"
	tagEmpty      = "EMPTY"
)

// Parse decodes well-known text into a Geometry.
//
// Implementation:
//   - Stage 1: Delegate tokenizing and grammar to simplefeatures' WKT reader, with its
//     geometric validations disabled: self-intersecting rings, touching holes and
//     degenerate lines are accepted as long as the text parses.
//   - Stage 2: Reject coordinate types other than XY and kinds other than POINT/LINESTRING/POLYGON.
//   - Stage 3: Copy coordinates into the package's own ring layout.
//
// Errors:
//   - ErrParse for malformed text, 3D/measured coordinates, or unsupported kinds.
//
// Complexity:
//   - Time O(len(text)), Space O(#coordinates).
func Parse(text string) (Geometry, error) {
	g, err := geom.UnmarshalWKT(text, geom.DisableAllValidations)
	if err != nil {
		return Geometry{}, fmt.Errorf("Parse: %v: %w", err, ErrParse)
	}
	if ct := g.CoordinatesType(); ct != geom.DimXY {
		return Geometry{}, fmt.Errorf("Parse: coordinates type %v: %w", ct, ErrParse)
	}

	switch g.Type() {
	case geom.TypePoint:
		pt, ok := g.AsPoint()
		if !ok {
			return Geometry{}, fmt.Errorf("Parse: %s: %w", tagPoint, ErrParse)
		}
		xy, ok := pt.XY()
		if !ok {
			return Geometry{kind: KindPoint}, nil
		}
		return NewPoint(xy.X, xy.Y), nil

	case geom.TypeLineString:
		ls, ok := g.AsLineString()
		if !ok {
			return Geometry{}, fmt.Errorf("Parse: %s: %w", tagLineString, ErrParse)
		}
		return Geometry{kind: KindLineString, rings: nonEmptyRings(sequencePoints(ls.Coordinates()))}, nil

	case geom.TypePolygon:
		poly, ok := g.AsPolygon()
		if !ok {
			return Geometry{}, fmt.Errorf("Parse: %s: %w", tagPolygon, ErrParse)
		}
		out := Geometry{kind: KindPolygon}
		if poly.IsEmpty() {
			return out, nil
		}
		out.rings = append(out.rings, sequencePoints(poly.ExteriorRing().Coordinates()))
		for i := 0; i < poly.NumInteriorRings(); i++ {
			out.rings = append(out.rings, sequencePoints(poly.InteriorRingN(i).Coordinates()))
		}
		return out, nil

	default:
		return Geometry{}, fmt.Errorf("Parse: unsupported type %v: %w", g.Type(), ErrParse)
	}
}

// ParseKind decodes text and requires the result to be of kind want.
func ParseKind(text string, want Kind) (Geometry, error) {
	g, err := Parse(text)
	if err != nil {
		return Geometry{}, err
	}
	if err = g.Expect(want); err != nil {
		return Geometry{}, err
	}

	return g, nil
}

// MustParse is Parse for literals in tests and examples; it panics on error.
func MustParse(text string) Geometry {
	g, err := Parse(text)
	if err != nil {
		panic(err)
	}

	return g
}

// Text returns the canonical well-known text of g. The zero Geometry renders as "".
func (g Geometry) Text() string {
	if g.kind == KindInvalid {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(g.kind.String())
	if len(g.rings) == 0 {
		sb.WriteString(" " + tagEmpty)
		return sb.String()
	}

	sb.WriteString(" ")
	switch g.kind {
	case KindPoint, KindLineString:
		writeRing(&sb, g.rings[0])
	case KindPolygon:
		sb.WriteString("(")
		for i, ring := range g.rings {
			if i > 0 {
				sb.WriteString(", ")
			}
			writeRing(&sb, ring)
		}
		sb.WriteString(")")
	}

	return sb.String()
}

// String implements fmt.Stringer with the canonical text.
func (g Geometry) String() string { return g.Text() }

// MarshalText implements encoding.TextMarshaler.
func (g Geometry) MarshalText() ([]byte, error) { return []byte(g.Text()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (g *Geometry) UnmarshalText(b []byte) error {
	parsed, err := Parse(string(b))
	if err != nil {
		return err
	}
	*g = parsed

	return nil
}

func writeRing(sb *strings.Builder, ring []r2.Point) {
	sb.WriteString("(")
	for i, p := range ring {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(formatNumber(p.X))
		sb.WriteString(" ")
		sb.WriteString(formatNumber(p.Y))
	}
	sb.WriteString(")")
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func sequencePoints(seq geom.Sequence) []r2.Point {
	n := seq.Length()
	out := make([]r2.Point, n)
	for i := 0; i < n; i++ {
		xy := seq.GetXY(i)
		out[i] = r2.Point{X: xy.X, Y: xy.Y}
	}

	return out
}

func nonEmptyRings(ring []r2.Point) [][]r2.Point {
	if len(ring) == 0 {
		return nil
	}

	return [][]r2.Point{ring}
}

func kindError(want, got Kind) error {
	return fmt.Errorf("want %s, got %s: %w", want, got, ErrKind)
}
